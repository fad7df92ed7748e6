package errno

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	t.Run("NilIsSuccess", func(t *testing.T) {
		assert.Equal(t, int64(SuccessCode), ConvertErr(nil).ErrCode)
	})

	t.Run("ErrNoPassedThrough", func(t *testing.T) {
		e := ConvertErr(NotFoundErr)
		assert.Equal(t, int64(NotFoundCode), e.ErrCode)
	})

	t.Run("WrappedErrNoUnwrapped", func(t *testing.T) {
		wrapped := pkgerrors.Wrap(UnauthorizedErr, "while deleting video")
		e := ConvertErr(wrapped)
		assert.Equal(t, int64(UnauthorizedCode), e.ErrCode)
	})

	t.Run("PlainErrorBecomesServiceErr", func(t *testing.T) {
		e := ConvertErr(errors.New("connection refused"))
		assert.Equal(t, int64(ServiceErrCode), e.ErrCode)
		assert.Equal(t, "connection refused", e.ErrMsg)
	})
}

func TestWithMessage(t *testing.T) {
	e := NotFoundErr.WithMessage("Video does not exist")
	assert.Equal(t, int64(NotFoundCode), e.ErrCode)
	assert.Equal(t, "Video does not exist", e.ErrMsg)
	// 原变量不受影响
	assert.Equal(t, "Resource does not exist", NotFoundErr.ErrMsg)
}
