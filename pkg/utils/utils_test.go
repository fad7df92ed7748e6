package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 10000; i++ {
		id := GenerateID()
		assert.Greater(t, id, int64(0))
		assert.False(t, seen[id], "duplicate id generated")
		seen[id] = true
	}
}

func TestCryptAndVerify(t *testing.T) {
	hashed, err := Crypt("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)
	assert.True(t, VerifyPassword("s3cret", hashed))
	assert.False(t, VerifyPassword("wrong", hashed))
}

func TestTransfer(t *testing.T) {
	assert.Equal(t, int64(42), Transfer(int64(42)))
	assert.Equal(t, int64(42), Transfer(float64(42)))
	assert.Equal(t, int64(42), Transfer("42"))
	assert.Equal(t, int64(-1), Transfer("abc"))
	assert.Equal(t, int64(-1), Transfer(nil))
}

func TestConvertStringToInt64(t *testing.T) {
	v, err := ConvertStringToInt64("123")
	assert.NoError(t, err)
	assert.Equal(t, int64(123), v)

	_, err = ConvertStringToInt64("not-a-number")
	assert.Error(t, err)
}
