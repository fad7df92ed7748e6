package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode       = 200
	ParamErrCode      = 400
	AuthErrCode       = 401
	UnauthorizedCode  = 403
	NotFoundCode      = 404
	ServiceErrCode    = 500
	TokenInvailedCode = 4001
	TokenExpiredCode  = 4002
	LimitExceededCode = 4290
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage 保留错误码 替换提示信息
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success          = NewErrNo(SuccessCode, "Success")
	ServiceErr       = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr         = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RequestErr       = NewErrNo(ParamErrCode, "Request is invalid")
	AuthorizeFailErr = NewErrNo(AuthErrCode, "Authorize failed")
	UnauthorizedErr  = NewErrNo(UnauthorizedCode, "Unauthorized Access")
	NotFoundErr      = NewErrNo(NotFoundCode, "Resource does not exist")
	UserAlreadyExist = NewErrNo(ParamErrCode, "User already exists")
	TokenInvailedErr = NewErrNo(TokenInvailedCode, "Token is invalid")
	TokenExpiredErr  = NewErrNo(TokenExpiredCode, "Token has been expired")
	LimitExceededErr = NewErrNo(LimitExceededCode, "Too many requests, please try again later")
)

// ConvertErr 将任意error归一化为ErrNo
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
