package errors

import "github.com/muhammadheryan/pempek-storefront/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
}

// Error returns the override message when one was set, the type's message otherwise.
func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMessage keeps the error type but surfaces msg to the user,
// typically the detail reported by the backend.
func SetCustomErrorMessage(errorType constant.ErrorType, msg string) CustomError {
	return CustomError{
		errType: errorType,
		message: msg,
	}
}
