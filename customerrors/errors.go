package customerrors

import (
	"fmt"
	"sort"
)

// CustomError are errors that can be wrapped with additional info
type CustomError struct {
	msg string
	err error
}

func (e *CustomError) Error() string {
	return e.msg
}

func (e *CustomError) Unwrap() error {
	return e.err
}

func NewCriticalError(err error) *CustomError {
	return &CustomError{msg: err.Error(), err: err}
}

// Wrap appends params to the message in key order.
func (e *CustomError) Wrap(params map[string]interface{}) *CustomError {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.msg += fmt.Sprintf(" %s=%v", k, params[k])
	}
	return e
}

// StatusError is returned by the http sink for any response other than 200 OK.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%d", e.Code)
	}
	return fmt.Sprintf("%d - %s", e.Code, e.Body)
}
