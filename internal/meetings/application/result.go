package application

import (
	"encoding/json"
	"errors"
)

// Void is the payload type of operations that return no data.
type Void = *struct{}

// Result is the envelope every service operation returns. A successful
// result never carries an error message; a failed one never carries data.
type Result[T any] struct {
	Data    T
	Error   string
	Success bool
}

// Ok wraps data in a successful result.
func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data, Success: true}
}

// Fail builds a failed result carrying a human-readable message.
func Fail[T any](message string) Result[T] {
	if message == "" {
		message = MessageUnknown
	}
	return Result[T]{Error: message}
}

// Unwrap returns the data, or the failure message as an error.
func (r Result[T]) Unwrap() (T, error) {
	if !r.Success {
		var zero T
		return zero, errors.New(r.Error)
	}
	return r.Data, nil
}

type resultJSON struct {
	Data    any     `json:"data"`
	Error   *string `json:"error"`
	Success bool    `json:"success"`
}

// MarshalJSON renders {"data": ..., "error": ..., "success": ...} with
// null in place of the absent side.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := resultJSON{Success: r.Success}
	if r.Success {
		out.Data = r.Data
	} else {
		msg := r.Error
		out.Error = &msg
	}
	return json.Marshal(out)
}
