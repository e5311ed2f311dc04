package main

import (
	"errors"
	"fmt"
)

const (
	exitFailure      = 1 // fallo durante la ejecución
	exitCommandError = 2 // argumentos o archivos inválidos
)

// ExitError lleva el código de salida junto al error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func wrapExit(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

func exitCode(err error) int {
	var e *ExitError
	if errors.As(err, &e) {
		return e.Code
	}
	return exitFailure
}
