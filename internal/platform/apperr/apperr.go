package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind clasifica los errores que el core devuelve al caller.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindValidation      Kind = "validation_error"
	KindInvalidArgument Kind = "invalid_argument"
	KindStorage         Kind = "storage_error"
)

// Sentinels para usar con errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrStorage         = errors.New("storage error")
)

type Error struct {
	Kind   Kind
	Entity string // customer, contract, note, action, event (opcional)
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite errors.Is(err, apperr.ErrNotFound) sin importar el Err envuelto.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrStorage:
		return e.Kind == KindStorage
	}
	return false
}

func NotFound(entity string, id any) *Error {
	return &Error{
		Kind:   KindNotFound,
		Entity: entity,
		Msg:    fmt.Sprintf("%s %v not found", entity, id),
	}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func InvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Msg: msg}
}

// Storage envuelve una falla del motor. Si err ya es un *Error se devuelve tal cual.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: KindStorage, Msg: "storage error", Err: err}
}

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStorage
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage evita filtrar detalles del motor en respuestas HTTP.
func PublicMessage(err error) string {
	if KindOf(err) == KindStorage {
		return "internal error"
	}
	return err.Error()
}
