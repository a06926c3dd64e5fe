package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind - вид ошибки расчёта
type ErrorKind string

// Виды ошибок
const (
	KindValidation                ErrorKind = "ValidationError"
	KindUnsupportedCurrency       ErrorKind = "UnsupportedCurrency"
	KindInvalidQuantity           ErrorKind = "InvalidQuantity"
	KindUpstreamUnavailable       ErrorKind = "UpstreamUnavailable"
	KindMalformedUpstreamResponse ErrorKind = "MalformedUpstreamResponse"
	KindCancelled                 ErrorKind = "Cancelled"
	KindInternal                  ErrorKind = "InternalError"
)

var (
	ErrValidation                = errors.New("validation error")
	ErrUnsupportedCurrency       = errors.New("unsupported currency")
	ErrInvalidQuantity           = errors.New("invalid quantity")
	ErrUpstreamUnavailable       = errors.New("upstream unavailable")
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")
	ErrCancelled                 = errors.New("calculation cancelled")
	ErrInternal                  = errors.New("internal error")
)

// Err - сигнальная ошибка для использования с errors.Is
func (k ErrorKind) Err() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindUnsupportedCurrency:
		return ErrUnsupportedCurrency
	case KindInvalidQuantity:
		return ErrInvalidQuantity
	case KindUpstreamUnavailable:
		return ErrUpstreamUnavailable
	case KindMalformedUpstreamResponse:
		return ErrMalformedUpstreamResponse
	case KindCancelled:
		return ErrCancelled
	default:
		return ErrInternal
	}
}

// Retryable - можно ли повторить расчёт позже
func (k ErrorKind) Retryable() bool {
	return k == KindUpstreamUnavailable
}

// FieldError - ошибка по конкретному полю
type FieldError struct {
	Kind    ErrorKind `json:"kind"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

func (e FieldError) Is(target error) bool {
	return e.Kind.Err() == target
}

// CalcError - набор ошибок, возвращаемый калькуляторами и конвейером расчёта
type CalcError struct {
	Errors []FieldError
}

// NewCalcError - создаёт ошибку с одним полем
func NewCalcError(kind ErrorKind, field string, format string, args ...interface{}) *CalcError {
	e := &CalcError{}
	e.Add(kind, field, fmt.Sprintf(format, args...))
	return e
}

// Add - добавляет ошибку поля
func (e *CalcError) Add(kind ErrorKind, field string, message string) {
	e.Errors = append(e.Errors, FieldError{Kind: kind, Field: field, Message: message})
}

// Merge - добавляет все ошибки из другого набора
func (e *CalcError) Merge(other *CalcError) {
	if other != nil {
		e.Errors = append(e.Errors, other.Errors...)
	}
}

// ErrOrNil - nil, если ошибок нет
func (e *CalcError) ErrOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

func (e *CalcError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *CalcError) Is(target error) bool {
	for _, fe := range e.Errors {
		if fe.Is(target) {
			return true
		}
	}
	return false
}

// Retryable - все ли ошибки набора допускают повтор
func (e *CalcError) Retryable() bool {
	if len(e.Errors) == 0 {
		return false
	}
	for _, fe := range e.Errors {
		if !fe.Kind.Retryable() {
			return false
		}
	}
	return true
}

// AsCalcError - приводит произвольную ошибку к набору ошибок расчёта
func AsCalcError(err error) *CalcError {
	if err == nil {
		return nil
	}
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce
	}
	var fe FieldError
	if errors.As(err, &fe) {
		return &CalcError{Errors: []FieldError{fe}}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrUpstreamUnavailable):
		return NewCalcError(KindUpstreamUnavailable, "", "%s", err.Error())
	case errors.Is(err, ErrMalformedUpstreamResponse):
		return NewCalcError(KindMalformedUpstreamResponse, "", "%s", err.Error())
	case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled):
		return NewCalcError(KindCancelled, "", "%s", err.Error())
	}
	return NewCalcError(KindInternal, "", "%s", err.Error())
}

// Outcome - типизированный результат: ok и список ошибок
type Outcome struct {
	OK        bool         `json:"ok"`
	Errors    []FieldError `json:"errors,omitempty"`
	Retryable bool         `json:"retryable,omitempty"`
}

// OutcomeFromError - формирует результат по ошибке
func OutcomeFromError(err error) Outcome {
	if err == nil {
		return Outcome{OK: true}
	}
	ce := AsCalcError(err)
	return Outcome{OK: false, Errors: ce.Errors, Retryable: ce.Retryable()}
}
