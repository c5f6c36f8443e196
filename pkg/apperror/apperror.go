package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifica um erro de aplicação
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInsufficientStock Kind = "insufficient_stock"
	KindConfiguration     Kind = "configuration"
	KindInternal          Kind = "internal"
)

// Error é o erro tipado retornado pelas camadas de domínio e serviço
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is compara por identidade ou, para erros sem causa, por tipo e mensagem
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e == t {
		return true
	}
	return t.Err == nil && e.Err == nil && e.Kind == t.Kind && e.Message == t.Message
}

// New cria um erro do tipo informado
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap cria um erro do tipo informado preservando a causa
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error { return New(KindValidation, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Conflict(message string) *Error { return New(KindConflict, message) }

func InsufficientStock(message string) *Error { return New(KindInsufficientStock, message) }

func Configuration(message string) *Error { return New(KindConfiguration, message) }

// KindOf retorna o tipo do erro, ou KindInternal se não for um *Error
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf retorna a mensagem destinada ao cliente
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "erro interno"
}

// HTTPStatus mapeia o tipo do erro para o status HTTP
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInsufficientStock:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
