package downloaders

import (
	"errors"
	"net/http"
)

const internalMessage = "Internal server error"

// Error несёт HTTP статус и сообщение для клиента, Err - исходная причина для логов
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(message string, err error) error {
	return &Error{Status: http.StatusBadRequest, Message: message, Err: err}
}

func Internal(message string, err error) error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf раскладывает ошибку на статус и текст ответа.
// Неизвестные ошибки наружу не выдаются.
func StatusOf(err error) (int, string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Status, e.Message
	}

	return http.StatusInternalServerError, internalMessage
}
