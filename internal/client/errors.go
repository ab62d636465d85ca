package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// maxErrBody ограничивает тело ответа в тексте ошибки
const maxErrBody = 300

// RemoteServiceError - ответ внешнего сервиса со статусом >= 400.
// Body обрезано до maxErrBody байт.
type RemoteServiceError struct {
	Service string
	Status  int
	Body    string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Service, e.Status, e.Body)
}

// TimeoutError - внешний сервис не ответил за отведённый таймаут
type TimeoutError struct {
	Service string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: request timed out", e.Service)
}

// TransportError - любой другой сбой транспорта (DNS, соединение и т.д.)
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classifyTransport переводит ошибку http.Client в ошибку таксономии клиента
func classifyTransport(service string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Service: service}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Service: service}
	}
	return &TransportError{Service: service, Err: err}
}

func truncateBody(body []byte) string {
	if len(body) > maxErrBody {
		return string(body[:maxErrBody])
	}
	return string(body)
}
