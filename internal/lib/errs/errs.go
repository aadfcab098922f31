// Package errs определяет виды доменных ошибок сервиса.
//
// Каждая ошибка бизнес-логики несёт собственное сообщение для клиента,
// но разворачивается (errors.Is) в один из сторожевых видов, по которым
// транспортный слой выбирает HTTP-статус.
package errs

import "errors"

// Сторожевые виды ошибок бизнес-логики.
var (
	// ErrAlreadyExists — дубликат username, имени воркцентра или повторная покупка рациона.
	ErrAlreadyExists = errors.New("already exists")
	// ErrAuth — неверные учетные данные; вид одинаков для неизвестного
	// пользователя и неверного пароля.
	ErrAuth = errors.New("authentication failed")
	// ErrNotAllowed — запрещённая операция: чужой воркцентр, превышение квоты.
	ErrNotAllowed = errors.New("not allowed")
	// ErrNotFound — запись отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
)

// Error — доменная ошибка с сообщением для клиента и видом для маппинга статуса.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap позволяет errors.Is сопоставлять ошибку с её видом.
func (e *Error) Unwrap() error { return e.Kind }

// AlreadyExists возвращает ошибку вида ErrAlreadyExists с заданным сообщением.
func AlreadyExists(msg string) error {
	return &Error{Kind: ErrAlreadyExists, Msg: msg}
}

// Auth возвращает ошибку вида ErrAuth с заданным сообщением.
func Auth(msg string) error {
	return &Error{Kind: ErrAuth, Msg: msg}
}

// NotAllowed возвращает ошибку вида ErrNotAllowed с заданным сообщением.
func NotAllowed(msg string) error {
	return &Error{Kind: ErrNotAllowed, Msg: msg}
}

// NotFound возвращает ошибку вида ErrNotFound с заданным сообщением.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}
