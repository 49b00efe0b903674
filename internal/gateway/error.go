package gateway

import "errors"

var (
	// ErrUnauthorized - сервер отверг токен. Обработчики консоли
	// по этой ошибке сбрасывают сессию и уводят оператора на логин.
	ErrUnauthorized = errors.New("авторизация отклонена сервером")
)
