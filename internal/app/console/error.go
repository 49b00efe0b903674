package console

import "errors"

var (
	ErrNoEditor       = errors.New("редактор не открыт")
	ErrRecordNotFound = errors.New("запись не найдена")
)
