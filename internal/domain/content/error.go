package content

import "errors"

var (
	ErrUnknownKind = errors.New("неизвестный тип записи")
)
