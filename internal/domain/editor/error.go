package editor

import "errors"

var (
	// ErrSubmitInFlight - черновик уже отправляется, повторная отправка
	// и мутации до ответа сервера отклоняются.
	ErrSubmitInFlight = errors.New("отправка черновика уже выполняется")

	ErrUnknownField  = errors.New("неизвестное поле")
	ErrUnknownLocale = errors.New("неподдерживаемая локаль")
	ErrRowIndex      = errors.New("строка вне диапазона")
)
