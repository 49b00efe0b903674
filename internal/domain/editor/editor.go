package editor

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/slog"

	"siteadmin/internal/domain/content"
)

// Backend - операции удаленного API, нужные редактору
type Backend interface {
	StoreService(ctx context.Context, rec content.Content) (content.Content, error)
	EditService(ctx context.Context, id int, rec content.Content) (content.Content, error)
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
	DeleteImage(ctx context.Context, imageName string) error
}

// Editor владеет черновиком одной записи. Жизненный цикл:
// открыт с черновиком -> отправка -> закрыт (успех) либо открыт с ошибкой.
// Одновременно в консоли открыт максимум один редактор.
type Editor struct {
	mu         sync.Mutex
	draft      content.Content
	submitting bool
	backend    Backend
	log        *slog.Logger
}

// NewDraft возвращает пустой черновик для режима добавления.
// Галерейная часть сразу получает одну пустую строку: запись типа 2
// не бывает без строк.
func NewDraft() content.Content {
	return content.Content{
		Kind: content.KindSingle,
		Rows: []content.Row{{}},
	}
}

// Open открывает редактор над копией записи. Оригинал из списка
// не мутируется до подтверждения сервера.
func Open(rec content.Content, backend Backend, log *slog.Logger) *Editor {
	draft := rec.Clone()
	if len(draft.Rows) == 0 {
		draft.Rows = []content.Row{{}}
	}

	return &Editor{
		draft:   draft,
		backend: backend,
		log:     log.With(slog.String("component", "editor")),
	}
}

// Draft возвращает копию текущего черновика для рендеринга
func (e *Editor) Draft() content.Content {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

// Submitting сообщает, идет ли сейчас отправка черновика
func (e *Editor) Submitting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitting
}

// SetKind переключает форму записи. Черновик сохраняет значения
// обеих форм, пока редактор открыт, чтобы переключение не теряло ввод.
func (e *Editor) SetKind(kind content.Kind) error {
	if kind != content.KindSingle && kind != content.KindGallery {
		return fmt.Errorf("%w: %d", content.ErrUnknownKind, kind)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.submitting {
		return ErrSubmitInFlight
	}

	e.draft.Kind = kind
	return nil
}

// SetField обновляет скалярное поле черновика
func (e *Editor) SetField(name, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.submitting {
		return ErrSubmitInFlight
	}

	switch name {
	case "titleEn":
		e.draft.TitleEn = value
	case "titleGe":
		e.draft.TitleGe = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// SetBody обновляет rich-text тело для одной из двух локалей
func (e *Editor) SetBody(locale, html string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.submitting {
		return ErrSubmitInFlight
	}

	switch locale {
	case content.LocaleEn:
		e.draft.BodyEn = html
	case content.LocaleGe:
		e.draft.BodyGe = html
	default:
		return fmt.Errorf("%w: %s", ErrUnknownLocale, locale)
	}
	return nil
}

// AddRow добавляет пустую строку галереи. Строка - одна структура,
// поэтому заголовки, ссылка и изображение добавляются только вместе.
func (e *Editor) AddRow() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.submitting {
		return ErrSubmitInFlight
	}

	e.draft.Rows = append(e.draft.Rows, content.Row{})
	return nil
}

// UpdateRow обновляет одно поле одной строки галереи
func (e *Editor) UpdateRow(index int, field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.submitting {
		return ErrSubmitInFlight
	}
	if index < 0 || index >= len(e.draft.Rows) {
		return fmt.Errorf("%w: %d", ErrRowIndex, index)
	}

	row := &e.draft.Rows[index]
	switch field {
	case "titleEn":
		row.TitleEn = value
	case "titleGe":
		row.TitleGe = value
	case "href":
		row.Href = value
	case "image":
		row.Image = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// RemoveRow удаляет строку галереи. Последняя строка не удаляется:
// запись типа 2 обязана сохранять хотя бы одну. Если строка несла
// загруженное изображение, файл подчищается на сервере best-effort -
// неудача логируется и не блокирует удаление.
func (e *Editor) RemoveRow(ctx context.Context, index int) error {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return ErrSubmitInFlight
	}
	if index < 0 || index >= len(e.draft.Rows) {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrRowIndex, index)
	}
	if len(e.draft.Rows) == 1 {
		e.mu.Unlock()
		return nil
	}

	image := e.draft.Rows[index].Image
	e.draft.Rows = append(e.draft.Rows[:index], e.draft.Rows[index+1:]...)
	e.mu.Unlock()

	if image != "" {
		if err := e.backend.DeleteImage(ctx, image); err != nil {
			e.log.Warn("не удалось удалить осиротевшее изображение",
				"image", image,
				"error", err,
			)
		}
	}

	return nil
}

// UploadImage загружает файл и записывает полученную ссылку в строку.
// До ответа сервера слот изображения хранит прежнее значение.
func (e *Editor) UploadImage(ctx context.Context, index int, filename string, file io.Reader) error {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return ErrSubmitInFlight
	}
	if index < 0 || index >= len(e.draft.Rows) {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrRowIndex, index)
	}
	prev := e.draft.Rows[index].Image
	e.mu.Unlock()

	url, err := e.backend.Upload(ctx, filename, file)
	if err != nil {
		return fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// Строку могли удалить, пока шла загрузка - индекс мог выйти
	// за границы или указывать на соседнюю строку после сдвига
	if index >= len(e.draft.Rows) || e.draft.Rows[index].Image != prev {
		e.log.Warn("строка изменилась во время загрузки, ссылка отброшена", "url", url)
		return nil
	}
	e.draft.Rows[index].Image = url
	return nil
}

// Validate проверяет заполненность черновика перед отправкой
func (e *Editor) Validate() []FieldError {
	e.mu.Lock()
	defer e.mu.Unlock()
	return validate(e.draft)
}

// Submit сериализует черновик и отправляет его на сервер.
// Повторный вызов при незавершенной отправке отклоняется.
// При успехе возвращается каноническая запись сервера, при ошибке
// черновик остается открытым.
func (e *Editor) Submit(ctx context.Context) (content.Content, error) {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return content.Content{}, ErrSubmitInFlight
	}
	if errs := validate(e.draft); len(errs) > 0 {
		e.mu.Unlock()
		return content.Content{}, &ValidationError{Fields: errs}
	}
	e.submitting = true
	draft := e.draft.Clone()
	e.mu.Unlock()

	var saved content.Content
	var err error
	if draft.IsNew() {
		saved, err = e.backend.StoreService(ctx, draft)
	} else {
		saved, err = e.backend.EditService(ctx, draft.ID, draft)
	}

	e.mu.Lock()
	e.submitting = false
	e.mu.Unlock()

	if err != nil {
		return content.Content{}, err
	}

	return saved, nil
}
