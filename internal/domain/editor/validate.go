package editor

import (
	"fmt"
	"strings"

	"siteadmin/internal/domain/content"
)

// FieldError - одно незаполненное поле черновика. Row равен -1
// для скалярных полей записи.
type FieldError struct {
	Row   int
	Field string
}

func (e FieldError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("строка %d: поле %s не заполнено", e.Row+1, e.Field)
	}
	return fmt.Sprintf("поле %s не заполнено", e.Field)
}

// ValidationError собирает все незаполненные поля черновика
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "черновик не заполнен: " + strings.Join(msgs, "; ")
}

// validate применяет правила заполненности по типу записи:
// для типа 1 обязательны оба заголовка и оба тела, для типа 2 -
// оба заголовка записи и заголовки с изображением в каждой строке.
func validate(draft content.Content) []FieldError {
	var errs []FieldError

	if blank(draft.TitleEn) {
		errs = append(errs, FieldError{Row: -1, Field: "titleEn"})
	}
	if blank(draft.TitleGe) {
		errs = append(errs, FieldError{Row: -1, Field: "titleGe"})
	}

	switch draft.Kind {
	case content.KindSingle:
		if blank(draft.BodyEn) {
			errs = append(errs, FieldError{Row: -1, Field: "bodyEn"})
		}
		if blank(draft.BodyGe) {
			errs = append(errs, FieldError{Row: -1, Field: "bodyGe"})
		}

	case content.KindGallery:
		for i, row := range draft.Rows {
			if blank(row.TitleEn) {
				errs = append(errs, FieldError{Row: i, Field: "titleEn"})
			}
			if blank(row.TitleGe) {
				errs = append(errs, FieldError{Row: i, Field: "titleGe"})
			}
			if blank(row.Image) {
				errs = append(errs, FieldError{Row: i, Field: "image"})
			}
		}
	}

	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
