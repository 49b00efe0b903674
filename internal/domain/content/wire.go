package content

import (
	"encoding/json"
	"fmt"
)

// Payload - плоская форма записи в обмене с API сайта.
// type=1: заполнены body-поля, четыре массива передаются как JSON null.
// type=2: body-поля отсутствуют, массивы - JSON-кодированные строки равной длины.
type Payload struct {
	ID       int     `json:"id,omitempty"`
	Type     int     `json:"type"`
	TitleEn  string  `json:"titleEn"`
	TitleGe  string  `json:"titleGe"`
	BodyEn   *string `json:"bodyEn,omitempty"`
	BodyGe   *string `json:"bodyGe,omitempty"`
	TitlesEn *string `json:"titlesEn"`
	TitlesGe *string `json:"titlesGe"`
	Href     *string `json:"href"`
	Images   *string `json:"images"`
}

// Encode сериализует запись в wire-формат согласно её типу
func Encode(c Content) (Payload, error) {
	p := Payload{
		ID:      c.ID,
		TitleEn: c.TitleEn,
		TitleGe: c.TitleGe,
	}

	switch c.Kind {
	case KindSingle:
		p.Type = 1
		bodyEn, bodyGe := c.BodyEn, c.BodyGe
		p.BodyEn = &bodyEn
		p.BodyGe = &bodyGe
		// массивы остаются nil и уходят как null

	case KindGallery:
		p.Type = 2
		titlesEn := make([]string, len(c.Rows))
		titlesGe := make([]string, len(c.Rows))
		hrefs := make([]string, len(c.Rows))
		images := make([]string, len(c.Rows))
		for i, row := range c.Rows {
			titlesEn[i] = row.TitleEn
			titlesGe[i] = row.TitleGe
			hrefs[i] = row.Href
			images[i] = row.Image
		}

		var err error
		if p.TitlesEn, err = encodeList(titlesEn); err != nil {
			return Payload{}, err
		}
		if p.TitlesGe, err = encodeList(titlesGe); err != nil {
			return Payload{}, err
		}
		if p.Href, err = encodeList(hrefs); err != nil {
			return Payload{}, err
		}
		if p.Images, err = encodeList(images); err != nil {
			return Payload{}, err
		}

	default:
		return Payload{}, fmt.Errorf("%w: %d", ErrUnknownKind, c.Kind)
	}

	return p, nil
}

// Decode разбирает wire-формат и нормализует тип записи.
// Вывод формы по наличию полей делается ровно один раз здесь,
// дальше весь код смотрит только на тег Kind.
func Decode(p Payload) (Content, error) {
	c := Content{
		ID:      p.ID,
		Kind:    InferKind(p),
		TitleEn: p.TitleEn,
		TitleGe: p.TitleGe,
	}

	switch c.Kind {
	case KindSingle:
		if p.BodyEn != nil {
			c.BodyEn = *p.BodyEn
		}
		if p.BodyGe != nil {
			c.BodyGe = *p.BodyGe
		}

	case KindGallery:
		titlesEn, err := decodeList(p.TitlesEn)
		if err != nil {
			return Content{}, fmt.Errorf("поле titlesEn: %w", err)
		}
		titlesGe, err := decodeList(p.TitlesGe)
		if err != nil {
			return Content{}, fmt.Errorf("поле titlesGe: %w", err)
		}
		hrefs, err := decodeList(p.Href)
		if err != nil {
			return Content{}, fmt.Errorf("поле href: %w", err)
		}
		images, err := decodeList(p.Images)
		if err != nil {
			return Content{}, fmt.Errorf("поле images: %w", err)
		}

		// Сервер обязан отдавать массивы равной длины, но выравниваем
		// по максимуму, чтобы битая запись не ломала инвариант черновика.
		n := maxLen(titlesEn, titlesGe, hrefs, images)
		c.Rows = make([]Row, n)
		for i := 0; i < n; i++ {
			c.Rows[i] = Row{
				TitleEn: at(titlesEn, i),
				TitleGe: at(titlesGe, i),
				Href:    at(hrefs, i),
				Image:   at(images, i),
			}
		}

	default:
		return Content{}, fmt.Errorf("%w: type=%d", ErrUnknownKind, p.Type)
	}

	return c, nil
}

// InferKind определяет форму записи. Явный числовой тег главнее,
// при его отсутствии форма выводится по наличию body-полей -
// часть представлений сайта исторически полагается именно на это.
func InferKind(p Payload) Kind {
	switch p.Type {
	case 1:
		return KindSingle
	case 2:
		return KindGallery
	}
	if p.BodyEn != nil || p.BodyGe != nil {
		return KindSingle
	}
	if p.TitlesEn != nil || p.Images != nil {
		return KindGallery
	}
	return KindUnknown
}

func encodeList(items []string) (*string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования списка: %w", err)
	}
	s := string(data)
	return &s, nil
}

func decodeList(raw *string) ([]string, error) {
	if raw == nil || *raw == "" || *raw == "null" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(*raw), &items); err != nil {
		return nil, fmt.Errorf("ошибка разбора списка: %w", err)
	}
	return items, nil
}

func maxLen(lists ...[]string) int {
	n := 0
	for _, l := range lists {
		if len(l) > n {
			n = len(l)
		}
	}
	return n
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
