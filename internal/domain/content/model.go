package content

// Kind определяет форму записи: одиночный rich-text блок или галерея подэлементов.
type Kind int

const (
	KindUnknown Kind = 0
	KindSingle  Kind = 1
	KindGallery Kind = 2
)

// Поддерживаемые локали контента. Других не бывает.
const (
	LocaleEn = "en"
	LocaleGe = "ge"
)

// Content - редактируемая запись сервиса. ID равен нулю, пока запись
// не сохранена на сервере.
type Content struct {
	ID      int
	Kind    Kind
	TitleEn string
	TitleGe string
	BodyEn  string
	BodyGe  string
	Rows    []Row
}

// Row - один подэлемент галереи. Четыре параллельных массива wire-формата
// существуют только на границе сериализации, внутри всегда один срез строк.
type Row struct {
	TitleEn string
	TitleGe string
	Href    string
	Image   string
}

// String возвращает человекочитаемое имя формы записи
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindGallery:
		return "gallery"
	default:
		return "unknown"
	}
}

// IsGallery сообщает, является ли запись галереей
func (c Content) IsGallery() bool {
	return c.Kind == KindGallery
}

// IsNew сообщает, сохранялась ли запись на сервере
func (c Content) IsNew() bool {
	return c.ID == 0
}

// Clone возвращает глубокую копию записи для черновика редактора
func (c Content) Clone() Content {
	clone := c
	clone.Rows = make([]Row, len(c.Rows))
	copy(clone.Rows, c.Rows)
	return clone
}
