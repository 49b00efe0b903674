package contact

// SiteInfo - контактная информация сайта. Обычно существует единственная
// строка; форма добавления показывается, только когда коллекция пуста.
type SiteInfo struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name"`
	TitleEn   string `json:"titleEn"`
	TitleGe   string `json:"titleGe"`
	AddressEn string `json:"addressEn"`
	AddressGe string `json:"addressGe"`
	Email     string `json:"email"`
	Number    string `json:"number"`
	FB        string `json:"fb"`
	IG        string `json:"ig"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"in"`
	Copyright string `json:"copyright"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Field описывает одно редактируемое поле для построчного вывода
// и инлайн-редактирования.
type Field struct {
	Name  string
	Label string
	Value string
}

// fieldLabels задает порядок и подписи полей в представлении
var fieldLabels = []struct {
	name  string
	label string
}{
	{"name", "Website Name"},
	{"titleEn", "SubTitle (Eng)"},
	{"titleGe", "SubTitle (Geo)"},
	{"addressEn", "Address (Eng)"},
	{"addressGe", "Address (Geo)"},
	{"email", "Email"},
	{"number", "Number"},
	{"fb", "Facebook"},
	{"ig", "Instagram"},
	{"twitter", "Twitter"},
	{"in", "LinkedIn"},
	{"copyright", "Copyright"},
}

// Fields возвращает редактируемые поля записи в порядке отображения
func (s SiteInfo) Fields() []Field {
	fields := make([]Field, 0, len(fieldLabels))
	for _, fl := range fieldLabels {
		fields = append(fields, Field{
			Name:  fl.name,
			Label: fl.label,
			Value: s.FieldValue(fl.name),
		})
	}
	return fields
}

// FieldValue возвращает значение поля по его wire-имени
func (s SiteInfo) FieldValue(name string) string {
	switch name {
	case "name":
		return s.Name
	case "titleEn":
		return s.TitleEn
	case "titleGe":
		return s.TitleGe
	case "addressEn":
		return s.AddressEn
	case "addressGe":
		return s.AddressGe
	case "email":
		return s.Email
	case "number":
		return s.Number
	case "fb":
		return s.FB
	case "ig":
		return s.IG
	case "twitter":
		return s.Twitter
	case "in":
		return s.LinkedIn
	case "copyright":
		return s.Copyright
	}
	return ""
}

// IsEditable проверяет, разрешено ли построчное редактирование поля.
// Патч на сервер уходит с именем поля из формы, поэтому белый список обязателен.
func IsEditable(name string) bool {
	for _, fl := range fieldLabels {
		if fl.name == name {
			return true
		}
	}
	return false
}
