package footer

import "strings"

// LinkGroup - группа ссылок в подвале сайта: заголовок, список пунктов
// и общий href.
type LinkGroup struct {
	ID    int      `json:"id,omitempty"`
	Title string   `json:"title"`
	Lists []string `json:"lists"`
	Href  string   `json:"href"`
}

// ParseLists разбирает введенный через запятую список пунктов
func ParseLists(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// JoinLists собирает пункты обратно в строку для формы редактирования
func JoinLists(items []string) string {
	return strings.Join(items, ", ")
}

// Validate проверяет обязательные поля группы перед отправкой
func (g LinkGroup) Validate() []string {
	var missing []string
	if strings.TrimSpace(g.Title) == "" {
		missing = append(missing, "title")
	}
	if len(g.Lists) == 0 {
		missing = append(missing, "lists")
	}
	if strings.TrimSpace(g.Href) == "" {
		missing = append(missing, "href")
	}
	return missing
}
