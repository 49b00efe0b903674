package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"golang.org/x/exp/slog"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer держит разобранный набор шаблонов консоли
type Renderer struct {
	tmpl *template.Template
	log  *slog.Logger
}

func NewRenderer(log *slog.Logger) (*Renderer, error) {
	tmpl, err := template.New("console").Funcs(template.FuncMap{
		// Тела записей приходят из редактора как готовая разметка
		"raw": func(s string) template.HTML { return template.HTML(s) },
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("парсинг шаблонов: %w", err)
	}

	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Render пишет страницу name с данными data. Ошибка рендера на этом
// этапе означает дефект шаблона, а не запроса.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		r.log.Error("ошибка рендера шаблона", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
