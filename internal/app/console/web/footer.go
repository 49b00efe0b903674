package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"siteadmin/internal/app/console/guard"
	"siteadmin/internal/domain/footer"
)

type footerGroupView struct {
	ID    int
	Title string
	Lists string
	Href  string
}

type footerData struct {
	Groups []footerGroupView
	Error  string
}

func (h *Handler) footerLinks(w http.ResponseWriter, r *http.Request) {
	h.renderFooter(w, r, "")
}

// renderFooter загружает группы ссылок и рендерит страницу; errMsg
// показывается баннером над содержимым (ошибки мутаций).
func (h *Handler) renderFooter(w http.ResponseWriter, r *http.Request, errMsg string) {
	groups, err := h.app.Gateway().FooterLinks(r.Context())
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.render.Render(w, "footer.gohtml", footerData{
			Error: "Не удалось загрузить ссылки подвала",
		})
		return
	}

	views := make([]footerGroupView, len(groups))
	for i, g := range groups {
		views[i] = footerGroupView{
			ID:    g.ID,
			Title: g.Title,
			Lists: footer.JoinLists(g.Lists),
			Href:  g.Href,
		}
	}

	h.render.Render(w, "footer.gohtml", footerData{Groups: views, Error: errMsg})
}

func groupFromForm(r *http.Request) footer.LinkGroup {
	return footer.LinkGroup{
		Title: strings.TrimSpace(r.PostFormValue("title")),
		Lists: footer.ParseLists(r.PostFormValue("lists")),
		Href:  strings.TrimSpace(r.PostFormValue("href")),
	}
}

func (h *Handler) footerStore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	group := groupFromForm(r)
	if missing := group.Validate(); len(missing) > 0 {
		h.renderFooter(w, r, "Не заполнены поля группы: "+strings.Join(missing, ", "))
		return
	}

	if err := h.app.Gateway().StoreFooterLink(r.Context(), group); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Error("сохранение группы ссылок не удалось", "error", err)
		h.renderFooter(w, r, "Сервер отклонил создание группы ссылок")
		return
	}

	http.Redirect(w, r, guard.FooterPath, http.StatusSeeOther)
}

func (h *Handler) footerEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, guard.FooterPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	group := groupFromForm(r)
	if missing := group.Validate(); len(missing) > 0 {
		h.renderFooter(w, r, "Не заполнены поля группы: "+strings.Join(missing, ", "))
		return
	}

	if err := h.app.Gateway().EditFooterLink(r.Context(), id, group); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Error("обновление группы ссылок не удалось", "id", id, "error", err)
		h.renderFooter(w, r, "Сервер отклонил изменение группы ссылок")
		return
	}

	http.Redirect(w, r, guard.FooterPath, http.StatusSeeOther)
}

func (h *Handler) footerDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, guard.FooterPath, http.StatusSeeOther)
		return
	}

	groups, err := h.app.Gateway().FooterLinks(r.Context())
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		http.Redirect(w, r, guard.FooterPath, http.StatusSeeOther)
		return
	}

	for _, g := range groups {
		if g.ID == id {
			h.render.Render(w, "footer_delete.gohtml", footerGroupView{
				ID:    g.ID,
				Title: g.Title,
				Lists: footer.JoinLists(g.Lists),
				Href:  g.Href,
			})
			return
		}
	}

	http.Redirect(w, r, guard.FooterPath, http.StatusSeeOther)
}

func (h *Handler) footerDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, guard.FooterPath, http.StatusSeeOther)
		return
	}

	if err := h.app.Gateway().DeleteFooterLink(r.Context(), id); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Error("удаление группы ссылок не удалось", "id", id, "error", err)
		h.renderFooter(w, r, "Сервер отклонил удаление группы ссылок")
		return
	}

	http.Redirect(w, r, guard.FooterPath, http.StatusSeeOther)
}
