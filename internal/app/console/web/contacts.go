package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"siteadmin/internal/app/console/guard"
	"siteadmin/internal/domain/contact"
)

type contactsData struct {
	Info     *contact.SiteInfo
	Fields   []contact.Field
	ShowForm bool
	Error    string
}

func (h *Handler) contacts(w http.ResponseWriter, r *http.Request) {
	h.renderContacts(w, r, "")
}

// renderContacts загружает контакты и рендерит страницу; errMsg
// показывается баннером над содержимым (ошибки мутаций).
func (h *Handler) renderContacts(w http.ResponseWriter, r *http.Request, errMsg string) {
	records, err := h.app.Gateway().Contacts(r.Context())
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.render.Render(w, "contacts.gohtml", contactsData{
			Error: "Не удалось загрузить контакты",
		})
		return
	}

	// Форма добавления показывается только при пустой коллекции
	if len(records) == 0 {
		h.render.Render(w, "contacts.gohtml", contactsData{
			ShowForm: true,
			Error:    errMsg,
		})
		return
	}

	info := records[0]
	h.render.Render(w, "contacts.gohtml", contactsData{
		Info:   &info,
		Fields: info.Fields(),
		Error:  errMsg,
	})
}

func (h *Handler) contactAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	info := contact.SiteInfo{
		Name:      r.PostFormValue("name"),
		TitleEn:   r.PostFormValue("titleEn"),
		TitleGe:   r.PostFormValue("titleGe"),
		AddressEn: r.PostFormValue("addressEn"),
		AddressGe: r.PostFormValue("addressGe"),
		Email:     r.PostFormValue("email"),
		Number:    r.PostFormValue("number"),
		FB:        r.PostFormValue("fb"),
		IG:        r.PostFormValue("ig"),
		Twitter:   r.PostFormValue("twitter"),
		LinkedIn:  r.PostFormValue("in"),
		Copyright: r.PostFormValue("copyright"),
	}

	if _, err := h.app.Gateway().AddContact(r.Context(), info); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Error("добавление контактов не удалось", "error", err)
		h.renderContacts(w, r, "Сервер отклонил создание контактной записи")
		return
	}

	http.Redirect(w, r, guard.ContactsPath, http.StatusSeeOther)
}

// contactEditField патчит одно поле контактной записи
func (h *Handler) contactEditField(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, guard.ContactsPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	field := r.PostFormValue("field")
	if !contact.IsEditable(field) {
		h.log.Warn("попытка редактирования неизвестного поля", "field", field)
		http.Error(w, "unknown field", http.StatusBadRequest)
		return
	}

	value := r.PostFormValue("value")
	if err := h.app.Gateway().EditContactField(r.Context(), id, field, value); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Error("обновление поля не удалось", "field", field, "error", err)
		h.renderContacts(w, r, "Сервер отклонил изменение поля "+field)
		return
	}

	http.Redirect(w, r, guard.ContactsPath, http.StatusSeeOther)
}
