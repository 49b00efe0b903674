package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"siteadmin/internal/app/console/guard"
	"siteadmin/internal/domain/content"
	"siteadmin/internal/domain/editor"
)

const editorPath = guard.DashboardPath + "/editor"

// Ограничение на multipart-форму загрузки изображения
const maxUploadBytes = 10 << 20

// LoadError замещает список целиком, Error показывается над ним
type dashboardData struct {
	Services  []content.Content
	LoadError string
	Error     string
}

type editorData struct {
	Draft      content.Content
	IsNew      bool
	Submitting bool
	Errors     []string
}

type deleteData struct {
	Record content.Content
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	if err := h.app.LoadServices(r.Context()); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
	}

	services, errMsg := h.app.Services()
	h.render.Render(w, "dashboard.gohtml", dashboardData{
		Services:  services,
		LoadError: errMsg,
	})
}

func (h *Handler) editorCreate(w http.ResponseWriter, r *http.Request) {
	h.app.OpenCreate()
	http.Redirect(w, r, editorPath, http.StatusSeeOther)
}

func (h *Handler) editorEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
		return
	}

	if err := h.app.OpenEdit(r.Context(), id); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Warn("запись для редактирования недоступна", "id", id, "error", err)
		http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, editorPath, http.StatusSeeOther)
}

func (h *Handler) editorPage(w http.ResponseWriter, r *http.Request) {
	e := h.app.Editor()
	if e == nil {
		http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
		return
	}

	h.renderEditor(w, e, nil)
}

func (h *Handler) renderEditor(w http.ResponseWriter, e *editor.Editor, errs []string) {
	draft := e.Draft()
	h.render.Render(w, "editor.gohtml", editorData{
		Draft:      draft,
		IsNew:      draft.IsNew(),
		Submitting: e.Submitting(),
		Errors:     errs,
	})
}

// applyForm переносит значения формы в черновик. Действия формы
// (добавить строку, отправить) применяются поверх уже обновленного
// черновика, поэтому ввод не теряется между перерисовками.
func (h *Handler) applyForm(e *editor.Editor, r *http.Request) error {
	kind := content.KindSingle
	if r.PostFormValue("kind") == "gallery" {
		kind = content.KindGallery
	}
	if err := e.SetKind(kind); err != nil {
		return err
	}

	if err := e.SetField("titleEn", r.PostFormValue("titleEn")); err != nil {
		return err
	}
	if err := e.SetField("titleGe", r.PostFormValue("titleGe")); err != nil {
		return err
	}
	if err := e.SetBody(content.LocaleEn, r.PostFormValue("bodyEn")); err != nil {
		return err
	}
	if err := e.SetBody(content.LocaleGe, r.PostFormValue("bodyGe")); err != nil {
		return err
	}

	titlesEn := r.PostForm["rowTitleEn"]
	titlesGe := r.PostForm["rowTitleGe"]
	hrefs := r.PostForm["rowHref"]
	for i := range e.Draft().Rows {
		if i < len(titlesEn) {
			if err := e.UpdateRow(i, "titleEn", titlesEn[i]); err != nil {
				return err
			}
		}
		if i < len(titlesGe) {
			if err := e.UpdateRow(i, "titleGe", titlesGe[i]); err != nil {
				return err
			}
		}
		if i < len(hrefs) {
			if err := e.UpdateRow(i, "href", hrefs[i]); err != nil {
				return err
			}
		}
	}

	return nil
}

// withEditor разбирает форму и применяет ее к открытому редактору,
// затем передает управление действию.
func (h *Handler) withEditor(w http.ResponseWriter, r *http.Request, action func(e *editor.Editor)) {
	e := h.app.Editor()
	if e == nil {
		http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if err := h.applyForm(e, r); err != nil {
		if errors.Is(err, editor.ErrSubmitInFlight) {
			h.renderEditor(w, e, []string{"Отправка уже выполняется"})
			return
		}
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	action(e)
}

func (h *Handler) editorAddRow(w http.ResponseWriter, r *http.Request) {
	h.withEditor(w, r, func(e *editor.Editor) {
		if err := e.AddRow(); err != nil {
			h.renderEditor(w, e, []string{err.Error()})
			return
		}
		http.Redirect(w, r, editorPath, http.StatusSeeOther)
	})
}

func (h *Handler) editorRemoveRow(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}

	h.withEditor(w, r, func(e *editor.Editor) {
		if err := e.RemoveRow(r.Context(), index); err != nil {
			h.renderEditor(w, e, []string{err.Error()})
			return
		}
		http.Redirect(w, r, editorPath, http.StatusSeeOther)
	})
}

func (h *Handler) editorUploadImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}

	e := h.app.Editor()
	if e == nil {
		http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	// Форма загрузки несет только файл - остальные поля черновика
	// не трогаем, иначе загрузка стирала бы несохраненный ввод
	file, header, err := r.FormFile("image")
	if err != nil {
		h.renderEditor(w, e, []string{"Файл изображения не выбран"})
		return
	}
	defer file.Close()

	if err := e.UploadImage(r.Context(), index, header.Filename, file); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.renderEditor(w, e, []string{"Не удалось загрузить изображение"})
		return
	}

	http.Redirect(w, r, editorPath, http.StatusSeeOther)
}

func (h *Handler) editorSubmit(w http.ResponseWriter, r *http.Request) {
	h.withEditor(w, r, func(e *editor.Editor) {
		err := h.app.SubmitEditor(r.Context())
		if err == nil {
			http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
			return
		}

		if h.unauthorized(w, r, err) {
			return
		}

		var verr *editor.ValidationError
		if errors.As(err, &verr) {
			msgs := make([]string, len(verr.Fields))
			for i, fe := range verr.Fields {
				msgs[i] = fe.Error()
			}
			h.renderEditor(w, e, msgs)
			return
		}

		h.log.Error("отправка черновика не удалась", "error", err)
		h.renderEditor(w, e, []string{"Сервер отклонил сохранение, черновик не потерян"})
	})
}

func (h *Handler) editorCancel(w http.ResponseWriter, r *http.Request) {
	h.app.CloseEditor()
	http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
}

func (h *Handler) deleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
		return
	}

	services, _ := h.app.Services()
	for _, rec := range services {
		if rec.ID == id {
			h.render.Render(w, "delete.gohtml", deleteData{Record: rec})
			return
		}
	}

	http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
}

func (h *Handler) deleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
		return
	}

	if err := h.app.DeleteService(r.Context(), id); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Error("удаление записи не удалось", "id", id, "error", err)

		services, loadErr := h.app.Services()
		h.render.Render(w, "dashboard.gohtml", dashboardData{
			Services:  services,
			LoadError: loadErr,
			Error:     fmt.Sprintf("Сервер отклонил удаление записи %d, список не изменен", id),
		})
		return
	}

	http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
}
