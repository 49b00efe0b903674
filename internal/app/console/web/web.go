package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"siteadmin/internal/app/console"
	"siteadmin/internal/app/console/guard"
	"siteadmin/internal/gateway"
)

// Handler отдает HTML-страницы консоли
type Handler struct {
	app    *console.App
	render *Renderer
	log    *slog.Logger
}

func NewHandler(app *console.App, render *Renderer, log *slog.Logger) *Handler {
	return &Handler{
		app:    app,
		render: render,
		log:    log.With(slog.String("component", "web")),
	}
}

// PublicRoutes регистрирует маршруты, доступные без сессии
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get(guard.LoginPath, h.loginPage)
	r.Post(guard.LoginPath, h.loginSubmit)
	r.Post("/logout", h.logout)
}

// ProtectedRoutes регистрирует маршруты за guard-middleware
func (h *Handler) ProtectedRoutes(r chi.Router) {
	r.Get("/", h.dashboard)
	r.Get(guard.DashboardPath, h.dashboard)
	r.Get(guard.DashboardPath+"/new", h.editorCreate)
	r.Get(guard.DashboardPath+"/{id}/edit", h.editorEdit)
	r.Get(guard.DashboardPath+"/{id}/delete", h.deleteConfirm)
	r.Post(guard.DashboardPath+"/{id}/delete", h.deleteSubmit)

	r.Get(guard.DashboardPath+"/editor", h.editorPage)
	r.Post(guard.DashboardPath+"/editor/rows", h.editorAddRow)
	r.Post(guard.DashboardPath+"/editor/rows/{index}/remove", h.editorRemoveRow)
	r.Post(guard.DashboardPath+"/editor/rows/{index}/image", h.editorUploadImage)
	r.Post(guard.DashboardPath+"/editor/submit", h.editorSubmit)
	r.Post(guard.DashboardPath+"/editor/cancel", h.editorCancel)

	r.Get(guard.ContactsPath, h.contacts)
	r.Post(guard.ContactsPath, h.contactAdd)
	r.Post(guard.ContactsPath+"/{id}/field", h.contactEditField)

	r.Get(guard.FooterPath, h.footerLinks)
	r.Post(guard.FooterPath, h.footerStore)
	r.Post(guard.FooterPath+"/{id}", h.footerEdit)
	r.Get(guard.FooterPath+"/{id}/delete", h.footerDeleteConfirm)
	r.Post(guard.FooterPath+"/{id}/delete", h.footerDeleteSubmit)
}

// NotFound сводит неизвестные пути к достижимому представлению
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	_, hasSession := h.app.Session().Token()
	res := guard.Resolve(r.URL.Path, hasSession)
	if res.RedirectTo != "" {
		http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
}

// unauthorized обрабатывает отказ удаленного API: токен мертв,
// сессию держать незачем.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, gateway.ErrUnauthorized) {
		return false
	}

	h.log.Warn("удаленный API отверг токен, сессия закрыта", "path", r.URL.Path)
	h.app.Logout(r.Context())
	clearSessionCookie(w)
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
	return true
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, cookieID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     guard.CookieName,
		Value:    cookieID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.app.Config().CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     guard.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
