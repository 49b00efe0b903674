package web

import (
	"net/http"

	"siteadmin/internal/app/console/guard"
)

type loginData struct {
	Email string
	Error string
}

// loginPage рендерится всегда, даже при живой сессии
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "login.gohtml", loginData{})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	cookieID, err := h.app.Login(r.Context(), email, password)
	if err != nil {
		h.log.Info("вход отклонен", "email", email, "error", err)
		h.render.Render(w, "login.gohtml", loginData{
			Email: email,
			Error: "Неверный email или пароль",
		})
		return
	}

	h.setSessionCookie(w, cookieID)
	http.Redirect(w, r, guard.DashboardPath, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.app.Logout(r.Context())
	clearSessionCookie(w)
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
}
