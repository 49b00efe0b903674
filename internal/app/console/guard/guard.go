package guard

import (
	"net/http"
	"strings"

	"golang.org/x/exp/slog"
)

// View - представление консоли, в которое разрешается путь
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
	ViewContacts  View = "contacts"
	ViewFooter    View = "footer"
)

// Пути маршрутизации консоли
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
	ContactsPath  = "/contacts"
	FooterPath    = "/footer"
)

// Resolution - результат проверки достижимости: либо представление,
// либо путь редиректа.
type Resolution struct {
	View       View
	RedirectTo string
}

// Resolve решает, достижимо ли представление по пути при данном
// состоянии сессии. Страница логина рендерится всегда, даже при живой
// сессии - принудительного редиректа с логина нет. Неизвестные пути
// защищенного поддерева сводятся к индексному представлению: состояние
// 404 в консоли сознательно не моделируется.
func Resolve(path string, hasSession bool) Resolution {
	if path == LoginPath {
		return Resolution{View: ViewLogin}
	}

	if !hasSession {
		return Resolution{RedirectTo: LoginPath}
	}

	switch normalize(path) {
	case ContactsPath:
		return Resolution{View: ViewContacts}
	case FooterPath:
		return Resolution{View: ViewFooter}
	default:
		return Resolution{View: ViewDashboard}
	}
}

func normalize(path string) string {
	if len(path) > 1 {
		return strings.TrimRight(path, "/")
	}
	return path
}

// SessionReader - состояние сессии, нужное guard'у
type SessionReader interface {
	Token() (string, bool)
	ValidCookie(id string) bool
}

// CookieName - cookie с идентификатором браузера, владеющего сессией
const CookieName = "siteadmin_session"

// Guard закрывает защищенное поддерево маршрутов
type Guard struct {
	session SessionReader
	log     *slog.Logger
}

func New(session SessionReader, log *slog.Logger) *Guard {
	return &Guard{
		session: session,
		log:     log.With(slog.String("component", "guard")),
	}
}

// Authorized проверяет, что активная сессия есть и запрос пришел
// из браузера, которому она выдана.
func (g *Guard) Authorized(r *http.Request) bool {
	if _, ok := g.session.Token(); !ok {
		return false
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return g.session.ValidCookie(cookie.Value)
}

// Middleware редиректит неавторизованные запросы защищенного
// поддерева на страницу логина.
func (g *Guard) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if res := Resolve(r.URL.Path, g.Authorized(r)); res.RedirectTo != "" {
				g.log.Debug("редирект неавторизованной навигации",
					"path", r.URL.Path,
					"to", res.RedirectTo,
				)
				http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
