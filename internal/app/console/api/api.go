//GET  /login              # Страница входа (публичный)
//POST /login              # Вход оператора (публичный)
//POST /logout             # Выход (публичный)
//GET  /dashboard          # Список сервисов (guard)
//GET  /contacts           # Контакты сайта (guard)
//GET  /footer             # Ссылки подвала (guard)
//GET  /api/v1/health      # Служебный статус (публичный)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"siteadmin/internal/app/console"
	healthAPI "siteadmin/internal/app/console/api/http/health"
	"siteadmin/internal/app/console/api/http/middleware/logger"
	"siteadmin/internal/app/console/guard"
	"siteadmin/internal/app/console/web"
)

// New собирает *chi.Mux консоли: HTML-представления за guard'ом
// плюс служебный JSON API через huma.Register
func New(app *console.App, log *slog.Logger) (*chi.Mux, error) {
	render, err := web.NewRenderer(log)
	if err != nil {
		return nil, err
	}

	mux := chi.NewMux()

	loggerMW := logger.New(log)
	mux.Use(loggerMW.Middleware())

	config := huma.DefaultConfig("SiteAdmin Console", "1.0.0")
	API := humachi.New(mux, config)
	healthAPI.NewHandler(app.Session(), log, huma.Middlewares{}).SetupRoutes(API)

	webHandler := web.NewHandler(app, render, log)
	webHandler.PublicRoutes(mux)

	g := guard.New(app.Session(), log)
	mux.Group(func(r chi.Router) {
		r.Use(g.Middleware())
		webHandler.ProtectedRoutes(r)
	})

	mux.NotFound(webHandler.NotFound)

	return mux, nil
}
