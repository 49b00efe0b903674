// cmd/console/cmd/serve.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"siteadmin/internal/app/console/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить веб-консоль",
	Long: `Поднимает HTTP-сервер консоли на адресе из конфигурации.
Останавливается по SIGINT/SIGTERM с корректным завершением запросов.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}

		mux, err := api.New(app, log)
		if err != nil {
			return fmt.Errorf("ошибка сборки маршрутизатора: %w", err)
		}

		server := &http.Server{
			Addr:              cfg.RunAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		color.Cyan("SiteAdmin Console")
		color.White("Адрес:      http://%s", cfg.RunAddress)
		color.White("Окружение:  %s", cfg.Env)
		color.White("Public API: %s", cfg.PublicAPIURL)
		color.White("Admin API:  %s", cfg.AdminAPIURL)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ошибка сервера: %w", err)
			}
			return nil
		case sig := <-stop:
			log.Info("получен сигнал остановки", "signal", sig.String())
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("ошибка остановки сервера: %w", err)
		}

		color.Green("Консоль остановлена")
		return nil
	},
}
