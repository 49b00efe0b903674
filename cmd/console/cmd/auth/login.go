// cmd/console/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"siteadmin/cmd/console/cmd/types"
	"siteadmin/internal/app/console"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в административный API",
	Long: `Аутентификация в административном API сайта.

Токен сохраняется локально, веб-консоль подхватит сессию при запуске.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ConsoleAppKey).(*console.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if _, err := app.Login(ctx, email, string(password)); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println("Вход выполнен, сессия сохранена")
		return nil
	},
}
