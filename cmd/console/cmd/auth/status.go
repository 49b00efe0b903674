// cmd/console/cmd/auth/status.go
package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"siteadmin/cmd/console/cmd/types"
	"siteadmin/internal/app/console"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать состояние сессии оператора",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ConsoleAppKey).(*console.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		sess := app.Session()
		if _, active := sess.Token(); !active {
			color.Red("Сессия не открыта")
			fmt.Println("Выполните: siteadmin auth login")
			return nil
		}

		color.Green("Сессия активна")
		if exp, ok := sess.ExpiresAt(); ok {
			color.White("Истекает: %s", exp.Format("2006-01-02 15:04:05"))
		} else {
			color.White("Срок действия токена не ограничен локально")
		}
		return nil
	},
}
