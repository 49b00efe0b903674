package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"siteadmin/cmd/console/cmd/types"
	"siteadmin/internal/app/console"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Закрыть сессию оператора",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ConsoleAppKey).(*console.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		app.Logout(cmd.Context())
		fmt.Println("Сессия закрыта")
		return nil
	},
}
