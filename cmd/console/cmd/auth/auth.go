package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для операций с сессией оператора
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление сессией оператора",
	Long:  `Вход, выход и статус сессии без запуска веб-консоли.`,
}
