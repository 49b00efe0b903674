// cmd/console/cmd/init.go
package cmd

import (
	"siteadmin/cmd/console/cmd/auth"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)
}
