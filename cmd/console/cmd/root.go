// cmd/console/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"siteadmin/cmd/console/cmd/types"
	"siteadmin/internal/app/console"
	"siteadmin/internal/app/console/config"
	"siteadmin/internal/domain/session"
	"siteadmin/internal/gateway"
	"siteadmin/internal/infrastructure/storage/sqlite"
	"siteadmin/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg     *config.Config
	log     *slog.Logger
	app     *console.App
	store   *sqlite.Storage
	addr    string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "siteadmin",
	Short: "SiteAdmin - консоль управления контентом сайта",
	Long: `SiteAdmin — административная консоль сайта: список сервисов,
контактная информация и ссылки подвала.

Консоль держит единственную сессию оператора и проксирует все
изменения в удаленный API сайта.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	viper.AutomaticEnv()
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if addr != "" {
		cfg.RunAddress = addr
	}

	log = logger.New(cfg.Env)

	var err error
	store, err = sqlite.New(cfg.SessionDBPath)
	if err != nil {
		return fmt.Errorf("ошибка открытия хранилища сессии: %w", err)
	}

	sess, err := session.NewStore(cmd.Context(), store, log)
	if err != nil {
		return fmt.Errorf("ошибка восстановления сессии: %w", err)
	}

	gw := gateway.New(cfg, sess, log)
	app = console.New(cfg, sess, gw, log)

	cmd.SetContext(context.WithValue(cmd.Context(), types.ConsoleAppKey, app))
	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "адрес, на котором слушает консоль")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "отключить цветной вывод")
}
