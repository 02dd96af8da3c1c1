package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/internal/config"
	"github.com/redflagged/redflagged/internal/web"
	zlog "github.com/redflagged/redflagged/pkg/log"
)

var configPath string

func initLogger(config *config.Config) *zap.Logger {
	if config.Log.File == "" {
		if config.Log.Production {
			return zlog.InitProd()
		}
		return zlog.InitDev()
	}
	return zlog.InitWithFile(config.Log.Production, zlog.FileOptions{
		Path:       config.Log.File,
		MaxSizeMB:  config.Log.MaxSizeMB,
		MaxBackups: config.Log.MaxBackups,
		MaxAgeDays: config.Log.MaxAgeDays,
	})
}

func serve() error {
	config, err := config.ParseConfig(configPath)
	if err != nil {
		return err
	}

	logger := initLogger(config)
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.Run(ctx, logger, config)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "redflagged",
		Short: "Redflagged web server",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site and the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to the YAML config file")
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
