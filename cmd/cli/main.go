package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/redflagged/redflagged/pkg/client/redflagged"
)

var log *zap.Logger

var endpoint, apiPrefix string

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func unwrap[T any](value T, err error) T {
	check(err)
	return value
}

var (
	rootCmd = &cobra.Command{
		Use:   "rfg",
		Short: "Redflagged client",
	}

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dump the moderation queue",
	}
)

func newClient() (*redflagged.Client, error) {
	return redflagged.NewClient(endpoint, apiPrefix, os.Getenv("RFG_TOKEN"))
}

func initLogging() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.ConsoleSeparator = " "
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	log = unwrap(config.Build())
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "Redflagged base URL")
	rootCmd.PersistentFlags().StringVar(&apiPrefix, "api-prefix", redflagged.DefaultPrefix, "Path the server mounts its JSON API on")

	dumpCmd.AddCommand(makeDumpSubmissionsCommand())
	dumpCmd.AddCommand(makeDumpReportsCommand())
	dumpCmd.AddCommand(makeDumpResponsesCommand())

	rootCmd.AddCommand(makeFeedCommand())
	rootCmd.AddCommand(makeShowCommand())
	rootCmd.AddCommand(makeReportCommand())
	rootCmd.AddCommand(makeRespondCommand())
	rootCmd.AddCommand(makeSmokeCommand())
	rootCmd.AddCommand(makeEvidenceCommand())
	rootCmd.AddCommand(dumpCmd)
}

func init() {
	initLogging()
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s", err.Error())
		os.Exit(1)
	}
}
