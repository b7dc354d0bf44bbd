package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/client"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/prompt"
	"github.com/MKhiriev/go-chain-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const logFileName = "chainkeeper.log"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, apperr.From(err).FormatFor("config"))
		os.Exit(1)
	}

	if cfg.PrintConfig {
		printable := *cfg
		if printable.App.PriceAPIKey != "" {
			printable.App.PriceAPIKey = config.SecretMask
		}
		out, err := config.EncodeTOML(&printable)
		if err != nil {
			fmt.Fprintln(os.Stderr, apperr.From(err).FormatFor("print config"))
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	clientCfg := cfg.Client()

	logPath := ""
	if clientCfg.Log.Dir != "" {
		logPath = filepath.Join(clientCfg.Log.Dir, logFileName)
	}
	log := logger.NewClientLogger("go-chain-keeper", logPath)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("network", clientCfg.Chain.DefaultNetwork).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(clientCfg, prompt.NewTerminalPrompter(os.Stdin, os.Stdout), os.Stderr, log)
	if err = app.Run(ctx); err != nil {
		if apperr.IsAbort(err) {
			log.Info().Err(err).Msg("aborted by user")
			return
		}
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, apperr.From(err).FormatFor("go-chain-keeper"))
		stop()
		os.Exit(1)
	}
}
