package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/prompt"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/tui"
	"github.com/MKhiriev/go-chain-keeper/internal/workers"
)

const (
	maxUnlockAttempts = 3
	updatesBuffer     = 64
	priceMinInterval  = time.Second
	txMaxWait         = 30 * time.Minute
)

type App struct {
	cfg      *config.ClientConfig
	prompter prompt.Prompter
	stderr   io.Writer
	logger   *logger.Logger

	// runUI is replaced in tests.
	runUI func(ctx context.Context, opts tui.Options) error
}

func NewApp(cfg *config.ClientConfig, prompter prompt.Prompter, stderr io.Writer, log *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		prompter: prompter,
		stderr:   stderr,
		logger:   log,
		runUI:    tui.Run,
	}
}

// Run opens the local store, unlocks the keystore with the master password,
// starts the background workers and shows the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	storages, err := store.NewClientStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Msg("close local storage")
		}
	}()

	network, _ := a.cfg.Chain.Network(a.cfg.Chain.DefaultNetwork)
	chain := adapter.NewRPCAdapter(adapter.RPCClientConfig{
		Endpoint: network.RPCURL,
		Timeout:  a.cfg.App.RequestTimeout,
	})
	prices := adapter.NewPriceAdapter(adapter.PriceClientConfig{
		BaseURL:     a.cfg.App.PriceURL,
		APIKey:      a.cfg.App.PriceAPIKey,
		RequireKey:  a.cfg.App.RequirePriceKey,
		Timeout:     a.cfg.App.RequestTimeout,
		MinInterval: priceMinInterval,
	})

	services := service.NewClientServices(storages, chain, prices, a.cfg.Chain, a.logger)

	return a.run(ctx, services)
}

func (a *App) run(ctx context.Context, services *service.ClientServices) error {
	if err := a.unlock(ctx, services.Accounts); err != nil {
		return err
	}

	updates := make(chan any, updatesBuffer)
	watcher := workers.NewTxWatcher(services.Chain, a.cfg.Workers.TxPollInterval, txMaxWait, updates, a.logger)
	background := workers.NewWorkers(
		workers.NewPriceWorker(services.Prices, a.cfg.Workers.PriceInterval, updates, a.logger),
		watcher,
	)
	background.Run(ctx)
	a.logger.Info().Str("network", services.Chain.ActiveNetwork().Name).Msg("workers started")

	uiErr := a.runUI(ctx, tui.Options{
		Services: services,
		Tracker:  watcher,
		Updates:  updates,
		Logger:   a.logger,
	})

	background.Stop()
	close(updates)
	a.logger.Info().Msg("workers stopped")

	if uiErr != nil {
		return fmt.Errorf("terminal ui: %w", uiErr)
	}
	return nil
}

// unlock asks for the master password. On first start there are no stored
// accounts yet, so the password is typed twice and becomes the one every
// later key is encrypted with.
func (a *App) unlock(ctx context.Context, accounts service.AccountService) error {
	hasAccounts, err := accounts.HasAccounts(ctx)
	if err != nil {
		return fmt.Errorf("check stored accounts: %w", err)
	}

	if !hasAccounts {
		ok, err := a.prompter.Confirm("No accounts stored yet. Create a new keystore")
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Abort("keystore setup declined")
		}
	}

	for attempt := 1; ; attempt++ {
		password, err := a.prompter.MasterPassword(!hasAccounts)
		if err != nil {
			return err
		}

		err = accounts.Unlock(ctx, password)
		if err == nil {
			return nil
		}

		var appErr *apperr.Error
		if !errors.As(err, &appErr) || appErr.Kind() != apperr.KindKeystore || attempt == maxUnlockAttempts {
			return fmt.Errorf("unlock keystore: %w", err)
		}
		a.logger.Warn().Int("attempt", attempt).Msg("wrong master password")
		fmt.Fprintln(a.stderr, "wrong master password, try again")
	}
}
