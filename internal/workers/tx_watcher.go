package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const txChannel = "tx"

// ErrWatchTimeout is the cause of the PendingTx error published when a
// transaction is still pending after the maximum wait.
var ErrWatchTimeout = errors.New("transaction still pending")

// TxWatcher polls receipts of tracked transactions until they are mined.
type TxWatcher struct {
	chain    service.ChainService
	interval time.Duration
	maxWait  time.Duration
	out      chan<- any
	logger   *logger.Logger

	requests chan string

	mu       sync.Mutex
	watching map[string]struct{}
}

// NewTxWatcher returns a watcher polling every interval and giving up after
// maxWait (4s and 30m when not positive).
func NewTxWatcher(chain service.ChainService, interval, maxWait time.Duration, out chan<- any, log *logger.Logger) *TxWatcher {
	if interval <= 0 {
		interval = 4 * time.Second
	}
	if maxWait <= 0 {
		maxWait = 30 * time.Minute
	}
	return &TxWatcher{
		chain:    chain,
		interval: interval,
		maxWait:  maxWait,
		out:      out,
		logger:   log,
		requests: make(chan string, 16),
		watching: make(map[string]struct{}),
	}
}

// Track asks the watcher to follow txHash. The hash is validated here so
// the caller gets a Hex error synchronously.
func (w *TxWatcher) Track(txHash string) error {
	hash, err := service.ParseTxHash(txHash)
	if err != nil {
		return err
	}

	select {
	case w.requests <- hash:
		return nil
	default:
		return apperr.ChannelSend("tx-requests")
	}
}

func (w *TxWatcher) Run(ctx context.Context) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case hash := <-w.requests:
			if !w.claim(hash) {
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer w.release(hash)
				w.watch(ctx, hash)
			}()
		}
	}
}

func (w *TxWatcher) watch(ctx context.Context, hash string) {
	log := w.logger.GetChildLogger()
	log.Info().Str("tx", hash).Msg("tracking transaction")

	ctx, cancel := context.WithTimeout(ctx, w.maxWait)
	defer cancel()

	t := time.NewTicker(w.interval)
	defer t.Stop()

	var last models.TxState
	for {
		status, err := w.chain.TxStatus(ctx, hash)
		if ctx.Err() != nil {
			w.giveUp(ctx, hash)
			return
		}

		if err != nil {
			log.Err(err).Str("tx", hash).Msg("receipt poll failed")
			w.emit(ctx, models.TxStatus{Hash: hash, State: models.TxPending, Err: err})
		} else if status.State != last {
			last = status.State
			w.emit(ctx, status)
			if status.State != models.TxPending {
				return
			}
		}

		select {
		case <-ctx.Done():
			w.giveUp(ctx, hash)
			return
		case <-t.C:
		}
	}
}

// giveUp publishes a PendingTx error when the watch timed out. Plain
// cancellation means shutdown and publishes nothing.
func (w *TxWatcher) giveUp(ctx context.Context, hash string) {
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return
	}
	w.emit(context.WithoutCancel(ctx), models.TxStatus{
		Hash:  hash,
		State: models.TxPending,
		Err:   apperr.FromPendingTx(fmt.Errorf("%w after %s", ErrWatchTimeout, w.maxWait)),
	})
}

func (w *TxWatcher) emit(ctx context.Context, status models.TxStatus) {
	_ = publish(ctx, w.out, status, txChannel, w.logger)
}

func (w *TxWatcher) claim(hash string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.watching[hash]; ok {
		return false
	}
	w.watching[hash] = struct{}{}
	return true
}

func (w *TxWatcher) release(hash string) {
	w.mu.Lock()
	delete(w.watching, hash)
	w.mu.Unlock()
}
