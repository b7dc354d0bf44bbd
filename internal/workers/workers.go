package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// Workers runs a fixed set of workers on their own goroutines.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and returns immediately. Workers stop when ctx is
// cancelled or Stop is called.
func (w *Workers) Run(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(runCtx)
		}(worker)
	}
}

// Stop cancels the workers and blocks until all of them returned. Safe to
// call when Run was never called.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// publish delivers msg on out without blocking. A full channel or a
// cancelled ctx yields a ChannelSend error, which is logged and returned.
func publish(ctx context.Context, out chan<- any, msg any, channel string, log *logger.Logger) error {
	if ctx.Err() != nil {
		return channelSendFailed(channel, log)
	}

	select {
	case out <- msg:
		return nil
	default:
		return channelSendFailed(channel, log)
	}
}

func channelSendFailed(channel string, log *logger.Logger) error {
	err := apperr.ChannelSend(channel)
	log.Warn().Str("kind", err.Kind().String()).Str("channel", channel).Msg(err.Error())
	return err
}
