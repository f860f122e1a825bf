package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/trknhr/tonality/internal/logger"
	"github.com/trknhr/tonality/internal/model/entity"
	"github.com/trknhr/tonality/internal/store"
)

const DefaultQueueSize = 64

// JournalWorker writes predictions to the store in the background so the
// interactive loop never waits on the database.
type JournalWorker struct {
	store store.PredictionStore
	queue chan entity.Prediction

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	saved  atomic.Int64
	failed atomic.Int64
}

func NewJournalWorker(s store.PredictionStore, buffer int) *JournalWorker {
	if buffer <= 0 {
		buffer = DefaultQueueSize
	}
	return &JournalWorker{
		store: s,
		queue: make(chan entity.Prediction, buffer),
	}
}

func (w *JournalWorker) Key() string { return "journal" }

// Start launches the writer goroutine. It stops when Close is called or ctx
// is done; queued predictions are flushed either way.
func (w *JournalWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case p, ok := <-w.queue:
				if !ok {
					return
				}
				w.save(w.collect(p))
			case <-ctx.Done():
				w.drain()
				return
			}
		}
	}()
}

// Record queues p without blocking. It returns false when the queue is
// full or the worker has been closed.
func (w *JournalWorker) Record(p entity.Prediction) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}

	select {
	case w.queue <- p:
		return true
	default:
		logger.Warn("[%s] queue full, dropping prediction for %q", w.Key(), p.Text)
		return false
	}
}

// Close stops accepting predictions and waits until everything queued is saved.
func (w *JournalWorker) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()
	w.wg.Wait()
	logger.Debug("[%s] closed, saved=%d failed=%d", w.Key(), w.saved.Load(), w.failed.Load())
}

// Stats returns how many predictions were saved and how many failed.
func (w *JournalWorker) Stats() (saved, failed int64) {
	return w.saved.Load(), w.failed.Load()
}

// collect batches p with whatever else is already waiting.
func (w *JournalWorker) collect(p entity.Prediction) []entity.Prediction {
	batch := []entity.Prediction{p}
	for {
		select {
		case next, ok := <-w.queue:
			if !ok {
				return batch
			}
			batch = append(batch, next)
		default:
			return batch
		}
	}
}

func (w *JournalWorker) drain() {
	var batch []entity.Prediction
	for {
		select {
		case p, ok := <-w.queue:
			if !ok {
				w.save(batch)
				return
			}
			batch = append(batch, p)
		default:
			w.save(batch)
			return
		}
	}
}

func (w *JournalWorker) save(batch []entity.Prediction) {
	if len(batch) == 0 {
		return
	}
	if err := w.store.SavePredictions(batch); err != nil {
		w.failed.Add(int64(len(batch)))
		logger.Error("[%s] save failed: %v", w.Key(), err)
		return
	}
	w.saved.Add(int64(len(batch)))
	logger.Debug("[%s] saved %d predictions", w.Key(), len(batch))
}
