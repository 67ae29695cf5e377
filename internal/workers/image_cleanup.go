package workers

import (
	"context"

	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/store"
)

// cleanupQueueSize bounds how many pending deletions can wait for the
// worker before new requests are dropped.
const cleanupQueueSize = 128

// ImageCleanup is a background worker that deletes superhero image objects
// from the blob store. Deletions are fire-and-forget: enqueueing never
// blocks the caller, and a failed removal is logged and abandoned rather
// than retried.
type ImageCleanup struct {
	imageStore store.ImageStore
	queue      chan string
	logger     *logger.Logger
}

// NewImageCleanup constructs the cleanup worker. Call [ImageCleanup.Run]
// to start draining the queue and [ImageCleanup.Stop] on shutdown.
func NewImageCleanup(imageStore store.ImageStore, logger *logger.Logger) *ImageCleanup {
	return &ImageCleanup{
		imageStore: imageStore,
		queue:      make(chan string, cleanupQueueSize),
		logger:     logger,
	}
}

// Enqueue schedules removal of the superhero's image object. It never
// blocks: when the queue is full the removal runs in its own best-effort
// goroutine instead, so a delete request is never stalled.
func (w *ImageCleanup) Enqueue(superheroID string) {
	select {
	case w.queue <- superheroID:
	default:
		w.logger.Warn().
			Str("func", "ImageCleanup.Enqueue").
			Str("superhero_id", superheroID).
			Msg("cleanup queue is full, removing image out of band")

		go func() {
			if err := w.imageStore.RemoveImage(context.Background(), superheroID); err != nil {
				w.logger.Err(err).
					Str("func", "ImageCleanup.Enqueue").
					Str("superhero_id", superheroID).
					Msg("failed to remove superhero image")
			}
		}()
	}
}

// Run implements [Worker]. It spawns the draining goroutine and returns
// immediately. The goroutine exits when [ImageCleanup.Stop] closes the queue.
func (w *ImageCleanup) Run() {
	go func() {
		for superheroID := range w.queue {
			if err := w.imageStore.RemoveImage(context.Background(), superheroID); err != nil {
				w.logger.Err(err).
					Str("func", "ImageCleanup.Run").
					Str("superhero_id", superheroID).
					Msg("failed to remove superhero image")
				continue
			}

			w.logger.Debug().
				Str("func", "ImageCleanup.Run").
				Str("superhero_id", superheroID).
				Msg("removed superhero image")
		}
	}()
}

// Stop closes the queue. Pending entries are still drained; entries
// enqueued after Stop panic, so stop the HTTP server first.
func (w *ImageCleanup) Stop() {
	close(w.queue)
}
