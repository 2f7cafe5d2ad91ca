package exports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/assetflow/backend/internal/models"
)

// Storage persists archive documents and returns their location.
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// Config controls the concurrency characteristics of the archiver.
type Config struct {
	QueueSize int
	Workers   int
	Timeout   time.Duration
}

// Archiver uploads library export snapshots to object storage in the
// background and tracks the status of each job.
type Archiver struct {
	storage Storage
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time

	mu     sync.RWMutex
	status map[string]models.ArchiveJob

	// closeMu guards sends on jobs against the close in Shutdown.
	closeMu sync.RWMutex
	closed  bool
	jobs    chan archiveJob

	// ctx is cancelled only when a shutdown deadline expires.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type archiveJob struct {
	id       string
	snapshot models.LibraryExport
}

// NewArchiver starts cfg.Workers goroutines draining a queue of cfg.QueueSize.
func NewArchiver(storage Storage, cfg Config, logger *slog.Logger) *Archiver {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 16
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &Archiver{
		storage: storage,
		logger:  logger,
		timeout: cfg.Timeout,
		now:     func() time.Time { return time.Now().UTC() },
		status:  make(map[string]models.ArchiveJob),
		jobs:    make(chan archiveJob, cfg.QueueSize),
		ctx:     ctx,
		cancel:  cancel,
	}

	a.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go a.worker()
	}

	return a
}

// Enqueue schedules an upload of snapshot and returns the pending job.
func (a *Archiver) Enqueue(ctx context.Context, snapshot models.LibraryExport) (models.ArchiveJob, error) {
	if a.storage == nil {
		return models.ArchiveJob{}, ErrStorageUnavailable
	}
	if err := ctx.Err(); err != nil {
		return models.ArchiveJob{}, err
	}

	a.closeMu.RLock()
	defer a.closeMu.RUnlock()
	if a.closed {
		return models.ArchiveJob{}, errArchiverClosed
	}

	job := models.ArchiveJob{
		ID:        uuid.NewString(),
		Status:    models.ArchiveStatusPending,
		CreatedAt: a.now(),
	}
	a.setStatus(job)

	select {
	case <-ctx.Done():
		a.forget(job.ID)
		return models.ArchiveJob{}, ctx.Err()
	case a.jobs <- archiveJob{id: job.ID, snapshot: snapshot}:
		return job, nil
	}
}

// Job reports the current status of an archive job.
func (a *Archiver) Job(id string) (models.ArchiveJob, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	job, ok := a.status[id]
	if !ok {
		return models.ArchiveJob{}, fmt.Errorf("%w: %q", ErrJobNotFound, id)
	}
	return job, nil
}

// Shutdown stops accepting jobs and waits for the workers to drain the
// queue. If ctx expires first, in-flight uploads are cancelled and every job
// still pending is marked failed.
func (a *Archiver) Shutdown(ctx context.Context) error {
	a.closeMu.Lock()
	if !a.closed {
		a.closed = true
		close(a.jobs)
	}
	a.closeMu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.cancel()
		return nil
	case <-ctx.Done():
		a.cancel()
		a.failPending()
		return ctx.Err()
	}
}

func (a *Archiver) worker() {
	defer a.wg.Done()

	for job := range a.jobs {
		a.handleJob(job)
	}
}

func (a *Archiver) handleJob(job archiveJob) {
	if err := a.ctx.Err(); err != nil {
		a.recordFailure(job.id)
		return
	}

	body, err := json.MarshalIndent(job.snapshot, "", "  ")
	if err != nil {
		a.logger.Error("encode library archive", "jobId", job.id, "error", err)
		a.recordFailure(job.id)
		return
	}

	ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
	defer cancel()

	location, err := a.storage.Save(ctx, job.id+".json", bytes.NewReader(body))
	if err != nil {
		a.logger.Error("library archive upload failed", "jobId", job.id, "error", err)
		a.recordFailure(job.id)
		return
	}

	a.recordSuccess(job.id, location, int64(len(body)))
	a.logger.Info("library archive uploaded", "jobId", job.id, "location", location, "size", len(body))
}

func (a *Archiver) recordFailure(id string) {
	a.update(id, func(j *models.ArchiveJob) {
		j.Status = models.ArchiveStatusFailed
	})
}

func (a *Archiver) recordSuccess(id, location string, size int64) {
	a.update(id, func(j *models.ArchiveJob) {
		j.Status = models.ArchiveStatusReady
		j.Location = location
		j.Size = size
	})
}

func (a *Archiver) update(id string, fn func(*models.ArchiveJob)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	job, ok := a.status[id]
	if !ok {
		return
	}
	fn(&job)
	a.status[id] = job
}

func (a *Archiver) failPending() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for id, job := range a.status {
		if job.Status == models.ArchiveStatusPending {
			job.Status = models.ArchiveStatusFailed
			a.status[id] = job
		}
	}
}

func (a *Archiver) setStatus(job models.ArchiveJob) {
	a.mu.Lock()
	a.status[job.ID] = job
	a.mu.Unlock()
}

func (a *Archiver) forget(id string) {
	a.mu.Lock()
	delete(a.status, id)
	a.mu.Unlock()
}
