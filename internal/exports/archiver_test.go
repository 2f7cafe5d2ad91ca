package exports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/assetflow/backend/internal/models"
)

type storageStub struct {
	mu    sync.Mutex
	saved map[string][]byte
	err   error
}

func (s *storageStub) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	_ = ctx
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[name] = data
	return fmt.Sprintf("https://cdn.example.com/exports/%s", name), nil
}

func (s *storageStub) get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.saved[name]
	return data, ok
}

func newTestArchiver(t *testing.T, storage Storage) *Archiver {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := NewArchiver(storage, Config{QueueSize: 1, Workers: 1, Timeout: time.Second}, logger)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = a.Shutdown(ctx)
	})
	return a
}

func TestArchiverSuccess(t *testing.T) {
	storage := &storageStub{}
	a := newTestArchiver(t, storage)

	snapshot := models.LibraryExport{
		Collections: []models.Collection{{ID: models.DefaultCollectionID, Name: "All Assets"}},
		Exported:    time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	job, err := a.Enqueue(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if job.Status != models.ArchiveStatusPending || job.ID == "" {
		t.Fatalf("unexpected pending job %+v", job)
	}

	waitForCondition(t, func() bool {
		current, err := a.Job(job.ID)
		return err == nil && current.Status == models.ArchiveStatusReady
	}, time.Second)

	current, _ := a.Job(job.ID)
	if current.Location != "https://cdn.example.com/exports/"+job.ID+".json" {
		t.Fatalf("unexpected location %q", current.Location)
	}

	data, ok := storage.get(job.ID + ".json")
	if !ok {
		t.Fatal("expected archive to be saved under the job id")
	}
	if current.Size != int64(len(data)) {
		t.Fatalf("size %d does not match payload %d", current.Size, len(data))
	}
	var decoded models.LibraryExport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode archive: %v", err)
	}
	if len(decoded.Collections) != 1 || decoded.Collections[0].Name != "All Assets" {
		t.Fatalf("unexpected archive contents %+v", decoded)
	}
}

func TestArchiverFailure(t *testing.T) {
	a := newTestArchiver(t, &storageStub{err: errors.New("access denied")})

	job, err := a.Enqueue(context.Background(), models.LibraryExport{})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	waitForCondition(t, func() bool {
		current, err := a.Job(job.ID)
		return err == nil && current.Status == models.ArchiveStatusFailed
	}, time.Second)
}

func TestArchiverWithoutStorage(t *testing.T) {
	a := newTestArchiver(t, nil)
	if _, err := a.Enqueue(context.Background(), models.LibraryExport{}); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected storage unavailable got %v", err)
	}
}

func TestArchiverUnknownJob(t *testing.T) {
	a := newTestArchiver(t, &storageStub{})
	if _, err := a.Job("missing"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected job not found got %v", err)
	}
}

func TestArchiverRejectsAfterShutdown(t *testing.T) {
	a := NewArchiver(&storageStub{}, Config{}, nil)
	if err := a.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if _, err := a.Enqueue(context.Background(), models.LibraryExport{}); !errors.Is(err, errArchiverClosed) {
		t.Fatalf("expected closed archiver got %v", err)
	}
}

type slowStorage struct {
	delay time.Duration
}

func (s slowStorage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.delay):
		return name, nil
	}
}

func enqueueN(t *testing.T, a *Archiver, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		job, err := a.Enqueue(context.Background(), models.LibraryExport{})
		if err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
		ids = append(ids, job.ID)
	}
	return ids
}

func TestArchiverShutdownDrainsQueue(t *testing.T) {
	a := NewArchiver(slowStorage{delay: 20 * time.Millisecond}, Config{QueueSize: 8, Workers: 1, Timeout: time.Second}, nil)
	ids := enqueueN(t, a, 5)

	if err := a.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	for _, id := range ids {
		job, err := a.Job(id)
		if err != nil {
			t.Fatalf("job %s: %v", id, err)
		}
		if job.Status != models.ArchiveStatusReady {
			t.Fatalf("job %s: got status %q want %q", id, job.Status, models.ArchiveStatusReady)
		}
	}
}

func TestArchiverShutdownDeadlineFailsPending(t *testing.T) {
	a := NewArchiver(slowStorage{delay: time.Minute}, Config{QueueSize: 8, Workers: 1, Timeout: time.Minute}, nil)
	ids := enqueueN(t, a, 5)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := a.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v want deadline exceeded", err)
	}

	for _, id := range ids {
		job, err := a.Job(id)
		if err != nil {
			t.Fatalf("job %s: %v", id, err)
		}
		if job.Status != models.ArchiveStatusFailed {
			t.Fatalf("job %s: got status %q want %q", id, job.Status, models.ArchiveStatusFailed)
		}
	}
}

func TestArchiverEnqueueDuringShutdown(t *testing.T) {
	a := NewArchiver(slowStorage{delay: time.Millisecond}, Config{QueueSize: 2, Workers: 2, Timeout: time.Second}, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := a.Enqueue(context.Background(), models.LibraryExport{}); err != nil {
				errs <- err
			}
		}()
	}

	if err := a.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if !errors.Is(err, errArchiverClosed) {
			t.Fatalf("unexpected enqueue error %v", err)
		}
	}
}

func waitForCondition(t *testing.T, predicate func() bool, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if predicate() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}
