package poster

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"net/http"
	"strings"

	"movieapp/config"
	"movieapp/service"
)

// Status is the lifecycle of a poster task.
type Status int

const (
	StatusPending Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Done reports whether the task reached a final state.
func (s Status) Done() bool {
	return s == StatusLoaded || s == StatusFailed
}

// Result is what a row renders in its poster region. Art is the poster
// rendered at the loader size; Image lets callers render it again at the
// size of their own container.
type Result struct {
	Status Status
	Image  image.Image
	Art    string
	Err    error
}

// Fetcher downloads raw image bytes. *service.Client implements it.
type Fetcher interface {
	FetchPoster(ctx context.Context, url string) ([]byte, error)
}

// Loader creates poster tasks that render at a fixed cell size.
type Loader struct {
	fetcher Fetcher
	cols    int
	rows    int
}

func NewLoader(fetcher Fetcher, cols, rows int) *Loader {
	return &Loader{fetcher: fetcher, cols: cols, rows: rows}
}

// FromConfig builds a loader backed by the retrying poster client.
func FromConfig(cfg config.PosterConfig, opts ...service.Option) *Loader {
	opts = append([]service.Option{service.WithMaxAttempts(cfg.MaxAttempts)}, opts...)
	client := service.NewClient(&http.Client{Timeout: cfg.Timeout}, opts...)
	return NewLoader(client, cfg.Width, cfg.Height)
}

// Size returns the art size in terminal cells.
func (l *Loader) Size() (cols, rows int) {
	return l.cols, l.rows
}

// Task is one cancellable poster fetch. A task is run at most once.
type Task struct {
	URL string

	loader *Loader
	ctx    context.Context
	cancel context.CancelFunc
}

func (l *Loader) NewTask(url string) *Task {
	ctx, cancel := context.WithCancel(context.Background())
	return &Task{
		URL:    strings.TrimSpace(url),
		loader: l,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Cancel abandons the task. A blocked Run returns a failed result soon after.
func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) Canceled() bool {
	return t.ctx.Err() != nil
}

// Run fetches, decodes and renders the poster. It blocks and is meant to be
// called off the UI loop.
func (t *Task) Run() Result {
	res := t.run()
	slog.Debug("poster task finished", "url", t.URL, "status", res.Status.String(), "err", res.Err)
	return res
}

func (t *Task) run() Result {
	if err := t.ctx.Err(); err != nil {
		return Result{Status: StatusFailed, Err: err}
	}
	if t.URL == "" {
		return Result{Status: StatusFailed, Err: errors.New("movie has no poster url")}
	}
	if t.loader == nil || t.loader.fetcher == nil {
		return Result{Status: StatusFailed, Err: errors.New("no poster fetcher configured")}
	}

	data, err := t.loader.fetcher.FetchPoster(t.ctx, t.URL)
	if err != nil {
		return Result{Status: StatusFailed, Err: err}
	}
	img, err := Decode(data)
	if err != nil {
		return Result{Status: StatusFailed, Err: err}
	}
	if err := t.ctx.Err(); err != nil {
		return Result{Status: StatusFailed, Err: err}
	}
	return Result{Status: StatusLoaded, Image: img, Art: Render(img, t.loader.cols, t.loader.rows)}
}
