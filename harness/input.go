package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoSession indicates a missing input file with no session cookie to fetch it.
	ErrNoSession = errors.New("harness: input missing and no session configured")

	// ErrDownload indicates an unexpected HTTP status while fetching an input.
	ErrDownload = errors.New("harness: input download failed")
)

// DefaultBaseURL is the puzzle server.
const DefaultBaseURL = "https://adventofcode.com"

// DefaultYear is the event the solvers belong to.
const DefaultYear = 2025

// Loader locates day inputs on disk and downloads missing ones.
type Loader struct {
	// Dir holds the NN.txt input files.
	Dir string

	// Session is the value of the "session" cookie; empty disables downloads.
	Session string

	// BaseURL and Year build the download URL BaseURL/Year/day/N/input.
	BaseURL string
	Year    int

	// Client performs downloads; nil means http.DefaultClient.
	Client *http.Client

	// Logger reports downloads; nil discards.
	Logger logrus.FieldLogger
}

// NewLoader returns a Loader for dir using the default server and year.
func NewLoader(dir, session string) *Loader {
	return &Loader{
		Dir:     dir,
		Session: session,
		BaseURL: DefaultBaseURL,
		Year:    DefaultYear,
	}
}

// Path returns the file used for day.
func (l *Loader) Path(day int) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%02d.txt", day))
}

// Open returns the input of day, downloading it first when needed.
// The caller closes the returned file.
func (l *Loader) Open(ctx context.Context, day int) (io.ReadCloser, error) {
	path := l.Path(day)

	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("harness: Open: %w", err)
	}

	if err = l.download(ctx, day, path); err != nil {
		return nil, err
	}

	f, err = os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("harness: Open: %w", err)
	}

	return f, nil
}

// download fetches the input of day into path through a temporary file so an
// interrupted transfer never leaves a truncated input behind.
func (l *Loader) download(ctx context.Context, day int, path string) error {
	if strings.TrimSpace(l.Session) == "" {
		return fmt.Errorf("%w: %s", ErrNoSession, path)
	}
	if l.Logger != nil {
		l.Logger.WithField("day", day).Info("downloading input")
	}

	// 1) Make sure the input directory exists.
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("harness: download: %w", err)
	}

	// 2) Request the input with the session cookie.
	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(l.BaseURL, "/"), l.Year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("harness: download: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(l.Session)})

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("harness: download: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: day %d: %s", ErrDownload, day, res.Status)
	}

	// 3) Write next to the destination, then move into place.
	tmp, err := os.CreateTemp(l.Dir, fmt.Sprintf(".%02d-*.txt", day))
	if err != nil {
		return fmt.Errorf("harness: download: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, res.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("harness: download: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("harness: download: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("harness: download: %w", err)
	}

	return nil
}
