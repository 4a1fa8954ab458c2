package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

var (
	// ErrFetch is returned when the source cannot be read.
	ErrFetch = errors.New("fetching dataset")
	// ErrDecode is returned when the source is not a valid dataset document.
	ErrDecode = errors.New("decoding dataset")
)

// Loader retrieves a dataset document exactly once. There are no retries;
// the only deadline is the one carried by the caller's context.
type Loader struct {
	// Client is used for http(s) sources. Defaults to http.DefaultClient.
	Client *http.Client
}

// Load reads the dataset from a file path or an http(s) URL.
func Load(ctx context.Context, source string) (Dataset, error) {
	return (&Loader{}).Load(ctx, source)
}

// Load reads the dataset from a file path or an http(s) URL.
func (l *Loader) Load(ctx context.Context, source string) (Dataset, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFetch, source, err)
	}
	defer rc.Close()

	ds, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return ds, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !isURL(source) {
		return os.Open(source)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Decode parses a JSON array of records. The document must hold exactly one
// value; anything after it is an error.
func Decode(r io.Reader) (Dataset, error) {
	dec := json.NewDecoder(r)
	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected content after top-level value")
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if ds == nil {
		ds = Dataset{}
	}
	return ds, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
