package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ItfStorage persists uploaded objects and returns the URL they are served from.
type ItfStorage interface {
	Put(ctx context.Context, name string, body io.Reader, contentType string) (string, error)
}

var ErrInvalidName = errors.New("invalid object name")

type localStorage struct {
	dir       string
	urlPrefix string
}

// NewLocal stores objects as files in dir; urlPrefix is the public path dir is
// mounted under (e.g. "/uploads").
func NewLocal(dir string, urlPrefix string) (ItfStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &localStorage{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}, nil
}

func (s *localStorage) Put(ctx context.Context, name string, body io.Reader, _ string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return s.urlPrefix + "/" + name, nil
}
