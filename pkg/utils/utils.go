package utils

import (
	"crypto/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewUploadName(field string, originalName string, t time.Time) (string, error)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// NewUploadName returns "<field>-<ulid><ext>". The ULID carries the millisecond
// timestamp plus 80 random bits; ext is taken from originalName.
func (u *utils) NewUploadName(field string, originalName string, t time.Time) (string, error) {
	id, err := u.NewULIDFromTimestamp(t)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(filepath.Base(originalName))
	if strings.ContainsAny(ext, `/\`) {
		ext = ""
	}

	if field == "" {
		field = "file"
	}

	return field + "-" + strings.ToLower(id) + ext, nil
}
