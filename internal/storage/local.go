package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local writes product images to disk and serves them under a URL prefix.
// The default driver for development.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{
		BaseDir:   baseDir,
		URLPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

func (l *Local) Put(_ context.Context, r io.Reader, in PutInput) (PutResult, error) {
	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return PutResult{}, fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	key := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(l.BaseDir, key))
	if err != nil {
		return PutResult{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return PutResult{}, err
	}

	return PutResult{Key: key, URL: l.URLPrefix + "/" + key}, nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	// key comes from Put; refuse anything that escapes the base dir
	if strings.Contains(key, "/") || strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key: %q", key)
	}
	err := os.Remove(filepath.Join(l.BaseDir, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
