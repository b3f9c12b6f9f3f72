package storage

import (
	"context"
	"io"
)

// PutInput describes a product image upload.
type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

// Storage holds admin-uploaded product images; the returned URL is what gets
// sent to the catalog API.
type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
