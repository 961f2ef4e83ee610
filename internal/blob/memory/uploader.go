// Package memory provides an in-memory blob.Uploader for tests.
package memory

import (
	"context"
	"sync"
)

type Uploader struct {
	mu      sync.Mutex
	objects map[string][]byte

	// PutErr, when set, is returned by Put instead of storing anything.
	PutErr error
}

func NewUploader() *Uploader {
	return &Uploader{objects: make(map[string][]byte)}
}

func (u *Uploader) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.PutErr != nil {
		return "", u.PutErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	u.objects[key] = cp
	return "memory://" + key, nil
}

// Object returns the stored bytes for key. Test helper.
func (u *Uploader) Object(key string) ([]byte, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	b, ok := u.objects[key]
	return b, ok
}
