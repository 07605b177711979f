package kv

import (
	"context"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskStore is a Store writing one file per key under a base directory.
type DiskStore struct {
	d *diskv.Diskv
}

// NewDiskStore opens (creating if needed) a file-backed store rooted at
// basePath. Colons in keys become directory separators, so "weather:geo:x"
// lands in weather/geo/.
func NewDiskStore(basePath string) *DiskStore {
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath: basePath,
		AdvancedTransform: func(key string) *diskv.PathKey {
			parts := strings.Split(key, ":")
			return &diskv.PathKey{
				Path:     parts[:len(parts)-1],
				FileName: parts[len(parts)-1],
			}
		},
		InverseTransform: func(pk *diskv.PathKey) string {
			if len(pk.Path) == 0 {
				return pk.FileName
			}
			return strings.Join(pk.Path, ":") + ":" + pk.FileName
		},
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *DiskStore) Get(_ context.Context, key string) (string, bool, error) {
	if !s.d.Has(key) {
		return "", false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return string(val), true, nil
}

func (s *DiskStore) Set(_ context.Context, key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *DiskStore) Delete(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("failed to erase key %s: %w", key, err)
	}
	return nil
}

func (s *DiskStore) Close() error { return nil }
