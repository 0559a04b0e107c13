package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"

	"alfredoptarigan/salary-estimator/internal/config"
)

// ErrNotFound is returned when a named object does not exist in the store.
var ErrNotFound = errors.New("object not found")

// ArtifactStore gives read access to the dataset and model files.
type ArtifactStore interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Describe() string
}

// OpenStore returns the store selected by STORAGE_BACKEND.
func OpenStore(cfg *config.Config) (ArtifactStore, error) {
	switch cfg.Storage.Backend {
	case config.StorageLocal:
		return NewLocalStore(cfg.Storage.Root), nil
	case config.StorageMinio:
		client, err := config.InitObjectStore(cfg)
		if err != nil {
			return nil, err
		}
		return NewMinioStore(client, cfg.Minio.Bucket, cfg.Minio.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

type localStore struct {
	root string
}

func NewLocalStore(root string) ArtifactStore {
	return &localStore{root: root}
}

// Open implements ArtifactStore.
func (s *localStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, nil
}

func (s *localStore) Describe() string {
	return "local:" + s.root
}

type minioStore struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewMinioStore(client *minio.Client, bucket, prefix string) ArtifactStore {
	return &minioStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *minioStore) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open implements ArtifactStore.
func (s *minioStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	// StatObject surfaces a missing key up front; GetObject defers it to the first Read.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return obj, nil
}

func (s *minioStore) Describe() string {
	return fmt.Sprintf("minio:%s/%s", s.bucket, s.prefix)
}

// OpenDecoded opens name and transparently decompresses .zst and .gz files.
func OpenDecoded(ctx context.Context, store ArtifactStore, name string) (io.ReadCloser, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to open zstd stream %s: %w", name, err)
		}
		return &decodedReader{Reader: dec, closeFn: func() error {
			dec.Close()
			return rc.Close()
		}}, nil
	case ".gz":
		gz, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", name, err)
		}
		return &decodedReader{Reader: gz, closeFn: func() error {
			gz.Close()
			return rc.Close()
		}}, nil
	}
	return rc, nil
}

type decodedReader struct {
	io.Reader
	closeFn func() error
}

func (d *decodedReader) Close() error {
	return d.closeFn()
}
