package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"devlogapi/internal/storage"
)

// AssetURLExpiry is how long presigned asset download URLs stay valid.
const AssetURLExpiry = 24 * time.Hour

// Asset describes an uploaded image asset.
type Asset struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// AssetService handles image uploads referenced by image elements and card
// icons.
type AssetService interface {
	// Upload streams the content to object storage under a generated key and
	// returns the asset with a presigned download URL.
	// originalFilename is used only to extract the extension.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*Asset, error)

	// URL re-presigns a download URL for an existing asset key.
	URL(ctx context.Context, key string) (string, error)
}

type assetService struct {
	store storage.Storage
}

// NewAssetService constructs a new AssetService.
func NewAssetService(store storage.Storage) AssetService {
	return &assetService{store: store}
}

func (s *assetService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*Asset, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("assets", uuid.New().String()+ext))

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, AssetURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign url: %w", err)
	}

	return &Asset{
		Key:         info.Key,
		URL:         url,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *assetService) URL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrIDRequired
	}
	url, err := s.store.PresignGet(ctx, key, AssetURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign url: %w", err)
	}
	return url, nil
}
