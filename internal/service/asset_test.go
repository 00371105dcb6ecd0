package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devlogapi/internal/storage"
	"devlogapi/internal/storage/mocks"
)

func TestAssetService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := new(mocks.MockStorage)
		svc := NewAssetService(store)

		var putKey string
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "image/png" && opt.Size == 42 &&
				opt.Metadata["original-filename"] == "dragon.png"
		})).Run(func(args mock.Arguments) {
			putKey = args.String(1)
		}).Return(func(_ context.Context, key string, _ io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
		}, nil)
		store.On("PresignGet", ctx, mock.Anything, AssetURLExpiry).
			Return("https://minio.local/presigned", nil)

		got, err := svc.Upload(ctx, strings.NewReader("png bytes"), "dragon.png", "image/png", 42)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(putKey, "assets/"))
		assert.True(t, strings.HasSuffix(putKey, ".png"))
		assert.Equal(t, putKey, got.Key)
		assert.Equal(t, "https://minio.local/presigned", got.URL)
		assert.Equal(t, int64(42), got.Size)
		assert.Equal(t, "image/png", got.ContentType)
		store.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc := NewAssetService(new(mocks.MockStorage))
		_, err := svc.Upload(ctx, nil, "dragon.png", "image/png", 42)
		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("storage error", func(t *testing.T) {
		store := new(mocks.MockStorage)
		svc := NewAssetService(store)

		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket gone"))

		_, err := svc.Upload(ctx, strings.NewReader("x"), "a.png", "image/png", 1)
		assert.Error(t, err)
		store.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("presign error", func(t *testing.T) {
		store := new(mocks.MockStorage)
		svc := NewAssetService(store)

		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "assets/x.png"}, nil)
		store.On("PresignGet", ctx, mock.Anything, AssetURLExpiry).
			Return("", errors.New("presign failed"))

		_, err := svc.Upload(ctx, strings.NewReader("x"), "a.png", "image/png", 1)
		assert.Error(t, err)
	})
}

func TestAssetService_URL(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := new(mocks.MockStorage)
		svc := NewAssetService(store)

		store.On("PresignGet", ctx, "assets/x.png", AssetURLExpiry).
			Return("https://minio.local/presigned", nil)

		url, err := svc.URL(ctx, "assets/x.png")
		assert.NoError(t, err)
		assert.Equal(t, "https://minio.local/presigned", url)
	})

	t.Run("empty key", func(t *testing.T) {
		svc := NewAssetService(new(mocks.MockStorage))
		_, err := svc.URL(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}
