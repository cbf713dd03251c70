package services

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"educator-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImage(t *testing.T) {
	raw := pngBytes(t)
	std := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{name: "data url", payload: "data:image/png;base64," + std},
		{name: "raw base64", payload: std},
		{name: "unpadded base64", payload: base64.RawStdEncoding.EncodeToString(raw)},
		{name: "not base64", payload: "%%%", wantErr: true},
		{name: "not an image", payload: base64.StdEncoding.EncodeToString([]byte("hello world, plain text")), wantErr: true},
		{name: "empty after prefix", payload: "data:image/png;base64,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mime, ext, err := DecodeImage(tt.payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidImage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, raw, data)
			assert.Equal(t, "image/png", mime)
			assert.Equal(t, "png", ext)
		})
	}
}

func TestGalleryService_AddPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and records", func(t *testing.T) {
		repo, store, pub := newMemRepo(), newMemStorage(), &recordingPublisher{}
		svc := NewGalleryService(repo, store, time.Minute, pub)

		photo, err := svc.AddPhoto(ctx, "  Праздник осени ", pngDataURL(t))
		require.NoError(t, err)

		assert.Equal(t, 1, photo.ID)
		assert.Equal(t, "Праздник осени", photo.Title)
		assert.Regexp(t, `^https://cdn\.example/gallery/[0-9a-f-]{36}\.png$`, photo.ImageURL)
		require.Len(t, store.objects, 1)
		assert.Equal(t, "image/png", store.types[photo.StorageKey])

		require.Len(t, pub.events, 1)
		assert.Equal(t, "photo_added", pub.events[0].Event)
		assert.Equal(t, photo.ID, pub.events[0].ID)
		assert.NotZero(t, pub.events[0].Timestamp)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewGalleryService(newMemRepo(), newMemStorage(), 0, nil)

		_, err := svc.AddPhoto(ctx, "", pngDataURL(t))
		assert.ErrorIs(t, err, models.ErrMissingFields)

		_, err = svc.AddPhoto(ctx, "   ", pngDataURL(t))
		assert.ErrorIs(t, err, models.ErrMissingFields)

		_, err = svc.AddPhoto(ctx, "title", "")
		assert.ErrorIs(t, err, models.ErrMissingFields)
	})

	t.Run("invalid image", func(t *testing.T) {
		store := newMemStorage()
		svc := NewGalleryService(newMemRepo(), store, 0, nil)

		_, err := svc.AddPhoto(ctx, "title", base64.StdEncoding.EncodeToString([]byte("not an image at all")))
		assert.ErrorIs(t, err, models.ErrInvalidImage)
		assert.Empty(t, store.objects)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, store := newMemRepo(), newMemStorage()
		store.putErr = errBoom
		svc := NewGalleryService(repo, store, 0, nil)

		_, err := svc.AddPhoto(ctx, "title", pngDataURL(t))
		assert.ErrorIs(t, err, errBoom)
		assert.Empty(t, repo.photos)
	})

	t.Run("db failure removes object", func(t *testing.T) {
		repo, store := newMemRepo(), newMemStorage()
		repo.createErr = errBoom
		svc := NewGalleryService(repo, store, 0, nil)

		_, err := svc.AddPhoto(ctx, "title", pngDataURL(t))
		assert.ErrorIs(t, err, errBoom)
		assert.Empty(t, store.objects)
	})
}

func TestGalleryService_ListPhotos(t *testing.T) {
	ctx := context.Background()

	t.Run("cached until a write", func(t *testing.T) {
		repo := newMemRepo()
		svc := NewGalleryService(repo, newMemStorage(), time.Minute, nil)

		photos, err := svc.ListPhotos(ctx)
		require.NoError(t, err)
		assert.NotNil(t, photos)
		assert.Empty(t, photos)

		_, err = svc.ListPhotos(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.listCalls)

		_, err = svc.AddPhoto(ctx, "a", pngDataURL(t))
		require.NoError(t, err)

		photos, err = svc.ListPhotos(ctx)
		require.NoError(t, err)
		assert.Len(t, photos, 1)
		assert.Equal(t, 2, repo.listCalls)
	})

	t.Run("ordered newest first", func(t *testing.T) {
		svc := NewGalleryService(newMemRepo(), newMemStorage(), 0, nil)
		for _, title := range []string{"a", "b", "c"} {
			_, err := svc.AddPhoto(ctx, title, pngDataURL(t))
			require.NoError(t, err)
		}
		require.NoError(t, svc.ReorderPhoto(ctx, 1, 10))

		photos, err := svc.ListPhotos(ctx)
		require.NoError(t, err)
		require.Len(t, photos, 3)
		assert.Equal(t, []string{"a", "c", "b"}, []string{photos[0].Title, photos[1].Title, photos[2].Title})
	})

	t.Run("repository error", func(t *testing.T) {
		repo := newMemRepo()
		repo.listErr = errBoom
		svc := NewGalleryService(repo, newMemStorage(), time.Minute, nil)

		_, err := svc.ListPhotos(ctx)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestGalleryService_DeletePhoto(t *testing.T) {
	ctx := context.Background()
	repo, store, pub := newMemRepo(), newMemStorage(), &recordingPublisher{}
	svc := NewGalleryService(repo, store, time.Minute, pub)

	photo, err := svc.AddPhoto(ctx, "a", pngDataURL(t))
	require.NoError(t, err)

	require.NoError(t, svc.DeletePhoto(ctx, photo.ID))
	assert.Empty(t, repo.photos)
	assert.Empty(t, store.objects)
	require.Len(t, pub.events, 2)
	assert.Equal(t, "photo_deleted", pub.events[1].Event)

	t.Run("unknown id is not an error", func(t *testing.T) {
		assert.NoError(t, svc.DeletePhoto(ctx, 999))
		assert.Len(t, pub.events, 2)
	})
}

func TestGalleryService_ReorderPhoto(t *testing.T) {
	ctx := context.Background()
	svc := NewGalleryService(newMemRepo(), newMemStorage(), 0, nil)

	assert.ErrorIs(t, svc.ReorderPhoto(ctx, 42, 1), models.ErrPhotoNotFound)
}

// slowListRepo takes its snapshot, then holds it until released.
type slowListRepo struct {
	*memRepo
	listed  chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *slowListRepo) List(ctx context.Context) ([]models.Photo, error) {
	photos, err := r.memRepo.List(ctx)
	r.once.Do(func() {
		close(r.listed)
		<-r.release
	})
	return photos, err
}

func TestGalleryService_ListDuringWrite(t *testing.T) {
	ctx := context.Background()
	repo := &slowListRepo{memRepo: newMemRepo(), listed: make(chan struct{}), release: make(chan struct{})}
	svc := NewGalleryService(repo, newMemStorage(), time.Minute, nil)

	done := make(chan []models.Photo)
	go func() {
		photos, err := svc.ListPhotos(ctx)
		assert.NoError(t, err)
		done <- photos
	}()

	<-repo.listed
	_, err := svc.AddPhoto(ctx, "new", pngDataURL(t))
	require.NoError(t, err)
	close(repo.release)

	assert.Empty(t, <-done, "read started before the write")

	photos, err := svc.ListPhotos(ctx)
	require.NoError(t, err)
	assert.Len(t, photos, 1, "stale snapshot must not be cached")
}
