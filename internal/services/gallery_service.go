package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"educator-site/internal/models"
	"educator-site/internal/storage"

	"github.com/dustin/go-humanize"
	"github.com/h2non/filetype"
	gocache "github.com/patrickmn/go-cache"
)

const photosCacheKey = "photos"

// PhotoRepository persists gallery records.
type PhotoRepository interface {
	List(ctx context.Context) ([]models.Photo, error)
	Get(ctx context.Context, id int) (*models.Photo, error)
	Create(ctx context.Context, title, imageURL, storageKey string) (*models.Photo, error)
	Delete(ctx context.Context, id int) (bool, error)
	SetDisplayOrder(ctx context.Context, id, order int) error
}

// Publisher receives gallery change notifications.
type Publisher interface {
	Publish(evt models.GalleryEvent)
}

type GalleryService struct {
	repo    PhotoRepository
	storage storage.ObjectStorage
	cache   *gocache.Cache
	pub     Publisher

	// generation counts writes; a list read only fills the cache if none happened meanwhile.
	mu         sync.Mutex
	generation uint64
}

// NewGalleryService wires the gallery. A cacheTTL of zero or less disables list caching.
func NewGalleryService(repo PhotoRepository, store storage.ObjectStorage, cacheTTL time.Duration, pub Publisher) *GalleryService {
	s := &GalleryService{repo: repo, storage: store, pub: pub}
	if cacheTTL > 0 {
		s.cache = gocache.New(cacheTTL, 2*cacheTTL)
	}
	return s
}

func (s *GalleryService) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(photosCacheKey); ok {
			return clonePhotos(cached.([]models.Photo)), nil
		}
	}

	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	photos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	if s.cache != nil {
		s.mu.Lock()
		if s.generation == gen {
			s.cache.SetDefault(photosCacheKey, clonePhotos(photos))
		}
		s.mu.Unlock()
	}
	return clonePhotos(photos), nil
}

// AddPhoto decodes the image, stores it and records it in the gallery.
func (s *GalleryService) AddPhoto(ctx context.Context, title, image string) (*models.Photo, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(image) == "" {
		return nil, models.ErrMissingFields
	}

	data, mime, ext, err := DecodeImage(image)
	if err != nil {
		return nil, err
	}

	key := storage.GalleryKey(ext)
	url, err := s.storage.Put(ctx, key, data, mime)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	photo, err := s.repo.Create(ctx, title, url, key)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Warnf("gallery: failed to remove orphaned %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("save photo: %w", err)
	}

	log.Infof("gallery: added photo %d %q (%s, %s)", photo.ID, title, mime, humanize.Bytes(uint64(len(data))))
	s.changed(models.GalleryEvent{Event: "photo_added", Photo: photo, ID: photo.ID})
	return photo, nil
}

// DeletePhoto removes a photo and its stored object. Unknown ids are not an error.
func (s *GalleryService) DeletePhoto(ctx context.Context, id int) error {
	photo, err := s.repo.Get(ctx, id)
	if errors.Is(err, models.ErrPhotoNotFound) {
		log.Debugf("gallery: delete of unknown photo %d", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get photo: %w", err)
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if !removed {
		return nil
	}

	if photo.StorageKey != "" {
		if err := s.storage.Delete(ctx, photo.StorageKey); err != nil {
			log.Warnf("gallery: photo %d removed but object %s remains: %v", id, photo.StorageKey, err)
		}
	}

	log.Infof("gallery: deleted photo %d", id)
	s.changed(models.GalleryEvent{Event: "photo_deleted", ID: id})
	return nil
}

func (s *GalleryService) ReorderPhoto(ctx context.Context, id, order int) error {
	if err := s.repo.SetDisplayOrder(ctx, id, order); err != nil {
		if errors.Is(err, models.ErrPhotoNotFound) {
			return err
		}
		return fmt.Errorf("reorder photo: %w", err)
	}

	s.changed(models.GalleryEvent{Event: "photo_reordered", ID: id})
	return nil
}

func (s *GalleryService) changed(evt models.GalleryEvent) {
	s.mu.Lock()
	s.generation++
	if s.cache != nil {
		s.cache.Delete(photosCacheKey)
	}
	s.mu.Unlock()

	if s.pub != nil {
		evt.Timestamp = time.Now().UnixMilli()
		s.pub.Publish(evt)
	}
}

func clonePhotos(photos []models.Photo) []models.Photo {
	out := make([]models.Photo, len(photos))
	copy(out, photos)
	return out
}

// DecodeImage accepts raw base64 or a data URL and returns the bytes with their
// detected MIME type and extension. Non-image payloads are rejected.
func DecodeImage(payload string) (data []byte, mime, ext string, err error) {
	if i := strings.Index(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}
	payload = strings.TrimSpace(payload)

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil || len(data) == 0 {
		return nil, "", "", models.ErrInvalidImage
	}

	if !filetype.IsImage(data) {
		return nil, "", "", models.ErrInvalidImage
	}
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return nil, "", "", models.ErrInvalidImage
	}

	return data, kind.MIME.Value, kind.Extension, nil
}
