package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sort"
	"sync"
	"testing"
	"time"

	"educator-site/internal/models"
)

var errBoom = errors.New("boom")

type memRepo struct {
	mu        sync.Mutex
	photos    map[int]models.Photo
	nextID    int
	listCalls int
	createErr error
	listErr   error
}

func newMemRepo() *memRepo {
	return &memRepo{photos: map[int]models.Photo{}, nextID: 1}
}

func (r *memRepo) List(_ context.Context) ([]models.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Photo, 0, len(r.photos))
	for _, p := range r.photos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder > out[j].DisplayOrder
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memRepo) Get(_ context.Context, id int) (*models.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.photos[id]
	if !ok {
		return nil, models.ErrPhotoNotFound
	}
	return &p, nil
}

func (r *memRepo) Create(_ context.Context, title, imageURL, storageKey string) (*models.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	p := models.Photo{ID: r.nextID, Title: title, ImageURL: imageURL, StorageKey: storageKey, CreatedAt: time.Now()}
	r.photos[p.ID] = p
	r.nextID++
	return &p, nil
}

func (r *memRepo) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.photos[id]
	delete(r.photos, id)
	return ok, nil
}

func (r *memRepo) SetDisplayOrder(_ context.Context, id, order int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.photos[id]
	if !ok {
		return models.ErrPhotoNotFound
	}
	p.DisplayOrder = order
	r.photos[id] = p
	return nil
}

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *memStorage) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return "", s.putErr
	}
	s.objects[key] = data
	s.types[key] = contentType
	return "https://cdn.example/" + key, nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.GalleryEvent
}

func (p *recordingPublisher) Publish(evt models.GalleryEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func pngDataURL(t *testing.T) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t))
}
