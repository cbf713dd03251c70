package models

import "time"

// Photo is a gallery image record.
type Photo struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	StorageKey   string    `json:"-"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreatePhotoRequest is the upload body. Image is base64, optionally as a data URL.
type CreatePhotoRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

type CreatePhotoResponse struct {
	Success  bool   `json:"success"`
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
}

type ReorderPhotoRequest struct {
	DisplayOrder int `json:"display_order"`
}

type PhotoListResponse struct {
	Photos []Photo `json:"photos"`
}

// GalleryEvent is pushed to live feed subscribers.
type GalleryEvent struct {
	Event     string `json:"event"` // "connected", "photo_added", "photo_deleted", "photo_reordered"
	Photo     *Photo `json:"photo,omitempty"`
	ID        int    `json:"id,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
