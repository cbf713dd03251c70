package handlers

import (
	"net/http"
	"strconv"

	"educator-site/internal/models"
	"educator-site/internal/services"
	"educator-site/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ListPhotosHandler returns every gallery photo in display order.
func ListPhotosHandler(gallery *services.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := gallery.ListPhotos(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(models.PhotoListResponse{Photos: photos})
	}
}

// CreatePhotoHandler uploads a base64 image with a title.
func CreatePhotoHandler(gallery *services.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreatePhotoRequest
		if err := utils.SafeJSONParse(c.Body(), &req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid request")
		}

		photo, err := gallery.AddPhoto(c.Context(), req.Title, req.Image)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(models.CreatePhotoResponse{Success: true, ID: photo.ID, ImageURL: photo.ImageURL})
	}
}

// DeletePhotoHandler removes a photo given as ?id= or as a path parameter.
func DeletePhotoHandler(gallery *services.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := c.Params("id")
		if idStr == "" {
			idStr = c.Query("id")
		}
		if idStr == "" {
			return errorJSON(c, http.StatusBadRequest, msgMissingID)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return errorJSON(c, http.StatusBadRequest, "invalid photo id")
		}

		if err := gallery.DeletePhoto(c.Context(), id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// ReorderPhotoHandler sets the display order of a photo.
func ReorderPhotoHandler(gallery *services.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return errorJSON(c, http.StatusBadRequest, "invalid photo id")
		}

		var req models.ReorderPhotoRequest
		if err := utils.SafeJSONParse(c.Body(), &req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid request")
		}

		if err := gallery.ReorderPhoto(c.Context(), id, req.DisplayOrder); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
