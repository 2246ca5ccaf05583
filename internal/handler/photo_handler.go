package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/photodrop-app/photodrop-backend/internal/models"
	"github.com/photodrop-app/photodrop-backend/internal/service"
)

type PhotoHandler struct {
	photoService *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}

	photo, err := h.photoService.Upload(
		file,
		c.FormValue("title"),
		c.FormValue("description"),
		c.FormValue("date"),
	)
	if err != nil {
		if errors.Is(err, service.ErrNotAnImage) || errors.Is(err, service.ErrFileTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.PhotoBody{
		Message: "Upload success",
		Photo:   photo,
	})
}

func (h *PhotoHandler) List(c *fiber.Ctx) error {
	photos, err := h.photoService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	if photos == nil {
		photos = []models.Photo{}
	}

	// Bare array, no envelope.
	return c.JSON(photos)
}

func (h *PhotoHandler) Get(c *fiber.Ctx) error {
	id, ok := parsePhotoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid id"))
	}

	photo, err := h.photoService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(photo)
}

func (h *PhotoHandler) Patch(c *fiber.Ctx) error {
	id, ok := parsePhotoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid id"))
	}

	var upd models.PhotoUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	updated, err := h.photoService.Patch(id, upd)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdatableFields):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrPhotoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
		}
	}

	return c.JSON(models.UpdatedBody{
		Message: "Update success",
		Updated: updated,
	})
}

func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parsePhotoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid id"))
	}

	if err := h.photoService.Delete(id); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.MessageBody{Message: "Delete success"})
}

func parsePhotoID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
