package service

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/photodrop-app/photodrop-backend/internal/models"
	"github.com/photodrop-app/photodrop-backend/internal/repository"
	"github.com/photodrop-app/photodrop-backend/pkg/storage"
	"github.com/photodrop-app/photodrop-backend/pkg/utils"
)

// MaxUploadSize caps a single photo at 5 MiB.
const MaxUploadSize = 5 * 1024 * 1024

type PhotoService struct {
	photoRepo *repository.PhotoRepository
	store     storage.Storage
	logger    *zap.Logger
}

func NewPhotoService(photoRepo *repository.PhotoRepository, store storage.Storage, logger *zap.Logger) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		store:     store,
		logger:    logger,
	}
}

// Upload validates the file, writes it to storage and inserts the metadata
// record. Validation failures happen before anything is persisted.
func (s *PhotoService) Upload(file *multipart.FileHeader, title, description, date string) (*models.Photo, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return nil, ErrNotAnImage
	}
	if file.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	fileName := utils.UploadFileName(file.Filename)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	path, err := s.store.Save(fileName, src)
	if err != nil {
		return nil, err
	}

	photo := &models.Photo{
		FileName:     fileName,
		OriginalName: file.Filename,
		Path:         path,
		Size:         file.Size,
		MimeType:     file.Header.Get("Content-Type"),
		Title:        title,
		Description:  description,
		Date:         date,
	}

	if err := s.photoRepo.Create(photo); err != nil {
		// Don't leave an orphaned file behind.
		_ = s.store.Delete(fileName)
		return nil, err
	}

	photo.PublicURL = s.store.PublicURL(fileName)
	s.logger.Info("photo uploaded",
		zap.Uint("photo_id", photo.ID),
		zap.String("filename", fileName),
		zap.Int64("size", photo.Size),
	)

	return photo, nil
}

func (s *PhotoService) List() ([]models.Photo, error) {
	photos, err := s.photoRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range photos {
		photos[i].PublicURL = s.store.PublicURL(photos[i].FileName)
	}
	return photos, nil
}

func (s *PhotoService) Get(id uint) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	photo.PublicURL = s.store.PublicURL(photo.FileName)
	return photo, nil
}

// Patch applies title/description updates and returns the column set that
// was written, updated_at included.
func (s *PhotoService) Patch(id uint, upd models.PhotoUpdate) (map[string]interface{}, error) {
	if upd.Empty() {
		return nil, ErrNoUpdatableFields
	}

	fields := upd.Fields()
	fields["updated_at"] = time.Now()

	matched, err := s.photoRepo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrPhotoNotFound
	}

	return fields, nil
}

// Delete removes the metadata record and then the backing file. The record
// is authoritative; a failed file removal is logged but does not fail the
// request.
func (s *PhotoService) Delete(id uint) error {
	photo, err := s.photoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	matched, err := s.photoRepo.Delete(id)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrPhotoNotFound
	}

	if err := s.store.Delete(photo.FileName); err != nil {
		s.logger.Warn("failed to remove photo file",
			zap.String("filename", photo.FileName),
			zap.Error(err),
		)
	}

	return nil
}
