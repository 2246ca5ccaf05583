package repository

import (
	"gorm.io/gorm"

	"github.com/photodrop-app/photodrop-backend/internal/models"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

func (r *PhotoRepository) Create(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetAll returns every photo, newest first.
func (r *PhotoRepository) GetAll() ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Order("created_at DESC").Find(&photos).Error
	return photos, err
}

// Update applies the given column set to one photo and reports how many
// rows matched, so callers can distinguish a missing id.
func (r *PhotoRepository) Update(id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Photo{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *PhotoRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Photo{}, id)
	return result.RowsAffected, result.Error
}
