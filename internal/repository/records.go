package repository

import (
	"errors"

	"attendance-registry/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound: записи с таким id нет.
var ErrNotFound = errors.New("record not found")

type RecordRepository interface {
	Create(r *models.Record) error
	List() ([]models.Record, error)
	Get(id uint) (*models.Record, bool, error)
	Update(r *models.Record) error
}

type GormRecordRepository struct{ db *gorm.DB }

func NewRecordRepository(db *gorm.DB) *GormRecordRepository { return &GormRecordRepository{db: db} }

func (r *GormRecordRepository) Create(rec *models.Record) error { return r.db.Create(rec).Error }

// List возвращает все записи в порядке хранения, без явной сортировки.
func (r *GormRecordRepository) List() ([]models.Record, error) {
	var records []models.Record
	return records, r.db.Find(&records).Error
}

func (r *GormRecordRepository) Get(id uint) (*models.Record, bool, error) {
	var rec models.Record
	if err := r.db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &rec, true, nil
}

// Update перезаписывает все поля, включая пустые строки.
func (r *GormRecordRepository) Update(rec *models.Record) error {
	res := r.db.Model(&models.Record{}).Where("id = ?", rec.ID).Select("*").Omit("id").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
