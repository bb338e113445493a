package repository

import (
	"errors"
	"strings"

	"attendance-registry/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicate: нарушение уникальности (username уже занят).
var ErrDuplicate = errors.New("duplicate key")

type UserRepository interface {
	Count() (int64, error)
	Create(u *models.User) error
	FindByUsername(username string) (*models.User, bool, error)
	List() ([]models.User, error)
}

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *GormUserRepository { return &GormUserRepository{db: db} }

func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Count(&count).Error
}

func (r *GormUserRepository) Create(u *models.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *GormUserRepository) FindByUsername(username string) (*models.User, bool, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &u, true, nil
}

func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	return users, r.db.Select("id", "username").Order("id asc").Find(&users).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
