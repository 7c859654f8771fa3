package repositories

import (
	"errors"

	"gigflow_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailConflict = errors.New("email already in use")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	err := db.Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailConflict
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) EmailExists(email string) (bool, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
