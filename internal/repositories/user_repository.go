package repositories

import (
	"errors"

	"messenger_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrLoginAlreadyTaken = errors.New("login already taken")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByLogin(login string) (*models.User, error)
	Search(query string) ([]models.User, error)
	Exists(id uint) (bool, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create inserts the user, relying on the unique index on login.
func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("login = ?", user.Login).First(&existing).Error; err == nil {
		return ErrLoginAlreadyTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := r.db.Create(user).Error; err != nil {
		// The unique index still backs us up against a concurrent insert.
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "login = ?", login).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Search matches the substring against login OR name, excludes the
// sentinel id 0 and returns insertion order.
func (r *UserRepositoryImpl) Search(query string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := r.db.
		Where("(login LIKE ? OR name LIKE ?) AND id > 0", pattern, pattern).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
