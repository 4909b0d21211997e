package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/model"
)

// CountryCount is one row of the users-per-country grouping. Country is nil
// for users that never set one.
type CountryCount struct {
	Country *string
	Count   int64
}

// UserRepositoryInterface defines the interface for user repository operations.
type UserRepositoryInterface interface {
	CreateUser(user *model.User) (*model.User, error)
	GetUserByID(id string) (*model.User, error)
	GetUserByUserID(userID string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUser(user *model.User) (*model.User, error)
	DeleteUser(id string) error
	CountUsers() (int64, error)
	CountUsersByCountry() ([]CountryCount, error)
	ListRegistrationTimes() ([]time.Time, error)
}

// UserRepository implements UserRepositoryInterface.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) (*model.User, error) {
	if err := r.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(id string) (*model.User, error) {
	var user model.User
	if err := r.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByUserID(userID string) (*model.User, error) {
	var user model.User
	if err := r.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users, newest first.
func (r *UserRepository) ListUsers() ([]model.User, error) {
	var users []model.User
	if err := r.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateUser(user *model.User) (*model.User, error) {
	if err := r.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) DeleteUser(id string) error {
	result := r.DB.Delete(&model.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountUsersByCountry() ([]CountryCount, error) {
	var rows []CountryCount
	err := r.DB.Model(&model.User{}).
		Select("country, count(*) as count").
		Where("country IS NOT NULL").
		Group("country").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListRegistrationTimes returns every user's creation timestamp in ascending
// order, for the registrations-per-day chart.
func (r *UserRepository) ListRegistrationTimes() ([]time.Time, error) {
	var times []time.Time
	err := r.DB.Model(&model.User{}).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}
