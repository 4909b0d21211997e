package repository

import (
	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/model"
)

// FeelingRepositoryInterface defines the interface for feeling repository operations.
type FeelingRepositoryInterface interface {
	CreateFeeling(feeling *model.Feeling) (*model.Feeling, error)
	GetFeelingByID(id string) (*model.Feeling, error)
	ListFeelings(onlyActive bool) ([]model.Feeling, error)
	FindFeelingByNames(nameEs, nameEn string) (*model.Feeling, error)
	UpdateFeeling(feeling *model.Feeling) (*model.Feeling, error)
	DeleteFeeling(id string) error
	CountFeelings(onlyActive bool) (int64, error)
}

// FeelingRepository implements FeelingRepositoryInterface.
type FeelingRepository struct {
	DB *gorm.DB
}

// NewFeelingRepository creates a new FeelingRepository.
func NewFeelingRepository(db *gorm.DB) FeelingRepositoryInterface {
	return &FeelingRepository{DB: db}
}

func (r *FeelingRepository) CreateFeeling(feeling *model.Feeling) (*model.Feeling, error) {
	if err := r.DB.Create(feeling).Error; err != nil {
		return nil, err
	}
	return feeling, nil
}

func (r *FeelingRepository) GetFeelingByID(id string) (*model.Feeling, error) {
	var feeling model.Feeling
	if err := r.DB.First(&feeling, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &feeling, nil
}

// ListFeelings returns feelings ordered by category then Spanish name, the
// order the admin panel displays them in.
func (r *FeelingRepository) ListFeelings(onlyActive bool) ([]model.Feeling, error) {
	var feelings []model.Feeling
	query := r.DB.Order("category ASC").Order("name_es ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&feelings).Error; err != nil {
		return nil, err
	}
	return feelings, nil
}

// FindFeelingByNames looks up a feeling matching either name, used for
// duplicate detection on create.
func (r *FeelingRepository) FindFeelingByNames(nameEs, nameEn string) (*model.Feeling, error) {
	var feeling model.Feeling
	err := r.DB.Where("name_es = ? OR name_en = ?", nameEs, nameEn).First(&feeling).Error
	if err != nil {
		return nil, err
	}
	return &feeling, nil
}

func (r *FeelingRepository) UpdateFeeling(feeling *model.Feeling) (*model.Feeling, error) {
	if err := r.DB.Save(feeling).Error; err != nil {
		return nil, err
	}
	return feeling, nil
}

func (r *FeelingRepository) DeleteFeeling(id string) error {
	result := r.DB.Delete(&model.Feeling{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FeelingRepository) CountFeelings(onlyActive bool) (int64, error) {
	var count int64
	query := r.DB.Model(&model.Feeling{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}
