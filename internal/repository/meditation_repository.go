package repository

import (
	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/model"
)

// MeditationRepositoryInterface defines the interface for meditation catalog
// operations, tags included.
type MeditationRepositoryInterface interface {
	CreateMeditation(meditation *model.Meditation, tagIDs []string) (*model.Meditation, error)
	GetMeditationByID(id string) (*model.Meditation, error)
	ListMeditations(onlyActive bool) ([]model.Meditation, error)
	UpdateMeditation(meditation *model.Meditation, tagIDs []string) (*model.Meditation, error)
	DeleteMeditation(id string) error
	CountMeditations(onlyActive bool) (int64, error)

	CreateTag(tag *model.MeditationTag) (*model.MeditationTag, error)
	GetTagByID(id string) (*model.MeditationTag, error)
	GetTagsByIDs(ids []string) ([]model.MeditationTag, error)
	ListTags() ([]model.MeditationTag, error)
	UpdateTag(tag *model.MeditationTag) (*model.MeditationTag, error)
	DeleteTag(id string) error
	CountTags(onlyActive bool) (int64, error)
}

// MeditationRepository implements MeditationRepositoryInterface.
type MeditationRepository struct {
	DB *gorm.DB
}

// NewMeditationRepository creates a new MeditationRepository.
func NewMeditationRepository(db *gorm.DB) MeditationRepositoryInterface {
	return &MeditationRepository{DB: db}
}

// CreateMeditation stores a meditation and connects it to the given tags.
func (r *MeditationRepository) CreateMeditation(meditation *model.Meditation, tagIDs []string) (*model.Meditation, error) {
	tags, err := r.GetTagsByIDs(tagIDs)
	if err != nil {
		return nil, err
	}
	meditation.Tags = tags
	if err := r.DB.Create(meditation).Error; err != nil {
		return nil, err
	}
	return meditation, nil
}

func (r *MeditationRepository) GetMeditationByID(id string) (*model.Meditation, error) {
	var meditation model.Meditation
	if err := r.DB.Preload("Tags").First(&meditation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meditation, nil
}

// ListMeditations returns the catalog with tags, newest first. The
// creation-descending order is what the recommendation last-resort tier
// relies on.
func (r *MeditationRepository) ListMeditations(onlyActive bool) ([]model.Meditation, error) {
	var meditations []model.Meditation
	query := r.DB.Preload("Tags").Order("created_at DESC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&meditations).Error; err != nil {
		return nil, err
	}
	return meditations, nil
}

// UpdateMeditation saves the meditation fields and replaces its tag set.
func (r *MeditationRepository) UpdateMeditation(meditation *model.Meditation, tagIDs []string) (*model.Meditation, error) {
	tags, err := r.GetTagsByIDs(tagIDs)
	if err != nil {
		return nil, err
	}
	if err := r.DB.Save(meditation).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(meditation).Association("Tags").Replace(tags); err != nil {
		return nil, err
	}
	meditation.Tags = tags
	return meditation, nil
}

func (r *MeditationRepository) DeleteMeditation(id string) error {
	result := r.DB.Select("Tags").Delete(&model.Meditation{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MeditationRepository) CountMeditations(onlyActive bool) (int64, error) {
	var count int64
	query := r.DB.Model(&model.Meditation{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *MeditationRepository) CreateTag(tag *model.MeditationTag) (*model.MeditationTag, error) {
	if err := r.DB.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *MeditationRepository) GetTagByID(id string) (*model.MeditationTag, error) {
	var tag model.MeditationTag
	if err := r.DB.First(&tag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *MeditationRepository) GetTagsByIDs(ids []string) ([]model.MeditationTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []model.MeditationTag
	if err := r.DB.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *MeditationRepository) ListTags() ([]model.MeditationTag, error) {
	var tags []model.MeditationTag
	if err := r.DB.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *MeditationRepository) UpdateTag(tag *model.MeditationTag) (*model.MeditationTag, error) {
	if err := r.DB.Save(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *MeditationRepository) DeleteTag(id string) error {
	result := r.DB.Delete(&model.MeditationTag{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MeditationRepository) CountTags(onlyActive bool) (int64, error) {
	var count int64
	query := r.DB.Model(&model.MeditationTag{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}
