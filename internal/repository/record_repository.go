package repository

import (
	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/model"
)

// RecordRepositoryInterface defines the interface for daily record and rating
// repository operations.
type RecordRepositoryInterface interface {
	CreateRecord(record *model.DailyRecord) (*model.DailyRecord, error)
	GetUserRecord(id, userID string) (*model.DailyRecord, error)
	ListUserRecords(userID string) ([]model.DailyRecord, error)
	ListUserRatings(userID string) ([]model.FeelingRating, error)
	ListAllRatings() ([]model.FeelingRating, error)
	CountRecords() (int64, error)
	CountRecordsPerUser() (map[string]int64, error)
}

// RecordRepository implements RecordRepositoryInterface.
type RecordRepository struct {
	DB *gorm.DB
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(db *gorm.DB) RecordRepositoryInterface {
	return &RecordRepository{DB: db}
}

// CreateRecord stores a record together with its nested feeling ratings.
func (r *RecordRepository) CreateRecord(record *model.DailyRecord) (*model.DailyRecord, error) {
	if err := r.DB.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// GetUserRecord fetches one record scoped to its owner, ratings and feelings
// included. Returns gorm.ErrRecordNotFound for other users' records.
func (r *RecordRepository) GetUserRecord(id, userID string) (*model.DailyRecord, error) {
	var record model.DailyRecord
	err := r.DB.
		Preload("FeelingRatings.Feeling").
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListUserRecords returns a user's records newest first, with ratings and
// their feelings preloaded.
func (r *RecordRepository) ListUserRecords(userID string) ([]model.DailyRecord, error) {
	var records []model.DailyRecord
	err := r.DB.
		Preload("FeelingRatings.Feeling").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListUserRatings returns every rating belonging to a user's records.
func (r *RecordRepository) ListUserRatings(userID string) ([]model.FeelingRating, error) {
	var ratings []model.FeelingRating
	err := r.DB.
		Joins("JOIN daily_records ON daily_records.id = feeling_ratings.daily_record_id").
		Where("daily_records.user_id = ?", userID).
		Preload("Feeling").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListAllRatings returns every rating in the system with its feeling, the
// input of the global feeling-change aggregation.
func (r *RecordRepository) ListAllRatings() ([]model.FeelingRating, error) {
	var ratings []model.FeelingRating
	if err := r.DB.Preload("Feeling").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RecordRepository) CountRecords() (int64, error) {
	var count int64
	err := r.DB.Model(&model.DailyRecord{}).Count(&count).Error
	return count, err
}

// CountRecordsPerUser returns record totals keyed by user ID, for the admin
// user listing.
func (r *RecordRepository) CountRecordsPerUser() (map[string]int64, error) {
	var rows []struct {
		UserID string
		Count  int64
	}
	err := r.DB.Model(&model.DailyRecord{}).
		Select("user_id, count(*) as count").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}
