package repository

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/model"
)

// ActivityRepositoryInterface defines the interface for the append-only audit
// trail. There are deliberately no update or delete operations.
type ActivityRepositoryInterface interface {
	CreateLog(entry *model.ActivityLog) error
	ListLogsSince(since time.Time) ([]model.ActivityLog, error)
	ExportLogs(since time.Time, format string) ([]byte, string, error)
}

// ActivityRepository implements ActivityRepositoryInterface.
type ActivityRepository struct {
	DB *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *gorm.DB) ActivityRepositoryInterface {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) CreateLog(entry *model.ActivityLog) error {
	return r.DB.Create(entry).Error
}

// ListLogsSince returns activity rows from the cutoff onward, oldest first,
// with the owning user preloaded for per-user bucketing.
func (r *ActivityRepository) ListLogsSince(since time.Time) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	err := r.DB.
		Preload("User").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// ExportLogs renders the audit trail since the cutoff as CSV or JSON.
func (r *ActivityRepository) ExportLogs(since time.Time, format string) ([]byte, string, error) {
	logs, err := r.ListLogsSince(since)
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(format) {
	case "csv":
		var buffer bytes.Buffer
		writer := csv.NewWriter(&buffer)
		header := []string{"ID", "UserID", "Action", "Details", "IPAddress", "UserAgent", "CreatedAt"}
		if err := writer.Write(header); err != nil {
			return nil, "", err
		}
		for _, entry := range logs {
			row := []string{
				entry.ID,
				entry.UserID,
				entry.Action,
				entry.Details,
				entry.IPAddress,
				entry.UserAgent,
				entry.CreatedAt.Format(time.RFC3339),
			}
			if err := writer.Write(row); err != nil {
				return nil, "", err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return nil, "", err
		}
		return buffer.Bytes(), "text/csv", nil

	case "json":
		data, err := json.Marshal(logs)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil

	default:
		return nil, "", fmt.Errorf("unsupported export format: %s", format)
	}
}
