package service

import (
	"github.com/rs/zerolog"

	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/repository"
)

// ActivityService writes the append-only audit trail.
type ActivityService struct {
	Logs repository.ActivityRepositoryInterface
	Log  zerolog.Logger
}

// NewActivityService creates a new ActivityService.
func NewActivityService(logs repository.ActivityRepositoryInterface, log zerolog.Logger) *ActivityService {
	return &ActivityService{Logs: logs, Log: log}
}

// Record writes one audit row. Logging is best-effort: a failed insert is
// reported but never fails the request that triggered it.
func (s *ActivityService) Record(userID, action, details, ipAddress, userAgent string) {
	if ipAddress == "" {
		ipAddress = "unknown"
	}
	if userAgent == "" {
		userAgent = "unknown"
	}
	entry := &model.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := s.Logs.CreateLog(entry); err != nil {
		s.Log.Error().Err(err).Str("action", action).Str("user_id", userID).Msg("failed to write activity log")
	}
}
