package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/repository"
)

// CreateRecordInput is the session submission: before ratings, the chosen
// meditation, and after ratings. Ratings are keyed by feeling id.
type CreateRecordInput struct {
	Date                string         `json:"date" validate:"required"`
	BeforeFeelings      map[string]int `json:"beforeFeelings" validate:"required,dive,min=1,max=10"`
	MoodDescription     string         `json:"moodDescription,omitempty"`
	SelectedMeditation  *string        `json:"selectedMeditation,omitempty"`
	AfterFeelings       map[string]int `json:"afterFeelings" validate:"omitempty,dive,min=1,max=10"`
	PostMeditationNotes *string        `json:"postMeditationNotes,omitempty"`
}

// RecordService creates and fetches daily records.
type RecordService struct {
	Records  repository.RecordRepositoryInterface
	Activity *ActivityService
}

// NewRecordService creates a new RecordService.
func NewRecordService(records repository.RecordRepositoryInterface, activity *ActivityService) *RecordService {
	return &RecordService{Records: records, Activity: activity}
}

// CreateRecord stores one meditation session with its ratings. Before and
// after maps are merged by feeling id: a feeling rated on only one side gets
// a nil rating on the other, so "not rated" stays distinct from zero.
// Multiple records per day are allowed.
func (s *RecordService) CreateRecord(userID string, input CreateRecordInput, ip, userAgent string) (*model.DailyRecord, error) {
	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, input.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", input.Date, err)
		}
	}

	feelingIDs := make(map[string]struct{}, len(input.BeforeFeelings)+len(input.AfterFeelings))
	for id := range input.BeforeFeelings {
		feelingIDs[id] = struct{}{}
	}
	for id := range input.AfterFeelings {
		feelingIDs[id] = struct{}{}
	}
	ordered := make([]string, 0, len(feelingIDs))
	for id := range feelingIDs {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	ratings := make([]model.FeelingRating, 0, len(ordered))
	for _, feelingID := range ordered {
		rating := model.FeelingRating{FeelingID: feelingID}
		if v, ok := input.BeforeFeelings[feelingID]; ok {
			value := v
			rating.BeforeRating = &value
		}
		if v, ok := input.AfterFeelings[feelingID]; ok {
			value := v
			rating.AfterRating = &value
		}
		ratings = append(ratings, rating)
	}

	record := &model.DailyRecord{
		UserID:          userID,
		Date:            date,
		MeditationType:  input.SelectedMeditation,
		MeditationNotes: input.PostMeditationNotes,
		FeelingRatings:  ratings,
	}
	if _, err := s.Records.CreateRecord(record); err != nil {
		return nil, err
	}

	details := fmt.Sprintf(`{"recordId":%q,"date":%q,"hasMeditation":%t}`,
		record.ID, input.Date, input.SelectedMeditation != nil)
	s.Activity.Record(userID, model.ActionCreateRecord, details, ip, userAgent)

	return record, nil
}

// GetRecord fetches one of the user's records with ratings and feelings.
func (s *RecordService) GetRecord(id, userID string) (*model.DailyRecord, error) {
	return s.Records.GetUserRecord(id, userID)
}
