package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/samadhi-tracker/internal/model"
)

func newRecordService(records *fakeRecordRepo, activity *fakeActivityRepo) *RecordService {
	return NewRecordService(records, NewActivityService(activity, zerolog.Nop()))
}

func TestCreateRecordMergesRatingsByFeeling(t *testing.T) {
	records := &fakeRecordRepo{}
	activity := &fakeActivityRepo{}
	svc := newRecordService(records, activity)

	meditation := "Meditación guiada"
	record, err := svc.CreateRecord("u1", CreateRecordInput{
		Date:               "2024-06-15",
		BeforeFeelings:     map[string]int{"f1": 8, "f2": 5},
		SelectedMeditation: &meditation,
		AfterFeelings:      map[string]int{"f1": 4, "f3": 7},
	}, "1.2.3.4", "test-agent")

	require.NoError(t, err)
	require.Len(t, record.FeelingRatings, 3)

	// Ratings are ordered by feeling id, one row per feeling in either map.
	byFeeling := make(map[string]model.FeelingRating)
	for _, r := range record.FeelingRatings {
		byFeeling[r.FeelingID] = r
	}

	f1 := byFeeling["f1"]
	require.NotNil(t, f1.BeforeRating)
	require.NotNil(t, f1.AfterRating)
	assert.Equal(t, 8, *f1.BeforeRating)
	assert.Equal(t, 4, *f1.AfterRating)

	// Rated only before: the after side stays nil, not zero.
	f2 := byFeeling["f2"]
	require.NotNil(t, f2.BeforeRating)
	assert.Equal(t, 5, *f2.BeforeRating)
	assert.Nil(t, f2.AfterRating)

	// Rated only after.
	f3 := byFeeling["f3"]
	assert.Nil(t, f3.BeforeRating)
	require.NotNil(t, f3.AfterRating)
	assert.Equal(t, 7, *f3.AfterRating)

	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, &meditation, record.MeditationType)
}

func TestCreateRecordOrdersRatingsDeterministically(t *testing.T) {
	svc := newRecordService(&fakeRecordRepo{}, &fakeActivityRepo{})

	record, err := svc.CreateRecord("u1", CreateRecordInput{
		Date:           "2024-06-15",
		BeforeFeelings: map[string]int{"zeta": 3, "alfa": 4, "media": 5},
	}, "", "")

	require.NoError(t, err)
	require.Len(t, record.FeelingRatings, 3)
	assert.Equal(t, "alfa", record.FeelingRatings[0].FeelingID)
	assert.Equal(t, "media", record.FeelingRatings[1].FeelingID)
	assert.Equal(t, "zeta", record.FeelingRatings[2].FeelingID)
}

func TestCreateRecordAcceptsRFC3339Dates(t *testing.T) {
	svc := newRecordService(&fakeRecordRepo{}, &fakeActivityRepo{})

	record, err := svc.CreateRecord("u1", CreateRecordInput{
		Date:           "2024-06-15T10:30:00Z",
		BeforeFeelings: map[string]int{"f1": 5},
	}, "", "")

	require.NoError(t, err)
	assert.Equal(t, 2024, record.Date.Year())
	assert.Equal(t, 15, record.Date.Day())
}

func TestCreateRecordRejectsBadDate(t *testing.T) {
	svc := newRecordService(&fakeRecordRepo{}, &fakeActivityRepo{})

	_, err := svc.CreateRecord("u1", CreateRecordInput{
		Date:           "15/06/2024",
		BeforeFeelings: map[string]int{"f1": 5},
	}, "", "")

	assert.Error(t, err)
}

func TestCreateRecordWritesActivityLog(t *testing.T) {
	activity := &fakeActivityRepo{}
	svc := newRecordService(&fakeRecordRepo{}, activity)

	_, err := svc.CreateRecord("u1", CreateRecordInput{
		Date:           "2024-06-15",
		BeforeFeelings: map[string]int{"f1": 5},
	}, "1.2.3.4", "test-agent")

	require.NoError(t, err)
	require.Len(t, activity.logs, 1)
	assert.Equal(t, model.ActionCreateRecord, activity.logs[0].Action)
	assert.Equal(t, "u1", activity.logs[0].UserID)
	assert.Equal(t, "1.2.3.4", activity.logs[0].IPAddress)
}

func TestGetRecordScopedToOwner(t *testing.T) {
	records := &fakeRecordRepo{
		records: []model.DailyRecord{{ID: "r1", UserID: "u1"}},
	}
	svc := newRecordService(records, &fakeActivityRepo{})

	record, err := svc.GetRecord("r1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "r1", record.ID)

	// Another user's id never resolves someone else's record.
	_, err = svc.GetRecord("r1", "u2")
	assert.Error(t, err)
}
