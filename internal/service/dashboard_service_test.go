package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/user/samadhi-tracker/internal/model"
)

func recordWith(date time.Time, ratings ...model.FeelingRating) model.DailyRecord {
	return model.DailyRecord{Date: date, FeelingRatings: ratings}
}

func TestComputeUserDashboardStatsEmpty(t *testing.T) {
	stats := ComputeUserDashboardStats(nil, time.Now())

	assert.Equal(t, 0, stats.TotalRecords)
	assert.Zero(t, stats.AverageBeforeRating)
	assert.Zero(t, stats.AverageAfterRating)
	assert.Zero(t, stats.AverageImprovement)
	assert.Equal(t, 0, stats.RecentRecords)
}

func TestComputeUserDashboardStatsAverages(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	feeling := model.Feeling{ID: "f1", NameEs: "Ansiedad"}

	records := []model.DailyRecord{
		// before avg 5, after avg 7: improved by 40%
		recordWith(now.AddDate(0, 0, -1), ratingPair(feeling, intPtr(5), intPtr(7))),
		// before avg 6, after avg 6: flat, contributes to totals but not improvement
		recordWith(now.AddDate(0, 0, -2), ratingPair(feeling, intPtr(6), intPtr(6))),
	}

	stats := ComputeUserDashboardStats(records, now)

	assert.Equal(t, 2, stats.TotalRecords)
	assert.InDelta(t, 5.5, stats.AverageBeforeRating, 1e-9)
	assert.InDelta(t, 6.5, stats.AverageAfterRating, 1e-9)
	assert.InDelta(t, 40.0, stats.AverageImprovement, 1e-9)
	assert.Equal(t, 2, stats.RecentRecords)
}

func TestComputeUserDashboardStatsOneSidedRecordsExcluded(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	feeling := model.Feeling{ID: "f1", NameEs: "Ansiedad"}

	records := []model.DailyRecord{
		recordWith(now, ratingPair(feeling, intPtr(4), intPtr(8))),
		// Only a before rating: excluded from the accumulation but still in
		// the denominator, mirroring the per-record-average semantics.
		recordWith(now, ratingPair(feeling, intPtr(9), nil)),
	}

	stats := ComputeUserDashboardStats(records, now)

	assert.Equal(t, 2, stats.TotalRecords)
	assert.InDelta(t, 2.0, stats.AverageBeforeRating, 1e-9) // 4 / 2 records
	assert.InDelta(t, 4.0, stats.AverageAfterRating, 1e-9)  // 8 / 2 records
	assert.InDelta(t, 100.0, stats.AverageImprovement, 1e-9)
}

func TestComputeUserDashboardStatsRecentWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	records := []model.DailyRecord{
		recordWith(now),
		recordWith(now.AddDate(0, 0, -7)), // boundary: exactly seven days ago counts
		recordWith(now.AddDate(0, 0, -8)), // outside the window
	}

	stats := ComputeUserDashboardStats(records, now)

	assert.Equal(t, 2, stats.RecentRecords)
}

func TestTopFeelings(t *testing.T) {
	anxiety := model.Feeling{ID: "f1", NameEs: "Ansiedad"}
	joy := model.Feeling{ID: "f2", NameEs: "Alegría"}
	stress := model.Feeling{ID: "f3", NameEs: "Estrés"}

	ratings := []model.FeelingRating{
		ratingPair(joy, intPtr(5), nil),
		ratingPair(anxiety, intPtr(8), intPtr(4)),
		ratingPair(anxiety, intPtr(7), intPtr(3)),
		ratingPair(anxiety, intPtr(6), nil),
		ratingPair(stress, intPtr(9), nil),
		ratingPair(stress, intPtr(8), nil),
	}

	top := TopFeelings(ratings, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "Ansiedad", top[0].Feeling.NameEs)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, "Estrés", top[1].Feeling.NameEs)
	assert.Equal(t, 2, top[1].Count)
}

func TestTopFeelingsTieKeepsFirstAppearance(t *testing.T) {
	first := model.Feeling{ID: "f1", NameEs: "Primero"}
	second := model.Feeling{ID: "f2", NameEs: "Segundo"}

	ratings := []model.FeelingRating{
		ratingPair(first, intPtr(5), nil),
		ratingPair(second, intPtr(5), nil),
	}

	top := TopFeelings(ratings, 5)

	assert.Equal(t, "Primero", top[0].Feeling.NameEs)
	assert.Equal(t, "Segundo", top[1].Feeling.NameEs)
}

func TestTopFeelingsSkipsDeletedFeelings(t *testing.T) {
	ratings := []model.FeelingRating{
		{FeelingID: "gone", BeforeRating: intPtr(5)},
	}
	assert.Empty(t, TopFeelings(ratings, 5))
}

func TestDashboardLimitsRecordsToTen(t *testing.T) {
	now := time.Now()
	repo := &fakeRecordRepo{}
	for i := 0; i < 12; i++ {
		repo.records = append(repo.records, model.DailyRecord{
			ID:     "r" + string(rune('a'+i)),
			UserID: "u1",
			Date:   now.AddDate(0, 0, -i),
		})
	}

	svc := NewDashboardService(repo)
	stats, err := svc.Dashboard("u1")

	assert.NoError(t, err)
	assert.Equal(t, 12, stats.TotalRecords)
	assert.Len(t, stats.Records, 10)
	assert.Len(t, stats.TopFeelings, 0)
}
