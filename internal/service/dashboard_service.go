package service

import (
	"sort"
	"time"

	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/repository"
)

// FeelingCount pairs a feeling with how often the user rated it.
type FeelingCount struct {
	Feeling model.Feeling `json:"feeling"`
	Count   int           `json:"count"`
}

// DashboardStats is the per-user dashboard payload.
type DashboardStats struct {
	TotalRecords        int                 `json:"totalRecords"`
	AverageBeforeRating float64             `json:"averageBeforeRating"`
	AverageAfterRating  float64             `json:"averageAfterRating"`
	AverageImprovement  float64             `json:"averageImprovement"`
	RecentRecords       int                 `json:"recentRecords"`
	TopFeelings         []FeelingCount      `json:"topFeelings"`
	Records             []model.DailyRecord `json:"records"`
}

// ComputeUserDashboardStats derives a user's summary from their records.
//
// Per record, the before ratings and after ratings are averaged separately,
// and the pair only counts toward the running totals when both sides have at
// least one rating. The overall averages divide those totals by the full
// record count, matching the dashboard's historical behavior: an average of
// per-record averages, not a flat average over all ratings. Improvement is
// accumulated only over records where the after average exceeds the before
// average; flat or worsening sessions are excluded, not counted as zero.
// RecentRecords counts records dated within the trailing seven days of now.
func ComputeUserDashboardStats(records []model.DailyRecord, now time.Time) DashboardStats {
	totalRecords := len(records)

	var totalBefore, totalAfter, totalImprovement float64
	var improvedRecords int

	for _, record := range records {
		var beforeRatings, afterRatings []int
		for _, rating := range record.FeelingRatings {
			if rating.BeforeRating != nil {
				beforeRatings = append(beforeRatings, *rating.BeforeRating)
			}
			if rating.AfterRating != nil {
				afterRatings = append(afterRatings, *rating.AfterRating)
			}
		}
		if len(beforeRatings) == 0 || len(afterRatings) == 0 {
			continue
		}
		avgBefore := mean(beforeRatings)
		avgAfter := mean(afterRatings)
		totalBefore += avgBefore
		totalAfter += avgAfter
		if avgAfter > avgBefore {
			totalImprovement += (avgAfter - avgBefore) / avgBefore * 100
			improvedRecords++
		}
	}

	stats := DashboardStats{TotalRecords: totalRecords}
	if totalRecords > 0 {
		stats.AverageBeforeRating = round1(totalBefore / float64(totalRecords))
		stats.AverageAfterRating = round1(totalAfter / float64(totalRecords))
	}
	if improvedRecords > 0 {
		stats.AverageImprovement = round1(totalImprovement / float64(improvedRecords))
	}

	sevenDaysAgo := now.AddDate(0, 0, -7)
	for _, record := range records {
		if !record.Date.Before(sevenDaysAgo) {
			stats.RecentRecords++
		}
	}

	return stats
}

// TopFeelings counts rating occurrences per feeling and returns the most
// frequent ones with their feeling entities resolved. Ratings whose feeling
// was deleted are skipped. Ties keep first-appearance order of the input;
// beyond that the ordering of equal counts is not defined.
func TopFeelings(ratings []model.FeelingRating, limit int) []FeelingCount {
	counts := make(map[string]int)
	feelings := make(map[string]model.Feeling)
	var order []string

	for _, rating := range ratings {
		if rating.Feeling.ID == "" {
			continue
		}
		if _, ok := counts[rating.FeelingID]; !ok {
			order = append(order, rating.FeelingID)
			feelings[rating.FeelingID] = rating.Feeling
		}
		counts[rating.FeelingID]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	top := make([]FeelingCount, 0, len(order))
	for _, id := range order {
		top = append(top, FeelingCount{Feeling: feelings[id], Count: counts[id]})
	}
	return top
}

// DashboardService assembles the per-user dashboard.
type DashboardService struct {
	Records repository.RecordRepositoryInterface
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(records repository.RecordRepositoryInterface) *DashboardService {
	return &DashboardService{Records: records}
}

// Dashboard loads a fresh snapshot of the user's records and ratings and
// computes the dashboard response: summary stats, top five feelings, and the
// ten most recent records.
func (s *DashboardService) Dashboard(userID string) (*DashboardStats, error) {
	records, err := s.Records.ListUserRecords(userID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.Records.ListUserRatings(userID)
	if err != nil {
		return nil, err
	}

	stats := ComputeUserDashboardStats(records, time.Now())
	stats.TopFeelings = TopFeelings(ratings, 5)

	if len(records) > 10 {
		records = records[:10]
	}
	stats.Records = records

	return &stats, nil
}
