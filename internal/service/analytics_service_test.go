package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/user/samadhi-tracker/internal/model"
)

func TestRound1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.24, 1.2},
		{1.25, 1.3},
		{1.26, 1.3},
		{7.0, 7.0},
		{-0.25, -0.2},
		{-0.26, -0.3},
		{9.99, 10.0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, round1(tc.in), 1e-9, "round1(%v)", tc.in)
	}
}

func TestBucketActivityByDayEmpty(t *testing.T) {
	buckets := BucketActivityByDay(nil, time.Now().AddDate(0, 0, -7))
	assert.Empty(t, buckets)
}

func TestBucketActivityByDayGroupsByUTCDate(t *testing.T) {
	base := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	logs := []model.ActivityLog{
		{UserID: "u1", User: model.User{UserID: "ana"}, CreatedAt: base},
		{UserID: "u1", User: model.User{UserID: "ana"}, CreatedAt: base.Add(10 * time.Minute)},
		{UserID: "u2", User: model.User{UserID: "bob"}, CreatedAt: base.Add(time.Hour)}, // next UTC day
	}

	buckets := BucketActivityByDay(logs, base.AddDate(0, 0, -1))

	assert.Len(t, buckets, 2)
	assert.Equal(t, 2, buckets["2024-03-10"].Total)
	assert.Equal(t, 2, buckets["2024-03-10"].Users["ana"])
	assert.Equal(t, 1, buckets["2024-03-11"].Total)
	assert.Equal(t, 1, buckets["2024-03-11"].Users["bob"])
}

func TestBucketActivityByDayFiltersOldRows(t *testing.T) {
	now := time.Now().UTC()
	logs := []model.ActivityLog{
		{UserID: "u1", CreatedAt: now.AddDate(0, 0, -10)},
		{UserID: "u1", CreatedAt: now},
	}

	buckets := BucketActivityByDay(logs, now.AddDate(0, 0, -7))

	total := 0
	for _, bucket := range buckets {
		total += bucket.Total
	}
	assert.Equal(t, 1, total)
}

func TestBucketActivityByDayFallsBackToRawUserID(t *testing.T) {
	now := time.Now().UTC()
	logs := []model.ActivityLog{
		{UserID: "orphan-id", CreatedAt: now}, // no User join loaded
	}

	buckets := BucketActivityByDay(logs, now.AddDate(0, 0, -1))

	date := now.Format("2006-01-02")
	assert.Equal(t, 1, buckets[date].Users["orphan-id"])
}

func ratingPair(feeling model.Feeling, before, after *int) model.FeelingRating {
	return model.FeelingRating{
		FeelingID:    feeling.ID,
		Feeling:      feeling,
		BeforeRating: before,
		AfterRating:  after,
	}
}

func intPtr(v int) *int { return &v }

func TestComputeFeelingChanges(t *testing.T) {
	anxiety := model.Feeling{ID: "f1", NameEs: "Ansiedad"}
	joy := model.Feeling{ID: "f2", NameEs: "Alegría"}

	ratings := []model.FeelingRating{
		ratingPair(anxiety, intPtr(8), intPtr(4)),
		ratingPair(anxiety, intPtr(7), intPtr(3)),
		ratingPair(joy, intPtr(5), nil),
	}

	changes := ComputeFeelingChanges(ratings)

	assert.Len(t, changes, 2)

	assert.Equal(t, "Ansiedad", changes[0].FeelingName)
	assert.Equal(t, 2, changes[0].BeforeCount)
	assert.Equal(t, 2, changes[0].AfterCount)
	assert.InDelta(t, 7.5, *changes[0].AverageBefore, 1e-9)
	assert.InDelta(t, 3.5, *changes[0].AverageAfter, 1e-9)
	assert.InDelta(t, -4.0, *changes[0].AverageChange, 1e-9)

	// Joy has no after ratings: after average and change stay nil.
	assert.Equal(t, "Alegría", changes[1].FeelingName)
	assert.Equal(t, 1, changes[1].BeforeCount)
	assert.Equal(t, 0, changes[1].AfterCount)
	assert.InDelta(t, 5.0, *changes[1].AverageBefore, 1e-9)
	assert.Nil(t, changes[1].AverageAfter)
	assert.Nil(t, changes[1].AverageChange)
}

func TestComputeFeelingChangesSkipsDeletedFeelings(t *testing.T) {
	ratings := []model.FeelingRating{
		{FeelingID: "gone", BeforeRating: intPtr(5)}, // Feeling join target missing
	}

	changes := ComputeFeelingChanges(ratings)

	assert.Empty(t, changes)
}

func TestComputeFeelingChangesEmpty(t *testing.T) {
	assert.Empty(t, ComputeFeelingChanges(nil))
}

func TestTimeRangeStart(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -7), timeRangeStart("7d", now))
	assert.Equal(t, now.AddDate(0, 0, -30), timeRangeStart("30d", now))
	assert.Equal(t, now.AddDate(0, 0, -90), timeRangeStart("90d", now))
	assert.Equal(t, now.AddDate(0, 0, -7), timeRangeStart("bogus", now))
	assert.Equal(t, now.AddDate(0, 0, -7), timeRangeStart("", now))
}

func TestSpanishDayLabel(t *testing.T) {
	assert.Equal(t, "2 ene", spanishDayLabel("2024-01-02"))
	assert.Equal(t, "15 dic", spanishDayLabel("2023-12-15"))
	// Unparseable input passes through untouched.
	assert.Equal(t, "not-a-date", spanishDayLabel("not-a-date"))
}

func TestAdminStats(t *testing.T) {
	users := &fakeUserRepo{}
	users.CreateUser(&model.User{UserID: "ana", Email: "ana@example.com"})
	users.CreateUser(&model.User{UserID: "bob", Email: "bob@example.com"})

	feelings := &fakeFeelingRepo{active: 3, total: 5}
	meditations := &fakeMeditationRepo{
		meditations: []model.Meditation{{ID: "m1", IsActive: true}},
		tags:        []model.MeditationTag{{ID: "t1"}, {ID: "t2"}},
	}

	svc := NewAnalyticsService(users, feelings, meditations, &fakeRecordRepo{}, &fakeActivityRepo{})

	stats, err := svc.AdminStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.ActiveFeelings)
	assert.Equal(t, int64(1), stats.Meditations)
	assert.Equal(t, int64(2), stats.Tags)
	assert.Equal(t, int64(2), stats.Users)
}
