package service

import (
	"math"
	"sort"
	"time"

	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/repository"
)

const dateLayout = "2006-01-02"

// round1 rounds to one decimal, half always up (toward +inf) on the value
// times ten. math.Round is not used: it sends negative halves away from zero,
// and averageChange can be negative.
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// mean returns the arithmetic mean of an int slice. Callers must not pass an
// empty slice; degenerate inputs are handled before this point.
func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// ActivityBucket is one calendar day's activity: the overall row count and a
// per-user breakdown keyed by the public user id.
type ActivityBucket struct {
	Total int            `json:"total"`
	Users map[string]int `json:"users"`
}

// BucketActivityByDay groups activity rows by UTC calendar date. Rows older
// than since are ignored. An empty input yields an empty map. The per-user
// key is the public login name when the user join is present, falling back to
// the raw user id for orphaned rows.
func BucketActivityByDay(logs []model.ActivityLog, since time.Time) map[string]ActivityBucket {
	buckets := make(map[string]ActivityBucket)
	for _, entry := range logs {
		if entry.CreatedAt.Before(since) {
			continue
		}
		date := entry.CreatedAt.UTC().Format(dateLayout)
		userKey := entry.User.UserID
		if userKey == "" {
			userKey = entry.UserID
		}

		bucket, ok := buckets[date]
		if !ok {
			bucket = ActivityBucket{Users: make(map[string]int)}
		}
		bucket.Total++
		bucket.Users[userKey]++
		buckets[date] = bucket
	}
	return buckets
}

// FeelingChange is the before/after summary for one feeling. Averages are nil
// when the corresponding sample is empty: "no data" is reported explicitly,
// never coerced to zero.
type FeelingChange struct {
	FeelingName   string   `json:"feelingName"`
	AverageBefore *float64 `json:"averageBefore"`
	AverageAfter  *float64 `json:"averageAfter"`
	AverageChange *float64 `json:"averageChange"`
	BeforeCount   int      `json:"beforeCount"`
	AfterCount    int      `json:"afterCount"`
}

// ComputeFeelingChanges summarizes ratings per feeling name. Ratings whose
// feeling join target is gone are excluded rather than failing the whole
// computation. Output order is first appearance in the input.
func ComputeFeelingChanges(ratings []model.FeelingRating) []FeelingChange {
	type sample struct {
		before []int
		after  []int
	}
	samples := make(map[string]*sample)
	var order []string

	for _, rating := range ratings {
		if rating.Feeling.ID == "" {
			continue // feeling deleted since the rating was written
		}
		name := rating.Feeling.NameEs
		s, ok := samples[name]
		if !ok {
			s = &sample{}
			samples[name] = s
			order = append(order, name)
		}
		if rating.BeforeRating != nil {
			s.before = append(s.before, *rating.BeforeRating)
		}
		if rating.AfterRating != nil {
			s.after = append(s.after, *rating.AfterRating)
		}
	}

	changes := make([]FeelingChange, 0, len(order))
	for _, name := range order {
		s := samples[name]
		change := FeelingChange{
			FeelingName: name,
			BeforeCount: len(s.before),
			AfterCount:  len(s.after),
		}
		if len(s.before) > 0 {
			avg := round1(mean(s.before))
			change.AverageBefore = &avg
		}
		if len(s.after) > 0 {
			avg := round1(mean(s.after))
			change.AverageAfter = &avg
		}
		if change.AverageBefore != nil && change.AverageAfter != nil {
			diff := round1(mean(s.after) - mean(s.before))
			change.AverageChange = &diff
		}
		changes = append(changes, change)
	}
	return changes
}

// DayActivity is one chart point of the admin activity series.
type DayActivity struct {
	Date            string         `json:"date"`
	TotalActivities int            `json:"totalActivities"`
	UserActivities  map[string]int `json:"userActivities"`
}

// DayRegistrations is one chart point of the registrations series.
type DayRegistrations struct {
	Date          string `json:"date"`
	Registrations int    `json:"registrations"`
}

// AdminAnalytics is the admin dashboard payload.
type AdminAnalytics struct {
	TotalUsers        int64              `json:"totalUsers"`
	TotalRecords      int64              `json:"totalRecords"`
	TotalFeelings     int64              `json:"totalFeelings"`
	ActiveFeelings    int64              `json:"activeFeelings"`
	UsersByCountry    map[string]int64   `json:"usersByCountry"`
	RecentActivity    []DayActivity      `json:"recentActivity"`
	FeelingChanges    []FeelingChange    `json:"feelingChanges"`
	UserRegistrations []DayRegistrations `json:"userRegistrations"`
}

// AdminStats is the compact counter set for the admin landing page.
type AdminStats struct {
	ActiveFeelings int64 `json:"activeFeelings"`
	Meditations    int64 `json:"meditations"`
	Tags           int64 `json:"tags"`
	Users          int64 `json:"users"`
}

// PublicDayActivity is one public chart point. Label is a Spanish short-month
// display form of Date.
type PublicDayActivity struct {
	Date       string `json:"date"`
	Label      string `json:"label"`
	Activities int    `json:"activities"`
}

// PublicStats is the unauthenticated landing-page payload.
type PublicStats struct {
	ActivityData   []PublicDayActivity `json:"activityData"`
	FeelingChanges []FeelingChange     `json:"feelingChanges"`
}

// AnalyticsService aggregates raw rows into chart-ready series. Every call
// re-queries; there is no cache and no shared state between requests.
type AnalyticsService struct {
	Users       repository.UserRepositoryInterface
	Feelings    repository.FeelingRepositoryInterface
	Meditations repository.MeditationRepositoryInterface
	Records     repository.RecordRepositoryInterface
	Activity    repository.ActivityRepositoryInterface
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	users repository.UserRepositoryInterface,
	feelings repository.FeelingRepositoryInterface,
	meditations repository.MeditationRepositoryInterface,
	records repository.RecordRepositoryInterface,
	activity repository.ActivityRepositoryInterface,
) *AnalyticsService {
	return &AnalyticsService{
		Users:       users,
		Feelings:    feelings,
		Meditations: meditations,
		Records:     records,
		Activity:    activity,
	}
}

// timeRangeStart maps the admin time-range selector to a cutoff. Unknown
// values fall back to seven days.
func timeRangeStart(timeRange string, now time.Time) time.Time {
	switch timeRange {
	case "30d":
		return now.AddDate(0, 0, -30)
	case "90d":
		return now.AddDate(0, 0, -90)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// AdminAnalytics assembles the full admin dashboard for the given range.
func (s *AnalyticsService) AdminAnalytics(timeRange string) (*AdminAnalytics, error) {
	since := timeRangeStart(timeRange, time.Now())

	totalUsers, err := s.Users.CountUsers()
	if err != nil {
		return nil, err
	}
	totalRecords, err := s.Records.CountRecords()
	if err != nil {
		return nil, err
	}
	totalFeelings, err := s.Feelings.CountFeelings(false)
	if err != nil {
		return nil, err
	}
	activeFeelings, err := s.Feelings.CountFeelings(true)
	if err != nil {
		return nil, err
	}

	countryCounts, err := s.Users.CountUsersByCountry()
	if err != nil {
		return nil, err
	}
	usersByCountry := make(map[string]int64, len(countryCounts))
	for _, row := range countryCounts {
		name := "Unknown"
		if row.Country != nil {
			name = *row.Country
		}
		usersByCountry[name] = row.Count
	}

	logs, err := s.Activity.ListLogsSince(since)
	if err != nil {
		return nil, err
	}
	buckets := BucketActivityByDay(logs, since)
	recentActivity := make([]DayActivity, 0, len(buckets))
	for date, bucket := range buckets {
		recentActivity = append(recentActivity, DayActivity{
			Date:            date,
			TotalActivities: bucket.Total,
			UserActivities:  bucket.Users,
		})
	}
	sort.Slice(recentActivity, func(i, j int) bool {
		return recentActivity[i].Date < recentActivity[j].Date
	})

	ratings, err := s.Records.ListAllRatings()
	if err != nil {
		return nil, err
	}
	feelingChanges := ComputeFeelingChanges(ratings)

	registrationTimes, err := s.Users.ListRegistrationTimes()
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]int)
	var dayOrder []string
	for _, t := range registrationTimes {
		date := t.UTC().Format(dateLayout)
		if _, ok := byDay[date]; !ok {
			dayOrder = append(dayOrder, date)
		}
		byDay[date]++
	}
	registrations := make([]DayRegistrations, 0, len(dayOrder))
	for _, date := range dayOrder {
		registrations = append(registrations, DayRegistrations{Date: date, Registrations: byDay[date]})
	}

	return &AdminAnalytics{
		TotalUsers:        totalUsers,
		TotalRecords:      totalRecords,
		TotalFeelings:     totalFeelings,
		ActiveFeelings:    activeFeelings,
		UsersByCountry:    usersByCountry,
		RecentActivity:    recentActivity,
		FeelingChanges:    feelingChanges,
		UserRegistrations: registrations,
	}, nil
}

// AdminStats returns the counters shown on the admin landing page.
func (s *AnalyticsService) AdminStats() (*AdminStats, error) {
	activeFeelings, err := s.Feelings.CountFeelings(true)
	if err != nil {
		return nil, err
	}
	meditations, err := s.Meditations.CountMeditations(true)
	if err != nil {
		return nil, err
	}
	tags, err := s.Meditations.CountTags(true)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.CountUsers()
	if err != nil {
		return nil, err
	}
	return &AdminStats{
		ActiveFeelings: activeFeelings,
		Meditations:    meditations,
		Tags:           tags,
		Users:          users,
	}, nil
}

var spanishShortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// spanishDayLabel renders a YYYY-MM-DD date as "2 ene" style display text.
func spanishDayLabel(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("2") + " " + spanishShortMonths[t.Month()-1]
}

// PublicStats builds the unauthenticated seven-day activity series and the
// global feeling-change summary.
func (s *AnalyticsService) PublicStats() (*PublicStats, error) {
	since := time.Now().AddDate(0, 0, -7)

	logs, err := s.Activity.ListLogsSince(since)
	if err != nil {
		return nil, err
	}
	buckets := BucketActivityByDay(logs, since)

	activityData := make([]PublicDayActivity, 0, len(buckets))
	for date, bucket := range buckets {
		activityData = append(activityData, PublicDayActivity{
			Date:       date,
			Label:      spanishDayLabel(date),
			Activities: bucket.Total,
		})
	}
	sort.Slice(activityData, func(i, j int) bool {
		return activityData[i].Date < activityData[j].Date
	})

	ratings, err := s.Records.ListAllRatings()
	if err != nil {
		return nil, err
	}

	return &PublicStats{
		ActivityData:   activityData,
		FeelingChanges: ComputeFeelingChanges(ratings),
	}, nil
}
