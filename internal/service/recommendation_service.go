package service

import (
	"strings"

	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/repository"
)

// maxRecommendations caps every recommendation response.
const maxRecommendations = 3

// strongSignalThreshold marks a pre-meditation rating as a strong signal.
// Note: the threshold applies to any feeling regardless of its GOOD/BAD
// category, so a high rating on a positive feeling also trips the relaxation
// tier. Kept as-is; changing it would silently shift long-standing results.
const strongSignalThreshold = 6

var (
	relaxationTags = tagSet("ansiedad", "estrés", "relajación", "calma", "respiración")
	stressTags     = tagSet("estrés", "tensión", "ansiedad", "respiración")
	generalTags    = tagSet("general", "mindfulness", "bienestar")

	stressKeywords = []string{"tensión", "estrés", "ansiedad"}
)

func tagSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// RecommendationRequest is a user's pre-meditation self-report.
type RecommendationRequest struct {
	BeforeFeelings  map[string]int `json:"beforeFeelings"`
	MoodDescription string         `json:"moodDescription,omitempty"`
}

// MeditationSummary is the catalog entry shape returned to clients.
type MeditationSummary struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Duration    int                   `json:"duration"`
	YoutubeURL  string                `json:"youtubeUrl,omitempty"`
	Tags        []model.MeditationTag `json:"tags"`
}

// Recommend maps a self-report to at most three meditations from the catalog.
//
// Tiers run in order and can each contribute before the final truncation:
//  1. any rating at or above the strong-signal threshold selects up to two
//     relaxation-tagged meditations;
//  2. stress keywords in the mood description select up to two stress-tagged
//     meditations;
//  3. if nothing matched, up to three general meditations;
//  4. if still nothing, the first three catalog entries as-is.
//
// Duplicates are removed keeping first occurrence. The result is empty only
// when the catalog itself is empty. Pure: neither input is modified.
func Recommend(catalog []model.Meditation, req RecommendationRequest) []model.Meditation {
	var picks []model.Meditation

	strongSignal := false
	for _, rating := range req.BeforeFeelings {
		if rating >= strongSignalThreshold {
			strongSignal = true
			break
		}
	}
	if strongSignal {
		picks = append(picks, selectByTags(catalog, relaxationTags, 2)...)
	}

	if req.MoodDescription != "" {
		description := strings.ToLower(req.MoodDescription)
		for _, keyword := range stressKeywords {
			if strings.Contains(description, keyword) {
				picks = append(picks, selectByTags(catalog, stressTags, 2)...)
				break
			}
		}
	}

	if len(picks) == 0 {
		picks = append(picks, selectByTags(catalog, generalTags, 3)...)
	}

	if len(picks) == 0 {
		if len(catalog) > maxRecommendations {
			picks = append(picks, catalog[:maxRecommendations]...)
		} else {
			picks = append(picks, catalog...)
		}
	}

	seen := make(map[string]struct{}, len(picks))
	unique := picks[:0]
	for _, meditation := range picks {
		if _, ok := seen[meditation.ID]; ok {
			continue
		}
		seen[meditation.ID] = struct{}{}
		unique = append(unique, meditation)
		if len(unique) == maxRecommendations {
			break
		}
	}
	return unique
}

// selectByTags returns up to limit meditations whose tag set intersects the
// given names, preserving catalog order.
func selectByTags(catalog []model.Meditation, names map[string]struct{}, limit int) []model.Meditation {
	var matched []model.Meditation
	for i := range catalog {
		if catalog[i].HasAnyTag(names) {
			matched = append(matched, catalog[i])
			if len(matched) == limit {
				break
			}
		}
	}
	return matched
}

// RecommendationService serves recommendations over the active catalog.
type RecommendationService struct {
	Meditations repository.MeditationRepositoryInterface
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(meditations repository.MeditationRepositoryInterface) *RecommendationService {
	return &RecommendationService{Meditations: meditations}
}

// Recommend loads a fresh snapshot of the active catalog and maps the picks
// to their response shape.
func (s *RecommendationService) Recommend(req RecommendationRequest) ([]MeditationSummary, error) {
	catalog, err := s.Meditations.ListMeditations(true)
	if err != nil {
		return nil, err
	}

	picks := Recommend(catalog, req)
	summaries := make([]MeditationSummary, 0, len(picks))
	for _, meditation := range picks {
		summaries = append(summaries, MeditationSummary{
			ID:          meditation.ID,
			Title:       meditation.Title,
			Description: meditation.Description,
			Duration:    meditation.Duration,
			YoutubeURL:  meditation.YoutubeURL,
			Tags:        meditation.Tags,
		})
	}
	return summaries, nil
}
