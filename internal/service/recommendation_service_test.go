package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/samadhi-tracker/internal/model"
)

func tagged(id, title string, tagNames ...string) model.Meditation {
	tags := make([]model.MeditationTag, 0, len(tagNames))
	for _, name := range tagNames {
		tags = append(tags, model.MeditationTag{ID: "tag-" + name, Name: name})
	}
	return model.Meditation{ID: id, Title: title, Tags: tags, IsActive: true}
}

func testCatalog() []model.Meditation {
	return []model.Meditation{
		tagged("m1", "Respiración Profunda", "Ansiedad", "Respiración", "Relajación"),
		tagged("m2", "Mindfulness Básico", "Mindfulness", "General"),
		tagged("m3", "Para Dormir", "Sueño", "Relajación", "Estrés"),
		tagged("m4", "Amor y Bondad", "Amor", "Gratitud", "General"),
		tagged("m5", "Reducir Estrés", "Estrés", "Relajación", "Respiración"),
	}
}

func TestRecommendStrongSignalPicksRelaxation(t *testing.T) {
	catalog := testCatalog()

	picks := Recommend(catalog, RecommendationRequest{
		BeforeFeelings: map[string]int{"f1": 8},
	})

	assert.Len(t, picks, 2)
	assert.Equal(t, "m1", picks[0].ID)
	assert.Equal(t, "m3", picks[1].ID)
}

func TestRecommendHighRatingOnAnyFeelingTriggersRelaxation(t *testing.T) {
	catalog := testCatalog()

	// A high rating trips the relaxation tier regardless of which feeling it
	// belongs to.
	picks := Recommend(catalog, RecommendationRequest{
		BeforeFeelings: map[string]int{"joy": 9},
	})

	assert.NotEmpty(t, picks)
	assert.Equal(t, "m1", picks[0].ID)
}

func TestRecommendStressKeywordPicksStressTagged(t *testing.T) {
	catalog := testCatalog()

	picks := Recommend(catalog, RecommendationRequest{
		BeforeFeelings:  map[string]int{"f1": 3},
		MoodDescription: "Hoy siento mucho estrés en el trabajo",
	})

	assert.Len(t, picks, 2)
	assert.Equal(t, "m1", picks[0].ID) // tagged Ansiedad
	assert.Equal(t, "m3", picks[1].ID) // tagged Estrés
}

func TestRecommendCombinesTiersAndDeduplicates(t *testing.T) {
	catalog := testCatalog()

	picks := Recommend(catalog, RecommendationRequest{
		BeforeFeelings:  map[string]int{"f1": 8},
		MoodDescription: "tensión y ansiedad",
	})

	assert.LessOrEqual(t, len(picks), 3)
	seen := make(map[string]bool)
	for _, m := range picks {
		assert.False(t, seen[m.ID], "duplicate pick %s", m.ID)
		seen[m.ID] = true
	}
}

func TestRecommendFallsBackToGeneral(t *testing.T) {
	catalog := testCatalog()

	picks := Recommend(catalog, RecommendationRequest{
		BeforeFeelings:  map[string]int{"f1": 2},
		MoodDescription: "todo tranquilo",
	})

	assert.Len(t, picks, 2)
	assert.Equal(t, "m2", picks[0].ID)
	assert.Equal(t, "m4", picks[1].ID)
}

func TestRecommendFallsBackToCatalogHead(t *testing.T) {
	catalog := []model.Meditation{
		{ID: "m1", Title: "Sin etiquetas 1"},
		{ID: "m2", Title: "Sin etiquetas 2"},
		{ID: "m3", Title: "Sin etiquetas 3"},
		{ID: "m4", Title: "Sin etiquetas 4"},
	}

	picks := Recommend(catalog, RecommendationRequest{
		BeforeFeelings: map[string]int{"f1": 2},
	})

	assert.Len(t, picks, 3)
	assert.Equal(t, "m1", picks[0].ID)
	assert.Equal(t, "m2", picks[1].ID)
	assert.Equal(t, "m3", picks[2].ID)
}

func TestRecommendEmptyCatalog(t *testing.T) {
	picks := Recommend(nil, RecommendationRequest{
		BeforeFeelings: map[string]int{"f1": 9},
	})
	assert.Empty(t, picks)
}

func TestRecommendThresholdBoundary(t *testing.T) {
	catalog := testCatalog()

	below := Recommend(catalog, RecommendationRequest{BeforeFeelings: map[string]int{"f1": 5}})
	atThreshold := Recommend(catalog, RecommendationRequest{BeforeFeelings: map[string]int{"f1": 6}})

	// 5 falls through to the general tier, 6 trips the relaxation tier.
	assert.Equal(t, "m2", below[0].ID)
	assert.Equal(t, "m1", atThreshold[0].ID)
}

func TestRecommendDoesNotModifyCatalog(t *testing.T) {
	catalog := testCatalog()
	ids := make([]string, len(catalog))
	for i, m := range catalog {
		ids[i] = m.ID
	}

	Recommend(catalog, RecommendationRequest{
		BeforeFeelings:  map[string]int{"f1": 8},
		MoodDescription: "estrés",
	})

	for i, m := range catalog {
		assert.Equal(t, ids[i], m.ID)
	}
}

func TestRecommendationServiceUsesActiveCatalogOnly(t *testing.T) {
	inactive := tagged("m-off", "Apagada", "General")
	inactive.IsActive = false

	repo := &fakeMeditationRepo{meditations: append(testCatalog(), inactive)}
	svc := NewRecommendationService(repo)

	summaries, err := svc.Recommend(RecommendationRequest{
		BeforeFeelings: map[string]int{"f1": 2},
	})

	assert.NoError(t, err)
	for _, s := range summaries {
		assert.NotEqual(t, "m-off", s.ID)
	}
}
