package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/samadhi-tracker/internal/model"
)

func newCatalogService(feelings *fakeFeelingRepo, meditations *fakeMeditationRepo, users *fakeUserRepo, records *fakeRecordRepo) *CatalogService {
	return NewCatalogService(
		feelings,
		meditations,
		users,
		records,
		NewActivityService(&fakeActivityRepo{}, zerolog.Nop()),
		testAuthConfig(),
	)
}

func TestActiveFeelingsShuffledFiltersInactive(t *testing.T) {
	feelings := &fakeFeelingRepo{feelings: []model.Feeling{
		{ID: "f1", NameEs: "Alegría", IsActive: true},
		{ID: "f2", NameEs: "Ansiedad", IsActive: true},
		{ID: "f3", NameEs: "Retirada", IsActive: false},
	}}
	svc := newCatalogService(feelings, &fakeMeditationRepo{}, &fakeUserRepo{}, &fakeRecordRepo{})

	got, err := svc.ActiveFeelingsShuffled()

	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, feeling := range got {
		assert.True(t, feeling.IsActive)
	}
}

func TestCreateFeelingRejectsDuplicateNames(t *testing.T) {
	feelings := &fakeFeelingRepo{}
	svc := newCatalogService(feelings, &fakeMeditationRepo{}, &fakeUserRepo{}, &fakeRecordRepo{})

	_, err := svc.CreateFeeling("admin", FeelingInput{NameEs: "Calma", NameEn: "Calm", Category: model.CategoryGood}, "", "")
	require.NoError(t, err)

	_, err = svc.CreateFeeling("admin", FeelingInput{NameEs: "Calma", NameEn: "Calm", Category: model.CategoryGood}, "", "")
	assert.ErrorIs(t, err, ErrFeelingExists)
}

func TestCreateFeelingDefaultsToActive(t *testing.T) {
	svc := newCatalogService(&fakeFeelingRepo{}, &fakeMeditationRepo{}, &fakeUserRepo{}, &fakeRecordRepo{})

	feeling, err := svc.CreateFeeling("admin", FeelingInput{NameEs: "Calma", NameEn: "Calm", Category: model.CategoryGood}, "", "")

	require.NoError(t, err)
	assert.True(t, feeling.IsActive)
}

func TestListUsersIncludesRecordTotals(t *testing.T) {
	users := &fakeUserRepo{}
	users.CreateUser(&model.User{UserID: "ana", Email: "ana@example.com"})
	users.CreateUser(&model.User{UserID: "bob", Email: "bob@example.com"})

	records := &fakeRecordRepo{records: []model.DailyRecord{
		{ID: "r1", UserID: "user-ana"},
		{ID: "r2", UserID: "user-ana"},
	}}

	svc := newCatalogService(&fakeFeelingRepo{}, &fakeMeditationRepo{}, users, records)

	list, err := svc.ListUsers()

	require.NoError(t, err)
	require.Len(t, list, 2)
	totals := map[string]int64{}
	for _, u := range list {
		totals[u.UserID] = u.TotalRecords
	}
	assert.Equal(t, int64(2), totals["ana"])
	assert.Equal(t, int64(0), totals["bob"])
}

func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newCatalogService(&fakeFeelingRepo{}, &fakeMeditationRepo{}, users, &fakeRecordRepo{})

	created, err := svc.CreateUser("admin", AdminUserInput{
		UserID:   "ana",
		Email:    "ana@example.com",
		Password: "secret123",
	}, "", "")
	require.NoError(t, err)
	originalHash := created.Password

	updated, err := svc.UpdateUser("admin", created.ID, AdminUserInput{
		UserID: "ana",
		Email:  "ana@samadhi.example",
	}, "", "")

	require.NoError(t, err)
	assert.Equal(t, originalHash, updated.Password)
	assert.Equal(t, "ana@samadhi.example", updated.Email)
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newCatalogService(&fakeFeelingRepo{}, &fakeMeditationRepo{}, users, &fakeRecordRepo{})

	created, err := svc.CreateUser("admin", AdminUserInput{
		UserID:   "ana",
		Email:    "ana@example.com",
		Password: "secret123",
	}, "", "")
	require.NoError(t, err)

	updated, err := svc.UpdateUser("admin", created.ID, AdminUserInput{
		UserID:   "ana",
		Email:    "ana@example.com",
		Password: "newsecret",
	}, "", "")

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newsecret")))
}

func TestCreateUserRequiresPassword(t *testing.T) {
	svc := newCatalogService(&fakeFeelingRepo{}, &fakeMeditationRepo{}, &fakeUserRepo{}, &fakeRecordRepo{})

	_, err := svc.CreateUser("admin", AdminUserInput{UserID: "ana", Email: "ana@example.com"}, "", "")

	assert.Error(t, err)
}
