package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/config"
	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/repository"
	"github.com/user/samadhi-tracker/pkg/shuffle"
)

var ErrFeelingExists = errors.New("feeling already exists")

// FeelingInput carries the admin-editable feeling fields.
type FeelingInput struct {
	NameEs   string `json:"nameEs" validate:"required"`
	NameEn   string `json:"nameEn" validate:"required"`
	Category string `json:"category" validate:"required,oneof=GOOD BAD"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// MeditationInput carries the admin-editable meditation fields.
type MeditationInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	YoutubeURL  string   `json:"youtubeUrl" validate:"required,url"`
	Duration    int      `json:"duration" validate:"required,min=1"`
	IsActive    *bool    `json:"isActive,omitempty"`
	TagIDs      []string `json:"tagIds,omitempty"`
}

// TagInput carries the admin-editable tag fields.
type TagInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// AdminUserInput carries the admin-editable account fields. Password is
// optional on update: empty leaves the stored hash untouched.
type AdminUserInput struct {
	UserID   string  `json:"userId" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     string  `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	Country  *string `json:"country,omitempty"`
	Language string  `json:"language" validate:"omitempty,oneof=ES EN"`
}

// AdminUser is a user row enriched with their record total.
type AdminUser struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Country      *string `json:"country,omitempty"`
	Language     string  `json:"language"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	TotalRecords int64   `json:"totalRecords"`
}

// CatalogService owns the curated catalogs (feelings, meditations, tags) and
// the admin view of user accounts.
type CatalogService struct {
	Feelings    repository.FeelingRepositoryInterface
	Meditations repository.MeditationRepositoryInterface
	Users       repository.UserRepositoryInterface
	Records     repository.RecordRepositoryInterface
	Activity    *ActivityService
	Cfg         *config.AppConfig
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	feelings repository.FeelingRepositoryInterface,
	meditations repository.MeditationRepositoryInterface,
	users repository.UserRepositoryInterface,
	records repository.RecordRepositoryInterface,
	activity *ActivityService,
	cfg *config.AppConfig,
) *CatalogService {
	return &CatalogService{
		Feelings:    feelings,
		Meditations: meditations,
		Users:       users,
		Records:     records,
		Activity:    activity,
		Cfg:         cfg,
	}
}

// ActiveFeelingsShuffled returns the active feelings in uniformly random
// order, so presentation order doesn't bias which feelings get rated first.
func (s *CatalogService) ActiveFeelingsShuffled() ([]model.Feeling, error) {
	feelings, err := s.Feelings.ListFeelings(true)
	if err != nil {
		return nil, err
	}
	return shuffle.Of(feelings), nil
}

// ---------- feelings ----------

func (s *CatalogService) ListFeelings() ([]model.Feeling, error) {
	return s.Feelings.ListFeelings(false)
}

func (s *CatalogService) CreateFeeling(adminID string, input FeelingInput, ip, userAgent string) (*model.Feeling, error) {
	if _, err := s.Feelings.FindFeelingByNames(input.NameEs, input.NameEn); err == nil {
		return nil, ErrFeelingExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	feeling := &model.Feeling{
		NameEs:   input.NameEs,
		NameEn:   input.NameEn,
		Category: input.Category,
		IsActive: input.IsActive == nil || *input.IsActive,
	}
	if _, err := s.Feelings.CreateFeeling(feeling); err != nil {
		return nil, err
	}
	s.Activity.Record(adminID, model.ActionCreateFeeling, "Feeling created: "+feeling.NameEs, ip, userAgent)
	return feeling, nil
}

func (s *CatalogService) UpdateFeeling(adminID, id string, input FeelingInput, ip, userAgent string) (*model.Feeling, error) {
	feeling, err := s.Feelings.GetFeelingByID(id)
	if err != nil {
		return nil, err
	}
	feeling.NameEs = input.NameEs
	feeling.NameEn = input.NameEn
	feeling.Category = input.Category
	if input.IsActive != nil {
		feeling.IsActive = *input.IsActive
	}
	if _, err := s.Feelings.UpdateFeeling(feeling); err != nil {
		return nil, err
	}
	s.Activity.Record(adminID, model.ActionUpdateFeeling, "Feeling updated: "+feeling.NameEs, ip, userAgent)
	return feeling, nil
}

func (s *CatalogService) DeleteFeeling(adminID, id string, ip, userAgent string) error {
	feeling, err := s.Feelings.GetFeelingByID(id)
	if err != nil {
		return err
	}
	if err := s.Feelings.DeleteFeeling(id); err != nil {
		return err
	}
	s.Activity.Record(adminID, model.ActionDeleteFeeling, "Feeling deleted: "+feeling.NameEs, ip, userAgent)
	return nil
}

// ---------- meditations ----------

func (s *CatalogService) ListMeditations() ([]model.Meditation, error) {
	return s.Meditations.ListMeditations(false)
}

func (s *CatalogService) CreateMeditation(adminID string, input MeditationInput, ip, userAgent string) (*model.Meditation, error) {
	meditation := &model.Meditation{
		Title:       input.Title,
		Description: input.Description,
		YoutubeURL:  input.YoutubeURL,
		Duration:    input.Duration,
		IsActive:    input.IsActive == nil || *input.IsActive,
	}
	if _, err := s.Meditations.CreateMeditation(meditation, input.TagIDs); err != nil {
		return nil, err
	}
	s.Activity.Record(adminID, model.ActionCreateMeditation, "Meditation created: "+meditation.Title, ip, userAgent)
	return meditation, nil
}

func (s *CatalogService) UpdateMeditation(adminID, id string, input MeditationInput, ip, userAgent string) (*model.Meditation, error) {
	meditation, err := s.Meditations.GetMeditationByID(id)
	if err != nil {
		return nil, err
	}
	meditation.Title = input.Title
	meditation.Description = input.Description
	meditation.YoutubeURL = input.YoutubeURL
	meditation.Duration = input.Duration
	if input.IsActive != nil {
		meditation.IsActive = *input.IsActive
	}
	if _, err := s.Meditations.UpdateMeditation(meditation, input.TagIDs); err != nil {
		return nil, err
	}
	s.Activity.Record(adminID, model.ActionUpdateMeditation, "Meditation updated: "+meditation.Title, ip, userAgent)
	return meditation, nil
}

func (s *CatalogService) DeleteMeditation(adminID, id string, ip, userAgent string) error {
	meditation, err := s.Meditations.GetMeditationByID(id)
	if err != nil {
		return err
	}
	if err := s.Meditations.DeleteMeditation(id); err != nil {
		return err
	}
	s.Activity.Record(adminID, model.ActionDeleteMeditation, "Meditation deleted: "+meditation.Title, ip, userAgent)
	return nil
}

// ---------- tags ----------

func (s *CatalogService) ListTags() ([]model.MeditationTag, error) {
	return s.Meditations.ListTags()
}

func (s *CatalogService) CreateTag(adminID string, input TagInput, ip, userAgent string) (*model.MeditationTag, error) {
	tag := &model.MeditationTag{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    input.IsActive == nil || *input.IsActive,
	}
	if _, err := s.Meditations.CreateTag(tag); err != nil {
		return nil, err
	}
	s.Activity.Record(adminID, model.ActionCreateMeditationTag, "Tag created: "+tag.Name, ip, userAgent)
	return tag, nil
}

func (s *CatalogService) UpdateTag(adminID, id string, input TagInput, ip, userAgent string) (*model.MeditationTag, error) {
	tag, err := s.Meditations.GetTagByID(id)
	if err != nil {
		return nil, err
	}
	tag.Name = input.Name
	tag.Description = input.Description
	if input.IsActive != nil {
		tag.IsActive = *input.IsActive
	}
	if _, err := s.Meditations.UpdateTag(tag); err != nil {
		return nil, err
	}
	s.Activity.Record(adminID, model.ActionUpdateMeditationTag, "Tag updated: "+tag.Name, ip, userAgent)
	return tag, nil
}

func (s *CatalogService) DeleteTag(adminID, id string, ip, userAgent string) error {
	tag, err := s.Meditations.GetTagByID(id)
	if err != nil {
		return err
	}
	if err := s.Meditations.DeleteTag(id); err != nil {
		return err
	}
	s.Activity.Record(adminID, model.ActionDeleteMeditationTag, "Tag deleted: "+tag.Name, ip, userAgent)
	return nil
}

// ---------- users ----------

// ListUsers returns all accounts with their record totals, newest first.
func (s *CatalogService) ListUsers() ([]AdminUser, error) {
	users, err := s.Users.ListUsers()
	if err != nil {
		return nil, err
	}
	counts, err := s.Records.CountRecordsPerUser()
	if err != nil {
		return nil, err
	}

	out := make([]AdminUser, 0, len(users))
	for _, user := range users {
		out = append(out, AdminUser{
			ID:           user.ID,
			UserID:       user.UserID,
			Email:        user.Email,
			Role:         user.Role,
			Country:      user.Country,
			Language:     user.Language,
			CreatedAt:    user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:    user.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			TotalRecords: counts[user.ID],
		})
	}
	return out, nil
}

// CreateUser creates an account on behalf of an admin.
func (s *CatalogService) CreateUser(adminID string, input AdminUserInput, ip, userAgent string) (*model.User, error) {
	if _, err := s.Users.GetUserByUserID(input.UserID); err == nil {
		return nil, ErrUserIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.Users.GetUserByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if input.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.Cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	language := input.Language
	if language == "" {
		language = model.LanguageES
	}

	user := &model.User{
		UserID:   input.UserID,
		Email:    input.Email,
		Password: string(hash),
		Role:     role,
		Country:  input.Country,
		Language: language,
	}
	if _, err := s.Users.CreateUser(user); err != nil {
		return nil, err
	}
	s.Activity.Record(adminID, model.ActionCreateUser, "User created: "+user.UserID, ip, userAgent)
	return user, nil
}

// UpdateUser edits an account; the password is re-hashed only when provided.
func (s *CatalogService) UpdateUser(adminID, id string, input AdminUserInput, ip, userAgent string) (*model.User, error) {
	user, err := s.Users.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	user.UserID = input.UserID
	user.Email = input.Email
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Language != "" {
		user.Language = input.Language
	}
	user.Country = input.Country
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.Cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.Password = string(hash)
	}
	if _, err := s.Users.UpdateUser(user); err != nil {
		return nil, err
	}
	s.Activity.Record(adminID, model.ActionUpdateUser, "User updated: "+user.UserID, ip, userAgent)
	return user, nil
}

// DeleteUser removes an account and its records.
func (s *CatalogService) DeleteUser(adminID, id string, ip, userAgent string) error {
	user, err := s.Users.GetUserByID(id)
	if err != nil {
		return err
	}
	if err := s.Users.DeleteUser(id); err != nil {
		return err
	}
	s.Activity.Record(adminID, model.ActionDeleteUser, "User deleted: "+user.UserID, ip, userAgent)
	return nil
}
