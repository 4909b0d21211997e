package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/repository"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) CreateUser(user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = "user-" + user.UserID
	}
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByUserID(userID string) (*model.User, error) {
	for _, u := range f.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListUsers() ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateUser(user *model.User) (*model.User, error) {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) DeleteUser(id string) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) CountUsers() (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountUsersByCountry() ([]repository.CountryCount, error) {
	counts := make(map[string]*repository.CountryCount)
	var order []string
	for _, u := range f.users {
		key := ""
		if u.Country != nil {
			key = *u.Country
		}
		if _, ok := counts[key]; !ok {
			counts[key] = &repository.CountryCount{Country: u.Country}
			order = append(order, key)
		}
		counts[key].Count++
	}
	out := make([]repository.CountryCount, 0, len(order))
	for _, key := range order {
		out = append(out, *counts[key])
	}
	return out, nil
}

func (f *fakeUserRepo) ListRegistrationTimes() ([]time.Time, error) {
	out := make([]time.Time, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u.CreatedAt)
	}
	return out, nil
}

type fakeRecordRepo struct {
	records []model.DailyRecord
	ratings []model.FeelingRating
}

func (f *fakeRecordRepo) CreateRecord(record *model.DailyRecord) (*model.DailyRecord, error) {
	if record.ID == "" {
		record.ID = "record-1"
	}
	f.records = append(f.records, *record)
	return record, nil
}

func (f *fakeRecordRepo) GetUserRecord(id, userID string) (*model.DailyRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id && f.records[i].UserID == userID {
			return &f.records[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecordRepo) ListUserRecords(userID string) ([]model.DailyRecord, error) {
	var out []model.DailyRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListUserRatings(userID string) ([]model.FeelingRating, error) {
	return f.ratings, nil
}

func (f *fakeRecordRepo) ListAllRatings() ([]model.FeelingRating, error) {
	return f.ratings, nil
}

func (f *fakeRecordRepo) CountRecords() (int64, error) {
	return int64(len(f.records)), nil
}

func (f *fakeRecordRepo) CountRecordsPerUser() (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range f.records {
		counts[r.UserID]++
	}
	return counts, nil
}

type fakeActivityRepo struct {
	logs []model.ActivityLog
}

func (f *fakeActivityRepo) CreateLog(entry *model.ActivityLog) error {
	f.logs = append(f.logs, *entry)
	return nil
}

func (f *fakeActivityRepo) ListLogsSince(since time.Time) ([]model.ActivityLog, error) {
	var out []model.ActivityLog
	for _, l := range f.logs {
		if !l.CreatedAt.Before(since) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) ExportLogs(since time.Time, format string) ([]byte, string, error) {
	return nil, "", nil
}

type fakeFeelingRepo struct {
	feelings []model.Feeling
	// Optional counter overrides for tests that only care about counts.
	active int64
	total  int64
}

func (f *fakeFeelingRepo) CreateFeeling(feeling *model.Feeling) (*model.Feeling, error) {
	if feeling.ID == "" {
		feeling.ID = "feeling-" + feeling.NameEs
	}
	f.feelings = append(f.feelings, *feeling)
	return feeling, nil
}

func (f *fakeFeelingRepo) GetFeelingByID(id string) (*model.Feeling, error) {
	for i := range f.feelings {
		if f.feelings[i].ID == id {
			return &f.feelings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFeelingRepo) ListFeelings(onlyActive bool) ([]model.Feeling, error) {
	if !onlyActive {
		return f.feelings, nil
	}
	var out []model.Feeling
	for _, feeling := range f.feelings {
		if feeling.IsActive {
			out = append(out, feeling)
		}
	}
	return out, nil
}

func (f *fakeFeelingRepo) FindFeelingByNames(nameEs, nameEn string) (*model.Feeling, error) {
	for i := range f.feelings {
		if f.feelings[i].NameEs == nameEs && f.feelings[i].NameEn == nameEn {
			return &f.feelings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFeelingRepo) UpdateFeeling(feeling *model.Feeling) (*model.Feeling, error) {
	return feeling, nil
}

func (f *fakeFeelingRepo) DeleteFeeling(id string) error { return nil }

func (f *fakeFeelingRepo) CountFeelings(onlyActive bool) (int64, error) {
	if f.active != 0 || f.total != 0 {
		if onlyActive {
			return f.active, nil
		}
		return f.total, nil
	}
	listed, _ := f.ListFeelings(onlyActive)
	return int64(len(listed)), nil
}

type fakeMeditationRepo struct {
	meditations []model.Meditation
	tags        []model.MeditationTag
}

func (f *fakeMeditationRepo) CreateMeditation(m *model.Meditation, tagIDs []string) (*model.Meditation, error) {
	f.meditations = append(f.meditations, *m)
	return m, nil
}

func (f *fakeMeditationRepo) GetMeditationByID(id string) (*model.Meditation, error) {
	for i := range f.meditations {
		if f.meditations[i].ID == id {
			return &f.meditations[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMeditationRepo) ListMeditations(onlyActive bool) ([]model.Meditation, error) {
	if !onlyActive {
		return f.meditations, nil
	}
	var out []model.Meditation
	for _, m := range f.meditations {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeditationRepo) UpdateMeditation(m *model.Meditation, tagIDs []string) (*model.Meditation, error) {
	return m, nil
}

func (f *fakeMeditationRepo) DeleteMeditation(id string) error { return nil }

func (f *fakeMeditationRepo) CountMeditations(onlyActive bool) (int64, error) {
	return int64(len(f.meditations)), nil
}

func (f *fakeMeditationRepo) CreateTag(tag *model.MeditationTag) (*model.MeditationTag, error) {
	f.tags = append(f.tags, *tag)
	return tag, nil
}

func (f *fakeMeditationRepo) GetTagByID(id string) (*model.MeditationTag, error) {
	for i := range f.tags {
		if f.tags[i].ID == id {
			return &f.tags[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMeditationRepo) GetTagsByIDs(ids []string) ([]model.MeditationTag, error) {
	var out []model.MeditationTag
	for _, id := range ids {
		for _, tag := range f.tags {
			if tag.ID == id {
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

func (f *fakeMeditationRepo) ListTags() ([]model.MeditationTag, error) {
	return f.tags, nil
}

func (f *fakeMeditationRepo) UpdateTag(tag *model.MeditationTag) (*model.MeditationTag, error) {
	return tag, nil
}

func (f *fakeMeditationRepo) DeleteTag(id string) error { return nil }

func (f *fakeMeditationRepo) CountTags(onlyActive bool) (int64, error) {
	return int64(len(f.tags)), nil
}
