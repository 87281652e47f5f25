package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/scheduleboard/backend/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepository struct {
	schedules map[string]*Schedule
	nextID    int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{schedules: map[string]*Schedule{}}
}

func (f *fakeRepository) ListByOwner(ownerID string) ([]*Schedule, error) {
	var out []*Schedule
	for _, s := range f.schedules {
		if s.UserID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetOwned(id, ownerID string) (*Schedule, error) {
	s, ok := f.schedules[id]
	if !ok || s.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeRepository) Create(s *Schedule) error {
	f.nextID++
	s.ID = fmt.Sprintf("sched-%d", f.nextID)
	copied := *s
	f.schedules[s.ID] = &copied
	return nil
}

func (f *fakeRepository) Update(id string, updates map[string]interface{}) error {
	s, ok := f.schedules[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["title"]; ok {
		s.Title = v.(string)
	}
	if v, ok := updates["description"]; ok {
		desc := v.(string)
		s.Description = &desc
	}
	if v, ok := updates["start_at"]; ok {
		s.StartAt = v.(time.Time)
	}
	if v, ok := updates["end_at"]; ok {
		s.EndAt = v.(time.Time)
	}
	if v, ok := updates["is_all_day"]; ok {
		s.IsAllDay = v.(bool)
	}
	return nil
}

func (f *fakeRepository) Delete(id string) error {
	delete(f.schedules, id)
	return nil
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
}

func strPtr(s string) *string { return &s }

func TestCreateSchedule(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create("user-1", CreateScheduleRequest{
		Title:   "Standup",
		StartAt: "2024-01-01T09:00:00Z",
		EndAt:   "2024-01-01T09:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.UserID)
	assert.False(t, created.IsAllDay)
	assert.True(t, created.StartAt.Before(created.EndAt))
}

func TestCreateScheduleEndBeforeStart(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	_, err := svc.Create("user-1", CreateScheduleRequest{
		Title:   "Standup",
		StartAt: "2024-01-01T09:00:00Z",
		EndAt:   "2024-01-01T08:00:00Z",
	})
	requireKind(t, err, apperr.KindValidation)
	assert.Empty(t, repo.schedules, "invalid input must not mutate stored state")
}

func TestCreateScheduleUnparseableTimestamp(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	_, err := svc.Create("user-1", CreateScheduleRequest{
		Title:   "Standup",
		StartAt: "yesterday",
		EndAt:   "2024-01-01T09:00:00Z",
	})
	requireKind(t, err, apperr.KindValidation)
}

func TestCreateScheduleEqualBounds(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	_, err := svc.Create("user-1", CreateScheduleRequest{
		Title:   "Reminder",
		StartAt: "2024-01-01T09:00:00Z",
		EndAt:   "2024-01-01T09:00:00Z",
	})
	assert.NoError(t, err, "startAt == endAt is a valid interval")
}

func TestUpdateScheduleMergedInvariant(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create("user-1", CreateScheduleRequest{
		Title:   "Standup",
		StartAt: "2024-01-01T09:00:00Z",
		EndAt:   "2024-01-01T10:00:00Z",
	})
	require.NoError(t, err)

	// moving endAt before the stored startAt must fail even though the
	// provided field alone looks fine
	_, err = svc.Update("user-1", created.ID, UpdateScheduleRequest{
		EndAt: strPtr("2024-01-01T08:00:00Z"),
	})
	requireKind(t, err, apperr.KindValidation)

	stored, getErr := repo.GetOwned(created.ID, "user-1")
	require.NoError(t, getErr)
	assert.Equal(t, created.EndAt, stored.EndAt, "failed update must not mutate stored state")

	// moving startAt later while staying inside the stored interval is fine
	updated, err := svc.Update("user-1", created.ID, UpdateScheduleRequest{
		StartAt: strPtr("2024-01-01T09:30:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T09:30:00Z", updated.StartAt.UTC().Format(time.RFC3339))
	assert.Equal(t, created.EndAt, updated.EndAt)
}

func TestUpdateSchedulePartialFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create("user-1", CreateScheduleRequest{
		Title:   "Standup",
		StartAt: "2024-01-01T09:00:00Z",
		EndAt:   "2024-01-01T10:00:00Z",
	})
	require.NoError(t, err)

	updated, err := svc.Update("user-1", created.ID, UpdateScheduleRequest{
		Title:       strPtr("Daily sync"),
		Description: strPtr("planning"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Daily sync", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "planning", *updated.Description)
	assert.Equal(t, created.StartAt, updated.StartAt)
}

func TestUpdateScheduleNotOwned(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create("user-1", CreateScheduleRequest{
		Title:   "Standup",
		StartAt: "2024-01-01T09:00:00Z",
		EndAt:   "2024-01-01T10:00:00Z",
	})
	require.NoError(t, err)

	// foreign schedules surface as not found, not forbidden
	_, err = svc.Update("user-2", created.ID, UpdateScheduleRequest{Title: strPtr("hijack")})
	requireKind(t, err, apperr.KindNotFound)
}

func TestDeleteSchedule(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create("user-1", CreateScheduleRequest{
		Title:   "Standup",
		StartAt: "2024-01-01T09:00:00Z",
		EndAt:   "2024-01-01T10:00:00Z",
	})
	require.NoError(t, err)

	requireKind(t, svc.Delete("user-2", created.ID), apperr.KindNotFound)
	require.NoError(t, svc.Delete("user-1", created.ID))
	requireKind(t, svc.Delete("user-1", created.ID), apperr.KindNotFound)
}
