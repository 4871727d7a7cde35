package services

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/pkg/apperrors"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return uniqueViolation()
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock OpenDayRepository ──

type mockOpenDayRepo struct {
	openDays map[int64]*models.OpenDay
	nextID   int64
}

func newMockOpenDayRepo() *mockOpenDayRepo {
	return &mockOpenDayRepo{openDays: make(map[int64]*models.OpenDay)}
}

func (m *mockOpenDayRepo) Create(_ context.Context, openDay *models.OpenDay) error {
	m.nextID++
	openDay.ID = m.nextID
	openDay.CreatedAt = time.Now()
	m.openDays[openDay.ID] = openDay
	return nil
}

func (m *mockOpenDayRepo) GetByID(_ context.Context, id int64) (*models.OpenDay, error) {
	if od, ok := m.openDays[id]; ok {
		return od, nil
	}
	return nil, apperrors.ErrOpenDayNotFound
}

func (m *mockOpenDayRepo) GetAll(_ context.Context) ([]*models.OpenDay, error) {
	var result []*models.OpenDay
	for _, od := range m.openDays {
		result = append(result, od)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EventDate.Before(result[j].EventDate)
	})
	return result, nil
}

func (m *mockOpenDayRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.openDays[id]
	return ok, nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[int64]*models.Event
	nextID int64
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[int64]*models.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, event *models.Event) error {
	m.nextID++
	event.ID = m.nextID
	event.CreatedAt = time.Now()
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrEventNotFound
}

func (m *mockEventRepo) GetAll(_ context.Context, filter models.EventFilter) ([]*models.Event, error) {
	var result []*models.Event
	for _, e := range m.events {
		if filter.OpenDayID != nil && e.OpenDayID != *filter.OpenDayID {
			continue
		}
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		if filter.SubjectAreaID != nil && (e.SubjectAreaID == nil || *e.SubjectAreaID != *filter.SubjectAreaID) {
			continue
		}
		if filter.BuildingID != nil && (e.BuildingID == nil || *e.BuildingID != *filter.BuildingID) {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockEventRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.events[id]
	return ok, nil
}

// ── Mock RegistrationRepository ──

type regKey struct {
	userID    int64
	openDayID int64
}

type mockRegistrationRepo struct {
	registrations map[regKey]*models.Registration
	nextID        int64

	// hideExistingOnce makes the first lookup miss, simulating a
	// concurrent insert between the duplicate check and the write.
	hideExistingOnce bool
}

func newMockRegistrationRepo() *mockRegistrationRepo {
	return &mockRegistrationRepo{registrations: make(map[regKey]*models.Registration)}
}

func (m *mockRegistrationRepo) Create(_ context.Context, registration *models.Registration) error {
	key := regKey{registration.UserID, registration.OpenDayID}
	if _, ok := m.registrations[key]; ok {
		return uniqueViolation()
	}
	m.nextID++
	registration.ID = m.nextID
	registration.RegistrationDate = time.Now()
	m.registrations[key] = registration
	return nil
}

func (m *mockRegistrationRepo) GetByUserAndOpenDay(_ context.Context, userID, openDayID int64) (*models.Registration, error) {
	if m.hideExistingOnce {
		m.hideExistingOnce = false
		return nil, nil
	}
	if r, ok := m.registrations[regKey{userID, openDayID}]; ok {
		return r, nil
	}
	return nil, nil
}

func (m *mockRegistrationRepo) ListByUser(_ context.Context, userID int64) ([]*models.Registration, error) {
	var result []*models.Registration
	for _, r := range m.registrations {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock AgendaRepository ──

type agendaKey struct {
	userID  int64
	eventID int64
}

type mockAgendaRepo struct {
	items  map[agendaKey]*models.AgendaItem
	nextID int64

	hideExistingOnce bool
}

func newMockAgendaRepo() *mockAgendaRepo {
	return &mockAgendaRepo{items: make(map[agendaKey]*models.AgendaItem)}
}

func (m *mockAgendaRepo) Exists(_ context.Context, userID, eventID int64) (bool, error) {
	if m.hideExistingOnce {
		m.hideExistingOnce = false
		return false, nil
	}
	_, ok := m.items[agendaKey{userID, eventID}]
	return ok, nil
}

func (m *mockAgendaRepo) Create(_ context.Context, item *models.AgendaItem) error {
	key := agendaKey{item.UserID, item.EventID}
	if _, ok := m.items[key]; ok {
		return uniqueViolation()
	}
	m.nextID++
	item.ID = m.nextID
	item.AddedAt = time.Now()
	m.items[key] = item
	return nil
}

func (m *mockAgendaRepo) Delete(_ context.Context, userID, eventID int64) error {
	key := agendaKey{userID, eventID}
	if _, ok := m.items[key]; !ok {
		return apperrors.ErrEventNotInAgenda
	}
	delete(m.items, key)
	return nil
}

func (m *mockAgendaRepo) ListByUser(_ context.Context, userID int64, openDayID *int64) ([]*models.AgendaItem, error) {
	var result []*models.AgendaItem
	for _, item := range m.items {
		if item.UserID != userID {
			continue
		}
		if openDayID != nil && (item.Event == nil || item.Event.OpenDayID != *openDayID) {
			continue
		}
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock FeedbackRepository ──

type mockFeedbackRepo struct {
	feedback map[regKey]*models.Feedback
	nextID   int64

	hideExistingOnce bool
}

func newMockFeedbackRepo() *mockFeedbackRepo {
	return &mockFeedbackRepo{feedback: make(map[regKey]*models.Feedback)}
}

func (m *mockFeedbackRepo) ExistsByUserAndOpenDay(_ context.Context, userID, openDayID int64) (bool, error) {
	if m.hideExistingOnce {
		m.hideExistingOnce = false
		return false, nil
	}
	_, ok := m.feedback[regKey{userID, openDayID}]
	return ok, nil
}

func (m *mockFeedbackRepo) Create(_ context.Context, feedback *models.Feedback) error {
	key := regKey{feedback.UserID, feedback.OpenDayID}
	if _, ok := m.feedback[key]; ok {
		return uniqueViolation()
	}
	m.nextID++
	feedback.ID = m.nextID
	feedback.SubmittedAt = time.Now()
	m.feedback[key] = feedback
	return nil
}
