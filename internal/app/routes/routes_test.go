package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/controllers"
	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/middleware"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/auth"
	"github.com/openday/backend/internal/pkg/validation"
)

// ── Stub services ──
//
// The router tests exercise routing, binding, the auth middleware and the
// error responses. Business rules live in the service tests; here the
// services are thin stubs that return canned data or a domain error.

type stubUserStore struct {
	users map[int64]*models.User
}

func (s *stubUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type stubAuthService struct {
	users  map[string]*models.User
	nextID int64
}

func (s *stubAuthService) Register(_ context.Context, req *dto.RegisterRequest) (*models.User, string, string, error) {
	if _, ok := s.users[req.Email]; ok {
		return nil, "", "", apperrors.ErrEmailAlreadyExists
	}

	user := &models.User{
		ID:        s.nextID,
		Email:     req.Email,
		FullName:  req.FullName,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.users[req.Email] = user

	return user, "stub-access", "stub-refresh", nil
}

func (s *stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (*models.User, string, string, error) {
	user, ok := s.users[req.Email]
	if !ok {
		return nil, "", "", apperrors.ErrInvalidCredentials
	}
	return user, "stub-access", "stub-refresh", nil
}

func (s *stubAuthService) Refresh(_ context.Context, _ string) (string, error) {
	return "stub-access", nil
}

func (s *stubAuthService) GetUser(_ context.Context, id int64) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type stubOpenDayService struct {
	days []*models.OpenDay
}

func (s *stubOpenDayService) List(_ context.Context) ([]*models.OpenDay, error) {
	return s.days, nil
}

func (s *stubOpenDayService) Get(_ context.Context, id int64) (*models.OpenDay, error) {
	for _, day := range s.days {
		if day.ID == id {
			return day, nil
		}
	}
	return nil, apperrors.ErrOpenDayNotFound
}

func (s *stubOpenDayService) Create(_ context.Context, req *dto.CreateOpenDayRequest) (*models.OpenDay, error) {
	eventDate, err := validation.ParseDate(req.EventDate)
	if err != nil {
		return nil, apperrors.ErrValidationFailed
	}

	day := &models.OpenDay{
		ID:          int64(len(s.days) + 1),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		IsVirtual:   req.IsVirtual,
		CreatedAt:   time.Now(),
	}
	s.days = append(s.days, day)

	return day, nil
}

type stubEventService struct{}

func (s *stubEventService) List(_ context.Context, _ models.EventFilter) ([]*models.Event, error) {
	return nil, nil
}

func (s *stubEventService) Get(_ context.Context, _ int64) (*models.Event, error) {
	return nil, apperrors.ErrEventNotFound
}

func (s *stubEventService) Create(_ context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	return &models.Event{
		ID:        1,
		OpenDayID: req.OpenDayID,
		Title:     req.Title,
		EventType: req.EventType,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedAt: time.Now(),
	}, nil
}

type stubRegistrationService struct {
	registered map[int64]bool
}

func (s *stubRegistrationService) Register(_ context.Context, userID, openDayID int64, _ *dto.RegisterForOpenDayRequest) (*models.Registration, bool, error) {
	created := !s.registered[openDayID]
	s.registered[openDayID] = true

	return &models.Registration{
		ID:               1,
		UserID:           userID,
		OpenDayID:        openDayID,
		RegistrationDate: time.Now(),
		AttendanceStatus: models.AttendanceStatusRegistered,
	}, created, nil
}

func (s *stubRegistrationService) List(_ context.Context, _ int64) ([]*models.Registration, error) {
	return nil, nil
}

type stubAgendaService struct {
	items map[int64]bool
}

func (s *stubAgendaService) Add(_ context.Context, _, eventID int64) (bool, error) {
	if s.items[eventID] {
		return false, nil
	}
	s.items[eventID] = true
	return true, nil
}

func (s *stubAgendaService) Remove(_ context.Context, _, eventID int64) error {
	if !s.items[eventID] {
		return apperrors.ErrEventNotInAgenda
	}
	delete(s.items, eventID)
	return nil
}

func (s *stubAgendaService) List(_ context.Context, _ int64, _ *int64) ([]*models.AgendaItem, error) {
	return nil, nil
}

type stubBuildingService struct{}

func (s *stubBuildingService) List(_ context.Context, _ *string) ([]*models.Building, error) {
	return nil, nil
}

func (s *stubBuildingService) Campuses(_ context.Context) ([]string, error) {
	return []string{"City Campus"}, nil
}

type stubCourseService struct{}

func (s *stubCourseService) List(_ context.Context, _ *int64) ([]*models.Course, error) {
	return nil, nil
}

func (s *stubCourseService) SubjectAreas(_ context.Context) ([]*models.SubjectArea, error) {
	return nil, nil
}

type stubFeedbackService struct{}

func (s *stubFeedbackService) Submit(_ context.Context, userID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}
	return &models.Feedback{
		ID:          1,
		UserID:      userID,
		OpenDayID:   req.OpenDayID,
		Rating:      req.Rating,
		SubmittedAt: time.Now(),
	}, nil
}

type stubFAQService struct{}

func (s *stubFAQService) List(_ context.Context, _ *string) ([]*models.FAQ, error) {
	return nil, nil
}

type stubContactService struct{}

func (s *stubContactService) Submit(req *dto.ContactRequest) (*dto.ContactResponse, error) {
	return &dto.ContactResponse{
		Name:    req.Name,
		Email:   req.Email,
		Subject: "Open Day Inquiry",
		Message: req.Message,
	}, nil
}

// ── Test harness ──

// testRouter wires the real router, controllers and auth middleware over
// stub services.
type testRouter struct {
	engine     *gin.Engine
	jwtService *auth.JWTService
	userStore  *stubUserStore
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "router-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "openday.test",
	})

	userStore := &stubUserStore{users: map[int64]*models.User{}}

	ctrl := &Controllers{
		Auth:         controllers.NewAuthController(&stubAuthService{users: map[string]*models.User{}, nextID: 1}),
		OpenDay:      controllers.NewOpenDayController(&stubOpenDayService{}),
		Event:        controllers.NewEventController(&stubEventService{}),
		Registration: controllers.NewRegistrationController(&stubRegistrationService{registered: map[int64]bool{}}),
		Agenda:       controllers.NewAgendaController(&stubAgendaService{items: map[int64]bool{}}),
		Building:     controllers.NewBuildingController(&stubBuildingService{}),
		Course:       controllers.NewCourseController(&stubCourseService{}),
		Feedback:     controllers.NewFeedbackController(&stubFeedbackService{}),
		FAQ:          controllers.NewFAQController(&stubFAQService{}),
		Contact:      controllers.NewContactController(&stubContactService{}),
	}

	engine := gin.New()
	SetupRouter(engine, ctrl, middleware.NewAuthMiddleware(jwtService, userStore))
	SetupFallbackRoutes(engine, t.TempDir())

	return &testRouter{
		engine:     engine,
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// tokenFor issues an access token and registers the user with the store
// backing the auth middleware.
func (tr *testRouter) tokenFor(t *testing.T, userID int64, isAdmin bool) string {
	t.Helper()

	tr.userStore.users[userID] = &models.User{
		ID:       userID,
		Email:    "router-test@wlv.ac.uk",
		FullName: "Router Test",
		IsAdmin:  isAdmin,
	}

	token, err := tr.jwtService.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return token
}

func (tr *testRouter) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	tr.engine.ServeHTTP(rec, req)

	resp := map[string]any{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}

	return rec, resp
}

// ── Tests ──

func TestRegisterEndpoint(t *testing.T) {
	tr := newTestRouter(t)

	payload := gin.H{
		"email":     "new@wlv.ac.uk",
		"password":  "Passw0rd!",
		"full_name": "New Student",
	}

	rec, resp := tr.do(t, http.MethodPost, "/api/auth/register", "", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if resp["message"] != "User registered successfully" {
		t.Errorf("message = %v", resp["message"])
	}
	if resp["access_token"] != "stub-access" || resp["refresh_token"] != "stub-refresh" {
		t.Error("token pair missing from response")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "new@wlv.ac.uk" {
		t.Errorf("user envelope = %v", resp["user"])
	}

	rec, resp = tr.do(t, http.MethodPost, "/api/auth/register", "", payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", rec.Code)
	}
	if resp["error"] != "Email already registered" {
		t.Errorf("duplicate error = %v", resp["error"])
	}
}

func TestRegisterMissingFields(t *testing.T) {
	tr := newTestRouter(t)

	rec, resp := tr.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"email": "new@wlv.ac.uk"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp["error"] != "Missing required fields" {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestListOpenDaysPublic(t *testing.T) {
	tr := newTestRouter(t)

	rec, resp := tr.do(t, http.MethodGet, "/api/opendays", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if _, ok := resp["open_days"]; !ok {
		t.Errorf("open_days envelope missing, body %s", rec.Body.String())
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	tr := newTestRouter(t)

	rec, resp := tr.do(t, http.MethodGet, "/api/agenda", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if resp["error"] != "Authentication required" {
		t.Errorf("error = %v", resp["error"])
	}

	rec, resp = tr.do(t, http.MethodGet, "/api/agenda", "not-a-real-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d, want 401", rec.Code)
	}
	if resp["error"] != "Invalid token" {
		t.Errorf("garbage token error = %v", resp["error"])
	}
}

func TestCreateOpenDayAdminOnly(t *testing.T) {
	tr := newTestRouter(t)

	payload := gin.H{
		"title":      "June Open Day",
		"event_date": "2026-06-15",
		"start_time": "09:00",
		"end_time":   "16:00",
	}

	studentToken := tr.tokenFor(t, 1, false)
	rec, resp := tr.do(t, http.MethodPost, "/api/opendays", studentToken, payload)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("student status = %d, want 403", rec.Code)
	}
	if resp["error"] != "Unauthorized" {
		t.Errorf("student error = %v", resp["error"])
	}

	adminToken := tr.tokenFor(t, 2, true)
	rec, resp = tr.do(t, http.MethodPost, "/api/opendays", adminToken, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if resp["message"] != "Open day created successfully" {
		t.Errorf("admin message = %v", resp["message"])
	}
	day, ok := resp["open_day"].(map[string]any)
	if !ok || day["event_date"] != "2026-06-15" {
		t.Errorf("open_day envelope = %v", resp["open_day"])
	}
}

func TestFeedbackRatingValidation(t *testing.T) {
	tr := newTestRouter(t)
	token := tr.tokenFor(t, 1, false)

	rec, resp := tr.do(t, http.MethodPost, "/api/feedback", token, gin.H{
		"open_day_id": 1,
		"rating":      6,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp["error"] != "Rating must be an integer between 1 and 5" {
		t.Errorf("error = %v", resp["error"])
	}

	rec, resp = tr.do(t, http.MethodPost, "/api/feedback", token, gin.H{
		"open_day_id": 1,
		"rating":      4,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("valid rating status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if resp["message"] != "Feedback submitted successfully" {
		t.Errorf("message = %v", resp["message"])
	}
}

func TestAgendaAddDuplicate(t *testing.T) {
	tr := newTestRouter(t)
	token := tr.tokenFor(t, 1, false)

	rec, resp := tr.do(t, http.MethodPost, "/api/agenda/add/3", token, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first add status = %d, want 201", rec.Code)
	}
	if resp["message"] != "Event added to agenda successfully" {
		t.Errorf("first add message = %v", resp["message"])
	}

	rec, resp = tr.do(t, http.MethodPost, "/api/agenda/add/3", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("second add status = %d, want 200", rec.Code)
	}
	if resp["message"] != "Event already in agenda" {
		t.Errorf("second add message = %v", resp["message"])
	}
}

func TestRegistrationDuplicate(t *testing.T) {
	tr := newTestRouter(t)
	token := tr.tokenFor(t, 1, false)

	rec, resp := tr.do(t, http.MethodPost, "/api/register/openday/5", token, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if resp["message"] != "Successfully registered for open day" {
		t.Errorf("first register message = %v", resp["message"])
	}

	rec, resp = tr.do(t, http.MethodPost, "/api/register/openday/5", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("second register status = %d, want 200", rec.Code)
	}
	if resp["message"] != "Already registered for this open day" {
		t.Errorf("second register message = %v", resp["message"])
	}
}

func TestNonNumericIDGives404(t *testing.T) {
	tr := newTestRouter(t)

	rec, resp := tr.do(t, http.MethodGet, "/api/opendays/abc", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if resp["error"] != "Not found" {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	tr := newTestRouter(t)

	rec, resp := tr.do(t, http.MethodGet, "/api/no-such-endpoint", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if resp["error"] != "Not found" {
		t.Errorf("error = %v", resp["error"])
	}
}
