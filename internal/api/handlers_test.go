package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vibi004/75ChallengeProgramm/internal/api"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/internal/service"
	"github.com/vibi004/75ChallengeProgramm/internal/service/mocks"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
	jwtservice "github.com/vibi004/75ChallengeProgramm/pkg/jwt_service"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type UserServiceMock struct {
	success bool
}

func (usmock *UserServiceMock) ChangeState(success bool) {
	usmock.success = success
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) Login(ctx context.Context, name, password string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByName(ctx context.Context, name string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	uid             = uuid.New()
	userID          = uuid.New()
)

// withUID injects the authorized user the way the auth middleware does.
func withUID(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
}

// withChallengeID puts the path parameter where chi.URLParam finds it.
func withChallengeID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", nil)
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtservice.New("secret"),
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestOnboardChallenges(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCatalogServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CatalogService: cService,
	})
	titles := []string{"drink water", "workout", "read 10 pages"}
	body, err := sonic.ConfigDefault.Marshal(api.OnboardChallengesRequest{Titles: titles})
	require.NoError(t, err)
	created := []entity.Challenge{
		{ID: 1, UserID: userID, Title: titles[0]},
		{ID: 2, UserID: userID, Title: titles[1]},
		{ID: 3, UserID: userID, Title: titles[2]},
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				cService.EXPECT().Onboard(gomock.Any(), userID, &service.OnboardRequest{Titles: titles}).
					Return(created, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				cService.EXPECT().Onboard(gomock.Any(), userID, &service.OnboardRequest{Titles: titles}).
					Return(nil, errorvalues.ErrCatalogExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().Onboard(gomock.Any(), userID, &service.OnboardRequest{Titles: titles}).
					Return(nil, errorvalues.ErrWrongChallengeCount)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().Onboard(gomock.Any(), userID, &service.OnboardRequest{Titles: titles}).
					Return(nil, errorvalues.ErrPreferenceNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				cService.EXPECT().Onboard(gomock.Any(), userID, &service.OnboardRequest{Titles: titles}).
					Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/challenges", tc.Body)
		r = withUID(r)
		serv.OnboardChallenges(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/challenges", bytes.NewReader(body))
		serv.OnboardChallenges(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestGetChallenges(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLedgerServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LedgerService: lService,
	})
	status := &service.TodayStatus{
		Challenges: []entity.ChallengeStatus{
			{Challenge: entity.Challenge{ID: 1, UserID: userID, Title: "drink water"}, Completed: true},
			{Challenge: entity.Challenge{ID: 2, UserID: userID, Title: "workout"}},
		},
		DayAvailable:   true,
		CompletedToday: 1,
	}
	t.Run("provided", func(t *testing.T) {
		lService.EXPECT().GetTodayStatus(gomock.Any(), userID).Return(status, nil)
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/challenges", nil))
		serv.GetChallenges(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp service.TodayStatus
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, *status, resp)
	})
	t.Run("service error", func(t *testing.T) {
		lService.EXPECT().GetTodayStatus(gomock.Any(), userID).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/challenges", nil))
		serv.GetChallenges(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestCompleteChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLedgerServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LedgerService: lService,
	})
	result := &service.ToggleResult{
		Entry: entity.ProgressEntry{
			UserID:      userID,
			ChallengeID: 1,
			DayID:       3,
			Completed:   true,
		},
		Awarded:        true,
		Points:         1,
		CompletedToday: 1,
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().Complete(gomock.Any(), userID, int64(1), gomock.Any()).Return(result, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().Complete(gomock.Any(), userID, int64(1), gomock.Any()).Return(nil, errorvalues.ErrChallengeNotFound)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().Complete(gomock.Any(), userID, int64(1), gomock.Any()).Return(nil, errorvalues.ErrWrongOwner)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				lService.EXPECT().Complete(gomock.Any(), userID, int64(1), gomock.Any()).Return(nil, errorvalues.ErrDayNotFound)
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				lService.EXPECT().Complete(gomock.Any(), userID, int64(1), gomock.Any()).Return(nil, errorvalues.ErrDateNotAllowed)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().Complete(gomock.Any(), userID, int64(1), gomock.Any()).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/challenges/1/complete?date=2024-01-03", nil)
		r = withChallengeID(withUID(r), "1")
		serv.CompleteChallenge(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/challenges/abc/complete", nil)
		r = withChallengeID(withUID(r), "abc")
		serv.CompleteChallenge(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("invalid date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/challenges/1/complete?date=03.01.2024", nil)
		r = withChallengeID(withUID(r), "1")
		serv.CompleteChallenge(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestRemoveProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLedgerServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LedgerService: lService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				lService.EXPECT().Remove(gomock.Any(), userID, int64(1), gomock.Any()).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().Remove(gomock.Any(), userID, int64(1), gomock.Any()).Return(errorvalues.ErrEntryNotFound)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				lService.EXPECT().Remove(gomock.Any(), userID, int64(1), gomock.Any()).Return(errorvalues.ErrDayNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				lService.EXPECT().Remove(gomock.Any(), userID, int64(1), gomock.Any()).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/challenges/1/progress?date=2024-01-03", nil)
		r = withChallengeID(withUID(r), "1")
		serv.RemoveProgress(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetDailyProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLedgerServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LedgerService: lService,
	})
	t.Run("available", func(t *testing.T) {
		lService.EXPECT().CountCompletedToday(gomock.Any(), userID).Return(2, nil)
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/progress/today", nil))
		serv.GetDailyProgress(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.DailyProgressResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Equal(t, 2, resp.Count)
	})
	t.Run("no day row reported as unavailable", func(t *testing.T) {
		lService.EXPECT().CountCompletedToday(gomock.Any(), userID).Return(0, errorvalues.ErrDayNotFound)
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/progress/today", nil))
		serv.GetDailyProgress(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.DailyProgressResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Equal(t, 0, resp.Count)
	})
	t.Run("service error", func(t *testing.T) {
		lService.EXPECT().CountCompletedToday(gomock.Any(), userID).Return(0, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/progress/today", nil))
		serv.GetDailyProgress(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetOverviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	oService := mocks.NewMockOverviewServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		OverviewService: oService,
	})
	t.Run("daily provided", func(t *testing.T) {
		oService.EXPECT().DailyCounts(gomock.Any(), userID).Return([]entity.DailyCount{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Count: 3},
		}, nil)
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/overview/daily", nil))
		serv.GetDailyOverview(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("daily without preference", func(t *testing.T) {
		oService.EXPECT().DailyCounts(gomock.Any(), userID).Return(nil, errorvalues.ErrPreferenceNotFound)
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/overview/daily", nil))
		serv.GetDailyOverview(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("weekly provided", func(t *testing.T) {
		oService.EXPECT().WeeklyOverview(gomock.Any(), userID).Return([]entity.WeekRow{
			{Monday: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Cells: make([]*entity.DailyCount, 7)},
		}, nil)
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/overview/weekly", nil))
		serv.GetWeeklyOverview(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("weekly service error", func(t *testing.T) {
		oService.EXPECT().WeeklyOverview(gomock.Any(), userID).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/overview/weekly", nil))
		serv.GetWeeklyOverview(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	oService := mocks.NewMockOverviewServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		OverviewService: oService,
	})
	t.Run("provided", func(t *testing.T) {
		oService.EXPECT().Leaderboard(gomock.Any()).Return([]entity.LeaderboardEntry{
			{UserID: userID, Name: username, Points: 5, CompletedDays: 1},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("empty board is a list", func(t *testing.T) {
		oService.EXPECT().Leaderboard(gomock.Any()).Return(nil, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string][]entity.LeaderboardEntry)
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result)
		require.NoError(t, err)
		entries, ok := result["leaderboard"]
		assert.True(t, ok)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
	t.Run("service error", func(t *testing.T) {
		oService.EXPECT().Leaderboard(gomock.Any()).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetPreference(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPreferenceServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		PreferenceService: pService,
	})
	t.Run("provided", func(t *testing.T) {
		pService.EXPECT().Get(gomock.Any()).Return(&entity.Preference{
			ID:               1,
			StartDate:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Length:           75,
			NumberChallenges: 3,
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/preference", nil)
		serv.GetPreference(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("not configured", func(t *testing.T) {
		pService.EXPECT().Get(gomock.Any()).Return(nil, errorvalues.ErrPreferenceNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/preference", nil)
		serv.GetPreference(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	secret := "secret"
	cfg := setupUsersTestDB(t)
	repo := repository.NewUsersRepo(cfg)
	userService := service.NewUserService(repo)
	serv := api.New(&api.ServicesList{
		UserService: userService,
		JwtService:  jwtservice.New(secret),
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	// Creating user to login
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("creating user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	var token string
	var ok bool
	t.Run("logging in and getting token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		if err != nil {
			t.Fatal(err)
		}
		token, ok = result["token"].(string)
		if !ok || token == "" {
			t.Error("invalid token")
		}
	})
	t.Run("successful auth", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("error with foreign token", func(t *testing.T) {
		foreign, err := jwtservice.New("other_secret").GenerateToken(&entity.User{ID: uuid.New(), Name: username})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("tracker"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
