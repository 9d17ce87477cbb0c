package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/internal/service"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
	"github.com/vibi004/75ChallengeProgramm/pkg/httputil"
)

const dateLayout = "2006-01-02"

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type OnboardChallengesRequest struct {
	Titles []string `json:"titles"`
}

type DailyProgressResponse struct {
	Available bool `json:"available"`
	Count     int  `json:"count"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetPreference(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	pref, err := s.preferenceService.Get(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			logger.Error("get preference error: not configured")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no preference configured", nil)
			return
		}
		logger.Error("get preference error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting preference", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, pref)
	logger.Info("preference provided")
}

func (s *Server) OnboardChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("onboard challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req OnboardChallengesRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("onboard challenges error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenges, err := s.catalogService.Onboard(ctx, uid, &service.OnboardRequest{
		Titles: req.Titles,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCatalogExists):
			logger.Error("onboard challenges error: catalog already exists")
			httputil.WriteErrorResponse(w, http.StatusConflict, "challenges already picked", nil)
		case errors.Is(err, errorvalues.ErrWrongChallengeCount):
			logger.Error("onboard challenges error: wrong count")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "wrong number of challenges", nil)
		case errors.Is(err, errorvalues.ErrPreferenceNotFound):
			logger.Error("onboard challenges error: no preference")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no preference configured", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("onboard challenges error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't pick challenges: user doesn't exists", nil)
		default:
			logger.Error("onboard challenges error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while picking challenges", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"challenges": challenges})
	logger.Info("challenges picked")
}

func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	status, err := s.ledgerService.GetTodayStatus(ctx, uid)
	if err != nil {
		logger.Error("getting challenges status error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting challenges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
	logger.Info("challenges provided")
}

func parseDateQuery(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(dateLayout, raw)
}

func (s *Server) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.Error("complete challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	date, err := parseDateQuery(r)
	if err != nil {
		logger.Error("complete challenge error: invalid date param")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.ledgerService.Complete(ctx, uid, id, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("complete challenge error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("complete challenge error: challenge has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("complete challenge error: no day row for date")
			httputil.WriteErrorResponse(w, http.StatusConflict, "no challenge day for requested date", nil)
		case errors.Is(err, errorvalues.ErrDateNotAllowed):
			logger.Error("complete challenge error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date not allowed", nil)
		default:
			logger.Error("complete challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("challenge completed")
}

func (s *Server) RemoveProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("remove progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.Error("remove progress error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	date, err := parseDateQuery(r)
	if err != nil {
		logger.Error("remove progress error: invalid date param")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.ledgerService.Remove(ctx, uid, id, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("remove progress error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("remove progress error: challenge has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("remove progress error: no day row for date")
			httputil.WriteErrorResponse(w, http.StatusConflict, "no challenge day for requested date", nil)
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("remove progress error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "progress entry doesn't exist", nil)
		default:
			logger.Error("remove progress error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while removing progress", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("progress entry removed")
}

func (s *Server) GetDailyProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get daily progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	count, err := s.ledgerService.CountCompletedToday(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			// Data unavailable, which is not a zero count
			httputil.WriteJSONResponse(w, http.StatusOK, DailyProgressResponse{Available: false})
			logger.Info("daily progress unavailable: no day row for today")
			return
		}
		logger.Error("get daily progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while counting progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DailyProgressResponse{Available: true, Count: count})
	logger.Info("daily progress provided")
}

func (s *Server) GetDailyOverview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get daily overview error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	counts, err := s.overviewService.DailyCounts(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			logger.Error("get daily overview error: no preference")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no preference configured", nil)
			return
		}
		logger.Error("get daily overview error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building overview", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"days": counts})
	logger.Info("daily overview provided")
}

func (s *Server) GetWeeklyOverview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get weekly overview error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	weeks, err := s.overviewService.WeeklyOverview(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			logger.Error("get weekly overview error: no preference")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no preference configured", nil)
			return
		}
		logger.Error("get weekly overview error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building overview", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"weeks": weeks})
	logger.Info("weekly overview provided")
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.overviewService.Leaderboard(ctx)
	if err != nil {
		logger.Error("get leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting leaderboard", nil)
		return
	}
	if entries == nil {
		entries = make([]entity.LeaderboardEntry, 0)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"leaderboard": entries})
	logger.Info("leaderboard provided")
}
