package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vibi004/75ChallengeProgramm/internal/service"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	catalogService    service.CatalogServiceI
	ledgerService     service.LedgerServiceI
	overviewService   service.OverviewServiceI
	preferenceService service.PreferenceServiceI
	jwtService        JWTServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	CatalogService    service.CatalogServiceI
	LedgerService     service.LedgerServiceI
	OverviewService   service.OverviewServiceI
	PreferenceService service.PreferenceServiceI
	JwtService        JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		catalogService:    servicesOptions.CatalogService,
		ledgerService:     servicesOptions.LedgerService,
		overviewService:   servicesOptions.OverviewService,
		preferenceService: servicesOptions.PreferenceService,
		jwtService:        servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Post("/auth/register", s.Register)
	s.mx.Post("/auth/login", s.Login)
	s.mx.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/preference", s.GetPreference)
		r.Post("/challenges", s.OnboardChallenges)
		r.Get("/challenges", s.GetChallenges)
		r.Post("/challenges/{id}/complete", s.CompleteChallenge)
		r.Delete("/challenges/{id}/progress", s.RemoveProgress)
		r.Get("/progress/today", s.GetDailyProgress)
		r.Get("/overview/daily", s.GetDailyOverview)
		r.Get("/overview/weekly", s.GetWeeklyOverview)
		r.Get("/leaderboard", s.GetLeaderboard)
	})
	return http.ListenAndServe(address, s.mx)
}
