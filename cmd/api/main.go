// @title 75-Challenge API
// @description API for the group challenge tracker
// @BasePath /
// @schemes http
package main

import (
	"log"

	"github.com/vibi004/75ChallengeProgramm/internal/api"
	"github.com/vibi004/75ChallengeProgramm/internal/cache"
	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/internal/service"
	"github.com/vibi004/75ChallengeProgramm/pkg/cleanup"
	"github.com/vibi004/75ChallengeProgramm/pkg/config"
	jwtservice "github.com/vibi004/75ChallengeProgramm/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	preferencesRepo := repository.NewPreferencesRepo(&dbCfg)
	challengesRepo := repository.NewChallengesRepo(&dbCfg)
	daysRepo := repository.NewDaysRepo(&dbCfg)
	progressRepo := repository.NewProgressRepo(&dbCfg)
	pointsRepo := repository.NewPointsRepo(&dbCfg)

	var leaderboardCache cache.Cache
	if redisURL := cfg.GetStringOr("REDIS_URL", ""); redisURL != "" {
		c, err := cache.NewRedisCache(redisURL)
		if err != nil {
			log.Println("leaderboard cache disabled: " + err.Error())
		} else {
			leaderboardCache = c
		}
	}

	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(repository.NewUsersRepo(&dbCfg)),
		CatalogService:    service.NewCatalogService(challengesRepo, preferencesRepo),
		LedgerService:     service.NewLedgerService(challengesRepo, daysRepo, progressRepo, pointsRepo, preferencesRepo),
		OverviewService:   service.NewOverviewService(preferencesRepo, progressRepo, pointsRepo, leaderboardCache),
		PreferenceService: service.NewPreferenceService(preferencesRepo),
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
