// Admin tool: provisions the day rows for the configured challenge period.
// Day rows are never created on demand by the service, so this must run
// after the preference row is set up (and can be re-run safely).
package main

import (
	"context"
	"log"
	"time"

	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/pkg/cleanup"
	"github.com/vibi004/75ChallengeProgramm/pkg/config"
)

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
	daysRepo := repository.NewDaysRepo(&dbCfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	pref, err := preferencesRepo.Get(ctx)
	if err != nil {
		log.Fatal("loading preference error: " + err.Error())
	}
	inserted, err := daysRepo.SeedPeriod(ctx, pref.StartDate, pref.Length)
	if err != nil {
		log.Fatal("seeding days error: " + err.Error())
	}
	log.Printf("seeded %d day rows for period starting %s (%d days)",
		inserted, pref.StartDate.Format("2006-01-02"), pref.Length)
}
