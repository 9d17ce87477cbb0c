package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

// PreferenceService exposes the read-only configuration singleton.
type PreferenceService struct {
	repo repository.PreferencesRepositoryI
}

func NewPreferenceService(preferencesRepo repository.PreferencesRepositoryI) *PreferenceService {
	if preferencesRepo == nil {
		log.Fatal("provided nil preferencesRepo")
	}
	return &PreferenceService{
		repo: preferencesRepo,
	}
}

func (ps *PreferenceService) Get(ctx context.Context) (*entity.Preference, error) {
	pref, err := ps.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			return nil, err
		}
		return nil, errors.New("preferences repository error: " + err.Error())
	}
	return pref, nil
}
