package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/vibi004/75ChallengeProgramm/internal/error_values"
	"github.com/vibi004/75ChallengeProgramm/internal/repository"
	"github.com/vibi004/75ChallengeProgramm/pkg/entity"
)

type CatalogService struct {
	challengesRepo  repository.ChallengesRepositoryI
	preferencesRepo repository.PreferencesRepositoryI
}

func NewCatalogService(challengesRepo repository.ChallengesRepositoryI, preferencesRepo repository.PreferencesRepositoryI) *CatalogService {
	if challengesRepo == nil || preferencesRepo == nil {
		log.Fatal("on catalog service provided nil repos")
	}
	return &CatalogService{
		challengesRepo:  challengesRepo,
		preferencesRepo: preferencesRepo,
	}
}

// Onboard creates the user's challenge catalog in one shot. A user ends up
// with zero challenges or exactly the configured number, never in between.
func (cs *CatalogService) Onboard(ctx context.Context, uid uuid.UUID, req *OnboardRequest) ([]entity.Challenge, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	pref, err := cs.preferencesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			return nil, err
		}
		return nil, errors.New("preferences repository error: " + err.Error())
	}
	if len(req.Titles) != pref.NumberChallenges {
		return nil, errorvalues.ErrWrongChallengeCount
	}
	count, err := cs.challengesRepo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if count > 0 {
		return nil, errorvalues.ErrCatalogExists
	}
	challenges, err := cs.challengesRepo.CreateBatch(ctx, uid, req.Titles)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}

func (cs *CatalogService) List(ctx context.Context, uid uuid.UUID) ([]entity.Challenge, error) {
	challenges, err := cs.challengesRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}
