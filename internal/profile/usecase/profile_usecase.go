package usecase

import (
	"context"

	profileDomain "github.com/allisson/lifetrack/internal/profile/domain"
	"github.com/allisson/lifetrack/internal/validation"
)

type profileUseCase struct {
	repo ProfileRepository
}

// NewProfileUseCase creates the profile use case.
func NewProfileUseCase(repo ProfileRepository) ProfileUseCase {
	return &profileUseCase{repo: repo}
}

func (p *profileUseCase) Get(ctx context.Context, userID int64) (profileDomain.Profile, error) {
	return p.repo.Get(ctx, userID)
}

// Update merges the given fields into the stored profile and returns the
// merged result.
func (p *profileUseCase) Update(
	ctx context.Context,
	userID int64,
	input profileDomain.UpdateProfileInput,
) (profileDomain.Profile, error) {
	if err := input.Validate(); err != nil {
		return profileDomain.Profile{}, validation.WrapValidationError(err)
	}

	if err := p.repo.Upsert(ctx, userID, input); err != nil {
		return profileDomain.Profile{}, err
	}
	return p.repo.Get(ctx, userID)
}
