// Package usecase contains the profile business logic.
package usecase

import (
	"context"

	profileDomain "github.com/allisson/lifetrack/internal/profile/domain"
)

// ProfileRepository defines profile persistence.
type ProfileRepository interface {
	// Get returns ErrNotFound when the user has no profile row.
	Get(ctx context.Context, userID int64) (profileDomain.Profile, error)
	Upsert(ctx context.Context, userID int64, input profileDomain.UpdateProfileInput) error
}

// ProfileUseCase defines the profile operations.
type ProfileUseCase interface {
	Get(ctx context.Context, userID int64) (profileDomain.Profile, error)
	Update(ctx context.Context, userID int64, input profileDomain.UpdateProfileInput) (profileDomain.Profile, error)
}
