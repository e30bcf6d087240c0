package usecases

import (
	"context"

	"caseline/internal/domain/records"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/logger"
)

type GetOwnProfileQuery struct {
	Role    authorization.Role
	Profile records.Record
}

type GetOwnProfileResult struct {
	Profile records.Record
}

type GetOwnProfileUseCase struct {
	logger logger.Interface
}

func NewGetOwnProfileUseCase(logger logger.Interface) *GetOwnProfileUseCase {
	return &GetOwnProfileUseCase{logger: logger}
}

// Execute returns the principal's own profile, restricted to the role's read
// allow-list. The profile was already resolved by the auth layer, so no
// storage call happens here.
func (uc *GetOwnProfileUseCase) Execute(ctx context.Context, query GetOwnProfileQuery) (*GetOwnProfileResult, error) {
	if query.Profile == nil {
		return nil, errors.NewRecordNotFoundError("profile not found")
	}

	rec := query.Profile
	if _, ok := authorization.ProfileReadFields(query.Role); ok {
		rec = authorization.FilterProfileFields(query.Role, rec)
	}

	return &GetOwnProfileResult{Profile: rec}, nil
}
