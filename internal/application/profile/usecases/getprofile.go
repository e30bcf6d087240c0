package usecases

import (
	"context"

	"caseline/internal/domain/profile"
	"caseline/internal/domain/records"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/logger"
)

type GetProfileQuery struct {
	Kind       authorization.Role
	ProfileID  uint
	ViewerRole authorization.Role
}

type GetProfileResult struct {
	Profile records.Record
}

type GetProfileUseCase struct {
	ipProfiles profile.Repository
	spProfiles profile.Repository
	logger     logger.Interface
}

func NewGetProfileUseCase(
	ipProfiles profile.Repository,
	spProfiles profile.Repository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		ipProfiles: ipProfiles,
		spProfiles: spProfiles,
		logger:     logger,
	}
}

// Execute looks up a profile by id regardless of owner. The read allow-list
// only applies when the viewer's role matches the profile kind; an admin
// viewer sees the unfiltered record.
func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error) {
	repo, err := uc.repoFor(query.Kind)
	if err != nil {
		return nil, err
	}

	rec, err := repo.FindByID(ctx, query.ProfileID)
	if err != nil {
		uc.logger.Errorw("failed to find profile", "kind", query.Kind, "profile_id", query.ProfileID, "error", err)
		return nil, err
	}
	if rec == nil {
		return nil, errors.NewRecordNotFoundError("That profile does not exist")
	}

	if query.ViewerRole == query.Kind {
		rec = authorization.FilterProfileFields(query.ViewerRole, rec)
	}

	return &GetProfileResult{Profile: rec}, nil
}

func (uc *GetProfileUseCase) repoFor(kind authorization.Role) (profile.Repository, error) {
	switch kind {
	case authorization.RoleIP:
		return uc.ipProfiles, nil
	case authorization.RoleSP:
		return uc.spProfiles, nil
	default:
		return nil, errors.NewBadRequestError("unknown profile kind")
	}
}
