package usecases

import (
	"context"

	"caseline/internal/domain/profile"
	"caseline/internal/domain/records"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/logger"
)

type ListProfilesQuery struct {
	Kind authorization.Role
}

type ListProfilesResult struct {
	Profiles []records.Record
}

type ListProfilesUseCase struct {
	ipProfiles profile.Repository
	spProfiles profile.Repository
	logger     logger.Interface
}

func NewListProfilesUseCase(
	ipProfiles profile.Repository,
	spProfiles profile.Repository,
	logger logger.Interface,
) *ListProfilesUseCase {
	return &ListProfilesUseCase{
		ipProfiles: ipProfiles,
		spProfiles: spProfiles,
		logger:     logger,
	}
}

// Execute returns all profiles of a kind, unfiltered. Intended for
// administrative callers; nothing is enforced at this layer.
func (uc *ListProfilesUseCase) Execute(ctx context.Context, query ListProfilesQuery) (*ListProfilesResult, error) {
	var repo profile.Repository
	switch query.Kind {
	case authorization.RoleIP:
		repo = uc.ipProfiles
	case authorization.RoleSP:
		repo = uc.spProfiles
	default:
		return nil, errors.NewBadRequestError("unknown profile kind")
	}

	recs, err := repo.Find(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list profiles", "kind", query.Kind, "error", err)
		return nil, err
	}

	if recs == nil {
		recs = []records.Record{}
	}

	return &ListProfilesResult{Profiles: recs}, nil
}
