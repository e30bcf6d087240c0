package usecases

import (
	"context"

	"caseline/internal/domain/profile"
	"caseline/internal/domain/records"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/logger"
)

type CreateProfileCommand struct {
	Role   authorization.Role
	OpenID string
	Fields records.Record
}

type CreateProfileResult struct {
	ProfileID uint `json:"id"`
}

type CreateProfileUseCase struct {
	ipProfiles profile.Repository
	spProfiles profile.Repository
	logger     logger.Interface
}

func NewCreateProfileUseCase(
	ipProfiles profile.Repository,
	spProfiles profile.Repository,
	logger logger.Interface,
) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		ipProfiles: ipProfiles,
		spProfiles: spProfiles,
		logger:     logger,
	}
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, cmd CreateProfileCommand) (*CreateProfileResult, error) {
	uc.logger.Infow("executing create profile use case", "role", cmd.Role)

	var repo profile.Repository
	switch cmd.Role {
	case authorization.RoleIP:
		repo = uc.ipProfiles
	case authorization.RoleSP:
		repo = uc.spProfiles
	default:
		return nil, errors.NewBadRequestError("Can't create profile")
	}

	// Only allow a principal to create their profile once.
	existing, err := repo.FindByOpenID(ctx, cmd.OpenID)
	if err != nil {
		uc.logger.Errorw("failed to look up existing profile", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewAlreadyExistsError("Profile already exists")
	}

	// The identity is never client-supplied.
	data := records.Merge(cmd.Fields, records.Record{"openid": cmd.OpenID})

	if cmd.Role == authorization.RoleSP {
		if records.AsUint(data["rating"]) == 0 {
			data["rating"] = 0
		}
	}

	id, err := repo.Create(ctx, data)
	if err != nil {
		uc.logger.Errorw("failed to create profile", "role", cmd.Role, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile created", "role", cmd.Role, "profile_id", id)

	return &CreateProfileResult{ProfileID: id}, nil
}
