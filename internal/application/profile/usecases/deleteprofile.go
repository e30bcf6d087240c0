package usecases

import (
	"context"

	"caseline/internal/domain/profile"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/logger"
)

type DeleteProfileCommand struct {
	Kind      authorization.Role
	ProfileID uint
}

type DeleteProfileResult struct{}

type DeleteProfileUseCase struct {
	deleter profile.DeleteService
	logger  logger.Interface
}

func NewDeleteProfileUseCase(deleter profile.DeleteService, logger logger.Interface) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		deleter: deleter,
		logger:  logger,
	}
}

// Execute deletes a profile by id for the given kind. A missing record
// surfaces as a 400 here, unlike the 404 the read and update paths return.
func (uc *DeleteProfileUseCase) Execute(ctx context.Context, cmd DeleteProfileCommand) (*DeleteProfileResult, error) {
	var err error
	switch cmd.Kind {
	case authorization.RoleIP:
		err = uc.deleter.DeleteIP(ctx, cmd.ProfileID)
	case authorization.RoleSP:
		err = uc.deleter.DeleteSP(ctx, cmd.ProfileID)
	default:
		return nil, errors.NewBadRequestError("unknown profile kind")
	}

	if err != nil {
		if errors.IsRecordNotFoundError(err) {
			return nil, errors.AsBadRequest(errors.GetAppError(err))
		}
		uc.logger.Errorw("failed to delete profile", "kind", cmd.Kind, "profile_id", cmd.ProfileID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile deleted", "kind", cmd.Kind, "profile_id", cmd.ProfileID)

	return &DeleteProfileResult{}, nil
}
