package usecases

import (
	"context"

	"caseline/internal/domain/notification"
	"caseline/internal/domain/profile"
	"caseline/internal/domain/records"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/logger"
)

type UpdateProfileCommand struct {
	Kind      authorization.Role
	ProfileID uint
	Fields    records.Record
}

type UpdateProfileResult struct{}

type UpdateProfileUseCase struct {
	ipProfiles profile.Repository
	spProfiles profile.Repository
	mailer     notification.Mailer
	logger     logger.Interface
}

func NewUpdateProfileUseCase(
	ipProfiles profile.Repository,
	spProfiles profile.Repository,
	mailer notification.Mailer,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		ipProfiles: ipProfiles,
		spProfiles: spProfiles,
		mailer:     mailer,
		logger:     logger,
	}
}

// Execute persists changes to a profile, then notifies the admin channel.
// The notification is awaited: if it fails the whole request fails, even
// though the update is already stored.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	var repo profile.Repository
	switch cmd.Kind {
	case authorization.RoleIP:
		repo = uc.ipProfiles
	case authorization.RoleSP:
		repo = uc.spProfiles
	default:
		return nil, errors.NewBadRequestError("unknown profile kind")
	}

	if err := repo.Update(ctx, cmd.ProfileID, cmd.Fields); err != nil {
		uc.logger.Errorw("failed to update profile", "kind", cmd.Kind, "profile_id", cmd.ProfileID, "error", err)
		return nil, err
	}

	if err := uc.mailer.NotifyAdmin(ctx, notification.TemplateProfileUpdated); err != nil {
		uc.logger.Errorw("failed to notify admin of profile update", "profile_id", cmd.ProfileID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated", "kind", cmd.Kind, "profile_id", cmd.ProfileID)

	return &UpdateProfileResult{}, nil
}
