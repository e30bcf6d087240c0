package usecases

import "context"

type CreateProfileExecutor interface {
	Execute(ctx context.Context, cmd CreateProfileCommand) (*CreateProfileResult, error)
}

type GetOwnProfileExecutor interface {
	Execute(ctx context.Context, query GetOwnProfileQuery) (*GetOwnProfileResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error)
}

type ListProfilesExecutor interface {
	Execute(ctx context.Context, query ListProfilesQuery) (*ListProfilesResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error)
}

type DeleteProfileExecutor interface {
	Execute(ctx context.Context, cmd DeleteProfileCommand) (*DeleteProfileResult, error)
}
