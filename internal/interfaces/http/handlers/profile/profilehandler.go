package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caseline/internal/application/profile/usecases"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/logger"
	"caseline/internal/shared/utils"
)

type ProfileHandler struct {
	createProfileUC usecases.CreateProfileExecutor
	getOwnProfileUC usecases.GetOwnProfileExecutor
	getProfileUC    usecases.GetProfileExecutor
	listProfilesUC  usecases.ListProfilesExecutor
	updateProfileUC usecases.UpdateProfileExecutor
	deleteProfileUC usecases.DeleteProfileExecutor
	logger          logger.Interface
}

func NewProfileHandler(
	createProfileUC usecases.CreateProfileExecutor,
	getOwnProfileUC usecases.GetOwnProfileExecutor,
	getProfileUC usecases.GetProfileExecutor,
	listProfilesUC usecases.ListProfilesExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	deleteProfileUC usecases.DeleteProfileExecutor,
	log logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		createProfileUC: createProfileUC,
		getOwnProfileUC: getOwnProfileUC,
		getProfileUC:    getProfileUC,
		listProfilesUC:  listProfilesUC,
		updateProfileUC: updateProfileUC,
		deleteProfileUC: deleteProfileUC,
		logger:          log,
	}
}

// CreateProfile handles POST /profiles. The profile kind comes from the
// caller's role, never from the request body.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	principal, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	fields, err := bindRecord(c)
	if err != nil {
		h.logger.Warnw("invalid request body for create profile", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateProfileCommand{
		Role:   principal.Role,
		OpenID: principal.OpenID,
		Fields: fields,
	}

	result, err := h.createProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetOwnProfile handles GET /profiles/me
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	principal, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	query := usecases.GetOwnProfileQuery{
		Role:    principal.Role,
		Profile: principal.Profile,
	}

	result, err := h.getOwnProfileUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Profile)
}

// GetProfile handles GET /profiles/ip/:id and GET /profiles/sp/:id
func (h *ProfileHandler) GetProfile(kind authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := authorization.PrincipalFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
			return
		}

		profileID, err := parseProfileID(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		query := usecases.GetProfileQuery{
			Kind:       kind,
			ProfileID:  profileID,
			ViewerRole: principal.Role,
		}

		result, err := h.getProfileUC.Execute(c.Request.Context(), query)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", result.Profile)
	}
}

// ListProfiles handles GET /profiles/ip and GET /profiles/sp
func (h *ProfileHandler) ListProfiles(kind authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := usecases.ListProfilesQuery{Kind: kind}

		result, err := h.listProfilesUC.Execute(c.Request.Context(), query)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", result.Profiles)
	}
}

// UpdateProfile handles PUT /profiles/ip/:id and PUT /profiles/sp/:id
func (h *ProfileHandler) UpdateProfile(kind authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := parseProfileID(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		fields, err := bindRecord(c)
		if err != nil {
			h.logger.Warnw("invalid request body for update profile", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}

		cmd := usecases.UpdateProfileCommand{
			Kind:      kind,
			ProfileID: profileID,
			Fields:    fields,
		}

		if _, err := h.updateProfileUC.Execute(c.Request.Context(), cmd); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Success", nil)
	}
}

// DeleteProfile handles DELETE /profiles/ip/:id and DELETE /profiles/sp/:id
func (h *ProfileHandler) DeleteProfile(kind authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := parseProfileID(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		cmd := usecases.DeleteProfileCommand{
			Kind:      kind,
			ProfileID: profileID,
		}

		if _, err := h.deleteProfileUC.Execute(c.Request.Context(), cmd); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Success", nil)
	}
}
