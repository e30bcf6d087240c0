package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caseline/internal/application/ticket/usecases"
	"caseline/internal/domain/records"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/logger"
	"caseline/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(createTicketUC usecases.CreateTicketExecutor, log logger.Interface) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		logger:         log,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	principal, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	var fields records.Record
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}
	if fields == nil {
		fields = records.Record{}
	}

	cmd := usecases.CreateTicketCommand{
		Role:        principal.Role,
		OpenID:      principal.OpenID,
		ProfileID:   principal.ProfileID(),
		CreatorName: principal.ProfileName(),
		Fields:      fields,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
