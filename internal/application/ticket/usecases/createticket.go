package usecases

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"caseline/internal/domain/notification"
	"caseline/internal/domain/records"
	"caseline/internal/domain/ticket"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/goroutine"
	"caseline/internal/shared/logger"
)

type CreateTicketCommand struct {
	Role        authorization.Role
	OpenID      string
	ProfileID   uint
	CreatorName string
	Fields      records.Record
}

type CreateTicketResult struct {
	TicketID uint `json:"id"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	mailer     notification.Mailer
	sanitizer  *bluemonday.Policy
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	mailer notification.Mailer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		mailer:     mailer,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger,
	}
}

// Execute runs the single-pass ticket creation workflow:
//
//  1. An IP submission is restricted to the ticket-create allow-list, then
//     assigned to the submitting IP with status "unassigned", overwriting any
//     client-supplied values for those two fields. Other roles submit
//     unrestricted.
//  2. The record is persisted with the creator's display name.
//  3. The new ticket is marked read by the creator, fire-and-forget: a
//     failure there never fails the request.
//  4. The persisted ticket is re-read and exactly one notification goes out:
//     to the ticket's IP contact when a non-IP created it and a contact is
//     set, or to the admin channel when an IP created it. An admin-created
//     ticket without an IP contact notifies nobody.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "role", cmd.Role)

	data := cmd.Fields
	if cmd.Role == authorization.RoleIP {
		data = authorization.FilterTicketCreateFields(cmd.Role, data)
		data = records.Merge(data, records.Record{
			ticket.FieldIPAssignedID: cmd.ProfileID,
			ticket.FieldStatus:       ticket.StatusUnassigned,
		})
	}

	data = uc.sanitizeFreeText(data)

	id, err := uc.ticketRepo.Create(ctx, data, cmd.CreatorName)
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	markCtx := context.WithoutCancel(ctx)
	goroutine.SafeGo(uc.logger, "ticket-mark-read", func() {
		if err := uc.ticketRepo.UpdateRead(markCtx, id, cmd.OpenID); err != nil {
			uc.logger.Warnw("failed to mark ticket as read", "ticket_id", id, "error", err)
		}
	})

	created, err := uc.ticketRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to re-read created ticket", "ticket_id", id, "error", err)
		return nil, err
	}
	if created == nil {
		return nil, errors.NewInternalError("created ticket not found")
	}

	contact := records.AsString(created[ticket.FieldIPContact])
	if contact != "" && cmd.Role != authorization.RoleIP {
		assignedID := records.AsUint(created[ticket.FieldIPAssignedID])
		if err := uc.mailer.Notify(ctx, contact, assignedID, authorization.RoleIP.String(), notification.TemplateNewTicket); err != nil {
			uc.logger.Errorw("failed to notify IP contact of new ticket", "ticket_id", id, "error", err)
			return nil, err
		}
	} else if cmd.Role == authorization.RoleIP {
		if err := uc.mailer.NotifyAdmin(ctx, notification.TemplateNewTicket); err != nil {
			uc.logger.Errorw("failed to notify admin of new ticket", "ticket_id", id, "error", err)
			return nil, err
		}
	}

	uc.logger.Infow("ticket created", "ticket_id", id, "role", cmd.Role)

	return &CreateTicketResult{TicketID: id}, nil
}

// sanitizeFreeText strips HTML from the free-text fields before persistence.
func (uc *CreateTicketUseCase) sanitizeFreeText(data records.Record) records.Record {
	out := data.Clone()
	for _, field := range []string{"description", "steps_taken"} {
		if s, ok := out[field].(string); ok {
			out[field] = uc.sanitizer.Sanitize(s)
		}
	}
	return out
}
