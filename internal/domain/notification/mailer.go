// Package notification defines the outbound mail contract used by the
// profile and ticket workflows.
package notification

import "context"

// Template identifies which notification message is sent.
type Template string

const (
	TemplateNewTicket      Template = "newTicket"
	TemplateProfileUpdated Template = "profileUpdated"
)

// Mailer delivers notifications. Implementations are expected to be safe for
// concurrent use; callers decide whether delivery failures fail the request.
type Mailer interface {
	// Notify sends a notification to the given contact about the ticket
	// assigned to assignedID, addressed for the given recipient role.
	Notify(ctx context.Context, contact string, assignedID uint, role string, template Template) error
	// NotifyAdmin sends a notification to the administrative channel.
	NotifyAdmin(ctx context.Context, template Template) error
}
