package usecases

import (
	"context"

	"caseline/internal/domain/notification"
	"caseline/internal/domain/records"
	"caseline/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc     func(ctx context.Context, rec records.Record, creatorName string) (uint, error)
	FindByIDFunc   func(ctx context.Context, id uint) (records.Record, error)
	UpdateReadFunc func(ctx context.Context, id uint, openID string) error
}

func (m *mockTicketRepository) Create(ctx context.Context, rec records.Record, creatorName string) (uint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec, creatorName)
	}
	return 0, nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (records.Record, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) UpdateRead(ctx context.Context, id uint, openID string) error {
	if m.UpdateReadFunc != nil {
		return m.UpdateReadFunc(ctx, id, openID)
	}
	return nil
}

type mockMailer struct {
	NotifyFunc      func(ctx context.Context, contact string, assignedID uint, role string, template notification.Template) error
	NotifyAdminFunc func(ctx context.Context, template notification.Template) error

	notifyCalls      int
	notifyAdminCalls int
}

func (m *mockMailer) Notify(ctx context.Context, contact string, assignedID uint, role string, template notification.Template) error {
	m.notifyCalls++
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, contact, assignedID, role, template)
	}
	return nil
}

func (m *mockMailer) NotifyAdmin(ctx context.Context, template notification.Template) error {
	m.notifyAdminCalls++
	if m.NotifyAdminFunc != nil {
		return m.NotifyAdminFunc(ctx, template)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
