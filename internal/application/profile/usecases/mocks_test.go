package usecases

import (
	"context"

	"caseline/internal/domain/notification"
	"caseline/internal/domain/records"
	"caseline/internal/shared/logger"
)

type mockProfileRepository struct {
	FindByOpenIDFunc func(ctx context.Context, openID string) (records.Record, error)
	FindByIDFunc     func(ctx context.Context, id uint) (records.Record, error)
	FindFunc         func(ctx context.Context) ([]records.Record, error)
	CreateFunc       func(ctx context.Context, rec records.Record) (uint, error)
	UpdateFunc       func(ctx context.Context, id uint, rec records.Record) error
}

func (m *mockProfileRepository) FindByOpenID(ctx context.Context, openID string) (records.Record, error) {
	if m.FindByOpenIDFunc != nil {
		return m.FindByOpenIDFunc(ctx, openID)
	}
	return nil, nil
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id uint) (records.Record, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepository) Find(ctx context.Context) ([]records.Record, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepository) Create(ctx context.Context, rec records.Record) (uint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	return 0, nil
}

func (m *mockProfileRepository) Update(ctx context.Context, id uint, rec records.Record) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, rec)
	}
	return nil
}

type mockDeleteService struct {
	DeleteIPFunc func(ctx context.Context, id uint) error
	DeleteSPFunc func(ctx context.Context, id uint) error
}

func (m *mockDeleteService) DeleteIP(ctx context.Context, id uint) error {
	if m.DeleteIPFunc != nil {
		return m.DeleteIPFunc(ctx, id)
	}
	return nil
}

func (m *mockDeleteService) DeleteSP(ctx context.Context, id uint) error {
	if m.DeleteSPFunc != nil {
		return m.DeleteSPFunc(ctx, id)
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
