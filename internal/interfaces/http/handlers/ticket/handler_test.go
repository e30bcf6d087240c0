package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseline/internal/application/ticket/usecases"
	"caseline/internal/domain/records"
	"caseline/internal/interfaces/http/handlers/testutil"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/errors"
	"caseline/internal/shared/logger"
)

type mockCreateTicketUC struct {
	executeFunc func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	return m.executeFunc(ctx, cmd)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }

func TestCreateTicket_Success(t *testing.T) {
	create := &mockCreateTicketUC{
		executeFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			assert.Equal(t, authorization.RoleIP, cmd.Role)
			assert.Equal(t, "auth0|ada", cmd.OpenID)
			assert.Equal(t, uint(5), cmd.ProfileID)
			assert.Equal(t, "Ada", cmd.CreatorName)
			assert.Equal(t, "phishing", cmd.Fields["incident_type"])
			return &usecases.CreateTicketResult{TicketID: 42}, nil
		},
	}
	handler := NewTicketHandler(create, &mockLogger{})

	c, w := testutil.NewTestContext("POST", "/tickets", records.Record{
		"incident_type": "phishing",
		"description":   "suspicious mail",
	})
	testutil.SetAuthContext(c, authorization.RoleIP, "auth0|ada", records.Record{
		"id":   uint(5),
		"name": "Ada",
	})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var result usecases.CreateTicketResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, uint(42), result.TicketID)
}

func TestCreateTicket_MissingPrincipal(t *testing.T) {
	handler := NewTicketHandler(&mockCreateTicketUC{}, &mockLogger{})

	c, w := testutil.NewTestContext("POST", "/tickets", records.Record{"description": "x"})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTicket_MissingRequiredFieldIs422(t *testing.T) {
	create := &mockCreateTicketUC{
		executeFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			return nil, errors.NewNotNullViolationError("Invalid data")
		},
	}
	handler := NewTicketHandler(create, &mockLogger{})

	c, w := testutil.NewTestContext("POST", "/tickets", records.Record{"incident_type": "phishing"})
	testutil.SetAuthContext(c, authorization.RoleSP, "auth0|sp", records.Record{"id": uint(2), "name": "Helpline"})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeNotNullViolation), resp.Error.Type)
}
