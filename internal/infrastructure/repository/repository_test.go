package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"caseline/internal/domain/records"
	"caseline/internal/infrastructure/persistence/models"
	"caseline/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.IPProfileModel{},
		&models.SPProfileModel{},
		&models.TicketModel{},
		&models.TicketReadModel{},
	))

	return db
}

func TestIPProfileRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIPProfileRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, records.Record{
		"openid":    "auth0|ada",
		"name":      "Ada",
		"contact":   "ada@example.org",
		"languages": []any{"en", "fr"},
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	byOpenID, err := repo.FindByOpenID(ctx, "auth0|ada")
	require.NoError(t, err)
	require.NotNil(t, byOpenID)
	assert.Equal(t, id, byOpenID["id"])
	assert.Equal(t, "Ada", byOpenID["name"])
	assert.Equal(t, []any{"en", "fr"}, byOpenID["languages"])

	byID, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "ada@example.org", byID["contact"])
}

func TestIPProfileRepository_FindMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIPProfileRepository(db)
	ctx := context.Background()

	rec, err := repo.FindByOpenID(ctx, "auth0|nobody")
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = repo.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestIPProfileRepository_MissingRequiredColumnIsNotNullViolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIPProfileRepository(db)

	_, err := repo.Create(context.Background(), records.Record{
		"openid": "auth0|ada",
		"name":   "Ada",
		// contact omitted
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotNullViolationError(err))
}

func TestIPProfileRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIPProfileRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, records.Record{
		"openid":  "auth0|ada",
		"name":    "Ada",
		"contact": "ada@example.org",
	})
	require.NoError(t, err)

	err = repo.Update(ctx, id, records.Record{
		"contact":  "new@example.org",
		"location": "Berlin",
	})
	require.NoError(t, err)

	rec, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new@example.org", rec["contact"])
	assert.Equal(t, "Berlin", rec["location"])
	assert.Equal(t, "Ada", rec["name"])
}

func TestIPProfileRepository_UpdateMissingIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIPProfileRepository(db)

	err := repo.Update(context.Background(), 999, records.Record{"name": "X"})
	require.Error(t, err)
	assert.True(t, errors.IsRecordNotFoundError(err))
}

func TestSPProfileRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSPProfileRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, records.Record{
		"openid":   "auth0|sp1",
		"name":     "Helpline",
		"contact":  "help@example.org",
		"services": []any{"legal"},
		"rating":   0,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, records.Record{
		"openid":  "auth0|sp2",
		"name":    "Forensics Co",
		"contact": "lab@example.org",
	})
	require.NoError(t, err)

	recs, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestProfileDeleteService(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIPProfileRepository(db)
	svc := NewProfileDeleteService(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, records.Record{
		"openid":  "auth0|ada",
		"name":    "Ada",
		"contact": "ada@example.org",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteIP(ctx, id))

	rec, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, rec)

	err = svc.DeleteIP(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.IsRecordNotFoundError(err))

	err = svc.DeleteSP(ctx, 404)
	require.Error(t, err)
	assert.True(t, errors.IsRecordNotFoundError(err))
}

func TestTicketRepository_CreateFindAndMarkRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, records.Record{
		"incident_type":  "phishing",
		"description":    "suspicious mail",
		"status":         "unassigned",
		"ip_assigned_id": uint(5),
	}, "Ada")
	require.NoError(t, err)
	assert.NotZero(t, id)

	rec, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Ada", rec["created_by"])
	assert.Equal(t, "unassigned", rec["status"])
	assert.Equal(t, uint(5), rec["ip_assigned_id"])

	require.NoError(t, repo.UpdateRead(ctx, id, "auth0|ada"))

	var count int64
	require.NoError(t, db.Model(&models.TicketReadModel{}).
		Where("ticket_id = ? AND openid = ?", id, "auth0|ada").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTicketRepository_MissingDescriptionIsNotNullViolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)

	_, err := repo.Create(context.Background(), records.Record{
		"incident_type": "phishing",
	}, "Ada")
	require.Error(t, err)
	assert.True(t, errors.IsNotNullViolationError(err))
}
