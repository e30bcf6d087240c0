package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"caseline/internal/domain/records"
	"caseline/internal/domain/ticket"
	"caseline/internal/infrastructure/persistence/mappers"
	"caseline/internal/infrastructure/persistence/models"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, rec records.Record, creatorName string) (uint, error) {
	model := r.mapper.ToModel(rec, creatorName)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, translateWriteError(err, "ticket")
	}

	return model.ID, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id uint) (records.Record, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}

	return r.mapper.ToRecord(&model), nil
}

func (r *TicketRepositoryImpl) UpdateRead(ctx context.Context, id uint, openID string) error {
	read := models.TicketReadModel{
		TicketID: id,
		OpenID:   openID,
		ReadAt:   time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&read).Error; err != nil {
		return fmt.Errorf("failed to mark ticket %d read: %w", id, err)
	}

	return nil
}
