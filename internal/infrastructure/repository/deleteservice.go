package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caseline/internal/domain/profile"
	"caseline/internal/infrastructure/persistence/models"
	"caseline/internal/shared/errors"
)

type ProfileDeleteServiceImpl struct {
	db *gorm.DB
}

func NewProfileDeleteService(db *gorm.DB) profile.DeleteService {
	return &ProfileDeleteServiceImpl{db: db}
}

func (s *ProfileDeleteServiceImpl) DeleteIP(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.IPProfileModel{}, id, "IP profile")
}

func (s *ProfileDeleteServiceImpl) DeleteSP(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.SPProfileModel{}, id, "SP profile")
}

func (s *ProfileDeleteServiceImpl) deleteByID(ctx context.Context, model any, id uint, subject string) error {
	result := s.db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", subject, result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewRecordNotFoundError("That profile does not exist")
	}
	return nil
}
