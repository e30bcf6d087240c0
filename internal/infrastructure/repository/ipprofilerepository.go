package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caseline/internal/domain/profile"
	"caseline/internal/domain/records"
	"caseline/internal/infrastructure/persistence/mappers"
	"caseline/internal/infrastructure/persistence/models"
	"caseline/internal/shared/errors"
)

type IPProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IPProfileMapper
}

func NewIPProfileRepository(db *gorm.DB) profile.Repository {
	return &IPProfileRepositoryImpl{
		db:     db,
		mapper: mappers.NewIPProfileMapper(),
	}
}

func (r *IPProfileRepositoryImpl) FindByOpenID(ctx context.Context, openID string) (records.Record, error) {
	var model models.IPProfileModel

	if err := r.db.WithContext(ctx).Where("openid = ?", openID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get IP profile by openid: %w", err)
	}

	return r.mapper.ToRecord(&model), nil
}

func (r *IPProfileRepositoryImpl) FindByID(ctx context.Context, id uint) (records.Record, error) {
	var model models.IPProfileModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get IP profile by ID: %w", err)
	}

	return r.mapper.ToRecord(&model), nil
}

func (r *IPProfileRepositoryImpl) Find(ctx context.Context) ([]records.Record, error) {
	var modelList []models.IPProfileModel

	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list IP profiles: %w", err)
	}

	recs := make([]records.Record, 0, len(modelList))
	for i := range modelList {
		recs = append(recs, r.mapper.ToRecord(&modelList[i]))
	}
	return recs, nil
}

func (r *IPProfileRepositoryImpl) Create(ctx context.Context, rec records.Record) (uint, error) {
	model := r.mapper.ToModel(rec)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, translateWriteError(err, "IP profile")
	}

	return model.ID, nil
}

func (r *IPProfileRepositoryImpl) Update(ctx context.Context, id uint, rec records.Record) error {
	var existing models.IPProfileModel
	if err := r.db.WithContext(ctx).Select("id").Take(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewRecordNotFoundError("That profile does not exist")
		}
		return fmt.Errorf("failed to get IP profile for update: %w", err)
	}

	values := r.mapper.ToUpdateMap(rec)
	if len(values) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Model(&models.IPProfileModel{}).Where("id = ?", id).Updates(values).Error; err != nil {
		return translateWriteError(err, "IP profile")
	}

	return nil
}
