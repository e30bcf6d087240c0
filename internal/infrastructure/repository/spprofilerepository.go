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

type SPProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SPProfileMapper
}

func NewSPProfileRepository(db *gorm.DB) profile.Repository {
	return &SPProfileRepositoryImpl{
		db:     db,
		mapper: mappers.NewSPProfileMapper(),
	}
}

func (r *SPProfileRepositoryImpl) FindByOpenID(ctx context.Context, openID string) (records.Record, error) {
	var model models.SPProfileModel

	if err := r.db.WithContext(ctx).Where("openid = ?", openID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get SP profile by openid: %w", err)
	}

	return r.mapper.ToRecord(&model), nil
}

func (r *SPProfileRepositoryImpl) FindByID(ctx context.Context, id uint) (records.Record, error) {
	var model models.SPProfileModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get SP profile by ID: %w", err)
	}

	return r.mapper.ToRecord(&model), nil
}

func (r *SPProfileRepositoryImpl) Find(ctx context.Context) ([]records.Record, error) {
	var modelList []models.SPProfileModel

	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list SP profiles: %w", err)
	}

	recs := make([]records.Record, 0, len(modelList))
	for i := range modelList {
		recs = append(recs, r.mapper.ToRecord(&modelList[i]))
	}
	return recs, nil
}

func (r *SPProfileRepositoryImpl) Create(ctx context.Context, rec records.Record) (uint, error) {
	model := r.mapper.ToModel(rec)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, translateWriteError(err, "SP profile")
	}

	return model.ID, nil
}

func (r *SPProfileRepositoryImpl) Update(ctx context.Context, id uint, rec records.Record) error {
	var existing models.SPProfileModel
	if err := r.db.WithContext(ctx).Select("id").Take(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewRecordNotFoundError("That profile does not exist")
		}
		return fmt.Errorf("failed to get SP profile for update: %w", err)
	}

	values := r.mapper.ToUpdateMap(rec)
	if len(values) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Model(&models.SPProfileModel{}).Where("id = ?", id).Updates(values).Error; err != nil {
		return translateWriteError(err, "SP profile")
	}

	return nil
}
