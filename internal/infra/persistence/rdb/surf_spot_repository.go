package rdb

import (
	"context"

	"shaka/internal/domain/entity"
	domainerrors "shaka/internal/domain/errors"
	"shaka/internal/domain/repository"
	"shaka/internal/errors"
	"shaka/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type surfSpotRepository struct {
	db *gorm.DB
}

// NewSurfSpotRepository is the constructor for surfSpotRepository.
func NewSurfSpotRepository(db *gorm.DB) repository.SurfSpotRepository {
	return &surfSpotRepository{db: db}
}

// Create persists a new surf spot and copies the generated id back.
func (repo *surfSpotRepository) Create(ctx context.Context, spot *entity.SurfSpot) error {
	spotM := fromSurfSpotDomain(spot)

	if err := repo.db.WithContext(ctx).Create(spotM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrSurfSpotDuplicate, "destination %q at %q", spot.Destination, spot.Address)
		}
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "surf spot check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create surf spot")
	}

	spot.ID = spotM.SurfSpotID

	return nil
}

// FindAll retrieves every surf spot in store order.
func (repo *surfSpotRepository) FindAll(ctx context.Context) ([]*entity.SurfSpot, error) {
	var spotModels []*model.SurfSpotModel
	if err := repo.db.WithContext(ctx).Find(&spotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find surf spots")
	}

	spots := make([]*entity.SurfSpot, 0, len(spotModels))
	for _, spotM := range spotModels {
		spots = append(spots, toSurfSpotDomain(spotM))
	}

	return spots, nil
}

// FindByID retrieves a surf spot by its id.
func (repo *surfSpotRepository) FindByID(ctx context.Context, id int64) (*entity.SurfSpot, error) {
	var spotM model.SurfSpotModel
	err := repo.db.WithContext(ctx).
		Where(&model.SurfSpotModel{SurfSpotID: id}).
		Take(&spotM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSurfSpotNotFound
		}

		return nil, errors.Wrapf(err, "failed to find surf spot %d", id)
	}

	return toSurfSpotDomain(&spotM), nil
}

func toSurfSpotDomain(data *model.SurfSpotModel) *entity.SurfSpot {
	if data == nil {
		return nil
	}

	return &entity.SurfSpot{
		ID:               data.SurfSpotID,
		Destination:      data.Destination,
		Address:          data.Address,
		StateCountry:     data.StateCountry,
		DifficultyLevel:  data.DifficultyLevel,
		PeakSeasonBegin:  data.PeakSeasonBegin,
		PeakSeasonEnd:    data.PeakSeasonEnd,
		MagicSeaweedLink: data.MagicSeaweedLink,
		CreatedTime:      data.CreatedTime,
		GeocodeRaw:       data.GeocodeRaw,
	}
}

func fromSurfSpotDomain(data *entity.SurfSpot) *model.SurfSpotModel {
	if data == nil {
		return nil
	}

	return &model.SurfSpotModel{
		SurfSpotID:       data.ID,
		Destination:      data.Destination,
		Address:          data.Address,
		StateCountry:     data.StateCountry,
		DifficultyLevel:  data.DifficultyLevel,
		PeakSeasonBegin:  data.PeakSeasonBegin,
		PeakSeasonEnd:    data.PeakSeasonEnd,
		MagicSeaweedLink: data.MagicSeaweedLink,
		CreatedTime:      data.CreatedTime,
		GeocodeRaw:       data.GeocodeRaw,
	}
}
