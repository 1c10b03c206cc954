package rdb

import (
	"context"

	"shaka/internal/domain/entity"
	"shaka/internal/domain/repository"
	"shaka/internal/errors"
	"shaka/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// Reset deletes every row, join tables and children before their parents.
func (repo *catalogRepository) Reset(ctx context.Context) error {
	db := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})

	all := model.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Delete(all[i]).Error; err != nil {
			return errors.Wrapf(err, "failed to clear %T", all[i])
		}
	}

	return nil
}

func (repo *catalogRepository) CreatePhotos(ctx context.Context, photos []*entity.Photo) error {
	if len(photos) == 0 {
		return nil
	}

	photoModels := make([]*model.PhotoModel, 0, len(photos))
	for _, p := range photos {
		url := p.URL
		photoModels = append(photoModels, &model.PhotoModel{SurfSpotID: p.SurfSpotID, URL: &url})
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&photoModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "photo references an unknown surf spot")
		}

		return errors.Wrap(err, "failed to create photos")
	}

	for i, pm := range photoModels {
		photos[i].ID = pm.PhotoID
	}

	return nil
}

func (repo *catalogRepository) UpsertBreakTypes(ctx context.Context, names []string) ([]*entity.SurfBreakType, error) {
	if len(names) == 0 {
		return []*entity.SurfBreakType{}, nil
	}

	db := repo.db.WithContext(ctx)

	breakTypeModels := make([]*model.SurfBreakTypeModel, 0, len(names))
	for _, name := range names {
		breakTypeModels = append(breakTypeModels, &model.SurfBreakTypeModel{Name: name})
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "surf_break_type_name"}},
		DoNothing: true,
	}).Create(&breakTypeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert break types")
	}

	// Ids of skipped rows are not returned by every dialect, read them back.
	var stored []*model.SurfBreakTypeModel
	if err := db.Where("surf_break_type_name IN ?", names).Find(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read back break types")
	}

	breakTypes := make([]*entity.SurfBreakType, 0, len(stored))
	for _, bt := range stored {
		breakTypes = append(breakTypes, &entity.SurfBreakType{ID: bt.SurfBreakTypeID, Name: bt.Name})
	}

	return breakTypes, nil
}

func (repo *catalogRepository) CreateInfluencer(ctx context.Context, influencer *entity.Influencer) error {
	name := influencer.Name
	influencerM := &model.InfluencerModel{Name: &name}

	if err := repo.db.WithContext(ctx).Create(influencerM).Error; err != nil {
		return errors.Wrap(err, "failed to create influencer")
	}

	influencer.ID = influencerM.InfluencerID

	return nil
}

func (repo *catalogRepository) LinkBreakTypes(ctx context.Context, surfSpotID int64, breakTypeIDs []int64) error {
	if len(breakTypeIDs) == 0 {
		return nil
	}

	links := make([]*model.SurfSpotSurfBreakTypeModel, 0, len(breakTypeIDs))
	for _, id := range breakTypeIDs {
		links = append(links, &model.SurfSpotSurfBreakTypeModel{SurfSpotID: surfSpotID, SurfBreakTypeID: id})
	}

	// Omit the association so GORM does not try to upsert empty break types.
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&links).Error; err != nil {
		return linkError(err, "break types")
	}

	return nil
}

func (repo *catalogRepository) LinkInfluencers(ctx context.Context, surfSpotID int64, influencerIDs []int64) error {
	if len(influencerIDs) == 0 {
		return nil
	}

	links := make([]*model.SurfSpotInfluencerModel, 0, len(influencerIDs))
	for _, id := range influencerIDs {
		links = append(links, &model.SurfSpotInfluencerModel{SurfSpotID: surfSpotID, InfluencerID: id})
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&links).Error; err != nil {
		return linkError(err, "influencers")
	}

	return nil
}

func linkError(err error, what string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrapf(err, "surf spot already linked to these %s", what)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrapf(err, "link to unknown %s", what)
	default:
		return errors.Wrapf(err, "failed to link %s", what)
	}
}
