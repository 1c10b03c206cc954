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

// surfSpotIDIn filters the statement's own table, so joined tables that also
// carry surf_spot_id do not make the column ambiguous.
func surfSpotIDIn(ids []int64) clause.Expression {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	return clause.IN{
		Column: clause.Column{Table: clause.CurrentTable, Name: "surf_spot_id"},
		Values: values,
	}
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (repo *photoRepository) FindBySurfSpotIDs(ctx context.Context, ids []int64) ([]entity.SpotValue, error) {
	if len(ids) == 0 {
		return []entity.SpotValue{}, nil
	}

	var photos []model.PhotoModel
	err := repo.db.WithContext(ctx).
		Select("surf_spot_id", "url").
		Where(surfSpotIDIn(ids)).
		Find(&photos).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find photos by surf spot ids")
	}

	values := make([]entity.SpotValue, 0, len(photos))
	for _, p := range photos {
		values = append(values, entity.SpotValue{SurfSpotID: p.SurfSpotID, Value: deref(p.URL)})
	}

	return values, nil
}

type surfBreakTypeRepository struct {
	db *gorm.DB
}

// NewSurfBreakTypeRepository is the constructor for surfBreakTypeRepository.
func NewSurfBreakTypeRepository(db *gorm.DB) repository.SurfBreakTypeRepository {
	return &surfBreakTypeRepository{db: db}
}

func (repo *surfBreakTypeRepository) FindBySurfSpotIDs(ctx context.Context, ids []int64) ([]entity.SpotValue, error) {
	if len(ids) == 0 {
		return []entity.SpotValue{}, nil
	}

	var links []model.SurfSpotSurfBreakTypeModel
	err := repo.db.WithContext(ctx).
		InnerJoins("SurfBreakType").
		Where(surfSpotIDIn(ids)).
		Find(&links).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find break types by surf spot ids")
	}

	values := make([]entity.SpotValue, 0, len(links))
	for _, link := range links {
		values = append(values, entity.SpotValue{SurfSpotID: link.SurfSpotID, Value: link.SurfBreakType.Name})
	}

	return values, nil
}

type influencerRepository struct {
	db *gorm.DB
}

// NewInfluencerRepository is the constructor for influencerRepository.
func NewInfluencerRepository(db *gorm.DB) repository.InfluencerRepository {
	return &influencerRepository{db: db}
}

func (repo *influencerRepository) FindBySurfSpotIDs(ctx context.Context, ids []int64) ([]entity.SpotValue, error) {
	if len(ids) == 0 {
		return []entity.SpotValue{}, nil
	}

	var links []model.SurfSpotInfluencerModel
	err := repo.db.WithContext(ctx).
		InnerJoins("Influencer").
		Where(surfSpotIDIn(ids)).
		Find(&links).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find influencers by surf spot ids")
	}

	values := make([]entity.SpotValue, 0, len(links))
	for _, link := range links {
		values = append(values, entity.SpotValue{SurfSpotID: link.SurfSpotID, Value: deref(link.Influencer.Name)})
	}

	return values, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
