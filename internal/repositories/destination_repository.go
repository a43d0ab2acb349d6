package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripdesk/internal/models/db_models"
)

type DestinationRepository interface {
	GetAll(ctx context.Context) ([]db_models.Destination, error)
	GetById(ctx context.Context, id string) (*db_models.Destination, error)
	Upsert(ctx context.Context, destination *db_models.Destination) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (d *destinationRepository) GetAll(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := d.db.WithContext(ctx).
		Order("country, city").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (d *destinationRepository) GetById(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := d.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (d *destinationRepository) Upsert(ctx context.Context, destination *db_models.Destination) error {
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "city"}, {Name: "country"}},
			DoNothing: true,
		}).
		Create(destination).Error
}
