package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripdesk/internal/models/db_models"
)

type TravelRequestRepository interface {
	Insert(ctx context.Context, request *dbm.TravelRequest) error
	// ReplaceWithLegs updates the request's own columns and swaps the whole
	// leg set in one transaction; legs have no partial-patch path.
	ReplaceWithLegs(ctx context.Context, request *dbm.TravelRequest) error
	GetById(ctx context.Context, requestId string) (*dbm.TravelRequest, error)
	ListByRequester(ctx context.Context, requesterId uuid.UUID) ([]dbm.TravelRequest, error)
	ListByStatuses(ctx context.Context, statuses []dbm.RequestStatus) ([]dbm.TravelRequest, error)
	ListAll(ctx context.Context) ([]dbm.TravelRequest, error)
	SetStatus(ctx context.Context, requestId uuid.UUID, status dbm.RequestStatus, adminId, accountantId *uuid.UUID) error
}

type travelRequestRepository struct {
	db *gorm.DB
}

func NewTravelRequestRepository(db *gorm.DB) TravelRequestRepository {
	return &travelRequestRepository{db: db}
}

func (r *travelRequestRepository) Insert(ctx context.Context, request *dbm.TravelRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *travelRequestRepository) ReplaceWithLegs(ctx context.Context, request *dbm.TravelRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("travel_request_id = ?", request.ID).
			Delete(&dbm.DestinationLeg{}).Error; err != nil {
			return err
		}

		legs := request.Destinations
		request.Destinations = nil
		if err := tx.Model(request).
			Select("OriginID", "Title", "Motive", "Requirements", "Priority",
				"AdvanceAmount", "Status", "UpdatedAt").
			Updates(request).Error; err != nil {
			return err
		}

		for i := range legs {
			legs[i].TravelRequestID = request.ID
			if err := tx.Create(&legs[i]).Error; err != nil {
				return err
			}
		}
		request.Destinations = legs
		return nil
	})
}

func (r *travelRequestRepository) GetById(ctx context.Context, requestId string) (*dbm.TravelRequest, error) {
	var request dbm.TravelRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", requestId).
		Preload("Destinations").
		Preload("Destinations.Destination").
		Preload("Origin").
		First(&request).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

func (r *travelRequestRepository) ListByRequester(ctx context.Context, requesterId uuid.UUID) ([]dbm.TravelRequest, error) {
	var requests []dbm.TravelRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterId).
		Preload("Destinations").
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *travelRequestRepository) ListByStatuses(ctx context.Context, statuses []dbm.RequestStatus) ([]dbm.TravelRequest, error) {
	var requests []dbm.TravelRequest
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Preload("Destinations").
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *travelRequestRepository) ListAll(ctx context.Context) ([]dbm.TravelRequest, error) {
	var requests []dbm.TravelRequest
	err := r.db.WithContext(ctx).
		Preload("Destinations").
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *travelRequestRepository) SetStatus(ctx context.Context, requestId uuid.UUID, status dbm.RequestStatus, adminId, accountantId *uuid.UUID) error {
	updates := map[string]interface{}{"status": status}
	if adminId != nil {
		updates["admin_id"] = *adminId
	}
	if accountantId != nil {
		updates["accountant_id"] = *accountantId
	}
	return r.db.WithContext(ctx).
		Model(&dbm.TravelRequest{}).
		Where("id = ?", requestId).
		Updates(updates).Error
}
