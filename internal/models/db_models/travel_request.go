package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is the middle tier requests fall back to when the
// submitter does not pick one.
const DefaultPriority = PriorityMedium

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type TravelRequest struct {
	BaseModel
	RequesterID   uuid.UUID `gorm:"type:uuid;index"`
	OriginID      uuid.UUID `gorm:"type:uuid"`
	Title         string
	Motive        string
	Requirements  string
	Priority      Priority
	AdvanceAmount int64
	Status        RequestStatus `gorm:"index"`

	// AdminID is the approver who decided (or is assigned to decide) the
	// request; AccountantID is its counterpart for the accounting stages.
	AdminID      *uuid.UUID `gorm:"type:uuid;index"`
	AccountantID *uuid.UUID `gorm:"type:uuid;index"`

	Destinations []DestinationLeg `gorm:"constraint:OnDelete:CASCADE"`
	Origin       *Destination     `gorm:"foreignKey:OriginID"`
	Requester    *Account         `gorm:"foreignKey:RequesterID"`
}

// DestinationLeg is one stop of an itinerary. Legs are owned by their
// request and replaced as a whole set on every update; destination_order
// is the 1-based position assigned at submission, and exactly one leg per
// request carries IsLastDestination (the one with the maximum order).
type DestinationLeg struct {
	BaseModel
	TravelRequestID   uuid.UUID `gorm:"type:uuid;index"`
	DestinationID     uuid.UUID `gorm:"type:uuid"`
	DestinationOrder  int
	Arrival           time.Time
	Departure         time.Time
	StayDays          int
	HotelNeeded       bool
	FlightNeeded      bool
	IsLastDestination bool
	Details           string

	Destination *Destination `gorm:"foreignKey:DestinationID"`
}

// FirstLeg returns the leg with the lowest destination_order, regardless
// of storage order. List views derive the itinerary's departure date from
// it. Returns nil when the request has no legs.
func (r *TravelRequest) FirstLeg() *DestinationLeg {
	var first *DestinationLeg
	for i := range r.Destinations {
		leg := &r.Destinations[i]
		if first == nil || leg.DestinationOrder < first.DestinationOrder {
			first = leg
		}
	}
	return first
}
