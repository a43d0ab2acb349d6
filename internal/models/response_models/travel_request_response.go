package response_models

import (
	"tripdesk/internal/models/db_models"
)

type DestinationLegResponse struct {
	ID                string `json:"id"`
	DestinationID     string `json:"id_destination"`
	Label             string `json:"label,omitempty"`
	DestinationOrder  int    `json:"destination_order"`
	StayDays          int    `json:"stay_days"`
	Arrival           string `json:"arrival_date"`
	Departure         string `json:"departure_date"`
	HotelNeeded       bool   `json:"is_hotel_required"`
	FlightNeeded      bool   `json:"is_flight_required"`
	IsLastDestination bool   `json:"is_last_destination"`
	Details           string `json:"details,omitempty"`
}

type TravelRequestResponse struct {
	ID            string                   `json:"id"`
	RequesterID   string                   `json:"id_requester"`
	OriginID      string                   `json:"id_origin"`
	OriginLabel   string                   `json:"origin_label,omitempty"`
	Title         string                   `json:"title"`
	Motive        string                   `json:"motive"`
	Requirements  string                   `json:"requirements,omitempty"`
	Priority      string                   `json:"priority"`
	AdvanceAmount int64                    `json:"advance_money"`
	Status        string                   `json:"status"`
	Badge         db_models.StatusBadge    `json:"badge"`
	Destinations  []DestinationLegResponse `json:"destinations"`
	CreatedAt     int64                    `json:"created_at"`
}

// TravelRequestListItem is a row of the history/approvals/bookings views:
// the request annotated with its status badge and the derived departure
// date (the arrival date of the leg with the lowest order).
type TravelRequestListItem struct {
	ID            string                `json:"id"`
	RequesterID   string                `json:"id_requester"`
	AdminID       string                `json:"id_admin,omitempty"`
	AccountantID  string                `json:"id_accountant,omitempty"`
	Title         string                `json:"title"`
	Motive        string                `json:"motive"`
	Priority      string                `json:"priority"`
	Status        string                `json:"status"`
	Badge         db_models.StatusBadge `json:"badge"`
	DepartureDate string                `json:"departure_date"`
	CreatedAt     int64                 `json:"created_at"`
}

type RequestPage struct {
	Items      []TravelRequestListItem `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalItems int                     `json:"total_items"`
	TotalPages int                     `json:"total_pages"`
}
