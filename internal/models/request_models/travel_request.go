package request_models

// DestinationLegInput is one itinerary stop as submitted by a client.
// destination_order, stay_days and is_last_destination are accepted for
// wire compatibility but recomputed server-side from list position and
// the two dates; the submitted values are never trusted.
type DestinationLegInput struct {
	DestinationID     string `json:"id_destination"`
	DestinationOrder  int    `json:"destination_order"`
	StayDays          int    `json:"stay_days"`
	Arrival           string `json:"arrival_date"`
	Departure         string `json:"departure_date"`
	HotelNeeded       bool   `json:"is_hotel_required"`
	FlightNeeded      bool   `json:"is_flight_required"`
	IsLastDestination bool   `json:"is_last_destination"`
	Details           string `json:"details"`
}

type SubmitTravelRequestRequest struct {
	OriginID      string                `json:"id_origin" binding:"required"`
	Title         string                `json:"title"`
	Motive        string                `json:"motive" binding:"required"`
	Requirements  string                `json:"requirements"`
	Priority      string                `json:"priority"`
	AdvanceAmount int64                 `json:"advance_money"`
	Destinations  []DestinationLegInput `json:"destinations" binding:"required"`
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}
