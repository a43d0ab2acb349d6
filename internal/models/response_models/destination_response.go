package response_models

type DestinationResponse struct {
	ID      string `json:"id"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// DestinationOption is the read-only {id, "city, country"} projection
// selection controls consume.
type DestinationOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
