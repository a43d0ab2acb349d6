package response_models

type VisitedPagesResponse struct {
	Paths      []string `json:"paths"`
	FirstVisit bool     `json:"first_visit"`
}
