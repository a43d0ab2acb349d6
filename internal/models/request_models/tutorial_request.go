package request_models

type VisitPageRequest struct {
	Path string `json:"path" binding:"required"`
}
