package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/middleware"
	"tripdesk/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
}

func NewRequestController(requestService services.RequestServiceInterface) *RequestController {
	return &RequestController{
		requestService: requestService,
	}
}

func viewerFromContext(c *gin.Context) (services.Viewer, bool) {
	userId, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return services.Viewer{}, false
	}
	return services.Viewer{
		ID:          userId,
		Permissions: middleware.SessionPermissions(c),
	}, true
}

func pageParams(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", strconv.Itoa(services.DefaultPageSize))

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}
	// Out-of-range pages clamp to valid bounds; the service clamps the
	// high end against the collection size.
	if page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}

// Submit godoc
// @Summary Submit a new travel request
// @Description Validate and store a travel request with its itinerary legs
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body request_models.SubmitTravelRequestRequest true "Travel request payload"
// @Success 200 {object} response_models.TravelRequestResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /requests [post]
func (r *RequestController) Submit(c *gin.Context) {
	var req request_models.SubmitTravelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	viewer, ok := viewerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	created, err := r.requestService.Submit(c.Request.Context(), viewer.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, created, "Travel request submitted successfully")
}

// Amend godoc
// @Summary Update an existing travel request
// @Description Replace the request's fields and its whole destination set
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body request_models.SubmitTravelRequestRequest true "Travel request payload"
// @Success 200 {object} response_models.TravelRequestResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /requests/{id} [put]
func (r *RequestController) Amend(c *gin.Context) {
	requestId := c.Param("id")
	if requestId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Request ID is required")
		return
	}

	var req request_models.SubmitTravelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	viewer, ok := viewerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	updated, err := r.requestService.Amend(c.Request.Context(), viewer.ID, requestId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, updated, "Travel request updated successfully")
}

// GetById godoc
// @Summary Get a travel request by ID
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response_models.TravelRequestResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /requests/{id} [get]
func (r *RequestController) GetById(c *gin.Context) {
	requestId := c.Param("id")
	if requestId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Request ID is required")
		return
	}

	request, err := r.requestService.GetById(c.Request.Context(), requestId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Travel request fetched successfully")
}

// ListUser godoc
// @Summary List the session's request history
// @Tags Requests
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {object} response_models.RequestPage
// @Security BearerAuth
// @Router /requests/user [get]
func (r *RequestController) ListUser(c *gin.Context) {
	r.list(c, r.requestService.ListHistory)
}

// ListToApprove godoc
// @Summary List requests awaiting the approver's decision
// @Tags Requests
// @Produce json
// @Success 200 {object} response_models.RequestPage
// @Security BearerAuth
// @Router /requests/to-approve [get]
func (r *RequestController) ListToApprove(c *gin.Context) {
	r.list(c, r.requestService.ListToApprove)
}

// ListToApproveAccounting godoc
// @Summary List requests awaiting accounting approval
// @Tags Requests
// @Produce json
// @Success 200 {object} response_models.RequestPage
// @Security BearerAuth
// @Router /requests/to-approve-SOI [get]
func (r *RequestController) ListToApproveAccounting(c *gin.Context) {
	r.list(c, r.requestService.ListToApproveAccounting)
}

// ListToReserve godoc
// @Summary List requests awaiting reservations
// @Tags Requests
// @Produce json
// @Success 200 {object} response_models.RequestPage
// @Security BearerAuth
// @Router /requests/to-reserve [get]
func (r *RequestController) ListToReserve(c *gin.Context) {
	r.list(c, r.requestService.ListToReserve)
}

// ListAll godoc
// @Summary List every travel request
// @Tags Requests
// @Produce json
// @Success 200 {object} response_models.RequestPage
// @Security BearerAuth
// @Router /requests/all [get]
func (r *RequestController) ListAll(c *gin.Context) {
	r.list(c, r.requestService.ListAll)
}

func (r *RequestController) list(c *gin.Context, fetch func(ctx context.Context, viewer services.Viewer, page, pageSize int) (response_models.RequestPage, error)) {
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	viewer, ok := viewerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	result, err := fetch(c.Request.Context(), viewer, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Requests fetched successfully")
}

// UpdateStatus godoc
// @Summary Move a request along the status workflow
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body request_models.UpdateStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /requests/{id}/status [patch]
func (r *RequestController) UpdateStatus(c *gin.Context) {
	requestId := c.Param("id")
	if requestId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Request ID is required")
		return
	}

	var req request_models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	viewer, ok := viewerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	if err := r.requestService.Transition(c.Request.Context(), viewer, requestId, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Request status updated successfully")
}
