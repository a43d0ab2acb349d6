package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	dbm "tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	resp "tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/cache"
	"tripdesk/pkg/observability"
	"tripdesk/pkg/utils"
)

// Viewer identifies the session on whose behalf list views are scoped.
type Viewer struct {
	ID          uuid.UUID
	Permissions []dbm.Permission
}

const (
	allRequestsCacheKey = "requests:all"
	listCacheTTLSec     = 60

	// DefaultPageSize is the fixed page size list views slice by.
	DefaultPageSize = 5
)

type RequestServiceInterface interface {
	Submit(ctx context.Context, requesterId uuid.UUID, req request_models.SubmitTravelRequestRequest) (*resp.TravelRequestResponse, error)
	Amend(ctx context.Context, requesterId uuid.UUID, requestId string, req request_models.SubmitTravelRequestRequest) (*resp.TravelRequestResponse, error)
	GetById(ctx context.Context, requestId string) (*resp.TravelRequestResponse, error)
	ListHistory(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error)
	ListToApprove(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error)
	ListToApproveAccounting(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error)
	ListToReserve(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error)
	ListAll(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error)
	Transition(ctx context.Context, viewer Viewer, requestId string, newStatus string) error
}

type RequestService struct {
	requestRepo repositories.TravelRequestRepository
	cache       cache.Cache
	logger      zerolog.Logger
}

func NewRequestService(requestRepo repositories.TravelRequestRepository, c cache.Cache, logger zerolog.Logger) RequestServiceInterface {
	return &RequestService{
		requestRepo: requestRepo,
		cache:       c,
		logger:      logger,
	}
}

// Submit validates and stores a new travel request. Validation happens
// entirely before the single store round-trip: an invalid submission never
// reaches the repository.
func (s *RequestService) Submit(ctx context.Context, requesterId uuid.UUID, req request_models.SubmitTravelRequestRequest) (*resp.TravelRequestResponse, error) {
	request, err := s.assemble(requesterId, req)
	if err != nil {
		observability.ObserveSubmission("create", "rejected")
		return nil, err
	}
	request.Status = dbm.StatusPendingReview

	if err := s.requestRepo.Insert(ctx, request); err != nil {
		s.logger.Error().Err(err).Msg("travel request insert failed")
		observability.ObserveSubmission("create", "error")
		return nil, utils.ErrDatabaseError
	}

	s.invalidateLists(ctx)
	observability.ObserveSubmission("create", "ok")
	return buildTravelRequestResponse(request), nil
}

// Amend replaces an existing request identified by its stable id. The leg
// set is swapped wholesale; there is no partial patch. A successful amend
// puts the request back under review.
func (s *RequestService) Amend(ctx context.Context, requesterId uuid.UUID, requestId string, req request_models.SubmitTravelRequestRequest) (*resp.TravelRequestResponse, error) {
	existing, err := s.requestRepo.GetById(ctx, requestId)
	if err != nil {
		s.logger.Error().Err(err).Str("request_id", requestId).Msg("travel request lookup failed")
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrRequestNotFound
	}
	if existing.RequesterID != requesterId {
		return nil, utils.ErrPermissionDenied
	}

	assembled, err := s.assemble(requesterId, req)
	if err != nil {
		observability.ObserveSubmission("update", "rejected")
		return nil, err
	}

	assembled.BaseModel = existing.BaseModel
	assembled.AdminID = existing.AdminID
	assembled.AccountantID = existing.AccountantID
	assembled.Status = dbm.StatusPendingReview

	if err := s.requestRepo.ReplaceWithLegs(ctx, assembled); err != nil {
		s.logger.Error().Err(err).Str("request_id", requestId).Msg("travel request update failed")
		observability.ObserveSubmission("update", "error")
		return nil, utils.ErrDatabaseError
	}

	s.invalidateLists(ctx)
	observability.ObserveSubmission("update", "ok")
	return buildTravelRequestResponse(assembled), nil
}

func (s *RequestService) GetById(ctx context.Context, requestId string) (*resp.TravelRequestResponse, error) {
	request, err := s.requestRepo.GetById(ctx, requestId)
	if err != nil {
		s.logger.Error().Err(err).Str("request_id", requestId).Msg("travel request lookup failed")
		return nil, utils.ErrDatabaseError
	}
	if request == nil {
		return nil, utils.ErrRequestNotFound
	}
	return buildTravelRequestResponse(request), nil
}

// assemble runs the submission algorithm: origin check, cross-field date
// invariant over every leg, then mapping of legs in list position with
// server-assigned order, last flag and stay length.
func (s *RequestService) assemble(requesterId uuid.UUID, req request_models.SubmitTravelRequestRequest) (*dbm.TravelRequest, error) {
	originId, err := uuid.Parse(req.OriginID)
	if err != nil || originId == uuid.Nil {
		return nil, utils.ErrOriginRequired
	}

	if len(req.Destinations) == 0 {
		return nil, utils.ErrNoDestinations
	}

	type window struct{ arrival, departure time.Time }
	windows := make([]window, len(req.Destinations))
	for i, leg := range req.Destinations {
		arrival, err := utils.ParseTravelDate(leg.Arrival)
		if err != nil {
			return nil, utils.ErrInvalidTravelDates
		}
		departure, err := utils.ParseTravelDate(leg.Departure)
		if err != nil {
			return nil, utils.ErrInvalidTravelDates
		}
		if utils.StayDays(arrival, departure) <= 0 {
			return nil, utils.ErrInvalidTravelDates
		}
		windows[i] = window{arrival: arrival, departure: departure}
	}

	legs := make([]dbm.DestinationLeg, 0, len(req.Destinations))
	for i, leg := range req.Destinations {
		destinationId, err := uuid.Parse(leg.DestinationID)
		if err != nil || destinationId == uuid.Nil {
			return nil, utils.ErrDestinationRequired
		}
		legs = append(legs, dbm.DestinationLeg{
			DestinationID:     destinationId,
			DestinationOrder:  i + 1,
			Arrival:           windows[i].arrival,
			Departure:         windows[i].departure,
			StayDays:          utils.StayDays(windows[i].arrival, windows[i].departure),
			HotelNeeded:       leg.HotelNeeded,
			FlightNeeded:      leg.FlightNeeded,
			IsLastDestination: i == len(req.Destinations)-1,
			Details:           leg.Details,
		})
	}

	priority := dbm.Priority(req.Priority)
	if req.Priority == "" {
		priority = dbm.DefaultPriority
	}
	if !priority.Valid() {
		return nil, utils.ErrInvalidPriority
	}

	if req.AdvanceAmount <= 0 {
		return nil, utils.ErrInvalidAdvanceAmount
	}

	// Older clients submit the motive as the title; keep them working by
	// falling back rather than rejecting.
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = req.Motive
	}

	return &dbm.TravelRequest{
		RequesterID:   requesterId,
		OriginID:      originId,
		Title:         title,
		Motive:        req.Motive,
		Requirements:  req.Requirements,
		Priority:      priority,
		AdvanceAmount: req.AdvanceAmount,
		Destinations:  legs,
	}, nil
}

// FilterForViewer applies the permission-scoped narrowing the list views
// share: approvers and accountants keep only records they decided (status
// past their review stage, identifier matching theirs), view-all keeps
// everything, and everyone else keeps their own requests.
func FilterForViewer(items []dbm.TravelRequest, viewer Viewer) []dbm.TravelRequest {
	switch {
	case dbm.HasPermission(viewer.Permissions, dbm.PermViewAllRequests):
		return items
	case dbm.HasPermission(viewer.Permissions, dbm.PermApproveRequest):
		out := make([]dbm.TravelRequest, 0, len(items))
		for _, item := range items {
			if item.Status == dbm.StatusPendingReview {
				continue
			}
			if item.AdminID != nil && *item.AdminID == viewer.ID {
				out = append(out, item)
			}
		}
		return out
	case dbm.HasPermission(viewer.Permissions, dbm.PermApproveAccounting):
		out := make([]dbm.TravelRequest, 0, len(items))
		for _, item := range items {
			if item.Status == dbm.StatusPendingAccounting {
				continue
			}
			if item.AccountantID != nil && *item.AccountantID == viewer.ID {
				out = append(out, item)
			}
		}
		return out
	default:
		out := make([]dbm.TravelRequest, 0, len(items))
		for _, item := range items {
			if item.RequesterID == viewer.ID {
				out = append(out, item)
			}
		}
		return out
	}
}

func (s *RequestService) ListHistory(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error) {
	reviewer := dbm.HasPermission(viewer.Permissions, dbm.PermApproveRequest) ||
		dbm.HasPermission(viewer.Permissions, dbm.PermApproveAccounting) ||
		dbm.HasPermission(viewer.Permissions, dbm.PermViewAllRequests)

	var items []dbm.TravelRequest
	var err error
	if reviewer {
		items, err = s.fetchAll(ctx)
	} else {
		items, err = s.requestRepo.ListByRequester(ctx, viewer.ID)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("history fetch failed")
		return resp.RequestPage{}, utils.ErrDatabaseError
	}

	return buildPage(FilterForViewer(items, viewer), page, pageSize), nil
}

func (s *RequestService) ListToApprove(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error) {
	if !dbm.HasPermission(viewer.Permissions, dbm.PermApproveRequest) {
		return resp.RequestPage{}, utils.ErrPermissionDenied
	}

	items, err := s.requestRepo.ListByStatuses(ctx, []dbm.RequestStatus{dbm.StatusPendingReview})
	if err != nil {
		s.logger.Error().Err(err).Msg("to-approve fetch failed")
		return resp.RequestPage{}, utils.ErrDatabaseError
	}

	// Awaiting this approver: assigned to them, or not yet claimed.
	awaiting := make([]dbm.TravelRequest, 0, len(items))
	for _, item := range items {
		if item.AdminID == nil || *item.AdminID == viewer.ID {
			awaiting = append(awaiting, item)
		}
	}
	return buildPage(awaiting, page, pageSize), nil
}

func (s *RequestService) ListToApproveAccounting(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error) {
	if !dbm.HasPermission(viewer.Permissions, dbm.PermApproveAccounting) {
		return resp.RequestPage{}, utils.ErrPermissionDenied
	}

	items, err := s.requestRepo.ListByStatuses(ctx, []dbm.RequestStatus{dbm.StatusPendingAccounting, dbm.StatusPendingVouchers, dbm.StatusPendingRefund})
	if err != nil {
		s.logger.Error().Err(err).Msg("to-approve-SOI fetch failed")
		return resp.RequestPage{}, utils.ErrDatabaseError
	}

	awaiting := make([]dbm.TravelRequest, 0, len(items))
	for _, item := range items {
		if item.AccountantID == nil || *item.AccountantID == viewer.ID {
			awaiting = append(awaiting, item)
		}
	}
	return buildPage(awaiting, page, pageSize), nil
}

func (s *RequestService) ListToReserve(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error) {
	if !dbm.HasPermission(viewer.Permissions, dbm.PermMakeReservations) {
		return resp.RequestPage{}, utils.ErrPermissionDenied
	}

	items, err := s.requestRepo.ListByStatuses(ctx, []dbm.RequestStatus{dbm.StatusPendingReservations})
	if err != nil {
		s.logger.Error().Err(err).Msg("to-reserve fetch failed")
		return resp.RequestPage{}, utils.ErrDatabaseError
	}
	return buildPage(items, page, pageSize), nil
}

func (s *RequestService) ListAll(ctx context.Context, viewer Viewer, page, pageSize int) (resp.RequestPage, error) {
	if !dbm.HasPermission(viewer.Permissions, dbm.PermViewAllRequests) {
		return resp.RequestPage{}, utils.ErrPermissionDenied
	}

	items, err := s.fetchAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("all-requests fetch failed")
		return resp.RequestPage{}, utils.ErrDatabaseError
	}
	return buildPage(items, page, pageSize), nil
}

// Transition moves a request along the status state machine. The table in
// db_models owns which edges exist; this method owns who may take them.
func (s *RequestService) Transition(ctx context.Context, viewer Viewer, requestId string, newStatus string) error {
	status := dbm.RequestStatus(newStatus)
	if !status.Valid() {
		return utils.ErrInvalidStatus
	}

	request, err := s.requestRepo.GetById(ctx, requestId)
	if err != nil {
		s.logger.Error().Err(err).Str("request_id", requestId).Msg("travel request lookup failed")
		return utils.ErrDatabaseError
	}
	if request == nil {
		return utils.ErrRequestNotFound
	}

	if !dbm.CanTransition(request.Status, status) {
		return utils.ErrInvalidTransition
	}

	owner := request.RequesterID == viewer.ID
	var adminId, accountantId *uuid.UUID

	switch request.Status {
	case dbm.StatusPendingReview:
		// The requester may withdraw; every other edge is a review decision.
		if !(status == dbm.StatusCancelled && owner) {
			if !dbm.HasPermission(viewer.Permissions, dbm.PermApproveRequest) {
				return utils.ErrPermissionDenied
			}
			id := viewer.ID
			adminId = &id
		}
	case dbm.StatusChangesNeeded, dbm.StatusInProgress:
		if !owner {
			return utils.ErrPermissionDenied
		}
	case dbm.StatusPendingReservations:
		if !(status == dbm.StatusCancelled && owner) {
			if !dbm.HasPermission(viewer.Permissions, dbm.PermMakeReservations) {
				return utils.ErrPermissionDenied
			}
		}
	case dbm.StatusPendingAccounting, dbm.StatusPendingVouchers, dbm.StatusPendingRefund:
		if !(status == dbm.StatusCancelled && owner) {
			if !dbm.HasPermission(viewer.Permissions, dbm.PermApproveAccounting) {
				return utils.ErrPermissionDenied
			}
			id := viewer.ID
			accountantId = &id
		}
	default:
		return utils.ErrInvalidTransition
	}

	if err := s.requestRepo.SetStatus(ctx, request.ID, status, adminId, accountantId); err != nil {
		s.logger.Error().Err(err).Str("request_id", requestId).Msg("status update failed")
		return utils.ErrDatabaseError
	}

	s.invalidateLists(ctx)
	return nil
}

func (s *RequestService) fetchAll(ctx context.Context) ([]dbm.TravelRequest, error) {
	var cached []dbm.TravelRequest
	if ok, _ := s.cache.Get(ctx, allRequestsCacheKey, &cached); ok {
		return cached, nil
	}

	items, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, allRequestsCacheKey, items, listCacheTTLSec); err != nil {
		s.logger.Warn().Err(err).Msg("request list cache set failed")
	}
	return items, nil
}

// invalidateLists drops the cached request collection so the next list
// read refetches. Last write/invalidate wins; concurrent in-flight reads
// may still observe the previous value.
func (s *RequestService) invalidateLists(ctx context.Context) {
	if err := s.cache.Del(ctx, allRequestsCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("request list cache invalidation failed")
	}
}

func buildTravelRequestResponse(r *dbm.TravelRequest) *resp.TravelRequestResponse {
	legs := make([]dbm.DestinationLeg, len(r.Destinations))
	copy(legs, r.Destinations)
	sort.Slice(legs, func(i, j int) bool {
		return legs[i].DestinationOrder < legs[j].DestinationOrder
	})

	legResponses := make([]resp.DestinationLegResponse, 0, len(legs))
	for _, leg := range legs {
		label := ""
		if leg.Destination != nil {
			label = leg.Destination.Label()
		}
		legResponses = append(legResponses, resp.DestinationLegResponse{
			ID:                leg.ID.String(),
			DestinationID:     leg.DestinationID.String(),
			Label:             label,
			DestinationOrder:  leg.DestinationOrder,
			StayDays:          leg.StayDays,
			Arrival:           utils.FormatInstant(leg.Arrival),
			Departure:         utils.FormatInstant(leg.Departure),
			HotelNeeded:       leg.HotelNeeded,
			FlightNeeded:      leg.FlightNeeded,
			IsLastDestination: leg.IsLastDestination,
			Details:           leg.Details,
		})
	}

	originLabel := ""
	if r.Origin != nil {
		originLabel = r.Origin.Label()
	}

	return &resp.TravelRequestResponse{
		ID:            r.ID.String(),
		RequesterID:   r.RequesterID.String(),
		OriginID:      r.OriginID.String(),
		OriginLabel:   originLabel,
		Title:         r.Title,
		Motive:        r.Motive,
		Requirements:  r.Requirements,
		Priority:      string(r.Priority),
		AdvanceAmount: r.AdvanceAmount,
		Status:        string(r.Status),
		Badge:         dbm.BadgeFor(r.Status),
		Destinations:  legResponses,
		CreatedAt:     r.CreatedAt,
	}
}

func buildListItem(r dbm.TravelRequest) resp.TravelRequestListItem {
	departure := ""
	if first := r.FirstLeg(); first != nil {
		departure = utils.FormatDate(first.Arrival)
	}

	adminId := ""
	if r.AdminID != nil {
		adminId = r.AdminID.String()
	}
	accountantId := ""
	if r.AccountantID != nil {
		accountantId = r.AccountantID.String()
	}

	return resp.TravelRequestListItem{
		ID:            r.ID.String(),
		RequesterID:   r.RequesterID.String(),
		AdminID:       adminId,
		AccountantID:  accountantId,
		Title:         r.Title,
		Motive:        r.Motive,
		Priority:      string(r.Priority),
		Status:        string(r.Status),
		Badge:         dbm.BadgeFor(r.Status),
		DepartureDate: departure,
		CreatedAt:     r.CreatedAt,
	}
}

func buildPage(items []dbm.TravelRequest, page, pageSize int) resp.RequestPage {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	rows := make([]resp.TravelRequestListItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, buildListItem(item))
	}

	pageRows, effectivePage := utils.Paginate(rows, page, pageSize)
	totalPages := (len(rows) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return resp.RequestPage{
		Items:      pageRows,
		Page:       effectivePage,
		PageSize:   pageSize,
		TotalItems: len(rows),
		TotalPages: totalPages,
	}
}
