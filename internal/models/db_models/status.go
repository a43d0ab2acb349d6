package db_models

type RequestStatus string

const (
	StatusPendingReview       RequestStatus = "Pending Review"
	StatusDenied              RequestStatus = "Denied"
	StatusCancelled           RequestStatus = "Cancelled"
	StatusChangesNeeded       RequestStatus = "Changes Needed"
	StatusPendingReservations RequestStatus = "Pending Reservations"
	StatusPendingAccounting   RequestStatus = "Pending Accounting Approval"
	StatusPendingVouchers     RequestStatus = "Pending Vouchers Approval"
	StatusInProgress          RequestStatus = "In Progress"
	StatusPendingRefund       RequestStatus = "Pending Refund Approval"
	StatusCompleted           RequestStatus = "Completed"

	// StatusApproved predates the reservation stages and still appears on
	// historical records; it takes part in badge rendering and decided-
	// history filtering but not in new transitions.
	StatusApproved RequestStatus = "Approved"
)

func (s RequestStatus) Valid() bool {
	_, ok := statusBadges[s]
	return ok
}

// StatusBadge is the fixed label/style pair a status renders as. The
// mapping is shared by every list view so a given status always shows
// the same badge.
type StatusBadge struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

var statusBadges = map[RequestStatus]StatusBadge{
	StatusPendingReview:       {Label: "Pending Review", Style: "warning"},
	StatusDenied:              {Label: "Denied", Style: "danger"},
	StatusCancelled:           {Label: "Cancelled", Style: "secondary"},
	StatusChangesNeeded:       {Label: "Changes Needed", Style: "warning"},
	StatusPendingReservations: {Label: "Pending Reservations", Style: "info"},
	StatusPendingAccounting:   {Label: "Pending Accounting Approval", Style: "info"},
	StatusPendingVouchers:     {Label: "Pending Vouchers Approval", Style: "info"},
	StatusInProgress:          {Label: "In Progress", Style: "primary"},
	StatusPendingRefund:       {Label: "Pending Refund Approval", Style: "info"},
	StatusCompleted:           {Label: "Completed", Style: "success"},
	StatusApproved:            {Label: "Approved", Style: "success"},
}

func BadgeFor(s RequestStatus) StatusBadge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return StatusBadge{Label: string(s), Style: "secondary"}
}

var statusTransitions = map[RequestStatus][]RequestStatus{
	StatusPendingReview:       {StatusDenied, StatusCancelled, StatusChangesNeeded, StatusPendingReservations},
	StatusChangesNeeded:       {StatusPendingReview, StatusCancelled},
	StatusPendingReservations: {StatusPendingAccounting, StatusCancelled},
	StatusPendingAccounting:   {StatusPendingVouchers, StatusDenied, StatusCancelled},
	StatusPendingVouchers:     {StatusInProgress, StatusCancelled},
	StatusInProgress:          {StatusPendingRefund},
	StatusPendingRefund:       {StatusCompleted},
}

// CanTransition reports whether a request may move from one status to
// another. Terminal statuses (Denied, Cancelled, Completed, Approved)
// have no outgoing edges.
func CanTransition(from, to RequestStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
