package db_models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{"review to reservations", StatusPendingReview, StatusPendingReservations, true},
		{"review to denied", StatusPendingReview, StatusDenied, true},
		{"review to changes needed", StatusPendingReview, StatusChangesNeeded, true},
		{"review to cancelled", StatusPendingReview, StatusCancelled, true},
		{"review cannot skip to accounting", StatusPendingReview, StatusPendingAccounting, false},
		{"changes needed back to review", StatusChangesNeeded, StatusPendingReview, true},
		{"reservations to accounting", StatusPendingReservations, StatusPendingAccounting, true},
		{"accounting to vouchers", StatusPendingAccounting, StatusPendingVouchers, true},
		{"accounting may deny", StatusPendingAccounting, StatusDenied, true},
		{"vouchers to in progress", StatusPendingVouchers, StatusInProgress, true},
		{"in progress to refund", StatusInProgress, StatusPendingRefund, true},
		{"in progress cannot cancel", StatusInProgress, StatusCancelled, false},
		{"refund to completed", StatusPendingRefund, StatusCompleted, true},
		{"denied is terminal", StatusDenied, StatusPendingReview, false},
		{"cancelled is terminal", StatusCancelled, StatusPendingReview, false},
		{"completed is terminal", StatusCompleted, StatusInProgress, false},
		{"legacy approved is terminal", StatusApproved, StatusPendingReservations, false},
		{"no self loop", StatusPendingReview, StatusPendingReview, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestEveryStatusHasABadge(t *testing.T) {
	statuses := []RequestStatus{
		StatusPendingReview, StatusDenied, StatusCancelled, StatusChangesNeeded,
		StatusPendingReservations, StatusPendingAccounting, StatusPendingVouchers,
		StatusInProgress, StatusPendingRefund, StatusCompleted, StatusApproved,
	}
	for _, s := range statuses {
		if !s.Valid() {
			t.Errorf("%q should be a valid status", s)
		}
		b := BadgeFor(s)
		if b.Label == "" || b.Style == "" {
			t.Errorf("badge for %q is incomplete: %+v", s, b)
		}
	}
}

func TestBadgeForUnknownStatusFallsBack(t *testing.T) {
	b := BadgeFor("Shipped")
	if b.Label != "Shipped" || b.Style != "secondary" {
		t.Errorf("fallback badge = %+v", b)
	}
	if RequestStatus("Shipped").Valid() {
		t.Error("unknown status must not be valid")
	}
}

func TestTransitionTargetsAreValidStatuses(t *testing.T) {
	for from, edges := range statusTransitions {
		if !from.Valid() {
			t.Errorf("transition source %q is not a known status", from)
		}
		for _, to := range edges {
			if !to.Valid() {
				t.Errorf("transition %q -> %q targets an unknown status", from, to)
			}
		}
	}
}
