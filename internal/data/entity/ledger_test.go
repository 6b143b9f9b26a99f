package entity

import "testing"

func classWith(capacity, booked int) *Class {
	return &Class{Capacity: capacity, BookedSlots: booked}
}

func TestPlanStatusChange_CancelConfirmedDecrements(t *testing.T) {
	plan := PlanStatusChange(BookingStatusConfirmed, BookingStatusCancelled, classWith(10, 5))
	if !plan.Decrement {
		t.Fatalf("cancelling a confirmed booking must release its slot")
	}
}

func TestPlanStatusChange_CancelPendingDecrements(t *testing.T) {
	plan := PlanStatusChange(BookingStatusPending, BookingStatusCancelled, classWith(10, 1))
	if !plan.Decrement {
		t.Fatalf("cancelling a pending booking must release its slot")
	}
}

func TestPlanStatusChange_SecondCancelIsNoop(t *testing.T) {
	// The first cancel already moved the booking out of an occupying state,
	// so a repeated cancel must not decrement again.
	plan := PlanStatusChange(BookingStatusCancelled, BookingStatusCancelled, classWith(10, 4))
	if plan.Decrement {
		t.Fatalf("repeated cancellation must decrement exactly once overall")
	}
}

func TestPlanStatusChange_ClampsAtZero(t *testing.T) {
	plan := PlanStatusChange(BookingStatusConfirmed, BookingStatusCancelled, classWith(10, 0))
	if plan.Decrement {
		t.Fatalf("booked slots must never go below zero")
	}
}

func TestPlanStatusChange_MissingClassTolerated(t *testing.T) {
	plan := PlanStatusChange(BookingStatusConfirmed, BookingStatusCancelled, nil)
	if plan.Decrement {
		t.Fatalf("no class, nothing to decrement")
	}
}

func TestPlanStatusChange_ConfirmDoesNotDecrement(t *testing.T) {
	plan := PlanStatusChange(BookingStatusPending, BookingStatusConfirmed, classWith(10, 5))
	if plan.Decrement {
		t.Fatalf("confirming keeps the slot occupied")
	}
}

func TestPlanDeletion_OccupyingDecrements(t *testing.T) {
	plan := PlanDeletion(BookingStatusConfirmed, classWith(10, 5))
	if !plan.Decrement {
		t.Fatalf("deleting a confirmed booking must release its slot")
	}
}

func TestPlanDeletion_CancelledDoesNotDecrement(t *testing.T) {
	plan := PlanDeletion(BookingStatusCancelled, classWith(10, 5))
	if plan.Decrement {
		t.Fatalf("a cancelled booking already released its slot")
	}
}

func TestPlanDeletion_ClampsAtZero(t *testing.T) {
	plan := PlanDeletion(BookingStatusConfirmed, classWith(10, 0))
	if plan.Decrement {
		t.Fatalf("booked slots must never go below zero")
	}
}

func TestFilterOpen(t *testing.T) {
	full := classWith(10, 10)
	open := classWith(10, 9)
	over := classWith(5, 6)

	got := FilterOpen([]*Class{full, open, over})
	if len(got) != 1 || got[0] != open {
		t.Fatalf("expected only the class with spots left, got %d classes", len(got))
	}
}

func TestSpotsLeft(t *testing.T) {
	c := classWith(10, 9)
	if c.SpotsLeft() != 1 {
		t.Fatalf("spots left = %d, want 1", c.SpotsLeft())
	}
	if !c.HasOpenSlots() {
		t.Fatalf("one spot left means open")
	}
	c.BookedSlots = 10
	if c.HasOpenSlots() {
		t.Fatalf("full class must not be open")
	}
}
