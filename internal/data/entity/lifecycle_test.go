package entity

import "testing"

func TestCanTransition_PendingToConfirmed(t *testing.T) {
	if !CanTransition(BookingStatusPending, BookingStatusConfirmed) {
		t.Fatalf("pending -> confirmed should be allowed")
	}
}

func TestCanTransition_OccupyingToCancelled(t *testing.T) {
	if !CanTransition(BookingStatusPending, BookingStatusCancelled) {
		t.Fatalf("pending -> cancelled should be allowed")
	}
	if !CanTransition(BookingStatusConfirmed, BookingStatusCancelled) {
		t.Fatalf("confirmed -> cancelled should be allowed")
	}
}

func TestCanTransition_CancelledIsTerminal(t *testing.T) {
	if CanTransition(BookingStatusCancelled, BookingStatusConfirmed) {
		t.Fatalf("cancelled -> confirmed must not be allowed")
	}
	if CanTransition(BookingStatusCancelled, BookingStatusPending) {
		t.Fatalf("cancelled -> pending must not be allowed")
	}
}

func TestCanTransition_NoDemotion(t *testing.T) {
	if CanTransition(BookingStatusConfirmed, BookingStatusPending) {
		t.Fatalf("confirmed -> pending must not be allowed")
	}
}

func TestOccupying(t *testing.T) {
	if !Occupying(BookingStatusPending) || !Occupying(BookingStatusConfirmed) {
		t.Fatalf("pending and confirmed bookings hold a slot")
	}
	if Occupying(BookingStatusCancelled) {
		t.Fatalf("cancelled bookings must not hold a slot")
	}
}
