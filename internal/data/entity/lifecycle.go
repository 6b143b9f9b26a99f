package entity

type statusTransition struct {
	From BookingStatus
	To   BookingStatus
}

// allowedTransitions is the booking lifecycle edge table. Cancelled is
// terminal; deletion is a separate action legal from any state.
var allowedTransitions = map[statusTransition]bool{
	{From: BookingStatusPending, To: BookingStatusConfirmed}:   true,
	{From: BookingStatusPending, To: BookingStatusCancelled}:   true,
	{From: BookingStatusConfirmed, To: BookingStatusCancelled}: true,
}

// CanTransition reports whether from -> to is an allowed lifecycle edge.
func CanTransition(from, to BookingStatus) bool {
	return allowedTransitions[statusTransition{From: from, To: to}]
}

// Occupying reports whether a booking in the given status holds a slot in its
// class's booked count.
func Occupying(status BookingStatus) bool {
	return status == BookingStatusPending || status == BookingStatusConfirmed
}
