package entity

// SlotPlan is the write decision of one slot-ledger operation, computed from
// state read inside the transaction before any write is issued. Keeping the
// decision pure means the executor only has to apply it, and the invariants
// can be tested without a database.
type SlotPlan struct {
	// Decrement says the class's booked_slots must go down by one.
	Decrement bool
}

// PlanStatusChange decides the slot effect of setting a booking to newStatus.
// The decrement fires only on the first transition out of an occupying state,
// only to cancelled, only when the class still exists, and never drives the
// counter below zero.
func PlanStatusChange(oldStatus, newStatus BookingStatus, class *Class) SlotPlan {
	if class == nil {
		return SlotPlan{}
	}
	return SlotPlan{
		Decrement: Occupying(oldStatus) &&
			newStatus == BookingStatusCancelled &&
			class.BookedSlots > 0,
	}
}

// PlanDeletion decides the slot effect of deleting a booking whose status at
// deletion time is status. Clamped at zero like PlanStatusChange.
func PlanDeletion(status BookingStatus, class *Class) SlotPlan {
	if class == nil {
		return SlotPlan{}
	}
	return SlotPlan{
		Decrement: Occupying(status) && class.BookedSlots > 0,
	}
}
