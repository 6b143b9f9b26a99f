package repository

import "errors"

// ErrClassNotFound is returned when a referenced class does not exist. Fatal
// for booking creation, tolerated by cancel/delete.
var ErrClassNotFound = errors.New("class not found")

// ErrClassFull is returned when a class has no remaining capacity, re-checked
// inside the booking transaction.
var ErrClassFull = errors.New("class is fully booked")

// ErrBookingNotFound is returned when a booking vanished between read and use.
var ErrBookingNotFound = errors.New("booking not found")

// ErrInvalidTransition is returned when a requested status change is not an
// allowed lifecycle edge.
var ErrInvalidTransition = errors.New("invalid booking status transition")

// ErrConflict is returned after a transaction lost its serialization conflict
// retry. The operation left no partial state and can be re-submitted.
var ErrConflict = errors.New("transaction conflict")

// ErrEmailTaken is returned when registering with an email that already has a
// profile.
var ErrEmailTaken = errors.New("email already registered")

// ErrInstructorNotFound is returned when a referenced instructor does not
// exist. Display paths degrade to the raw id instead.
var ErrInstructorNotFound = errors.New("instructor not found")

// ErrUserNotFound is returned when a session points at a profile that no
// longer exists.
var ErrUserNotFound = errors.New("user not found")
