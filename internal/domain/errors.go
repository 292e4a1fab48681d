package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories, services and HTTP controllers.
var (
	// ErrNotFound is returned when an event, member or RSVP does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyAttending is returned by RSVPRepository.Create when the (member, event) pair
	// already has an RSVP. RSVPService.Confirm treats it as success.
	ErrAlreadyAttending = errors.New("already attending")

	// ErrDuplicateEmail is returned when creating a member whose email is already registered.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrRSVPConflict is returned by RSVPService.Confirm when concurrent cancels keep
	// removing the row it is trying to confirm.
	ErrRSVPConflict = errors.New("rsvp changed concurrently")
)

// ErrEventNotFound and ErrMemberNotFound say which side of an RSVP could not be
// resolved. Both match ErrNotFound with errors.Is.
var (
	ErrEventNotFound  = fmt.Errorf("event %w", ErrNotFound)
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)
)
