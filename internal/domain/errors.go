// Package domain holds the error vocabulary shared by the booking core.
package domain

import "errors"

var (
	ErrInvalidInterval   = errors.New("booking interval must cover at least one whole hour")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidInvitee    = errors.New("invitee is already a participant")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrMemberNotFound    = errors.New("member not found")
	ErrCourtNotFound     = errors.New("court not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrGroupNotFound     = errors.New("group booking not found")
	ErrNotGroupMember    = errors.New("member has no share in this group booking")
	ErrSlotTaken         = errors.New("court is already booked for this time slot")
	ErrShareAlreadyPaid  = errors.New("share is already paid")
	ErrCancelTooLate     = errors.New("booking has already started")
)
