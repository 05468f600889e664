package entities

import "errors"

// Domain errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrJobNotFound     = errors.New("processing job not found")
	ErrJobNotClaimable = errors.New("processing job already claimed")
	ErrInvalidRequest  = errors.New("invalid request")
)
