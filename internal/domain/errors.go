package domain

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
	ErrConflict  = errors.New("conflict")

	ErrInvalidDecision = errors.New("final decision must be Approved or Rejected")
	ErrInvalidStatus   = errors.New("status must be Approved or Rejected")
	ErrInvalidSection  = errors.New("unknown section")
)
