package http

import (
	"strings"

	"github.com/atharvrajmane/channel-partner-form-backend/internal/domain"
)

const (
	MsgInvalidID   = "invalid id"
	MsgInvalidJSON = "invalid JSON"
	MsgValidation  = "validation error"
	MsgNotFound    = "partner not found"
	MsgInternal    = "internal error"
	MsgConflict    = "conflict"

	MsgInvalidDecision = "final_decision must be one of: Approved, Rejected"
	MsgInvalidStatus   = "status must be one of: Approved, Rejected"

	MsgPartnerCreated  = "partner created"
	MsgPartnerDeleted  = "partner deleted"
	MsgDecisionUpdated = "final decision updated"
	MsgSectionUpdated  = "section status updated"
	MsgDocumentAdded   = "document added"
)

// MsgInvalidSection names the full allow-list so callers can correct the
// request without consulting docs.
func MsgInvalidSection() string {
	return "section must be one of: " + strings.Join(domain.Sections, ", ")
}
