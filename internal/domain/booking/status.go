package booking

import "github.com/cheflinkhq/chef-marketplace/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// transitions is the single source of truth for the lifecycle:
//
//	pending ──confirm──> confirmed ──complete──> completed
//	   │
//	   └──reject──> rejected
//
// rejected and completed are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusCompleted},
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether current -> next is a legal move.
// Redundant moves (confirming an already-confirmed booking) are illegal
// too; callers surface them as a conflict rather than silently accepting.
func CanTransition(current, next Status) error {
	for _, allowed := range transitions[current] {
		if allowed == next {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

func InitialStatus() Status {
	return StatusPending
}
