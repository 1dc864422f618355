package bookings

import "strings"

const (
	StatusPending         = "pending"
	StatusAwaitingPayment = "awaiting-payment"
	StatusConfirmed       = "confirmed"
	StatusInProgress      = "in-progress"
	StatusCompleted       = "completed"
	StatusRejected        = "rejected"
)

var AllStatuses = []string{
	StatusPending,
	StatusAwaitingPayment,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusRejected,
}

func IsValidStatus(s string) bool {
	for _, st := range AllStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// forward is the happy-path successor of each status. Rejection is reachable
// from every non-terminal status; completed and rejected accept nothing.
var forward = map[string]string{
	StatusPending:         StatusAwaitingPayment,
	StatusAwaitingPayment: StatusConfirmed,
	StatusConfirmed:       StatusInProgress,
	StatusInProgress:      StatusCompleted,
}

func IsTerminal(s string) bool {
	return s == StatusCompleted || s == StatusRejected
}

// CanTransition reports whether an admin may move a booking from one status
// to another: one step forward, or to rejected from any non-terminal state.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) || from == to {
		return false
	}
	if IsTerminal(from) {
		return false
	}
	if to == StatusRejected {
		return true
	}
	return forward[from] == to
}

// StatusMessage is the human-readable notification text sent to the client
// on every successful transition.
func StatusMessage(packageName, newStatus string) string {
	return "The status of your booking for \"" + packageName + "\" has been updated to " +
		strings.ReplaceAll(newStatus, "-", " ") + "."
}
