package bookings

import "testing"

func TestCanTransitionForwardPath(t *testing.T) {
	steps := []struct{ from, to string }{
		{StatusPending, StatusAwaitingPayment},
		{StatusAwaitingPayment, StatusConfirmed},
		{StatusConfirmed, StatusInProgress},
		{StatusInProgress, StatusCompleted},
	}
	for _, s := range steps {
		if !CanTransition(s.from, s.to) {
			t.Errorf("expected %s -> %s to be allowed", s.from, s.to)
		}
	}
}

func TestCanTransitionNoSkipsOrBackwards(t *testing.T) {
	denied := []struct{ from, to string }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCompleted},
		{StatusAwaitingPayment, StatusInProgress},
		{StatusConfirmed, StatusPending},
		{StatusInProgress, StatusConfirmed},
		{StatusCompleted, StatusInProgress},
	}
	for _, s := range denied {
		if CanTransition(s.from, s.to) {
			t.Errorf("expected %s -> %s to be denied", s.from, s.to)
		}
	}
}

func TestCanTransitionRejection(t *testing.T) {
	for _, from := range []string{StatusPending, StatusAwaitingPayment, StatusConfirmed, StatusInProgress} {
		if !CanTransition(from, StatusRejected) {
			t.Errorf("expected %s -> rejected to be allowed", from)
		}
	}
	if CanTransition(StatusCompleted, StatusRejected) {
		t.Error("completed bookings must not be rejectable")
	}
	if CanTransition(StatusRejected, StatusPending) {
		t.Error("rejected is terminal")
	}
}

func TestCanTransitionSelfAndUnknown(t *testing.T) {
	if CanTransition(StatusPending, StatusPending) {
		t.Error("self-transition must be denied")
	}
	if CanTransition("pending", "cancelled") {
		t.Error("unknown status must be denied")
	}
	if CanTransition("archived", "pending") {
		t.Error("unknown source must be denied")
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(StatusCompleted) || !IsTerminal(StatusRejected) {
		t.Error("completed and rejected are terminal")
	}
	if IsTerminal(StatusPending) || IsTerminal(StatusInProgress) {
		t.Error("pending and in-progress are not terminal")
	}
}

func TestStatusMessage(t *testing.T) {
	got := StatusMessage("Gold Wedding", StatusConfirmed)
	want := `The status of your booking for "Gold Wedding" has been updated to confirmed.`
	if got != want {
		t.Fatalf("StatusMessage = %q, want %q", got, want)
	}

	got = StatusMessage("Gold Wedding", StatusAwaitingPayment)
	want = `The status of your booking for "Gold Wedding" has been updated to awaiting payment.`
	if got != want {
		t.Fatalf("StatusMessage = %q, want %q", got, want)
	}
}
