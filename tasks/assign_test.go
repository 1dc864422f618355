package tasks

import (
	"testing"

	"eventease/models"
)

func TestTaskTitle(t *testing.T) {
	got := TaskTitle("catering", "Gold Wedding")
	if got != "Catering for Gold Wedding" {
		t.Fatalf("TaskTitle = %q", got)
	}
}

func TestTaskDescription(t *testing.T) {
	got := TaskDescription("photography", "Alice")
	if got != "Handle photography for Alice's event." {
		t.Fatalf("TaskDescription = %q", got)
	}
}

func TestAssignmentLogMessage(t *testing.T) {
	got := AssignmentLogMessage("Bob's Catering", "catering", "Gold Wedding")
	want := `Admin assigned Bob's Catering to the catering task for "Gold Wedding".`
	if got != want {
		t.Fatalf("AssignmentLogMessage = %q, want %q", got, want)
	}
}

func TestCategoryTaken(t *testing.T) {
	existing := []models.VendorTask{
		{BookingID: "bkg1", VendorID: "v1", Category: "catering"},
		{BookingID: "bkg1", VendorID: "v2", Category: "photography"},
	}
	if !CategoryTaken(existing, "catering") {
		t.Error("second catering assignment must be rejected")
	}
	// A different vendor does not free the slot.
	if !CategoryTaken(existing, "photography") {
		t.Error("occupied category stays occupied regardless of vendor")
	}
	if CategoryTaken(existing, "decoration") {
		t.Error("unassigned category should be free")
	}
	if CategoryTaken(nil, "catering") {
		t.Error("booking with no tasks has every category free")
	}
}

func TestDateBlocked(t *testing.T) {
	unavailable := []string{"2026-10-01", "2026-10-15"}
	if !DateBlocked(unavailable, "2026-10-15") {
		t.Error("expected 2026-10-15 to be blocked")
	}
	if DateBlocked(unavailable, "2026-10-02") {
		t.Error("expected 2026-10-02 to be free")
	}
	if DateBlocked(nil, "2026-10-02") {
		t.Error("empty set blocks nothing")
	}
}

func TestClientRequirements(t *testing.T) {
	if got := ClientRequirements(""); got != "No specific requirements provided." {
		t.Fatalf("empty requirements = %q", got)
	}
	if got := ClientRequirements("vegan menu"); got != "vegan menu" {
		t.Fatalf("requirements passthrough = %q", got)
	}
}

func TestIsValidTaskStatus(t *testing.T) {
	for _, s := range []string{StatusAssigned, StatusInProgress, StatusCompleted} {
		if !IsValidTaskStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []string{"pending", "done", ""} {
		if IsValidTaskStatus(s) {
			t.Errorf("%s should be invalid", s)
		}
	}
}
