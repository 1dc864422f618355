package bookings

import (
	"testing"

	"eventease/models"
)

func opt(category, name string, price float64) models.CustomizationOption {
	return models.CustomizationOption{Category: category, Name: name, Price: price}
}

func TestSelectOptionReplacesSameCategory(t *testing.T) {
	sel := []models.CustomizationOption{}
	sel = SelectOption(sel, opt("catering", "Standard Buffet", 25))
	sel = SelectOption(sel, opt("decoration", "Floral", 400))
	sel = SelectOption(sel, opt("catering", "Premium Buffet", 40))

	if len(sel) != 2 {
		t.Fatalf("expected 2 options after replacement, got %d", len(sel))
	}
	for _, o := range sel {
		if o.Category == "catering" && o.Name != "Premium Buffet" {
			t.Fatalf("catering option not replaced, got %q", o.Name)
		}
	}
}

func TestOptionCost(t *testing.T) {
	if got := OptionCost(opt("catering", "Buffet", 25), 80); got != 2000 {
		t.Fatalf("catering should scale with guests: got %v, want 2000", got)
	}
	if got := OptionCost(opt("decoration", "Floral", 400), 80); got != 400 {
		t.Fatalf("non-catering should be flat: got %v, want 400", got)
	}
}

func TestComputeTotal(t *testing.T) {
	opts := []models.CustomizationOption{
		opt("catering", "Buffet", 25),
		opt("decoration", "Floral", 400),
		opt("music", "DJ", 600),
	}
	// 1500 + 25*50 + 400 + 600
	got := ComputeTotal(1500, opts, 50)
	if got != 3750 {
		t.Fatalf("ComputeTotal = %v, want 3750", got)
	}
}

func TestComputeTotalNoOptions(t *testing.T) {
	if got := ComputeTotal(999, nil, 10); got != 999 {
		t.Fatalf("ComputeTotal with no options = %v, want 999", got)
	}
}
