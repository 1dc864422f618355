package bookings

import "eventease/models"

// SelectOption adds opt to the selection, replacing any previously chosen
// option of the same category. At most one option per category survives.
func SelectOption(current []models.CustomizationOption, opt models.CustomizationOption) []models.CustomizationOption {
	out := make([]models.CustomizationOption, 0, len(current)+1)
	for _, c := range current {
		if c.Category != opt.Category {
			out = append(out, c)
		}
	}
	return append(out, opt)
}

// OptionCost is the contribution of one option to the total: catering is
// priced per guest, everything else is flat.
func OptionCost(opt models.CustomizationOption, guestCount int) float64 {
	if opt.Category == "catering" {
		return opt.Price * float64(guestCount)
	}
	return opt.Price
}

// ComputeTotal freezes the booking price at submission time: base package
// price plus every chosen option's cost. It is never recomputed afterwards.
func ComputeTotal(basePrice float64, opts []models.CustomizationOption, guestCount int) float64 {
	total := basePrice
	for _, o := range opts {
		total += OptionCost(o, guestCount)
	}
	return total
}
