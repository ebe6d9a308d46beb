package engine

import "github.com/shopspring/decimal"

// ContributionShares resolves the three statutory employee shares for the
// cutoff. Semi-monthly profiles halve the raw share every cutoff; monthly
// profiles pay the full share only on the second cutoff of the month. An
// enabled override replaces the computed figure outright.
func ContributionShares(c ContributionInput, cutoff Cutoff) (sss, philhealth, pagibig decimal.Decimal) {
	sss = shareFor(c.SSS, c.DeductionType, cutoff)
	philhealth = shareFor(c.PhilHealth, c.DeductionType, cutoff)
	pagibig = shareFor(c.PagIBIG, c.DeductionType, cutoff)
	return sss, philhealth, pagibig
}

func shareFor(field ContributionField, deductionType string, cutoff Cutoff) decimal.Decimal {
	if field.Override {
		return field.OverrideAmount.Round(2)
	}

	switch deductionType {
	case DeductionMonthly:
		if cutoff.SecondHalf() {
			return field.RawShare.Round(2)
		}
		return decimal.Zero
	default:
		return field.RawShare.Div(two).Round(2)
	}
}
