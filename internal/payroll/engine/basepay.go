package engine

import "github.com/shopspring/decimal"

var two = decimal.NewFromInt(2)

// BasePay is credit-driven for daily employees and cycle-driven for monthly
// ones: half the monthly rate on a split cycle, the full rate otherwise.
func BasePay(in Input, totalCredit decimal.Decimal) decimal.Decimal {
	if in.SalaryType == SalaryMonthly {
		if in.Cutoff.SemiMonthly {
			return in.MonthlyRate.Div(two).Round(2)
		}
		return in.MonthlyRate.Round(2)
	}
	return totalCredit.Mul(in.DailyRate).Round(2)
}

// EffectiveBase applies the commission override: commission replaces the
// base when the employee is commission-based and commission is larger. It
// never adds on top.
func EffectiveBase(in Input, basePay decimal.Decimal) decimal.Decimal {
	if in.CommissionBased && in.Commission.GreaterThan(basePay) {
		return in.Commission.Round(2)
	}
	return basePay
}
