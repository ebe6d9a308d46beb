package engine

import "github.com/shopspring/decimal"

var (
	twelve          = decimal.NewFromInt(12)
	daysPerYear     = decimal.NewFromInt(365)
	workHoursPerDay = decimal.NewFromInt(8)
)

// LateDeduction annualizes the monthly rate, derives an hourly rate, and
// charges the reported late hours against the half-month salary. Applies to
// monthly-salary rows only; daily rows return zeros.
func LateDeduction(in Input, basePay decimal.Decimal) (late, salaryAfterLate decimal.Decimal) {
	if in.SalaryType != SalaryMonthly {
		return decimal.Zero, basePay
	}

	dailyRate := in.MonthlyRate.Mul(twelve).Div(daysPerYear).Round(2)
	hourlyRate := dailyRate.Div(workHoursPerDay).Round(2)
	late = hourlyRate.Mul(in.LateHours).Round(2)

	salaryAfterLate = basePay.Sub(late)
	if salaryAfterLate.IsNegative() {
		salaryAfterLate = decimal.Zero
	}
	return late, salaryAfterLate.Round(2)
}
