package engine

import "github.com/shopspring/decimal"

// LoanDeductionsFor resolves the per-cutoff deduction of every loan. Journal
// credits inside the cutoff take precedence over the schedule; the result is
// always clamped to the remaining balance, and skipped loans contribute zero
// while keeping their balance untouched.
func LoanDeductionsFor(loans []LoanInput, cutoff Cutoff) ([]LoanDeduction, decimal.Decimal) {
	deductions := make([]LoanDeduction, 0, len(loans))
	total := decimal.Zero

	for _, loan := range loans {
		d := LoanDeduction{LoanID: loan.ID, Skipped: loan.Skipped}
		if loan.Skipped {
			d.Amount = decimal.Zero
			deductions = append(deductions, d)
			continue
		}

		scheduled := scheduledAmount(loan, cutoff)
		if loan.HasJournalCredit {
			scheduled = loan.JournalCreditInRange
		}

		if scheduled.GreaterThan(loan.Balance) {
			scheduled = loan.Balance
		}
		d.Amount = scheduled.Round(2)

		deductions = append(deductions, d)
		total = total.Add(d.Amount)
	}

	return deductions, total.Round(2)
}

func scheduledAmount(loan LoanInput, cutoff Cutoff) decimal.Decimal {
	switch loan.Schedule {
	case ScheduleCurrentPayroll:
		return loan.PayablePerTerm
	case ScheduleMonthly:
		if !cutoff.SemiMonthly {
			return loan.PayablePerTerm
		}
		if cutoff.SecondHalf() {
			return loan.PayablePerTerm
		}
		return decimal.Zero
	case ScheduleSemiMonthly:
		if cutoff.SemiMonthly {
			return loan.PayablePerTerm.Div(two).Round(2)
		}
		return loan.PayablePerTerm
	default:
		return decimal.Zero
	}
}
