package engine

// Compute assembles the full breakdown for one employee and one cutoff.
// Every presentation surface (API, register, payslip) reads these figures;
// none of them re-derives anything.
func Compute(in Input) Breakdown {
	var out Breakdown

	credit := TotalCredit(in)
	if in.SalaryType != SalaryMonthly {
		out.TotalCredit = &credit
	}

	out.BasePay = BasePay(in, credit)
	out.EffectiveBase = EffectiveBase(in, out.BasePay)

	out.SSS, out.PhilHealth, out.PagIBIG = ContributionShares(in.Contribution, in.Cutoff)
	out.ContributionTotal = out.SSS.Add(out.PhilHealth).Add(out.PagIBIG).Round(2)

	out.LoanDeductions, out.LoanTotal = LoanDeductionsFor(in.Loans, in.Cutoff)

	out.LateDeduction, out.SalaryAfterLate = LateDeduction(in, out.BasePay)

	// One-off misc charges live in OthersNet only; they are excluded from
	// TotalDeduction.
	out.OthersNet = in.Rewards.Sub(in.OneOffDeduction).Round(2)

	out.Gross = out.EffectiveBase.
		Add(in.Allowances.Round(2)).
		Add(in.Incentive.Round(2)).
		Add(in.RetroApplied.Round(2)).
		Add(out.OthersNet).
		Round(2)

	out.TotalDeduction = out.LoanTotal.Add(out.ContributionTotal)
	if in.SalaryType == SalaryMonthly {
		out.TotalDeduction = out.TotalDeduction.Add(out.LateDeduction)
	}
	out.TotalDeduction = out.TotalDeduction.Round(2)

	out.Net = out.Gross.Sub(out.TotalDeduction).Round(2)
	return out
}
