package reward

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MatchContext is one employee's cutoff facts, assembled by the caller.
type MatchContext struct {
	DepartmentID  string
	PositionID    string
	TotalHours    decimal.Decimal
	MaxDailyHours decimal.Decimal
	DaysCredited  decimal.Decimal
	BasePay       decimal.Decimal
}

type Outcome struct {
	Rule   Rule
	Amount decimal.Decimal
}

// EvaluateRules walks the rules in ascending priority and returns the payout
// of every rule whose scope and thresholds match. Pure; persistence is the
// service's job.
func EvaluateRules(rules []Rule, ctx MatchContext) []Outcome {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	outcomes := make([]Outcome, 0, len(sorted))
	for _, rule := range sorted {
		if !matchesScope(rule, ctx) || !meetsThresholds(rule, ctx) {
			continue
		}
		outcomes = append(outcomes, Outcome{
			Rule:   rule,
			Amount: payout(rule, ctx).Round(2),
		})
	}
	return outcomes
}

func matchesScope(rule Rule, ctx MatchContext) bool {
	switch rule.AppliesScope {
	case ScopeDepartment:
		return rule.DepartmentID != nil && rule.DepartmentID.String() == ctx.DepartmentID
	case ScopePosition:
		return rule.PositionID != nil && rule.PositionID.String() == ctx.PositionID
	default:
		return true
	}
}

func meetsThresholds(rule Rule, ctx MatchContext) bool {
	if ctx.TotalHours.LessThan(rule.MinTotalHours) {
		return false
	}
	if ctx.MaxDailyHours.LessThan(rule.MinDailyHours) {
		return false
	}
	return !ctx.DaysCredited.LessThan(rule.MinDaysCredited)
}

func payout(rule Rule, ctx MatchContext) decimal.Decimal {
	switch rule.PayoutType {
	case PayoutPerHour:
		return rule.PayoutValue.Mul(ctx.TotalHours)
	case PayoutPercentage:
		return ctx.BasePay.Mul(rule.PayoutValue).Div(hundred)
	default:
		return rule.PayoutValue
	}
}
