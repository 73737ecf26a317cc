// Package projection simulates long-horizon asset growth, deterministically
// and as a Monte Carlo ensemble, under tax-advantaged contribution limits.
package projection

import (
	"math"
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
)

// Benchmark defaults used when settings leave them unset.
const (
	DefaultBenchmarkBase = 10_000_000.0
	DefaultBenchmarkRate = 3.0
)

// YearSnapshot is the state at the end of one simulated year. Values are
// rounded to whole units; the simulation itself runs unrounded.
type YearSnapshot struct {
	Year              int     `json:"year"`
	CalendarYear      int     `json:"calendar_year"`
	Total             float64 `json:"total"`
	Savings           float64 `json:"savings"`
	Investment        float64 `json:"investment"`
	TaxAdvantaged     float64 `json:"tax_advantaged"`
	DryPowder         float64 `json:"dry_powder"`
	TaxAdvantagedUsed float64 `json:"tax_advantaged_used"`
	TaxAdvantagedYear float64 `json:"tax_advantaged_year"`
	TaxSaved          float64 `json:"tax_saved"`
	Benchmark         float64 `json:"benchmark"`
	Percentile        float64 `json:"percentile"`
}

// Project runs the deterministic projection with start as the first simulated
// month. assets, settings and events are read only.
func Project(assets models.AssetSnapshot, settings models.SimulationSettings, events []models.LifeEvent, start calendar.YearMonth) []YearSnapshot {
	rate := monthlyRate(settings.InvestmentReturn)
	return simulate(assets, settings, events, start, func() float64 { return rate })
}

// state holds the running, unrounded balances of one simulation path.
type state struct {
	savings    float64
	investment float64
	advantaged float64
	dryPowder  float64
	taxSaved   float64
}

func (s *state) total() float64 {
	return s.savings + s.investment + s.advantaged + s.dryPowder
}

// simulate is shared by both engines. Each simulated year is the twelve months
// beginning at start plus whole years; the tax-advantaged annual room resets
// with it. nextRate returns the investment growth rate for the coming month.
func simulate(assets models.AssetSnapshot, settings models.SimulationSettings, events []models.LifeEvent, start calendar.YearMonth, nextRate func() float64) []YearSnapshot {
	years := settings.Years
	if years < 1 {
		return nil
	}

	st := state{
		savings:    num(assets.Savings),
		investment: num(assets.Investment),
		advantaged: num(assets.TaxAdvantaged),
		dryPowder:  num(assets.DryPowder),
	}
	alloc := newAllocator(settings.UseTaxAdvantaged, num(settings.TaxAdvantagedUsed))
	shocks := eventsByMonth(events)
	lumpMonths := lumpSumMonths(settings)

	savingsRate := monthlyRate(settings.SavingsRate)
	monthlySavings := num(settings.MonthlySavings)
	monthlyInvestment := num(settings.MonthlyInvestment)
	lumpSum := num(settings.LumpSumAmount)

	base := num(settings.BenchmarkBase)
	if base <= 0 {
		base = DefaultBenchmarkBase
	}
	benchRate := num(settings.BenchmarkRate)
	if benchRate == 0 {
		benchRate = DefaultBenchmarkRate
	}

	out := make([]YearSnapshot, 0, years)
	ym := start
	for y := 1; y <= years; y++ {
		alloc.newYear()
		var last calendar.YearMonth
		for m := 0; m < 12; m++ {
			last = ym
			st.savings += monthlySavings
			st.savings += st.savings * savingsRate

			var lump float64
			if settings.LumpSumEnabled && lumpMonths[ym.Month] {
				lump = lumpSum
			}
			adv, taxable := alloc.allocate(monthlyInvestment, lump)
			st.advantaged += adv
			st.investment += taxable

			r := nextRate()
			advGain := st.advantaged * r
			st.advantaged += advGain
			if advGain > 0 {
				st.taxSaved += advGain * TaxRate
			}
			gain := st.investment * r
			if gain > 0 {
				gain -= gain * TaxRate
			}
			st.investment += gain

			if amount, ok := shocks[ym]; ok {
				st.withdraw(amount)
			}
			ym = ym.AddMonths(1)
		}

		bench := base * math.Pow(1+benchRate/100, float64(y))
		out = append(out, YearSnapshot{
			Year:              y,
			CalendarYear:      last.Year,
			Total:             math.Round(st.total()),
			Savings:           math.Round(st.savings),
			Investment:        math.Round(st.investment),
			TaxAdvantaged:     math.Round(st.advantaged),
			DryPowder:         math.Round(st.dryPowder),
			TaxAdvantagedUsed: math.Round(alloc.used),
			TaxAdvantagedYear: math.Round(alloc.yearUsed),
			TaxSaved:          math.Round(st.taxSaved),
			Benchmark:         math.Round(bench),
			Percentile:        PercentileRank(st.total(), bench),
		})
	}
	return out
}

// withdraw takes amount from dry powder, then savings, then taxable
// investment, then the tax-advantaged bucket. No bucket goes negative; any
// shortfall beyond all four is absorbed.
func (s *state) withdraw(amount float64) {
	for _, b := range []*float64{&s.dryPowder, &s.savings, &s.investment, &s.advantaged} {
		if amount <= 0 {
			return
		}
		if *b <= 0 {
			continue
		}
		n := min(*b, amount)
		*b -= n
		amount -= n
	}
}

// PercentileRank estimates the "top X%" standing of actual against the
// benchmark: 50 at parity, falling quadratically as actual outgrows it.
func PercentileRank(actual, benchmark float64) float64 {
	if actual <= 0 || benchmark <= 0 {
		return 99
	}
	ratio := actual / benchmark
	return clamp(50/(ratio*ratio), 0.1, 99)
}

func eventsByMonth(events []models.LifeEvent) map[calendar.YearMonth]float64 {
	out := make(map[calendar.YearMonth]float64, len(events))
	for _, e := range events {
		ym, err := calendar.ParseYearMonth(e.YearMonth)
		if err != nil {
			continue
		}
		out[ym] += num(e.Amount)
	}
	return out
}

// lumpSumMonths returns the calendar months that receive the lump sum.
func lumpSumMonths(s models.SimulationSettings) map[time.Month]bool {
	months := s.LumpSumMonths
	if len(months) == 0 {
		switch s.LumpSumFrequency {
		case models.LumpSumSemiannual:
			months = []int{1, 7}
		case models.LumpSumQuarterly:
			months = []int{1, 4, 7, 10}
		default:
			months = []int{1}
		}
	}
	out := make(map[time.Month]bool, len(months))
	for _, m := range months {
		if m >= 1 && m <= 12 {
			out[time.Month(m)] = true
		}
	}
	return out
}

func monthlyRate(annualPercent float64) float64 {
	return num(annualPercent) / 100 / 12
}

// num reads NaN and infinities as zero.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
