package projection

import (
	"context"
	"math"
	"math/rand/v2"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
)

// DefaultPaths is used when a caller asks for fewer than one path.
const DefaultPaths = 500

// Volatility returns the annual return volatility for a risk profile.
func Volatility(p models.RiskProfile) float64 {
	switch p {
	case models.RiskProfileLow:
		return 0.05
	case models.RiskProfileHigh:
		return 0.18
	default:
		return 0.10
	}
}

// PathStats summarises the ensemble's total value for one year.
type PathStats struct {
	Year    int     `json:"year"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	P25     float64 `json:"p25"`
	P75     float64 `json:"p75"`
}

// SimulateMonteCarlo runs numPaths independent projections whose monthly
// investment return is drawn uniformly within one monthly volatility of the
// expected rate. Each path gets its own generator seeded from src, so the
// result depends only on src and not on how the paths are scheduled. Paths
// not yet started are skipped once ctx is done, and ctx's error is returned.
func SimulateMonteCarlo(ctx context.Context, assets models.AssetSnapshot, settings models.SimulationSettings, events []models.LifeEvent, start calendar.YearMonth, numPaths int, src rand.Source) ([]PathStats, error) {
	if numPaths < 1 {
		numPaths = DefaultPaths
	}
	if settings.Years < 1 {
		return nil, nil
	}

	master := rand.New(src)
	seeds := make([][2]uint64, numPaths)
	for i := range seeds {
		seeds[i] = [2]uint64{master.Uint64(), master.Uint64()}
	}

	mean := monthlyRate(settings.InvestmentReturn)
	spread := Volatility(settings.RiskProfile) / math.Sqrt(12)

	paths := make([][]YearSnapshot, numPaths)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := rand.New(rand.NewPCG(seeds[i][0], seeds[i][1]))
			paths[i] = simulate(assets, settings, events, start, func() float64 {
				return mean + (r.Float64()*2-1)*spread
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summarise(paths), nil
}

func summarise(paths [][]YearSnapshot) []PathStats {
	years := len(paths[0])
	out := make([]PathStats, 0, years)
	totals := make([]float64, len(paths))

	for y := 0; y < years; y++ {
		var sum float64
		for i, p := range paths {
			totals[i] = p[y].Total
			sum += p[y].Total
		}
		sort.Float64s(totals)
		n := len(totals)
		out = append(out, PathStats{
			Year:    paths[0][y].Year,
			Average: math.Round(sum / float64(n)),
			Min:     totals[0],
			Max:     totals[n-1],
			P25:     totals[int(math.Floor(float64(n)*0.25))],
			P75:     totals[int(math.Floor(float64(n)*0.75))],
		})
	}
	return out
}
