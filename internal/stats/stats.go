// Package stats produces the demo statistics shown on the dashboard. The
// numbers are random filler standing in for a real reporting pipeline; only
// the shape of the output (cards plus a chart payload) is meaningful.
package stats

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/view"
)

// Period selects the reporting window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Card is the per-product summary tile.
type Card struct {
	Product  string `json:"product"`
	Current  int    `json:"current"`
	Change   int    `json:"change"`
	Positive bool   `json:"positive"`
}

// Report is the full statistics payload for one period.
type Report struct {
	Period Period     `json:"period"`
	Cards  []Card     `json:"cards"`
	Chart  view.Chart `json:"chart"`
}

// Generator produces reports. The random source and clock are injected so
// tests can pin them.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a Generator over the given random source. A nil
// source falls back to a time-seeded one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: time.Now}
}

// Build assembles the report for the given products and period. Label order
// is oldest first.
func (g *Generator) Build(products []string, period Period) (Report, error) {
	labels, err := g.labels(period)
	if err != nil {
		return Report{}, err
	}

	report := Report{Period: period, Chart: view.Chart{Labels: labels}}
	for _, product := range products {
		base := g.rng.Intn(1000) + 500
		change := g.rng.Intn(30) - 10
		report.Cards = append(report.Cards, Card{
			Product:  product,
			Current:  base,
			Change:   change,
			Positive: change >= 0,
		})

		values := make([]int, len(labels))
		for i := range labels {
			switch period {
			case PeriodDaily:
				values[i] = base + g.rng.Intn(200)
			case PeriodWeekly:
				values[i] = base*7 + g.rng.Intn(1000)
			case PeriodMonthly:
				values[i] = base*30 + g.rng.Intn(5000)
			}
		}
		report.Chart.Series = append(report.Chart.Series, view.Series{Name: product, Values: values})
	}
	return report, nil
}

func (g *Generator) labels(period Period) ([]string, error) {
	now := g.now()
	switch period {
	case PeriodDaily:
		labels := make([]string, 7)
		for i := 6; i >= 0; i-- {
			labels[6-i] = now.AddDate(0, 0, -i).Format("Mon")
		}
		return labels, nil
	case PeriodWeekly:
		return []string{"Week 1", "Week 2", "Week 3", "Week 4"}, nil
	case PeriodMonthly:
		labels := make([]string, 6)
		for i := 5; i >= 0; i-- {
			month := (int(now.Month()) - 1 - i + 12) % 12
			labels[5-i] = time.Month(month + 1).String()[:3]
		}
		return labels, nil
	default:
		return nil, fmt.Errorf("unknown period %q", period)
	}
}
