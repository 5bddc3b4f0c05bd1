// Package aggregate derives pipeline statistics from a snapshot of applications.
//
// Every function is a single pass (plus one sort where ordering matters) over the
// slice it receives and never mutates it.
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cuongbtq/career-tracker/internal/domain"
)

// DefaultTopLocations is the number of location buckets kept by Compute
const DefaultTopLocations = 5

// StatusCounts maps each status to the number of applications in it
type StatusCounts map[domain.Status]int

// Rates holds percentages in the range [0,100]
type Rates struct {
	Success  float64 `json:"successRate"`
	Offer    float64 `json:"offerRate"`
	Response float64 `json:"responseRate"`
}

// Aggregates is the full set of derived statistics
type Aggregates struct {
	Total              int          `json:"total"`
	Counts             StatusCounts `json:"counts"`
	Rates              Rates        `json:"rates"`
	ByMonth            []Bucket     `json:"byMonth"`
	ByMonthName        []Bucket     `json:"byMonthName"`
	ByLocation         []Bucket     `json:"byLocation"`
	AverageDaysBetween float64      `json:"averageDaysBetween"`
}

// Compute derives all aggregates. It fails on the first application whose
// dateApplied is not a calendar date.
func Compute(apps []domain.Application, topLocations int) (*Aggregates, error) {
	if topLocations <= 0 {
		topLocations = DefaultTopLocations
	}

	byMonth, err := MonthlyHistogram(apps, MonthYearLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly histogram: %w", err)
	}

	byMonthName, err := MonthlyHistogram(apps, MonthLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly histogram: %w", err)
	}

	avg, err := AverageDaysBetween(apps)
	if err != nil {
		return nil, fmt.Errorf("failed to compute application interval: %w", err)
	}

	counts := CountByStatus(apps)

	return &Aggregates{
		Total:              len(apps),
		Counts:             counts,
		Rates:              ComputeRates(counts, len(apps)),
		ByMonth:            byMonth,
		ByMonthName:        byMonthName,
		ByLocation:         LocationHistogram(apps, topLocations),
		AverageDaysBetween: avg,
	}, nil
}

// CountByStatus counts applications per status. Every known status is present
// in the result, zero if unused.
func CountByStatus(apps []domain.Application) StatusCounts {
	counts := make(StatusCounts, len(domain.Statuses))
	for _, s := range domain.Statuses {
		counts[s] = 0
	}
	for _, app := range apps {
		counts[app.Status]++
	}
	return counts
}

// ComputeRates derives success, offer and response rates. All rates are zero
// when total is zero.
func ComputeRates(counts StatusCounts, total int) Rates {
	if total == 0 {
		return Rates{}
	}

	t := float64(total)
	return Rates{
		Success:  percent(counts[domain.StatusInterview]+counts[domain.StatusOffer], t),
		Offer:    percent(counts[domain.StatusOffer], t),
		Response: percent(total-counts[domain.StatusApplied], t),
	}
}

// AverageDaysBetween sorts applications by date and returns the mean absolute
// day difference between neighbours. Zero for fewer than two applications.
func AverageDaysBetween(apps []domain.Application) (float64, error) {
	dates := make([]time.Time, 0, len(apps))
	for _, app := range apps {
		d, err := app.AppliedOn()
		if err != nil {
			return 0, err
		}
		dates = append(dates, d)
	}

	if len(dates) < 2 {
		return 0, nil
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var sum float64
	for i := 1; i < len(dates); i++ {
		sum += math.Abs(dates[i].Sub(dates[i-1]).Hours() / 24)
	}

	return sum / float64(len(dates)-1), nil
}

func percent(part int, total float64) float64 {
	return float64(part) / total * 100
}
