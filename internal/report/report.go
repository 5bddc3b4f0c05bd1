// Package report turns a snapshot of applications and its aggregates into the
// view models served by the dashboard endpoints. Every builder is a pure
// function of its inputs.
package report

import (
	"math"

	"github.com/cuongbtq/career-tracker/internal/aggregate"
	"github.com/cuongbtq/career-tracker/internal/domain"
)

const (
	// DefaultRecentLimit is the number of recent applications in the analytics view
	DefaultRecentLimit = 5
	// DefaultTimelineLimit is the number of entries in the report timeline
	DefaultTimelineLimit = 10

	// CardDateLayout formats dateApplied on application cards
	CardDateLayout = "Jan 2, 2006"
)

// Overview is the row of stats cards above the dashboard
type Overview struct {
	Total        int `json:"total"`
	Interviews   int `json:"interviews"`
	Offers       int `json:"offers"`
	ResponseRate int `json:"responseRate"`
}

// StatusSlice is one slice of the status distribution chart
type StatusSlice struct {
	Status domain.Status `json:"status"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
	Color  string        `json:"color"`
}

// Pipeline counts applications that are still in progress
type Pipeline struct {
	Total     int `json:"total"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
}

// Analytics backs the analytics dashboard tab
type Analytics struct {
	SuccessRate  float64              `json:"successRate"`
	OfferRate    float64              `json:"offerRate"`
	Pipeline     Pipeline             `json:"activePipeline"`
	Distribution []StatusSlice        `json:"statusDistribution"`
	OverTime     []aggregate.Bucket   `json:"applicationsOverTime"`
	Recent       []domain.Application `json:"recent"`
}

// Detailed backs the reports tab
type Detailed struct {
	ResponseRate       float64              `json:"responseRate"`
	InterviewRate      float64              `json:"interviewRate"`
	OfferRate          float64              `json:"offerRate"`
	AverageDaysBetween int                  `json:"averageDaysBetween"`
	Monthly            []aggregate.Bucket   `json:"monthly"`
	TopLocations       []aggregate.Bucket   `json:"topLocations"`
	Distribution       []StatusSlice        `json:"statusDistribution"`
	Timeline           []domain.Application `json:"timeline"`
}

// Card is a single application as rendered in the applications list
type Card struct {
	domain.Application
	StatusLabel   string `json:"statusLabel"`
	FormattedDate string `json:"formattedDate"`
}

// BuildOverview returns the stats cards. The response rate card counts
// interviews and offers and is rounded to a whole percent.
func BuildOverview(agg *aggregate.Aggregates) Overview {
	return Overview{
		Total:        agg.Total,
		Interviews:   agg.Counts[domain.StatusInterview],
		Offers:       agg.Counts[domain.StatusOffer],
		ResponseRate: int(math.Round(agg.Rates.Success)),
	}
}

// BuildAnalytics assembles the analytics view. apps must be the snapshot agg
// was computed from, newest first.
func BuildAnalytics(apps []domain.Application, agg *aggregate.Aggregates, recent int) Analytics {
	if recent <= 0 {
		recent = DefaultRecentLimit
	}

	applied := agg.Counts[domain.StatusApplied]
	interview := agg.Counts[domain.StatusInterview]

	return Analytics{
		SuccessRate: agg.Rates.Success,
		OfferRate:   agg.Rates.Offer,
		Pipeline: Pipeline{
			Total:     applied + interview,
			Applied:   applied,
			Interview: interview,
		},
		Distribution: Distribution(agg.Counts),
		OverTime:     agg.ByMonth,
		Recent:       head(apps, recent),
	}
}

// BuildDetailed assembles the detailed report
func BuildDetailed(apps []domain.Application, agg *aggregate.Aggregates, timeline int) Detailed {
	if timeline <= 0 {
		timeline = DefaultTimelineLimit
	}

	return Detailed{
		ResponseRate:       agg.Rates.Response,
		InterviewRate:      agg.Rates.Success,
		OfferRate:          agg.Rates.Offer,
		AverageDaysBetween: int(math.Round(agg.AverageDaysBetween)),
		Monthly:            agg.ByMonthName,
		TopLocations:       agg.ByLocation,
		Distribution:       Distribution(agg.Counts),
		Timeline:           head(apps, timeline),
	}
}

// Distribution lists statuses with a non-zero count in pipeline order
func Distribution(counts aggregate.StatusCounts) []StatusSlice {
	out := []StatusSlice{}
	for _, s := range domain.Statuses {
		n := counts[s]
		if n == 0 {
			continue
		}
		out = append(out, StatusSlice{
			Status: s,
			Label:  s.Label(),
			Count:  n,
			Color:  s.Color(),
		})
	}
	return out
}

// BuildCard decorates app with its status label and a readable date
func BuildCard(app domain.Application) (Card, error) {
	d, err := app.AppliedOn()
	if err != nil {
		return Card{}, err
	}

	return Card{
		Application:   app,
		StatusLabel:   app.Status.Label(),
		FormattedDate: d.Format(CardDateLayout),
	}, nil
}

// BuildCards decorates every application, stopping at the first bad date
func BuildCards(apps []domain.Application) ([]Card, error) {
	cards := make([]Card, 0, len(apps))
	for _, app := range apps {
		c, err := BuildCard(app)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func head(apps []domain.Application, n int) []domain.Application {
	if len(apps) < n {
		n = len(apps)
	}
	out := make([]domain.Application, n)
	copy(out, apps[:n])
	return out
}
