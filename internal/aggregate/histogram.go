package aggregate

import (
	"sort"
	"strings"

	"github.com/cuongbtq/career-tracker/internal/domain"
)

// Month label layouts
const (
	MonthYearLabel = "Jan 06"
	MonthLabel     = "Jan"
)

// Bucket is a histogram entry
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// histogram counts keys and remembers the order they were first seen in
type histogram struct {
	index   map[string]int
	buckets []Bucket
}

func newHistogram() *histogram {
	return &histogram{index: make(map[string]int), buckets: []Bucket{}}
}

func (h *histogram) add(key string) {
	if i, ok := h.index[key]; ok {
		h.buckets[i].Count++
		return
	}
	h.index[key] = len(h.buckets)
	h.buckets = append(h.buckets, Bucket{Key: key, Count: 1})
}

// MonthlyHistogram groups applications by the month of dateApplied formatted
// with layout. Buckets come back in first-seen order, not chronologically.
func MonthlyHistogram(apps []domain.Application, layout string) ([]Bucket, error) {
	h := newHistogram()
	for _, app := range apps {
		d, err := app.AppliedOn()
		if err != nil {
			return nil, err
		}
		h.add(d.Format(layout))
	}
	return h.buckets, nil
}

// LocationHistogram groups applications by city (text before the first comma),
// sorted by count descending and truncated to limit. Ties keep first-seen order.
func LocationHistogram(apps []domain.Application, limit int) []Bucket {
	h := newHistogram()
	for _, app := range apps {
		h.add(City(app.Location))
	}

	buckets := h.buckets
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})

	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets
}

// City truncates a location to the part before the first comma
func City(location string) string {
	city, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city)
}
