package service

import (
	"slices"
	"time"

	"github.com/pkordes/trip-planner/backend/internal/daterange"
	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// BuildItinerary groups activities into one bucket per calendar day from
// start to end inclusive, evaluated in loc. Every day gets a bucket, even
// when it has no activities, and each bucket's activities are in ascending
// OccursAt order. Activities outside the range are dropped.
func BuildItinerary(start, end time.Time, activities []domain.Activity, loc *time.Location) []domain.ItineraryDay {
	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b domain.Activity) int {
		return a.OccursAt.Compare(b.OccursAt)
	})

	days := daterange.Days(start, end, loc)
	out := make([]domain.ItineraryDay, len(days))
	for i, day := range days {
		out[i] = domain.ItineraryDay{Date: day, Activities: []domain.Activity{}}
	}
	if len(days) == 0 {
		return out
	}

	for _, a := range sorted {
		idx := daterange.DaySpan(days[0], a.OccursAt, loc)
		if idx < 0 || idx >= len(out) {
			continue
		}
		out[idx].Activities = append(out[idx].Activities, a)
	}
	return out
}
