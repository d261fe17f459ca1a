package winelog

import (
	"wld/internal/models"
)

// Summarize computes the derived statistics for doc. Pure: identical
// input always yields identical output, nothing is mutated or cached.
func Summarize(doc models.Document) *models.DerivedStats {
	stats := &models.DerivedStats{
		TotalDays:   len(doc),
		MemberStats: make(map[string]*models.BeverageTotals),
	}

	memberDays := make(map[string]map[string]struct{})

	for date := range doc {
		// YYYY-MM-DD sorts lexicographically in date order.
		if date > stats.LastUpdated {
			stats.LastUpdated = date
		}
		for member, entry := range doc.Day(date) {
			totals, ok := stats.MemberStats[member]
			if !ok {
				totals = &models.BeverageTotals{}
				stats.MemberStats[member] = totals
				memberDays[member] = make(map[string]struct{})
			}
			totals.Add(entry)
			memberDays[member][date] = struct{}{}
			stats.WineStats.Add(entry)
		}
	}

	for member, days := range memberDays {
		stats.MemberStats[member].Days = len(days)
	}
	stats.WineStats.Days = len(doc)

	return stats
}
