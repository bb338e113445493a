package services

import (
	"sort"
	"time"

	"attendance-registry/internal/models"
)

type LocalityCount struct {
	Municipality string
	Count        int
}

type DatePoint struct {
	Date  string
	Total int
}

// SkippedRecord: запись, не попавшая во временной ряд из-за даты.
type SkippedRecord struct {
	ID     uint
	Date   string
	Reason string
}

// CountsByLocality группирует записи по муниципалитету, по убыванию количества.
func CountsByLocality(records []models.Record) []LocalityCount {
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Municipality]++
	}

	out := make([]LocalityCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, LocalityCount{Municipality: m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Municipality < out[j].Municipality
	})
	return out
}

// CumulativeByDate строит накопительный итог по датам; одна точка на дату.
// Записи с неразборчивой датой пропускаются и возвращаются отдельно.
func CumulativeByDate(records []models.Record) ([]DatePoint, []SkippedRecord) {
	perDay := map[time.Time]int{}
	var skipped []SkippedRecord

	for _, r := range records {
		d, err := time.Parse(models.DateLayout, r.Date)
		if err != nil {
			skipped = append(skipped, SkippedRecord{ID: r.ID, Date: r.Date, Reason: "expected date as YYYY-MM-DD"})
			continue
		}
		perDay[d]++
	}

	days := make([]time.Time, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]DatePoint, 0, len(days))
	total := 0
	for _, d := range days {
		total += perDay[d]
		points = append(points, DatePoint{Date: d.Format(models.DateLayout), Total: total})
	}
	return points, skipped
}
