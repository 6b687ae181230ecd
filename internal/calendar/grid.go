// Package calendar computes month geometry and renders the 42-cell
// month grid that joins day cells to photo buckets by date key.
package calendar

import (
	"time"

	"github.com/etama123/mo-ment/internal/models"
)

// GridCells is the fixed number of cells in a rendered month: six full
// weeks, enough to cover any month regardless of week alignment.
const GridCells = 42

// Month is a reference year/month pair.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns the first day of the month at midnight UTC.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of the month at midnight UTC.
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

// Prev returns the previous month, normalizing January to December of
// the prior year.
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Next returns the next month, normalizing December to January of the
// following year.
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Contains reports whether the key's day falls inside this month.
func (m Month) Contains(key models.DateKey) bool {
	return key.InMonth(m.Year, m.Month)
}

// GridStart shifts the first day of the month backward to the preceding
// (or same) weekStart day. With a Sunday week start, July 2025 starts
// its grid on Sunday June 29.
func (m Month) GridStart(weekStart time.Weekday) time.Time {
	first := m.First()
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	return first.AddDate(0, 0, -offset)
}

// DayCell is the view model for one grid cell. Only cells inside the
// reference month are interactive; clicking any other cell is a no-op.
type DayCell struct {
	Date        models.DateKey `json:"date"`
	Day         int            `json:"day"`
	InMonth     bool           `json:"inMonth"`
	Selected    bool           `json:"selected"`
	Today       bool           `json:"today"`
	HasPhotos   bool           `json:"hasPhotos"`
	PhotoCount  int            `json:"photoCount"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	Interactive bool           `json:"interactive"`
}

// PhotoLookup resolves the photo list for a date key. An empty or nil
// result both mean "no photos".
type PhotoLookup func(models.DateKey) []models.Photo

// BuildGrid renders the 42 cells for a month. selected may be empty for
// no selection; today is taken at day granularity.
func BuildGrid(m Month, photos PhotoLookup, selected models.DateKey, today time.Time, weekStart time.Weekday) []DayCell {
	cells := make([]DayCell, 0, GridCells)
	todayKey := models.KeyOf(today)

	day := m.GridStart(weekStart)
	for i := 0; i < GridCells; i++ {
		key := models.KeyOf(day)
		inMonth := day.Month() == m.Month && day.Year() == m.Year

		var list []models.Photo
		if photos != nil {
			list = photos(key)
		}

		cell := DayCell{
			Date:        key,
			Day:         day.Day(),
			InMonth:     inMonth,
			Selected:    selected != "" && key == selected,
			Today:       key == todayKey,
			HasPhotos:   len(list) > 0,
			PhotoCount:  len(list),
			Interactive: inMonth,
		}
		if len(list) > 0 {
			cell.Thumbnail = list[0].URL
			if list[0].ThumbURL != "" {
				cell.Thumbnail = list[0].ThumbURL
			}
		}

		cells = append(cells, cell)
		day = day.AddDate(0, 0, 1)
	}

	return cells
}
