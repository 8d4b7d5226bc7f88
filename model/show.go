package model

import "sort"

type TimeSlot struct {
	Time   string `json:"time"`
	ShowId string `json:"showId"`
}

// Show pairs a movie with its showtimes keyed by date (YYYY-MM-DD).
type Show struct {
	Movie    Movie                 `json:"movie"`
	DateTime map[string][]TimeSlot `json:"dateTime"`
}

func (s Show) Dates() []string {
	dates := make([]string, 0, len(s.DateTime))
	for date := range s.DateTime {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Slots returns the showtimes for an exact date key. Unknown dates yield nil.
func (s Show) Slots(date string) []TimeSlot {
	return s.DateTime[date]
}
