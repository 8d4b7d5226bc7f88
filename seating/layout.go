// Package seating holds the auditorium layout, the seat rules and the
// selection state of the seat layout page.
package seating

import (
	"fmt"
	"strconv"
	"strings"
)

type SectionKey string

const (
	Premium   SectionKey = "premium"
	Executive SectionKey = "executive"
	Normal    SectionKey = "normal"
)

// Section is one priced seating tier. Rows are listed top to bottom as drawn,
// farthest from the screen first.
type Section struct {
	Key         SectionKey
	Price       int
	Rows        []string
	SeatsPerRow int
}

func (s Section) Label() string {
	return fmt.Sprintf("₹%d %s", s.Price, strings.ToUpper(string(s.Key)))
}

// Layout returns the sections in drawing order. Callers get their own copy.
func Layout() []Section {
	return []Section{
		{Key: Premium, Price: 250, Rows: []string{"K", "J", "I", "H", "G", "F", "E"}, SeatsPerRow: 20},
		{Key: Executive, Price: 230, Rows: []string{"D", "C", "B"}, SeatsPerRow: 17},
		{Key: Normal, Price: 210, Rows: []string{"A"}, SeatsPerRow: 15},
	}
}

func SeatID(row string, number int) string {
	return fmt.Sprintf("%s-%d", row, number)
}

// ParseSeatID splits "<row>-<number>" back into its parts.
func ParseSeatID(id string) (string, int, bool) {
	row, num, found := strings.Cut(id, "-")
	if !found || row == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return "", 0, false
	}
	return row, n, true
}

// SectionForRow finds the section drawing the given row label.
func SectionForRow(row string) (Section, bool) {
	for _, section := range Layout() {
		for _, r := range section.Rows {
			if r == row {
				return section, true
			}
		}
	}
	return Section{}, false
}

// IsSold reports whether a seat number is sold. Every seventh seat is.
func IsSold(number int) bool {
	return number%7 == 0
}

// IsBestseller reports whether an unsold seat number is flagged as a
// bestseller. Every sixth seat is.
func IsBestseller(number int) bool {
	return !IsSold(number) && number%6 == 0
}
