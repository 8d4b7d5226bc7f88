package seating

import (
	"errors"
	"slices"

	"quickshow-cli/model"
)

// MaxSeats caps how many seats a single selection may hold.
const MaxSeats = 5

var (
	ErrNoTimeSelected    = errors.New("no showtime selected")
	ErrSeatLimitExceeded = errors.New("seat limit reached")
)

type Phase int

const (
	NoTimeSelected Phase = iota
	TimeSelected
)

func (p Phase) String() string {
	if p == TimeSelected {
		return "time selected"
	}
	return "no time selected"
}

// Selection is the seat page state: the chosen showtime and the chosen seats
// in the order they were picked. The zero value is ready to use.
type Selection struct {
	time  *model.TimeSlot
	seats []string
}

func (s *Selection) Phase() Phase {
	if s.time == nil {
		return NoTimeSelected
	}
	return TimeSelected
}

// Time returns the chosen showtime, if any.
func (s *Selection) Time() (model.TimeSlot, bool) {
	if s.time == nil {
		return model.TimeSlot{}, false
	}
	return *s.time, true
}

func (s *Selection) HasTime() bool {
	return s.time != nil
}

// SelectTime sets the showtime. Seats already picked are kept.
func (s *Selection) SelectTime(slot model.TimeSlot) {
	s.time = &slot
}

// ToggleSeat adds or removes a seat. Sold seats are ignored without error.
func (s *Selection) ToggleSeat(seatID string, sold bool) error {
	if sold {
		return nil
	}
	if s.time == nil {
		return ErrNoTimeSelected
	}
	if i := slices.Index(s.seats, seatID); i >= 0 {
		s.seats = slices.Delete(s.seats, i, i+1)
		return nil
	}
	if len(s.seats) >= MaxSeats {
		return ErrSeatLimitExceeded
	}
	s.seats = append(s.seats, seatID)
	return nil
}

// Toggle is ToggleSeat for a (row, number) pair with the sold rule applied.
func (s *Selection) Toggle(row string, number int) error {
	return s.ToggleSeat(SeatID(row, number), IsSold(number))
}

func (s *Selection) Selected(seatID string) bool {
	return slices.Contains(s.seats, seatID)
}

func (s *Selection) Seats() []string {
	return slices.Clone(s.seats)
}

func (s *Selection) Len() int {
	return len(s.seats)
}
