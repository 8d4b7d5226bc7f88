package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"quickshow-cli/model"
	"quickshow-cli/seating"
)

// checkoutSummary is what the bookings screen shows after checkout. It is a
// snapshot and nothing is stored.
type checkoutSummary struct {
	reference string
	movie     string
	date      string
	time      string
	seats     []string
	items     []seating.LineItem
	total     decimal.Decimal
	err       error
}

func newCheckoutSummary(movie model.Movie, date string, sel seating.Selection, clock func(model.TimeSlot) string) checkoutSummary {
	summary := checkoutSummary{
		reference: uuid.NewString(),
		movie:     movie.Title,
		date:      date,
		seats:     sel.Seats(),
	}
	if slot, ok := sel.Time(); ok {
		summary.time = clock(slot)
	}
	summary.items, summary.total, summary.err = seating.Quote(summary.seats)
	return summary
}

func (s checkoutSummary) table() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Seat", "Section", "Price"})
	for _, item := range s.items {
		t.AppendRow(table.Row{item.SeatID, strings.ToUpper(string(item.Section)), seating.FormatRupees(item.Price)})
	}
	t.AppendFooter(table.Row{"", "Total", seating.FormatRupees(s.total)})
	return t.Render()
}

func (m appModel) bookingsView() string {
	s := m.checkout
	heading := AdminTitle("My", "Bookings")

	timeLabel := s.time
	if timeLabel == "" {
		timeLabel = "not selected"
	}
	meta := []string{
		fmt.Sprintf("Movie: %s", s.movie),
		fmt.Sprintf("Date: %s", s.date),
		fmt.Sprintf("Time: %s", timeLabel),
		fmt.Sprintf("Reference: %s", s.reference),
	}

	var body string
	switch {
	case s.err != nil:
		body = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(s.err.Error())
	case len(s.items) == 0:
		body = hint("No seats selected.")
	default:
		body = s.table()
	}
	return heading + "\n\n" + strings.Join(meta, "\n") + "\n\n" + body
}
