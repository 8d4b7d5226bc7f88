package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"quickshow-cli/format"
	"quickshow-cli/model"
	"quickshow-cli/seating"
)

type pageFocus int

const (
	focusTimings pageFocus = iota
	focusSeats
)

// seatRow is one drawable row of the layout, flattened across sections.
type seatRow struct {
	section int
	label   string
	seats   int
}

// seatPage is the state of the seat layout screen. It is rebuilt each time
// the screen is entered.
type seatPage struct {
	sections  []seating.Section
	rows      []seatRow
	slots     []model.TimeSlot
	selection seating.Selection

	focus      pageFocus
	slotCursor int
	rowCursor  int
	seatCursor int
}

func newSeatPage(show model.Show, date string) seatPage {
	sections := seating.Layout()
	var rows []seatRow
	for i, section := range sections {
		for _, label := range section.Rows {
			rows = append(rows, seatRow{section: i, label: label, seats: section.SeatsPerRow})
		}
	}
	return seatPage{
		sections:   sections,
		rows:       rows,
		slots:      show.Slots(date),
		focus:      focusTimings,
		seatCursor: 1,
	}
}

func (p seatPage) cursorSeat() (string, int, bool) {
	if p.rowCursor < 0 || p.rowCursor >= len(p.rows) {
		return "", 0, false
	}
	return p.rows[p.rowCursor].label, p.seatCursor, true
}

func (p *seatPage) moveSeat(dRow, dSeat int) {
	if len(p.rows) == 0 {
		return
	}
	p.rowCursor = clamp(p.rowCursor+dRow, 0, len(p.rows)-1)
	p.seatCursor = clamp(p.seatCursor+dSeat, 1, p.rows[p.rowCursor].seats)
}

func (p *seatPage) moveSlot(delta int) {
	if len(p.slots) == 0 {
		return
	}
	p.slotCursor = clamp(p.slotCursor+delta, 0, len(p.slots)-1)
}

// toggleCursor toggles the seat under the cursor. Until a showtime is chosen
// every seat, sold ones included, answers with the select-time notice.
func (p *seatPage) toggleCursor() error {
	row, number, ok := p.cursorSeat()
	if !ok {
		return nil
	}
	if !p.selection.HasTime() {
		return seating.ErrNoTimeSelected
	}
	return p.selection.Toggle(row, number)
}

func (m *appModel) handleSeatLayoutKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	switch key {
	case "tab", "shift+tab":
		if m.page.focus == focusTimings {
			m.page.focus = focusSeats
		} else {
			m.page.focus = focusTimings
		}
		return nil, true
	case "c":
		m.proceedToCheckout()
		return nil, true
	}

	if m.page.focus == focusTimings {
		switch key {
		case "up", "k":
			m.page.moveSlot(-1)
		case "down", "j":
			m.page.moveSlot(1)
		case "enter", " ":
			if len(m.page.slots) == 0 {
				return nil, true
			}
			slot := m.page.slots[m.page.slotCursor]
			m.page.selection.SelectTime(slot)
			m.page.focus = focusSeats
			m.logger.Debug("showtime selected", "id", m.movieID, "time", slot.Time)
		default:
			return nil, false
		}
		return nil, true
	}

	switch key {
	case "up", "k":
		m.page.moveSeat(-1, 0)
	case "down", "j":
		m.page.moveSeat(1, 0)
	case "left", "h":
		m.page.moveSeat(0, -1)
	case "right", "l":
		m.page.moveSeat(0, 1)
	case "home":
		m.page.moveSeat(0, -m.page.seatCursor)
	case "end":
		m.page.moveSeat(0, 99)
	case "enter", " ", "x":
		if err := m.page.toggleCursor(); err != nil {
			return m.raiseNotice(err), true
		}
	default:
		return nil, false
	}
	return nil, true
}

var (
	accentColor = lipgloss.Color("#F84565")

	seatBase        = lipgloss.NewStyle()
	seatSold        = seatBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250"))
	seatUnavailable = seatBase.Foreground(lipgloss.Color("240"))
	seatSelected    = seatBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28"))
	seatBestseller  = seatBase.Foreground(lipgloss.Color("214"))
	seatAvailable   = seatBase.Foreground(lipgloss.Color("2"))
)

func seatStyle(v seating.Variant) lipgloss.Style {
	switch v {
	case seating.VariantSold:
		return seatSold
	case seating.VariantUnavailable:
		return seatUnavailable
	case seating.VariantSelected:
		return seatSelected
	case seating.VariantBestseller:
		return seatBestseller
	default:
		return seatAvailable
	}
}

func (m appModel) seatLayoutView() string {
	sidebar := m.timingsView()
	main := m.seatGridView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main)
	if t := m.toast.view(); t != "" {
		body = t + "\n\n" + body
	}
	return body
}

func (m appModel) timingsView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Available Timings")
	lines := []string{title, ""}
	if len(m.page.slots) == 0 {
		lines = append(lines, hint("No showtimes on "+m.date))
	}
	current, hasTime := m.page.selection.Time()
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(accentColor).Padding(0, 1)
	plainStyle := lipgloss.NewStyle().Padding(0, 1)
	for i, slot := range m.page.slots {
		label := "◷ " + m.clockLabel(slot)
		style := plainStyle
		if hasTime && current.Time == slot.Time {
			style = selectedStyle
		}
		marker := "  "
		if m.page.focus == focusTimings && i == m.page.slotCursor {
			marker = "› "
		}
		lines = append(lines, marker+style.Render(label))
	}

	border := lipgloss.Color("#3a1a1a")
	if m.page.focus == focusTimings {
		border = accentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (m appModel) seatGridView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Select your seat"))
	b.WriteString("\n")
	if !m.page.selection.HasTime() {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Please select a time"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	curRow, curSeat, _ := m.page.cursorSeat()
	showCursor := m.page.focus == focusSeats
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	sectionTitle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))

	cellWidth := 2
	gridWidth := 0
	for i, section := range m.page.sections {
		b.WriteString(sectionTitle.Render(section.Label()))
		b.WriteString("\n")
		for _, row := range m.page.rows {
			if row.section != i {
				continue
			}
			b.WriteString(fmt.Sprintf("%-2s", row.label))
			for n := 1; n <= row.seats; n++ {
				cell := padCell(fmt.Sprintf("%d", n), cellWidth)
				rendered := seatStyle(m.page.selection.SeatVariant(row.label, n)).Render(cell)
				if showCursor && row.label == curRow && n == curSeat {
					rendered = cursorStyle.Render(cell)
				}
				b.WriteString(" ")
				b.WriteString(rendered)
			}
			b.WriteString("\n")
			gridWidth = max(gridWidth, 2+row.seats*(cellWidth+1))
		}
		b.WriteString("\n")
	}

	screen := screenBarBlock(gridWidth, "SCREEN SIDE")
	screenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	b.WriteString(screenStyle.Render(screen.top) + "\n")
	b.WriteString(screenStyle.Render(screen.mid) + "\n")
	b.WriteString(screenStyle.Render(screen.bot) + "\n\n")

	b.WriteString(legendView())
	b.WriteString("\n\n")
	b.WriteString(checkoutButton())
	return b.String()
}

func legendView() string {
	entries := []string{
		seatBestseller.Render("■ Bestseller"),
		seatAvailable.Render("■ Available"),
		seatSelected.Render("■") + " Selected",
		seatSold.Render("■") + " Sold",
	}
	return strings.Join(entries, "   ")
}

func checkoutButton() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("#e64949")).
		Padding(0, 3).
		Render("Proceed to Checkout →") + "  " + hint("press c")
}

// toast is a transient notice. seq ties it to the tick that dismisses it.
type toast struct {
	notice  seating.Notice
	seq     int
	visible bool
}

func newToast(err error) (toast, bool) {
	notice, ok := seating.NoticeFor(err)
	if !ok {
		return toast{}, false
	}
	return toast{notice: notice, visible: true}, true
}

func (t toast) view() string {
	if !t.visible {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("160")).
		Padding(0, 2).
		Render(t.notice.Message())
}

func clockTime(iso string, loc *time.Location) (string, error) {
	return format.ClockTimeIn(iso, loc)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
