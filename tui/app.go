package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"quickshow-cli/model"
	"quickshow-cli/seating"
	"quickshow-cli/service"
	"quickshow-cli/store"
)

type appState int

const (
	stateLoadingMovies appState = iota
	stateSelectMovie
	stateLoadingShow
	stateMovieDetail
	stateSeatLayout
	stateBookings
	stateShowNotFound
	stateError
)

const defaultToastDuration = 2 * time.Second

// Options configures the TUI. Source is required.
type Options struct {
	Source         service.Source
	Logger         *slog.Logger
	Location       *time.Location
	ToastDuration  time.Duration
	RequestTimeout time.Duration

	// StartMovieID and StartDate open the seat layout page directly.
	StartMovieID string
	StartDate    string
}

type appModel struct {
	source         service.Source
	logger         *slog.Logger
	loc            *time.Location
	toastDuration  time.Duration
	requestTimeout time.Duration

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movies    []model.Movie
	show      model.Show
	movieID   string
	date      string
	startDate string

	movieList list.Model
	dateList  list.Model
	spinner   spinner.Model

	page     seatPage
	checkout checkoutSummary

	toast    toast
	toastSeq int
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type moviesMsg struct {
	movies []model.Movie
	err    error
}

type showMsg struct {
	id   string
	show model.Show
	err  error
}

type toastExpiredMsg struct {
	seq int
}

func New(opts Options) tea.Model {
	m := appModel{
		source:         opts.Source,
		logger:         opts.Logger,
		loc:            opts.Location,
		toastDuration:  opts.ToastDuration,
		requestTimeout: opts.RequestTimeout,
		state:          stateLoadingMovies,
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	if m.loc == nil {
		m.loc = time.Local
	}
	if m.toastDuration <= 0 {
		m.toastDuration = defaultToastDuration
	}
	if id := strings.TrimSpace(opts.StartMovieID); id != "" {
		m.movieID = id
		m.startDate = strings.TrimSpace(opts.StartDate)
		m.state = stateLoadingShow
	}

	m.movieList = newList("Now Showing")
	m.dateList = newList("Select Date")
	m.dateList.SetFilteringEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	if m.state == stateLoadingShow {
		return tea.Batch(m.fetchShowCmd(m.movieID), m.spinner.Tick)
	}
	return tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast = toast{}
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case moviesMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectMovie)
		}
		m.movies = msg.movies
		m.movieList.SetItems(buildMovieItems(msg.movies))
		m.state = stateSelectMovie
		return m, nil

	case showMsg:
		if msg.id != m.movieID {
			return m, nil
		}
		if msg.err != nil {
			if service.IsNotFound(msg.err) {
				m.logger.Info("show not found", "id", msg.id)
				m.state = stateShowNotFound
				return m, nil
			}
			return m, errWithOptionsCmd(msg.err, stateSelectMovie)
		}
		m.show = msg.show
		if err := store.RememberMovie(msg.show.Movie); err != nil {
			m.logger.Warn("remember movie failed", "id", msg.id, "err", err)
		}
		m.dateList.SetItems(buildDateItems(msg.show))
		m.dateList.Select(0)
		if m.startDate != "" {
			date := m.startDate
			m.startDate = ""
			m.openSeatLayout(date)
			return m, nil
		}
		m.state = stateMovieDetail
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateMovieDetail:
		m.dateList, cmd = m.dateList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoadingMovies, stateLoadingShow:
		return header + "\n\n" + m.loadingView()
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateMovieDetail:
		return header + "\n\n" + m.movieDetailView() + "\n\n" + m.dateList.View()
	case stateSeatLayout:
		return header + "\n\n" + m.seatLayoutView()
	case stateBookings:
		return header + "\n\n" + m.bookingsView()
	case stateShowNotFound:
		return header + "\n\n" + m.notFoundView()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := AdminTitle("Quick", "Show")
	sub := []string{}
	if m.show.Movie.Title != "" && m.state != stateSelectMovie && m.state != stateLoadingMovies {
		sub = append(sub, fmt.Sprintf("Movie: %s", m.show.Movie.Title))
	}
	if m.date != "" && (m.state == stateSeatLayout || m.state == stateBookings) {
		sub = append(sub, fmt.Sprintf("Date: %s", m.date))
	}
	if m.state == stateSeatLayout {
		if slot, ok := m.page.selection.Time(); ok {
			sub = append(sub, fmt.Sprintf("Time: %s", m.clockLabel(slot)))
		}
		sub = append(sub, fmt.Sprintf("Seats: %d/%d", m.page.selection.Len(), seating.MaxSeats))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back • type to filter • enter open movie"
	switch m.state {
	case stateMovieDetail:
		hints = "ctrl+c quit • esc back • enter pick date"
	case stateSeatLayout:
		hints = "ctrl+c quit • esc back • tab timings/seats • arrows move • space select • c checkout"
	case stateBookings:
		hints = "ctrl+c quit • esc movies"
	case stateShowNotFound, stateError:
		hints = "ctrl+c quit • esc back"
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next, cmd := m.goBack()
		return next, cmd, true
	}

	if m.state == stateSeatLayout {
		cmd, handled := m.handleSeatLayoutKey(msg)
		return m, cmd, handled
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			return m, m.openMovie(item.movie.Id), true
		case stateMovieDetail:
			item, ok := m.dateList.SelectedItem().(dateItem)
			if !ok {
				return m, nil, true
			}
			m.openSeatLayout(item.date)
			return m, nil, true
		case stateShowNotFound:
			next, cmd := m.goBack()
			return next, cmd, true
		}
	}
	return m, nil, false
}

// openMovie navigates to the movie detail screen. The detail view starts at
// the top of its date list.
func (m *appModel) openMovie(id string) tea.Cmd {
	m.movieID = id
	m.show = model.Show{}
	m.dateList.SetItems(nil)
	m.dateList.Select(0)
	m.state = stateLoadingShow
	return tea.Batch(m.fetchShowCmd(id), m.spinner.Tick)
}

// openSeatLayout enters the seat page with a fresh selection.
func (m *appModel) openSeatLayout(date string) {
	m.date = date
	m.page = newSeatPage(m.show, date)
	m.toast = toast{}
	m.state = stateSeatLayout
	if len(m.page.slots) == 0 {
		m.logger.Info("no showtimes for date", "id", m.movieID, "date", date)
	}
}

// proceedToCheckout leaves the seat page for the bookings screen. It does not require
// a showtime or any seats.
func (m *appModel) proceedToCheckout() {
	m.checkout = newCheckoutSummary(m.show.Movie, m.date, m.page.selection, m.clockLabel)
	m.logger.Info("checkout", "id", m.movieID, "date", m.date, "seats", m.checkout.seats, "ref", m.checkout.reference)
	m.page = seatPage{}
	m.toast = toast{}
	m.state = stateBookings
}

func (m appModel) goBack() (appModel, tea.Cmd) {
	switch m.state {
	case stateMovieDetail, stateShowNotFound, stateBookings:
		if len(m.movieList.Items()) == 0 {
			m.state = stateLoadingMovies
			return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
		}
		m.state = stateSelectMovie
	case stateSeatLayout:
		m.page = seatPage{}
		m.toast = toast{}
		m.state = stateMovieDetail
	case stateError:
		m.state = m.lastState
		if m.state == stateSelectMovie && len(m.movieList.Items()) == 0 {
			m.state = stateLoadingMovies
			return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
		}
	default:
		return m, nil
	}
	return m, nil
}

func (m *appModel) raiseNotice(err error) tea.Cmd {
	t, ok := newToast(err)
	if !ok {
		return nil
	}
	m.toastSeq++
	t.seq = m.toastSeq
	m.toast = t
	seq := t.seq
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	listPtr.SetFilterText(listPtr.FilterValue() + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := trimLastRune(listPtr.FilterValue())
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	return m.state == stateLoadingMovies || m.state == stateLoadingShow
}

func (m appModel) loadingView() string {
	title := "Loading..."
	switch m.state {
	case stateLoadingMovies:
		title = "Loading movies"
	case stateLoadingShow:
		title = "Loading showtimes"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func (m appModel) notFoundView() string {
	msg := lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).
		Render(fmt.Sprintf("Show %q not found.", m.movieID))
	return msg + "\n\n" + hint("Press esc or enter to go back to the movie list.")
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, max(6, h-8))
}

func (m appModel) clockLabel(slot model.TimeSlot) string {
	label, err := clockTime(slot.Time, m.loc)
	if err != nil {
		m.logger.Warn("unparseable showtime", "time", slot.Time, "err", err)
		return slot.Time
	}
	return label
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errWithOptionsCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{
			err:            err,
			returnState:    returnState,
			returnStateSet: true,
		}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingMovies, stateLoadingShow:
		return stateSelectMovie
	case stateError:
		return stateSelectMovie
	default:
		return state
	}
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func (m appModel) lookupContext() (context.Context, context.CancelFunc) {
	if m.requestTimeout > 0 {
		return context.WithTimeout(context.Background(), m.requestTimeout)
	}
	return context.WithCancel(context.Background())
}

func (m appModel) fetchMoviesCmd() tea.Cmd {
	return func() tea.Msg {
		if m.source == nil {
			return moviesMsg{err: errors.New("no show source configured")}
		}
		ctx, cancel := m.lookupContext()
		defer cancel()
		movies, err := m.source.ListMovies(ctx)
		if err == nil && len(movies) == 0 {
			err = errors.New("no movies are showing")
		}
		return moviesMsg{movies: movies, err: err}
	}
}

func (m appModel) fetchShowCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if m.source == nil {
			return showMsg{id: id, err: errors.New("no show source configured")}
		}
		ctx, cancel := m.lookupContext()
		defer cancel()
		show, err := m.source.FindShowByID(ctx, id)
		return showMsg{id: id, show: show, err: err}
	}
}
