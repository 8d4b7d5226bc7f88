package seating

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickshow-cli/model"
)

var (
	slotMorning = model.TimeSlot{Time: "2025-07-24T01:00:00.000Z"}
	slotEvening = model.TimeSlot{Time: "2025-07-24T12:00:00.000Z"}
)

func withTime() *Selection {
	s := &Selection{}
	s.SelectTime(slotMorning)
	return s
}

func TestSoldAndBestsellerRules(t *testing.T) {
	for n := 1; n <= 200; n++ {
		if IsSold(n) != (n%7 == 0) {
			t.Fatalf("IsSold(%d) = %v", n, IsSold(n))
		}
		if !IsSold(n) && IsBestseller(n) != (n%6 == 0) {
			t.Fatalf("IsBestseller(%d) = %v", n, IsBestseller(n))
		}
		if IsSold(n) && IsBestseller(n) {
			t.Fatalf("seat %d cannot be both sold and bestseller", n)
		}
	}
}

func TestPremiumRowExample(t *testing.T) {
	premium := Layout()[0]
	require.Equal(t, Premium, premium.Key)
	assert.Equal(t, 250, premium.Price)
	assert.Equal(t, 20, premium.SeatsPerRow)
	assert.Equal(t, "K", premium.Rows[0])

	assert.True(t, IsBestseller(6))
	assert.True(t, IsBestseller(12))
	assert.False(t, IsSold(6))
	assert.False(t, IsSold(12))
	assert.True(t, IsSold(7))
	assert.True(t, IsSold(14))

	s := &Selection{}
	err := s.Toggle("K", 6)
	require.ErrorIs(t, err, ErrNoTimeSelected)
	assert.Zero(t, s.Len())
}

func TestToggleSeat_SoldIsNoop(t *testing.T) {
	s := withTime()
	require.NoError(t, s.ToggleSeat("K-7", true))
	assert.Zero(t, s.Len())

	require.NoError(t, (&Selection{}).ToggleSeat("K-7", true))
}

func TestToggleSeat_RequiresTime(t *testing.T) {
	s := &Selection{}
	assert.Equal(t, NoTimeSelected, s.Phase())

	err := s.ToggleSeat("A-1", false)
	require.ErrorIs(t, err, ErrNoTimeSelected)
	assert.Empty(t, s.Seats())
}

func TestToggleSeat_TwiceRestoresSelection(t *testing.T) {
	s := withTime()
	require.NoError(t, s.ToggleSeat("B-2", false))
	before := s.Seats()

	require.NoError(t, s.ToggleSeat("C-3", false))
	require.NoError(t, s.ToggleSeat("C-3", false))

	if diff := cmp.Diff(before, s.Seats()); diff != "" {
		t.Fatalf("selection changed (-want +got):\n%s", diff)
	}
}

func TestToggleSeat_LimitKeepsOriginalSeats(t *testing.T) {
	s := withTime()
	want := []string{"K-1", "K-2", "K-3", "K-4", "K-5"}
	for _, id := range want {
		require.NoError(t, s.ToggleSeat(id, false))
	}

	err := s.ToggleSeat("K-8", false)
	require.ErrorIs(t, err, ErrSeatLimitExceeded)
	if diff := cmp.Diff(want, s.Seats()); diff != "" {
		t.Fatalf("selection changed (-want +got):\n%s", diff)
	}

	// Removing is still allowed at the limit.
	require.NoError(t, s.ToggleSeat("K-3", false))
	assert.Equal(t, 4, s.Len())
	require.NoError(t, s.ToggleSeat("K-8", false))
	assert.Equal(t, []string{"K-1", "K-2", "K-4", "K-5", "K-8"}, s.Seats())
}

func TestToggleSeat_NeverExceedsLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := &Selection{}
	layout := Layout()
	for i := 0; i < 2000; i++ {
		if i == 10 {
			s.SelectTime(slotMorning)
		}
		section := layout[rng.Intn(len(layout))]
		row := section.Rows[rng.Intn(len(section.Rows))]
		number := rng.Intn(section.SeatsPerRow) + 1

		err := s.Toggle(row, number)
		if err != nil && !errors.Is(err, ErrNoTimeSelected) && !errors.Is(err, ErrSeatLimitExceeded) {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Len() > MaxSeats {
			t.Fatalf("selection grew to %d after %d toggles", s.Len(), i+1)
		}
	}
}

func TestSelectTime_KeepsSeats(t *testing.T) {
	s := &Selection{}
	s.SelectTime(slotMorning)
	require.NoError(t, s.ToggleSeat("D-1", false))
	require.NoError(t, s.ToggleSeat("D-2", false))

	s.SelectTime(slotEvening)

	assert.Equal(t, TimeSelected, s.Phase())
	slot, ok := s.Time()
	require.True(t, ok)
	assert.Equal(t, slotEvening, slot)
	assert.Equal(t, []string{"D-1", "D-2"}, s.Seats())
}

func TestSeats_ReturnsCopy(t *testing.T) {
	s := withTime()
	require.NoError(t, s.ToggleSeat("A-1", false))

	seats := s.Seats()
	seats[0] = "Z-99"

	assert.True(t, s.Selected("A-1"))
	assert.False(t, s.Selected("Z-99"))
}

func TestNoticeFor(t *testing.T) {
	notice, ok := NoticeFor(ErrNoTimeSelected)
	require.True(t, ok)
	assert.Equal(t, NoticeSelectTime, notice)
	assert.Equal(t, "Please select a time", notice.Message())

	notice, ok = NoticeFor(ErrSeatLimitExceeded)
	require.True(t, ok)
	assert.Equal(t, NoticeSeatLimit, notice)
	assert.Equal(t, "Maximum 5 seats are selected", notice.Message())

	_, ok = NoticeFor(errors.New("other"))
	assert.False(t, ok)
	_, ok = NoticeFor(nil)
	assert.False(t, ok)
}
