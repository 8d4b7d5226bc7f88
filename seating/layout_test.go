package seating

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_FixedOrder(t *testing.T) {
	layout := Layout()
	require.Len(t, layout, 3)

	want := []Section{
		{Key: Premium, Price: 250, Rows: []string{"K", "J", "I", "H", "G", "F", "E"}, SeatsPerRow: 20},
		{Key: Executive, Price: 230, Rows: []string{"D", "C", "B"}, SeatsPerRow: 17},
		{Key: Normal, Price: 210, Rows: []string{"A"}, SeatsPerRow: 15},
	}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_CallersCannotMutateTable(t *testing.T) {
	first := Layout()
	first[0].Rows[0] = "Z"
	first[0].Price = 1

	again := Layout()
	assert.Equal(t, "K", again[0].Rows[0])
	assert.Equal(t, 250, again[0].Price)
}

func TestSectionLabel(t *testing.T) {
	assert.Equal(t, "₹250 PREMIUM", Layout()[0].Label())
	assert.Equal(t, "₹210 NORMAL", Layout()[2].Label())
}

func TestParseSeatID(t *testing.T) {
	row, n, ok := ParseSeatID(SeatID("K", 12))
	require.True(t, ok)
	assert.Equal(t, "K", row)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"", "K", "K-", "-3", "K-x", "K-0"} {
		_, _, ok := ParseSeatID(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestSectionForRow(t *testing.T) {
	section, ok := SectionForRow("C")
	require.True(t, ok)
	assert.Equal(t, Executive, section.Key)

	_, ok = SectionForRow("Q")
	assert.False(t, ok)
}

func TestQuote(t *testing.T) {
	items, total, err := Quote([]string{"K-1", "C-4", "A-15"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, Premium, items[0].Section)
	assert.Equal(t, Executive, items[1].Section)
	assert.Equal(t, Normal, items[2].Section)
	assert.True(t, total.Equal(decimal.NewFromInt(690)), "total = %s", total)
	assert.Equal(t, "₹690", FormatRupees(total))

	_, total, err = Quote(nil)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	_, _, err = Quote([]string{"Q-1"})
	assert.Error(t, err)
}
