package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleVariant(t *testing.T) {
	tests := []struct {
		name                             string
		sold, selected, bestseller, time bool
		want                             Variant
	}{
		{name: "sold wins without time", sold: true, want: VariantSold},
		{name: "sold wins with time", sold: true, time: true, selected: true, want: VariantSold},
		{name: "neutral until time", bestseller: true, selected: true, want: VariantUnavailable},
		{name: "plain seat without time", want: VariantUnavailable},
		{name: "selected beats bestseller", selected: true, bestseller: true, time: true, want: VariantSelected},
		{name: "bestseller", bestseller: true, time: true, want: VariantBestseller},
		{name: "available", time: true, want: VariantAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StyleVariant(tt.sold, tt.selected, tt.bestseller, tt.time)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestSeatVariant_FollowsSelection(t *testing.T) {
	s := &Selection{}
	assert.Equal(t, VariantUnavailable, s.SeatVariant("K", 6))
	assert.Equal(t, VariantSold, s.SeatVariant("K", 7))

	s.SelectTime(slotMorning)
	assert.Equal(t, VariantBestseller, s.SeatVariant("K", 6))
	assert.Equal(t, VariantAvailable, s.SeatVariant("K", 5))

	require.NoError(t, s.Toggle("K", 6))
	assert.Equal(t, VariantSelected, s.SeatVariant("K", 6))
	assert.Equal(t, VariantSold, s.SeatVariant("K", 14))
}
