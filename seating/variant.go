package seating

// Variant is the visual state of one seat cell.
type Variant int

const (
	VariantAvailable Variant = iota
	VariantBestseller
	VariantSelected
	VariantUnavailable
	VariantSold
)

func (v Variant) String() string {
	switch v {
	case VariantBestseller:
		return "bestseller"
	case VariantSelected:
		return "selected"
	case VariantUnavailable:
		return "unavailable"
	case VariantSold:
		return "sold"
	default:
		return "available"
	}
}

// StyleVariant picks a seat's look. Sold wins, then every other seat stays
// neutral until a showtime is chosen.
func StyleVariant(sold, selected, bestseller, hasTime bool) Variant {
	switch {
	case sold:
		return VariantSold
	case !hasTime:
		return VariantUnavailable
	case selected:
		return VariantSelected
	case bestseller:
		return VariantBestseller
	default:
		return VariantAvailable
	}
}

// SeatVariant applies StyleVariant to a seat of the current selection.
func (s *Selection) SeatVariant(row string, number int) Variant {
	return StyleVariant(IsSold(number), s.Selected(SeatID(row, number)), IsBestseller(number), s.HasTime())
}
