package seating

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	SeatID  string
	Section SectionKey
	Price   decimal.Decimal
}

// Quote prices the given seats by section and returns the line items in input
// order together with their total.
func Quote(seatIDs []string) ([]LineItem, decimal.Decimal, error) {
	items := make([]LineItem, 0, len(seatIDs))
	total := decimal.Zero
	for _, id := range seatIDs {
		row, _, ok := ParseSeatID(id)
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("malformed seat id %q", id)
		}
		section, ok := SectionForRow(row)
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("seat %q is outside the layout", id)
		}
		price := decimal.NewFromInt(int64(section.Price))
		items = append(items, LineItem{SeatID: id, Section: section.Key, Price: price})
		total = total.Add(price)
	}
	return items, total, nil
}

func FormatRupees(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(0)
}
