package client

// SummaryLine is one submitted order line in the checkout view. Remaining
// starts at the submitted quantity; Selected is the amount marked for the
// current checkout pass.
type SummaryLine struct {
	ItemID    uint
	Name      string
	Price     float64
	Remaining int
	Selected  int
}

// Summary is the post-submission settlement state machine. The submitted
// snapshot is fixed; settlement progress lives entirely in Remaining and
// Selected. Settlement is local to this device: the server is not
// re-contacted on checkout.
type Summary struct {
	TableNumber string
	Comment     string

	lines []*SummaryLine
	index map[uint]*SummaryLine
}

func newSummary(tableNumber, comment string, submitted []orderLine) *Summary {
	s := &Summary{
		TableNumber: tableNumber,
		Comment:     comment,
		index:       make(map[uint]*SummaryLine),
	}
	for _, line := range submitted {
		sl := &SummaryLine{
			ItemID:    line.ID,
			Name:      line.Name,
			Price:     line.Price,
			Remaining: line.Quantity,
		}
		s.lines = append(s.lines, sl)
		s.index[line.ID] = sl
	}
	return s
}

// IncreaseSelection selects one more unit of the item. Silently clamps at
// the remaining quantity; selecting past it is a no-op, not an error.
func (s *Summary) IncreaseSelection(itemID uint) {
	line, ok := s.index[itemID]
	if !ok {
		return
	}
	if line.Selected < line.Remaining {
		line.Selected++
	}
}

// DecreaseSelection deselects one unit, floored at zero.
func (s *Summary) DecreaseSelection(itemID uint) {
	line, ok := s.index[itemID]
	if !ok {
		return
	}
	if line.Selected > 0 {
		line.Selected--
	}
}

// SelectAll marks every line's full remaining quantity for checkout.
func (s *Summary) SelectAll() {
	for _, line := range s.lines {
		line.Selected = line.Remaining
	}
}

// SelectedTotal is the running total for the current selection,
// recomputed on every call. Display-only; the server never confirms it.
func (s *Summary) SelectedTotal() float64 {
	var total float64
	for _, line := range s.lines {
		total += float64(line.Selected) * line.Price
	}
	return total
}

// Checkout settles the current selection: every line's remaining
// quantity drops by its selected quantity and all selections reset, in
// one transition. It returns true when nothing remains, the signal to
// leave the summary and return to the menu.
func (s *Summary) Checkout() bool {
	for _, line := range s.lines {
		line.Remaining -= line.Selected
		if line.Remaining < 0 {
			line.Remaining = 0
		}
		line.Selected = 0
	}
	for _, line := range s.lines {
		if line.Remaining > 0 {
			return false
		}
	}
	return true
}

// Lines returns a copy of the current settlement state in submission
// order.
func (s *Summary) Lines() []SummaryLine {
	out := make([]SummaryLine, len(s.lines))
	for i, line := range s.lines {
		out[i] = *line
	}
	return out
}
