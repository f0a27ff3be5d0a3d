package calc

// Columns is the number of unit-wide cells in every keypad row.
const Columns = 4

var layout = [][]Button{
	{AC, PlusMinus, Percent, Divide},
	{Seven, Eight, Nine, Multiply},
	{Four, Five, Six, Minus},
	{One, Two, Three, Plus},
	{Zero, Decimal, Equals},
}

// Rows returns the keypad grid, top row first. The result is a copy.
func Rows() [][]Button {
	out := make([][]Button, len(layout))
	for i, row := range layout {
		out[i] = append([]Button(nil), row...)
	}
	return out
}

// Span returns how many unit cells b occupies horizontally.
func Span(b Button) int {
	if b == Zero {
		return 2
	}
	return 1
}

// Position returns the row and column index of b within Rows.
func Position(b Button) (row, col int, ok bool) {
	for r, buttons := range layout {
		for c, v := range buttons {
			if v == b {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// At returns the button at row/col, or false when the slot is empty.
func At(row, col int) (Button, bool) {
	if row < 0 || row >= len(layout) {
		return 0, false
	}
	buttons := layout[row]
	if col < 0 || col >= len(buttons) {
		return 0, false
	}
	return buttons[col], true
}

// RowLen returns the number of buttons in row.
func RowLen(row int) int {
	if row < 0 || row >= len(layout) {
		return 0
	}
	return len(layout[row])
}

// RowCount returns the number of keypad rows.
func RowCount() int { return len(layout) }
