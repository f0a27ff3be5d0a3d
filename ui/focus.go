package ui

import "calcpad/calc"

// cellOf returns the first grid cell b covers within its row.
func cellOf(b calc.Button) (row, cell int) {
	row, col, ok := calc.Position(b)
	if !ok {
		return 0, 0
	}
	for c := 0; c < col; c++ {
		prev, _ := calc.At(row, c)
		cell += calc.Span(prev)
	}
	return row, cell
}

// buttonAtCell returns the button covering cell in row.
func buttonAtCell(row, cell int) calc.Button {
	at := 0
	var last calc.Button
	for c := 0; c < calc.RowLen(row); c++ {
		b, _ := calc.At(row, c)
		last = b
		if cell < at+calc.Span(b) {
			return b
		}
		at += calc.Span(b)
	}
	return last
}

// moveFocus returns the button reached from b by stepping dr rows or dc columns.
// Both axes wrap.
func moveFocus(b calc.Button, dr, dc int) calc.Button {
	row, col, ok := calc.Position(b)
	if !ok {
		return calc.AC
	}
	if dc != 0 {
		n := calc.RowLen(row)
		next, _ := calc.At(row, ((col+dc)%n+n)%n)
		return next
	}
	if dr != 0 {
		_, cell := cellOf(b)
		rows := calc.RowCount()
		return buttonAtCell(((row+dr)%rows+rows)%rows, cell)
	}
	return b
}
