package calc

// ButtonForRune maps a typed character to the key it stands for.
func ButtonForRune(r rune) (Button, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Zero + Button(r-'0'), true
	}

	switch r {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case 'x', 'X', '*':
		return Multiply, true
	case '/', '÷':
		return Divide, true
	case '=':
		return Equals, true
	case '.', ',':
		return Decimal, true
	case '%':
		return Percent, true
	case 'c', 'C', 'a', 'A':
		return AC, true
	case 'n', 'N', '_':
		return PlusMinus, true
	}
	return 0, false
}
