// Package calc holds the keypad model: the closed set of calculator buttons,
// their labels and visual categories, the fixed grid they are laid out in, and
// the display state that button presses write to.
package calc

// Button identifies one calculator key.
type Button uint8

const (
	Zero Button = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Plus
	Minus
	Multiply
	Divide
	Equals
	Decimal
	AC
	PlusMinus
	Percent

	buttonCount
)

// Count is the number of distinct buttons.
const Count = int(buttonCount)

// Category is the visual grouping of a button.
type Category uint8

const (
	Digit Category = iota + 1
	Function
	Operator
)

func (c Category) String() string {
	switch c {
	case Digit:
		return "digit"
	case Function:
		return "function"
	case Operator:
		return "operator"
	default:
		return "unknown"
	}
}

// All returns every button in declaration order.
func All() []Button {
	out := make([]Button, 0, buttonCount)
	for b := Button(0); b < buttonCount; b++ {
		out = append(out, b)
	}
	return out
}

// Valid reports whether b is one of the declared buttons.
func (b Button) Valid() bool { return b < buttonCount }

// Label returns the text shown on the key and written to the display.
func (b Button) Label() string {
	switch b {
	case Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return string(rune('0' + b))
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "X"
	case Divide:
		return "÷"
	case Equals:
		return "="
	case Decimal:
		return "."
	case AC:
		return "AC"
	case PlusMinus:
		return "+/-"
	case Percent:
		return "%"
	default:
		return ""
	}
}

// Category returns the visual grouping used to pick the key background.
func (b Button) Category() Category {
	switch b {
	case Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return Digit
	case AC, PlusMinus, Percent:
		return Function
	default:
		return Operator
	}
}

var buttonNames = [buttonCount]string{
	Zero:      "zero",
	One:       "one",
	Two:       "two",
	Three:     "three",
	Four:      "four",
	Five:      "five",
	Six:       "six",
	Seven:     "seven",
	Eight:     "eight",
	Nine:      "nine",
	Plus:      "plus",
	Minus:     "minus",
	Multiply:  "multiply",
	Divide:    "divide",
	Equals:    "equals",
	Decimal:   "decimal",
	AC:        "ac",
	PlusMinus: "plusMinus",
	Percent:   "percent",
}

func (b Button) String() string {
	if !b.Valid() {
		return "unknown"
	}
	return buttonNames[b]
}
