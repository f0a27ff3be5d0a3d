package calc

// Display is the text currently shown above the keypad.
//
// It has one mutation, ReceiveInput, and notifies subscribers synchronously.
// Not safe for concurrent use: it belongs to the goroutine driving the UI.
type Display struct {
	text string

	nextID uint64
	subs   []subscriber
}

type subscriber struct {
	id uint64
	fn func(text string)
}

// NewDisplay returns an empty display.
func NewDisplay() *Display {
	return &Display{}
}

// Text returns the label of the last received button, or "" before any press.
func (d *Display) Text() string { return d.text }

// ReceiveInput replaces the display text with the label of b.
func (d *Display) ReceiveInput(b Button) {
	d.text = b.Label()

	// Copy so callbacks may cancel themselves.
	subs := append([]subscriber(nil), d.subs...)
	for _, s := range subs {
		s.fn(d.text)
	}
}

// Subscribe registers fn to be called with the new text after every press.
// The returned function removes the subscription; calling it again is a no-op.
func (d *Display) Subscribe(fn func(text string)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range d.subs {
			if s.id == id {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				return
			}
		}
	}
}
