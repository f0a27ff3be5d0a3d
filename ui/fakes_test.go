package ui

import (
	"fmt"

	"calcpad/calc"
	"calcpad/hal"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }

func (f *fakeFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *fakeFB) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakePointer struct{ ch chan hal.Tap }

func (p fakePointer) Taps() <-chan hal.Tap { return p.ch }

type fakeInput struct {
	kbd fakeKeyboard
	ptr fakePointer
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }
func (in fakeInput) Pointer() hal.Pointer   { return in.ptr }

type fakeTime struct{ ch chan uint64 }

func (t fakeTime) Ticks() <-chan uint64 { return t.ch }

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type harness struct {
	fb      *fakeFB
	in      fakeInput
	ticks   fakeTime
	log     *fakeLogger
	display *calc.Display
	svc     *Service
}

func newHarness(withTicks bool) (*harness, error) {
	return newHarnessSize(320, 480, withTicks)
}

func newHarnessSize(w, ht int, withTicks bool) (*harness, error) {
	h := &harness{
		fb: newFakeFB(w, ht),
		in: fakeInput{
			kbd: fakeKeyboard{ch: make(chan hal.KeyEvent, 16)},
			ptr: fakePointer{ch: make(chan hal.Tap, 16)},
		},
		log:     &fakeLogger{},
		display: calc.NewDisplay(),
	}
	var t hal.Time
	if withTicks {
		h.ticks = fakeTime{ch: make(chan uint64, 16)}
		t = h.ticks
	}
	svc, err := New(fakeDisplay{fb: h.fb}, h.in, t, h.log, h.display, DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("new service: %w", err)
	}
	h.svc = svc
	return h, nil
}

func (h *harness) typeRunes(s string) {
	for _, r := range s {
		h.in.kbd.ch <- hal.KeyEvent{Press: true, Rune: r}
	}
}

func (h *harness) key(code hal.KeyCode) {
	h.in.kbd.ch <- hal.KeyEvent{Code: code, Press: true}
}
