package canvas

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInjected is returned by a Recorder once its failure budget is spent
var ErrInjected = errors.New("canvas: injected failure")

// OpKind identifies a recorded primitive
type OpKind int

const (
	OpNewPage OpKind = iota
	OpLine
	OpDottedLine
	OpText
	OpRect
)

func (k OpKind) String() string {
	switch k {
	case OpNewPage:
		return "page"
	case OpLine:
		return "line"
	case OpDottedLine:
		return "dotted"
	case OpText:
		return "text"
	case OpRect:
		return "rect"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one recorded primitive together with the page it landed on
type Op struct {
	Kind   OpKind
	Page   int
	X1, Y1 float64
	X2, Y2 float64
	Font   Font
	Text   string
}

// Recorder is an in-memory Canvas that logs every primitive.
// It is used to inspect layout decisions without producing a document.
type Recorder struct {
	geometry Geometry
	ops      []Op
	pages    int
	finished bool

	// FailAfter makes every call after the first FailAfter successful ones
	// return ErrInjected. Zero disables injection.
	FailAfter int
	calls     int
}

// NewRecorder creates a recorder with the given page geometry
func NewRecorder(g Geometry) *Recorder {
	return &Recorder{geometry: g}
}

func (r *Recorder) step() error {
	if r.finished {
		return errors.New("canvas: document already finished")
	}
	r.calls++
	if r.FailAfter > 0 && r.calls > r.FailAfter {
		return ErrInjected
	}
	return nil
}

func (r *Recorder) record(op Op) error {
	if err := r.step(); err != nil {
		return err
	}
	op.Page = r.pages
	r.ops = append(r.ops, op)
	return nil
}

func (r *Recorder) Geometry() Geometry { return r.geometry }

func (r *Recorder) NewPage() error {
	if err := r.step(); err != nil {
		return err
	}
	r.pages++
	r.ops = append(r.ops, Op{Kind: OpNewPage, Page: r.pages})
	return nil
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) error {
	return r.record(Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) DrawDottedLine(x1, y1, x2, y2 float64) error {
	return r.record(Op{Kind: OpDottedLine, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) DrawText(x, y float64, font Font, s string) error {
	return r.record(Op{Kind: OpText, X1: x, Y1: y, Font: font, Text: s})
}

func (r *Recorder) FillRect(x, y, w, h float64) error {
	return r.record(Op{Kind: OpRect, X1: x, Y1: y, X2: x + w, Y2: y + h})
}

func (r *Recorder) PageCount() int { return r.pages }

// Finish returns a plain-text dump of the recorded operations
func (r *Recorder) Finish() ([]byte, error) {
	if err := r.step(); err != nil {
		return nil, err
	}
	r.finished = true
	var b strings.Builder
	for _, op := range r.ops {
		switch op.Kind {
		case OpNewPage:
			fmt.Fprintf(&b, "page %d\n", op.Page)
		case OpText:
			fmt.Fprintf(&b, "text %.2f %.2f %q\n", op.X1, op.Y1, op.Text)
		default:
			fmt.Fprintf(&b, "%s %.2f %.2f %.2f %.2f\n", op.Kind, op.X1, op.Y1, op.X2, op.Y2)
		}
	}
	return []byte(b.String()), nil
}

// Ops returns all recorded operations in drawing order
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Len returns the number of recorded primitives, page starts included
func (r *Recorder) Len() int {
	return len(r.ops)
}

// Texts returns the text runs drawn on the given page, in order
func (r *Recorder) Texts(page int) []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText && op.Page == page {
			out = append(out, op.Text)
		}
	}
	return out
}

// FindText returns the first text op whose content equals s
func (r *Recorder) FindText(s string) (Op, bool) {
	for _, op := range r.ops {
		if op.Kind == OpText && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}
