package sketch

// StrokeModel is the ordered sequence of strokes on a canvas.
// Index order is Z-order is paint order.
//
// The model is append-only while drawing: the only in-place mutation is
// extending the last stroke, which happens through the Engine. Readers
// get handles via At, Last and Strokes and must not retain them across
// Clear if they expect them to stay on the canvas.
type StrokeModel struct {
	strokes []*Stroke
}

// Len returns the number of strokes.
func (m *StrokeModel) Len() int {
	return len(m.strokes)
}

// At returns the i-th stroke in paint order.
// It panics if i is out of range, like a slice index.
func (m *StrokeModel) At(i int) *Stroke {
	return m.strokes[i]
}

// Last returns the most recently begun stroke, or nil if the model is empty.
func (m *StrokeModel) Last() *Stroke {
	if len(m.strokes) == 0 {
		return nil
	}
	return m.strokes[len(m.strokes)-1]
}

// Strokes returns the stroke handles in paint order.
// The returned slice is a copy; the strokes are shared.
func (m *StrokeModel) Strokes() []*Stroke {
	return append([]*Stroke(nil), m.strokes...)
}

// Clone returns a deep copy of the model, suitable for replay.
func (m *StrokeModel) Clone() *StrokeModel {
	c := &StrokeModel{strokes: make([]*Stroke, len(m.strokes))}
	for i, s := range m.strokes {
		c.strokes[i] = s.Clone()
	}
	return c
}

// begin appends a new in-progress stroke.
func (m *StrokeModel) begin(s *Stroke) {
	m.strokes = append(m.strokes, s)
}

// extend appends p to the last stroke in place.
// It reports false when there is no open stroke to extend.
func (m *StrokeModel) extend(p Point) bool {
	last := m.Last()
	if last == nil {
		return false
	}
	return last.append(p)
}

// seal closes the last stroke. It reports whether a stroke was open.
func (m *StrokeModel) seal() bool {
	last := m.Last()
	if last == nil || last.sealed {
		return false
	}
	last.seal()
	return true
}

func (m *StrokeModel) clear() {
	clear(m.strokes)
	m.strokes = m.strokes[:0]
}
