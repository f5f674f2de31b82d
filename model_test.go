package sketch

import "testing"

func TestStrokeModelEmpty(t *testing.T) {
	var m StrokeModel
	if m.Len() != 0 || m.Last() != nil {
		t.Errorf("empty model Len() = %d, Last() = %v", m.Len(), m.Last())
	}
	if m.extend(Pt(1, 1)) {
		t.Error("extend on empty model = true")
	}
	if m.seal() {
		t.Error("seal on empty model = true")
	}
}

func TestStrokeModelBeginExtendSeal(t *testing.T) {
	var m StrokeModel
	ts := DefaultToolState()

	m.begin(ts.newStroke(Pt(0, 0)))
	m.extend(Pt(1, 1))
	if !m.seal() {
		t.Fatal("seal() = false on open stroke")
	}
	if m.seal() {
		t.Error("second seal() = true")
	}
	if m.extend(Pt(2, 2)) {
		t.Error("extend after seal = true")
	}

	m.begin(ts.newStroke(Pt(5, 5)))
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if m.At(0).Len() != 2 || m.At(1).Len() != 1 {
		t.Errorf("point counts = %d, %d, want 2, 1", m.At(0).Len(), m.At(1).Len())
	}
	if m.Last() != m.At(1) {
		t.Error("Last() is not the most recent stroke")
	}
}

func TestStrokeModelStrokesIsCopy(t *testing.T) {
	var m StrokeModel
	m.begin(DefaultToolState().newStroke(Pt(0, 0)))
	got := m.Strokes()
	got[0] = nil
	if m.At(0) == nil {
		t.Error("Strokes() exposed the model's backing slice")
	}
}

func TestStrokeModelClone(t *testing.T) {
	var m StrokeModel
	m.begin(DefaultToolState().newStroke(Pt(0, 0)))
	c := m.Clone()

	m.extend(Pt(1, 1))
	m.clear()

	if c.Len() != 1 {
		t.Fatalf("clone Len() = %d, want 1", c.Len())
	}
	if c.At(0).Len() != 1 {
		t.Errorf("clone stroke Len() = %d, want 1", c.At(0).Len())
	}
}

func TestStrokeModelClear(t *testing.T) {
	var m StrokeModel
	for i := 0; i < 3; i++ {
		m.begin(DefaultToolState().newStroke(Pt(float64(i), 0)))
		m.seal()
	}
	m.clear()
	if m.Len() != 0 || m.Last() != nil {
		t.Errorf("after clear Len() = %d, Last() = %v", m.Len(), m.Last())
	}
}
