package compose

// strategy applies a resolved Edit to a surface. The native and splice
// strategies must leave identical content and selection behind.
type strategy interface {
	apply(s Surface, e Edit)
	name() string
}

// nativeStrategy drives the host's own insert primitive.
type nativeStrategy struct {
	inserter TextInserter
}

func (n nativeStrategy) apply(s Surface, e Edit) {
	s.SetSelection(e.Replace)
	n.inserter.InsertText(e.Text)
	s.SetSelection(e.Select)
}

func (nativeStrategy) name() string { return "native" }

// spliceStrategy rewrites the whole value. It works on any surface but
// bypasses whatever history the host keeps for native inserts.
type spliceStrategy struct{}

func (spliceStrategy) apply(s Surface, e Edit) {
	current := Buffer{Text: s.Value(), Selection: s.Selection()}
	next := e.Apply(current)
	s.SetValue(next.Text)
	s.SetSelection(next.Selection)
}

func (spliceStrategy) name() string { return "splice" }

func probeStrategy(s Surface, forceSplice bool) strategy {
	if forceSplice {
		return spliceStrategy{}
	}
	if inserter, ok := s.(TextInserter); ok {
		return nativeStrategy{inserter: inserter}
	}
	return spliceStrategy{}
}
