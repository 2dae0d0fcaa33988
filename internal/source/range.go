package source

// Range is a half-open [Start, End) span of byte offsets into a Ref's
// text, per spec.md's Range invariant: Range.end >= Range.start, and every
// node's Range lies within [0, text.length] of its Source.
type Range struct {
	Start int
	End   int
	Src   Ref
}

// NewRange builds a Range over the given Ref.
func NewRange(src Ref, start, end int) Range {
	return Range{Start: start, End: end, Src: src}
}

// Join returns the smallest Range covering both a and b. Both ranges must
// point at the same Ref; mismatched sources are a programmer error in the
// caller, not a recoverable condition, so Join panics rather than silently
// producing a nonsensical span.
func Join(a, b Range) Range {
	if a.Src != b.Src {
		panic("source: Join across different sources")
	}
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}
	return Range{Start: start, End: end, Src: a.Src}
}

// Text returns the literal source slice this Range covers.
func (r Range) Text() string {
	if r.Src == nil {
		return ""
	}
	text := r.Src.Text()
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}
	return text[start:end]
}

// StartPos resolves the range's start offset to a line/column Position.
func (r Range) StartPos() Position {
	if r.Src == nil {
		return Position{}
	}
	line, col := LineCol(r.Src.Text(), r.Start)
	return Position{Offset: r.Start, Line: line, Column: col}
}

// EndPos resolves the range's end offset to a line/column Position.
func (r Range) EndPos() Position {
	if r.Src == nil {
		return Position{}
	}
	line, col := LineCol(r.Src.Text(), r.End)
	return Position{Offset: r.End, Line: line, Column: col}
}
