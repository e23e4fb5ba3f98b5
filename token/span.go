package token

import "fmt"

type Pos struct {
	Offset int
	Line   int
	Column int
}

// Span is a region of source text. It is only ever used to point
// diagnostics at their origin.
type Span struct {
	FileName string
	Start    Pos
	End      Pos
}

// SpanOf covers everything from the start of first to the end of last.
func SpanOf(first, last Token) Span {
	return Span{FileName: first.FileName, Start: first.Pos(), End: last.End()}
}

// Join returns a span that starts where s starts and ends where o ends.
func (s Span) Join(o Span) Span {
	return Span{FileName: s.FileName, Start: s.Start, End: o.End}
}

func (s Span) String() string {
	if s.FileName == "" {
		return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
	}
	return fmt.Sprintf("%s:%d:%d", s.FileName, s.Start.Line, s.Start.Column)
}
