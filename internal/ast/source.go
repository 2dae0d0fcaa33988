package ast

import "golang.org/x/text/unicode/norm"

// Source is one compilation unit: the teacher's Program (see stmt.go's
// original compiler/internal/frontend/ast/stmt.go) split the per-file
// and whole-compilation concerns into a single struct; this expansion
// separates them per spec.md §3 ("Program. ... Source. One compilation
// unit.").
//
// Source implements source.Ref (NormalizedPath/Text) so internal/lexer
// and internal/report can hold a back-pointer to it without importing
// this package — see internal/source.Ref's doc comment for why.
type Source struct {
	OriginalPath   string
	normalizedPath string
	text           string
	IsEntry        bool
	Statements     []Statement
}

// NewSource NFC-normalizes raw before tokenization (the Text Normalizer
// domain component: spec.md is silent on Unicode normalization, decided
// here per spec.md §9's Open-Questions-resolution policy, grounded on
// the normalization pass in the go-rst parser example) and resolves
// originalPath to its canonical form.
func NewSource(originalPath string, raw []byte, isEntry bool) *Source {
	return &Source{
		OriginalPath:   originalPath,
		normalizedPath: NormalizePath(originalPath),
		text:           norm.NFC.String(string(raw)),
		IsEntry:        isEntry,
	}
}

func (s *Source) NormalizedPath() string { return s.normalizedPath }
func (s *Source) Text() string           { return s.text }

// Append adds stmt as a top-level statement and sets its parent link
// back to this Source (spec.md §3: "a single mutable parent link ...
// set once when they are appended to a Source").
func (s *Source) Append(stmt Statement) {
	if ps, ok := stmt.(parentSetter); ok {
		ps.SetParent(s)
	}
	s.Statements = append(s.Statements, stmt)
}
