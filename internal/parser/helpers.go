package parser

import (
	"github.com/glyphlang/glyph/internal/ast"
	"github.com/glyphlang/glyph/internal/source"
)

// header builds a node Header whose Range runs from start to the end of
// the last consumed token, the pattern every node constructor in this
// package follows: record the starting offset before parsing a
// production, then close the Range off with header() once the
// production's last token has been consumed.
func (p *Parser) header(kind ast.NodeKind, start int) ast.Header {
	return ast.Header{NodeKind: kind, Range: source.NewRange(p.src, start, p.cur.Range.End)}
}
