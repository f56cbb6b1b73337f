package meeting

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const excerptLength = 80

// Excerpt renders the first paragraphs of markdown content as plain text,
// cut to at most max runes. Headings and code blocks are skipped.
func Excerpt(markdown string, max int) string {
	if strings.TrimSpace(markdown) == "" || max <= 0 {
		return ""
	}

	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	full := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading, ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		case ast.KindParagraph, ast.KindTextBlock:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
		case ast.KindText:
			t := n.(*ast.Text)
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case ast.KindString:
			b.Write(n.(*ast.String).Value)
		}

		if utf8.RuneCountInString(b.String()) > max {
			full = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	excerpt := strings.Join(strings.Fields(b.String()), " ")
	if full || utf8.RuneCountInString(excerpt) > max {
		runes := []rune(excerpt)
		if len(runes) > max {
			cut := max - 3
			if cut < 0 {
				cut = 0
			}
			excerpt = strings.TrimSpace(string(runes[:cut])) + "..."
		}
	}
	return excerpt
}
