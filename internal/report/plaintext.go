package report

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// PlainText remove a formatação Markdown e devolve texto puro.
// Tabelas viram linhas com células separadas por tabulação.
func PlainText(md string) string {
	if md == "" {
		return ""
	}

	doc := markdown.Parse([]byte(md), parser.NewWithExtensions(parser.CommonExtensions))

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}
	return result
}

// extractText percorre a AST e extrai o conteúdo textual
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak:
		buf.WriteString("\n")
		return

	case *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	if _, ok := node.(*ast.ListItem); ok {
		buf.WriteString("- ")
	}

	for i, child := range container.Children {
		if _, ok := child.(*ast.TableCell); ok && i > 0 {
			buf.WriteString("\t")
		}
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.Table:
		buf.WriteString("\n\n")
	case *ast.List:
		buf.WriteString("\n")
	case *ast.TableRow:
		buf.WriteString("\n")
	}
}
