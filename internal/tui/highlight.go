package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// highlightJSON renders a pretty-printed JSON document as styled terminal
// lines. Falls back to plain text when tokenizing fails.
func highlightJSON(src string) []string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return strings.Split(src, "\n")
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return strings.Split(src, "\n")
	}

	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}

	var lines []string
	var current strings.Builder

	for _, token := range iterator.Tokens() {
		// Split tokens that span multiple lines
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
			if part == "" {
				continue
			}
			if color := tokenColor(style, token.Type); color != "" {
				current.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(part))
			} else {
				current.WriteString(part)
			}
		}
	}
	lines = append(lines, current.String())

	return lines
}

func tokenColor(style *chroma.Style, tt chroma.TokenType) string {
	entry := style.Get(tt)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}
