package output

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Say prints a narrative message. Indentation is stripped from every line,
// paragraphs separated by blank lines are re-flowed independently, and each
// paragraph is word-wrapped to the printer's width. Paragraphs stay
// separated by a single blank line in the output.
//
// This lets game text be written as indented multi-line string literals
// without the indentation or source line breaks leaking to the player.
func (p *Printer) Say(msg string) {
	width := p.Width()

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		collapsed := strings.Join(strings.Fields(strings.Join(current, " ")), " ")
		paragraphs = append(paragraphs, wordwrap.String(collapsed, width))
		current = nil
	}

	for _, line := range strings.Split(msg, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	p.output(SemanticNarrative, strings.Join(paragraphs, "\n\n"), true)
}
