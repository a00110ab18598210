package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docrtf/internal/doctree"
)

// TextParser handles plain text files. Blank lines separate paragraphs.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Root, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	b := newTreeBuilder(filename)
	for _, para := range splitParagraphs(strings.Join(lines, "\n")) {
		b.addText(para)
	}
	return b.finish(), nil
}

// splitParagraphs splits text at blank or whitespace-only lines.
func splitParagraphs(text string) []string {
	var paragraphs []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return paragraphs
}
