package launch

import "strings"

// DescriptionParagraphs parses an entry description written in the
// restricted description format: flat paragraphs separated by blank
// lines, plus indented (4-space or tab) code blocks. Soft line breaks
// inside a paragraph become single spaces; code blocks keep their
// newlines with the indent stripped.
//
// Anything with block structure beyond that (headings, lists, quotes,
// fenced code) makes the function report !ok, and callers fall back to
// rendering the raw text as a single paragraph.
func DescriptionParagraphs(desc string) (paragraphs []string, ok bool) {
	lines := strings.Split(strings.ReplaceAll(desc, "\r\n", "\n"), "\n")

	var block []string
	indented := false

	flush := func() bool {
		if len(block) == 0 {
			return true
		}
		if indented {
			stripped := make([]string, len(block))
			for i, l := range block {
				stripped[i] = stripIndent(l)
			}
			paragraphs = append(paragraphs, strings.Join(stripped, "\n"))
		} else {
			paragraphs = append(paragraphs, strings.Join(block, " "))
		}
		block = nil
		return true
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if len(block) == 0 {
			indented = isIndented(line)
		} else if indented != isIndented(line) {
			// lazy continuation between code and text: not flat
			return nil, false
		}

		if !indented && blockMarker(line) {
			return nil, false
		}
		if indented {
			block = append(block, line)
		} else {
			block = append(block, strings.TrimSpace(line))
		}
	}
	flush()

	return paragraphs, true
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

func stripIndent(line string) string {
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}
	return strings.TrimPrefix(line, "    ")
}

// blockMarker reports whether a paragraph line opens block structure
// the restricted format does not allow.
func blockMarker(line string) bool {
	t := strings.TrimLeft(line, " ")
	switch {
	case strings.HasPrefix(t, "#"),
		strings.HasPrefix(t, ">"),
		strings.HasPrefix(t, "```"),
		strings.HasPrefix(t, "~~~"),
		strings.HasPrefix(t, "- "),
		strings.HasPrefix(t, "* "),
		strings.HasPrefix(t, "+ "):
		return true
	}
	// ordered list: digits followed by ". " or ") "
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(t) && (t[i] == '.' || t[i] == ')') && t[i+1] == ' ' {
		return true
	}
	return false
}
