package markdown

import (
	"regexp"
	"strings"
)

// MaxLevel is the deepest ATX header level (######).
const MaxLevel = 6

// lowestChildPrecedence sits one below the weakest header level so the first
// header seen by a node is always eligible as a direct child.
const lowestChildPrecedence = MaxLevel + 1

// headerPattern matches a full ATX header line. Runs of seven or more '#'
// fail because the character after the sixth must be a space or tab.
var headerPattern = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(\S.*)$`)

// Section is a header span found by Scan. It is transient: the tree builder
// consumes it immediately.
type Section struct {
	Title string
	Level int
	// HeaderStart and HeaderEnd delimit the header line, newline excluded.
	HeaderStart int
	HeaderEnd   int
	// ContentStart is the offset just after the header line. Content always
	// runs to the end of the scanned text.
	ContentStart int
}

// Content returns the text from just after the header line to the end of text.
func (s Section) Content(text string) string {
	return text[s.ContentStart:]
}

// span is a half-open byte range.
type span struct {
	start, end int
}

func (s span) contains(off int) bool {
	return off >= s.start && off < s.end
}

// Scan returns the ATX header sections of text in document order, ignoring
// header-looking lines inside fenced code blocks.
func Scan(text string) []Section {
	fences := codeBlocks(text)
	matches := headerPattern.FindAllStringSubmatchIndex(text, -1)
	sections := make([]Section, 0, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		if insideAny(fences, start) {
			continue
		}
		contentStart := end
		if contentStart < len(text) {
			// skip the newline terminating the header line
			contentStart++
		}
		sections = append(sections, Section{
			Title:        text[m[4]:m[5]],
			Level:        m[3] - m[2],
			HeaderStart:  start,
			HeaderEnd:    end,
			ContentStart: contentStart,
		})
	}
	return sections
}

func insideAny(spans []span, off int) bool {
	for _, s := range spans {
		if s.contains(off) {
			return true
		}
	}
	return false
}

// codeBlocks locates fenced code blocks. An opener is a line starting with
// three or more backticks or tildes (an info string may follow); the block
// closes at the next line made solely of the same fence character, at least
// as long as the opener. An opener that never closes is not a code block and
// scanning resumes on the following line.
func codeBlocks(text string) []span {
	var blocks []span
	lines := splitLines(text)
	// unclosed[ch] is the shortest run of ch known to have no closer below it;
	// any later opener of that character at least as long cannot close either.
	unclosed := map[byte]int{}
	for i := 0; i < len(lines); i++ {
		ch, n, ok := fenceOpener(lines[i].text)
		if !ok {
			continue
		}
		if shortest, seen := unclosed[ch]; seen && n >= shortest {
			continue
		}
		closed := false
		for j := i + 1; j < len(lines); j++ {
			if isFenceCloser(lines[j].text, ch, n) {
				blocks = append(blocks, span{start: lines[i].start, end: lines[j].start + len(lines[j].text)})
				i = j
				closed = true
				break
			}
		}
		if !closed {
			unclosed[ch] = n
		}
	}
	return blocks
}

type line struct {
	start int
	text  string // without the trailing newline
}

func splitLines(text string) []line {
	var lines []line
	start := 0
	for start < len(text) {
		idx := strings.IndexByte(text[start:], '\n')
		if idx < 0 {
			lines = append(lines, line{start: start, text: text[start:]})
			break
		}
		lines = append(lines, line{start: start, text: text[start : start+idx]})
		start += idx + 1
	}
	return lines
}

func fenceRun(s string) (byte, int) {
	if s == "" || (s[0] != '`' && s[0] != '~') {
		return 0, 0
	}
	ch := s[0]
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return ch, n
}

func fenceOpener(s string) (byte, int, bool) {
	ch, n := fenceRun(s)
	if n < 3 {
		return 0, 0, false
	}
	if ch == '`' && strings.IndexByte(s[n:], '`') >= 0 {
		// backtick info strings may not contain backticks
		return 0, 0, false
	}
	return ch, n, true
}

func isFenceCloser(s string, ch byte, min int) bool {
	got, n := fenceRun(s)
	if got != ch || n < min {
		return false
	}
	return strings.TrimRight(s[n:], " \t\r") == ""
}
