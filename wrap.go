package tabulate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

type token struct {
	text string
	ws   bool
}

// tokenize splits a physical line into whitespace runs and words. Words are
// UAX #29 segments coalesced until the next whitespace run; with
// breakOnHyphens an intra-word hyphen also ends the chunk, allowing a wrap
// after it.
func tokenize(line string, breakOnHyphens bool) []token {
	var toks []token
	var word strings.Builder
	flushWord := func() {
		if word.Len() > 0 {
			toks = append(toks, token{text: word.String()})
			word.Reset()
		}
	}
	seg := words.FromString(line)
	for seg.Next() {
		v := seg.Value()
		if strings.TrimSpace(v) == "" {
			flushWord()
			if n := len(toks); n > 0 && toks[n-1].ws {
				toks[n-1].text += v
			} else {
				toks = append(toks, token{text: v, ws: true})
			}
			continue
		}
		if breakOnHyphens && word.Len() > 0 && strings.HasSuffix(word.String(), "-") && startsAlnum(v) {
			flushWord()
		}
		word.WriteString(v)
	}
	flushWord()
	return toks
}

func startsAlnum(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitWidth cuts s at the given display width. Escape sequences pass
// through with zero width and are never cut. When even the first visible
// rune exceeds the limit, one rune is consumed anyway so callers always make
// progress.
func splitWidth(s string, limit int) (string, string) {
	w := 0
	i := 0
	for i < len(s) {
		if loc := ansiEscape.FindStringIndex(s[i:]); loc != nil && loc[0] == 0 {
			i += loc[1]
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := runewidth.RuneWidth(r)
		if w+rw > limit {
			break
		}
		w += rw
		i += size
	}
	if w == 0 && i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}

// wrapCell wraps a cell to the given display width. Explicit newlines always
// break; width <= 0 only splits on them. The greedy pass accumulates chunks
// while they fit, drops whitespace at wrap boundaries, and hard-splits
// chunks wider than the limit when breakLongWords is set.
func wrapCell(s string, width int, breakLongWords, breakOnHyphens bool) []string {
	lines := strings.Split(s, "\n")
	if width <= 0 {
		return lines
	}
	var out []string
	for _, line := range lines {
		out = append(out, wrapLine(line, width, breakLongWords, breakOnHyphens)...)
	}
	return out
}

func wrapLine(line string, width int, breakLongWords, breakOnHyphens bool) []string {
	if visibleWidth(line) <= width {
		return []string{line}
	}

	var out []string
	var cur strings.Builder
	curW := 0
	pend := ""
	pendW := 0

	flushLine := func() {
		out = append(out, cur.String())
		cur.Reset()
		curW = 0
		pend = ""
		pendW = 0
	}

	for _, t := range tokenize(line, breakOnHyphens) {
		if t.ws {
			if cur.Len() == 0 && len(out) > 0 {
				continue
			}
			pend += t.text
			pendW += visibleWidth(t.text)
			continue
		}
		w := visibleWidth(t.text)
		if cur.Len() > 0 && curW+pendW+w > width {
			flushLine()
		}
		if pend != "" {
			cur.WriteString(pend)
			curW += pendW
			pend = ""
			pendW = 0
		}
		if w > width && breakLongWords {
			rem := t.text
			for visibleWidth(rem) > width-curW {
				head, tail := splitWidth(rem, width-curW)
				cur.WriteString(head)
				out = append(out, cur.String())
				cur.Reset()
				curW = 0
				rem = tail
			}
			cur.WriteString(rem)
			curW += visibleWidth(rem)
			continue
		}
		cur.WriteString(t.text)
		curW += w
	}
	if cur.Len() > 0 || len(out) == 0 {
		out = append(out, cur.String())
	}
	return out
}
