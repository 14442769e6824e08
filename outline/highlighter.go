//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/timburks/stride/types"
)

// The Highlighter colors outline lines.
type Highlighter struct {
	placeholderPattern  *regexp.Regexp
	punctuationPattern  *regexp.Regexp
	commentPattern      *regexp.Regexp
	quotedStringPattern *regexp.Regexp
	keywordPattern      *regexp.Regexp
	numberPattern       *regexp.Regexp
}

func NewHighlighter() *Highlighter {
	h := &Highlighter{}

	h.placeholderPattern = regexp.MustCompile("<[a-z]+>")
	h.punctuationPattern = regexp.MustCompile("\\(|\\)|,|\\.|=|\\[|\\]|\\{|\\}|\\+|-|\\*|<|>|;")
	h.commentPattern = regexp.MustCompile("\\/\\/.*$")
	h.quotedStringPattern = regexp.MustCompile("\"[^\"]*\"")
	h.keywordPattern = regexp.MustCompile("class|import|method|constructor|final|static|var|set|call|return|break|throw|if|else|while|for each|try|catch|finally|switch|case|default")
	h.keywordPattern.Longest()
	h.numberPattern = regexp.MustCompile("([0-9]+(\\.[0-9]*)?)|(([0-9]*\\.)?[0-9]+)")

	return h
}

// Highlight sets the colors of l.
func (h *Highlighter) Highlight(l *Line) {
	l.Colors = make([]types.Color, utf8.RuneCountInString(l.Text))
	fill := func(from, to int, c types.Color) {
		for k := from; k < to && k < len(l.Colors); k++ {
			l.Colors[k] = c
		}
	}
	fill(0, len(l.Colors), types.ColorWhite)

	if l.Cursor != nil {
		fill(0, len(l.Colors), types.ColorCursor)
		return
	}
	if l.Disabled {
		fill(0, len(l.Colors), types.ColorDisabled)
		return
	}

	line := l.Text
	body := line
	if l.Error != "" {
		body = strings.TrimSuffix(line, errorMarker+l.Error)
	}
	cols := runeColumns(line)
	each := func(p *regexp.Regexp, c types.Color, whole bool) {
		for _, match := range p.FindAllStringIndex(body, -1) {
			// keywords and numbers are only colored as whole words
			if whole && checkalphanum(body, match[0], match[1]) {
				continue
			}
			fill(cols[match[0]], cols[match[1]], c)
		}
	}
	each(h.keywordPattern, types.ColorKeyword, true)
	each(h.numberPattern, types.ColorNumber, true)
	each(h.punctuationPattern, types.ColorPunctuation, false)
	each(h.placeholderPattern, types.ColorPlaceholder, false)
	each(h.quotedStringPattern, types.ColorString, false)
	each(h.commentPattern, types.ColorComment, false)

	if l.Error != "" {
		fill(cols[len(body)], len(l.Colors), types.ColorError)
	}
}

// runeColumns maps byte offsets of s to rune columns, with one entry past
// the end.
func runeColumns(s string) []int {
	cols := make([]int, len(s)+1)
	col := 0
	for i := range s {
		for j := i; j < len(s) && (j == i || !utf8.RuneStart(s[j])); j++ {
			cols[j] = col
		}
		col++
	}
	cols[len(s)] = col
	return cols
}

// checkalphanum reports whether the match at [start,end) touches a
// letter or digit on either side.
func checkalphanum(line string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(line[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	if end < len(line) {
		r, _ := utf8.DecodeRuneInString(line[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
