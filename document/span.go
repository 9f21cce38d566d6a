// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SQUERY.
//
//  SQUERY is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SQUERY is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SQUERY.  If not, see <https://www.gnu.org/licenses/>.

package document

import (
	"fmt"
	"strings"

	"squery/serror"
)

// Span is a contiguous run of tokens [Start, End) within
// a document, treated as a unit.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`

	doc *Document
}

// Doc returns the parent document of the span.
func (s Span) Doc() *Document {
	return s.doc
}

// Len returns the number of tokens in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Tokens returns the member tokens in document order.
func (s Span) Tokens() []*Token {
	return s.doc.Tokens[s.Start:s.End]
}

// Contains tests whether document index i falls into the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Root returns the syntactic root of the span, i.e. the first
// token whose head lies outside the span (or which is a sentence
// root).
func (s Span) Root() *Token {
	for _, tok := range s.Tokens() {
		if tok.IsRoot() || !s.Contains(tok.Head) {
			return tok
		}
	}
	return s.doc.Tokens[s.Start]
}

// Text returns the surface text of the span. Inter-token
// whitespace is not preserved by the exchange format so tokens
// are joined with single spaces.
func (s Span) Text() string {
	var sb strings.Builder
	for i, tok := range s.Tokens() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// Lefts returns tokens preceding the span which are direct
// dependents of a span member.
func (s Span) Lefts() []*Token {
	ans := make([]*Token, 0, 2)
	for _, tok := range s.doc.Tokens[:s.Start] {
		if s.Contains(tok.Head) {
			ans = append(ans, tok)
		}
	}
	return ans
}

// Rights returns tokens following the span which are direct
// dependents of a span member.
func (s Span) Rights() []*Token {
	ans := make([]*Token, 0, 2)
	for _, tok := range s.doc.Tokens[s.End:] {
		if s.Contains(tok.Head) {
			ans = append(ans, tok)
		}
	}
	return ans
}

func remapIdx(i, start, end, shift int) int {
	switch {
	case i < start:
		return i
	case i < end:
		return start
	default:
		return i - shift
	}
}

// Merge collapses the span into a single token within its parent
// document, preserving the root's tag, the span's surface text and
// the root's entity type. The operation is destructive and in-place:
// all following tokens are re-indexed and head links plus sentence
// boundaries are remapped. There is no rollback and the operation
// must not run concurrently with anything else touching the document.
//
// A span whose boundaries became stale (typically after a previous
// merge shifted positions) is rejected with a ValidationError.
func (s Span) Merge() error {
	doc := s.doc
	if doc == nil {
		return serror.ValidationError{Msg: "span has no parent document"}
	}
	if s.Start < 0 || s.End > len(doc.Tokens) || s.Start >= s.End {
		return serror.ValidationError{
			Msg: fmt.Sprintf("stale span [%d, %d) (document has %d tokens)", s.Start, s.End, len(doc.Tokens)),
		}
	}
	if s.Len() == 1 {
		return nil
	}
	root := s.Root()
	text := s.Text()
	lower := strings.ToLower(text)
	merged := &Token{
		Index:   s.Start,
		Text:    text,
		Lower:   lower,
		Lemma:   lower,
		POS:     root.POS,
		Tag:     root.Tag,
		Dep:     root.Dep,
		EntType: root.EntType,
		doc:     doc,
	}
	shift := s.End - s.Start - 1
	if s.Contains(root.Head) {
		merged.Head = s.Start

	} else {
		merged.Head = remapIdx(root.Head, s.Start, s.End, shift)
	}

	newTokens := make([]*Token, 0, len(doc.Tokens)-shift)
	newTokens = append(newTokens, doc.Tokens[:s.Start]...)
	newTokens = append(newTokens, merged)
	rest := doc.Tokens[s.End:]
	for _, tok := range rest {
		tok.Head = remapIdx(tok.Head, s.Start, s.End, shift)
	}
	for _, tok := range newTokens[:s.Start] {
		tok.Head = remapIdx(tok.Head, s.Start, s.End, shift)
	}
	newTokens = append(newTokens, rest...)
	for i, tok := range newTokens {
		tok.Index = i
	}
	doc.Tokens = newTokens

	// A sentence starting inside the merged span and continuing
	// past it must start after the merged token, otherwise it
	// would overlap the previous sentence; the merged token stays
	// with the earlier sentence. A sentence consumed entirely by
	// the span collapses onto the merged token instead.
	for i := range doc.Sents {
		sent := &doc.Sents[i]
		if sent.Start > s.Start {
			if sent.Start >= s.End {
				sent.Start -= shift

			} else if sent.End > s.End {
				sent.Start = s.Start + 1

			} else {
				sent.Start = s.Start
			}
		}
		if sent.End > s.Start {
			if sent.End <= s.End {
				sent.End = s.Start + 1

			} else {
				sent.End -= shift
			}
		}
	}
	return nil
}
