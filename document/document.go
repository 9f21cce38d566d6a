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
	"encoding/json"
	"fmt"
	"strings"

	"squery/serror"
)

// Document is a single annotated text as exported by an upstream
// NLP pipeline (spaCy, stanza and similar produce compatible data).
// The Tagged and Parsed flags tell which annotation layers the
// pipeline completed; token-level functions depending on a missing
// layer must fail rather than produce garbage.
type Document struct {
	Text   string   `json:"text,omitempty"`
	Tagged bool     `json:"tagged"`
	Parsed bool     `json:"parsed"`
	Tokens []*Token `json:"tokens"`
	Sents  []Span   `json:"sents,omitempty"`
}

// Len returns the number of tokens in the document.
func (doc *Document) Len() int {
	return len(doc.Tokens)
}

// Token returns the token at document index i.
func (doc *Document) Token(i int) (*Token, error) {
	if i < 0 || i >= len(doc.Tokens) {
		return nil, serror.ValidationError{
			Msg: fmt.Sprintf("token index %d out of range (document has %d tokens)", i, len(doc.Tokens)),
		}
	}
	return doc.Tokens[i], nil
}

// Span returns a token span [start, end) over the document.
func (doc *Document) Span(start, end int) (Span, error) {
	if start < 0 || end > len(doc.Tokens) || start >= end {
		return Span{}, serror.ValidationError{
			Msg: fmt.Sprintf("invalid span [%d, %d) (document has %d tokens)", start, end, len(doc.Tokens)),
		}
	}
	return Span{doc: doc, Start: start, End: end}, nil
}

// BindSpan creates a span over the document without validating
// its boundaries; validity is checked when the span is used.
// This matters for batch merging where earlier merges may shift
// positions under later spans.
func (doc *Document) BindSpan(start, end int) Span {
	return Span{doc: doc, Start: start, End: end}
}

// Sentence returns the i-th sentence span. If the pipeline
// exported no sentence boundaries, the whole document counts
// as sentence 0.
func (doc *Document) Sentence(i int) (Span, error) {
	if len(doc.Sents) == 0 {
		if i == 0 && len(doc.Tokens) > 0 {
			return Span{doc: doc, Start: 0, End: len(doc.Tokens)}, nil
		}
		return Span{}, serror.ValidationError{Msg: "document has no sentence boundaries"}
	}
	if i < 0 || i >= len(doc.Sents) {
		return Span{}, serror.ValidationError{
			Msg: fmt.Sprintf("sentence index %d out of range (document has %d sentences)", i, len(doc.Sents)),
		}
	}
	return doc.Sents[i], nil
}

// NumSents returns the number of exported sentence boundaries.
func (doc *Document) NumSents() int {
	return len(doc.Sents)
}

func (doc *Document) link() {
	for _, tok := range doc.Tokens {
		tok.doc = doc
	}
	for i := range doc.Sents {
		doc.Sents[i].doc = doc
	}
}

func (doc *Document) validate() error {
	for i, tok := range doc.Tokens {
		if tok.Index != i {
			return serror.ValidationError{
				Msg: fmt.Sprintf("token at position %d declares index %d", i, tok.Index),
			}
		}
		if tok.Head < 0 || tok.Head >= len(doc.Tokens) {
			return serror.ValidationError{
				Msg: fmt.Sprintf("token %d has head %d out of range", i, tok.Head),
			}
		}
	}
	for i, sent := range doc.Sents {
		if sent.Start < 0 || sent.End > len(doc.Tokens) || sent.Start >= sent.End {
			return serror.ValidationError{
				Msg: fmt.Sprintf("sentence %d has invalid boundaries [%d, %d)", i, sent.Start, sent.End),
			}
		}
	}
	return nil
}

// FromJSON decodes a pipeline-exported document, links token
// back-references and validates the head/sentence structure.
func FromJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, serror.ValidationError{Msg: fmt.Sprintf("cannot decode document: %s", err)}
	}
	for _, tok := range doc.Tokens {
		if tok.Lower == "" {
			tok.Lower = strings.ToLower(tok.Text)
		}
	}
	doc.link()
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ToJSON serializes the document back to the exchange format.
func (doc *Document) ToJSON() ([]byte, error) {
	return json.Marshal(doc)
}
