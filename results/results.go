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

package results

import (
	"github.com/bytedance/sonic"

	"squery/document"
	"squery/syntax"
)

// TokenInfo is a lightweight token view used in query answers
// (the full token record stays in the stored document).
type TokenInfo struct {
	Index int               `json:"index"`
	Text  string            `json:"text"`
	Lemma string            `json:"lemma"`
	POS   document.POS      `json:"pos"`
	Dep   document.DepLabel `json:"dep"`
} // @name TokenInfo

func NewTokenInfo(tok *document.Token) TokenInfo {
	return TokenInfo{
		Index: tok.Index,
		Text:  tok.Text,
		Lemma: tok.Lemma,
		POS:   tok.POS,
		Dep:   tok.Dep,
	}
}

type TokenInfoList []TokenInfo

// AlwaysAsList returns an empty list in case the original
// value is nil.
func (tlist TokenInfoList) AlwaysAsList() []TokenInfo {
	if tlist != nil {
		return tlist
	}
	return []TokenInfo{}
}

func NewTokenInfoList(tokens []*document.Token) TokenInfoList {
	ans := make(TokenInfoList, len(tokens))
	for i, tok := range tokens {
		ans[i] = NewTokenInfo(tok)
	}
	return ans
}

// ----

// DocumentInfo summarizes a stored document.
type DocumentInfo struct {
	ID        string `json:"id"`
	NumTokens int    `json:"numTokens"`
	NumSents  int    `json:"numSents"`
	Tagged    bool   `json:"tagged"`
	Parsed    bool   `json:"parsed"`
} // @name DocumentInfo

func (res DocumentInfo) MarshalJSON() ([]byte, error) {
	type alias DocumentInfo
	return sonic.Marshal(alias(res))
}

// ----

// TokenCheck is the answer of a boolean token predicate.
type TokenCheck struct {
	DocID    string `json:"docId"`
	TokenIdx int    `json:"tokenIdx"`
	Check    string `json:"check"`
	Value    bool   `json:"value"`
} // @name TokenCheck

func (res TokenCheck) MarshalJSON() ([]byte, error) {
	type alias TokenCheck
	return sonic.Marshal(alias(res))
}

// ----

// Normalized carries a normalized form of a token or span.
type Normalized struct {
	DocID string `json:"docId"`
	Value string `json:"value"`
} // @name Normalized

func (res Normalized) MarshalJSON() ([]byte, error) {
	type alias Normalized
	return sonic.Marshal(alias(res))
}

// ----

type MainVerb struct {
	Text  string    `json:"text"`
	Token TokenInfo `json:"token"`
}

type MainVerbs struct {
	DocID   string     `json:"docId"`
	SentIdx int        `json:"sentIdx"`
	Verbs   []MainVerb `json:"verbs"`
} // @name MainVerbs

func (res MainVerbs) MarshalJSON() ([]byte, error) {
	type alias MainVerbs
	return sonic.Marshal(alias(res))
}

func NewMainVerbs(docID string, sentIdx int, verbs []syntax.VerbInfo) MainVerbs {
	ans := MainVerbs{
		DocID:   docID,
		SentIdx: sentIdx,
		Verbs:   make([]MainVerb, len(verbs)),
	}
	for i, v := range verbs {
		ans.Verbs[i] = MainVerb{Text: v.Text, Token: NewTokenInfo(v.Token)}
	}
	return ans
}

// ----

// VerbArguments answers subject/object queries for a verb.
type VerbArguments struct {
	DocID    string        `json:"docId"`
	VerbIdx  int           `json:"verbIdx"`
	Relation string        `json:"relation"`
	Tokens   TokenInfoList `json:"tokens"`
} // @name VerbArguments

func (res VerbArguments) MarshalJSON() ([]byte, error) {
	type alias VerbArguments
	res.Tokens = res.Tokens.AlwaysAsList()
	return sonic.Marshal(alias(res))
}

// ----

// CompoundSpan carries inclusive document indexes (min, max)
// of a compound noun span.
type CompoundSpan struct {
	DocID    string `json:"docId"`
	TokenIdx int    `json:"tokenIdx"`
	MinIdx   int    `json:"minIdx"`
	MaxIdx   int    `json:"maxIdx"`
} // @name CompoundSpan

func (res CompoundSpan) MarshalJSON() ([]byte, error) {
	type alias CompoundSpan
	return sonic.Marshal(alias(res))
}

// ----

type VerbPhrase struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type VerbPhrases struct {
	DocID   string       `json:"docId"`
	VerbIdx int          `json:"verbIdx"`
	Phrases []VerbPhrase `json:"phrases"`
} // @name VerbPhrases

func (res VerbPhrases) MarshalJSON() ([]byte, error) {
	type alias VerbPhrases
	return sonic.Marshal(alias(res))
}

func NewVerbPhrases(docID string, verbIdx int, phrases []syntax.VerbPhrase) VerbPhrases {
	ans := VerbPhrases{
		DocID:   docID,
		VerbIdx: verbIdx,
		Phrases: make([]VerbPhrase, len(phrases)),
	}
	for i, p := range phrases {
		ans.Phrases[i] = VerbPhrase{Text: p.Text, Start: p.Span.Start, End: p.Span.End}
	}
	return ans
}

// ----

// MergeReport summarizes an in-place span merge batch.
type MergeReport struct {
	DocID     string `json:"docId"`
	NumTokens int    `json:"numTokens"`
} // @name MergeReport

func (res MergeReport) MarshalJSON() ([]byte, error) {
	type alias MergeReport
	return sonic.Marshal(alias(res))
}
