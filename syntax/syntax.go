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

// Package syntax provides small stateless helpers answering
// linguistic queries over tokens and spans annotated by an
// upstream NLP pipeline. All the heavy lifting (tagging,
// dependency parsing, lemmatization) is expected to be done
// by the pipeline; the functions here only inspect its output.
package syntax

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"

	"squery/document"
	"squery/serror"
)

var (
	auxDeps  = collections.NewSet(document.DepAux, document.DepAuxPass, document.DepNeg)
	subjDeps = collections.NewSet(document.DepNSubj, document.DepNSubjPas)
	objDeps  = collections.NewSet(document.DepDObj, document.DepPObj, document.DepAttr)
)

// IsPluralNoun tests whether the token is a plural common noun.
// The parent document must be POS-tagged.
func IsPluralNoun(tok *document.Token) (bool, error) {
	if !tok.Doc().Tagged {
		return false, serror.ValidationError{Msg: "token is not POS-tagged"}
	}
	return tok.POS == document.POSNoun && tok.Lemma != tok.Lower, nil
}

// IsNegatedVerb tests whether the token is a verb negated by one
// of its dependency-parse children. The parent document must be
// parsed.
//
// TODO: generalize to other parts of speech; a rule-based check
// covers only the simple cases.
func IsNegatedVerb(tok *document.Token) (bool, error) {
	if !tok.Doc().Parsed {
		return false, serror.ValidationError{Msg: "token is not parsed"}
	}
	if tok.POS == document.POSVerb {
		for _, child := range tok.Children() {
			if child.Dep == document.DepNeg {
				return true, nil
			}
		}
	}
	return false, nil
}

// PreserveCase tests whether the token's surface form should be
// kept as-is when normalizing, i.e. whether it is a proper noun
// or an acronym. The parent document must be POS-tagged.
func PreserveCase(tok *document.Token) (bool, error) {
	if !tok.Doc().Tagged {
		return false, serror.ValidationError{Msg: "token is not POS-tagged"}
	}
	return tok.POS == document.POSPropn || IsAcronym(tok.Text), nil
}

// IsAcronym applies a shallow heuristic: a short token written
// all in uppercase (digits, periods, hyphens and ampersands
// allowed) with at least two letters.
func IsAcronym(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 || len(runes) > 10 {
		return false
	}
	var numLetters int
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			if !unicode.IsUpper(r) {
				return false
			}
			numLetters++
		case unicode.IsDigit(r) || r == '.' || r == '-' || r == '&':
		default:
			return false
		}
	}
	return numLetters >= 2
}

// NormalizedString returns the as-is surface text for tokens which
// are proper nouns or acronyms and the lemmatized form for anything
// else. For a span, per-token results are joined with single spaces.
// The input must be a *document.Token or a document.Span.
func NormalizedString(v any) (string, error) {
	switch tv := v.(type) {
	case *document.Token:
		pc, err := PreserveCase(tv)
		if err != nil {
			return "", err
		}
		if pc {
			return tv.Text, nil
		}
		return tv.Lemma, nil
	case document.Span:
		var sb strings.Builder
		for i, tok := range tv.Tokens() {
			norm, err := NormalizedString(tok)
			if err != nil {
				return "", err
			}
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(norm)
		}
		return sb.String(), nil
	default:
		return "", serror.UnsupportedTypeError{
			Msg: fmt.Sprintf("input must be a token or a span, not %T", v),
		}
	}
}

// MergeSpans merges the spans in-place within their parent
// document so that each takes up a single token. A failed merge
// (typically a span whose indexes became stale after a previous
// merge shifted positions) is logged and skipped so one bad span
// does not abort the batch.
func MergeSpans(spans []document.Span) {
	for _, span := range spans {
		if err := span.Merge(); err != nil {
			log.Error().
				Err(err).
				Int("start", span.Start).
				Int("end", span.End).
				Msg("failed to merge span")
		}
	}
}
