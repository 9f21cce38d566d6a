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

package syntax

import (
	"github.com/rs/zerolog/log"

	"squery/document"
)

// VerbInfo pairs a verb token with its surface text.
type VerbInfo struct {
	Text  string          `json:"text"`
	Token *document.Token `json:"token"`
}

// VerbPhrase pairs a verb-centered span with its surface text.
type VerbPhrase struct {
	Text string        `json:"text"`
	Span document.Span `json:"span"`
}

// MainVerbs returns the main (non-auxiliary) verbs of a sentence,
// i.e. each verb which is the head of a subject-relation token.
func MainVerbs(sent document.Span) []VerbInfo {
	ans := make([]VerbInfo, 0, 2)
	for _, tok := range sent.Tokens() {
		if subjDeps.Contains(tok.Dep) && tok.HeadToken().POS == document.POSVerb {
			head := tok.HeadToken()
			ans = append(ans, VerbInfo{Text: head.Text, Token: head})
		}
	}
	return ans
}

// SubjectsOfVerb returns all subjects of a verb according to the
// dependency parse: left dependents in a subject relation (pronouns
// and adjectives excluded), any sentence token which has the verb
// among its children and is not itself a verb, and conjunct
// expansions of the subjects found.
func SubjectsOfVerb(verb *document.Token, sent document.Span) []*document.Token {
	subjs := make([]*document.Token, 0, 2)
	for _, tok := range verb.Lefts() {
		if subjDeps.Contains(tok.Dep) && tok.POS != document.POSPron && tok.POS != document.POSAdj {
			subjs = append(subjs, tok)
		}
	}
	for _, tok := range sent.Tokens() {
		if verb.Head == tok.Index && tok.Index != verb.Index && tok.POS != document.POSVerb {
			subjs = append(subjs, tok)
		}
	}
	// conjuncts of appended items are expanded too
	for i := 0; i < len(subjs); i++ {
		subjs = append(subjs, conjuncts(subjs[i])...)
	}
	return subjs
}

// ObjectsOfVerb returns all objects of a verb according to the
// dependency parse (direct, prepositional and attribute relations),
// plus conjunct expansions.
func ObjectsOfVerb(verb *document.Token) []*document.Token {
	objs := make([]*document.Token, 0, 2)
	for _, tok := range verb.Rights() {
		if objDeps.Contains(tok.Dep) {
			objs = append(objs, tok)
		}
	}
	for i := 0; i < len(objs); i++ {
		objs = append(objs, conjuncts(objs[i])...)
	}
	return objs
}

// conjuncts returns conjunct dependents of the leftmost conjunct
// in a coordinated phrase, e.g. "Burton, [Dan], and [Josh] ...".
func conjuncts(tok *document.Token) []*document.Token {
	ans := make([]*document.Token, 0, 2)
	for _, right := range tok.Rights() {
		if right.Dep == document.DepConj {
			ans = append(ans, right)
		}
	}
	return ans
}

// CompoundNounSpan returns document indexes (min, max) spanning all
// adjacent tokens of a compound noun. The walk over dependents
// short-circuits at the first non-compound dependent on each side;
// it is not a filter over all dependents.
func CompoundNounSpan(noun *document.Token) (int, int) {
	maxI := noun.Index
	for _, tok := range noun.Rights() {
		if tok.Dep != document.DepCompound {
			break
		}
		maxI++
	}
	minI := noun.Index
	lefts := noun.Lefts()
	for i := len(lefts) - 1; i >= 0; i-- {
		if lefts[i].Dep != document.DepCompound {
			break
		}
		minI--
	}
	return minI, maxI
}

// VerbAuxSpans returns the verb phrase built of the verb and its
// adjacent auxiliary/negation dependents, followed by one entry per
// trailing prepositional, agent or open-clausal-complement dependent
// of that phrase.
func VerbAuxSpans(verb *document.Token) []VerbPhrase {
	minI := verb.Index
	lefts := verb.Lefts()
	for i := len(lefts) - 1; i >= 0; i-- {
		if !auxDeps.Contains(lefts[i].Dep) {
			break
		}
		minI--
	}
	maxI := verb.Index
	for _, tok := range verb.Rights() {
		if !auxDeps.Contains(tok.Dep) {
			break
		}
		maxI++
	}
	phrase, err := verb.Doc().Span(minI, maxI+1)
	if err != nil {
		log.Error().Err(err).Int("verb", verb.Index).Msg("failed to expand verb span")
		return []VerbPhrase{}
	}
	ans := []VerbPhrase{{Text: phrase.Text(), Span: phrase}}
	for _, tok := range phrase.Rights() {
		if tok.Dep == document.DepPrep || tok.Dep == document.DepAgent || tok.Dep == document.DepXComp {
			ext, err := verb.Doc().Span(tok.Index, tok.Index+1)
			if err != nil {
				continue
			}
			ans = append(ans, VerbPhrase{Text: phrase.Text() + " " + tok.Text, Span: ext})
		}
	}
	return ans
}
