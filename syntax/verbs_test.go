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
	"testing"

	"github.com/stretchr/testify/assert"

	"squery/document"
)

// "Burton and Dan did not sell books"
func mkSellDoc(t *testing.T) *document.Document {
	return mkDoc(t, true, true,
		testToken{Index: 0, Text: "Burton", Lemma: "Burton", POS: document.POSPropn, Dep: document.DepNSubj, Head: 5},
		testToken{Index: 1, Text: "and", Lemma: "and", POS: document.POSCconj, Dep: document.DepCC, Head: 0},
		testToken{Index: 2, Text: "Dan", Lemma: "Dan", POS: document.POSPropn, Dep: document.DepConj, Head: 0},
		testToken{Index: 3, Text: "did", Lemma: "do", POS: document.POSAux, Dep: document.DepAux, Head: 5},
		testToken{Index: 4, Text: "not", Lemma: "not", POS: document.POSAdv, Dep: document.DepNeg, Head: 5},
		testToken{Index: 5, Text: "sell", Lemma: "sell", POS: document.POSVerb, Dep: document.DepRoot, Head: 5},
		testToken{Index: 6, Text: "books", Lemma: "book", POS: document.POSNoun, Dep: document.DepDObj, Head: 5},
	)
}

func wholeDoc(t *testing.T, doc *document.Document) document.Span {
	sent, err := doc.Sentence(0)
	assert.NoError(t, err)
	return sent
}

func TestMainVerbs(t *testing.T) {
	doc := mkSellDoc(t)
	verbs := MainVerbs(wholeDoc(t, doc))
	assert.Equal(t, 1, len(verbs))
	assert.Equal(t, "sell", verbs[0].Text)
	assert.Equal(t, 5, verbs[0].Token.Index)
}

func TestMainVerbsNone(t *testing.T) {
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "Good", Lemma: "good", POS: document.POSAdj, Dep: document.DepRoot, Head: 0},
		testToken{Index: 1, Text: "morning", Lemma: "morning", POS: document.POSNoun, Dep: document.DepAttr, Head: 0},
	)
	verbs := MainVerbs(wholeDoc(t, doc))
	assert.Equal(t, 0, len(verbs))
}

func TestSubjectsOfVerbExpandsConjuncts(t *testing.T) {
	doc := mkSellDoc(t)
	subjs := SubjectsOfVerb(tok(t, doc, 5), wholeDoc(t, doc))
	assert.Equal(t, 2, len(subjs))
	assert.Equal(t, "Burton", subjs[0].Text)
	assert.Equal(t, "Dan", subjs[1].Text)
}

func TestSubjectsOfVerbExcludesPronouns(t *testing.T) {
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "He", Lemma: "he", POS: document.POSPron, Dep: document.DepNSubj, Head: 1},
		testToken{Index: 1, Text: "sells", Lemma: "sell", POS: document.POSVerb, Dep: document.DepRoot, Head: 1},
	)
	subjs := SubjectsOfVerb(tok(t, doc, 1), wholeDoc(t, doc))
	assert.Equal(t, 0, len(subjs))
}

func TestSubjectsOfVerbViaHead(t *testing.T) {
	// a verb attached under a non-verb head counts the head as subject
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "plan", Lemma: "plan", POS: document.POSNoun, Dep: document.DepRoot, Head: 0},
		testToken{Index: 1, Text: "failed", Lemma: "fail", POS: document.POSVerb, Dep: document.DepACL, Head: 0},
	)
	subjs := SubjectsOfVerb(tok(t, doc, 1), wholeDoc(t, doc))
	assert.Equal(t, 1, len(subjs))
	assert.Equal(t, "plan", subjs[0].Text)
}

func TestObjectsOfVerb(t *testing.T) {
	doc := mkSellDoc(t)
	objs := ObjectsOfVerb(tok(t, doc, 5))
	assert.Equal(t, 1, len(objs))
	assert.Equal(t, "books", objs[0].Text)
}

func TestObjectsOfVerbExpandsConjuncts(t *testing.T) {
	// "sell books and pens"
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "sell", Lemma: "sell", POS: document.POSVerb, Dep: document.DepRoot, Head: 0},
		testToken{Index: 1, Text: "books", Lemma: "book", POS: document.POSNoun, Dep: document.DepDObj, Head: 0},
		testToken{Index: 2, Text: "and", Lemma: "and", POS: document.POSCconj, Dep: document.DepCC, Head: 1},
		testToken{Index: 3, Text: "pens", Lemma: "pen", POS: document.POSNoun, Dep: document.DepConj, Head: 1},
	)
	objs := ObjectsOfVerb(tok(t, doc, 0))
	assert.Equal(t, 2, len(objs))
	assert.Equal(t, "books", objs[0].Text)
	assert.Equal(t, "pens", objs[1].Text)
}

func TestObjectsOfVerbNone(t *testing.T) {
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "It", Lemma: "it", POS: document.POSPron, Dep: document.DepNSubj, Head: 1},
		testToken{Index: 1, Text: "rains", Lemma: "rain", POS: document.POSVerb, Dep: document.DepRoot, Head: 1},
	)
	objs := ObjectsOfVerb(tok(t, doc, 1))
	assert.Equal(t, 0, len(objs))
}

func TestCompoundNounSpan(t *testing.T) {
	// "taxi cab driver"
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "taxi", Lemma: "taxi", POS: document.POSNoun, Dep: document.DepCompound, Head: 2},
		testToken{Index: 1, Text: "cab", Lemma: "cab", POS: document.POSNoun, Dep: document.DepCompound, Head: 2},
		testToken{Index: 2, Text: "driver", Lemma: "driver", POS: document.POSNoun, Dep: document.DepRoot, Head: 2},
	)
	minI, maxI := CompoundNounSpan(tok(t, doc, 2))
	assert.Equal(t, 0, minI)
	assert.Equal(t, 2, maxI)
}

func TestCompoundNounSpanShortCircuits(t *testing.T) {
	// "the cab driver" stops at the determiner
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "the", Lemma: "the", POS: document.POSDet, Dep: document.DepDet, Head: 2},
		testToken{Index: 1, Text: "cab", Lemma: "cab", POS: document.POSNoun, Dep: document.DepCompound, Head: 2},
		testToken{Index: 2, Text: "driver", Lemma: "driver", POS: document.POSNoun, Dep: document.DepRoot, Head: 2},
	)
	minI, maxI := CompoundNounSpan(tok(t, doc, 2))
	assert.Equal(t, 1, minI)
	assert.Equal(t, 2, maxI)
}

func TestCompoundNounSpanBare(t *testing.T) {
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "driver", Lemma: "driver", POS: document.POSNoun, Dep: document.DepRoot, Head: 0},
	)
	minI, maxI := CompoundNounSpan(tok(t, doc, 0))
	assert.Equal(t, 0, minI)
	assert.Equal(t, 0, maxI)
}

func TestVerbAuxSpans(t *testing.T) {
	doc := mkSellDoc(t)
	phrases := VerbAuxSpans(tok(t, doc, 5))
	assert.Equal(t, 1, len(phrases))
	assert.Equal(t, "did not sell", phrases[0].Text)
	assert.Equal(t, 3, phrases[0].Span.Start)
	assert.Equal(t, 6, phrases[0].Span.End)
}

func TestVerbAuxSpansWithExtension(t *testing.T) {
	// "He was sold by Burton"
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "He", Lemma: "he", POS: document.POSPron, Dep: document.DepNSubjPas, Head: 2},
		testToken{Index: 1, Text: "was", Lemma: "be", POS: document.POSAux, Dep: document.DepAuxPass, Head: 2},
		testToken{Index: 2, Text: "sold", Lemma: "sell", POS: document.POSVerb, Dep: document.DepRoot, Head: 2},
		testToken{Index: 3, Text: "by", Lemma: "by", POS: document.POSAdp, Dep: document.DepAgent, Head: 2},
		testToken{Index: 4, Text: "Burton", Lemma: "Burton", POS: document.POSPropn, Dep: document.DepPObj, Head: 3},
	)
	phrases := VerbAuxSpans(tok(t, doc, 2))
	assert.Equal(t, 2, len(phrases))
	assert.Equal(t, "was sold", phrases[0].Text)
	assert.Equal(t, 1, phrases[0].Span.Start)
	assert.Equal(t, 3, phrases[0].Span.End)
	assert.Equal(t, "was sold by", phrases[1].Text)
	assert.Equal(t, 3, phrases[1].Span.Start)
	assert.Equal(t, 4, phrases[1].Span.End)
}

func TestVerbAuxSpansBareVerb(t *testing.T) {
	doc := mkDoc(t, true, true,
		testToken{Index: 0, Text: "It", Lemma: "it", POS: document.POSPron, Dep: document.DepNSubj, Head: 1},
		testToken{Index: 1, Text: "rains", Lemma: "rain", POS: document.POSVerb, Dep: document.DepRoot, Head: 1},
	)
	phrases := VerbAuxSpans(tok(t, doc, 1))
	assert.Equal(t, 1, len(phrases))
	assert.Equal(t, "rains", phrases[0].Text)
}
