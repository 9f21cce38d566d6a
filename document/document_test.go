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
	"testing"

	"github.com/stretchr/testify/assert"

	"squery/serror"
)

// "I love New York . It rains ." with sentence boundaries [0, 5), [5, 8)
func mkTestDoc(t *testing.T) *Document {
	doc, err := FromJSON([]byte(`{
		"tagged": true,
		"parsed": true,
		"tokens": [
			{"index": 0, "text": "I", "lemma": "I", "pos": "PRON", "dep": "nsubj", "head": 1},
			{"index": 1, "text": "love", "lemma": "love", "pos": "VERB", "dep": "ROOT", "head": 1},
			{"index": 2, "text": "New", "lemma": "New", "pos": "PROPN", "dep": "compound", "head": 3},
			{"index": 3, "text": "York", "lemma": "York", "pos": "PROPN", "dep": "dobj", "head": 1},
			{"index": 4, "text": ".", "lemma": ".", "pos": "PUNCT", "dep": "punct", "head": 1},
			{"index": 5, "text": "It", "lemma": "it", "pos": "PRON", "dep": "nsubj", "head": 6},
			{"index": 6, "text": "rains", "lemma": "rain", "pos": "VERB", "dep": "ROOT", "head": 6},
			{"index": 7, "text": ".", "lemma": ".", "pos": "PUNCT", "dep": "punct", "head": 6}
		],
		"sents": [
			{"start": 0, "end": 5},
			{"start": 5, "end": 8}
		]
	}`))
	assert.NoError(t, err)
	return doc
}

func TestFromJSONDerivesLower(t *testing.T) {
	doc := mkTestDoc(t)
	tok, err := doc.Token(1)
	assert.NoError(t, err)
	assert.Equal(t, "love", tok.Lower)
	tok, err = doc.Token(0)
	assert.NoError(t, err)
	assert.Equal(t, "i", tok.Lower)
}

func TestFromJSONRejectsBadIndex(t *testing.T) {
	_, err := FromJSON([]byte(`{
		"tokens": [
			{"index": 3, "text": "huh", "lemma": "huh", "pos": "INTJ", "dep": "ROOT", "head": 3}
		]
	}`))
	assert.Error(t, err)
	assert.ErrorAs(t, err, &serror.ValidationError{})
}

func TestFromJSONRejectsHeadOutOfRange(t *testing.T) {
	_, err := FromJSON([]byte(`{
		"tokens": [
			{"index": 0, "text": "huh", "lemma": "huh", "pos": "INTJ", "dep": "ROOT", "head": 5}
		]
	}`))
	assert.Error(t, err)
}

func TestFromJSONRejectsBadSentence(t *testing.T) {
	_, err := FromJSON([]byte(`{
		"tokens": [
			{"index": 0, "text": "huh", "lemma": "huh", "pos": "INTJ", "dep": "ROOT", "head": 0}
		],
		"sents": [{"start": 0, "end": 4}]
	}`))
	assert.Error(t, err)
}

func TestFromJSONRejectsGarbage(t *testing.T) {
	_, err := FromJSON([]byte(`{"tokens": "nope"}`))
	assert.Error(t, err)
	assert.ErrorAs(t, err, &serror.ValidationError{})
}

func TestTokenOutOfRange(t *testing.T) {
	doc := mkTestDoc(t)
	_, err := doc.Token(8)
	assert.ErrorAs(t, err, &serror.ValidationError{})
	_, err = doc.Token(-1)
	assert.Error(t, err)
}

func TestTokenNavigation(t *testing.T) {
	doc := mkTestDoc(t)
	verb, err := doc.Token(1)
	assert.NoError(t, err)
	assert.True(t, verb.IsRoot())

	children := verb.Children()
	assert.Equal(t, 3, len(children))
	assert.Equal(t, "I", children[0].Text)
	assert.Equal(t, "York", children[1].Text)
	assert.Equal(t, ".", children[2].Text)

	lefts := verb.Lefts()
	assert.Equal(t, 1, len(lefts))
	assert.Equal(t, "I", lefts[0].Text)

	rights := verb.Rights()
	assert.Equal(t, 2, len(rights))
	assert.Equal(t, "York", rights[0].Text)

	york, err := doc.Token(3)
	assert.NoError(t, err)
	assert.False(t, york.IsRoot())
	assert.Equal(t, verb, york.HeadToken())
}

func TestSentence(t *testing.T) {
	doc := mkTestDoc(t)
	sent, err := doc.Sentence(1)
	assert.NoError(t, err)
	assert.Equal(t, 5, sent.Start)
	assert.Equal(t, 8, sent.End)
	assert.Equal(t, "It rains .", sent.Text())
	_, err = doc.Sentence(2)
	assert.Error(t, err)
}

func TestSentenceFallsBackToWholeDoc(t *testing.T) {
	doc, err := FromJSON([]byte(`{
		"tokens": [
			{"index": 0, "text": "It", "lemma": "it", "pos": "PRON", "dep": "nsubj", "head": 1},
			{"index": 1, "text": "rains", "lemma": "rain", "pos": "VERB", "dep": "ROOT", "head": 1}
		]
	}`))
	assert.NoError(t, err)
	sent, err := doc.Sentence(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, sent.Start)
	assert.Equal(t, 2, sent.End)
	_, err = doc.Sentence(1)
	assert.Error(t, err)
}

func TestSpanValidation(t *testing.T) {
	doc := mkTestDoc(t)
	span, err := doc.Span(2, 4)
	assert.NoError(t, err)
	assert.Equal(t, 2, span.Len())
	_, err = doc.Span(4, 2)
	assert.Error(t, err)
	_, err = doc.Span(0, 9)
	assert.Error(t, err)
}

func TestSpanRootAndText(t *testing.T) {
	doc := mkTestDoc(t)
	span, err := doc.Span(2, 4)
	assert.NoError(t, err)
	assert.Equal(t, "New York", span.Text())
	assert.Equal(t, "York", span.Root().Text)
	assert.True(t, span.Contains(3))
	assert.False(t, span.Contains(4))
}

func TestSpanLeftsRights(t *testing.T) {
	doc := mkTestDoc(t)
	span, err := doc.Span(1, 2)
	assert.NoError(t, err)
	lefts := span.Lefts()
	assert.Equal(t, 1, len(lefts))
	assert.Equal(t, "I", lefts[0].Text)
	rights := span.Rights()
	assert.Equal(t, 2, len(rights))
	assert.Equal(t, "York", rights[0].Text)
	assert.Equal(t, ".", rights[1].Text)
}

func TestMergeCollapsesSpan(t *testing.T) {
	doc := mkTestDoc(t)
	span, err := doc.Span(2, 4)
	assert.NoError(t, err)
	err = span.Merge()
	assert.NoError(t, err)
	assert.Equal(t, 7, doc.Len())

	merged, err := doc.Token(2)
	assert.NoError(t, err)
	assert.Equal(t, "New York", merged.Text)
	assert.Equal(t, "new york", merged.Lower)
	assert.Equal(t, "new york", merged.Lemma)
	assert.Equal(t, POSPropn, merged.POS)
	assert.Equal(t, DepDObj, merged.Dep)
	assert.Equal(t, 1, merged.Head)
}

func TestMergeRemapsFollowingHeads(t *testing.T) {
	doc := mkTestDoc(t)
	span, err := doc.Span(2, 4)
	assert.NoError(t, err)
	assert.NoError(t, span.Merge())

	rains, err := doc.Token(5)
	assert.NoError(t, err)
	assert.Equal(t, "rains", rains.Text)
	assert.True(t, rains.IsRoot())
	it, err := doc.Token(4)
	assert.NoError(t, err)
	assert.Equal(t, 5, it.Head)
}

func TestMergeRemapsSentences(t *testing.T) {
	doc := mkTestDoc(t)
	span, err := doc.Span(2, 4)
	assert.NoError(t, err)
	assert.NoError(t, span.Merge())

	assert.Equal(t, 2, doc.NumSents())
	sent, err := doc.Sentence(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, sent.Start)
	assert.Equal(t, 4, sent.End)
	sent, err = doc.Sentence(1)
	assert.NoError(t, err)
	assert.Equal(t, 4, sent.Start)
	assert.Equal(t, 7, sent.End)
	assert.Equal(t, "It rains .", sent.Text())
}

func TestFromJSONDecodesClausalSubjects(t *testing.T) {
	doc, err := FromJSON([]byte(`{
		"tagged": true,
		"parsed": true,
		"tokens": [
			{"index": 0, "text": "Running", "lemma": "run", "pos": "VERB", "dep": "csubj", "head": 1},
			{"index": 1, "text": "helps", "lemma": "help", "pos": "VERB", "dep": "ROOT", "head": 1},
			{"index": 2, "text": "said", "lemma": "say", "pos": "VERB", "dep": "csubjpass", "head": 1}
		]
	}`))
	assert.NoError(t, err)
	tok, err := doc.Token(0)
	assert.NoError(t, err)
	assert.Equal(t, DepCSubj, tok.Dep)
	tok, err = doc.Token(2)
	assert.NoError(t, err)
	assert.Equal(t, DepCSubjPas, tok.Dep)
}

func TestMergeAcrossSentenceBoundary(t *testing.T) {
	doc := mkTestDoc(t)
	assert.NoError(t, doc.BindSpan(4, 6).Merge())
	assert.Equal(t, 7, doc.Len())

	s0, err := doc.Sentence(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, s0.Start)
	assert.Equal(t, 5, s0.End)
	s1, err := doc.Sentence(1)
	assert.NoError(t, err)
	assert.Equal(t, 5, s1.Start)
	assert.Equal(t, 7, s1.End)

	// the merged token belongs to the earlier sentence only
	merged, err := doc.Token(4)
	assert.NoError(t, err)
	assert.Equal(t, ". It", merged.Text)
	assert.True(t, s0.Contains(4))
	assert.False(t, s1.Contains(4))
}

func TestMergeSingleTokenIsNoop(t *testing.T) {
	doc := mkTestDoc(t)
	span, err := doc.Span(3, 4)
	assert.NoError(t, err)
	assert.NoError(t, span.Merge())
	assert.Equal(t, 8, doc.Len())
}

func TestMergeStaleSpan(t *testing.T) {
	doc := mkTestDoc(t)
	assert.NoError(t, doc.BindSpan(2, 4).Merge())
	// the document shrank under the original boundaries
	err := doc.BindSpan(6, 8).Merge()
	assert.ErrorAs(t, err, &serror.ValidationError{})
}

func TestMergeSurvivesRoundTrip(t *testing.T) {
	doc := mkTestDoc(t)
	assert.NoError(t, doc.BindSpan(2, 4).Merge())
	data, err := doc.ToJSON()
	assert.NoError(t, err)
	doc2, err := FromJSON(data)
	assert.NoError(t, err)
	assert.Equal(t, 7, doc2.Len())
	tok, err := doc2.Token(2)
	assert.NoError(t, err)
	assert.Equal(t, "New York", tok.Text)
}
