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

// POS is a coarse part-of-speech class as defined
// by the Universal Dependencies tag set (the form
// spaCy and stanza exports use).
type POS string

func (p POS) String() string {
	return string(p)
}

const (
	POSAdj   POS = "ADJ"
	POSAdp   POS = "ADP"
	POSAdv   POS = "ADV"
	POSAux   POS = "AUX"
	POSCconj POS = "CCONJ"
	POSDet   POS = "DET"
	POSIntj  POS = "INTJ"
	POSNoun  POS = "NOUN"
	POSNum   POS = "NUM"
	POSPart  POS = "PART"
	POSPron  POS = "PRON"
	POSPropn POS = "PROPN"
	POSPunct POS = "PUNCT"
	POSSconj POS = "SCONJ"
	POSSym   POS = "SYM"
	POSVerb  POS = "VERB"
	POSOther POS = "X"
)

// DepLabel is a dependency relation label between
// a token and its syntactic head.
type DepLabel string

func (d DepLabel) String() string {
	return string(d)
}

const (
	DepACL      DepLabel = "acl"
	DepAgent    DepLabel = "agent"
	DepAttr     DepLabel = "attr"
	DepAux      DepLabel = "aux"
	DepAuxPass  DepLabel = "auxpass"
	DepCC       DepLabel = "cc"
	DepCompound DepLabel = "compound"
	DepConj     DepLabel = "conj"
	DepCSubj    DepLabel = "csubj"
	DepCSubjPas DepLabel = "csubjpass"
	DepDative   DepLabel = "dative"
	DepDet      DepLabel = "det"
	DepDObj     DepLabel = "dobj"
	DepExpl     DepLabel = "expl"
	DepNeg      DepLabel = "neg"
	DepNSubj    DepLabel = "nsubj"
	DepNSubjPas DepLabel = "nsubjpass"
	DepPObj     DepLabel = "pobj"
	DepPrep     DepLabel = "prep"
	DepPunct    DepLabel = "punct"
	DepRoot     DepLabel = "ROOT"
	DepXComp    DepLabel = "xcomp"
)

// Token is a single annotated token as produced by an upstream
// NLP pipeline. SQUERY never creates annotations itself - it only
// navigates and inspects what the pipeline exported.
type Token struct {

	// Index is the position of the token within its document
	Index int `json:"index"`

	// Text is the unmodified surface form
	Text string `json:"text"`

	// Lower is the lowercased surface form
	Lower string `json:"lower"`

	// Lemma is the canonical base form
	Lemma string `json:"lemma"`

	// POS is a coarse part-of-speech class
	POS POS `json:"pos"`

	// Tag is a detailed (tag set specific) part-of-speech tag
	Tag string `json:"tag"`

	// Dep is the relation between the token and its head
	Dep DepLabel `json:"dep"`

	// Head is the document index of the syntactic head;
	// the sentence root points to itself
	Head int `json:"head"`

	// EntType is a named entity type (empty for non-entities)
	EntType string `json:"entType,omitempty"`

	doc *Document
}

// Doc returns the parent document the token belongs to.
func (t *Token) Doc() *Document {
	return t.doc
}

// HeadToken returns the token's syntactic head. For a sentence
// root, the token itself is returned.
func (t *Token) HeadToken() *Token {
	return t.doc.Tokens[t.Head]
}

// IsRoot tests whether the token is a sentence root
// (i.e. its head link points to itself).
func (t *Token) IsRoot() bool {
	return t.Head == t.Index
}

// Children returns all direct dependents of the token
// in document order.
func (t *Token) Children() []*Token {
	ans := make([]*Token, 0, 4)
	for _, tok := range t.doc.Tokens {
		if tok.Head == t.Index && tok.Index != t.Index {
			ans = append(ans, tok)
		}
	}
	return ans
}

// Lefts returns the token's dependents preceding it in the
// document, in document order.
func (t *Token) Lefts() []*Token {
	ans := make([]*Token, 0, 2)
	for _, tok := range t.doc.Tokens[:t.Index] {
		if tok.Head == t.Index {
			ans = append(ans, tok)
		}
	}
	return ans
}

// Rights returns the token's dependents following it in the
// document, in document order.
func (t *Token) Rights() []*Token {
	ans := make([]*Token, 0, 2)
	for _, tok := range t.doc.Tokens[t.Index+1:] {
		if tok.Head == t.Index {
			ans = append(ans, tok)
		}
	}
	return ans
}
