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

package handlers

import (
	"time"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"squery/document"
	"squery/results"
	"squery/syntax"
)

func (a *Actions) tokenCheck(
	ctx *gin.Context,
	fn string,
	check func(tok *document.Token) (bool, error),
) {
	begin := time.Now()
	docID, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	tokIdx, ok := unireq.RequireURLIntArgOrFail(ctx, "token")
	if !ok {
		return
	}
	tok, err := doc.Token(tokIdx)
	if err != nil {
		a.logOp(fn, docID, begin, err)
		respondError(ctx, err)
		return
	}
	ans, err := check(tok)
	if err != nil {
		a.logOp(fn, docID, begin, err)
		respondError(ctx, err)
		return
	}
	a.logOp(fn, docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.TokenCheck{
		DocID:    docID,
		TokenIdx: tokIdx,
		Check:    fn,
		Value:    ans,
	})
}

// PluralNoun tests whether the token is a plural common noun.
func (a *Actions) PluralNoun(ctx *gin.Context) {
	a.tokenCheck(ctx, "pluralNoun", syntax.IsPluralNoun)
}

// NegatedVerb tests whether the token is a verb negated by one
// of its dependents.
func (a *Actions) NegatedVerb(ctx *gin.Context) {
	a.tokenCheck(ctx, "negatedVerb", syntax.IsNegatedVerb)
}

// PreserveCase tests whether the token is a proper noun or
// an acronym.
func (a *Actions) PreserveCase(ctx *gin.Context) {
	a.tokenCheck(ctx, "preserveCase", syntax.PreserveCase)
}

// Normalize returns the normalized form of a single token
// (`token` arg) or of a token span (`from` and `to` args,
// right-open interval).
func (a *Actions) Normalize(ctx *gin.Context) {
	begin := time.Now()
	docID, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	var subject any
	if ctx.Query("from") != "" || ctx.Query("to") != "" {
		from, ok := unireq.RequireURLIntArgOrFail(ctx, "from")
		if !ok {
			return
		}
		to, ok := unireq.RequireURLIntArgOrFail(ctx, "to")
		if !ok {
			return
		}
		span, err := doc.Span(from, to)
		if err != nil {
			a.logOp("normalize", docID, begin, err)
			respondError(ctx, err)
			return
		}
		subject = span

	} else {
		tokIdx, ok := unireq.RequireURLIntArgOrFail(ctx, "token")
		if !ok {
			return
		}
		tok, err := doc.Token(tokIdx)
		if err != nil {
			a.logOp("normalize", docID, begin, err)
			respondError(ctx, err)
			return
		}
		subject = tok
	}
	value, err := syntax.NormalizedString(subject)
	if err != nil {
		a.logOp("normalize", docID, begin, err)
		respondError(ctx, err)
		return
	}
	a.logOp("normalize", docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.Normalized{
		DocID: docID,
		Value: value,
	})
}

// MainVerbs lists the main (non-auxiliary) verbs of a sentence.
func (a *Actions) MainVerbs(ctx *gin.Context) {
	begin := time.Now()
	docID, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	sentIdx, ok := unireq.GetURLIntArgOrFail(ctx, "sent", 0)
	if !ok {
		return
	}
	sent, err := doc.Sentence(sentIdx)
	if err != nil {
		a.logOp("mainVerbs", docID, begin, err)
		respondError(ctx, err)
		return
	}
	verbs := syntax.MainVerbs(sent)
	a.logOp("mainVerbs", docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.NewMainVerbs(docID, sentIdx, verbs))
}

// Subjects lists the subjects of a verb according to the
// dependency parse.
func (a *Actions) Subjects(ctx *gin.Context) {
	begin := time.Now()
	docID, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	tokIdx, ok := unireq.RequireURLIntArgOrFail(ctx, "token")
	if !ok {
		return
	}
	verb, err := doc.Token(tokIdx)
	if err != nil {
		a.logOp("subjects", docID, begin, err)
		respondError(ctx, err)
		return
	}
	subjs := syntax.SubjectsOfVerb(verb, sentenceOf(doc, tokIdx))
	a.logOp("subjects", docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.VerbArguments{
		DocID:    docID,
		VerbIdx:  tokIdx,
		Relation: "subject",
		Tokens:   results.NewTokenInfoList(subjs),
	})
}

// Objects lists the objects of a verb according to the
// dependency parse.
func (a *Actions) Objects(ctx *gin.Context) {
	begin := time.Now()
	docID, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	tokIdx, ok := unireq.RequireURLIntArgOrFail(ctx, "token")
	if !ok {
		return
	}
	verb, err := doc.Token(tokIdx)
	if err != nil {
		a.logOp("objects", docID, begin, err)
		respondError(ctx, err)
		return
	}
	objs := syntax.ObjectsOfVerb(verb)
	a.logOp("objects", docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.VerbArguments{
		DocID:    docID,
		VerbIdx:  tokIdx,
		Relation: "object",
		Tokens:   results.NewTokenInfoList(objs),
	})
}

// CompoundSpan returns document indexes spanning all adjacent
// tokens of a compound noun.
func (a *Actions) CompoundSpan(ctx *gin.Context) {
	begin := time.Now()
	docID, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	tokIdx, ok := unireq.RequireURLIntArgOrFail(ctx, "token")
	if !ok {
		return
	}
	noun, err := doc.Token(tokIdx)
	if err != nil {
		a.logOp("compoundSpan", docID, begin, err)
		respondError(ctx, err)
		return
	}
	minI, maxI := syntax.CompoundNounSpan(noun)
	a.logOp("compoundSpan", docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.CompoundSpan{
		DocID:    docID,
		TokenIdx: tokIdx,
		MinIdx:   minI,
		MaxIdx:   maxI,
	})
}

// VerbPhrases returns the verb plus contiguous auxiliary/negation
// phrase and its prepositional/agent/open-clausal extensions.
func (a *Actions) VerbPhrases(ctx *gin.Context) {
	begin := time.Now()
	docID, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	tokIdx, ok := unireq.RequireURLIntArgOrFail(ctx, "token")
	if !ok {
		return
	}
	verb, err := doc.Token(tokIdx)
	if err != nil {
		a.logOp("verbPhrases", docID, begin, err)
		respondError(ctx, err)
		return
	}
	phrases := syntax.VerbAuxSpans(verb)
	a.logOp("verbPhrases", docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.NewVerbPhrases(docID, tokIdx, phrases))
}
