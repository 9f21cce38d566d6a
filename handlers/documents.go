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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"squery/document"
	"squery/results"
	"squery/serror"
	"squery/syntax"
)

// UploadDocument accepts a pipeline-exported annotated document,
// validates its structure and stores it under a fresh id.
func (a *Actions) UploadDocument(ctx *gin.Context) {
	begin := time.Now()
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	doc, err := document.FromJSON(body)
	if err != nil {
		a.logOp("uploadDocument", "", begin, err)
		respondError(ctx, err)
		return
	}
	if doc.Len() == 0 {
		err := serror.ValidationError{Msg: "document has no tokens"}
		a.logOp("uploadDocument", "", begin, err)
		respondError(ctx, err)
		return
	}
	if doc.Len() > a.maxDocumentTokens {
		err := serror.ValidationError{
			Msg: fmt.Sprintf("document exceeds the %d tokens limit", a.maxDocumentTokens),
		}
		a.logOp("uploadDocument", "", begin, err)
		respondError(ctx, err)
		return
	}
	docID := a.store.MkID()
	if err := a.store.Save(docID, doc); err != nil {
		a.logOp("uploadDocument", docID, begin, err)
		respondError(ctx, err)
		return
	}
	a.logOp("uploadDocument", docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.DocumentInfo{
		ID:        docID,
		NumTokens: doc.Len(),
		NumSents:  doc.NumSents(),
		Tagged:    doc.Tagged,
		Parsed:    doc.Parsed,
	})
}

// GetDocument returns a stored document in the exchange format.
func (a *Actions) GetDocument(ctx *gin.Context) {
	_, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, doc)
}

// DeleteDocument removes a stored document.
func (a *Actions) DeleteDocument(ctx *gin.Context) {
	docID := ctx.Param("docId")
	if err := a.store.Delete(docID); err != nil {
		respondError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"docId": docID, "removed": true})
}

type mergeSpansArgs struct {
	Spans []struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"spans"`
}

// MergeSpans collapses the posted spans in-place within the stored
// document, each into a single token, and re-stores the result.
// Per-span failures (e.g. positions gone stale after a previous
// merge) are logged and skipped; the remaining spans are still
// merged. The operation is not re-entrant per document: concurrent
// requests follow last-writer-wins.
func (a *Actions) MergeSpans(ctx *gin.Context) {
	begin := time.Now()
	docID, doc, ok := a.getDocumentOrFail(ctx)
	if !ok {
		return
	}
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	var args mergeSpansArgs
	if err := json.Unmarshal(body, &args); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	spans := make([]document.Span, len(args.Spans))
	for i, sp := range args.Spans {
		spans[i] = doc.BindSpan(sp.Start, sp.End)
	}
	syntax.MergeSpans(spans)
	if err := a.store.Save(docID, doc); err != nil {
		a.logOp("mergeSpans", docID, begin, err)
		respondError(ctx, err)
		return
	}
	a.logOp("mergeSpans", docID, begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, results.MergeReport{
		DocID:     docID,
		NumTokens: doc.Len(),
	})
}
