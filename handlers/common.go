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
	"errors"
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"squery/docstore"
	"squery/document"
	"squery/monitoring"
	"squery/serror"
)

type Actions struct {
	store             *docstore.Store
	opLogger          *monitoring.OpLogger
	maxDocumentTokens int
}

// errStatus maps domain errors to HTTP statuses: a missing
// annotation layer or a bad index is the client's data problem
// (422), an unsupported input kind is a bad request (400), an
// unknown document is 404 and anything else a server error.
func errStatus(err error) int {
	var validationErr serror.ValidationError
	var unsupportedErr serror.UnsupportedTypeError
	var notFoundErr serror.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unsupportedErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx *gin.Context, err error) {
	uniresp.RespondWithErrorJSON(ctx, err, errStatus(err))
}

func (a *Actions) logOp(fn, docID string, begin time.Time, err error) {
	a.opLogger.Log(monitoring.OpLog{
		Func:  fn,
		DocID: docID,
		Begin: begin,
		End:   time.Now(),
		Err:   err,
	})
}

// getDocumentOrFail loads a stored document; in case of a failure
// it writes the error response itself and reports ok=false.
func (a *Actions) getDocumentOrFail(ctx *gin.Context) (string, *document.Document, bool) {
	docID := ctx.Param("docId")
	doc, err := a.store.Get(docID)
	if err != nil {
		respondError(ctx, err)
		return docID, nil, false
	}
	return docID, doc, true
}

// sentenceOf returns the sentence span containing token index
// tokIdx (or the whole document if no boundaries were exported).
func sentenceOf(doc *document.Document, tokIdx int) document.Span {
	for i := 0; i < doc.NumSents(); i++ {
		sent, err := doc.Sentence(i)
		if err == nil && sent.Contains(tokIdx) {
			return sent
		}
	}
	return doc.BindSpan(0, doc.Len())
}
