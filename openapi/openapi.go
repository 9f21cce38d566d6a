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

package openapi

func docIDParam() Parameter {
	return Parameter{
		Name:        "docId",
		In:          "path",
		Description: "An ID of an uploaded document as returned by POST /documents",
		Required:    true,
		Schema:      ParamSchema{Type: "string"},
	}
}

func tokenParam(description string) Parameter {
	return Parameter{
		Name:        "token",
		In:          "query",
		Description: description,
		Required:    true,
		Schema:      ParamSchema{Type: "integer"},
	}
}

func NewResponse(ver, url string) *Response {
	paths := make(map[string]Methods)

	paths["/documents"] = Methods{
		Post: &Method{
			Description: "Uploads a tagged and/or parsed document as exported by an NLP pipeline (spaCy, stanza). Returns a document ID for subsequent queries.",
			OperationID: "UploadDocument",
		},
	}

	paths["/documents/{docId}"] = Methods{
		Get: &Method{
			Description: "Shows a stored annotated document.",
			OperationID: "GetDocument",
			Parameters:  []Parameter{docIDParam()},
		},
		Delete: &Method{
			Description: "Removes a stored document before its expiration.",
			OperationID: "DeleteDocument",
			Parameters:  []Parameter{docIDParam()},
		},
	}

	paths["/documents/{docId}/merge-spans"] = Methods{
		Post: &Method{
			Description: "Merges the submitted token spans in-place so that each takes up a single token. Spans whose positions became stale are skipped.",
			OperationID: "MergeSpans",
			Parameters:  []Parameter{docIDParam()},
		},
	}

	paths["/analysis/{docId}/plural-noun"] = Methods{
		Get: &Method{
			Description: "Tests whether the token is a plural common noun. The document must be POS-tagged.",
			OperationID: "PluralNoun",
			Parameters: []Parameter{
				docIDParam(),
				tokenParam("A document index of the tested token"),
			},
		},
	}

	paths["/analysis/{docId}/negated-verb"] = Methods{
		Get: &Method{
			Description: "Tests whether the token is a verb negated by one of its dependents. The document must be parsed.",
			OperationID: "NegatedVerb",
			Parameters: []Parameter{
				docIDParam(),
				tokenParam("A document index of the tested token"),
			},
		},
	}

	paths["/analysis/{docId}/preserve-case"] = Methods{
		Get: &Method{
			Description: "Tests whether the token is a proper noun or an acronym, i.e. whether its casing should be preserved when normalizing.",
			OperationID: "PreserveCase",
			Parameters: []Parameter{
				docIDParam(),
				tokenParam("A document index of the tested token"),
			},
		},
	}

	paths["/analysis/{docId}/normalize"] = Methods{
		Get: &Method{
			Description: "Returns the as-is text for proper nouns and acronyms, the lemma otherwise. Use either `token` or the `from`+`to` span arguments.",
			OperationID: "Normalize",
			Parameters: []Parameter{
				docIDParam(),
				{
					Name:        "token",
					In:          "query",
					Description: "A document index of the normalized token",
					Schema:      ParamSchema{Type: "integer"},
				},
				{
					Name:        "from",
					In:          "query",
					Description: "Span start (inclusive)",
					Schema:      ParamSchema{Type: "integer"},
				},
				{
					Name:        "to",
					In:          "query",
					Description: "Span end (exclusive)",
					Schema:      ParamSchema{Type: "integer"},
				},
			},
		},
	}

	paths["/analysis/{docId}/main-verbs"] = Methods{
		Get: &Method{
			Description: "Lists the main (non-auxiliary) verbs of a sentence.",
			OperationID: "MainVerbs",
			Parameters: []Parameter{
				docIDParam(),
				{
					Name:        "sent",
					In:          "query",
					Description: "A sentence index (0 by default)",
					Schema:      ParamSchema{Type: "integer"},
				},
			},
		},
	}

	paths["/analysis/{docId}/subjects"] = Methods{
		Get: &Method{
			Description: "Lists the subjects of a verb according to the dependency parse, conjuncts included.",
			OperationID: "Subjects",
			Parameters: []Parameter{
				docIDParam(),
				tokenParam("A document index of the verb"),
			},
		},
	}

	paths["/analysis/{docId}/objects"] = Methods{
		Get: &Method{
			Description: "Lists the objects of a verb according to the dependency parse, conjuncts included.",
			OperationID: "Objects",
			Parameters: []Parameter{
				docIDParam(),
				tokenParam("A document index of the verb"),
			},
		},
	}

	paths["/analysis/{docId}/compound-span"] = Methods{
		Get: &Method{
			Description: "Returns document indexes (min, max) spanning all adjacent tokens of a compound noun.",
			OperationID: "CompoundSpan",
			Parameters: []Parameter{
				docIDParam(),
				tokenParam("A document index of the noun"),
			},
		},
	}

	paths["/analysis/{docId}/verb-phrases"] = Methods{
		Get: &Method{
			Description: "Returns the verb with its contiguous auxiliary/negation dependents plus trailing prepositional, agent and open-clausal extensions.",
			OperationID: "VerbPhrases",
			Parameters: []Parameter{
				docIDParam(),
				tokenParam("A document index of the verb"),
			},
		},
	}

	paths["/monitoring/ops-load"] = Methods{
		Get: &Method{
			Description: "Shows aggregated operation stats since the server start.",
			OperationID: "OpsLoadTotal",
		},
	}

	return &Response{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "SQUERY - syntactic annotation query server",
			Description: "Answers linguistic queries over dependency-parse and POS annotated documents produced by an external NLP pipeline.",
			Version:     ver,
		},
		Servers: []Server{{URL: url}},
		Paths:   paths,
	}
}
