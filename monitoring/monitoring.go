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

package monitoring

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/hltscl"
)

type Conf struct {
	DB hltscl.PgConf `json:"db"`
}

// ---

// OpLog records a single performed analysis operation.
type OpLog struct {
	Func  string    `json:"func"`
	DocID string    `json:"docId"`
	Begin time.Time `json:"begin"`
	End   time.Time `json:"end"`
	Err   error     `json:"error"`
}

func (ol OpLog) TimeSpent() time.Duration {
	return ol.End.Sub(ol.Begin)
}

func (ol OpLog) MarshalJSON() ([]byte, error) {
	var errStr string
	if ol.Err != nil {
		errStr = ol.Err.Error()
	}
	return sonic.Marshal(
		struct {
			Func  string    `json:"func"`
			DocID string    `json:"docId"`
			Begin time.Time `json:"begin"`
			End   time.Time `json:"end"`
			Err   string    `json:"error,omitempty"`
		}{
			Func:  ol.Func,
			DocID: ol.DocID,
			Begin: ol.Begin,
			End:   ol.End,
			Err:   errStr,
		},
	)
}

// ---

// StatusWriter is anything able to persist operation records
// for later inspection.
type StatusWriter interface {
	Write(rec OpLog)
}

// NullWriter is used in case no status database is configured.
type NullWriter struct{}

func (n *NullWriter) Write(rec OpLog) {}

// ---

// OpsLoad aggregates operation stats over a period of time.
type OpsLoad struct {
	NumOps        int
	NumErrors     int
	TotalTimeSecs float64
	FirstUpdate   time.Time
	LastUpdate    time.Time
}

func (ol OpsLoad) MarshalJSON() ([]byte, error) {
	var t0, t1 *time.Time
	if !ol.FirstUpdate.IsZero() {
		t0 = &ol.FirstUpdate
	}
	if !ol.LastUpdate.IsZero() {
		t1 = &ol.LastUpdate
	}
	return sonic.Marshal(
		struct {
			NumOps        int        `json:"numOps"`
			NumErrors     int        `json:"numErrors"`
			TotalTimeSecs float64    `json:"totalTimeSecs"`
			FirstUpdate   *time.Time `json:"firstUpdate,omitempty"`
			LastUpdate    *time.Time `json:"lastUpdate,omitempty"`
		}{
			NumOps:        ol.NumOps,
			NumErrors:     ol.NumErrors,
			TotalTimeSecs: ol.TotalTimeSecs,
			FirstUpdate:   t0,
			LastUpdate:    t1,
		},
	)
}
