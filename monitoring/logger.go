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
	"context"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

const (
	recentLogSize = 100
)

// OpLogger keeps aggregated and recent records of performed
// analysis operations and forwards each record to a status
// writer (TimescaleDB or a no-op one).
type OpLogger struct {
	totals       OpsLoad
	dataLock     sync.RWMutex
	recentLog    *collections.CircularList[OpLog]
	tz           *time.Location
	statusWriter StatusWriter
}

func (w *OpLogger) Log(rec OpLog) {
	w.dataLock.Lock()
	defer w.dataLock.Unlock()

	if w.totals.NumOps == 0 {
		w.totals.FirstUpdate = rec.Begin
	}
	w.totals.NumOps++
	w.totals.LastUpdate = rec.End
	if rec.Err != nil {
		w.totals.NumErrors++
	}
	w.totals.TotalTimeSecs += rec.TimeSpent().Seconds()
	w.recentLog.Append(rec)
	w.statusWriter.Write(rec)
}

func (w *OpLogger) TotalLoad() OpsLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	return w.totals
}

func (w *OpLogger) RecentLoad() OpsLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	var ans OpsLoad
	w.recentLog.ForEach(func(i int, item OpLog) bool {
		if i == 0 {
			ans.FirstUpdate = item.Begin
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumOps++
		ans.TotalTimeSecs += item.TimeSpent().Seconds()
		return true
	})
	return ans
}

func (w *OpLogger) RecentRecords() []OpLog {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	ans := make([]OpLog, w.recentLog.Len())
	w.recentLog.ForEach(func(i int, item OpLog) bool {
		ans[i] = item
		return true
	})
	return ans
}

func (w *OpLogger) Start(ctx context.Context) {
	w.recentLog = collections.NewCircularList[OpLog](recentLogSize)
	log.Info().Msg("starting operation logger")
}

func (w *OpLogger) Stop(ctx context.Context) error {
	log.Info().Msg("shutting down operation logger")
	return nil
}

func NewOpLogger(
	statusWriter StatusWriter,
	tz *time.Location,
) *OpLogger {
	return &OpLogger{
		statusWriter: statusWriter,
		tz:           tz,
	}
}
