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

// Package docstore keeps uploaded annotated documents in Redis
// so repeated queries against the same document do not have to
// re-upload the (possibly large) pipeline export.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"squery/document"
	"squery/serror"
)

const (
	DefaultDocumentTTLSecs = 3600

	keyPrefix = "squeryDoc"
)

type Store struct {
	ctx context.Context
	c   *redis.Client
	ttl time.Duration
}

// TestConnection tries to ping the configured Redis instance
// repeatedly until it either succeeds or the timeout is reached.
func (s *Store) TestConnection(timeout time.Duration) error {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	end := time.Now().Add(timeout)
	var lastErr error
	for range tick.C {
		lastErr = s.c.Ping(s.ctx).Err()
		if lastErr == nil {
			return nil
		}
		if time.Now().After(end) {
			break
		}
		log.Warn().Err(lastErr).Msg("waiting for Redis connection")
	}
	return fmt.Errorf("failed to connect to Redis: %w", lastErr)
}

func mkKey(docID string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, docID)
}

// MkID generates a new document identifier.
func (s *Store) MkID() string {
	return uuid.New().String()
}

// Save stores the document under the provided id, refreshing
// its expiration.
func (s *Store) Save(docID string, doc *document.Document) error {
	data, err := doc.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize document %s: %w", docID, err)
	}
	if err := s.c.Set(s.ctx, mkKey(docID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store document %s: %w", docID, err)
	}
	return nil
}

// Get loads and decodes a stored document.
func (s *Store) Get(docID string) (*document.Document, error) {
	cmd := s.c.Get(s.ctx, mkKey(docID))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, serror.NotFoundError{Msg: fmt.Sprintf("document %s not found", docID)}
		}
		return nil, fmt.Errorf("failed to load document %s: %w", docID, err)
	}
	doc, err := document.FromJSON([]byte(cmd.Val()))
	if err != nil {
		return nil, serror.InternalError{
			Msg: fmt.Sprintf("failed to decode stored document %s: %s", docID, err),
		}
	}
	return doc, nil
}

// Delete removes a stored document.
func (s *Store) Delete(docID string) error {
	cmd := s.c.Del(s.ctx, mkKey(docID))
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", docID, err)
	}
	if cmd.Val() == 0 {
		return serror.NotFoundError{Msg: fmt.Sprintf("document %s not found", docID)}
	}
	return nil
}

func NewStore(ctx context.Context, conf *Conf) *Store {
	ttlSecs := conf.DocumentTTLSecs
	if ttlSecs == 0 {
		ttlSecs = DefaultDocumentTTLSecs
		log.Warn().
			Int("ttlSecs", ttlSecs).
			Msg("document TTL not specified, using default")
	}
	return &Store{
		ctx: ctx,
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ttl: time.Duration(ttlSecs) * time.Second,
	}
}
