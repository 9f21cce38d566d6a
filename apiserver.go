// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"squery/cnf"
	"squery/docs"
	"squery/docstore"
	"squery/general"
	"squery/handlers"
	"squery/monitoring"
	"squery/openapi"
)

type apiServer struct {
	server   *http.Server
	conf     *cnf.Conf
	version  general.VersionInfo
	store    *docstore.Store
	opLogger *monitoring.OpLogger
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.CustomRecovery(recoveryHandler))
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	protected := engine.Group("/").Use(AuthRequired(api.conf))

	dActions := handlers.NewActions(api.store, api.opLogger, api.conf.MaxDocumentTokens)
	mActions := monitoring.NewActions(api.opLogger)

	engine.GET("/", mkServerInfo(api.conf, api.version))

	docs.SwaggerInfo.Version = api.version.Version
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET("/openapi", openapi.MkHandleRequest(api.version.Version))

	protected.POST(
		"/documents", dActions.UploadDocument)

	protected.GET(
		"/documents/:docId", dActions.GetDocument)

	protected.DELETE(
		"/documents/:docId", dActions.DeleteDocument)

	protected.POST(
		"/documents/:docId/merge-spans", dActions.MergeSpans)

	protected.GET(
		"/analysis/:docId/plural-noun", dActions.PluralNoun)

	protected.GET(
		"/analysis/:docId/negated-verb", dActions.NegatedVerb)

	protected.GET(
		"/analysis/:docId/preserve-case", dActions.PreserveCase)

	protected.GET(
		"/analysis/:docId/normalize", dActions.Normalize)

	protected.GET(
		"/analysis/:docId/main-verbs", dActions.MainVerbs)

	protected.GET(
		"/analysis/:docId/subjects", dActions.Subjects)

	protected.GET(
		"/analysis/:docId/objects", dActions.Objects)

	protected.GET(
		"/analysis/:docId/compound-span", dActions.CompoundSpan)

	protected.GET(
		"/analysis/:docId/verb-phrases", dActions.VerbPhrases)

	engine.GET(
		"/monitoring/ops-load", mActions.OpsLoadTotal)

	engine.GET(
		"/monitoring/ops-load-recent", mActions.OpsLoadRecent)

	engine.GET(
		"/monitoring/recent-ops", mActions.RecentRecords)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (s *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down SQUERY HTTP API server")
	return s.server.Shutdown(ctx)
}

func mkServerInfo(conf *cnf.Conf, version general.VersionInfo) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
			"name":      "SQUERY - a syntactic annotation query server",
			"version":   version,
			"publicUrl": conf.PublicURL,
		})
	}
}

func runApiServer(conf *cnf.Conf, version general.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := docstore.NewStore(ctx, conf.Redis)
	if err := store.TestConnection(redisConnectionTestTimeout); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}

	var statusWriter monitoring.StatusWriter
	services := make([]service, 0, 3)
	if conf.Monitoring != nil {
		tsWriter, err := monitoring.NewTimescaleDBWriter(
			ctx, conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize TimescaleDB writer")
			return
		}
		statusWriter = tsWriter
		services = append(services, tsWriter)

	} else {
		log.Warn().Msg("monitoring database not configured, operation stats will not be persisted")
		statusWriter = &monitoring.NullWriter{}
	}

	opLogger := monitoring.NewOpLogger(statusWriter, conf.TimezoneLocation())
	server := &apiServer{
		conf:     conf,
		version:  version,
		store:    store,
		opLogger: opLogger,
	}
	services = append(services, opLogger, server)

	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
