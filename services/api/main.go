package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
	"github.com/tkanos/gonfig"
	"github.com/yannismate/osrs-hiscores/libs/httplog"
	"github.com/yannismate/osrs-hiscores/libs/ratelimit"
	"github.com/yannismate/osrs-hiscores/libs/redisstore"
)

var configuration = Configuration{
	Port:               8080,
	RateLimitWindowSec: 300,
}

func main() {
	err := gonfig.GetConf("config.json", &configuration)
	if err != nil {
		log.WithField("event", "load_config").Fatal(err)
		return
	}

	store := redisstore.NewStore(configuration.CacheUrl)
	defer store.Close()
	if err := store.Ping(context.Background()); err != nil {
		log.WithField("event", "connect_redis").Fatal(err)
		return
	}
	limiter := ratelimit.NewSharedRateLimiter(store)

	apiDb, err := NewApiDb(context.Background(), configuration.DbUri)
	if err != nil {
		log.WithField("event", "connect_db").Fatal(err)
		return
	}
	defer apiDb.Close()

	mdlw := middleware.New(middleware.Config{
		Recorder: metrics.NewRecorder(metrics.Config{Prefix: "api"}),
	})
	window := time.Second * time.Duration(configuration.RateLimitWindowSec)

	mux := http.NewServeMux()
	for _, path := range []string{"/stats", "/skill", "/activity"} {
		h := withRateLimit(apiDb, limiter, window, proxyHandler(configuration.HiscoresServiceUrl, path))
		mux.Handle(path, std.Handler(path, mdlw, httplog.WithLogging(log.StandardLogger(), h)))
	}

	log.WithField("event", "start_server").Info("Starting api on port " + strconv.Itoa(configuration.Port))
	err = http.ListenAndServe(":"+strconv.Itoa(configuration.Port), mux)
	if err != nil {
		log.WithField("event", "start_server").Fatal(err)
	}
}
