package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
	"github.com/tkanos/gonfig"
	"github.com/yannismate/osrs-hiscores/libs/hiscores"
	"github.com/yannismate/osrs-hiscores/libs/httplog"
)

var configuration = defaultConfiguration()

func main() {
	err := gonfig.GetConf("config.json", &configuration)
	if err != nil {
		log.WithField("event", "load_config").Fatal(err)
		return
	}

	metricsServer := http.NewServeMux()
	metricsServer.Handle("/metrics", promhttp.Handler())
	go func() {
		err := http.ListenAndServe(":"+strconv.Itoa(configuration.MetricsPort), metricsServer)
		if err != nil {
			log.WithField("event", "start_metrics_server").Fatal(err)
		}
	}()

	client := hiscores.NewClient(
		hiscores.WithBaseURL(configuration.HiscoresBaseUrl),
		hiscores.WithTimeout(time.Millisecond*time.Duration(configuration.HiscoresTimeout)),
		hiscores.WithUserAgent(configuration.HiscoresUserAgent),
		hiscores.WithLogger(log.StandardLogger()),
	)

	mdlw := middleware.New(middleware.Config{
		Recorder: metrics.NewRecorder(metrics.Config{}),
	})

	mux := http.NewServeMux()
	for path, handler := range routes(client) {
		mux.Handle(path, std.Handler(path, mdlw, httplog.WithLogging(log.StandardLogger(), handler)))
	}

	log.WithField("event", "start_server").Info("Starting hiscores service on port " + strconv.Itoa(configuration.Port))
	err = http.ListenAndServe(":"+strconv.Itoa(configuration.Port), mux)
	if err != nil {
		log.WithField("event", "start_server").Fatal(err)
	}
}

func routes(f fetcher) map[string]http.Handler {
	return map[string]http.Handler{
		"/stats":    statsHandler(f),
		"/skill":    skillHandler(f),
		"/activity": activityHandler(f),
	}
}
