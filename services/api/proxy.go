package main

import (
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

var httpClient = http.Client{
	Timeout: time.Second * 15,
}

// proxyHandler forwards the request query to path on the hiscores service and
// relays its status and body.
func proxyHandler(baseUrl string, path string) http.Handler {
	fn := func(rw http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		query.Del("api_key")
		reqUrl := baseUrl + path + "?" + query.Encode()

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, reqUrl, nil)
		if err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			log.WithField("event", "new_request_hiscores").Error(err)
			return
		}
		req.Header.Set("User-Agent", "osrs-hiscores/services/api")

		res, err := httpClient.Do(req)
		if err != nil {
			rw.WriteHeader(http.StatusBadGateway)
			log.WithField("event", "do_request_hiscores").Error(err)
			return
		}
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		if err != nil {
			rw.WriteHeader(http.StatusBadGateway)
			log.WithField("event", "read_body_hiscores").Error(err)
			return
		}

		if ct := res.Header.Get("Content-Type"); ct != "" {
			rw.Header().Set("Content-Type", ct)
		}
		rw.WriteHeader(res.StatusCode)
		_, _ = rw.Write(body)
	}
	return http.HandlerFunc(fn)
}
