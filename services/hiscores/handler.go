package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/yannismate/osrs-hiscores/libs/hiscores"
	rest "github.com/yannismate/osrs-hiscores/libs/rest/hiscores"
)

type fetcher interface {
	Fetch(ctx context.Context, l hiscores.Lookup) (*hiscores.Snapshot, error)
}

func statsHandler(f fetcher) http.Handler {
	fn := func(rw http.ResponseWriter, r *http.Request) {
		snapshot, ok := fetchSnapshot(rw, r, f)
		if !ok {
			return
		}
		writeJSON(rw, http.StatusOK, rest.FromSnapshot(snapshot))
	}
	return http.HandlerFunc(fn)
}

func skillHandler(f fetcher) http.Handler {
	return fieldHandler(f, (*hiscores.Snapshot).SkillField)
}

func activityHandler(f fetcher) http.Handler {
	return fieldHandler(f, (*hiscores.Snapshot).ActivityField)
}

func fieldHandler(f fetcher, get func(s *hiscores.Snapshot, name string, field string) (int64, error)) http.Handler {
	fn := func(rw http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeJSON(rw, http.StatusBadRequest, rest.ErrorResponse{Error: "No name specified"})
			return
		}
		field := r.URL.Query().Get("field")
		if field == "" {
			writeJSON(rw, http.StatusBadRequest, rest.ErrorResponse{Error: "No field specified"})
			return
		}

		snapshot, ok := fetchSnapshot(rw, r, f)
		if !ok {
			return
		}

		value, err := get(snapshot, name, field)
		if err != nil {
			writeError(rw, err)
			return
		}

		writeJSON(rw, http.StatusOK, rest.GetFieldResponse{
			Player:      snapshot.Player,
			AccountType: snapshot.AccountType.String(),
			Name:        name,
			Field:       field,
			Value:       value,
		})
	}
	return http.HandlerFunc(fn)
}

// fetchSnapshot writes the error response itself and reports whether the
// handler may continue.
func fetchSnapshot(rw http.ResponseWriter, r *http.Request, f fetcher) (*hiscores.Snapshot, bool) {
	accountType := r.URL.Query().Get("type")
	if accountType == "" {
		accountType = "N"
	}

	lookup, err := hiscores.NewLookup(r.URL.Query().Get("player"), accountType)
	if err != nil {
		writeError(rw, err)
		return nil, false
	}

	start := time.Now()
	snapshot, err := f.Fetch(r.Context(), lookup)
	metricLookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metricLookups.WithLabelValues(outcome(err)).Inc()
		writeError(rw, err)
		return nil, false
	}
	metricLookups.WithLabelValues("success").Inc()
	return snapshot, true
}

func outcome(err error) string {
	var (
		notFound  *hiscores.PlayerNotFoundError
		upstream  *hiscores.UpstreamError
		transport *hiscores.TransportError
		malformed *hiscores.MalformedPayloadError
	)
	switch {
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &upstream):
		return "upstream_error"
	case errors.As(err, &transport):
		return "transport_error"
	case errors.As(err, &malformed):
		return "malformed_payload"
	}
	return "error"
}

func statusFor(err error) int {
	var (
		invalidType *hiscores.InvalidAccountTypeError
		unknown     *hiscores.UnknownCategoryError
		invalid     *hiscores.InvalidFieldError
		notFound    *hiscores.PlayerNotFoundError
	)
	switch {
	case errors.Is(err, hiscores.ErrEmptyPlayer),
		errors.As(err, &invalidType),
		errors.As(err, &unknown),
		errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func writeError(rw http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusBadGateway {
		log.WithField("event", "fetch_hiscores").Warn(err)
	}
	writeJSON(rw, status, rest.ErrorResponse{Error: err.Error()})
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	jData, err := json.Marshal(v)
	if err != nil {
		log.WithField("event", "json_encode").Error(err)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, err = rw.Write(jData)
	if err != nil {
		log.WithField("event", "write_response").Error(err)
	}
}
