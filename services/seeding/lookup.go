package main

import (
	"context"
	"errors"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/yannismate/osrs-hiscores/libs/hiscores"
)

type fetcher interface {
	Fetch(ctx context.Context, l hiscores.Lookup) (*hiscores.Snapshot, error)
}

// query selects the value written to the output column.
type query struct {
	activity bool
	name     string
	field    string
}

func (q query) value(s *hiscores.Snapshot) (int64, error) {
	if q.activity {
		return s.ActivityField(q.name, q.field)
	}
	return s.SkillField(q.name, q.field)
}

type seeder struct {
	fetcher     fetcher
	accountType hiscores.AccountType
	query       query
	attempts    int
	pause       time.Duration
}

// column returns the output cell for player. Transport and upstream failures
// are retried after a pause; everything else is final.
func (sd *seeder) column(ctx context.Context, player string) string {
	if player == "" {
		return "No player"
	}
	lookup := hiscores.Lookup{Player: player, AccountType: sd.accountType}

	for attempt := 1; ; attempt++ {
		snapshot, err := sd.fetcher.Fetch(ctx, lookup)
		if err == nil {
			value, err := sd.query.value(snapshot)
			if err != nil {
				log.WithField("event", "seeding_query").Error(err)
				return "Error"
			}
			return strconv.FormatInt(value, 10)
		}

		var (
			notFound  *hiscores.PlayerNotFoundError
			transport *hiscores.TransportError
			upstream  *hiscores.UpstreamError
		)
		if errors.As(err, &notFound) {
			log.Warnf("Player %v was not found!", player)
			return "Not found"
		}
		if (!errors.As(err, &transport) && !errors.As(err, &upstream)) || attempt >= sd.attempts {
			log.WithField("event", "seeding_fetch").Errorf("Error fetching data for player %v: %v", player, err)
			return "Error"
		}

		log.Warnf("Error fetching data for player %v: %v, trying again after %v", player, err, sd.pause)
		select {
		case <-time.After(sd.pause):
		case <-ctx.Done():
			return "Error"
		}
	}
}
