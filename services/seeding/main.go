package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tkanos/gonfig"
	"github.com/yannismate/osrs-hiscores/libs/hiscores"
)

var configuration = Configuration{}

func main() {
	err := gonfig.GetConf("config.json", &configuration)
	if err != nil {
		log.WithField("event", "load_config").Fatal(err)
		return
	}

	accountTypeStr := flag.String("type", "N", "Account type (N, IM, UIM, HIM, S)")
	skill := flag.String("skill", "", "Skill to look up, e.g. attack or total")
	activity := flag.String("activity", "", "Boss, minigame or tournament to look up, e.g. zulrah")
	field := flag.String("field", "", "Field to write (skills: rank, level, experience, exp_to_next_level; activities: rank, killcount)")
	fileName := flag.String("in", "", "-in [in.csv]")

	flag.Parse()

	accountType, err := hiscores.ParseAccountType(*accountTypeStr)
	if err != nil {
		log.Fatal(err)
		return
	}

	q := query{name: *skill, field: *field}
	if *activity != "" {
		q = query{activity: true, name: *activity, field: *field}
	}
	if (*skill == "") == (*activity == "") {
		log.Fatal("Exactly one of -skill and -activity is required")
		return
	}
	if q.field == "" {
		q.field = "level"
		if q.activity {
			q.field = "killcount"
		}
	}

	if *fileName == "" {
		log.Fatal("Usage: seeding -in [file.csv]")
		return
	}

	inFile, err := os.Open(*fileName)
	if err != nil {
		log.Fatal("Could not open file!", err)
		return
	}
	defer inFile.Close()

	outFile, err := os.Create("out.csv")
	if err != nil {
		log.Fatal("Could not create output file!", err)
		return
	}
	defer outFile.Close()

	sd := &seeder{
		fetcher: hiscores.NewClient(
			hiscores.WithBaseURL(configuration.Hiscores.BaseUrl),
			hiscores.WithTimeout(time.Millisecond*time.Duration(configuration.Hiscores.TimeoutMs)),
			hiscores.WithUserAgent("osrs-hiscores/services/seeding"),
		),
		accountType: accountType,
		query:       q,
		attempts:    configuration.Retry.Attempts,
		pause:       time.Second * time.Duration(configuration.Retry.PauseSec),
	}

	if err := seed(context.Background(), sd, inFile, outFile); err != nil {
		log.Fatal("File scanner error! ", err)
	}
}

// seed copies the header line and appends the looked up value to every other
// line. The player name is the first column.
func seed(ctx context.Context, sd *seeder, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	firstLine := true
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		if firstLine {
			firstLine = false
			header := sd.query.name + " " + sd.query.field
			if _, err := io.WriteString(out, line+","+header+"\n"); err != nil {
				return err
			}
			continue
		}

		player := strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
		log.Printf("Getting %v %v for player %v (line %v)", sd.query.name, sd.query.field, player, lineNum)
		if _, err := io.WriteString(out, line+","+sd.column(ctx, player)+"\n"); err != nil {
			return err
		}
	}

	return scanner.Err()
}
