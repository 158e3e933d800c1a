package hiscores

import (
	"strconv"
	"strings"
)

// MaxVirtualLevel is the highest level the experience curve is defined for
// (200m experience).
const MaxVirtualLevel = 126

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Decode parses an index_lite.ws body. The body is treated as one stream of
// integers separated by newlines and commas, laid out as the total row, one
// rank,level,experience triple per skill and one rank,count pair per activity.
// It fails with a MalformedPayloadError unless every token is accounted for.
func Decode(body []byte) (*Snapshot, error) {
	text := lineEndings.Replace(strings.TrimSpace(string(body)))
	var tokens []string
	if text != "" {
		tokens = strings.Split(strings.Replace(text, "\n", ",", -1), ",")
	}

	if len(tokens) != ExpectedTokenCount() {
		return nil, malformed("expected %d fields, got %d", ExpectedTokenCount(), len(tokens))
	}

	d := decoder{tokens: tokens}

	total := d.skill(TotalName)
	skills := make(map[string]SkillRecord, len(skillNames))
	for _, name := range skillNames {
		r := d.skill(name)
		if r.Level > MaxVirtualLevel && d.err == nil {
			d.err = malformed("%s level %d is above %d", name, r.Level, MaxVirtualLevel)
		}
		if d.err == nil {
			r.NextLevelExp = NextLevelExp(r.Level)
			r.ExpToNextLevel = r.NextLevelExp - r.Experience
		}
		skills[name] = r
	}

	activities := make(map[string]ActivityRecord, len(activityNames))
	for _, name := range activityNames {
		activities[name] = d.activity(name)
	}

	if d.err != nil {
		return nil, d.err
	}

	return &Snapshot{
		Total:      total,
		skills:     skills,
		activities: activities,
	}, nil
}

// decoder walks the token stream and keeps the first error, so callers can
// consume a whole record before checking.
type decoder struct {
	tokens []string
	pos    int
	err    error
}

func (d *decoder) next(name string, field string, min int64) int64 {
	if d.err != nil {
		return 0
	}
	tok := strings.TrimSpace(d.tokens[d.pos])
	d.pos++

	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || strings.HasPrefix(tok, "+") {
		d.err = malformed("%s %s at field %d: %q is not an integer", name, field, d.pos, tok)
		return 0
	}
	if v < min {
		d.err = malformed("%s %s at field %d: %d is below %d", name, field, d.pos, v, min)
		return 0
	}
	return v
}

func (d *decoder) skill(name string) SkillRecord {
	return SkillRecord{
		Rank:       int(d.next(name, "rank", Unranked)),
		Level:      int(d.next(name, "level", 1)),
		Experience: d.next(name, "experience", Unranked),
	}
}

func (d *decoder) activity(name string) ActivityRecord {
	return ActivityRecord{
		Rank:      int(d.next(name, "rank", Unranked)),
		Killcount: d.next(name, "killcount", Unranked),
	}
}
