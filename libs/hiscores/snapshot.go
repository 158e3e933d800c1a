package hiscores

import "strings"

// Unranked is the rank the hiscores report for players outside the listed
// range of a skill or activity.
const Unranked = -1

type SkillRecord struct {
	Rank           int
	Level          int
	Experience     int64
	NextLevelExp   int64
	ExpToNextLevel int64 // negative once experience passes the level 100 threshold
}

func (r SkillRecord) Unranked() bool {
	return r.Rank == Unranked
}

type ActivityRecord struct {
	Rank      int
	Killcount int64 // score for minigames and clue scrolls
}

func (r ActivityRecord) Unranked() bool {
	return r.Rank == Unranked
}

// Snapshot is the decoded hiscores entry of one player at the time of a
// lookup. Decode leaves Player and AccountType empty and Fetch fills them in.
// The skill and activity tables are only reachable through copies, so they
// stay as decoded.
type Snapshot struct {
	Player      string
	AccountType AccountType
	Total       SkillRecord

	skills     map[string]SkillRecord
	activities map[string]ActivityRecord
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *Snapshot) Skill(name string) (SkillRecord, error) {
	key := normalizeName(name)
	if key == TotalName {
		return s.Total, nil
	}
	r, ok := s.skills[key]
	if !ok {
		return SkillRecord{}, &UnknownCategoryError{Category: SkillCategory, Name: name}
	}
	return r, nil
}

func (s *Snapshot) Activity(name string) (ActivityRecord, error) {
	r, ok := s.activities[normalizeName(name)]
	if !ok {
		return ActivityRecord{}, &UnknownCategoryError{Category: ActivityCategory, Name: name}
	}
	return r, nil
}

// Skills returns a copy of the skill table, keyed by catalog name. The total
// aggregate is not part of it.
func (s *Snapshot) Skills() map[string]SkillRecord {
	out := make(map[string]SkillRecord, len(s.skills))
	for k, v := range s.skills {
		out[k] = v
	}
	return out
}

func (s *Snapshot) Activities() map[string]ActivityRecord {
	out := make(map[string]ActivityRecord, len(s.activities))
	for k, v := range s.activities {
		out[k] = v
	}
	return out
}

// SkillField returns one of rank, level, experience or exp_to_next_level for a
// skill. Name and field are case-insensitive. The total aggregate has no
// exp_to_next_level.
func (s *Snapshot) SkillField(name string, field string) (int64, error) {
	r, err := s.Skill(name)
	if err != nil {
		return 0, err
	}
	switch normalizeName(field) {
	case "rank":
		return int64(r.Rank), nil
	case "level":
		return int64(r.Level), nil
	case "experience":
		return r.Experience, nil
	case "exp_to_next_level":
		if normalizeName(name) != TotalName {
			return r.ExpToNextLevel, nil
		}
	}
	return 0, &InvalidFieldError{Category: SkillCategory, Field: field}
}

// ActivityField returns rank or killcount for a boss, minigame or tournament.
func (s *Snapshot) ActivityField(name string, field string) (int64, error) {
	r, err := s.Activity(name)
	if err != nil {
		return 0, err
	}
	switch normalizeName(field) {
	case "rank":
		return int64(r.Rank), nil
	case "killcount":
		return r.Killcount, nil
	}
	return 0, &InvalidFieldError{Category: ActivityCategory, Field: field}
}
