package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yannismate/osrs-hiscores/libs/hiscores"
)

var skillAliases = map[string]string{
	"att":     "attack",
	"def":     "defense",
	"defence": "defense",
	"str":     "strength",
	"hp":      "hitpoints",
	"range":   "ranged",
	"pray":    "prayer",
	"mage":    "magic",
	"wc":      "woodcutting",
	"fm":      "firemaking",
	"herb":    "herblore",
	"agi":     "agility",
	"thiev":   "thieving",
	"rc":      "runecrafting",
	"con":     "construction",
	"overall": hiscores.TotalName,
}

var activityAliases = map[string]string{
	"cox":    "chambers_of_xeric",
	"cm":     "chambers_of_xeric_challenge_mode",
	"tob":    "theatre_of_blood",
	"hmt":    "theatre_of_blood_hard",
	"kq":     "kalphite_queen",
	"kbd":    "king_black_dragon",
	"jad":    "tztok_jad",
	"zuk":    "tzkal_zuk",
	"cg":     "the_corrupted_gauntlet",
	"gaunt":  "the_gauntlet",
	"sire":   "abyssal_sire",
	"hydra":  "alchemical_hydra",
	"corp":   "corporeal_beast",
	"bandos": "general_graardor",
	"sara":   "commander_zilyana",
	"arma":   "kreearra",
	"zammy":  "kril_tsutsaroth",
	"clues":  "cs_all",
	"lms":    "lms_rank",
}

// parseCommand splits "!lvl Attack" into ("lvl", "Attack").
func parseCommand(message string) (string, string) {
	if !strings.HasPrefix(message, "!") {
		return "", ""
	}
	parts := strings.SplitN(strings.TrimPrefix(message, "!"), " ", 2)
	name := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return name, ""
	}
	return name, strings.TrimSpace(parts[1])
}

func catalogName(arg string, aliases map[string]string) string {
	name := strings.Join(strings.Fields(strings.ToLower(arg)), "_")
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

func skillReply(s *hiscores.Snapshot, arg string) (string, error) {
	name := catalogName(arg, skillAliases)
	r, err := s.Skill(name)
	if err != nil {
		return "", err
	}
	if name == hiscores.TotalName {
		return totalReply(s), nil
	}

	if r.Unranked() {
		return s.Player + " is unranked in " + name + " (level " + strconv.Itoa(r.Level) + ")", nil
	}
	reply := s.Player + " has level " + strconv.Itoa(r.Level) + " " + name + " (" + formatNumber(r.Experience) + " xp" +
		", rank " + formatNumber(int64(r.Rank))
	if r.ExpToNextLevel > 0 {
		reply += ", " + formatNumber(r.ExpToNextLevel) + " xp to level " + strconv.Itoa(r.Level+1)
	}
	return reply + ")", nil
}

func activityReply(s *hiscores.Snapshot, arg string) (string, error) {
	name := catalogName(arg, activityAliases)
	r, err := s.Activity(name)
	if err != nil {
		return "", err
	}
	if r.Unranked() {
		return s.Player + " is unranked in " + name, nil
	}
	return s.Player + " has " + formatNumber(r.Killcount) + " " + name + " (rank " + formatNumber(int64(r.Rank)) + ")", nil
}

func totalReply(s *hiscores.Snapshot) string {
	if s.Total.Unranked() {
		return s.Player + " is unranked overall"
	}
	return s.Player + " has total level " + formatNumber(int64(s.Total.Level)) + " (" + formatNumber(s.Total.Experience) +
		" xp, rank " + formatNumber(int64(s.Total.Rank)) + ")"
}

// errorReply turns a failed lookup or accessor into a chat message. The second
// result is false for errors that should be logged instead of explained.
func errorReply(err error, player string, accountType string) (string, bool) {
	var (
		notFound *hiscores.PlayerNotFoundError
		unknown  *hiscores.UnknownCategoryError
	)
	switch {
	case errors.As(err, &notFound):
		return "Player " + player + " was not found on the " + notFound.AccountType.String() + " hiscores", true
	case errors.As(err, &unknown):
		return "Unknown " + string(unknown.Category) + " " + unknown.Name, true
	}
	return "There was an error getting the hiscores for player " + player + " (" + accountType + ")", false
}

func formatNumber(n int64) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
