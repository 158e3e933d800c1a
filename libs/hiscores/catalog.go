package hiscores

// Positional layout of index_lite.ws. Both lists must follow the upstream row
// order exactly; the decoder can only detect drift that changes the row count.
var skillNames = []string{
	"attack",
	"defense",
	"strength",
	"hitpoints",
	"ranged",
	"prayer",
	"magic",
	"cooking",
	"woodcutting",
	"fletching",
	"fishing",
	"firemaking",
	"crafting",
	"smithing",
	"mining",
	"herblore",
	"agility",
	"thieving",
	"slayer",
	"farming",
	"runecrafting",
	"hunter",
	"construction",
}

// Bosses, minigames and tournament points.
var activityNames = []string{
	"league",
	"bounty_hunter_hunter",
	"bounty_hunter_rogue",
	"cs_all",
	"cs_beginner",
	"cs_easy",
	"cs_medium",
	"cs_hard",
	"cs_elite",
	"cs_master",
	"lms_rank",
	"soul_wars_zeal",
	"abyssal_sire",
	"alchemical_hydra",
	"barrows_chests",
	"bryophyta",
	"callisto",
	"cerberus",
	"chambers_of_xeric",
	"chambers_of_xeric_challenge_mode",
	"chaos_elemental",
	"chaos_fanatic",
	"commander_zilyana",
	"corporeal_beast",
	"crazy_archaeologist",
	"dagannoth_prime",
	"dagannoth_rex",
	"dagannoth_supreme",
	"deranged_archaeologist",
	"general_graardor",
	"giant_mole",
	"grotesque_guardians",
	"hespori",
	"kalphite_queen",
	"king_black_dragon",
	"kraken",
	"kreearra",
	"kril_tsutsaroth",
	"mimic",
	"nightmare",
	"phosanis_nightmare",
	"obor",
	"sarachnis",
	"scorpia",
	"skotizo",
	"tempoross",
	"the_gauntlet",
	"the_corrupted_gauntlet",
	"theatre_of_blood",
	"theatre_of_blood_hard",
	"thermonuclear_smoke_devil",
	"tzkal_zuk",
	"tztok_jad",
	"venenatis",
	"vetion",
	"vorkath",
	"wintertodt",
	"zalcano",
	"zulrah",
}

// TotalName is the synthetic skill holding the overall rank, total level and
// total experience.
const TotalName = "total"

func SkillNames() []string {
	return append([]string(nil), skillNames...)
}

func ActivityNames() []string {
	return append([]string(nil), activityNames...)
}

// ExpectedTokenCount is the number of integers a well-formed payload holds.
func ExpectedTokenCount() int {
	return 3 + 3*len(skillNames) + 2*len(activityNames)
}
