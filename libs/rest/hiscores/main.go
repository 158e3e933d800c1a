package hiscores

import "github.com/yannismate/osrs-hiscores/libs/hiscores"

type GetStatsResponse struct {
	Player      string              `json:"player"`
	AccountType string              `json:"accountType"`
	Total       Total               `json:"total"`
	Skills      map[string]Skill    `json:"skills"`
	Activities  map[string]Activity `json:"activities"`
}

// Total is the overall row. It has no level threshold to report.
type Total struct {
	Rank       int   `json:"rank"`
	Level      int   `json:"level"`
	Experience int64 `json:"experience"`
}

type Skill struct {
	Rank           int   `json:"rank"`
	Level          int   `json:"level"`
	Experience     int64 `json:"experience"`
	NextLevelExp   int64 `json:"nextLevelExp"`
	ExpToNextLevel int64 `json:"expToNextLevel"`
}

type Activity struct {
	Rank      int   `json:"rank"`
	Killcount int64 `json:"killcount"`
}

type GetFieldResponse struct {
	Player      string `json:"player"`
	AccountType string `json:"accountType"`
	Name        string `json:"name"`
	Field       string `json:"field"`
	Value       int64  `json:"value"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromSnapshot(s *hiscores.Snapshot) GetStatsResponse {
	res := GetStatsResponse{
		Player:      s.Player,
		AccountType: s.AccountType.String(),
		Total:       Total{Rank: s.Total.Rank, Level: s.Total.Level, Experience: s.Total.Experience},
		Skills:      make(map[string]Skill),
		Activities:  make(map[string]Activity),
	}
	for name, r := range s.Skills() {
		res.Skills[name] = Skill{
			Rank:           r.Rank,
			Level:          r.Level,
			Experience:     r.Experience,
			NextLevelExp:   r.NextLevelExp,
			ExpToNextLevel: r.ExpToNextLevel,
		}
	}
	for name, r := range s.Activities() {
		res.Activities[name] = Activity{Rank: r.Rank, Killcount: r.Killcount}
	}
	return res
}
