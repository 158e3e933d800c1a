package hiscores

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yannismate/osrs-hiscores/libs/hiscores"
)

func TestFromSnapshot(t *testing.T) {
	body := "5,40,2000\n"
	for range hiscores.SkillNames() {
		body += "7,2,90\n"
	}
	for range hiscores.ActivityNames() {
		body += "-1,-1\n"
	}
	s, err := hiscores.Decode([]byte(body))
	require.NoError(t, err)
	s.Player = "Zezima"
	s.AccountType = hiscores.Ironman

	res := FromSnapshot(s)
	assert.Equal(t, "Zezima", res.Player)
	assert.Equal(t, "ironman", res.AccountType)
	assert.Equal(t, Total{Rank: 5, Level: 40, Experience: 2000}, res.Total)
	assert.Len(t, res.Skills, len(hiscores.SkillNames()))
	assert.Len(t, res.Activities, len(hiscores.ActivityNames()))
	assert.Equal(t, Skill{Rank: 7, Level: 2, Experience: 90, NextLevelExp: 174, ExpToNextLevel: 84}, res.Skills["magic"])
	assert.Equal(t, Activity{Rank: -1, Killcount: -1}, res.Activities["vorkath"])
}

func TestFromSnapshotKeepsZeroExpToNextLevel(t *testing.T) {
	body := "1,2277,4600000000\n"
	for range hiscores.SkillNames() {
		body += "1,99,14391160\n"
	}
	for range hiscores.ActivityNames() {
		body += "-1,-1\n"
	}
	s, err := hiscores.Decode([]byte(body))
	require.NoError(t, err)

	data, err := json.Marshal(FromSnapshot(s))
	require.NoError(t, err)

	var raw struct {
		Total  map[string]int64            `json:"total"`
		Skills map[string]map[string]int64 `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))

	attack := raw.Skills["attack"]
	require.Contains(t, attack, "expToNextLevel")
	assert.Equal(t, int64(0), attack["expToNextLevel"])
	assert.Equal(t, int64(14391160), attack["nextLevelExp"])
	assert.NotContains(t, raw.Total, "expToNextLevel")
}
