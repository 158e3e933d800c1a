package hiscores

import (
	"errors"
	"os"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticPayload builds a well-formed body: a total row, one row per skill
// and one row per activity, every value derived from the row index.
func syntheticPayload() string {
	var b strings.Builder
	b.WriteString("1,32,1000\n")
	for i := range skillNames {
		b.WriteString(strconv.Itoa(i+10) + "," + strconv.Itoa(i%99+1) + "," + strconv.Itoa(i*100) + "\n")
	}
	for i := range activityNames {
		b.WriteString(strconv.Itoa(i+500) + "," + strconv.Itoa(i) + "\n")
	}
	return b.String()
}

func TestExpectedTokenCount(t *testing.T) {
	assert.Equal(t, 23, len(skillNames))
	assert.Equal(t, 59, len(activityNames))
	assert.Equal(t, 3+3*23+2*59, ExpectedTokenCount())
}

func TestDecodeSynthetic(t *testing.T) {
	s, err := Decode([]byte(syntheticPayload()))
	require.NoError(t, err)

	assert.Equal(t, SkillRecord{Rank: 1, Level: 32, Experience: 1000}, s.Total)

	skills := s.Skills()
	gotSkills := make([]string, 0, len(skills))
	for name := range skills {
		gotSkills = append(gotSkills, name)
	}
	wantSkills := SkillNames()
	sort.Strings(gotSkills)
	sort.Strings(wantSkills)
	assert.Equal(t, wantSkills, gotSkills)

	activities := s.Activities()
	gotActivities := make([]string, 0, len(activities))
	for name := range activities {
		gotActivities = append(gotActivities, name)
	}
	wantActivities := ActivityNames()
	sort.Strings(gotActivities)
	sort.Strings(wantActivities)
	assert.Equal(t, wantActivities, gotActivities)

	defense := skills["defense"]
	assert.Equal(t, 11, defense.Rank)
	assert.Equal(t, 2, defense.Level)
	assert.Equal(t, int64(100), defense.Experience)
	assert.Equal(t, int64(174), defense.NextLevelExp)
	assert.Equal(t, int64(74), defense.ExpToNextLevel)

	zulrah := activities["zulrah"]
	assert.Equal(t, ActivityRecord{Rank: 558, Killcount: 58}, zulrah)
}

func TestDecodeLineEndings(t *testing.T) {
	body := strings.Replace(syntheticPayload(), "\n", "\r\n", -1)
	_, err := Decode([]byte(body))
	require.NoError(t, err)

	body = strings.Replace(syntheticPayload(), "\n", "\r", -1)
	_, err = Decode([]byte(body))
	require.NoError(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	valid := syntheticPayload()
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"whitespace", " \n\n "},
		{"missing row", strings.TrimSuffix(strings.TrimSpace(valid), "\n"+strconv.Itoa(58+500)+","+strconv.Itoa(58))},
		{"extra row", valid + "1,1\n"},
		{"non integer", strings.Replace(valid, "1,32,1000", "1,32,abc", 1)},
		{"empty token", strings.Replace(valid, "1,32,1000", "1,,1000", 1)},
		{"plus sign", strings.Replace(valid, "1,32,1000", "+1,32,1000", 1)},
		{"plus sign in killcount", strings.Replace(valid, "558,58\n", "558,+58\n", 1)},
		{"float", strings.Replace(valid, "1,32,1000", "1,32,10.5", 1)},
		{"level zero", strings.Replace(valid, "1,32,1000", "1,0,1000", 1)},
		{"rank below unranked", strings.Replace(valid, "1,32,1000", "-2,32,1000", 1)},
		{"level above curve", strings.Replace(valid, "10,1,0\n", "10,127,0\n", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode([]byte(tt.body))
			assert.Nil(t, s)
			var target *MalformedPayloadError
			require.True(t, errors.As(err, &target), "got %v", err)
		})
	}
}

func TestDecodeFixture(t *testing.T) {
	body, err := os.ReadFile("testdata/index_lite.txt")
	require.NoError(t, err)

	s, err := Decode(body)
	require.NoError(t, err)

	assert.Equal(t, SkillRecord{Rank: 48211, Level: 1889, Experience: 149380235}, s.Total)

	skills := []struct {
		name           string
		rank           int
		level          int
		experience     int64
		expToNextLevel int64
	}{
		{"attack", 80088, 99, 18467443, -4076283},
		{"defense", 342277, 90, 5760334, 142497},
		{"strength", 38977, 99, 13844542, 546618},
		{"hitpoints", 50351, 99, 22025039, -7633879},
		{"prayer", 267042, 77, 1490785, 138415},
		{"magic", 20658, 94, 8169741, 601817},
		{"cooking", 228355, 99, 14476386, -85226},
		{"smithing", 329955, 72, 981914, 10981},
		{"herblore", 307992, 78, 1780484, 18324},
		{"slayer", 70821, 87, 4264146, 121630},
		{"hunter", 300323, 71, 829884, 69373},
		{"construction", -1, 1, -1, 84},
	}
	for _, tt := range skills {
		r, err := s.Skill(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.rank, r.Rank, tt.name)
		assert.Equal(t, tt.level, r.Level, tt.name)
		assert.Equal(t, tt.experience, r.Experience, tt.name)
		assert.Equal(t, tt.expToNextLevel, r.ExpToNextLevel, tt.name)
	}
	construction, _ := s.Skill("construction")
	assert.True(t, construction.Unranked())

	activities := []struct {
		name      string
		rank      int
		killcount int64
	}{
		{"league", 94753, 423},
		{"bounty_hunter_rogue", -1, -1},
		{"cs_all", 295892, 245},
		{"lms_rank", 235319, 1180},
		{"soul_wars_zeal", 38379, 484},
		{"chambers_of_xeric_challenge_mode", 248565, 2856},
		{"kreearra", 6325, 1987},
		{"phosanis_nightmare", 296926, 1306},
		{"theatre_of_blood_hard", 53677, 1},
		{"tzkal_zuk", 13370, 289},
		{"zalcano", -1, -1},
		{"zulrah", 138809, 1961},
	}
	for _, tt := range activities {
		r, err := s.Activity(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.rank, r.Rank, tt.name)
		assert.Equal(t, tt.killcount, r.Killcount, tt.name)
	}
	zalcano, _ := s.Activity("zalcano")
	assert.True(t, zalcano.Unranked())
}
