package hiscores

import (
	"net/url"
	"strconv"
	"strings"
)

type AccountType int

const (
	Normal AccountType = iota
	Ironman
	UltimateIronman
	HardcoreIronman
	Seasonal
)

var segments = map[AccountType]string{
	Normal:          "hiscore_oldschool",
	Ironman:         "hiscore_oldschool_ironman",
	UltimateIronman: "hiscore_oldschool_ultimate",
	HardcoreIronman: "hiscore_oldschool_hardcore_ironman",
	Seasonal:        "hiscore_oldschool_seasonal",
}

var accountTypeNames = map[AccountType]string{
	Normal:          "normal",
	Ironman:         "ironman",
	UltimateIronman: "ultimate",
	HardcoreIronman: "hardcore",
	Seasonal:        "seasonal",
}

var shortCodes = map[AccountType]string{
	Normal:          "N",
	Ironman:         "IM",
	UltimateIronman: "UIM",
	HardcoreIronman: "HIM",
	Seasonal:        "S",
}

var accountTypeCodes = map[string]AccountType{
	"n": Normal, "normal": Normal,
	"im": Ironman, "ironman": Ironman,
	"uim": UltimateIronman, "ultimate": UltimateIronman,
	"him": HardcoreIronman, "hardcore": HardcoreIronman,
	"s": Seasonal, "seasonal": Seasonal,
}

// ParseAccountType accepts the short codes (N, IM, UIM, HIM, S) and the long
// names returned by AccountType.String, case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	t, ok := accountTypeCodes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, &InvalidAccountTypeError{Value: s}
	}
	return t, nil
}

func (t AccountType) Valid() bool {
	_, ok := segments[t]
	return ok
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return "invalid"
}

// Code is the short form accepted by ParseAccountType, e.g. "UIM".
func (t AccountType) Code() string {
	return shortCodes[t]
}

// Path returns the index_lite request path for player on this account type's
// hiscores. The player name is query-escaped with spaces as %20.
func (t AccountType) Path(player string) (string, error) {
	segment, ok := segments[t]
	if !ok {
		return "", &InvalidAccountTypeError{Value: strconv.Itoa(int(t))}
	}
	return "/m=" + segment + "/index_lite.ws?player=" + escapePlayer(player), nil
}

func escapePlayer(player string) string {
	return strings.Replace(url.QueryEscape(player), "+", "%20", -1)
}
