package main

type Configuration struct {
	TwitchUsername    string `env:"TWITCH_USER"`
	TwitchToken       string `env:"TWITCH_TOKEN"`
	DbUri             string `json:"dbUri"`
	CacheUrl          string `json:"cacheUrl"`
	HiscoresBaseUrl   string `json:"hiscoresBaseUrl"`
	HiscoresTimeoutMs int    `json:"hiscoresTimeoutMs"`
	CommandLimit      int    `json:"commandLimit"`
	CommandWindowSec  int    `json:"commandWindowSec"`
}
