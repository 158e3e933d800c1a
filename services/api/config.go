package main

type Configuration struct {
	Port               int    `json:"port"`
	DbUri              string `json:"dbUri" env:"DB_URI"`
	CacheUrl           string `json:"cacheUrl"`
	HiscoresServiceUrl string `json:"hiscoresServiceUrl"`
	RateLimitWindowSec int    `json:"rateLimitWindowSec"`
}
