package main

type Configuration struct {
	Hiscores HiscoresConfig
	Retry    RetryConfig
}

type HiscoresConfig struct {
	BaseUrl   string
	TimeoutMs int
}

type RetryConfig struct {
	Attempts int
	PauseSec int
}
