package main

type Configuration struct {
	Port              int    `json:"port"`
	MetricsPort       int    `json:"metricsPort"`
	HiscoresBaseUrl   string `json:"hiscoresBaseUrl" env:"HISCORES_BASE_URL"`
	HiscoresTimeout   int    `json:"hiscoresTimeoutMs"`
	HiscoresUserAgent string `json:"hiscoresUserAgent"`
}

func defaultConfiguration() Configuration {
	return Configuration{
		Port:              8080,
		MetricsPort:       8081,
		HiscoresBaseUrl:   "https://secure.runescape.com",
		HiscoresTimeout:   10000,
		HiscoresUserAgent: "osrs-hiscores/services/hiscores",
	}
}
