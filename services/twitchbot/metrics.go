package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricMessagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "twitchbot_messages_received",
		Help: "The total number of received messages",
	})
	metricChannelsJoined = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twitchbot_channels_joined",
		Help: "Number of currently joined channels",
	})
	metricHiscoreCommandsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twitchbot_hiscore_commands_executed",
		Help: "Total number of hiscore commands executed",
	}, []string{"command"})
	metricHiscoreCommandsLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "twitchbot_hiscore_commands_limited",
		Help: "Total number of hiscore commands dropped by the channel rate limit",
	})
)
