package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gempir/go-twitch-irc/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/tkanos/gonfig"
	"github.com/yannismate/osrs-hiscores/libs/hiscores"
	"github.com/yannismate/osrs-hiscores/libs/ratelimit"
	"github.com/yannismate/osrs-hiscores/libs/redisstore"
)

var configuration Configuration
var botDb *BotDb
var hiscoresClient *hiscores.Client
var commandLimiter *ratelimit.SharedRateLimiter

func main() {
	metricsServer := http.NewServeMux()
	metricsServer.Handle("/metrics", promhttp.Handler())
	go func() {
		err := http.ListenAndServe(":8081", metricsServer)
		if err != nil {
			log.WithField("event", "start_metrics_server").Fatal(err)
		}
	}()

	log.WithField("event", "start_metrics_server").Info("Metrics server started")

	log.Info("Starting twitchbot...")
	err := gonfig.GetConf("config.json", &configuration)
	if err != nil {
		log.WithField("event", "load_config").Fatal(err)
		return
	}

	botDb, err = NewBotDb(configuration.DbUri)
	if err != nil {
		log.WithField("event", "connect_db").Fatal(err)
		return
	}

	commandLimiter = ratelimit.NewSharedRateLimiter(redisstore.NewStore(configuration.CacheUrl))
	hiscoresClient = hiscores.NewClient(
		hiscores.WithBaseURL(configuration.HiscoresBaseUrl),
		hiscores.WithTimeout(time.Millisecond*time.Duration(configuration.HiscoresTimeoutMs)),
		hiscores.WithUserAgent("osrs-hiscores/services/twitchbot"),
		hiscores.WithLogger(log.StandardLogger()),
	)

	client := twitch.NewClient(configuration.TwitchUsername, configuration.TwitchToken)
	client.SetJoinRateLimiter(twitch.CreateDefaultRateLimiter())

	client.OnPrivateMessage(func(message twitch.PrivateMessage) {
		go handleMessage(message, client)
	})
	client.Join(configuration.TwitchUsername)
	metricChannelsJoined.Set(1)

	client.OnConnect(func() {
		metricChannelsJoined.Set(1)
		log.WithField("event", "irc_connected").Info("IRC connected")
		go rejoinChannels(client)
		client.Say(configuration.TwitchUsername, configuration.TwitchUsername+" online! MrDestructoid")
	})

	err = client.Connect()
	if err != nil {
		log.WithField("event", "irc_connect").Fatal(err)
	}
}

func rejoinChannels(client *twitch.Client) {
	namesCursor := ""
	for {
		names, newNamesCursor, err := botDb.GetUserNames(namesCursor, 20)
		if newNamesCursor != nil {
			namesCursor = *newNamesCursor
		}
		if err != nil {
			log.WithField("event", "channels_rejoin").Error(err)
			return
		}

		if len(names) > 0 {
			log.WithField("event", "channels_rejoin").Info("Joining " + strconv.Itoa(len(names)) + " channels")
			client.Join(names...)
			metricChannelsJoined.Add(float64(len(names)))
		}

		if newNamesCursor == nil || len(names) < 20 {
			break
		}
		time.Sleep(time.Second * 15)
	}
}

func handleMessage(message twitch.PrivateMessage, client *twitch.Client) {
	metricMessagesReceived.Inc()
	cmd, arg := parseCommand(message.Message)
	if cmd == "" {
		return
	}

	if message.Channel == strings.ToLower(configuration.TwitchUsername) {
		switch cmd {
		case "join":
			joinChannelCommand(&message, client)
		case "leave":
			leaveChannelCommand(&message, client)
		case "set":
			setCommand(&message, client, arg)
		}
		return
	}

	switch cmd {
	case "lvl", "level", "kc", "total":
		hiscoreCommand(&message, client, cmd, arg)
	}
}

func joinChannelCommand(message *twitch.PrivateMessage, client *twitch.Client) {
	log.WithField("event", "join_command").WithField("channel", message.Channel).Info("Executing join command")
	_, err := botDb.GetBotUserByTwitchUserId(message.User.ID)
	if err == nil {
		client.Say(message.Channel, "@"+message.User.Name+" The bot has already joined your channel.")
		return
	}
	newUser := BotUser{
		TwitchUserId:    message.User.ID,
		TwitchLogin:     message.User.Name,
		OsrsAccountType: "N",
	}
	err = botDb.InsertBotUser(newUser)
	if err != nil {
		client.Say(message.Channel, "@"+message.User.Name+" Error joining channel "+message.User.Name)
		log.WithField("event", "join_command").Error(err)
		return
	}
	client.Join(message.User.Name)
	metricChannelsJoined.Inc()
	client.Say(message.Channel, "@"+message.User.Name+" The bot has now joined your channel! Set your account with \"!set type player\"")
}

func leaveChannelCommand(message *twitch.PrivateMessage, client *twitch.Client) {
	log.WithField("event", "leave_command").WithField("channel", message.Channel).Info("Executing leave command")
	wasDeleted, err := botDb.DeleteBotUserByTwitchUserId(message.User.ID)
	if err != nil {
		client.Say(message.Channel, "@"+message.User.Name+" Error leaving channel "+message.User.Name)
		log.WithField("event", "leave_command").Error(err)
		return
	}
	if wasDeleted {
		client.Say(message.Channel, "@"+message.User.Name+" Leaving channel "+message.User.Name)
		client.Depart(message.User.Name)
		metricChannelsJoined.Dec()
	} else {
		client.Say(message.Channel, "@"+message.User.Name+" The bot was not joined to channel "+message.User.Name)
	}
}

func setCommand(message *twitch.PrivateMessage, client *twitch.Client, arg string) {
	log.WithField("event", "set_command").WithField("channel", message.Channel).Info("Executing set command")
	contentParts := strings.SplitN(arg, " ", 2)
	if len(contentParts) != 2 {
		client.Say(message.Channel, "@"+message.User.Name+" Syntax: \"!set type player\"")
		return
	}

	lookup, err := hiscores.NewLookup(contentParts[1], contentParts[0])
	if err != nil {
		client.Say(message.Channel, "@"+message.User.Name+" "+err.Error())
		return
	}
	if len(lookup.Player) > 12 {
		client.Say(message.Channel, "@"+message.User.Name+" This player name is too long.")
		return
	}

	wasChanged, err := botDb.UpdateOsrsPlayerByTwitchLogin(message.User.Name, lookup.AccountType.Code(), lookup.Player)
	if err != nil {
		client.Say(message.Channel, "@"+message.User.Name+" There was an error updating your settings")
		log.WithField("event", "set_command_db_update").Error(err)
		return
	}
	if !wasChanged {
		client.Say(message.Channel, "@"+message.User.Name+" The bot is not joined")
		return
	}
	client.Say(message.Channel, "@"+message.User.Name+" Player set to "+lookup.Player+" ("+lookup.AccountType.String()+")")
}

func hiscoreCommand(message *twitch.PrivateMessage, client *twitch.Client, cmd string, arg string) {
	dbUser, err := botDb.GetBotUserByTwitchLogin(message.Channel)
	if err != nil {
		log.WithField("event", "hiscore_command_get_db").Warn(err)
		return
	}
	if dbUser.OsrsPlayer == "" {
		client.Say(message.Channel, "Please complete the setup with \"!set type player\" in the channel of "+configuration.TwitchUsername)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()

	allowed, err := commandLimiter.Allow(ctx, "channel:"+message.Channel, configuration.CommandLimit,
		time.Second*time.Duration(configuration.CommandWindowSec))
	if err != nil {
		log.WithField("event", "hiscore_command_ratelimit").Error(err)
		return
	}
	if !allowed {
		metricHiscoreCommandsLimited.Inc()
		return
	}

	log.WithField("event", "hiscore_command").WithField("channel", message.Channel).Info("Executing " + cmd + " command")
	metricHiscoreCommandsExecuted.WithLabelValues(cmd).Inc()

	lookup, err := hiscores.NewLookup(dbUser.OsrsPlayer, dbUser.OsrsAccountType)
	if err != nil {
		log.WithField("event", "hiscore_command_lookup").Error(err)
		return
	}

	reply, err := hiscoreReply(ctx, lookup, cmd, arg)
	if err != nil {
		msg, expected := errorReply(err, lookup.Player, dbUser.OsrsAccountType)
		if !expected {
			log.WithField("event", "hiscore_command_fetch").Error(err)
		}
		client.Say(message.Channel, "@"+message.User.Name+" "+msg)
		return
	}
	client.Say(message.Channel, "@"+message.User.Name+" "+reply)
}

func hiscoreReply(ctx context.Context, lookup hiscores.Lookup, cmd string, arg string) (string, error) {
	snapshot, err := hiscoresClient.Fetch(ctx, lookup)
	if err != nil {
		return "", err
	}
	switch cmd {
	case "kc":
		return activityReply(snapshot, arg)
	case "total":
		return totalReply(snapshot), nil
	}
	if arg == "" {
		return totalReply(snapshot), nil
	}
	return skillReply(snapshot, arg)
}
