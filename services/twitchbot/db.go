package main

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type BotDb struct {
	ctx  context.Context
	pool *pgxpool.Pool
}

type BotUser struct {
	TwitchUserId    string
	TwitchLogin     string
	OsrsPlayer      string
	OsrsAccountType string
}

func NewBotDb(uri string) (*BotDb, error) {
	ctx := context.Background()

	dbPool, err := pgxpool.Connect(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &BotDb{ctx: ctx, pool: dbPool}, nil
}

func (db *BotDb) GetBotUserByTwitchUserId(twitchUserId string) (*BotUser, error) {
	row := db.pool.QueryRow(db.ctx, `select twitch_user_id, twitch_login, osrs_player, osrs_account_type
		from users_twitch where twitch_user_id=$1;`, twitchUserId)
	return toBotUser(row)
}

func (db *BotDb) GetBotUserByTwitchLogin(twitchLogin string) (*BotUser, error) {
	row := db.pool.QueryRow(db.ctx, `select twitch_user_id, twitch_login, osrs_player, osrs_account_type
		from users_twitch where twitch_login=$1;`, twitchLogin)
	return toBotUser(row)
}

func (db *BotDb) UpdateOsrsPlayerByTwitchLogin(twitchLogin string, accountType string, player string) (bool, error) {
	cmdTag, err := db.pool.Exec(db.ctx, `update users_twitch set osrs_account_type=$1, osrs_player=$2 where twitch_login=$3;`,
		accountType, player, twitchLogin)
	return cmdTag.RowsAffected() > 0, err
}

func (db *BotDb) InsertBotUser(user BotUser) error {
	_, err := db.pool.Exec(db.ctx, `insert into users_twitch (twitch_user_id, twitch_login, osrs_player, osrs_account_type)
		values ($1, $2, $3, $4);`, user.TwitchUserId, user.TwitchLogin, user.OsrsPlayer, user.OsrsAccountType)
	return err
}

func (db *BotDb) DeleteBotUserByTwitchUserId(twitchUserId string) (bool, error) {
	cmdTag, err := db.pool.Exec(db.ctx, `delete from users_twitch where twitch_user_id=$1;`, twitchUserId)
	return cmdTag.RowsAffected() > 0, err
}

func (db *BotDb) GetUserNames(userNameGt string, pageSize int) ([]string, *string, error) {
	rows, err := db.pool.Query(db.ctx, `select twitch_login from users_twitch where twitch_login > $1
		order by twitch_login asc limit $2;`, userNameGt, pageSize)
	loginNames := make([]string, 0)
	if err != nil {
		return loginNames, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userLogin string
		err = rows.Scan(&userLogin)
		if err != nil {
			return loginNames, nil, err
		}
		loginNames = append(loginNames, userLogin)
	}

	if len(loginNames) > 0 {
		return loginNames, &loginNames[len(loginNames)-1], nil
	}

	return loginNames, nil, nil
}

func toBotUser(row pgx.Row) (*BotUser, error) {
	user := BotUser{}
	err := row.Scan(&user.TwitchUserId, &user.TwitchLogin, &user.OsrsPlayer, &user.OsrsAccountType)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
