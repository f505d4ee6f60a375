package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey         = "API_PORT"
	ethNodeEnvKey         = "ETH_NODE_URL"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	stakingContractEnvKey = "STAKING_CONTRACT_ADDRESS"

	logLevelEnvKey           = "LOG_LEVEL"
	redisURLEnvKey           = "REDIS_URL"
	startBlockEnvKey         = "INDEXER_START_BLOCK"
	batchSizeEnvKey          = "INDEXER_BATCH_SIZE"
	confirmationsEnvKey      = "INDEXER_CONFIRMATIONS"
	pollIntervalEnvKey       = "INDEXER_POLL_INTERVAL"
	noStakeBoostEnvKey       = "NO_STAKE_BOOST_AMOUNT"
	prizePoolDecayRateEnvKey = "PRIZE_POOL_DECAY_RATE"
	boostTimeDecayRateEnvKey = "BOOST_TIME_DECAY_RATE"
	boostSweepCronEnvKey     = "BOOST_SWEEP_CRON"
	rewardsCronEnvKey        = "REWARDS_CRON"
)

type Indexer struct {
	StakingContract string
	StartBlock      uint64
	BatchSize       uint64
	Confirmations   uint64
	PollInterval    time.Duration
}

type Rewards struct {
	PrizePoolDecayRate decimal.Decimal
	// BoostTimeDecayRate is nil when boosts are not decayed over the window.
	BoostTimeDecayRate *decimal.Decimal
}

type Schedule struct {
	BoostSweep string
	Rewards    string
}

type App struct {
	Port               string
	NodeURL            string
	DBConnectionURL    string
	RedisURL           string
	LogLevel           string
	NoStakeBoostAmount string
	Indexer            Indexer
	Rewards            Rewards
	Schedule           Schedule
}

func NewApp() (App, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(logLevelEnvKey, "info")
	v.SetDefault(startBlockEnvKey, 0)
	v.SetDefault(batchSizeEnvKey, 500)
	v.SetDefault(confirmationsEnvKey, 12)
	v.SetDefault(pollIntervalEnvKey, 15*time.Second)
	v.SetDefault(noStakeBoostEnvKey, "1000")
	v.SetDefault(prizePoolDecayRateEnvKey, "0.5")
	v.SetDefault(boostSweepCronEnvKey, "0 */5 * * * *")
	v.SetDefault(rewardsCronEnvKey, "0 0 * * * *")

	required := map[string]string{}
	for _, key := range []string{apiPortEnvKey, ethNodeEnvKey, dbConnEnvKey, stakingContractEnvKey} {
		value := v.GetString(key)
		if value == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		required[key] = value
	}

	prizePoolDecayRate, err := decimal.NewFromString(v.GetString(prizePoolDecayRateEnvKey))
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", prizePoolDecayRateEnvKey, err)
	}

	var boostTimeDecayRate *decimal.Decimal
	if raw := v.GetString(boostTimeDecayRateEnvKey); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", boostTimeDecayRateEnvKey, err)
		}
		boostTimeDecayRate = &rate
	}

	return App{
		Port:               required[apiPortEnvKey],
		NodeURL:            required[ethNodeEnvKey],
		DBConnectionURL:    required[dbConnEnvKey],
		RedisURL:           v.GetString(redisURLEnvKey),
		LogLevel:           v.GetString(logLevelEnvKey),
		NoStakeBoostAmount: v.GetString(noStakeBoostEnvKey),
		Indexer: Indexer{
			StakingContract: required[stakingContractEnvKey],
			StartBlock:      v.GetUint64(startBlockEnvKey),
			BatchSize:       v.GetUint64(batchSizeEnvKey),
			Confirmations:   v.GetUint64(confirmationsEnvKey),
			PollInterval:    v.GetDuration(pollIntervalEnvKey),
		},
		Rewards: Rewards{
			PrizePoolDecayRate: prizePoolDecayRate,
			BoostTimeDecayRate: boostTimeDecayRate,
		},
		Schedule: Schedule{
			BoostSweep: v.GetString(boostSweepCronEnvKey),
			Rewards:    v.GetString(rewardsCronEnvKey),
		},
	}, nil
}
