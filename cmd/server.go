package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arenaledger/internal/boost"
	"arenaledger/internal/config"
	"arenaledger/internal/db"
	"arenaledger/internal/ethereum"
	"arenaledger/internal/http/handler"
	"arenaledger/internal/http/handler/middleware"
	"arenaledger/internal/http/server"
	"arenaledger/internal/indexer"
	"arenaledger/internal/ledger"
	"arenaledger/internal/repository"
	"arenaledger/internal/rewards"
	"arenaledger/internal/scheduler"
	"arenaledger/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const balanceCacheTTL = time.Hour

func Start() error {
	logger := log.NewZapLogger("arenaledger", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger("arenaledger", log.ParseLevel(config.LogLevel))

	if !common.IsHexAddress(config.Indexer.StakingContract) {
		err = fmt.Errorf("invalid staking contract address %q", config.Indexer.StakingContract)
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	noStakeAmount, ok := new(big.Int).SetString(config.NoStakeBoostAmount, 10)
	if !ok {
		err = fmt.Errorf("invalid no-stake boost amount %q", config.NoStakeBoostAmount)
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	if err = repository.Migrate(dbConn); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	cache, err := newBalanceCache(logger, config.RedisURL)
	if err != nil {
		logger.Errorw("failed to connect to redis", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}
	defer client.Close()

	// repositories
	balanceRepo := repository.NewBalanceRepository(dbConn)
	stakeRepo := repository.NewStakeRepository(dbConn)
	boostRepo := repository.NewBoostRepository(dbConn)
	competitionRepo := repository.NewCompetitionRepository(dbConn)
	rewardsRepo := repository.NewRewardsRepository(dbConn)

	// services
	balances := ledger.NewLedger(logger, balanceRepo, cache)

	engine, err := boost.NewEngine(logger, boostRepo, competitionRepo, stakeRepo, noStakeAmount)
	if err != nil {
		logger.Errorw("failed to create boost engine", "error", err)
		return err
	}

	decoder, err := indexer.NewDecoder()
	if err != nil {
		logger.Errorw("failed to create event decoder", "error", err)
		return err
	}
	projector := indexer.NewProjector(logger, stakeRepo, engine)
	idx := indexer.NewIndexer(logger, ethereum.NewEthService(client), decoder, projector, indexer.Config{
		Contract:      common.HexToAddress(config.Indexer.StakingContract),
		StartBlock:    config.Indexer.StartBlock,
		BatchSize:     config.Indexer.BatchSize,
		Confirmations: config.Indexer.Confirmations,
		PollInterval:  config.Indexer.PollInterval,
	})

	rewardsService := rewards.NewService(logger, rewardsRepo, competitionRepo, rewards.Config{
		PrizePoolDecayRate: config.Rewards.PrizePoolDecayRate,
		BoostTimeDecayRate: config.Rewards.BoostTimeDecayRate,
	})

	sched := scheduler.NewScheduler(logger, engine, rewardsService, competitionRepo, balances, scheduler.Config{
		BoostSweep: config.Schedule.BoostSweep,
		Rewards:    config.Schedule.Rewards,
	})

	// handler
	arenaHdlr := handler.NewArenaHandler(logger, balances, rewardsService, engine, projector)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	arenaHdlr.Register(mux)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(logger, srv, idx, sched)
}

func newBalanceCache(logger *zap.SugaredLogger, redisURL string) (ledger.BalanceCache, error) {
	if redisURL == "" {
		logger.Infow("using in-memory balance cache")
		return ledger.NewMemoryCache(), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Infow("using redis balance cache", "address", opts.Addr)
	return ledger.NewRedisCache(client, balanceCacheTTL), nil
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer, idx *indexer.Indexer, sched *scheduler.Scheduler) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	idxErr := make(chan error, 1)
	go func() {
		idxErr <- idx.Run(ctx)
	}()

	if err := sched.Start(); err != nil {
		cancel()
		<-idxErr
		return err
	}

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	case err = <-idxErr:
		logger.Errorw("indexer stopped", "error", err)
	}

	cancel()
	sched.Stop()
	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
