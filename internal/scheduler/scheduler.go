package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Config holds six-field cron expressions. An empty expression disables the job.
type Config struct {
	BoostSweep string
	Rewards    string
}

// Scheduler runs the periodic boost sweep and rewards allocation.
type Scheduler struct {
	logs         *zap.SugaredLogger
	cron         *cron.Cron
	ctx          context.Context
	cancel       context.CancelFunc
	boosts       BoostSweeper
	rewards      RewardsAllocator
	competitions Competitions
	balances     BalanceCloser
	cfg          Config
}

func NewScheduler(logger *zap.SugaredLogger, boosts BoostSweeper, allocator RewardsAllocator, competitions Competitions, balances BalanceCloser, cfg Config) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cl := cronLogger{logs: logger}
	return &Scheduler{
		logs: logger,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
			cron.WithLogger(cl),
		),
		ctx:          ctx,
		cancel:       cancel,
		boosts:       boosts,
		rewards:      allocator,
		competitions: competitions,
		balances:     balances,
		cfg:          cfg,
	}
}

func (s *Scheduler) Start() error {
	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{name: "boost_sweep", spec: s.cfg.BoostSweep, run: s.RunBoostSweep},
		{name: "rewards", spec: s.cfg.Rewards, run: s.RunRewards},
	}
	for _, job := range jobs {
		if job.spec == "" {
			s.logs.Infow("scheduled job disabled", "job", job.name)
			continue
		}
		_, err := s.cron.AddFunc(job.spec, func() {
			if err := job.run(s.ctx); err != nil {
				s.logs.Errorw("scheduled job failed", "job", job.name, "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("schedule %s job %q: %w", job.name, job.spec, err)
		}
	}

	s.cron.Start()
	s.logs.Infow("scheduler started",
		"boost_sweep", s.cfg.BoostSweep,
		"rewards", s.cfg.Rewards)
	return nil
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.logs.Infow("scheduler stopped")
}

// RunBoostSweep grants boosts that earlier indexing missed.
func (s *Scheduler) RunBoostSweep(ctx context.Context) error {
	applied, err := s.boosts.Sweep(ctx)
	if err != nil {
		return fmt.Errorf("boost sweep: %w", err)
	}
	s.logs.Infow("boost sweep finished", "applied", applied)
	return nil
}

// RunRewards allocates rewards for every ended competition without a root.
// A failing competition does not stop the others.
func (s *Scheduler) RunRewards(ctx context.Context) error {
	competitions, err := s.competitions.EndedWithoutRewards(ctx)
	if err != nil {
		return fmt.Errorf("list ended competitions: %w", err)
	}

	var errs []error
	for _, competition := range competitions {
		commitment, err := s.rewards.Allocate(ctx, competition.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("competition %s: %w", competition.ID, err))
			continue
		}
		s.logs.Infow("competition rewards settled",
			"competition_id", competition.ID,
			"root", commitment.Root.Hex(),
			"outcome", commitment.Outcome)
		if err := s.balances.EndCompetition(ctx, competition.ID); err != nil {
			s.logs.Errorw("clearing competition balances failed",
				"competition_id", competition.ID,
				"error", err)
		}
	}
	return errors.Join(errs...)
}

type cronLogger struct {
	logs *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logs.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logs.Errorw(msg, append(keysAndValues, "error", err)...)
}
