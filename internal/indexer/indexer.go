package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

type Config struct {
	Contract      common.Address
	StartBlock    uint64
	BatchSize     uint64
	Confirmations uint64
	PollInterval  time.Duration
}

// Indexer polls the staking contract and feeds its logs, in block and log
// order, to the event processor.
type Indexer struct {
	logs      *zap.SugaredLogger
	chain     Chain
	decoder   *Decoder
	processor EventProcessor
	cfg       Config

	next       uint64
	positioned bool
}

func NewIndexer(logger *zap.SugaredLogger, chain Chain, decoder *Decoder, processor EventProcessor, cfg Config) *Indexer {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 500
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Second
	}
	return &Indexer{
		logs:      logger,
		chain:     chain,
		decoder:   decoder,
		processor: processor,
		cfg:       cfg,
	}
}

// Run syncs immediately and then on every poll interval until ctx is done.
func (i *Indexer) Run(ctx context.Context) error {
	ticker := time.NewTicker(i.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := i.Sync(ctx); err != nil && !errors.Is(err, context.Canceled) {
			i.logs.Errorw("indexer sync failed",
				"next_block", i.next,
				"error", err)
		}

		select {
		case <-ctx.Done():
			i.logs.Infow("indexer stopped", "next_block", i.next)
			return nil
		case <-ticker.C:
		}
	}
}

// Sync processes every confirmed block from the resume position to the safe
// head. It stops at the first failing batch; the failed range is retried on
// the next call. It returns the number of applied events.
func (i *Indexer) Sync(ctx context.Context) (int, error) {
	if !i.positioned {
		from, err := i.resumeBlock(ctx)
		if err != nil {
			return 0, err
		}
		i.next = from
		i.positioned = true
		i.logs.Infow("indexer positioned", "next_block", from)
	}

	head, err := i.chain.LatestBlock(ctx)
	if err != nil {
		return 0, err
	}
	if head < i.cfg.Confirmations {
		return 0, nil
	}
	safe := head - i.cfg.Confirmations

	applied := 0
	for i.next <= safe {
		to := min(i.next+i.cfg.BatchSize-1, safe)
		n, err := i.syncRange(ctx, i.next, to)
		applied += n
		if err != nil {
			return applied, fmt.Errorf("sync blocks %d-%d: %w", i.next, to, err)
		}
		i.next = to + 1
	}
	return applied, nil
}

// resumeBlock restarts at the last block that produced a stake change. Events
// of that block that were already applied are noops.
func (i *Indexer) resumeBlock(ctx context.Context) (uint64, error) {
	last, ok, err := i.processor.LastAppliedBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("load resume block: %w", err)
	}
	if ok && last > i.cfg.StartBlock {
		return last, nil
	}
	return i.cfg.StartBlock, nil
}

func (i *Indexer) syncRange(ctx context.Context, from, to uint64) (int, error) {
	logs, err := i.chain.FetchLogs(ctx, i.cfg.Contract, i.decoder.Topics(), from, to)
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, nil
	}

	blocks := make([]uint64, 0, len(logs))
	for _, l := range logs {
		blocks = append(blocks, l.BlockNumber)
	}
	times, err := i.chain.BlockTimes(ctx, blocks)
	if err != nil {
		return 0, err
	}

	applied, orphaned := 0, 0
	for _, l := range logs {
		event, err := i.decoder.Decode(l)
		if err != nil {
			i.logs.Errorw("skipping undecodable log",
				"tx_hash", l.TxHash.Hex(),
				"log_index", l.Index,
				"block_number", l.BlockNumber,
				"error", err)
			continue
		}
		event.BlockTime = times[l.BlockNumber]

		outcome, err := i.processor.Process(ctx, event)
		if err != nil {
			return applied, fmt.Errorf("process %s:%d: %w", l.TxHash.Hex(), l.Index, err)
		}
		switch outcome {
		case OutcomeApplied:
			applied++
		case OutcomeOrphaned:
			orphaned++
		}
	}

	i.logs.Infow("indexed blocks",
		"from_block", from,
		"to_block", to,
		"logs", len(logs),
		"applied", applied,
		"orphaned", orphaned)

	return applied, nil
}
