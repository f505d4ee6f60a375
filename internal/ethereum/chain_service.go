package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrInvalidRange = errors.New("invalid block range")

type EthService struct {
	client EthClient
}

func NewEthService(ethClient EthClient) *EthService {
	return &EthService{
		client: ethClient,
	}
}

func (s *EthService) LatestBlock(ctx context.Context) (uint64, error) {
	number, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching latest block: %w", err)
	}
	return number, nil
}

// FetchLogs returns the logs emitted by contract in [from, to], ordered by
// block number and log index. Removed logs are dropped.
func (s *EthService) FetchLogs(ctx context.Context, contract common.Address, topics [][]common.Hash, from, to uint64) ([]types.Log, error) {
	if from > to {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, from, to)
	}

	logs, err := s.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{contract},
		Topics:    topics,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching logs %d-%d: %w", from, to, err)
	}

	kept := logs[:0]
	for _, l := range logs {
		if !l.Removed {
			kept = append(kept, l)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].BlockNumber != kept[j].BlockNumber {
			return kept[i].BlockNumber < kept[j].BlockNumber
		}
		return kept[i].Index < kept[j].Index
	})
	return kept, nil
}

// BlockTimes fetches the header timestamps of the given blocks concurrently.
// Blocks that could not be fetched are missing from the result and their
// errors are joined.
func (s *EthService) BlockTimes(ctx context.Context, blocks []uint64) (map[uint64]time.Time, error) {
	resultsChan := make(chan *BlockResult)

	var wg sync.WaitGroup
	for _, number := range uniqueBlocks(blocks) {
		wg.Add(1)
		go func(number uint64) {
			defer wg.Done()
			resultsChan <- s.blockTime(ctx, number)
		}(number)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	times := make(map[uint64]time.Time, len(blocks))
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		times[result.Number] = result.Time
	}

	return times, aggrErr
}

func (s *EthService) blockTime(ctx context.Context, number uint64) *BlockResult {
	header, err := s.client.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return &BlockResult{Number: number, Error: fmt.Errorf("fetching block %d: %w", number, err)}
	}
	return &BlockResult{
		Number: number,
		Time:   time.Unix(int64(header.Time), 0).UTC(),
	}
}

func uniqueBlocks(blocks []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(blocks))
	unique := make([]uint64, 0, len(blocks))
	for _, b := range blocks {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		unique = append(unique, b)
	}
	return unique
}
