package ethereum

import "time"

type BlockResult struct {
	Number uint64
	Time   time.Time
	Error  error
}
