package counter

// Counter accumulates a quantity and tracks how fast it grows
type Counter interface {
	Value() int64
	RatePerSec() int64

	Add(n int64)
}
