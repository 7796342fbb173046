package service

const (
	// MaxPeriods bounds the number of months the engine solves for or
	// schedules.
	MaxPeriods = 12_000 // 1000 years

	// MaxTermMonths is the longest term accepted over HTTP.
	MaxTermMonths = 1_200 // 100 years

	// DefaultHistoryLimit is the page size of calculation history.
	DefaultHistoryLimit = 20
)
