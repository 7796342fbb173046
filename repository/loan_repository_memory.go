package repository

import (
	"sync"
	"time"

	"creditcalc/domain"
)

// DefaultHistorySize is the number of calculations kept in memory.
const DefaultHistorySize = 500

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
// It keeps at most capacity entries, dropping the oldest first.
type LoanRepositoryMemory struct {
	mu       sync.Mutex
	capacity int
	data     []domain.Calculation
	now      func() time.Time
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return NewLoanRepositoryMemoryWithCapacity(DefaultHistorySize)
}

// NewLoanRepositoryMemoryWithCapacity creates an in-memory repository bounded
// to capacity entries.
func NewLoanRepositoryMemoryWithCapacity(capacity int) *LoanRepositoryMemory {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &LoanRepositoryMemory{
		capacity: capacity,
		data:     []domain.Calculation{},
		now:      time.Now,
	}
}

// Save stores the calculation in memory.
func (r *LoanRepositoryMemory) Save(
	terms domain.LoanTerms,
	report domain.Report,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, domain.Calculation{
		Terms:        terms,
		Report:       report,
		CalculatedAt: r.now().UTC(),
	})
	if len(r.data) > r.capacity {
		r.data = append([]domain.Calculation(nil), r.data[len(r.data)-r.capacity:]...)
	}
	return nil
}

// Recent returns up to limit calculations, newest first.
func (r *LoanRepositoryMemory) Recent(limit int) []domain.Calculation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.Calculation, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out
}
