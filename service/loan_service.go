package service

import (
	"context"
	"encoding/json"

	"creditcalc/common"
	"creditcalc/domain"
	"creditcalc/repository"
)

type LoanService struct {
	repo   repository.LoanRepository
	cache  repository.CacheRepository
	logger *common.Logger
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
	logger *common.Logger,
) *LoanService {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &LoanService{repo: repo, cache: cache, logger: logger}
}

// Calculate validates the terms, solves for the missing quantity and returns
// the report. Every returned error satisfies domain.IsIncorrectParameters.
func (s *LoanService) Calculate(
	ctx context.Context,
	terms domain.LoanTerms,
) (domain.Report, error) {

	if err := terms.Validate(); err != nil {
		return domain.Report{}, err
	}

	key := terms.Key()
	if report, ok := s.cached(ctx, key); ok {
		s.logger.Debug().Str("key", key).Msg("Calculation served from cache")
		return report, nil
	}

	report, err := Dispatch(terms)
	if err != nil {
		return domain.Report{}, err
	}

	s.logger.Debug().
		Str("type", string(report.Type)).
		Str("solved", string(report.Solved)).
		Int("periods", report.Periods).
		Int64("overpayment", report.Overpayment).
		Msg("Calculation complete")

	// Cache and history are best effort
	if s.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := s.cache.Set(ctx, key, string(data)); err != nil {
				s.logger.Warn().Err(err).Str("key", key).Msg("Failed to cache calculation")
			}
		}
	}
	if s.repo != nil {
		if err := s.repo.Save(terms, report); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to save loan calculation")
		}
	}

	return report, nil
}

// History returns up to limit recent calculations, newest first.
func (s *LoanService) History(limit int) []domain.Calculation {
	if s.repo == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.Recent(limit)
}

func (s *LoanService) cached(ctx context.Context, key string) (domain.Report, bool) {
	if s.cache == nil {
		return domain.Report{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.Report{}, false
	}
	var report domain.Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Discarding unreadable cache entry")
		return domain.Report{}, false
	}
	return report, true
}
