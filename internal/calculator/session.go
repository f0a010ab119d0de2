// Package calculator holds the state behind one calculator widget and keeps
// its result in step with the inputs.
package calculator

import (
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"go.uber.org/zap"
)

// Listener is notified with the new parameters and result after every recomputation.
type Listener func(loans.Parameters, loans.Result)

// Session keeps the current parameter snapshot and its result. Every change
// recomputes the result synchronously before the setter returns. A Session
// is owned by a single caller and is not safe for concurrent use.
type Session struct {
	logger    *zap.Logger
	params    loans.Parameters
	result    loans.Result
	listeners []subscription
	nextID    int
}

type subscription struct {
	id       int
	listener Listener
}

// NewSession creates a session seeded with defaults and computes the initial result.
func NewSession(logger *zap.Logger, defaults loans.Parameters) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		logger: logger,
		params: defaults,
	}
	s.params.Principal = loans.ClampPrincipal(s.params.Principal)
	s.recompute()
	return s
}

// Parameters returns the current parameter snapshot.
func (s *Session) Parameters() loans.Parameters {
	return s.params
}

// Result returns the result for the current parameters.
func (s *Session) Result() loans.Result {
	return s.result
}

// SetAmount applies text input for the loan amount.
func (s *Session) SetAmount(raw string) {
	s.Update(func(p *loans.Parameters) {
		p.Principal = loans.NormalizePrincipal(raw)
	})
}

// SetAmountValue applies numeric input for the loan amount, e.g. from the slider.
func (s *Session) SetAmountValue(amount float64) {
	s.Update(func(p *loans.Parameters) {
		p.Principal = amount
	})
}

// SetInterestRate applies a new annual rate in percent.
func (s *Session) SetInterestRate(rate float64) {
	s.Update(func(p *loans.Parameters) {
		p.AnnualRatePercent = rate
	})
}

// SetDuration applies a new duration in months.
func (s *Session) SetDuration(months int) {
	s.Update(func(p *loans.Parameters) {
		p.DurationMonths = months
	})
}

// SetInterestModel applies a new interest model.
func (s *Session) SetInterestModel(model loans.InterestModel) {
	s.Update(func(p *loans.Parameters) {
		p.Model = model
	})
}

// Update applies a batch of changes and recomputes once.
func (s *Session) Update(apply func(*loans.Parameters)) {
	next := s.params
	apply(&next)
	next.Principal = loans.ClampPrincipal(next.Principal)
	s.params = next
	s.recompute()
}

// Subscribe registers a listener for future recomputations. Listeners are
// called in the order they subscribed. The returned function removes it again.
func (s *Session) Subscribe(listener Listener) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, listener: listener})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) recompute() {
	s.result = loans.Compute(s.params)

	s.logger.Debug("recomputed loan result",
		zap.String("op", "calculator.recompute"),
		zap.String("model", s.params.Model.String()),
		zap.Float64("principal", s.params.Principal),
		zap.Float64("rate", s.params.AnnualRatePercent),
		zap.Int("durationMonths", s.params.DurationMonths),
		zap.Float64("monthlyPayment", s.result.MonthlyPayment),
		zap.Float64("totalPayment", s.result.TotalPayment),
	)

	for _, sub := range s.listeners {
		sub.listener(s.params, s.result)
	}
}
