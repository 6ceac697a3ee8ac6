package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	now     time.Time
	breaker *CircuitBreaker
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.breaker = newCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     2,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	}, func() time.Time { return s.now })
}

func (s *CircuitBreakerTestSuite) TestStartsClosed() {
	s.False(s.breaker.IsOpen())
	s.Equal(StateClosed, s.breaker.GetState())
	s.Equal("closed", s.breaker.GetState().String())
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())
	s.Equal(1, s.breaker.GetFailureCount())

	s.breaker.RecordFailure()
	s.True(s.breaker.IsOpen())
	s.Equal(StateOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()
	s.Equal(0, s.breaker.GetFailureCount())

	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.True(s.breaker.IsOpen())

	s.now = s.now.Add(30 * time.Second)
	s.True(s.breaker.IsOpen())

	s.now = s.now.Add(31 * time.Second)
	s.False(s.breaker.IsOpen())
	s.Equal(StateHalfOpen, s.breaker.GetState())

	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.now = s.now.Add(2 * time.Minute)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()
	s.Equal(StateOpen, s.breaker.GetState())
	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.breaker.Reset()

	s.False(s.breaker.IsOpen())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestZeroConfigIsUsable() {
	cb := newCircuitBreaker(CircuitBreakerConfig{}, func() time.Time { return s.now })
	cb.RecordFailure()
	s.True(cb.IsOpen())
}
