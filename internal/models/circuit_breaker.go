package models

// CircuitBreakerState is the breaker position exported as a gauge value.
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "closed"
	}
}
