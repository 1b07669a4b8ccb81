package generation

// Defaults for the retry policy: ten attempts, sampling temperature
// interpolated linearly from 0.0 on the first attempt to 0.7 on the last.
// Early attempts favor precision; later attempts trade determinism for a
// chance to escape a malformed-output failure.
const (
	DefaultMaxAttempts      = 10
	DefaultFinalTemperature = 0.7
)

// Schedule maps a 1-based attempt number to a sampling temperature.
type Schedule func(attempt int) float32

// RetryPolicy controls how many sequential attempts the generator makes and
// which temperature each attempt uses. The schedule is injected so tests can
// observe and replace it without a real generation backend.
type RetryPolicy struct {
	MaxAttempts int
	Temperature Schedule
}

// LinearSchedule interpolates temperature linearly between start (attempt 1)
// and end (attempt maxAttempts).
func LinearSchedule(start, end float32, maxAttempts int) Schedule {
	return func(attempt int) float32 {
		if maxAttempts <= 1 {
			return start
		}
		return start + (end-start)*float32(attempt-1)/float32(maxAttempts-1)
	}
}

// DefaultPolicy returns the production retry policy.
func DefaultPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Temperature: LinearSchedule(0, DefaultFinalTemperature, DefaultMaxAttempts),
	}
}

// SingleAttempt returns a policy with one zero-temperature attempt.
// Used in tests where retrying only obscures the failure under test.
func SingleAttempt() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 1,
		Temperature: func(int) float32 { return 0 },
	}
}
