package config

import "time"

const (
	DefaultInitialBackoff        = 5 * time.Millisecond
	DefaultBackoffMultiplier     = 2.0
	DefaultMaxElapsedBackoff     = 60 * time.Second
	DefaultStreamingBufferSize   = 60
	DefaultReadPartialRowTimeout = 60 * time.Second
	DefaultMaxScanTimeoutRetries = 3
)

// RetryPolicy is the immutable retry configuration consumed by the downstream
// retry execution engine. This package only constructs and validates it.
type RetryPolicy struct {
	retriesEnabled          bool
	retryOnDeadlineExceeded bool
	initialBackoff          time.Duration
	backoffMultiplier       float64
	maxElapsedBackoff       time.Duration
	streamingBufferSize     int
	readPartialRowTimeout   time.Duration
	maxScanTimeoutRetries   int
}

func (p RetryPolicy) RetriesEnabled() bool { return p.retriesEnabled }

func (p RetryPolicy) RetryOnDeadlineExceeded() bool { return p.retryOnDeadlineExceeded }

func (p RetryPolicy) InitialBackoff() time.Duration { return p.initialBackoff }

func (p RetryPolicy) BackoffMultiplier() float64 { return p.backoffMultiplier }

func (p RetryPolicy) MaxElapsedBackoff() time.Duration { return p.maxElapsedBackoff }

func (p RetryPolicy) StreamingBufferSize() int { return p.streamingBufferSize }

func (p RetryPolicy) ReadPartialRowTimeout() time.Duration { return p.readPartialRowTimeout }

func (p RetryPolicy) MaxScanTimeoutRetries() int { return p.maxScanTimeoutRetries }

func (p RetryPolicy) ToBuilder() *RetryPolicyBuilder { return &RetryPolicyBuilder{policy: p} }

// RetryPolicyBuilder accumulates retry settings. Not safe for concurrent use.
type RetryPolicyBuilder struct {
	policy RetryPolicy
}

func NewRetryPolicyBuilder() *RetryPolicyBuilder {
	return &RetryPolicyBuilder{policy: RetryPolicy{
		retriesEnabled:          true,
		retryOnDeadlineExceeded: true,
		initialBackoff:          DefaultInitialBackoff,
		backoffMultiplier:       DefaultBackoffMultiplier,
		maxElapsedBackoff:       DefaultMaxElapsedBackoff,
		streamingBufferSize:     DefaultStreamingBufferSize,
		readPartialRowTimeout:   DefaultReadPartialRowTimeout,
		maxScanTimeoutRetries:   DefaultMaxScanTimeoutRetries,
	}}
}

func DefaultRetryPolicy() RetryPolicy { return NewRetryPolicyBuilder().Build() }

func (b *RetryPolicyBuilder) SetRetriesEnabled(enabled bool) *RetryPolicyBuilder {
	b.policy.retriesEnabled = enabled
	return b
}

func (b *RetryPolicyBuilder) SetRetryOnDeadlineExceeded(retry bool) *RetryPolicyBuilder {
	b.policy.retryOnDeadlineExceeded = retry
	return b
}

func (b *RetryPolicyBuilder) SetInitialBackoff(backoff time.Duration) *RetryPolicyBuilder {
	b.policy.initialBackoff = backoff
	return b
}

func (b *RetryPolicyBuilder) SetBackoffMultiplier(multiplier float64) *RetryPolicyBuilder {
	b.policy.backoffMultiplier = multiplier
	return b
}

func (b *RetryPolicyBuilder) SetMaxElapsedBackoff(max time.Duration) *RetryPolicyBuilder {
	b.policy.maxElapsedBackoff = max
	return b
}

func (b *RetryPolicyBuilder) SetStreamingBufferSize(size int) *RetryPolicyBuilder {
	b.policy.streamingBufferSize = size
	return b
}

func (b *RetryPolicyBuilder) SetReadPartialRowTimeout(timeout time.Duration) *RetryPolicyBuilder {
	b.policy.readPartialRowTimeout = timeout
	return b
}

func (b *RetryPolicyBuilder) SetMaxScanTimeoutRetries(retries int) *RetryPolicyBuilder {
	b.policy.maxScanTimeoutRetries = retries
	return b
}

func (b *RetryPolicyBuilder) Build() RetryPolicy { return b.policy }
