package config

import "time"

const (
	// DefaultMaxInflightRPCsPerChannel is multiplied by the data channel count
	// to derive the bulk in-flight limit when none is supplied.
	DefaultMaxInflightRPCsPerChannel = 50

	DefaultAsyncMutatorCount            = 2
	DefaultBulkMaxRowKeyCount           = 125
	DefaultBulkMaxRequestSize     int64 = 1 << 20
	DefaultBulkMaxMemory          int64 = 100 << 20
	DefaultBulkAutoflushDelay           = time.Duration(0)
	DefaultThrottlingTargetMillis       = 100
)

// BulkPolicy governs batched-write concurrency. MaxInflightRPCs is a derived
// field: when left unset (or set to a non-positive value) Builder.Build
// replaces it with DefaultMaxInflightRPCsPerChannel times the data channel
// count, preserving every other field.
type BulkPolicy struct {
	asyncMutatorCount      int
	useBulkAPI             bool
	maxRowKeyCount         int
	maxRequestSize         int64
	autoflushDelay         time.Duration
	maxInflightRPCs        int
	maxMemory              int64
	enableThrottling       bool
	throttlingTargetMillis int
}

func (p BulkPolicy) AsyncMutatorCount() int { return p.asyncMutatorCount }

func (p BulkPolicy) UseBulkAPI() bool { return p.useBulkAPI }

func (p BulkPolicy) MaxRowKeyCount() int { return p.maxRowKeyCount }

func (p BulkPolicy) MaxRequestSize() int64 { return p.maxRequestSize }

func (p BulkPolicy) AutoflushDelay() time.Duration { return p.autoflushDelay }

func (p BulkPolicy) MaxInflightRPCs() int { return p.maxInflightRPCs }

func (p BulkPolicy) MaxMemory() int64 { return p.maxMemory }

func (p BulkPolicy) ThrottlingEnabled() bool { return p.enableThrottling }

func (p BulkPolicy) ThrottlingTargetMillis() int { return p.throttlingTargetMillis }

func (p BulkPolicy) ToBuilder() *BulkPolicyBuilder { return &BulkPolicyBuilder{policy: p} }

// BulkPolicyBuilder accumulates bulk settings. Not safe for concurrent use.
type BulkPolicyBuilder struct {
	policy BulkPolicy
}

// NewBulkPolicyBuilder leaves MaxInflightRPCs at zero, which Builder.Build
// treats as "derive from the channel count".
func NewBulkPolicyBuilder() *BulkPolicyBuilder {
	return &BulkPolicyBuilder{policy: BulkPolicy{
		asyncMutatorCount:      DefaultAsyncMutatorCount,
		useBulkAPI:             true,
		maxRowKeyCount:         DefaultBulkMaxRowKeyCount,
		maxRequestSize:         DefaultBulkMaxRequestSize,
		autoflushDelay:         DefaultBulkAutoflushDelay,
		maxMemory:              DefaultBulkMaxMemory,
		throttlingTargetMillis: DefaultThrottlingTargetMillis,
	}}
}

func (b *BulkPolicyBuilder) SetAsyncMutatorCount(count int) *BulkPolicyBuilder {
	b.policy.asyncMutatorCount = count
	return b
}

func (b *BulkPolicyBuilder) SetUseBulkAPI(use bool) *BulkPolicyBuilder {
	b.policy.useBulkAPI = use
	return b
}

func (b *BulkPolicyBuilder) SetMaxRowKeyCount(count int) *BulkPolicyBuilder {
	b.policy.maxRowKeyCount = count
	return b
}

func (b *BulkPolicyBuilder) SetMaxRequestSize(size int64) *BulkPolicyBuilder {
	b.policy.maxRequestSize = size
	return b
}

func (b *BulkPolicyBuilder) SetAutoflushDelay(delay time.Duration) *BulkPolicyBuilder {
	b.policy.autoflushDelay = delay
	return b
}

func (b *BulkPolicyBuilder) SetMaxInflightRPCs(count int) *BulkPolicyBuilder {
	b.policy.maxInflightRPCs = count
	return b
}

func (b *BulkPolicyBuilder) SetMaxMemory(limit int64) *BulkPolicyBuilder {
	b.policy.maxMemory = limit
	return b
}

func (b *BulkPolicyBuilder) SetThrottlingEnabled(enabled bool) *BulkPolicyBuilder {
	b.policy.enableThrottling = enabled
	return b
}

func (b *BulkPolicyBuilder) SetThrottlingTargetMillis(target int) *BulkPolicyBuilder {
	b.policy.throttlingTargetMillis = target
	return b
}

func (b *BulkPolicyBuilder) Build() BulkPolicy { return b.policy }
