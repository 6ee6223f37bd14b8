package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBulkPolicyBuilderDefaults(t *testing.T) {
	policy := NewBulkPolicyBuilder().Build()

	assert.Equal(t, DefaultAsyncMutatorCount, policy.AsyncMutatorCount())
	assert.True(t, policy.UseBulkAPI())
	assert.Equal(t, DefaultBulkMaxRowKeyCount, policy.MaxRowKeyCount())
	assert.Equal(t, DefaultBulkMaxRequestSize, policy.MaxRequestSize())
	assert.Equal(t, DefaultBulkMaxMemory, policy.MaxMemory())
	assert.False(t, policy.ThrottlingEnabled())
	// zero means "derive from the channel count" at config build time
	assert.Equal(t, 0, policy.MaxInflightRPCs())
}

func TestBulkPolicyToBuilderPreservesFields(t *testing.T) {
	policy := NewBulkPolicyBuilder().
		SetAsyncMutatorCount(4).
		SetMaxRowKeyCount(50).
		SetAutoflushDelay(10 * time.Millisecond).
		SetThrottlingEnabled(true).
		Build()

	rebuilt := policy.ToBuilder().SetMaxInflightRPCs(99).Build()

	assert.Equal(t, 4, rebuilt.AsyncMutatorCount())
	assert.Equal(t, 50, rebuilt.MaxRowKeyCount())
	assert.Equal(t, 10*time.Millisecond, rebuilt.AutoflushDelay())
	assert.True(t, rebuilt.ThrottlingEnabled())
	assert.Equal(t, 99, rebuilt.MaxInflightRPCs())
}

func TestRetryPolicyDefaults(t *testing.T) {
	policy := DefaultRetryPolicy()

	assert.True(t, policy.RetriesEnabled())
	assert.True(t, policy.RetryOnDeadlineExceeded())
	assert.Equal(t, DefaultInitialBackoff, policy.InitialBackoff())
	assert.Equal(t, DefaultBackoffMultiplier, policy.BackoffMultiplier())
	assert.Equal(t, DefaultMaxElapsedBackoff, policy.MaxElapsedBackoff())
	assert.Equal(t, DefaultMaxScanTimeoutRetries, policy.MaxScanTimeoutRetries())
}

func TestCallPolicyDefaults(t *testing.T) {
	policy := DefaultCallPolicy()

	assert.False(t, policy.UseTimeout())
	assert.Equal(t, DefaultShortRPCTimeout, policy.ShortRPCTimeout())
	assert.Equal(t, DefaultLongRPCTimeout, policy.LongRPCTimeout())
}
