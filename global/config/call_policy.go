package config

import "time"

const (
	DefaultShortRPCTimeout = 60 * time.Second
	DefaultLongRPCTimeout  = 10 * time.Minute
)

// CallPolicy holds per-call deadline configuration for the RPC layer. Short
// timeouts apply to unary point calls, long timeouts to scans and bulk
// mutations.
type CallPolicy struct {
	useTimeout      bool
	shortRPCTimeout time.Duration
	longRPCTimeout  time.Duration
}

func (p CallPolicy) UseTimeout() bool { return p.useTimeout }

func (p CallPolicy) ShortRPCTimeout() time.Duration { return p.shortRPCTimeout }

func (p CallPolicy) LongRPCTimeout() time.Duration { return p.longRPCTimeout }

func (p CallPolicy) ToBuilder() *CallPolicyBuilder { return &CallPolicyBuilder{policy: p} }

// CallPolicyBuilder accumulates call settings. Not safe for concurrent use.
type CallPolicyBuilder struct {
	policy CallPolicy
}

func NewCallPolicyBuilder() *CallPolicyBuilder {
	return &CallPolicyBuilder{policy: CallPolicy{
		shortRPCTimeout: DefaultShortRPCTimeout,
		longRPCTimeout:  DefaultLongRPCTimeout,
	}}
}

func DefaultCallPolicy() CallPolicy { return NewCallPolicyBuilder().Build() }

func (b *CallPolicyBuilder) SetUseTimeout(use bool) *CallPolicyBuilder {
	b.policy.useTimeout = use
	return b
}

func (b *CallPolicyBuilder) SetShortRPCTimeout(timeout time.Duration) *CallPolicyBuilder {
	b.policy.shortRPCTimeout = timeout
	return b
}

func (b *CallPolicyBuilder) SetLongRPCTimeout(timeout time.Duration) *CallPolicyBuilder {
	b.policy.longRPCTimeout = timeout
	return b
}

func (b *CallPolicyBuilder) Build() CallPolicy { return b.policy }
