package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func newTestBuilder() *Builder {
	b := NewBuilder()
	b.lookupEnv = noEnv
	return b
}

func TestBuildAppliesDefaults(t *testing.T) {
	cfg, err := newTestBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAdminHost, cfg.AdminHost())
	assert.Equal(t, DefaultDataHost, cfg.DataHost())
	assert.Equal(t, DefaultPort, cfg.Port())
	assert.Equal(t, "", cfg.AppProfileID())
	assert.False(t, cfg.UsePlaintextNegotiation())
	assert.False(t, cfg.UseCachedDataPool())
	assert.Equal(t, CredentialTypeDefault, cfg.CredentialSpec().Type())
	assert.GreaterOrEqual(t, cfg.DataChannelCount(), 1)
	assert.LessOrEqual(t, cfg.DataChannelCount(), maxDataChannelCount)
	assert.Equal(t, DefaultRetryPolicy(), cfg.RetryPolicy())
	assert.Equal(t, DefaultCallPolicy(), cfg.CallPolicy())
}

func TestBuildReturnsAssignedValues(t *testing.T) {
	retryPolicy := NewRetryPolicyBuilder().
		SetRetriesEnabled(false).
		SetInitialBackoff(20 * time.Millisecond).
		Build()
	callPolicy := NewCallPolicyBuilder().
		SetUseTimeout(true).
		SetShortRPCTimeout(5 * time.Second).
		Build()

	cfg, err := newTestBuilder().
		SetAdminHost("admin.example.com").
		SetDataHost("data.example.com").
		SetPort(8443).
		SetProjectID("my-project").
		SetInstanceID("my-instance").
		SetAppProfileID("batch").
		SetUserAgent("test-agent/1.0").
		SetDataChannelCount(7).
		SetUseCachedDataPool(true).
		SetCredentialSpec(JSONFileCredentials("/tmp/key.json")).
		SetRetryPolicy(retryPolicy).
		SetCallPolicy(callPolicy).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "admin.example.com", cfg.AdminHost())
	assert.Equal(t, "data.example.com", cfg.DataHost())
	assert.Equal(t, 8443, cfg.Port())
	assert.Equal(t, "my-project", cfg.ProjectID())
	assert.Equal(t, "my-instance", cfg.InstanceID())
	assert.Equal(t, "batch", cfg.AppProfileID())
	assert.Equal(t, "test-agent/1.0", cfg.UserAgent())
	assert.Equal(t, 7, cfg.DataChannelCount())
	assert.True(t, cfg.UseCachedDataPool())
	assert.Equal(t, CredentialTypeJSONFile, cfg.CredentialSpec().Type())
	assert.Equal(t, "/tmp/key.json", cfg.CredentialSpec().JSONKeyPath())
	assert.Equal(t, retryPolicy, cfg.RetryPolicy())
	assert.Equal(t, callPolicy, cfg.CallPolicy())
}

func TestBuildDerivesInstanceName(t *testing.T) {
	tests := []struct {
		name       string
		projectID  string
		instanceID string
		want       string
	}{
		{"both set", "my-project", "my-instance", "projects/my-project/instances/my-instance"},
		{"missing instance", "my-project", "", ""},
		{"missing project", "", "my-instance", ""},
		{"both missing", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := newTestBuilder().
				SetProjectID(tt.projectID).
				SetInstanceID(tt.instanceID).
				Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.InstanceName())
		})
	}
}

func TestBuildRejectsInvalidChannelCount(t *testing.T) {
	for _, count := range []int{0, -3} {
		_, err := newTestBuilder().SetDataChannelCount(count).Build()
		assert.ErrorIs(t, err, ErrInvalidChannelCount)
	}
}

func TestBuildDerivesBulkInflightLimit(t *testing.T) {
	cfg, err := newTestBuilder().SetDataChannelCount(4).Build()
	require.NoError(t, err)
	assert.Equal(t, 4*DefaultMaxInflightRPCsPerChannel, cfg.BulkPolicy().MaxInflightRPCs())
}

func TestBuildRederivesNonPositiveBulkInflightLimit(t *testing.T) {
	supplied := NewBulkPolicyBuilder().
		SetMaxRowKeyCount(10).
		SetMaxInflightRPCs(-1).
		Build()

	cfg, err := newTestBuilder().
		SetDataChannelCount(3).
		SetBulkPolicy(supplied).
		Build()
	require.NoError(t, err)

	// the in-flight limit is re-derived, every other supplied field survives
	assert.Equal(t, 3*DefaultMaxInflightRPCsPerChannel, cfg.BulkPolicy().MaxInflightRPCs())
	assert.Equal(t, 10, cfg.BulkPolicy().MaxRowKeyCount())
}

func TestBuildKeepsPositiveBulkInflightLimit(t *testing.T) {
	supplied := NewBulkPolicyBuilder().SetMaxInflightRPCs(17).Build()
	cfg, err := newTestBuilder().SetBulkPolicy(supplied).Build()
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.BulkPolicy().MaxInflightRPCs())
}

func TestEnableEmulator(t *testing.T) {
	b := newTestBuilder().SetProjectID("my-project").SetInstanceID("my-instance")
	require.NoError(t, b.EnableEmulator("localhost:9000"))

	cfg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.AdminHost())
	assert.Equal(t, "localhost", cfg.DataHost())
	assert.Equal(t, 9000, cfg.Port())
	assert.True(t, cfg.UsePlaintextNegotiation())
	assert.Equal(t, CredentialTypeNone, cfg.CredentialSpec().Type())
}

func TestEnableEmulatorRejectsMalformedAddresses(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr error
	}{
		{"no colon", "localhost", ErrMalformedEmulatorAddress},
		{"too many colons", "localhost:9000:1", ErrMalformedEmulatorAddress},
		{"unparseable port", "localhost:abc", ErrMalformedEmulatorAddress},
		{"empty host", ":9000", ErrInvalidHost},
		{"zero port", "localhost:0", ErrInvalidPort},
		{"negative port", "localhost:-1", ErrInvalidPort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestBuilder().EnableEmulator(tt.address)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEnableEmulatorHostPortValidation(t *testing.T) {
	assert.ErrorIs(t, newTestBuilder().EnableEmulatorHostPort("", 9000), ErrInvalidHost)
	assert.ErrorIs(t, newTestBuilder().EnableEmulatorHostPort("localhost", 0), ErrInvalidPort)
	assert.NoError(t, newTestBuilder().EnableEmulatorHostPort("localhost", 9000))
}

func TestBuildAppliesEnvironmentOverrideLast(t *testing.T) {
	b := newTestBuilder().
		SetAdminHost("admin.example.com").
		SetDataHost("data.example.com").
		SetPort(8443)
	b.lookupEnv = func(key string) string {
		require.Equal(t, EmulatorHostEnv, key)
		return "127.0.0.1:8086"
	}

	cfg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.AdminHost())
	assert.Equal(t, "127.0.0.1", cfg.DataHost())
	assert.Equal(t, 8086, cfg.Port())
	assert.True(t, cfg.UsePlaintextNegotiation())
	assert.Equal(t, CredentialTypeNone, cfg.CredentialSpec().Type())
}

func TestBuildRejectsMalformedEnvironmentOverride(t *testing.T) {
	b := newTestBuilder()
	b.lookupEnv = func(string) string { return "localhost" }
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrMalformedEmulatorAddress)
}

func TestBuildIgnoresAbsentEnvironmentOverride(t *testing.T) {
	cfg, err := newTestBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, DefaultDataHost, cfg.DataHost())
	assert.False(t, cfg.UsePlaintextNegotiation())
}

func TestBuilderRoundTrip(t *testing.T) {
	original, err := newTestBuilder().
		SetProjectID("my-project").
		SetInstanceID("my-instance").
		SetAppProfileID("batch").
		SetUserAgent("agent/2.1").
		SetDataChannelCount(5).
		SetUseCachedDataPool(true).
		SetCredentialSpec(JSONFileCredentials("/tmp/key.json")).
		SetBulkPolicy(NewBulkPolicyBuilder().SetMaxInflightRPCs(42).Build()).
		Build()
	require.NoError(t, err)

	b := NewBuilderFromConfig(original)
	b.lookupEnv = noEnv
	rebuilt, err := b.Build()
	require.NoError(t, err)

	assert.True(t, original.Equal(rebuilt))
	assert.True(t, rebuilt.Equal(original))
}

func TestBuilderCopyAndModify(t *testing.T) {
	original, err := newTestBuilder().SetProjectID("my-project").SetInstanceID("a").Build()
	require.NoError(t, err)

	b := NewBuilderFromConfig(original)
	b.lookupEnv = noEnv
	modified, err := b.SetInstanceID("b").Build()
	require.NoError(t, err)

	assert.False(t, original.Equal(modified))
	assert.Equal(t, "a", original.InstanceID())
	assert.Equal(t, "b", modified.InstanceID())
	assert.Equal(t, "projects/my-project/instances/b", modified.InstanceName())
}

func TestDefaultDataChannelCount(t *testing.T) {
	origProcs := availableProcessors
	defer func() { availableProcessors = origProcs }()

	tests := []struct {
		name  string
		cores int
		want  int
	}{
		{"four cores", 4, 16},
		{"single core", 1, 4},
		{"large host capped", 128, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			availableProcessors = func() int { return tt.cores }
			assert.Equal(t, tt.want, defaultDataChannelCount())
		})
	}
}

func TestConnectionConfigEqual(t *testing.T) {
	build := func() *ConnectionConfig {
		cfg, err := newTestBuilder().
			SetProjectID("my-project").
			SetInstanceID("my-instance").
			SetDataChannelCount(2).
			Build()
		require.NoError(t, err)
		return cfg
	}

	a := build()
	b := build()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	builder := NewBuilderFromConfig(a)
	builder.lookupEnv = noEnv
	c, err := builder.SetPort(1234).Build()
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}
