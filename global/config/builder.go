/*
 * Copyright (C) 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not
 * use this file except in compliance with the License. You may obtain a copy of
 * the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations under
 * the License.
 */
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Builder accumulates connection settings and produces an immutable
// ConnectionConfig. Setters perform no validation; every invariant is checked
// in Build so a partially configured builder never fails early. A Builder is
// not safe for concurrent use - each goroutine needs its own.
type Builder struct {
	adminHost               string
	dataHost                string
	port                    int
	projectID               string
	instanceID              string
	appProfileID            string
	userAgent               string
	dataChannelCount        int
	usePlaintextNegotiation bool
	useCachedDataPool       bool
	credentialSpec          CredentialSpec
	retryPolicy             RetryPolicy
	bulkPolicy              *BulkPolicy
	callPolicy              CallPolicy

	// lookupEnv resolves the emulator environment variable. Injectable so
	// tests never have to mutate the process environment.
	lookupEnv func(string) string
}

func NewBuilder() *Builder {
	return &Builder{
		adminHost:        DefaultAdminHost,
		dataHost:         DefaultDataHost,
		port:             DefaultPort,
		appProfileID:     DefaultAppProfileID,
		dataChannelCount: defaultDataChannelCount(),
		credentialSpec:   DefaultCredentials(),
		retryPolicy:      DefaultRetryPolicy(),
		callPolicy:       DefaultCallPolicy(),
		lookupEnv:        os.Getenv,
	}
}

// NewBuilderFromConfig pre-populates a builder with every field of an existing
// config. Building it without calling any setter yields a config equal to the
// original.
func NewBuilderFromConfig(original *ConnectionConfig) *Builder {
	bulkPolicy := original.bulkPolicy
	return &Builder{
		adminHost:               original.adminHost,
		dataHost:                original.dataHost,
		port:                    original.port,
		projectID:               original.projectID,
		instanceID:              original.instanceID,
		appProfileID:            original.appProfileID,
		userAgent:               original.userAgent,
		dataChannelCount:        original.dataChannelCount,
		usePlaintextNegotiation: original.usePlaintextNegotiation,
		useCachedDataPool:       original.useCachedDataPool,
		credentialSpec:          original.credentialSpec,
		retryPolicy:             original.retryPolicy,
		bulkPolicy:              &bulkPolicy,
		callPolicy:              original.callPolicy,
		lookupEnv:               os.Getenv,
	}
}

func (b *Builder) SetAdminHost(adminHost string) *Builder {
	b.adminHost = adminHost
	return b
}

func (b *Builder) SetDataHost(dataHost string) *Builder {
	b.dataHost = dataHost
	return b
}

func (b *Builder) SetPort(port int) *Builder {
	b.port = port
	return b
}

func (b *Builder) SetProjectID(projectID string) *Builder {
	b.projectID = projectID
	return b
}

func (b *Builder) SetInstanceID(instanceID string) *Builder {
	b.instanceID = instanceID
	return b
}

func (b *Builder) SetAppProfileID(appProfileID string) *Builder {
	b.appProfileID = appProfileID
	return b
}

func (b *Builder) SetUserAgent(userAgent string) *Builder {
	b.userAgent = userAgent
	return b
}

func (b *Builder) SetDataChannelCount(count int) *Builder {
	b.dataChannelCount = count
	return b
}

func (b *Builder) SetUsePlaintextNegotiation(usePlaintext bool) *Builder {
	b.usePlaintextNegotiation = usePlaintext
	return b
}

// SetUseCachedDataPool opts into sharing pooled data clients between
// connections with equal configurations. This cuts startup cost for workloads
// that open many logical connections, e.g. Dataflow.
func (b *Builder) SetUseCachedDataPool(useCachedDataPool bool) *Builder {
	b.useCachedDataPool = useCachedDataPool
	return b
}

func (b *Builder) SetCredentialSpec(spec CredentialSpec) *Builder {
	b.credentialSpec = spec
	return b
}

func (b *Builder) SetRetryPolicy(policy RetryPolicy) *Builder {
	b.retryPolicy = policy
	return b
}

func (b *Builder) SetBulkPolicy(policy BulkPolicy) *Builder {
	b.bulkPolicy = &policy
	return b
}

func (b *Builder) SetCallPolicy(policy CallPolicy) *Builder {
	b.callPolicy = policy
	return b
}

// EnableEmulator parses a host:port address and redirects both endpoints to a
// local emulator. Returns ErrMalformedEmulatorAddress when the address does
// not consist of exactly one host and a parseable port.
func (b *Builder) EnableEmulator(hostAndPort string) error {
	parts := strings.Split(hostAndPort, ":")
	if len(parts) != 2 {
		return fmt.Errorf("%w (provided: %q)", ErrMalformedEmulatorAddress, hostAndPort)
	}
	port, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("%w (provided: %q)", ErrMalformedEmulatorAddress, hostAndPort)
	}
	return b.EnableEmulatorHostPort(parts[0], port)
}

// EnableEmulatorHostPort forces plaintext negotiation on, clears credentials
// and overrides both hostnames and the port.
func (b *Builder) EnableEmulatorHostPort(host string, port int) error {
	if host == "" {
		return fmt.Errorf("emulator %w", ErrInvalidHost)
	}
	if port <= 0 {
		return fmt.Errorf("emulator %w (provided: %d)", ErrInvalidPort, port)
	}
	b.usePlaintextNegotiation = true
	b.credentialSpec = NoCredentials()
	b.dataHost = host
	b.adminHost = host
	b.port = port
	return nil
}

// applyEmulatorEnvironment applies emulator settings from the environment
// variable, if set. It runs last in Build so the environment always wins over
// explicitly configured endpoints and credentials.
func (b *Builder) applyEmulatorEnvironment() error {
	emulatorHost := b.lookupEnv(EmulatorHostEnv)
	if emulatorHost == "" {
		return nil
	}
	if err := b.EnableEmulator(emulatorHost); err != nil {
		return fmt.Errorf("invalid %s environment variable: %w", EmulatorHostEnv, err)
	}
	return nil
}

// Build derives unset defaults, resolves the emulator environment override,
// validates invariants and returns the immutable config.
func (b *Builder) Build() (*ConnectionConfig, error) {
	var bulkPolicy BulkPolicy
	if b.bulkPolicy == nil {
		maxInflight := DefaultMaxInflightRPCsPerChannel * b.dataChannelCount
		bulkPolicy = NewBulkPolicyBuilder().SetMaxInflightRPCs(maxInflight).Build()
	} else if b.bulkPolicy.MaxInflightRPCs() <= 0 {
		// re-derive just the in-flight limit, keeping the supplied fields
		maxInflight := DefaultMaxInflightRPCsPerChannel * b.dataChannelCount
		bulkPolicy = b.bulkPolicy.ToBuilder().SetMaxInflightRPCs(maxInflight).Build()
	} else {
		bulkPolicy = *b.bulkPolicy
	}

	if err := b.applyEmulatorEnvironment(); err != nil {
		return nil, err
	}

	if b.dataChannelCount < 1 {
		return nil, fmt.Errorf("%w (provided: %d)", ErrInvalidChannelCount, b.dataChannelCount)
	}

	instanceName := ""
	if b.projectID != "" && b.instanceID != "" {
		instanceName = fmt.Sprintf("projects/%s/instances/%s", b.projectID, b.instanceID)
	}

	return &ConnectionConfig{
		adminHost:               b.adminHost,
		dataHost:                b.dataHost,
		port:                    b.port,
		projectID:               b.projectID,
		instanceID:              b.instanceID,
		appProfileID:            b.appProfileID,
		userAgent:               b.userAgent,
		dataChannelCount:        b.dataChannelCount,
		usePlaintextNegotiation: b.usePlaintextNegotiation,
		useCachedDataPool:       b.useCachedDataPool,
		instanceName:            instanceName,
		credentialSpec:          b.credentialSpec,
		retryPolicy:             b.retryPolicy,
		bulkPolicy:              bulkPolicy,
		callPolicy:              b.callPolicy,
	}, nil
}
