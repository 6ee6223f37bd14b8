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

import "fmt"

// ConnectionConfig is an immutable snapshot of every setting needed to reach a
// Bigtable instance. Instances are safe to share across goroutines without
// synchronization. Two configs built from identical inputs compare equal,
// which the session layer relies on for cached data pool keying. Producing a
// modified configuration requires ToBuilder followed by a new Build.
type ConnectionConfig struct {
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
	instanceName            string
	credentialSpec          CredentialSpec
	retryPolicy             RetryPolicy
	bulkPolicy              BulkPolicy
	callPolicy              CallPolicy
}

func (c *ConnectionConfig) AdminHost() string { return c.adminHost }

func (c *ConnectionConfig) DataHost() string { return c.dataHost }

func (c *ConnectionConfig) Port() int { return c.port }

func (c *ConnectionConfig) ProjectID() string { return c.projectID }

func (c *ConnectionConfig) InstanceID() string { return c.instanceID }

// AppProfileID returns the configured app profile. Empty means the server's
// default profile.
func (c *ConnectionConfig) AppProfileID() string { return c.appProfileID }

// UserAgent is appended to the User-Agent header on new channel streams.
func (c *ConnectionConfig) UserAgent() string { return c.userAgent }

// DataChannelCount is the number of parallel transport connections maintained
// to the data endpoint. Always at least 1.
func (c *ConnectionConfig) DataChannelCount() int { return c.dataChannelCount }

func (c *ConnectionConfig) UsePlaintextNegotiation() bool { return c.usePlaintextNegotiation }

// UseCachedDataPool opts this connection into the shared, reference counted
// data client pool managed by the session layer.
func (c *ConnectionConfig) UseCachedDataPool() bool { return c.useCachedDataPool }

// InstanceName is the fully qualified instance identifier,
// projects/<project>/instances/<instance>. It is derived at build time and is
// empty unless both the project and instance identifiers are set.
func (c *ConnectionConfig) InstanceName() string { return c.instanceName }

func (c *ConnectionConfig) CredentialSpec() CredentialSpec { return c.credentialSpec }

func (c *ConnectionConfig) RetryPolicy() RetryPolicy { return c.retryPolicy }

func (c *ConnectionConfig) BulkPolicy() BulkPolicy { return c.bulkPolicy }

func (c *ConnectionConfig) CallPolicy() CallPolicy { return c.callPolicy }

// Equal reports field-wise equality with another config.
func (c *ConnectionConfig) Equal(other *ConnectionConfig) bool {
	if other == nil {
		return false
	}
	return *c == *other
}

// ToBuilder returns a builder pre-populated with every field of this config,
// for copy-and-modify.
func (c *ConnectionConfig) ToBuilder() *Builder {
	return NewBuilderFromConfig(c)
}

func (c *ConnectionConfig) String() string {
	return fmt.Sprintf(
		"ConnectionConfig{dataHost: %s, adminHost: %s, port: %d, projectId: %s, instanceId: %s, appProfileId: %s, userAgent: %s, credentialType: %s, dataChannelCount: %d, usePlaintextNegotiation: %t, useCachedDataPool: %t}",
		c.dataHost, c.adminHost, c.port, c.projectID, c.instanceID, c.appProfileID,
		c.userAgent, c.credentialSpec.Type(), c.dataChannelCount,
		c.usePlaintextNegotiation, c.useCachedDataPool)
}
