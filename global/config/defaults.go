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

import "runtime"

const (
	// EmulatorHostEnv, when set to a host:port address, redirects the client to
	// a Bigtable emulator running at the given address with plaintext
	// negotiation and no credentials. It is resolved as the last step of
	// Builder.Build, so it always wins over explicitly configured endpoints.
	EmulatorHostEnv = "BIGTABLE_EMULATOR_HOST"

	DefaultAdminHost = "bigtableadmin.googleapis.com"
	DefaultDataHost  = "bigtable.googleapis.com"
	DefaultPort      = 443

	// DefaultAppProfileID selects the server's default app profile.
	DefaultAppProfileID = ""

	maxDataChannelCount = 250
)

var availableProcessors = runtime.NumCPU

// 20 channels worked well on a 4 CPU machine and the ratio seems to scale for
// larger hosts. Use no more than 250 channels.
func defaultDataChannelCount() int {
	count := availableProcessors() * 4
	if count < 1 {
		count = 1
	}
	if count > maxDataChannelCount {
		count = maxDataChannelCount
	}
	return count
}
