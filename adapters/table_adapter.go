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

// Package adapters translates the legacy HBase data model into the remote
// protocol representation consumed by the Bigtable RPC layer.
package adapters

import (
	bigtableclient "github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/bigtable"
	"github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/hbase"
)

// TableAdapter translates legacy table descriptors into remote table
// descriptors. It holds no state and is safe for unrestricted concurrent use.
type TableAdapter struct{}

func NewTableAdapter() *TableAdapter {
	return &TableAdapter{}
}

// Adapt builds one remote column family message per input family, copying
// every configuration entry and every metadata byte sequence verbatim. The
// output is keyed by family name: when two input families share a name the
// later one silently overwrites the earlier one. Callers must not rely on
// name uniqueness being enforced here.
func (a *TableAdapter) Adapt(spec *hbase.TableSpec) *bigtableclient.TableDescriptor {
	families := make(map[string]*bigtableclient.ColumnFamily, len(spec.ColumnFamilies))
	for _, family := range spec.ColumnFamilies {
		remote := &bigtableclient.ColumnFamily{
			Config:   make(map[string]string, len(family.Config)),
			Metadata: make(map[string][]byte, len(family.Metadata)),
		}
		for key, value := range family.Config {
			remote.Config[key] = value
		}
		for key, value := range family.Metadata {
			remote.Metadata[key] = append([]byte(nil), value...)
		}
		families[family.Name] = remote
	}
	return &bigtableclient.TableDescriptor{
		Name:           spec.Name,
		ColumnFamilies: families,
	}
}
