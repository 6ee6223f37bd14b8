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

// Package hbase carries the legacy HBase-side data model accepted by the
// adapter layer: table and column family descriptors plus the comparison
// enumeration used by check-and-mutate calls.
package hbase

// ColumnFamilySpec mirrors an HBase column family descriptor: a family name,
// a string keyed configuration map and a byte keyed metadata map. Metadata
// keys are stored as raw byte strings so arbitrary byte sequences survive
// untouched.
type ColumnFamilySpec struct {
	Name     string
	Config   map[string]string
	Metadata map[string][]byte
}

func NewColumnFamilySpec(name string) *ColumnFamilySpec {
	return &ColumnFamilySpec{
		Name:     name,
		Config:   make(map[string]string),
		Metadata: make(map[string][]byte),
	}
}

func (c *ColumnFamilySpec) SetConfig(key, value string) *ColumnFamilySpec {
	c.Config[key] = value
	return c
}

func (c *ColumnFamilySpec) SetMetadata(key, value []byte) *ColumnFamilySpec {
	c.Metadata[string(key)] = value
	return c
}

// TableSpec mirrors an HBase table descriptor. Family order is insignificant
// to the adapter; the translated output is keyed by family name.
type TableSpec struct {
	Name           string
	ColumnFamilies []*ColumnFamilySpec
}

func NewTableSpec(name string, families ...*ColumnFamilySpec) *TableSpec {
	return &TableSpec{Name: name, ColumnFamilies: families}
}

func (t *TableSpec) AddColumnFamily(family *ColumnFamilySpec) *TableSpec {
	t.ColumnFamilies = append(t.ColumnFamilies, family)
	return t
}
