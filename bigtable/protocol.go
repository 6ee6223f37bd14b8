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

// Package bigtableclient exposes the remote-side protocol representation of
// schema objects and builds the wire-level clients that consume a
// ConnectionConfig. Schema translation itself lives in the adapters package.
package bigtableclient

// CompareOperator is the comparison enumeration in the remote protocol
// representation, consumed by the RPC layer for conditional mutations. It is
// in 1:1 correspondence with the legacy hbase.CompareOp enumeration.
type CompareOperator int32

const (
	CompareLess CompareOperator = iota
	CompareLessOrEqual
	CompareEqual
	CompareNotEqual
	CompareGreaterOrEqual
	CompareGreater
	CompareNoOp
)

func (op CompareOperator) String() string {
	switch op {
	case CompareLess:
		return "LESS"
	case CompareLessOrEqual:
		return "LESS_OR_EQUAL"
	case CompareEqual:
		return "EQUAL"
	case CompareNotEqual:
		return "NOT_EQUAL"
	case CompareGreaterOrEqual:
		return "GREATER_OR_EQUAL"
	case CompareGreater:
		return "GREATER"
	case CompareNoOp:
		return "NO_OP"
	}
	return "UNKNOWN"
}

// ColumnFamily is the remote protocol message for a single column family.
// Config and Metadata hold verbatim copies of the legacy descriptor's maps;
// metadata keys are raw byte strings.
type ColumnFamily struct {
	Config   map[string]string
	Metadata map[string][]byte
}

// TableDescriptor keys column families by name. The mapping is keyed by name,
// so duplicate family names in a source descriptor overwrite each other here
// rather than error; last write wins.
type TableDescriptor struct {
	Name           string
	ColumnFamilies map[string]*ColumnFamily
}
