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

package main

import (
	"fmt"
	"os"

	"github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/hbase"
	"gopkg.in/yaml.v2"
)

type yamlSchemaFile struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Name           string             `yaml:"name"`
	ColumnFamilies []yamlColumnFamily `yaml:"columnFamilies"`
}

type yamlColumnFamily struct {
	Name     string            `yaml:"name"`
	Config   map[string]string `yaml:"config"`
	Metadata map[string]string `yaml:"metadata"`
}

var readFile = os.ReadFile

// readSchemaFile parses a YAML file of HBase table descriptors into legacy
// table specs.
func readSchemaFile(path string) ([]*hbase.TableSpec, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var schema yamlSchemaFile
	if err = yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema file: %w", err)
	}
	if len(schema.Tables) == 0 {
		return nil, fmt.Errorf("no tables defined in schema file %s", path)
	}

	var specs []*hbase.TableSpec
	for _, table := range schema.Tables {
		if table.Name == "" {
			return nil, fmt.Errorf("table with no name in schema file %s", path)
		}
		spec := hbase.NewTableSpec(table.Name)
		for _, family := range table.ColumnFamilies {
			if family.Name == "" {
				return nil, fmt.Errorf("column family with no name in table %s", table.Name)
			}
			familySpec := hbase.NewColumnFamilySpec(family.Name)
			for key, value := range family.Config {
				familySpec.SetConfig(key, value)
			}
			for key, value := range family.Metadata {
				familySpec.SetMetadata([]byte(key), []byte(value))
			}
			spec.AddColumnFamily(familySpec)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
