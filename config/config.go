/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config holds the table and index configuration the storage
// adapters are wired with. Values come from a YAML file or from the
// environment; key attribute names themselves are fixed by the schema
// (see storagemodels) and are not configurable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default index name. The byDate index orders log entries date-first
// under the same owner partition.
const DefaultByDateIndexName = "GSI1"

// Table describes one workout table and its byDate secondary index.
type Table struct {
	// TableName is the table holding both entry kinds.
	TableName string `yaml:"tableName"`

	// ByDateIndexName is the secondary index declared over PK1/SK1.
	ByDateIndexName string `yaml:"byDateIndexName"`

	// Region is the AWS region hosting the table.
	Region string `yaml:"region"`
}

// Default returns a Table with default index naming. The table name has
// no sensible default and must come from the caller, a file, or the
// environment.
func Default() Table {
	return Table{ByDateIndexName: DefaultByDateIndexName}
}

// Load reads a Table from a YAML file, applying defaults for anything
// the file omits.
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	t := Default()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Table{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// FromEnv reads a Table from the environment, applying defaults for
// anything unset.
func FromEnv() (Table, error) {
	t := Default()
	t.TableName = os.Getenv("AWS_DDB_TABLE")
	t.Region = os.Getenv("AWS_REGION")
	if name := os.Getenv("WORKOUTSTORE_BYDATE_INDEX"); name != "" {
		t.ByDateIndexName = name
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Validate checks the configuration is usable.
func (t Table) Validate() error {
	if t.TableName == "" {
		return fmt.Errorf("config: tableName must not be empty")
	}
	if t.ByDateIndexName == "" {
		return fmt.Errorf("config: byDateIndexName must not be empty")
	}
	return nil
}
