// Copyright 2022 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads configuration files.
package config

import (
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config holds default values for the flags of the process command. Unset
// fields leave the flag defaults untouched.
type Config struct {
	Format     string `yaml:"format"`
	Encoding   string `yaml:"encoding"`
	Duplicates string `yaml:"duplicates"`
	Sort       *bool  `yaml:"sort"`
	Digits     *int32 `yaml:"digits"`
	Shards     *int   `yaml:"shards"`
	Verbose    *bool  `yaml:"verbose"`
}

// LoadFromFile reads the configuration file at the given path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load reads a configuration. Unknown keys are an error.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	var c Config
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, err
	}
	return &c, nil
}

// Flags returns the configured values in their textual form, keyed by
// flag name.
func (c *Config) Flags() map[string]string {
	res := make(map[string]string)
	if c.Format != "" {
		res["format"] = c.Format
	}
	if c.Encoding != "" {
		res["encoding"] = c.Encoding
	}
	if c.Duplicates != "" {
		res["duplicates"] = c.Duplicates
	}
	if c.Sort != nil {
		res["sort"] = strconv.FormatBool(*c.Sort)
	}
	if c.Digits != nil {
		res["digits"] = strconv.FormatInt(int64(*c.Digits), 10)
	}
	if c.Shards != nil {
		res["shards"] = strconv.Itoa(*c.Shards)
	}
	if c.Verbose != nil {
		res["verbose"] = strconv.FormatBool(*c.Verbose)
	}
	return res
}
