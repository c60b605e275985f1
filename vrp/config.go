// SPDX-License-Identifier: MIT
// Package vrp — file-based configuration.
//
// LoadOptions reads an Options overlay from a YAML document. The file never
// needs to be complete: fields absent from the document keep the documented
// defaults for the file's mode. The time limit is spelled as a duration
// string ("30s", "2m"), parsed with time.ParseDuration.

package vrp

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// optionsFile mirrors Options for decoding, with the duration as text and
// optional fields as pointers so "absent" and "zero" stay distinguishable.
type optionsFile struct {
	Mode           Mode     `yaml:"mode"`
	TimeLimit      string   `yaml:"time_limit"`
	RelGap         *float64 `yaml:"rel_gap"`
	Epsilon        *float64 `yaml:"epsilon"`
	StrictTimeout  *bool    `yaml:"strict_timeout"`
	UseAllVehicles *bool    `yaml:"use_all_vehicles"`
	CheckTolerance *float64 `yaml:"check_tolerance"`
}

// LoadOptions decodes path into a validated Options value.
//
// Errors: I/O and YAML errors are returned as-is; structural problems map to
// the usual sentinels via Options.Validate.
func LoadOptions(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	var f optionsFile
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return Options{}, err
	}

	o := DefaultOptions(f.Mode)
	if f.TimeLimit != "" {
		var d time.Duration
		d, err = time.ParseDuration(f.TimeLimit)
		if err != nil {
			return Options{}, fmt.Errorf("time_limit: %w", err)
		}
		o.TimeLimit = d
	}
	if f.RelGap != nil {
		o.RelGap = *f.RelGap
	}
	if f.Epsilon != nil {
		o.Epsilon = *f.Epsilon
	}
	if f.StrictTimeout != nil {
		o.StrictTimeout = *f.StrictTimeout
	}
	if f.UseAllVehicles != nil {
		o.UseAllVehicles = *f.UseAllVehicles
	}
	if f.CheckTolerance != nil {
		o.CheckTolerance = *f.CheckTolerance
	}

	if err = o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}
