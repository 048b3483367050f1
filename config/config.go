// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads simulation tuning parameters (gravity, solver
// iteration cap, timestep, tolerance, logging level) from YAML.
package config

import (
	"os"

	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/util/logger"
	"gopkg.in/yaml.v2"
)

// Config is the set of tunable parameters a simulation is started
// with. Zero-value fields are filled in by Defaults.
type Config struct {
	Gravity           [3]float64 `yaml:"gravity"`
	Timestep          float64    `yaml:"timestep"`
	SolverIterations  int        `yaml:"solver_iterations"`
	SolverTolerance   float64    `yaml:"solver_tolerance"`
	LogLevel          string     `yaml:"log_level"`
}

// Defaults returns the configuration the core's constants were derived
// from: Earth gravity along -z, a 1/60s timestep, 20 solver iterations,
// 1e-6 tolerance, and WARN-level logging.
func Defaults() Config {
	return Config{
		Gravity:          [3]float64{0, 0, -9.81},
		Timestep:         1.0 / 60.0,
		SolverIterations: 20,
		SolverTolerance:  1e-6,
		LogLevel:         "warn",
	}
}

// Load reads a YAML config file at path, applying Defaults for any
// field left unset (zero-valued) in the file.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// GravityVector returns this config's gravity as a math64.Vector3.
func (c Config) GravityVector() math64.Vector3 {
	return *math64.NewVector3(c.Gravity[0], c.Gravity[1], c.Gravity[2])
}

// ConfigureLogging applies this config's log level to log.
func (c Config) ConfigureLogging(log *logger.Logger) {
	log.SetLevelByName(c.LogLevel)
}
