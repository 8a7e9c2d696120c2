// Package config defines the carplan configuration file: the vehicle to plan for, logger levels,
// rendering options and a list of named planning queries.
package config

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/carplan/logging"
	"go.viam.com/carplan/motionplan"
	"go.viam.com/carplan/render"
	"go.viam.com/carplan/spatialmath"
	"go.viam.com/carplan/utils"
)

// A Config describes the configuration of a planning session.
type Config struct {
	ConfigFilePath string `yaml:"-"`

	Vehicle motionplan.PlannerOptions     `yaml:"vehicle"`
	Log     []logging.LoggerPatternConfig `yaml:"log,omitempty"`
	Render  render.Options                `yaml:"render"`
	Queries []QueryConfig                 `yaml:"queries,omitempty"`
}

// NewDefault returns a Config holding the default vehicle and render options and no queries.
func NewDefault() *Config {
	return &Config{
		Vehicle: *motionplan.NewBasicPlannerOptions(),
		Render:  render.DefaultOptions(),
	}
}

// PoseConfig is a planar pose. The heading is in degrees, counterclockwise from +x.
type PoseConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	TH float64 `yaml:"th"`
}

// Pose converts the config to a pose.
func (pc PoseConfig) Pose() spatialmath.Pose {
	return spatialmath.NewPose(pc.X, pc.Y, utils.DegToRad(pc.TH))
}

// NewPoseConfig converts a pose to its config form.
func NewPoseConfig(p spatialmath.Pose) PoseConfig {
	return PoseConfig{X: p.X(), Y: p.Y(), TH: utils.RadToDeg(p.Theta())}
}

// QueryConfig is a named start and goal.
type QueryConfig struct {
	Name  string     `yaml:"name"`
	Start PoseConfig `yaml:"start"`
	Goal  PoseConfig `yaml:"goal"`
}

// Query converts the config to a planner query.
func (qc QueryConfig) Query() motionplan.Query {
	return motionplan.Query{Start: qc.Start.Pose(), Goal: qc.Goal.Pose()}
}

// Validate ensures all parts of the query are valid.
func (qc QueryConfig) Validate(path string) error {
	if qc.Name == "" {
		return newConfigValidationFieldRequiredError(path, "name")
	}
	var err error
	if !qc.Start.Pose().IsFinite() {
		err = multierr.Append(err, newConfigValidationError(path+".start", motionplan.ErrNonFinitePose))
	}
	if !qc.Goal.Pose().IsFinite() {
		err = multierr.Append(err, newConfigValidationError(path+".goal", motionplan.ErrNonFinitePose))
	}
	return err
}

// Validate returns every problem of the config at once.
func (c *Config) Validate() error {
	var err error
	if vErr := c.Vehicle.Validate(); vErr != nil {
		err = multierr.Append(err, newConfigValidationError("vehicle", vErr))
	}
	if rErr := c.Render.Validate(); rErr != nil {
		err = multierr.Append(err, newConfigValidationError("render", rErr))
	}
	for idx, lpc := range c.Log {
		path := indexedPath("log", idx)
		if !logging.ValidatePattern(lpc.Pattern) {
			err = multierr.Append(err, newConfigValidationError(path, errors.Errorf("invalid pattern %q", lpc.Pattern)))
		}
		if _, lErr := logging.LevelFromString(lpc.Level); lErr != nil {
			err = multierr.Append(err, newConfigValidationError(path, lErr))
		}
	}
	seen := make(map[string]bool, len(c.Queries))
	for idx, qc := range c.Queries {
		path := indexedPath("queries", idx)
		if qErr := qc.Validate(path); qErr != nil {
			err = multierr.Append(err, qErr)
			continue
		}
		if seen[qc.Name] {
			err = multierr.Append(err, newConfigValidationError(path, errors.Errorf("duplicate query name %q", qc.Name)))
		}
		seen[qc.Name] = true
	}
	return err
}

// FindQuery returns the query with the given name.
func (c *Config) FindQuery(name string) (QueryConfig, bool) {
	for _, qc := range c.Queries {
		if qc.Name == name {
			return qc, true
		}
	}
	return QueryConfig{}, false
}
