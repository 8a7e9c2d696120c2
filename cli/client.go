package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/carplan/config"
	"go.viam.com/carplan/logging"
	"go.viam.com/carplan/motionplan"
	"go.viam.com/carplan/spatialmath"
)

const (
	loggerName        = "carplan"
	plannerLoggerName = "planner"
)

// session holds what every command needs: the effective config, the loggers and a planner built from
// the vehicle section.
type session struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *logging.Registry
	planner  *motionplan.Planner
}

func newSession(c *cli.Context) (*session, error) {
	level := logging.INFO
	if c.Bool(flagDebug) {
		level = logging.DEBUG
	}
	logger := logging.NewWriterLogger(loggerName, level, c.App.ErrWriter)

	cfg := config.NewDefault()
	if path := c.String(flagConfig); path != "" {
		var err error
		cfg, err = config.Read(path, logger)
		if err != nil {
			return nil, err
		}
	}
	if err := applyVehicleFlags(c, &cfg.Vehicle); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := logging.NewRegistry()
	registry.GetOrRegister(loggerName, logger)
	plannerLogger := registry.GetOrRegister(loggerName+"."+plannerLoggerName, logger.Sublogger(plannerLoggerName))
	if err := registry.Update(cfg.Log, logger); err != nil {
		return nil, err
	}
	if c.Bool(flagDebug) {
		for _, name := range registry.Names() {
			if l, ok := registry.LoggerNamed(name); ok {
				l.SetLevel(logging.DEBUG)
			}
		}
	}

	planner, err := motionplan.NewPlanner(&cfg.Vehicle, plannerLogger)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, registry: registry, planner: planner}, nil
}

// applyVehicleFlags lets command line flags override the vehicle section of the config.
func applyVehicleFlags(c *cli.Context, opts *motionplan.PlannerOptions) error {
	if c.IsSet(flagModel) {
		opts.Model = motionplan.Model(c.String(flagModel))
	}
	if c.IsSet(flagRadius) {
		opts.TurningRadius = c.Float64(flagRadius)
	}
	if c.IsSet(flagStep) {
		opts.StepSize = c.Float64(flagStep)
	}
	if c.IsSet(flagFamilies) {
		opts.Families = c.StringSlice(flagFamilies)
	}
	if c.IsSet(flagForwardOnly) {
		opts.ForwardOnly = c.Bool(flagForwardOnly)
	}
	if c.IsSet(flagThreads) {
		if c.Int(flagThreads) < 0 {
			return errors.Errorf("--%s must not be negative", flagThreads)
		}
		opts.NumThreads = c.Int(flagThreads)
	}
	return nil
}

// query returns the start and goal to plan for, either from --query or from --start and --goal.
func (s *session) query(c *cli.Context) (string, motionplan.Query, error) {
	if name := c.String(flagQuery); name != "" {
		if c.IsSet(flagGoal) || c.IsSet(flagStart) {
			return "", motionplan.Query{}, errors.Errorf("--%s cannot be combined with --%s or --%s", flagQuery, flagStart, flagGoal)
		}
		qc, ok := s.cfg.FindQuery(name)
		if !ok {
			return "", motionplan.Query{}, errors.Errorf("no query named %q in config", name)
		}
		return qc.Name, qc.Query(), nil
	}
	if !c.IsSet(flagGoal) {
		return "", motionplan.Query{}, errors.Errorf("either --%s or --%s is required", flagGoal, flagQuery)
	}
	start, err := parsePose(c.String(flagStart))
	if err != nil {
		return "", motionplan.Query{}, errors.Wrapf(err, "--%s", flagStart)
	}
	goal, err := parsePose(c.String(flagGoal))
	if err != nil {
		return "", motionplan.Query{}, errors.Wrapf(err, "--%s", flagGoal)
	}
	return "", motionplan.Query{Start: start, Goal: goal}, nil
}

// parsePose reads "x,y,degrees". The heading may be left out and defaults to 0.
func parsePose(s string) (spatialmath.Pose, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return spatialmath.Pose{}, errors.Errorf("pose %q must look like X,Y,DEGREES", s)
	}
	vals := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return spatialmath.Pose{}, errors.Wrapf(err, "pose %q", s)
		}
		vals[i] = v
	}
	pose := config.PoseConfig{X: vals[0], Y: vals[1], TH: vals[2]}.Pose()
	if !pose.IsFinite() {
		return spatialmath.Pose{}, errors.Wrapf(motionplan.ErrNonFinitePose, "pose %q", s)
	}
	return pose, nil
}
