package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/carplan/config"
	"go.viam.com/carplan/motionplan"
	"go.viam.com/carplan/render"
	"go.viam.com/carplan/utils"
)

var bold = color.New(color.Bold).SprintFunc()

func newTable(c *cli.Context) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(c.App.Writer)
	t.SetStyle(table.StyleLight)
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// PlanAction prints the shortest path of a query, element by element.
func PlanAction(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	name, q, err := s.query(c)
	if err != nil {
		return err
	}
	if c.Bool(flagAll) {
		return printCandidates(c, s, q)
	}

	plan, err := s.planner.Plan(q.Start, q.Goal)
	if err != nil {
		return err
	}
	if name != "" {
		fmt.Fprintf(c.App.Writer, "query %s\n", name)
	}
	if len(plan.Path) == 0 {
		fmt.Fprintf(c.App.Writer, "already at goal %v\n", plan.Goal)
		return nil
	}

	t := newTable(c)
	t.AppendHeader(table.Row{"#", "element", "param", "length"})
	for i, e := range plan.Path {
		t.AppendRow(table.Row{i, e.String(), formatFloat(e.Param), formatFloat(e.Param * plan.TurningRadius)})
	}
	t.AppendFooter(table.Row{"", plan.Path.Word(), "", formatFloat(plan.Length())})
	t.Render()
	fmt.Fprintf(c.App.Writer, "%s %s from %v to %v, %d cusps, ends at %v\n",
		plan.Model, bold(plan.Path.Word()), plan.Start, plan.Goal, plan.Cusps(), plan.End())
	return nil
}

func printCandidates(c *cli.Context, s *session, q motionplan.Query) error {
	cands, err := s.planner.AllPaths(q.Start, q.Goal)
	if err != nil {
		return err
	}
	if len(cands) == 0 {
		return motionplan.NewPlannerFailedError(s.cfg.Vehicle.Model, q.Start, q.Goal)
	}
	t := newTable(c)
	t.AppendHeader(table.Row{"family", "symmetry", "word", "length"})
	for _, cand := range cands {
		t.AppendRow(table.Row{
			cand.Family,
			cand.Symmetry.String(),
			cand.Path.Word(),
			formatFloat(cand.Path.WorldLength(s.cfg.Vehicle.TurningRadius)),
		})
	}
	t.Render()
	return nil
}

// SampleAction prints the waypoints of the shortest path of a query.
func SampleAction(c *cli.Context) error {
	format := c.String(flagFormat)
	if format != formatTable && format != formatCSV {
		return errors.Errorf("unknown --%s %q, want %s or %s", flagFormat, format, formatTable, formatCSV)
	}
	s, err := newSession(c)
	if err != nil {
		return err
	}
	_, q, err := s.query(c)
	if err != nil {
		return err
	}
	plan, err := s.planner.Plan(q.Start, q.Goal)
	if err != nil {
		return err
	}

	t := newTable(c)
	t.AppendHeader(table.Row{"x", "y", "th", "gear"})
	for i, pose := range plan.Poses {
		t.AppendRow(table.Row{
			formatFloat(pose.X()),
			formatFloat(pose.Y()),
			formatFloat(utils.RadToDeg(pose.Theta())),
			plan.Gears[i].String(),
		})
	}
	if format == formatCSV {
		t.RenderCSV()
		return nil
	}
	t.Render()
	return nil
}

// RenderAction draws the shortest path of a query to a png file.
func RenderAction(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	_, q, err := s.query(c)
	if err != nil {
		return err
	}
	plan, err := s.planner.Plan(q.Start, q.Goal)
	if err != nil {
		return err
	}
	img, err := render.DrawPlan(plan, s.cfg.Render)
	if err != nil {
		return err
	}
	out := c.Path(flagOutput)
	if err := render.SavePNG(out, img); err != nil {
		return err
	}
	s.logger.Infow("wrote plan", "path", out, "word", plan.Path.Word(), "length", plan.Length())
	return nil
}

// FamiliesAction lists the path words the configured vehicle searches.
func FamiliesAction(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	t := newTable(c)
	t.AppendHeader(table.Row{"#", "family"})
	for i, name := range s.planner.Families() {
		t.AppendRow(table.Row{i, name})
	}
	t.Render()
	return nil
}

// PrintConfigAction writes the effective configuration, after flags are applied, as yaml.
func PrintConfigAction(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	return config.Write(c.App.Writer, s.cfg)
}
