// Package cli contains the carplan command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	flagConfig      = "config"
	flagDebug       = "debug"
	flagModel       = "model"
	flagRadius      = "turning-radius"
	flagStep        = "step-size"
	flagFamilies    = "families"
	flagForwardOnly = "forward-only"
	flagThreads     = "threads"
	flagStart       = "start"
	flagGoal        = "goal"
	flagQuery       = "query"
	flagAll         = "all"
	flagFormat      = "format"
	flagOutput      = "output"
	flagCount       = "count"
	flagSeed        = "seed"
	flagExtent      = "extent"
	flagHistogram   = "histogram"

	formatTable = "table"
	formatCSV   = "csv"
)

var vehicleFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    flagModel,
		Aliases: []string{"m"},
		Usage:   "vehicle model: reeds-shepp, dubins or diff-drive",
	},
	&cli.Float64Flag{
		Name:    flagRadius,
		Aliases: []string{"r"},
		Usage:   "minimum turning radius",
	},
	&cli.Float64Flag{
		Name:  flagStep,
		Usage: "distance between sampled waypoints",
	},
	&cli.StringSliceFlag{
		Name:  flagFamilies,
		Usage: "only search these path words, e.g. L+S+L+",
	},
	&cli.BoolFlag{
		Name:  flagForwardOnly,
		Usage: "never use reverse gear",
	},
}

var queryFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  flagStart,
		Value: "0,0,0",
		Usage: "start pose as `X,Y,DEGREES`",
	},
	&cli.StringFlag{
		Name:  flagGoal,
		Usage: "goal pose as `X,Y,DEGREES`",
	},
	&cli.StringFlag{
		Name:    flagQuery,
		Aliases: []string{"q"},
		Usage:   "use the named query of the config file",
	},
}

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, group := range groups {
		flags = append(flags, group...)
	}
	return flags
}

var app = &cli.App{
	Name:            "carplan",
	Usage:           "plan shortest paths for car-like vehicles",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "load configuration from `FILE`",
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "plan",
			Usage:     "print the shortest path between two poses",
			UsageText: "carplan plan --goal X,Y,DEGREES [other options]",
			Flags: withFlags(vehicleFlags, queryFlags, []cli.Flag{
				&cli.BoolFlag{
					Name:  flagAll,
					Usage: "list every feasible candidate, shortest first",
				},
			}),
			Action: PlanAction,
		},
		{
			Name:  "sample",
			Usage: "print the waypoints of the shortest path",
			Flags: withFlags(vehicleFlags, queryFlags, []cli.Flag{
				&cli.StringFlag{
					Name:  flagFormat,
					Value: formatTable,
					Usage: "output format: table or csv",
				},
			}),
			Action: SampleAction,
		},
		{
			Name:  "render",
			Usage: "draw the shortest path to a png",
			Flags: withFlags(vehicleFlags, queryFlags, []cli.Flag{
				&cli.PathFlag{
					Name:     flagOutput,
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "png file to write",
				},
			}),
			Action: RenderAction,
		},
		{
			Name:  "bench",
			Usage: "plan many random queries and summarize the results",
			Flags: withFlags(vehicleFlags, []cli.Flag{
				&cli.IntFlag{
					Name:  flagCount,
					Value: 1000,
					Usage: "number of random queries",
				},
				&cli.Int64Flag{
					Name:  flagSeed,
					Value: 1,
					Usage: "random seed",
				},
				&cli.Float64Flag{
					Name:  flagExtent,
					Value: 10,
					Usage: "queries are drawn from a square of this half width",
				},
				&cli.IntFlag{
					Name:  flagThreads,
					Usage: "number of queries planned at once",
				},
				&cli.PathFlag{
					Name:  flagHistogram,
					Usage: "write a histogram of path lengths to `FILE`",
				},
			}),
			Action: BenchAction,
		},
		{
			Name:   "families",
			Usage:  "list the path words of a vehicle model",
			Flags:  vehicleFlags,
			Action: FamiliesAction,
		},
		{
			Name:   "print-config",
			Usage:  "print the effective configuration as yaml",
			Flags:  vehicleFlags,
			Action: PrintConfigAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
