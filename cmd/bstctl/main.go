package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/jrhy/bst"
	"github.com/jrhy/bst/logger"
)

func main() {
	if err := run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var globalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "debug",
		Usage:   "trace every insert and delete",
		EnvVars: []string{"BSTCTL_DEBUG"},
	},
	&cli.BoolFlag{
		Name:    "no-color",
		Usage:   "disable colored output",
		EnvVars: []string{"BSTCTL_NO_COLOR"},
	},
	&cli.BoolFlag{
		Name:    "numeric",
		Usage:   "parse keys as 64-bit integers instead of strings",
		EnvVars: []string{"BSTCTL_NUMERIC"},
	},
	&cli.IntFlag{
		Name:    "max-trees",
		Usage:   "number of named trees kept in memory",
		Value:   16,
		EnvVars: []string{"BSTCTL_MAX_TREES"},
	},
}

func run(args []string) error {

	app := cli.App{
		Name:    "bstctl",
		Usage:   "build and query binary search trees from scripts",
		Version: versioninfo.Short(),
		Flags:   globalFlags,
		Before: func(cctx *cli.Context) error {
			if cctx.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdExec,
		cmdDemo,
	}
	return app.Run(args)
}

var cmdExec = &cli.Command{
	Name:      "exec",
	Usage:     "run script files, or stdin when none are given",
	ArgsUsage: "[script...]",
	Action:    runExec,
}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "build the example tree 5,3,8,1,4,7,9 and query it",
	Action: runDemo,
}

func runExec(cctx *cli.Context) error {
	r, closeLogger, err := setup(cctx)
	if err != nil {
		return err
	}
	defer closeLogger()

	paths := cctx.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, p := range paths {
		if err := runFile(r, p); err != nil {
			return err
		}
	}
	return nil
}

func runFile(r *runner, path string) error {
	if path == "-" {
		return r.runScript(os.Stdin, "<stdin>")
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return r.runScript(f, path)
}

func runDemo(cctx *cli.Context) error {
	r, closeLogger, err := setup(cctx)
	if err != nil {
		return err
	}
	defer closeLogger()
	r.echo = true
	return runDemoScript(r)
}

func setup(cctx *cli.Context) (*runner, func(), error) {
	var zl *zap.Logger
	var err error
	if cctx.Bool("debug") {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	cfg := config{
		Numeric:  cctx.Bool("numeric"),
		MaxTrees: cctx.Int("max-trees"),
		Options: bst.Options[string]{
			Logger: logger.NewZap(zl),
			Debug:  cctx.Bool("debug"),
		},
	}
	r, err := newRunner(cfg, os.Stdout)
	if err != nil {
		return nil, nil, err
	}
	return r, func() { _ = zl.Sync() }, nil
}
