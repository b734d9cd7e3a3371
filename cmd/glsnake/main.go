package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"glsnake/internal/catalog"
	"glsnake/internal/snake"
	"glsnake/internal/viewer"
	"glsnake/internal/viewer/desktop"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg := viewer.DefaultConfig()
	cfg.ApplyEnv(nil)

	root := &cobra.Command{
		Use:          "glsnake",
		Short:        "Rubik's Snake viewer",
		Long:         "glsnake morphs a 24-prism Rubik's Snake between shapes from a model catalog.\n\nKeys: " + viewer.Help(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.ModelFile, "models", cfg.ModelFile, "model file (default: built-in models, or $"+viewer.EnvModels+")")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	f := root.Flags()
	f.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "front end: gl or tui")
	f.Float64Var(&cfg.Velocity, "velocity", cfg.Velocity, "quarter turns per second")
	f.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "morph strategy: all, one or random")
	f.StringVar(&cfg.Scheme, "scheme", cfg.Scheme, "colour scheme: classified, authentic or logo")
	f.DurationVar(&cfg.StaticTime, "static-time", cfg.StaticTime, "hold time between automatic morphs")
	f.BoolVar(&cfg.AutoCycle, "auto", cfg.AutoCycle, "morph to a random model after each hold")
	f.BoolVar(&cfg.Explode, "explode", cfg.Explode, "start with the prisms pulled apart")
	f.BoolVar(&cfg.Wireframe, "wireframe", cfg.Wireframe, "start in wireframe")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (or $"+viewer.EnvSeed+")")
	f.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	f.IntVar(&cfg.Height, "height", cfg.Height, "window height")

	root.AddCommand(modelsCmd(&cfg), classifyCmd())
	return root
}

func run(cfg viewer.Config) error {
	log, err := viewer.NewLogger(cfg.LogLevel, nil)
	if err != nil {
		return err
	}
	ctrl, err := viewer.NewController(cfg, log)
	if err != nil {
		return err
	}
	view := viewer.NewView(cfg)
	log.WithField("frontend", cfg.Frontend).WithField("seed", cfg.Seed).Debug("starting")

	switch cfg.Frontend {
	case viewer.FrontendGL:
		return desktop.Run(cfg, ctrl, view, log)
	case viewer.FrontendTUI:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("terminal init: %w", err)
		}
		defer screen.Fini()
		return viewer.NewTerminal(screen, ctrl, view).Run(log)
	}
	return fmt.Errorf("%w %q", viewer.ErrUnknownFrontend, cfg.Frontend)
}

func modelsCmd(cfg *viewer.Config) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "models",
		Short: "print the model catalog",
		Long:  "prints the catalog in model file format, each line annotated with its classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := viewer.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cat, err := viewer.LoadCatalog(*cfg, log)
			if err != nil {
				return err
			}
			if plain {
				return catalog.Write(cmd.OutOrStdout(), cat)
			}
			for _, m := range cat.Models() {
				line := catalog.Format(m)
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s # %s\n", line, viewer.ClassText(snake.Classify(m.Shape)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "omit classification comments")
	return cmd
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify SHAPE",
		Short: "classify a shape given as 23 joint characters (Z L P R or 0-3)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := snake.ParseShape(strings.Join(args, ""))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", shape, viewer.ClassText(snake.Classify(shape)))
			return nil
		},
	}
}
