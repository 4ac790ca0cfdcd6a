// Command hlist browses an item tree in the terminal. The tree is read from a
// JSON or YAML file or generated.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/config"
	"github.com/ayn2op/hlist/engine"
	"github.com/ayn2op/hlist/internal/fixture"
	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type options struct {
	configPath string
	itemsPath  string
	roots      int
	fanout     int
	depth      int
	groupSize  int
	autoHeight bool
	pageSize   int
	selection  string
	checkboxes bool
	watch      bool
	logFile    string
	verbosity  int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "hlist [flags]",
		Short: "Browse a hierarchical list in the terminal",
		Long: `Browse a hierarchical list in the terminal.

Examples:
  hlist --rows 1000 --depth 3            # generated tree
  hlist --items tree.yaml --watch        # reload tree.yaml when it changes
  hlist --rows 200 --groups 20 --page-size 50 --selection multi`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	flags.StringVar(&opts.itemsPath, "items", "", "JSON or YAML file with the item tree")
	flags.IntVar(&opts.roots, "rows", 100, "number of generated top level items")
	flags.IntVar(&opts.fanout, "fanout", 4, "children per generated folder")
	flags.IntVar(&opts.depth, "depth", 3, "levels of the generated tree")
	flags.IntVar(&opts.groupSize, "groups", 0, "group generated top level items in groups of this size")
	flags.BoolVar(&opts.autoHeight, "auto-height", false, "wrap rows and measure their height")
	flags.IntVar(&opts.pageSize, "page-size", 0, "rows per page, 0 disables pagination")
	flags.StringVar(&opts.selection, "selection", "", "selection mode: none, single or multi")
	flags.BoolVar(&opts.checkboxes, "checkboxes", false, "show checkboxes")
	flags.BoolVar(&opts.watch, "watch", false, "reload --items when the file changes")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.IntVar(&opts.verbosity, "v", 0, "log verbosity")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	log, closeLog, err := newLogger(opts.logFile, opts.verbosity)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg, opts)

	if opts.watch && opts.itemsPath == "" {
		return errors.New("--watch needs --items")
	}

	e, title, err := buildEngine(cfg, opts, log)
	if err != nil {
		return err
	}

	list := hlist.NewTreeList(e)
	if err := cfg.Apply(list); err != nil {
		log.Info("ignored config values", "reason", err.Error())
	}
	v := newView(list, title, cfg)
	e.SetSelectionChangedFunc(func(ids []string) {
		log.V(1).Info("selection changed", "count", len(ids))
		v.updateTitle()
	})
	e.SetFolderToggledFunc(func(node *engine.Node, expanded bool) {
		log.V(2).Info("folder toggled", "id", node.ID, "expanded", expanded)
	})
	e.SetPageChangedFunc(func(page int) {
		log.V(2).Info("page changed", "page", page)
	})

	app := hlist.NewApplication().SetLogger(log.WithName("app")).SetRoot(v)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		if err := app.Run(); err != nil {
			return err
		}
		return errQuit
	})
	g.Go(func() error {
		<-ctx.Done()
		app.QueueEvent(tcell.NewEventInterrupt(app.Stop))
		return nil
	})
	if opts.watch {
		g.Go(func() error {
			return watchItems(ctx, opts.itemsPath, log.WithName("watch"), func(doc fixture.Document) {
				// Events are dropped once the application stopped.
				reload := func() {
					doc.Replace(e)
					v.updateTitle()
				}
				if !app.QueueEvent(tcell.NewEventInterrupt(reload)) {
					log.V(1).Info("reload dropped")
				}
			})
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// errQuit ends the group when the user quits.
var errQuit = errors.New("quit")

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// applyFlags lets flags given on the command line override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) {
	flags := cmd.Flags()
	if flags.Changed("auto-height") {
		cfg.List.RowHeight.Auto = opts.autoHeight
		cfg.List.RowHeight.Lines = max(cfg.List.RowHeight.Lines, 1)
	}
	if flags.Changed("page-size") {
		cfg.List.PageSize = max(opts.pageSize, 0)
	}
	if flags.Changed("selection") {
		cfg.List.Selection = opts.selection
	}
	if flags.Changed("checkboxes") {
		cfg.List.Checkboxes = opts.checkboxes
	}
}

// buildEngine creates the engine from the config and either the items file
// or a generated tree. It returns the list title.
func buildEngine(cfg config.Config, opts options, log logr.Logger) (*engine.Engine, string, error) {
	engineOpts := append(cfg.List.EngineOptions(), engine.WithLogger(log.WithName("engine")))
	if opts.itemsPath != "" {
		doc, err := fixture.Load(opts.itemsPath)
		if err != nil {
			return nil, "", err
		}
		return engine.New(append(engineOpts, doc.Options()...)...), filepath.Base(opts.itemsPath), nil
	}

	title := fmt.Sprintf("%d generated items", fixture.Count(opts.roots, opts.fanout, opts.depth))
	if opts.groupSize > 0 {
		groups := fixture.GenerateGroups(opts.roots, opts.fanout, opts.depth, opts.groupSize)
		return engine.New(append(engineOpts, engine.WithGroups(groups))...), title, nil
	}
	items := fixture.Generate(opts.roots, opts.fanout, opts.depth)
	return engine.New(append(engineOpts, engine.WithItems(items))...), title, nil
}

// newLogger returns a logger writing to path. The terminal belongs to the UI,
// so without a path logs are discarded.
func newLogger(path string, verbosity int) (logr.Logger, func(), error) {
	if path == "" {
		return logr.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("opening log file: %w", err)
	}
	log := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(f, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(f, args)
	}, funcr.Options{LogTimestamp: true, Verbosity: verbosity})
	return log, func() { _ = f.Close() }, nil
}
