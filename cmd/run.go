package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/termcommander/internal/app"
	"github.com/abhisek/termcommander/internal/challenge"
	"github.com/abhisek/termcommander/internal/config"
	"github.com/abhisek/termcommander/internal/content"
	"github.com/abhisek/termcommander/internal/logging"
	"github.com/abhisek/termcommander/internal/lookup"
	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/rewards"
	"github.com/abhisek/termcommander/internal/store"
	"github.com/abhisek/termcommander/internal/tips"
	"github.com/abhisek/termcommander/internal/ui/console"
	"github.com/abhisek/termcommander/internal/ui/prompt"
)

// deps are the services shared by every command.
type deps struct {
	cfg       config.Config
	log       *zap.Logger
	store     *store.Store
	profile   *profile.Profile
	rewards   *rewards.Service
	catalog   *content.Catalog
	console   *console.Console
	term      *prompt.Terminal
	sessionID string

	closers []func() error
}

// setup loads configuration, opens the log and the store, and wires the
// services. Callers must Close the result.
func setup(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	d := &deps{cfg: cfg, sessionID: uuid.NewString()}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log, closeLog, err := logging.New(logging.Options{
		Dir:     cfg.LogDir,
		Debug:   cfg.Debug,
		Verbose: verbose || cfg.Debug,
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Logging disabled:", err)
		log = zap.NewNop()
	} else {
		d.closers = append(d.closers, closeLog)
	}
	d.log = log.With(zap.String("session", d.sessionID))

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.store = st
	d.closers = append(d.closers, st.Close)

	d.catalog, err = content.Load()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("load content: %w", err)
	}

	d.console = console.New(cmd.OutOrStdout())
	d.term = newTerminal(cmd)
	d.profile = profile.New(st.ProfileRepo())
	d.rewards = rewards.NewService(d.profile, d.console,
		rewards.WithEventRepo(st.EventRepo()),
		rewards.WithSessionID(d.sessionID),
		rewards.WithLogger(d.log),
	)
	d.log.Debug("session started", zap.String("db", dbPath))
	return d, nil
}

// Close releases the store and flushes the log, in reverse open order.
func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	d.closers = nil
	return errors.Join(errs...)
}

func (d *deps) lookup() *lookup.Service {
	return lookup.NewService(d.catalog, d.profile, d.rewards, d.console.Lookup(), d.log)
}

func (d *deps) engine() *challenge.Engine {
	return challenge.NewEngine(d.catalog, d.profile, d.rewards, d.term, d.console.Challenge(),
		challenge.WithDelay(d.cfg.PaceDelay()),
		challenge.WithLogger(d.log),
	)
}

func (d *deps) tips() *tips.Service {
	return tips.NewService(d.catalog, d.profile, d.console.Tips(), d.log)
}

// fixedOS returns the OS chosen with --os or TERMCOMMANDER_OS, or "" when
// neither is set.
func fixedOS(cmd *cobra.Command, cfg config.Config) (profile.OS, error) {
	v, _ := cmd.Flags().GetString("os")
	if v == "" {
		v = cfg.OS
	}
	if v == "" {
		return "", nil
	}
	return profile.ParseOS(v)
}

// resolveOS picks the OS for one-shot commands: the explicit choice, then
// the one saved by the last session, then the host OS.
func (d *deps) resolveOS(ctx context.Context, cmd *cobra.Command) (profile.OS, error) {
	chosen, err := fixedOS(cmd, d.cfg)
	if err != nil || chosen != "" {
		return chosen, err
	}
	saved, err := d.profile.OS(ctx)
	if err != nil {
		d.log.Warn("read saved os", zap.Error(err))
	}
	if saved.Valid() {
		return saved, nil
	}
	return hostOS(), nil
}

func hostOS() profile.OS {
	switch runtime.GOOS {
	case "windows":
		return profile.Windows
	case "darwin":
		return profile.Mac
	default:
		return profile.Linux
	}
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TERMCOMMANDER_DB from the config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func newTerminal(cmd *cobra.Command) *prompt.Terminal {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if in == os.Stdin && out == os.Stdout {
		return prompt.Stdio()
	}
	return prompt.New(in, out, false)
}

// runApp opens the store, builds dependencies, and launches the menu session.
func runApp(cmd *cobra.Command) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	fixed, err := fixedOS(cmd, d.cfg)
	if err != nil {
		return err
	}

	a := app.New(app.Deps{
		Profile:   d.profile,
		Rewards:   d.rewards,
		Lookup:    d.lookup(),
		Challenge: d.engine(),
		Tips:      d.tips(),
		Console:   d.console,
		Prompts:   d.term,
		Log:       d.log,
		FixedOS:   fixed,
	})
	return a.Run(cmd.Context())
}
