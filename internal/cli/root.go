package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/resfs/errors"
	"github.com/jmgilman/go/resfs/filesystem"
	"github.com/jmgilman/go/resfs/logging"
	"github.com/jmgilman/go/resfs/platform"
	"github.com/jmgilman/go/resfs/platform/billy"
	"github.com/jmgilman/go/resfs/roots"
)

// newPlatform returns the platform commands operate on. Tests replace it.
var newPlatform = func() platform.Platform {
	return billy.NewLocal()
}

type globalFlags struct {
	config   string
	roots    []string
	logLevel string
	json     bool
}

// NewRootCommand builds the resfs command tree.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "resfs",
		Short: "Resolve and inspect resource files by category",
		Long: `resfs resolves resource names against category roots (shaders,
textures, meshes, fonts and so on) and inspects the files they point to.

Roots come from the built-in defaults, optionally adjusted by a YAML
configuration file (--config) and by --root category=dir overrides.

Exit Codes:
  0  - Success
  1  - General error
  2  - Invalid input or configuration
  3  - File not found
  4  - Panic
  N  - Exit code of the program started by "resfs run"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.config, "config", "", "YAML roots configuration file")
	pf.StringArrayVar(&g.roots, "root", nil, "Override a category root (category=dir, repeatable)")
	pf.StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.BoolVar(&g.json, "json", false, "Emit JSON output")

	root.AddCommand(
		newResolveCmd(g),
		newStatCmd(g),
		newRootsCmd(g),
		newLsCmd(g),
		newRunCmd(g),
	)
	return root
}

// Execute runs the root command against os.Args and reports failures on
// stderr. The returned error carries the exit code for ExitCodeForError.
func Execute() error {
	cmd := NewRootCommand()
	err := cmd.Execute()
	if err != nil {
		asJSON, _ := cmd.PersistentFlags().GetBool("json")
		reportError(cmd.ErrOrStderr(), err, asJSON)
	}
	return err
}

func reportError(w io.Writer, err error, asJSON bool) {
	var exit *ExitError
	if errors.As(err, &exit) {
		return
	}
	if asJSON {
		_ = json.NewEncoder(w).Encode(errors.ToJSON(err))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// fileSystem builds the facade from the global flags.
func (g *globalFlags) fileSystem(cmd *cobra.Command) (*filesystem.FileSystem, error) {
	level, err := logging.ParseLevel(g.logLevel)
	if err != nil {
		return nil, err
	}
	log := logging.New(logging.Config{
		Level:  level,
		JSON:   g.json,
		Output: cmd.ErrOrStderr(),
	})

	p := newPlatform()
	table := roots.New()

	if g.config != "" {
		cfg, err := roots.LoadConfig(p, g.config)
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(table); err != nil {
			return nil, err
		}
	}

	for _, kv := range g.roots {
		cat, dir, ok := strings.Cut(kv, "=")
		if !ok || cat == "" {
			return nil, errors.Newf(errors.CodeInvalidInput, "invalid --root %q, expected category=dir", kv)
		}
		if err := table.SetRootPath(roots.Category(cat), dir); err != nil {
			return nil, err
		}
	}

	return filesystem.New(p, filesystem.WithRoots(table), filesystem.WithLogger(log)), nil
}

func (g *globalFlags) print(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if g.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(out)
	return nil
}
