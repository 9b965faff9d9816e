package tre

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/arthur-debert/tre/internal/version"
	"github.com/arthur-debert/tre/pkg/alias"
	"github.com/arthur-debert/tre/pkg/config"
	"github.com/arthur-debert/tre/pkg/errors"
	"github.com/arthur-debert/tre/pkg/filesystem"
	"github.com/arthur-debert/tre/pkg/logging"
	"github.com/arthur-debert/tre/pkg/lscolors"
	"github.com/arthur-debert/tre/pkg/render"
	"github.com/arthur-debert/tre/pkg/shell"
	"github.com/arthur-debert/tre/pkg/tree"
	"github.com/arthur-debert/tre/pkg/types"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// listOptions holds the root command flags. Only flags the user actually
// set override the loaded configuration.
type listOptions struct {
	configFile  string
	all         bool
	directories bool
	limit       int
	color       string
	edit        bool
	editor      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		opts      listOptions
	)

	rootCmd := &cobra.Command{
		Use:     "tre [path]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, &opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.all, "all", "a", false, MsgFlagAll)
	flags.BoolVarP(&opts.directories, "directories", "d", false, MsgFlagDirectories)
	flags.IntVarP(&opts.limit, "limit", "L", 0, MsgFlagLimit)
	flags.StringVarP(&opts.color, "color", "c", "auto", MsgFlagColor)
	flags.BoolVarP(&opts.edit, "edit", "e", false, MsgFlagEdit)
	flags.StringVarP(&opts.editor, "editor", "E", "", MsgFlagEditor)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(&opts))
	rootCmd.AddCommand(newSnippetCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tre version %s\n", version.Version)
			if version.Commit != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", version.Date)
			}
		},
	}
}

func newConfigCmd(opts *listOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}
			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			data, err := cfg.TOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newSnippetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "snippet [shell]",
		Short:     MsgSnippetShort,
		Long:      MsgSnippetLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shell.Supported(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := shell.DetectShell(os.Getenv, runtime.GOOS == "windows")
			if len(args) == 1 {
				name = args[0]
			}
			snippet, err := shell.Snippet(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		ConfigFile: path,
		Required:   path != "",
	})
}

// apply overrides cfg with the flags set on the command line
func (o *listOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("all") {
		cfg.Output.All = o.all
	}
	if flags.Changed("directories") {
		cfg.Output.Directories = o.directories
	}
	if flags.Changed("limit") {
		cfg.Output.Limit = o.limit
	}
	if flags.Changed("color") {
		if _, err := render.ParseColorChoice(o.color); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrInvalidColor, o.color)
		}
		cfg.Output.Color = o.color
	}
	if flags.Changed("editor") {
		cfg.Alias.Editor = o.editor
	}
	return cfg.Validate()
}

func runList(cmd *cobra.Command, args []string, opts *listOptions) error {
	logger := logging.GetLogger("cmd.tre")
	defer logging.LogOperationStart(logger, "list")()

	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if err := opts.apply(cmd, cfg); err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrResolvePath, root)
	}

	fsys := filesystem.NewOS()
	entries, err := tree.Walk(fsys, absRoot, tree.Options{
		All:             cfg.Output.All,
		DirectoriesOnly: cfg.Output.Directories,
		MaxDepth:        cfg.Output.Limit,
		RootName:        root,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	profile := outputProfile(out, cfg.ColorChoice())
	var lookup types.StyleLookup
	if profile != termenv.Ascii {
		lookup = lscolors.FromEnv(os.Getenv, fsys)
	}
	logger.Debug().
		Str("root", absRoot).
		Int("entries", len(entries)).
		Str("profile", render.ProfileName(profile)).
		Msg("Rendering entries")

	render.New(out, profile, lookup).PrintEntries(entries, opts.edit)

	if opts.edit {
		platform := types.DetectPlatform(runtime.GOOS)
		env := config.ResolveEnvironment(platform, os.LookupEnv)
		editor := resolveEditor(cfg.Alias.Editor, os.Getenv)
		alias.New(platform, env, fsys, cmd.ErrOrStderr()).CreateEditAliases(editor, entries)
	}
	return nil
}

// outputProfile detects the color profile for out. Writers that are not
// files only get colors when they were explicitly asked for.
func outputProfile(out io.Writer, choice render.ColorChoice) termenv.Profile {
	if f, ok := out.(*os.File); ok {
		return render.DetectProfile(f, choice)
	}
	if choice == render.ColorAlways {
		return termenv.ANSI
	}
	return termenv.Ascii
}

// resolveEditor falls back to $EDITOR when neither the flag nor the config
// file name a program. An empty result makes the aliases use the platform
// opener.
func resolveEditor(configured string, getenv func(string) string) string {
	if configured != "" {
		return configured
	}
	return getenv("EDITOR")
}
