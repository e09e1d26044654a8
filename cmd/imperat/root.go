package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/VelixDevelopments/Imperat-sub001"
	"github.com/VelixDevelopments/Imperat-sub001/completion"
	"github.com/VelixDevelopments/Imperat-sub001/logging"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

const programName = "imperat"

type options struct {
	config   string
	lang     string
	logLevel string
	user     string
	grants   []string
}

// errRejected is returned once the dispatcher already replied the failure to the console
var errRejected = errors.New("command failed")

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:           programName,
		Short:         "Server console driven by the imperat command dispatcher",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), o, in, out)
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&o.config, "config", "c", "", "YAML settings file")
	flags.StringVar(&o.lang, "lang", "", "language of error replies, e.g. de")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error, overrides the settings file")
	flags.StringVarP(&o.user, "user", "u", "console", "name of the command source")
	flags.StringSliceVarP(&o.grants, "grant", "g", []string{"*"}, "permissions held by the source, * grants all")

	root.AddCommand(
		newExecCmd(o, out),
		newShellCmd(o, in, out),
		newCommandsCmd(o, out),
		newCompleteCmd(o, out),
		newCompletionCmd(out),
	)

	return root
}

// setup builds the dispatcher serving the demo command set and the console issuing commands
func setup(o *options, out io.Writer) (*imperat.Dispatcher, *console, error) {
	srv := newServer()
	configs := []imperat.ConfigureDispatcherFunc{
		imperat.WithPermissionChecker(checkPermission),
	}
	if o.config != "" {
		configs = append(configs, imperat.WithSettingsFile(o.config))
	}
	if o.logLevel != "" {
		configs = append(configs, imperat.WithLogger(logging.New(logging.Options{Level: o.logLevel})))
	}
	if o.lang != "" {
		tag, err := language.Parse(o.lang)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid language %q: %w", o.lang, err)
		}
		configs = append(configs, imperat.WithLanguage(tag))
	}
	for _, cmd := range srv.commands() {
		configs = append(configs, imperat.WithCommand(cmd))
	}

	d, err := imperat.New(configs...)
	if err != nil {
		return nil, nil, err
	}
	srv.dispatcher = d

	return d, newConsole(o.user, out, o.grants...), nil
}

func newExecCmd(o *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line>",
		Short: "Run a single command line",
		Example: `  imperat exec rank addperm admin build.fly -d 1h
  imperat exec -- give alice diamond 3 -s`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, src, err := setup(o, out)
			if err != nil {
				return err
			}
			if err := d.Execute(cmd.Context(), src, strings.Join(args, " ")); err != nil {
				return errRejected
			}
			return nil
		},
	}
}

func newShellCmd(o *options, in io.Reader, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read command lines interactively with completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), o, in, out)
		},
	}
}

func newCommandsCmd(o *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the usages available to the source",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			d, src, err := setup(o, out)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, usageTable(d, src))
			return err
		},
	}
}

// newCompleteCmd answers the completion requests of the generated shell scripts. The words
// are the command line after the program name, the last one being completed.
func newCompleteCmd(o *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                completion.CompleteCommand,
		Hidden:             true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, words []string) error {
			d, src, err := setup(o, io.Discard)
			if err != nil {
				return err
			}
			for _, s := range complete(cmd.Context(), d, src, words) {
				if _, err := fmt.Fprintln(out, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func complete(ctx context.Context, d *imperat.Dispatcher, src imperat.Source, words []string) []string {
	if len(words) == 0 {
		words = []string{""}
	}
	if len(words) == 1 {
		s, _ := d.Suggest(ctx, src, words[0])
		return s
	}

	args := words[1:]
	index := len(args) - 1
	return d.SuggestAt(ctx, src, words[0], args, index, args[index])
}

func newCompletionCmd(out io.Writer) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:       "completion <shell>",
		Short:     "Generate the completion script for a shell",
		Args:      cobra.ExactArgs(1),
		ValidArgs: completion.Shells(),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := completion.NewManager(args[0], programName)
			if err != nil {
				return err
			}
			script := m.Generate()
			if !save {
				_, err = fmt.Fprint(out, script)
				return err
			}
			path, err := m.Save()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "completion script written to %s\n", path)
			return err
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "install the script in the shell's completion directory")

	return cmd
}
