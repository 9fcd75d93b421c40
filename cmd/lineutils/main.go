package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/midbel/classics"
)

// version is set via ldflags.
var version = "dev"

func main() {
	sio := classics.Stdio{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(newApp(sio).run(os.Args[1:]))
}

type app struct {
	classics.Stdio
	config *viper.Viper
	code   int
}

func newApp(sio classics.Stdio) *app {
	return &app{
		Stdio:  sio,
		config: viper.New(),
	}
}

func (a *app) run(args []string) int {
	if args == nil {
		args = []string{}
	}
	root := a.root()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(a.Stderr, err)
		return classics.ExitConfig
	}
	return a.code
}

func (a *app) root() *cobra.Command {
	root := cobra.Command{
		Use:           "lineutils <command> [args...]",
		Short:         "nl, tail and wc in a single binary",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			a.code = classics.Exec(args[0], args[1:], a.options(args[0])...)
			return nil
		},
	}
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	for _, name := range classics.Commands() {
		c, err := classics.Lookup(name)
		if err != nil {
			continue
		}
		root.AddCommand(a.command(name, c))
	}
	return &root
}

func (a *app) command(name string, c classics.Command) *cobra.Command {
	return &cobra.Command{
		Use:                c.Usage,
		Short:              c.Short,
		Long:               c.Help,
		DisableFlagParsing: true,
		Run: func(_ *cobra.Command, args []string) {
			a.code = classics.Exec(name, args, a.options(name)...)
		},
	}
}

func (a *app) options(name string) []classics.Option {
	options := []classics.Option{
		classics.WithStdin(a.Stdin),
		classics.WithStdout(a.Stdout),
		classics.WithStderr(a.Stderr),
	}
	if name == "tail" {
		str := a.config.GetString("tail.lines")
		options = append(options, func(c *classics.Command) error {
			n, err := strconv.Atoi(str)
			if err != nil {
				return fmt.Errorf("%w: %s", classics.ErrInvalidLines, str)
			}
			return classics.WithLines(n)(c)
		})
	}
	return options
}

func (a *app) initConfig() error {
	a.config.SetDefault("tail.lines", classics.DefaultLines)
	a.config.SetEnvPrefix("LINEUTILS")
	a.config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.config.AutomaticEnv()

	if file := a.config.GetString("config"); file != "" {
		a.config.SetConfigFile(file)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.config.AddConfigPath(filepath.Join(home, ".config", "lineutils"))
		}
		a.config.AddConfigPath(".")
		a.config.SetConfigName("config")
	}
	err := a.config.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("lineutils: config: %w", err)
}
