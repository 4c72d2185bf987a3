package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind        string
	clueMode    string
	finalAnswer string
	port        int
	prefix      string
	profile     bool
	readyLevel  int
	tlsCert     string
	tlsKey      string
	verbose     bool
	version     bool
}

const (
	ClueModeShared     = "shared"
	ClueModeIndividual = "individual"
)

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.clueMode != ClueModeShared && c.clueMode != ClueModeIndividual {
		return fmt.Errorf("invalid clue mode (must be %q or %q): %q", ClueModeShared, ClueModeIndividual, c.clueMode)
	}
	if c.finalAnswer == "" {
		return errors.New("final answer must not be empty")
	}
	if c.readyLevel < 1 {
		return fmt.Errorf("invalid ready level (must be at least 1): %d", c.readyLevel)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CLUEHUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "cluehunt",
		Short:         "Coordination server for a cooperative riddle-hunting exploration game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: CLUEHUNT_BIND)")
	fs.StringVar(&cfg.clueMode, "clue-mode", ClueModeShared, "clue pool model, shared or individual (env: CLUEHUNT_CLUE_MODE)")
	fs.StringVar(&cfg.finalAnswer, "final-answer", "ombre", "answer to the final riddle (env: CLUEHUNT_FINAL_ANSWER)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: CLUEHUNT_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: CLUEHUNT_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: CLUEHUNT_PROFILE)")
	fs.IntVar(&cfg.readyLevel, "ready-level", 3, "solved riddle count at which a participant counts as ready (env: CLUEHUNT_READY_LEVEL)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: CLUEHUNT_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: CLUEHUNT_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: CLUEHUNT_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: CLUEHUNT_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("cluehunt v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
