package config

import (
	"errors"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultHoldingDir = "./fhcleanup_to_del/"
	EnvPrefix         = "FHCLEANUP"
)

type Config struct {
	Root       string
	Recursive  bool
	Workers    int
	HoldingDir string
	Purge      bool
	KeepNames  bool
	Verbosity  int
	TUI        bool
}

// BindFlags registers the command line flags on flags and binds them to v,
// which also resolves FHCLEANUP_* environment variables.
func BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.BoolP("incl-subdir", "r", false, "handle all subdirs recursively")
	flags.IntP("max-threads", "t", 0, "the maximum amount of worker threads to spawn to handle directories, defaults to the number of CPUs multiplied by four")
	flags.StringP("target-folder", "f", "", "the target directory to move files that should be deleted, defaults to `./fhcleanup_to_del/`")
	flags.BoolP("purge", "p", false, "delete matching files instantly instead of moving them to the target folder")
	flags.BoolP("keep-names", "n", false, "keep the original file names including timestamp")
	flags.CountP("verbose", "v", "verbose mode (-v, -vv, -vvv)")
	flags.Bool("tui", false, "show a live progress view")
	flags.String("config", "", "config file (default ./fhcleanup.yaml or $HOME/.config/fhcleanup/fhcleanup.yaml)")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

// Load resolves the configuration from flags, environment and an optional
// config file. args are the positional arguments; the first names the root.
func Load(v *viper.Viper, args []string) (Config, error) {
	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	if len(args) > 1 {
		return Config{}, errors.New("at most one root directory may be given")
	}

	cfg := Config{
		Root:       ".",
		Recursive:  v.GetBool("incl-subdir"),
		Workers:    v.GetInt("max-threads"),
		HoldingDir: strings.TrimSpace(v.GetString("target-folder")),
		Purge:      v.GetBool("purge"),
		KeepNames:  v.GetBool("keep-names"),
		Verbosity:  v.GetInt("verbose"),
		TUI:        v.GetBool("tui"),
	}
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		cfg.Root = args[0]
	}

	if v.IsSet("max-threads") && cfg.Workers <= 0 {
		return Config{}, errors.New("max-threads must be a positive integer")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU() * 4
	}

	if cfg.HoldingDir == "" {
		cfg.HoldingDir = DefaultHoldingDir
	}
	if !strings.HasSuffix(cfg.HoldingDir, "/") {
		cfg.HoldingDir += "/"
	}

	if cfg.Verbosity < 0 {
		cfg.Verbosity = 0
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper) error {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		return v.ReadInConfig()
	}

	v.SetConfigName("fhcleanup")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/fhcleanup")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}
