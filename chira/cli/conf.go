package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/chira"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
)

// defaults for keys which have no command line flag
var defaults = map[string]interface{}{
	"load.maxdepth": DefaultMaxDepth,
	"repl.prompt":   "",
}

func confmapDefaults() koanf.Provider {
	return confmap.Provider(defaults, ".")
}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
//
// Configuration is merged from defaults, a configuration file and command line
// flags, later sources overriding earlier ones.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate chira configuration with an application-key of 'CHIRA'
	konf := koanfadapter.New(k, "CHIRA", []string{"nt"})
	konf.InitDefaults()
	if err := k.Load(confmapDefaults(), nil); err != nil {
		tracing.Errorf(err.Error())
		chira.Exit(1)
	}
	paths := locateAppPaths()
	if path := configFile(paths); path != "" {
		if err := mergeConfigFile(k, path); err != nil {
			tracing.Errorf(err.Error())
			chira.Exit(1)
		}
	}
	if err := mergeFlags(konf, rootCmd.PersistentFlags()); err != nil {
		tracing.Errorf(err.Error())
		chira.Exit(1)
	}
	if err := configureTracing(konf, paths); err != nil {
		tracing.Errorf(err.Error())
		chira.Exit(1)
	}
	chira.Configuration = k // push the configuration to app-global scope
}

// configFile returns the configuration file given by flag --config or, if
// there is none, the one found in the application's configuration directory.
func configFile(paths AppPaths) string {
	if path, _ := rootCmd.PersistentFlags().GetString("config"); path != "" {
		return path
	}
	if paths == nil {
		return ""
	}
	return paths.ConfigFile()
}

// mergeConfigFile loads a YAML or TOML file into k, depending on the file's
// extension.
func mergeConfigFile(k *koanf.Koanf, path string) error {
	tracing.Infof("reading configuration from %s", path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("cannot read configuration %q: %w", path, err)
		}
		return nil
	case ".toml":
		var m map[string]interface{}
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return fmt.Errorf("cannot read configuration %q: %w", path, err)
		}
		return k.Load(confmap.Provider(m, "."), nil)
	}
	return fmt.Errorf("configuration %q: unsupported format, use YAML or TOML", path)
}

func mergeFlags(konf *koanfadapter.KConf, flags *pflag.FlagSet) error {
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf, paths AppPaths) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	if dest := konf.GetString("tracing.destination"); dest != "" && paths != nil {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			if err := os.MkdirAll(paths.LogDir(), 0o755); err != nil {
				return fmt.Errorf("cannot create log directory: %w", err)
			}
			dest = "file://" + filepath.Join(paths.LogDir(), dest)
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof(rootCmd.Long)
	return nil
}

func locateAppPaths() AppPaths {
	paths, err := DefaultAppPaths("CHIRA")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
