package config

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

const HelpMessage = `
SpaceX Launch Records Dashboard

Usage:
  dashboard [--mode=dashboard-service] [--config-path=config.yaml]
  dashboard --help

Options:
  --help         Show this screen.
  --mode         Application mode. Only dashboard-service is supported.
  --config-path  Path to the config yaml file. A missing file is ignored and
                 environment variables with defaults are used instead.

Every option of the config file can be overridden with an environment
variable: nested keys are joined with "_" and upper-cased, e.g.
http.port -> HTTP_PORT, dataset.source -> DATASET_SOURCE.
`

const secretMask = "******"

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig writes the effective configuration as YAML to stdout with
// every password replaced by a mask.
func PrintConfig(cfg *Config) {
	out, err := MaskedYAML(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to print config: %v\n", err)
		return
	}
	fmt.Printf("Configuration:\n%s\n", out)
}

// MaskedYAML renders cfg with secrets masked.
func MaskedYAML(cfg *Config) ([]byte, error) {
	masked := *cfg
	maskSecrets(reflect.ValueOf(&masked).Elem())
	return yaml.Marshal(masked)
}

func maskSecrets(v reflect.Value) {
	t := v.Type()
	for i := range t.NumField() {
		fv := v.Field(i)
		switch {
		case fv.Kind() == reflect.Struct:
			maskSecrets(fv)
		case fv.Kind() == reflect.String && isSecret(t.Field(i).Name) && fv.String() != "":
			fv.SetString(secretMask)
		}
	}
}

func isSecret(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "password") || strings.Contains(name, "secret")
}
