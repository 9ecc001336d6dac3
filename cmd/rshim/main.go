// SPDX-License-Identifier: MIT

// Command rshim loads a JSON variable file and evaluates one R-style
// operation on a variable, printing the result as JSON.
//
//	rshim --vars data.json --var frame --op dim
//	rshim --vars data.json --var m --op subset --i 2 --j 1,3
//
// The log level comes from --log-level, then LOG_LEVEL, then the YAML
// config, then "info".
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bdlm/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rcompat/engine"
	"github.com/katalvlaran/rcompat/rio"
	"github.com/katalvlaran/rcompat/rshim"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// config is the optional YAML configuration file.
type config struct {
	LogLevel    string `yaml:"log_level"`
	LabelPrefix string `yaml:"label_prefix"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%-v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("rshim", pflag.ContinueOnError)
	varsPath := fs.String("vars", "", "JSON file holding the variables")
	name := fs.String("var", "", "variable to operate on")
	op := fs.String("op", "dim", "dim|length|names|nrow|ncol|which|whichmin|whichmax|subset")
	cfgPath := fs.String("config", "", "optional YAML config file")
	level := fs.String("log-level", "", "log level (debug, info, warn, error)")
	first := fs.String("i", "", "first R index for --op subset: number, label or comma list")
	second := fs.String("j", "", "second R index for --op subset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	setupLogging(firstNonEmpty(*level, os.Getenv("LOG_LEVEL"), cfg.LogLevel, "info"))

	if *varsPath == "" || *name == "" {
		return fmt.Errorf("--vars and --var are required")
	}
	store := rshim.NewObject()
	if _, err := rio.LoadJSON(*varsPath, store); err != nil {
		return err
	}
	v, ok := store.Get(*name)
	if !ok {
		return fmt.Errorf("variable %q: %w", *name, rio.ErrUnboundVariable)
	}

	var opts []rshim.Option
	if cfg.LabelPrefix != "" {
		opts = append(opts, rshim.WithLabelPrefix(cfg.LabelPrefix))
	}
	s, err := rshim.New(engine.New(), opts...)
	if err != nil {
		return err
	}

	log.WithField("op", *op).Debugf("evaluating on %q", *name)
	result, err := evaluate(s, *op, v, *first, *second)
	if err != nil {
		return err
	}
	b, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(b))

	return err
}

func evaluate(s *rshim.Shim, op string, v any, i, j string) (any, error) {
	switch op {
	case "dim":
		return s.Dim(v)
	case "length":
		return rshim.Length(v), nil
	case "names":
		return s.Names(v)
	case "nrow":
		return s.Nrow(v)
	case "ncol":
		return s.Ncol(v)
	case "which", "whichmin", "whichmax":
		xs, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%s needs a JSON array, got %T", op, v)
		}
		switch op {
		case "which":
			return rshim.Which(xs), nil
		case "whichmin":
			return rshim.WhichMin(xs)
		default:
			return rshim.WhichMax(xs)
		}
	case "subset":
		return subset(s, v, i, j)
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

func subset(s *rshim.Shim, v any, i, j string) (any, error) {
	if i == "" {
		return nil, fmt.Errorf("subset needs --i")
	}
	first, err := parseIndex(i)
	if err != nil {
		return nil, err
	}
	args := []rshim.IndexArg{first}
	if j != "" {
		second, err := parseIndex(j)
		if err != nil {
			return nil, err
		}
		args = append(args, second)
	}
	ix, err := s.Index01(args[0], args[1:]...)
	if err != nil {
		return nil, err
	}
	log.WithField("index", ix.String()).Debug("translated")

	return s.Engine().Subset(v, ix)
}

// parseIndex reads "3" as a position, "1,3" as a list and anything else
// as a label, then hands the decoded value to rshim.ParseIndexArg.
func parseIndex(raw string) (rshim.IndexArg, error) {
	return rshim.ParseIndexArg(indexValue(raw))
}

func indexValue(raw string) any {
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		list := make([]any, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return raw
			}
			list = append(list, n)
		}
		return list
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}

	return raw
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func setupLogging(levelFlag string) {
	level, err := log.ParseLevel(levelFlag)
	if nil != err {
		log.WithField("err", err).Warnf("%-v", err)
		level, _ = log.ParseLevel("info")
	}
	log.SetFormatter(&log.TextFormatter{
		ForceTTY: true,
	})
	log.SetLevel(level)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}
