package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/comalice/inlinestr"
	"github.com/comalice/inlinestr/internal/scenario"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// Config holds the command-line settings.
type Config struct {
	Scenarios string
	Only      string
	LogLevel  string
}

func addFlags(app *kingpin.Application, cfg *Config) {
	app.Flag("scenarios", "YAML scenario file; the built-in set is used when empty.").StringVar(&cfg.Scenarios)
	app.Flag("only", "Run only the named scenario.").StringVar(&cfg.Only)
	app.Flag("log.level", "Log level (debug, info, warn, error).").Default("info").EnumVar(&cfg.LogLevel, "debug", "info", "warn", "error")
}

func main() {
	var cfg Config
	app := kingpin.New("demo", "Runs scripted inline/owned string scenarios and prints the results.")
	addFlags(app, &cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(cfg.LogLevel)

	scs, err := loadScenarios(cfg.Scenarios)
	if err != nil {
		level.Error(logger).Log("msg", "failed to load scenarios", "err", err)
		os.Exit(1)
	}
	if cfg.Only != "" {
		scs = filter(scs, cfg.Only)
		if len(scs) == 0 {
			level.Error(logger).Log("msg", "no such scenario", "name", cfg.Only)
			os.Exit(1)
		}
	}

	level.Info(logger).Log("msg", "running scenarios", "count", len(scs), "capacity", inlinestr.Capacity)

	failed := 0
	for _, sc := range scs {
		res, err := scenario.Run(sc)
		for _, st := range res.Steps {
			level.Debug(logger).Log("scenario", sc.Name, "op", st.Op, "variant", st.Variant, "len", st.Len, "promoted", st.Promoted)
		}
		if err != nil {
			failed++
			level.Error(logger).Log("scenario", sc.Name, "err", err)
			continue
		}
		printResult(&res)
	}

	if failed > 0 {
		level.Error(logger).Log("msg", "scenarios failed", "failed", failed, "total", len(scs))
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "all scenarios passed", "total", len(scs))
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, allowLevel(lvl))
}

func allowLevel(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

func loadScenarios(path string) ([]scenario.Scenario, error) {
	if path == "" {
		return scenario.Decode(bytes.NewReader(defaultScenarios))
	}
	return scenario.Load(path)
}

func filter(scs []scenario.Scenario, name string) []scenario.Scenario {
	for _, sc := range scs {
		if sc.Name == name {
			return []scenario.Scenario{sc}
		}
	}
	return nil
}

func printResult(res *scenario.Result) {
	s := &res.Final
	fmt.Printf("--- %s ---\n", res.Name)
	fmt.Printf("debug:   %v\n", res.Final)
	fmt.Printf("display: %s (%d bytes, %d chars, %s)\n", res.Final, s.Len(), s.RuneCount(), s.Variant())
	if res.Promoted {
		fmt.Println("promoted: inline -> owned")
	}
}
