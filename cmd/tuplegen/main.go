// Tuplegen writes the generated files of the tuple package.
//
// Usage:
//
//	tuplegen [-config file] [-o dir] [-v]
//
// Without -config, the built-in tiers are used: arities up to 16,
// up to 24 with the tuple24 build tag and up to 32 with tuple32.
// Generated files in the output directory that the configuration
// no longer produces are removed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rogpeppe/tuplestructops/internal/tuplegen"
)

var (
	configFlag  = flag.String("config", "", "YAML tier configuration file")
	outFlag     = flag.String("o", ".", "output directory")
	verboseFlag = flag.Bool("v", false, "log each file written")
)

func main() {
	flag.Parse()
	level := slog.LevelWarn
	if *verboseFlag {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err := run(logger, *configFlag, *outFlag); err != nil {
		fmt.Fprintln(os.Stderr, "tuplegen:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath, outDir string) error {
	cfg := tuplegen.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = tuplegen.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	files, err := tuplegen.Generate(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	keep := make(map[string]bool)
	for _, f := range files {
		path := filepath.Join(outDir, f.Name)
		if err := os.WriteFile(path, f.Src, 0o644); err != nil {
			return err
		}
		keep[f.Name] = true
		logger.Info("generated", "file", path, "decls", f.Decls, "bytes", len(f.Src))
	}
	return removeStale(logger, outDir, keep)
}

// removeStale removes files in dir that were written by tuplegen
// but are not in keep.
func removeStale(logger *slog.Logger, dir string, keep map[string]bool) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*_gen.go"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		if keep[filepath.Base(path)] {
			continue
		}
		generated, err := isGenerated(path)
		if err != nil {
			return err
		}
		if !generated {
			continue
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		logger.Info("removed stale file", "file", path)
	}
	return nil
}

// isGenerated reports whether the file at path starts with the
// tuplegen header.
func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return false, sc.Err()
	}
	return sc.Text() == tuplegen.Header, nil
}
