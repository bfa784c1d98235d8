package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
	"gotest.tools/v3/fs"

	"github.com/rogpeppe/tuplestructops/internal/tuplegen"
)

const smallConfig = `
package: tup
tiers:
  - max: 2
  - max: 3
    tag: three
`

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func TestRun(t *testing.T) {
	dir := fs.NewDir(t, "tuplegen",
		fs.WithFile("tuplegen.yaml", smallConfig),
		fs.WithFile("other_gen.go", "// Code generated by something else. DO NOT EDIT.\n\npackage tup\n"),
		fs.WithFile("maxarity4_gen.go", tuplegen.Header+"\n\npackage tup\n\nconst MaxArity = 4\n"),
	)
	defer dir.Remove()

	var logs bytes.Buffer
	err := run(newLogger(&logs), dir.Join("tuplegen.yaml"), dir.Path())
	qt.Assert(t, qt.IsNil(err))

	for _, name := range []string{"tuple2_gen.go", "maxarity2_gen.go", "tuple3_gen.go", "maxarity3_gen.go"} {
		data, err := os.ReadFile(dir.Join(name))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.StringContains(string(data), "\npackage tup\n"))
	}

	// Stale tuplegen output is removed; other generated files are not.
	_, err = os.Stat(dir.Join("maxarity4_gen.go"))
	qt.Assert(t, qt.IsTrue(os.IsNotExist(err)))
	_, err = os.Stat(dir.Join("other_gen.go"))
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.StringContains(logs.String(), "msg=generated file="+filepath.Join(dir.Path(), "tuple2_gen.go")))
	qt.Assert(t, qt.StringContains(logs.String(), "msg=\"removed stale file\""))
}

func TestRunDefaultConfig(t *testing.T) {
	dir := fs.NewDir(t, "tuplegen")
	defer dir.Remove()

	var logs bytes.Buffer
	err := run(newLogger(&logs), "", dir.Path())
	qt.Assert(t, qt.IsNil(err))

	entries, err := os.ReadDir(dir.Path())
	qt.Assert(t, qt.IsNil(err))
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	qt.Assert(t, qt.DeepEquals(names, []string{
		"maxarity16_gen.go",
		"maxarity24_gen.go",
		"maxarity32_gen.go",
		"tuple16_gen.go",
		"tuple24_gen.go",
		"tuple32_gen.go",
	}))
}

func TestRunCreatesOutputDir(t *testing.T) {
	dir := fs.NewDir(t, "tuplegen", fs.WithFile("tuplegen.yaml", smallConfig))
	defer dir.Remove()

	var logs bytes.Buffer
	out := dir.Join("gen", "tup")
	err := run(newLogger(&logs), dir.Join("tuplegen.yaml"), out)
	qt.Assert(t, qt.IsNil(err))

	entries, err := os.ReadDir(out)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(entries, 4))
}

func TestRunBadConfig(t *testing.T) {
	dir := fs.NewDir(t, "tuplegen", fs.WithFile("tuplegen.yaml", "package: tup\ntiers: []\n"))
	defer dir.Remove()

	var logs bytes.Buffer
	err := run(newLogger(&logs), dir.Join("tuplegen.yaml"), dir.Path())
	qt.Assert(t, qt.ErrorIs(err, tuplegen.ErrInvalidConfig))

	entries, err := os.ReadDir(dir.Path())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(entries, 1))
}
