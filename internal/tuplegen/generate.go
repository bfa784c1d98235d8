// Package tuplegen generates the tuple package: a tuple type for
// every arity up to a configured maximum, together with every join,
// split and index operation over those types.
//
// The number of join and split declarations grows quadratically with
// the maximum arity and the number of index declarations grows
// linearly per arity, so the largest tiers are kept behind build tags.
package tuplegen

import (
	"bytes"
	"fmt"
	"go/build/constraint"
	"runtime"

	"github.com/alitto/pond/v2"
	"golang.org/x/tools/imports"
)

// Header is the first line of every generated file.
const Header = "// Code generated by tuplegen. DO NOT EDIT."

// File is a generated source file.
type File struct {
	// Name is the base name of the file.
	Name string

	// Src holds the formatted source.
	Src []byte

	// Decls is the number of top-level declarations in the file.
	Decls int
}

// Generate returns the files for the given configuration: one file
// per tier holding the declarations for the tier's arities, and one
// per tier defining MaxArity when that tier is the highest enabled.
//
// The output depends only on cfg.
func Generate(cfg Config) ([]File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool := pond.NewResultPool[chunk](runtime.GOMAXPROCS(0))
	defer pool.StopAndWait()

	var files []File
	for i, tier := range cfg.Tiers {
		group := pool.NewGroup()
		for n := range Arities(cfg.lo(i), tier.Max) {
			group.Submit(func() chunk {
				return renderArity(n)
			})
		}
		chunks, err := group.Wait()
		if err != nil {
			return nil, fmt.Errorf("generating tier %d: %w", tier.Max, err)
		}

		var buf bytes.Buffer
		writeHeader(&buf, cfg.Package, cfg.active(i))
		decls := 0
		for _, c := range chunks {
			buf.Write(c.src)
			decls += c.decls
		}
		f, err := format(fmt.Sprintf("tuple%d_gen.go", tier.Max), buf.Bytes(), decls)
		if err != nil {
			return nil, err
		}
		files = append(files, f)

		buf.Reset()
		writeHeader(&buf, cfg.Package, cfg.exclusive(i))
		fmt.Fprintf(&buf, "\n// MaxArity is the largest tuple arity available in this build.\nconst MaxArity = %d\n", tier.Max)
		f, err = format(fmt.Sprintf("maxarity%d_gen.go", tier.Max), buf.Bytes(), 1)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func writeHeader(buf *bytes.Buffer, pkg string, expr constraint.Expr) {
	buf.WriteString(Header + "\n\n")
	if expr != nil {
		fmt.Fprintf(buf, "//go:build %s\n\n", expr)
	}
	fmt.Fprintf(buf, "package %s\n", pkg)
}

// format gofmts the generated source. The generated code never
// needs imports, so the import set is left alone.
func format(name string, src []byte, decls int) (File, error) {
	out, err := imports.Process(name, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return File{}, fmt.Errorf("formatting %s: %w", name, err)
	}
	return File{Name: name, Src: out, Decls: decls}, nil
}
