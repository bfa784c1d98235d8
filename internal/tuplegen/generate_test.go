package tuplegen_test

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/tuplestructops/internal/tuplegen"
)

var smallConfig = tuplegen.Config{
	Package: "tuple",
	Tiers: []tuplegen.Tier{
		{Max: 3},
		{Max: 5, Tag: "tuple5"},
	},
}

// declsFor returns the number of declarations generated for
// arities lo to hi.
func declsFor(lo, hi int) int {
	total := 0
	for n := lo; n <= hi; n++ {
		// type, MkT, T, Len, tuple, Ref_N
		total += 6
		// owned and borrowed split and join per partition
		total += 4 * (n + 1)
		// per index: method, ref method, function, ref function,
		// selector type, its index constant and its four methods
		total += 10 * n
	}
	return total
}

func TestGenerateFiles(t *testing.T) {
	c := qt.New(t)
	files, err := tuplegen.Generate(smallConfig)
	c.Assert(err, qt.IsNil)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		c.Assert(strings.HasPrefix(string(f.Src), tuplegen.Header+"\n"), qt.IsTrue)
	}
	c.Assert(names, qt.DeepEquals, []string{
		"tuple3_gen.go",
		"maxarity3_gen.go",
		"tuple5_gen.go",
		"maxarity5_gen.go",
	})

	c.Assert(files[0].Decls, qt.Equals, declsFor(0, 3))
	c.Assert(files[1].Decls, qt.Equals, 1)
	c.Assert(files[2].Decls, qt.Equals, declsFor(4, 5))
	c.Assert(files[3].Decls, qt.Equals, 1)

	c.Assert(string(files[0].Src), qt.Not(qt.Contains), "//go:build")
	c.Assert(string(files[1].Src), qt.Contains, "\n//go:build !tuple5\n")
	c.Assert(string(files[2].Src), qt.Contains, "\n//go:build tuple5\n")
	c.Assert(string(files[3].Src), qt.Contains, "\n//go:build tuple5\n")
}

func TestGenerateFormatted(t *testing.T) {
	c := qt.New(t)
	files, err := tuplegen.Generate(smallConfig)
	c.Assert(err, qt.IsNil)
	for _, f := range files {
		out, err := format.Source(f.Src)
		c.Assert(err, qt.IsNil)
		c.Assert(string(out), qt.Equals, string(f.Src), qt.Commentf("%s", f.Name))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	c := qt.New(t)
	cfg := tuplegen.DefaultConfig()
	first, err := tuplegen.Generate(cfg)
	c.Assert(err, qt.IsNil)
	for range 3 {
		again, err := tuplegen.Generate(cfg)
		c.Assert(err, qt.IsNil)
		c.Assert(again, qt.HasLen, len(first))
		for i := range first {
			if diff := cmp.Diff(string(first[i].Src), string(again[i].Src)); diff != "" {
				c.Fatalf("%s differs between runs:\n%s", first[i].Name, diff)
			}
		}
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	c := qt.New(t)
	_, err := tuplegen.Generate(tuplegen.Config{Package: "tuple"})
	c.Assert(err, qt.ErrorIs, tuplegen.ErrInvalidConfig)
}

// check type-checks the named generated files as one package.
func check(files []tuplegen.File, names ...string) (*types.Package, error) {
	fset := token.NewFileSet()
	var asts []*ast.File
	for _, f := range files {
		for _, name := range names {
			if f.Name != name {
				continue
			}
			af, err := parser.ParseFile(fset, f.Name, f.Src, 0)
			if err != nil {
				return nil, err
			}
			asts = append(asts, af)
		}
	}
	var conf types.Config
	return conf.Check("example.com/tuple", fset, asts, nil)
}

func TestGenerateBaseTier(t *testing.T) {
	c := qt.New(t)
	files, err := tuplegen.Generate(smallConfig)
	c.Assert(err, qt.IsNil)

	pkg, err := check(files, "tuple3_gen.go", "maxarity3_gen.go")
	c.Assert(err, qt.IsNil)
	scope := pkg.Scope()
	for _, name := range []string{"T0", "T3", "MkT3", "Join_0_0", "Join_1_2", "JoinRef_3_0", "Idx_3_2", "IdxRef_1_0", "Field2_1", "Field2_1Index", "Ref_3", "SplitRef_3_1"} {
		c.Assert(scope.Lookup(name), qt.IsNotNil, qt.Commentf("%s", name))
	}
	for _, name := range []string{"T4", "Join_2_2", "Join_4_0", "Idx_3_3", "Field3_3", "Ref_4", "SplitRef_3_4"} {
		c.Assert(scope.Lookup(name), qt.IsNil, qt.Commentf("%s", name))
	}
	c.Assert(scope.Lookup("MaxArity").(*types.Const).Val().String(), qt.Equals, "3")
}

func TestGenerateUpperTier(t *testing.T) {
	c := qt.New(t)
	files, err := tuplegen.Generate(smallConfig)
	c.Assert(err, qt.IsNil)

	pkg, err := check(files, "tuple3_gen.go", "tuple5_gen.go", "maxarity5_gen.go")
	c.Assert(err, qt.IsNil)
	scope := pkg.Scope()
	for _, name := range []string{"T4", "T5", "Join_2_3", "Join_0_5", "JoinRef_4_1", "Idx_5_4", "Field4_0"} {
		c.Assert(scope.Lookup(name), qt.IsNotNil, qt.Commentf("%s", name))
	}
	for _, name := range []string{"T6", "Join_3_3", "Idx_5_5"} {
		c.Assert(scope.Lookup(name), qt.IsNil, qt.Commentf("%s", name))
	}
	c.Assert(scope.Lookup("MaxArity").(*types.Const).Val().String(), qt.Equals, "5")

	// The upper tier builds on the types of the base tier.
	_, err = check(files, "tuple5_gen.go", "maxarity5_gen.go")
	c.Assert(err, qt.ErrorMatches, `.*undefined: T[0-3].*`)
}

func TestGenerateBorrowedForms(t *testing.T) {
	c := qt.New(t)
	files, err := tuplegen.Generate(tuplegen.Config{
		Package: "tuple",
		Tiers:   []tuplegen.Tier{{Max: 1}},
	})
	c.Assert(err, qt.IsNil)

	// A method on T1[A0] returning T1[*A0] would fail here with an
	// instantiation cycle.
	pkg, err := check(files, "tuple1_gen.go", "maxarity1_gen.go")
	c.Assert(err, qt.IsNil)
	scope := pkg.Scope()

	t1 := scope.Lookup("T1").Type().(*types.Named)
	var ms []string
	for i := range t1.NumMethods() {
		ms = append(ms, t1.Method(i).Name())
	}
	slices.Sort(ms)
	c.Assert(ms, qt.DeepEquals, []string{"Idx0", "IdxRef0", "Len", "Split0", "Split1", "T", "tuple"})

	for _, name := range []string{"Ref_0", "Ref_1", "SplitRef_0_0", "SplitRef_1_0", "SplitRef_1_1"} {
		_, ok := scope.Lookup(name).(*types.Func)
		c.Assert(ok, qt.IsTrue, qt.Commentf("%s", name))
	}
	ref := scope.Lookup("Ref_1").Type().(*types.Signature)
	out := ref.Results().At(0).Type().(*types.Named)
	c.Assert(out.Obj().Name(), qt.Equals, "T1")
	_, ok := out.TypeArgs().At(0).(*types.Pointer)
	c.Assert(ok, qt.IsTrue)
}

func TestGenerateIndexConstants(t *testing.T) {
	c := qt.New(t)
	files, err := tuplegen.Generate(smallConfig)
	c.Assert(err, qt.IsNil)

	pkg, err := check(files, "tuple3_gen.go", "tuple5_gen.go", "maxarity5_gen.go")
	c.Assert(err, qt.IsNil)
	for n := range 6 {
		for i := range n {
			k, ok := pkg.Scope().Lookup(fmt.Sprintf("Field%d_%dIndex", n, i)).(*types.Const)
			c.Assert(ok, qt.IsTrue, qt.Commentf("Field%d_%dIndex", n, i))
			c.Assert(k.Val().String(), qt.Equals, fmt.Sprint(i))
		}
	}
}

func TestCheckedInFilesUpToDate(t *testing.T) {
	c := qt.New(t)
	dir := filepath.Join("..", "..", "tuple")
	cfg, err := tuplegen.LoadConfig(filepath.Join(dir, "tuplegen.yaml"))
	c.Assert(err, qt.IsNil)
	files, err := tuplegen.Generate(cfg)
	c.Assert(err, qt.IsNil)
	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Name))
		c.Assert(err, qt.IsNil)
		if string(got) != string(f.Src) {
			c.Errorf("%s is out of date; run go generate ./tuple", f.Name)
		}
	}
}
