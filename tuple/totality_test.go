package tuple_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"regexp"
	"testing"

	"github.com/go-quicktest/qt"
)

// fullArity is the arity covered when every tier is enabled.
const fullArity = 32

// loadAllTiers type-checks the package source as if built with
// every tier enabled, regardless of the tags in effect for the test.
func loadAllTiers(t *testing.T) *types.Package {
	fset := token.NewFileSet()
	var files []*ast.File
	for _, name := range []string{
		"doc.go",
		"tuple.go",
		"tuple16_gen.go",
		"tuple24_gen.go",
		"tuple32_gen.go",
		"maxarity32_gen.go",
	} {
		f, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
		qt.Assert(t, qt.IsNil(err))
		files = append(files, f)
	}
	var conf types.Config
	pkg, err := conf.Check("github.com/rogpeppe/tuplestructops/tuple", fset, files, nil)
	qt.Assert(t, qt.IsNil(err))
	return pkg
}

func TestTotality(t *testing.T) {
	pkg := loadAllTiers(t)
	scope := pkg.Scope()
	lookup := func(format string, args ...any) types.Object {
		return scope.Lookup(fmt.Sprintf(format, args...))
	}
	tuple := pkg.Scope().Lookup("Tuple").Type().Underlying().(*types.Interface)

	for n := 0; n <= fullArity; n++ {
		named, ok := lookup("T%d", n).(*types.TypeName)
		qt.Assert(t, qt.IsTrue(ok), qt.Commentf("T%d", n))
		qt.Assert(t, qt.Equals(named.Type().(*types.Named).TypeParams().Len(), n))
		qt.Assert(t, qt.IsNotNil(lookup("MkT%d", n)))

		// Duplicate methods fail to type-check, so the count shows
		// nothing is missing: T, Len and tuple, then one per split
		// and two per index.
		qt.Assert(t, qt.Equals(named.Type().(*types.Named).NumMethods(), 3+(n+1)+2*n), qt.Commentf("T%d", n))

		ms := methods(named.Type().(*types.Named))
		qt.Assert(t, qt.IsNotNil(lookup("Ref_%d", n)))
		qt.Assert(t, qt.IsFalse(ms["Ref"]))
		for l := 0; l <= n; l++ {
			qt.Assert(t, qt.IsTrue(ms[fmt.Sprintf("Split%d", l)]), qt.Commentf("T%d.Split%d", n, l))
			qt.Assert(t, qt.IsNotNil(lookup("SplitRef_%d_%d", n, l)), qt.Commentf("SplitRef_%d_%d", n, l))
			qt.Assert(t, qt.IsNotNil(lookup("Join_%d_%d", l, n-l)), qt.Commentf("Join_%d_%d", l, n-l))
			qt.Assert(t, qt.IsNotNil(lookup("JoinRef_%d_%d", l, n-l)), qt.Commentf("JoinRef_%d_%d", l, n-l))
		}
		for i := 0; i < n; i++ {
			qt.Assert(t, qt.IsTrue(ms[fmt.Sprintf("Idx%d", i)]), qt.Commentf("T%d.Idx%d", n, i))
			qt.Assert(t, qt.IsTrue(ms[fmt.Sprintf("IdxRef%d", i)]), qt.Commentf("T%d.IdxRef%d", n, i))
			qt.Assert(t, qt.IsNotNil(lookup("Idx_%d_%d", n, i)))
			qt.Assert(t, qt.IsNotNil(lookup("IdxRef_%d_%d", n, i)))
			qt.Assert(t, qt.IsNotNil(lookup("Field%d_%d", n, i)))

			c, ok := lookup("Field%d_%dIndex", n, i).(*types.Const)
			qt.Assert(t, qt.IsTrue(ok), qt.Commentf("Field%d_%dIndex", n, i))
			qt.Assert(t, qt.Equals(c.Val().String(), fmt.Sprint(i)))
		}
		// Out of range forms do not exist.
		qt.Assert(t, qt.IsFalse(ms[fmt.Sprintf("Split%d", n+1)]))
		qt.Assert(t, qt.IsFalse(ms[fmt.Sprintf("Idx%d", n)]))
		qt.Assert(t, qt.IsNil(lookup("SplitRef_%d_%d", n, n+1)))
		qt.Assert(t, qt.IsNil(lookup("Idx_%d_%d", n, n)))
		qt.Assert(t, qt.IsNil(lookup("Field%d_%dIndex", n, n)))

		if n == 0 {
			qt.Assert(t, qt.IsTrue(types.Implements(named.Type(), tuple)))
		}
	}
	qt.Assert(t, qt.IsNil(lookup("T%d", fullArity+1)))
	qt.Assert(t, qt.IsNil(lookup("Ref_%d", fullArity+1)))
	for l := 0; l <= fullArity+1; l++ {
		qt.Assert(t, qt.IsNil(lookup("Join_%d_%d", l, fullArity+1-l)))
	}
}

// methods returns the names of the methods declared on t.
func methods(t *types.Named) map[string]bool {
	ms := make(map[string]bool)
	for i := range t.NumMethods() {
		ms[t.Method(i).Name()] = true
	}
	return ms
}

var (
	joinPattern  = regexp.MustCompile(`^Join_[0-9]+_[0-9]+$`)
	idxPattern   = regexp.MustCompile(`^Idx_[0-9]+_[0-9]+$`)
	fieldPattern = regexp.MustCompile(`^Field[0-9]+_[0-9]+$`)
	splitPattern = regexp.MustCompile(`^SplitRef_[0-9]+_[0-9]+$`)
)

func TestDeclarationCount(t *testing.T) {
	pkg := loadAllTiers(t)
	joins, splits, idxs, fields := 0, 0, 0, 0
	for _, name := range pkg.Scope().Names() {
		switch {
		case joinPattern.MatchString(name):
			joins++
		case splitPattern.MatchString(name):
			splits++
		case idxPattern.MatchString(name):
			idxs++
		case fieldPattern.MatchString(name):
			fields++
		}
	}
	// One join per (L, R) with L+R <= 32, one split per (N, L) with
	// L <= N, one index per (N, I) with I < N.
	qt.Assert(t, qt.Equals(joins, (fullArity+1)*(fullArity+2)/2))
	qt.Assert(t, qt.Equals(splits, joins))
	qt.Assert(t, qt.Equals(idxs, fullArity*(fullArity+1)/2))
	qt.Assert(t, qt.Equals(fields, fullArity*(fullArity+1)/2))
}
