package tuplegen

import (
	"bytes"
	"fmt"
	"strings"
)

// printer accumulates generated declarations.
type printer struct {
	buf   bytes.Buffer
	decls int
}

// decl writes one top-level declaration, separated from the
// previous one by a blank line.
func (p *printer) decl(format string, args ...any) {
	p.decls++
	p.buf.WriteByte('\n')
	fmt.Fprintf(&p.buf, format, args...)
}

// chunk is the generated code for a single arity.
type chunk struct {
	src   []byte
	decls int
}

// renderArity generates everything owned by arity n: the tuple type
// and its methods, every split of it, every index into it, and every
// join that produces it.
func renderArity(n int) chunk {
	var p printer
	all := names("A", count(n))
	emitType(&p, all)
	for part := range Partitions(n) {
		emitSplit(&p, all, part)
	}
	for i := range n {
		emitIndex(&p, all, i)
	}
	for part := range Partitions(n) {
		emitJoin(&p, part)
	}
	return chunk{src: p.buf.Bytes(), decls: p.decls}
}

func emitType(p *printer, all []string) {
	n := len(all)
	t := tupleType(all, false)
	tp := typeParams(all)

	switch n {
	case 0:
		p.decl("// T0 is the empty tuple.\ntype T0 struct{}\n")
	default:
		var doc string
		if n == 1 {
			doc = "// T1 holds a single value.\n"
		} else {
			doc = fmt.Sprintf("// T%d holds a tuple of %d values.\n", n, n)
		}
		width := len(all[n-1])
		var fields strings.Builder
		for _, f := range all {
			fmt.Fprintf(&fields, "\t%-*s %s\n", width, f, f)
		}
		p.decl("%stype T%d%s struct {\n%s}\n", doc, n, tp, fields.String())
	}

	args := make([]string, n)
	params := make([]string, n)
	for i, f := range all {
		args[i] = strings.ToLower(f)
		params[i] = args[i] + " " + f
	}
	p.decl("// MkT%d returns a tuple holding the given values.\nfunc MkT%d%s(%s) %s {\n\treturn %s\n}\n",
		n, n, tp, strings.Join(params, ", "), t, literal(t, args))

	const tDoc = "// T returns all the values in the tuple.\n"
	switch n {
	case 0:
		p.decl("%sfunc (t T0) T() {}\n", tDoc)
	case 1:
		p.decl("%sfunc (t %s) T() A0 {\n\treturn t.A0\n}\n", tDoc, t)
	default:
		p.decl("%sfunc (t %s) T() (%s) {\n\treturn %s\n}\n",
			tDoc, t, strings.Join(all, ", "), strings.Join(selectors("t", all, false), ", "))
	}

	p.decl("// Len returns the number of values in the tuple.\nfunc (t %s) Len() int {\n\treturn %d\n}\n", t, n)
	p.decl("func (%s) tuple() {}\n", t)

	// A method of TN returning TN[*A0, ...] is an instantiation cycle,
	// so the borrowed forms are functions.
	rt := tupleType(all, true)
	p.decl("// Ref_%d returns a tuple of pointers to the values in t.\nfunc Ref_%d%s(t *%s) %s {\n\treturn %s\n}\n",
		n, n, tp, t, rt, literal(rt, selectors("t", all, true)))
}

// emitSplit generates the owned and borrowed splits of the tuple
// with the given fields at part.
func emitSplit(p *printer, all []string, part Partition) {
	n := len(all)
	t := tupleType(all, false)
	left, right := names("A", part.Left), names("A", part.Right)
	l := len(left)

	lt, rt := tupleType(left, false), tupleType(right, false)
	p.decl("// Split%d returns the first %d values of t and the remaining %d.\nfunc (t %s) Split%d() (%s, %s) {\n\treturn %s, %s\n}\n",
		l, l, len(right), t, l, lt, rt,
		literal(lt, selectors("t", left, false)), literal(rt, selectors("t", right, false)))

	lt, rt = tupleType(left, true), tupleType(right, true)
	p.decl("// SplitRef_%d_%d is like Split%d but returns pointers to the values in t.\nfunc SplitRef_%d_%d%s(t *%s) (%s, %s) {\n\treturn %s, %s\n}\n",
		n, l, l, n, l, typeParams(all), t, lt, rt,
		literal(lt, selectors("t", left, true)), literal(rt, selectors("t", right, true)))
}

// emitIndex generates the owned and borrowed projections of field i.
func emitIndex(p *printer, all []string, i int) {
	n := len(all)
	t := tupleType(all, false)
	tp := typeParams(all)
	a := all[i]

	p.decl("// Idx%d returns the value at index %d.\nfunc (t %s) Idx%d() %s {\n\treturn t.%s\n}\n",
		i, i, t, i, a, a)
	p.decl("// IdxRef%d returns a pointer to the value at index %d.\nfunc (t *%s) IdxRef%d() *%s {\n\treturn &t.%s\n}\n",
		i, i, t, i, a, a)
	p.decl("// Idx_%d_%d returns the value at index %d of t.\nfunc Idx_%d_%d%s(t %s) %s {\n\treturn t.%s\n}\n",
		n, i, i, n, i, tp, t, a, a)
	p.decl("// IdxRef_%d_%d returns a pointer to the value at index %d of t.\nfunc IdxRef_%d_%d%s(t *%s) *%s {\n\treturn &t.%s\n}\n",
		n, i, i, n, i, tp, t, a, a)

	p.decl("// Field%d_%d selects the value at index %d of a T%d.\ntype Field%d_%d%s struct{}\n",
		n, i, i, n, n, i, tp)
	p.decl("// Field%d_%dIndex is the index selected by Field%d_%d.\nconst Field%d_%dIndex = %d\n",
		n, i, n, i, n, i, i)
	f := fmt.Sprintf("Field%d_%d%s", n, i, typeArgs(all, false))
	p.decl("// Index returns Field%d_%dIndex.\nfunc (%s) Index() int {\n\treturn Field%d_%dIndex\n}\n", n, i, f, n, i)
	p.decl("// Get returns the selected value of t.\nfunc (%s) Get(t %s) %s {\n\treturn t.%s\n}\n", f, t, a, a)
	p.decl("// Ref returns a pointer to the selected value of t.\nfunc (%s) Ref(t *%s) *%s {\n\treturn &t.%s\n}\n", f, t, a, a)
	p.decl("func (%s) selector() {}\n", f)
}

// emitJoin generates the owned and borrowed joins of a tuple shaped
// like part.Left with one shaped like part.Right.
func emitJoin(p *printer, part Partition) {
	l, r := len(part.Left), len(part.Right)
	lfields, rfields := names("A", count(l)), names("A", count(r))
	ltypes, rtypes := lfields, names("B", count(r))
	out := append(append([]string(nil), ltypes...), rtypes...)
	tp := typeParams(out)
	lt, rt := tupleType(ltypes, false), tupleType(rtypes, false)

	ot := tupleType(out, false)
	elems := append(selectors("l", lfields, false), selectors("r", rfields, false)...)
	p.decl("// Join_%d_%d returns the values of l followed by the values of r.\nfunc Join_%d_%d%s(l %s, r %s) %s {\n\treturn %s\n}\n",
		l, r, l, r, tp, lt, rt, ot, literal(ot, elems))

	ot = tupleType(out, true)
	elems = append(selectors("l", lfields, true), selectors("r", rfields, true)...)
	p.decl("// JoinRef_%d_%d is like Join_%d_%d but returns pointers to the values in l and r.\nfunc JoinRef_%d_%d%s(l *%s, r *%s) %s {\n\treturn %s\n}\n",
		l, r, l, r, l, r, tp, lt, rt, ot, literal(ot, elems))
}
