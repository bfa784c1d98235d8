package tuplegen

import (
	"fmt"
	"strings"
)

// names returns the identifiers prefix+i for each i in positions.
func names(prefix string, positions []int) []string {
	ns := make([]string, len(positions))
	for i, p := range positions {
		ns[i] = fmt.Sprintf("%s%d", prefix, p)
	}
	return ns
}

// count returns the positions 0..n-1.
func count(n int) []int {
	ps := make([]int, n)
	for i := range ps {
		ps[i] = i
	}
	return ps
}

// typeParams returns a type parameter list declaring all the
// given names, or the empty string if there are none.
func typeParams(ns []string) string {
	if len(ns) == 0 {
		return ""
	}
	return "[" + strings.Join(ns, ", ") + " any]"
}

// typeArgs returns a type argument list of the given names,
// optionally as pointers, or the empty string if there are none.
func typeArgs(ns []string, ptr bool) string {
	if len(ns) == 0 {
		return ""
	}
	if !ptr {
		return "[" + strings.Join(ns, ", ") + "]"
	}
	return "[*" + strings.Join(ns, ", *") + "]"
}

// tupleType returns the tuple type holding values of the named types.
func tupleType(ns []string, ptr bool) string {
	return fmt.Sprintf("T%d%s", len(ns), typeArgs(ns, ptr))
}

// selectors returns expr.f for each field name f, prefixed with
// & if addr is set.
func selectors(expr string, fields []string, addr bool) []string {
	sels := make([]string, len(fields))
	for i, f := range fields {
		sels[i] = expr + "." + f
		if addr {
			sels[i] = "&" + sels[i]
		}
	}
	return sels
}

// literal returns a composite literal of the given tuple type.
func literal(typ string, elems []string) string {
	return typ + "{" + strings.Join(elems, ", ") + "}"
}
