// Package internalcheck holds policy tests that inspect the library source.
//
// The tests load every package under pkg/ with golang.org/x/tools/go/packages
// and walk the syntax trees looking for constructs the toolkit rules out,
// such as calls to panic or mutable package-level state.
//
// # Internal Use Only
//
// The package exports nothing and should not be imported.
package internalcheck
