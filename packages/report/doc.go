// Package report renders assertion failures for terminal display.
//
// It is diagnostic sugar only: the assertion functions never depend on it,
// and values are rendered through the same bounded stringifier the
// generated messages use.
package report
