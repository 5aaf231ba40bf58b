// Package doc holds the hierarchical document model a parse produces:
// a tree of key groups addressed by dotted path, the value entries
// they own, typed field accessors, and element-type unification for
// heterogeneous arrays.
package doc
