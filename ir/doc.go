// Package ir contains the jot parse tree: typed nodes with ordered
// fields and values, parent back-links, and the structural primitives
// (append, field lookup, detach) the jot wrapper is built on.
package ir
