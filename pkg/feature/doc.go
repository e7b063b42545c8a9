// Package feature holds the descriptor table that drives the features
// section. A Table is an ordered, immutable list of Descriptors; list order is
// visual order and nothing in this package sorts, filters, or validates
// entries beyond trimming whitespace on load.
package feature
