// Package xstr provides byte-wise ASCII string helpers: case-insensitive
// matching, prefix/suffix stripping, whitespace trimming, and delimiter
// splitting with an optional filter.
//
// Everything here treats strings as raw bytes. Case folding covers 'A'-'Z'
// only; strings.EqualFold and friends are Unicode-aware and therefore not
// equivalent. None of these functions allocate unless they must return a
// modified copy.
package xstr
