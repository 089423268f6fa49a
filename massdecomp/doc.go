// Package massdecomp implements the Extended Residue Table algorithm of
// Böcker & Lipták ("Efficient Mass Decomposition", ACM SAC-BIO 2004) for
// decomposing an integer mass into non-negative combinations of a fixed
// alphabet of integer weights.
//
// Given a sorted alphabet of weights w0 < w1 < ... < wk-1, a Decomposer
// answers three questions about a target mass M: does any decomposition
// exist, what is one decomposition, and what are all of them. Construction
// builds a k-by-w0 residue table once; queries against it are read-only and
// safe for concurrent use.
package massdecomp
