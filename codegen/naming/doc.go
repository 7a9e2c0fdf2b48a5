// Package naming derives the identifiers of generated bean code.
//
// Every name the synthesizer writes (accessors, mutators, bound property
// handles, the meta-bean functions and the builder factory) comes from this
// package so that collision checks and templates agree on the same spelling.
package naming
