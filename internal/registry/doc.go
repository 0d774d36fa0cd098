// Package registry holds the static compatibility tables that constrain
// which network, wallet provider, framework, and model provider combinations
// can be generated. Every table is built once at process start and never
// mutated; accessors return a (value, ok) pair or a wrapped
// ErrInvalidSelection instead of a zero value masquerading as a hit.
package registry
