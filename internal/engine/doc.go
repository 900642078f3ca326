// Package engine turns a parsed shell and a resolver into a concrete
// Environment. This is the evaluation stage the model package defers to: it
// resolves every declared dependency, builds the HCL evaluation context
// exposing the resolved package paths, and evaluates every deferred
// environment expression against it.
//
// Resolution performs no I/O of its own. Given the same shell and the same
// resolver mapping it always produces the same Environment, and a failed
// resolution produces no partial output.
package engine
