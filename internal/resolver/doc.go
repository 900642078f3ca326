// Package resolver maps symbolic package references to the filesystem
// locations where those packages are installed. Resolvers are the only part
// of the system that touches the outside world; resolution of a shell itself
// (see the engine package) is a pure function of the mapping a resolver
// provides.
//
// Three implementations are provided: Static (an in-memory map), Lockfile (a
// YAML file of reference-to-path entries), and Store (a scan of a store
// directory holding hash-prefixed, optionally versioned package trees).
package resolver
