// Package host describes the seams of the glint host program that tests
// need to replace: the main object, the current engine, the rpc decorator,
// the cache reader, the path checker and the command registry.
//
// The host program receives an *Accessors and calls through it instead of
// reaching for package-level globals. Fixtures swap individual fields of the
// bundle for doubles and put the originals back when the test ends.
package host
