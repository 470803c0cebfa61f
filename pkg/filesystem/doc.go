// Package filesystem provides the filesystem seam used by the fixtures.
//
// NewOS talks to the real disk; NewAferoFS adapts any afero.Fs, which lets
// the scratch directory and path fixtures run against an in-memory tree.
package filesystem
