// Package registry provides a generic, thread-safe name -> item registry.
// The fake command registry in pkg/host is built on it, and the overwrite
// path (Replace) is what forced command registration maps onto.
package registry
