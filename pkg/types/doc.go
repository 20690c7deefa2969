// Package types defines the entity types, the Storage interface, the
// configuration, and the standard error types for dietlog.
//
// Entities are plain data contracts. Behavior that touches persistence lives
// in the store packages under internal/.
package types
