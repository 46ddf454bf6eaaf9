// Package store defines the persistence interfaces and sentinel errors the
// rest of the application depends on. Concrete implementations live under
// internal/platform.
package store
