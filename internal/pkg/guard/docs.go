// Package guard provides ConstructorGuard, used by commands and domain entities
// to reject zero values that bypassed their constructors.
package guard
