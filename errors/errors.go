// Package errors provides error handling for declower.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for the caller
//
// Usage:
//
//	// Wrap with context
//	if err := pass.Lower(root); err != nil {
//	    return errors.Wrapf(err, "pass %s", pass.Name())
//	}
//
//	// Check for a fatal lowering failure
//	if errors.Is(err, errors.ErrUnsupportedNode) {
//	    // abort the pipeline
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// Caller-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the lowering core.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnsupportedNode indicates a pass met a node variant it has no rule for.
	// It is fatal: the pipeline aborts and returns no tree.
	ErrUnsupportedNode = New("unsupported node variant")

	// ErrIdentifierCollision indicates two distinct identifiers escape to the same output
	ErrIdentifierCollision = New("identifier collision")

	// ErrInvalidTree indicates the input tree breaks a structural invariant
	ErrInvalidTree = New("invalid declaration tree")

	// ErrInvalidName indicates a malformed name entity
	ErrInvalidName = New("invalid name")

	// ErrUnknownPass indicates a pass name that is not registered
	ErrUnknownPass = New("unknown pass")

	// ErrInvalidConfig indicates a configuration value out of range
	ErrInvalidConfig = New("invalid configuration")
)

// IsUnsupportedNode checks if an error is or wraps ErrUnsupportedNode
func IsUnsupportedNode(err error) bool {
	return err != nil && Is(err, ErrUnsupportedNode)
}

// IsIdentifierCollision checks if an error is or wraps ErrIdentifierCollision
func IsIdentifierCollision(err error) bool {
	return err != nil && Is(err, ErrIdentifierCollision)
}

// IsInvalidTree checks if an error is or wraps ErrInvalidTree
func IsInvalidTree(err error) bool {
	return err != nil && Is(err, ErrInvalidTree)
}

// NewUnsupportedNodeError creates an unsupported-node error with a formatted message
func NewUnsupportedNodeError(format string, args ...interface{}) error {
	return Wrap(ErrUnsupportedNode, Newf(format, args...).Error())
}
