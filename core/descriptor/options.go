// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Package descriptor holds the pieces shared by the value-side and SQL-side
// descriptors: conversion targets, wrapper options, LOB creators and the
// portable LOB values handed to database drivers.
package descriptor

import "errors"

// Target names the representation a value descriptor is asked to unwrap into.
type Target int

const (
	TargetString Target = iota
	TargetBytes
	TargetReader
	TargetCharacterStream
	TargetClob
	TargetNClob
)

func (t Target) String() string {
	switch t {
	case TargetString:
		return "string"
	case TargetBytes:
		return "bytes"
	case TargetReader:
		return "reader"
	case TargetCharacterStream:
		return "character_stream"
	case TargetClob:
		return "clob"
	case TargetNClob:
		return "nclob"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownWrap is returned when a raw value cannot be turned into the
	// in-memory representation.
	ErrUnknownWrap = errors.New("unknown wrap conversion")
	// ErrUnknownUnwrap is returned when a value cannot be unwrapped into the
	// requested target.
	ErrUnknownUnwrap = errors.New("unknown unwrap conversion")
)

// WrapperOptions carries the per-connection knobs descriptors consult while
// binding and extracting.
type WrapperOptions interface {
	// UseStreamForLobBinding reports whether LOB values should be bound as
	// character streams rather than driver LOB values.
	UseStreamForLobBinding() bool
	// LobCreator returns the factory for driver LOB values.
	LobCreator() LobCreator
}

type defaultOptions struct{}

func (defaultOptions) UseStreamForLobBinding() bool { return false }
func (defaultOptions) LobCreator() LobCreator        { return NonContextualLobCreator }

// DefaultOptions binds LOBs as portable values and never streams.
var DefaultOptions WrapperOptions = defaultOptions{}

// OrDefault returns opts, or DefaultOptions when opts is nil.
func OrDefault(opts WrapperOptions) WrapperOptions {
	if opts == nil {
		return DefaultOptions
	}
	return opts
}
