package domain

import "errors"

// ErrDuplicateNode is returned when a node ID is registered twice in a graph.
var ErrDuplicateNode = errors.New("duplicate node")

// ErrNodeNotFound is returned when a node ID cannot be found in a graph.
var ErrNodeNotFound = errors.New("node not found")

// ErrDocumentNotFound is returned when a target document path does not exist.
var ErrDocumentNotFound = errors.New("document not found")
