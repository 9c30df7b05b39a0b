// Package domain contains the core types for project footprint scanning.
package domain

import "time"

// SizeInfo is the computed on-disk footprint of a single project.
// Code and dependency buckets partition the total exactly:
// TotalSize == CodeSize + DependencySize and
// TotalFileCount == CodeFileCount + DependencyFileCount.
// A SizeInfo is immutable once produced; recomputation yields a new value.
type SizeInfo struct {
	CodeSize            uint64 `json:"code_size"`
	DependencySize      uint64 `json:"dependency_size"`
	TotalSize           uint64 `json:"total_size"`
	CodeFileCount       int    `json:"code_file_count"`
	DependencyFileCount int    `json:"dependency_file_count"`
	TotalFileCount      int    `json:"total_file_count"`
}

// NewSizeInfo builds a SizeInfo from the two buckets, deriving the totals.
func NewSizeInfo(codeSize, depSize uint64, codeFiles, depFiles int) SizeInfo {
	return SizeInfo{
		CodeSize:            codeSize,
		DependencySize:      depSize,
		TotalSize:           codeSize + depSize,
		CodeFileCount:       codeFiles,
		DependencyFileCount: depFiles,
		TotalFileCount:      codeFiles + depFiles,
	}
}

// FileEntry is one file yielded by a walk.
type FileEntry struct {
	// RelPath is the path relative to the walked root, slash-separated.
	RelPath string

	// Size is the logical file-content size in bytes.
	Size uint64

	// ModTime is the file's last modification time.
	ModTime time.Time

	// Dependency reports whether the file lives under a
	// dependency-classified directory.
	Dependency bool
}

// WalkStats accumulates out-of-band walk results. The walker fills it in
// while the entry sequence is consumed; it is only complete once the
// sequence has been drained.
type WalkStats struct {
	// SkippedErrors counts entries that could not be read or stat'd.
	// These are soft errors and never abort a walk.
	SkippedErrors int

	// RootErr is set when the walk root itself could not be read.
	// It is a hard error for the enclosing calculation.
	RootErr error
}
