// Package main provides the siss frame pipeline runner.
//
// Siss generates synthetic image frames at a fixed rate, buffers them in a
// bounded in-memory queue that drops its oldest frame when full, and persists
// them through a pool of save workers. It supports file, redis and discard
// sink backends.
package main
