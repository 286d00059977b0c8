// Package service manages the lifecycle of long-lived infrastructure
package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the audio output, the terminal screen
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags/env
//  3. Start() - acquire resources, launch goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}
