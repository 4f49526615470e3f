// Package app wires the configured endpoints, the transport factory and the
// lifecycle coordinator into a runnable server process.
package app
