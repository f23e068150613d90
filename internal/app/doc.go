// Package app wires the application together: logger construction,
// configuration loading, model registration and the run loop that
// drives each declared sweep through the engine, the materializer and
// the renderer.
package app
