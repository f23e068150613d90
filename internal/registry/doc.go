// Package registry maps model names declared in sweep files to the Go
// models registered by model packages. It is populated once at startup
// and validated before execution begins.
package registry
