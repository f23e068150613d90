// Package config defines the format-agnostic configuration model that
// loaders translate user files into. The engine consumes only this
// model, never the HCL schema directly.
package config
