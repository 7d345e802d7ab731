// Package config loads, normalizes, and validates concordance configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML or YAML files, and honours environment fallbacks such as
// CONCORDANCE_DATA_DIR. Always obtain settings through this package so
// downstream code receives expanded paths, canonical names, and clear
// validation errors.
package config
