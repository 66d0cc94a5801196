// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Business code depends on the Config interface; the Viper implementation reads
// a YAML file and fills in defaults for keys the file leaves out.
package pkgconfig
