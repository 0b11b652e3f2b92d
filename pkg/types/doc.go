// Package types holds interfaces shared across mkmodule packages.
package types
