// pkg/env/types.go
package env

// Layout defines where executables live inside an environment prefix
type Layout struct {
	Binaries []string // Relative paths to binary directories, in search order
}

// Environment is a conda environment prefix on a given platform
type Environment struct {
	Prefix string // Absolute environment prefix
	GOOS   string // Platform whose layout applies
}
