// pkg/env/doc.go
package env

/*
Package env describes the on-disk layout of a conda environment and builds the
process environment used to run commands inside it.

It handles:
  - Locating the binary directories of a prefix for the host layout
  - Prepending those directories to a copy of PATH

Basic Usage:

    import "github.com/arc-language/condakit/pkg/env"

    e := env.New("/opt/conda/envs/py311", runtime.GOOS)

    // Directories that will be searched first
    for _, dir := range e.GetBinaryPaths() {
        fmt.Println(dir) // /opt/conda/envs/py311/bin
    }

    cmd := exec.Command("python", "-V")
    cmd.Env = e.BuildEnv(os.Environ())

Layouts:

Windows environments keep console entry points under Scripts and the
interpreter itself at the prefix root. Every other platform uses bin.
*/
