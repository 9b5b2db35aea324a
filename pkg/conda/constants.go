// pkg/conda/constants.go
package conda

const (
	// DefaultExecutable is the frontend invoked when none is configured
	DefaultExecutable = "conda"

	// MetaDir is the per-environment directory listing linked packages
	MetaDir = "conda-meta"

	// MetaSuffix is stripped from metadata filenames to get canonical names
	MetaSuffix = ".json"

	// RootEnvName refers to the root prefix
	RootEnvName = "root"

	// BaseEnvName is the newer alias for the root environment
	BaseEnvName = "base"
)

// Platform layouts
const (
	LayoutPOSIX   = "posix"
	LayoutWindows = "windows"
)

// Subcommands
const (
	cmdInfo    = "info"
	cmdCreate  = "create"
	cmdInstall = "install"
	cmdUpdate  = "update"
	cmdRemove  = "remove"
	cmdSearch  = "search"
	cmdShare   = "share"
	cmdClone   = "clone"
	cmdConfig  = "config"
)

// Common flags
const (
	flagJSON    = "--json"
	flagYes     = "--yes"
	flagQuiet   = "--quiet"
	flagName    = "--name"
	flagPrefix  = "--prefix"
	flagVersion = "--version"
	flagForce   = "--force"
)

// SearchPlatforms are the subdirs accepted by Search
var SearchPlatforms = []string{
	"win-32",
	"win-64",
	"osx-64",
	"osx-arm64",
	"linux-32",
	"linux-64",
	"linux-aarch64",
	"linux-ppc64le",
	"noarch",
}
