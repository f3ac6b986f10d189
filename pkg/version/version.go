package version

import "runtime/debug"

// version is set at build time with -ldflags "-X farmstand/pkg/version.version=...".
var version = ""

// Version reports the linker-provided version, then the module version, then "dev".
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
