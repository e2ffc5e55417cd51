package version

// Overridable at build time:
//
//	go build -ldflags "-X multiarch/internal/version.Version=1.1"
var Version = "1.0"

// Banner is the string printed by --version.
func Banner() string {
	return "Multi Arch Compiler v" + Version
}
