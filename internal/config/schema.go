// internal/config/schema.go
//
// The config schema as a fixed table: one row per option with its kind,
// required flag, default and help text. Validation is a generic walk over
// this table; --confighelp renders it.

package config

import (
	"fmt"
	"strings"
)

type kind int

const (
	kindString kind = iota
	kindStringList
	kindBool
)

func (k kind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindStringList:
		return "list of strings"
	case kindBool:
		return "bool"
	default:
		return "unknown"
	}
}

type field struct {
	name     string
	kind     kind
	required bool
	def      any // ignored when required
	help     string
}

var schema = []field{
	{
		name:     "volumes",
		kind:     kindStringList,
		required: true,
		help:     "a list of strings following the docker volume format",
	},
	{
		name: "dockerargs",
		kind: kindString,
		def:  "",
		help: "additional arguments to pass to docker",
	},
	{
		name:     "arches",
		kind:     kindStringList,
		required: true,
		help:     "a list of strings containing the arches you want to compile for",
	},
	{
		name:     "image",
		kind:     kindString,
		required: true,
		help:     "the image to use",
	},
	{
		name: "containername",
		kind: kindString,
		def:  "{random}-{arch}",
		help: "the name format for naming the docker containers",
	},
	{
		name:     "build",
		kind:     kindString,
		required: true,
		help:     "path to the script that compiles your program",
	},
	{
		name: "removecontainers",
		kind: kindBool,
		def:  true,
		help: "remove the containers after the compilation has completed",
	},
}

// Help renders the schema documentation shown by --confighelp.
func Help() string {
	var b strings.Builder
	b.WriteString("The config should be a valid json or yaml file containing information on what to do\n\n")
	b.WriteString("The following variables are available in the following properties: containername, image, dockerargs, build:\n\n")
	b.WriteString("\"{arch}\" - the arch that it is currently compiling for\n")
	b.WriteString("\"{random}\" - a random string of 20 characters\n\n")
	b.WriteString("Config file properties:\n\n")
	for _, f := range schema {
		fmt.Fprintf(&b, "%s:\n", f.name)
		fmt.Fprintf(&b, "    Type: %s\n", f.kind)
		fmt.Fprintf(&b, "    Required: %t\n", f.required)
		if f.required {
			b.WriteString("    Default: (none)\n")
		} else {
			fmt.Fprintf(&b, "    Default: %v\n", f.def)
		}
		fmt.Fprintf(&b, "    Description: %s\n\n", f.help)
	}
	return b.String()
}
