package catalog

import (
	_ "embed"
	"strings"
)

//go:embed models.txt
var builtinModels string

// Builtin returns the compiled-in presets.
func Builtin() *Catalog {
	// strings.Reader cannot fail, so neither can Parse.
	c, _ := Parse(strings.NewReader(builtinModels), nil)
	return c
}
