//go:build tools
// +build tools

package tools

// Dependencies of schema generation scripts. Blank imports keep them in the
// module graph without building them into any binary.
import (
	_ "github.com/invopop/jsonschema"
)
