package roots

import (
	"maps"
	"strings"

	"github.com/jmgilman/go/resfs/errors"
)

// Category identifies a logical resource root such as shader binaries or
// textures. Categories are plain strings so libraries can register their own.
type Category string

// Built-in categories.
const (
	BinShaders       Category = "bin-shaders"
	SrcShaders       Category = "src-shaders"
	BinShadersCommon Category = "bin-shaders-common"
	SrcShadersCommon Category = "src-shaders-common"
	Textures         Category = "textures"
	Meshes           Category = "meshes"
	BuiltinFonts     Category = "builtin-fonts"
	GPUConfig        Category = "gpu-config"
	OtherFiles       Category = "other-files"

	// Absolute marks names that are already full paths. It has no directory
	// and can be neither registered nor overridden.
	Absolute Category = "absolute"
)

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

var builtinDefaults = map[Category]string{
	BinShaders:       "Shaders/Binary/",
	SrcShaders:       "Shaders/",
	BinShadersCommon: "Common/Shaders/Binary/",
	SrcShadersCommon: "Common/Shaders/",
	Textures:         "Textures/",
	Meshes:           "Meshes/",
	BuiltinFonts:     "Fonts/",
	GPUConfig:        "GPUCfg/",
	OtherFiles:       "",
}

// Defaults returns a copy of the compiled-in default directories.
func Defaults() map[Category]string {
	return maps.Clone(builtinDefaults)
}

// validateName rejects names that can never be registered.
func validateName(c Category) error {
	switch {
	case strings.TrimSpace(string(c)) == "":
		return errors.New(errors.CodeInvalidInput, "category name must not be empty")
	case c == Absolute:
		return errors.Newf(errors.CodeInvalidInput, "category %q is reserved", c)
	}
	return nil
}
