package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		lowercase bool
		dir       string
		file      string
		ext       string
	}{
		{"full path", "/a/b/c.txt", true, "/a/b/", "c", "txt"},
		{"uppercase kept", "/a/b/c.TXT", false, "/a/b/", "c", "TXT"},
		{"uppercase lowered", "/a/b/c.TXT", true, "/a/b/", "c", "txt"},
		{"no extension", "/a/b/c", true, "/a/b/", "c", ""},
		{"dot in directory", "/a.d/b/c", true, "/a.d/b/", "c", ""},
		{"multiple dots", "mesh.lod0.bin", true, "", "mesh.lod0", "bin"},
		{"relative", "Textures/grass.png", true, "Textures/", "grass", "png"},
		{"backslashes", `C:\assets\grass.PNG`, true, "C:/assets/", "grass", "png"},
		{"directory only", "/a/b/", true, "/a/b/", "", ""},
		{"empty", "", true, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, file, ext := SplitPath(tt.input, tt.lowercase)
			assert.Equal(t, tt.dir, dir)
			assert.Equal(t, tt.file, file)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestDerivedAccessors(t *testing.T) {
	assert.Equal(t, "/a/b/", Dir("/a/b/c.txt"))
	assert.Equal(t, "c", FileName("/a/b/c.txt"))
	assert.Equal(t, "txt", Extension("/a/b/c.TXT", true))
	assert.Equal(t, "TXT", Extension("/a/b/c.TXT", false))
	assert.Equal(t, "c.TXT", FileNameAndExtension("/a/b/c.TXT", false))
	assert.Equal(t, "c.txt", FileNameAndExtension("/a/b/c.TXT", true))
	assert.Equal(t, "README", FileNameAndExtension("/a/README", false))
	assert.Equal(t, "", Extension("", true))
}

func TestReplaceExtension(t *testing.T) {
	tests := []struct {
		input string
		ext   string
		want  string
	}{
		{"/a/b/c.txt", "bin", "/a/b/c.bin"},
		{"/a/b/c.txt", ".bin", "/a/b/c.bin"},
		{"/a/b/c", "bin", "/a/b/c.bin"},
		{"/a/b/c.txt", "", "/a/b/c"},
		{"", "bin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input+"->"+tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceExtension(tt.input, tt.ext))
		})
	}
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("a/b.PNG", "png"))
	assert.True(t, HasExtension("a/b.png", ".PNG"))
	assert.False(t, HasExtension("a/b.png", "jpg"))
	assert.False(t, HasExtension("a/b", "png"))
}

func TestTrailingSlash(t *testing.T) {
	inputs := []string{"", "/", "a", "a/", "/a/b", "/a/b//", `a\b`, "//"}

	for _, p := range inputs {
		t.Run(p, func(t *testing.T) {
			added := AddTrailingSlash(p)
			assert.Equal(t, added, AddTrailingSlash(added), "AddTrailingSlash must be idempotent")

			removed := RemoveTrailingSlash(p)
			assert.Equal(t, removed, RemoveTrailingSlash(removed), "RemoveTrailingSlash must be idempotent")

			if p != "" {
				assert.Equal(t, RemoveTrailingSlash(p), RemoveTrailingSlash(AddTrailingSlash(p)))
			}
		})
	}

	assert.Equal(t, "a/", AddTrailingSlash("a"))
	assert.Equal(t, "", AddTrailingSlash(""))
	assert.Equal(t, "a", RemoveTrailingSlash("a//"))
	assert.Equal(t, "/", RemoveTrailingSlash("/"))
}

func TestParentPath(t *testing.T) {
	tests := map[string]string{
		"/a/b/c.txt": "/a/b/",
		"/a/b/":      "/a/",
		"/a":         "/",
		"/":          "",
		"a":          "",
		"":           "",
	}

	for input, want := range tests {
		assert.Equal(t, want, ParentPath(input), "ParentPath(%q)", input)
	}
}

func TestInternalNativeRoundTrip(t *testing.T) {
	sep := string(filepath.Separator)
	native := sep + "data" + sep + "shaders" + sep + "basic.vert"

	internal := InternalPath(native)
	assert.Equal(t, "/data/shaders/basic.vert", internal)
	assert.Equal(t, native, NativePath(internal))
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"a.txt":           "a.txt",
		"./a.txt":         "a.txt",
		"/x//a.txt":       "/x/a.txt",
		"/x/y/../a.txt":   "/x/a.txt",
		`C:\x\y.txt`:      "C:/x/y.txt",
		"Shaders/Binary/": "Shaders/Binary/",
		"/":               "/",
	}

	for input, want := range tests {
		assert.Equal(t, want, Normalize(input), "Normalize(%q)", input)
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/x/a.txt", Join("/x", "a.txt"))
	assert.Equal(t, "/x/a.txt", Join("/x/", "a.txt"))
	assert.Equal(t, "/x/sub/a.txt", Join(`\x\`, `sub\a.txt`))
	assert.Equal(t, "a.txt", Join("", "a.txt"))
	assert.Equal(t, "/x/", Join("/x", ""))
}
