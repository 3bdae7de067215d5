package roots

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resfs/errors"
)

func TestNew_Defaults(t *testing.T) {
	table := New()

	tests := []struct {
		cat  Category
		want string
	}{
		{BinShaders, "Shaders/Binary/"},
		{SrcShaders, "Shaders/"},
		{BinShadersCommon, "Common/Shaders/Binary/"},
		{SrcShadersCommon, "Common/Shaders/"},
		{Textures, "Textures/"},
		{Meshes, "Meshes/"},
		{BuiltinFonts, "Fonts/"},
		{GPUConfig, "GPUCfg/"},
		{OtherFiles, ""},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			got, err := table.RootPath(tt.cat)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, table.IsModified(tt.cat))
		})
	}

	assert.Len(t, table.Categories(), len(tests))
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	d := Defaults()
	d[Textures] = "changed/"

	got, err := New().RootPath(Textures)
	require.NoError(t, err)
	assert.Equal(t, "Textures/", got)
}

func TestFixPath(t *testing.T) {
	table := New()

	tests := []struct {
		name string
		file string
		cat  Category
		want string
	}{
		{"default root", "grass.png", Textures, "Textures/grass.png"},
		{"nested name", "lod0/cube.bin", Meshes, "Meshes/lod0/cube.bin"},
		{"empty default", "notes.txt", OtherFiles, "notes.txt"},
		{"dot segments", "../shared/a.png", Textures, "shared/a.png"},
		{"absolute unchanged", "/data/x.bin", Absolute, "/data/x.bin"},
		{"absolute normalized", `C:\data\\x.bin`, Absolute, "C:/data/x.bin"},
		{"absolute empty", "", Absolute, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.FixPath(tt.file, tt.cat)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFixPath_OverrideThenClear(t *testing.T) {
	table := New()

	require.NoError(t, table.SetRootPath(Textures, "/x"))
	got, err := table.FixPath("a.txt", Textures)
	require.NoError(t, err)
	assert.Equal(t, "/x/a.txt", got)
	assert.True(t, table.IsModified(Textures))

	table.ClearModifiedRootPaths()
	got, err = table.FixPath("a.txt", Textures)
	require.NoError(t, err)
	assert.Equal(t, "Textures/a.txt", got)
	assert.False(t, table.IsModified(Textures))
}

func TestSetRootPath(t *testing.T) {
	t.Run("replaces earlier override", func(t *testing.T) {
		table := New()
		require.NoError(t, table.SetRootPath(Meshes, "/first"))
		require.NoError(t, table.SetRootPath(Meshes, "/second/"))

		got, err := table.RootPath(Meshes)
		require.NoError(t, err)
		assert.Equal(t, "/second/", got)
	})

	t.Run("empty removes override", func(t *testing.T) {
		table := New()
		require.NoError(t, table.SetRootPath(Meshes, "/first"))
		require.NoError(t, table.SetRootPath(Meshes, ""))

		assert.False(t, table.IsModified(Meshes))
		got, _ := table.RootPath(Meshes)
		assert.Equal(t, "Meshes/", got)
	})

	t.Run("nonexistent directory accepted", func(t *testing.T) {
		table := New()
		assert.NoError(t, table.SetRootPath(Textures, "/does/not/exist"))
	})

	t.Run("unknown category", func(t *testing.T) {
		table := New()
		err := table.SetRootPath("lib7", "/x")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("absolute rejected", func(t *testing.T) {
		table := New()
		err := table.SetRootPath(Absolute, "/x")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestClearRootPath(t *testing.T) {
	table := New()
	require.NoError(t, table.SetRootPath(Textures, "/tex"))
	require.NoError(t, table.SetRootPath(Meshes, "/mesh"))

	require.NoError(t, table.ClearRootPath(Textures))
	assert.False(t, table.IsModified(Textures))
	assert.True(t, table.IsModified(Meshes))

	err := table.ClearRootPath("unknown")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestRegister(t *testing.T) {
	table := New()

	require.NoError(t, table.Register("terrain", "../Terrain/"))
	got, err := table.FixPath("h.raw", "terrain")
	require.NoError(t, err)
	assert.Equal(t, "../Terrain/h.raw", got)
	assert.True(t, table.IsRegistered("terrain"))

	err = table.Register("terrain", "elsewhere/")
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))

	err = table.Register(Textures, "elsewhere/")
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))

	err = table.Register("", "x/")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	err = table.Register(Absolute, "x/")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestUnknownCategory(t *testing.T) {
	table := New()

	_, err := table.FixPath("a.txt", "lib0")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = table.RootPath("lib0")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.False(t, table.IsRegistered("lib0"))
	assert.True(t, table.IsRegistered(Absolute))
}

func TestNewWithDefaults(t *testing.T) {
	table := NewWithDefaults(map[Category]string{
		"a":      "A/",
		"b":      "B/",
		"":       "skipped/",
		Absolute: "skipped/",
	})

	assert.Equal(t, []Category{"a", "b"}, table.Categories())
	assert.False(t, table.IsRegistered(Textures))
}

func TestSnapshot(t *testing.T) {
	table := NewWithDefaults(map[Category]string{"a": "A/", "b": "B/"})
	require.NoError(t, table.SetRootPath("b", "/override"))

	snap := table.Snapshot()
	assert.Equal(t, map[Category]string{"a": "A/", "b": "/override"}, snap)

	snap["a"] = "mutated"
	got, _ := table.RootPath("a")
	assert.Equal(t, "A/", got)
}

func TestTable_Concurrent(t *testing.T) {
	table := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = table.SetRootPath(Textures, fmt.Sprintf("/t%d", i))
				_, _ = table.FixPath("a.png", Textures)
				if j%10 == 0 {
					table.ClearModifiedRootPaths()
				}
			}
		}(i)
	}
	wg.Wait()

	got, err := table.FixPath("a.png", Textures)
	require.NoError(t, err)
	assert.Contains(t, []string{"Textures/a.png", "/t0/a.png", "/t1/a.png", "/t2/a.png",
		"/t3/a.png", "/t4/a.png", "/t5/a.png", "/t6/a.png", "/t7/a.png"}, got)
}
