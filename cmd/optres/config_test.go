package main

import (
	"os"
	"path/filepath"
	"testing"

	"optres/cmd/optres/option"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinGuidesLoad(t *testing.T) {
	cat, err := loadSources(nil)
	require.NoError(t, err)

	for _, name := range []string{"basic-disk", "coco-jvc", "coco-dmk", "apple2-dsk", "labelled-disk", "coco-file"} {
		p, ok := cat.Get(name)
		require.True(t, ok, "preset %s", name)
		assert.NoError(t, option.ValidateSpec(p.Guide, p.Spec), "preset %s", name)
	}
}

func TestStarterConfigLoads(t *testing.T) {
	dir := t.TempDir()
	files, err := initConfigDir(dir, false)
	require.NoError(t, err)
	require.Len(t, files, 2)

	guides, err := resolveGuideFiles(dir, nil)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "guides", "guides.yml")}, guides)

	cat, err := loadSources(guides)
	require.NoError(t, err)

	p, ok := cat.Get("coco-tape")
	require.True(t, ok)
	assert.Equal(t, "B[1500]/600;F[0]-1;N'PROGRAM'", p.Spec)

	// big-floppy references a built-in guide.
	p, ok = cat.Get("big-floppy")
	require.True(t, ok)
	_, ok = option.FindOption(p.Guide, 'L')
	assert.True(t, ok)
}

func TestInitConfigDirRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := initConfigDir(dir, false)
	require.NoError(t, err)

	_, err = initConfigDir(dir, false)
	assert.ErrorContains(t, err, "already exists")

	_, err = initConfigDir(dir, true)
	assert.NoError(t, err)
}

func TestResolveConfigDir(t *testing.T) {
	t.Setenv(envConfigDir, "/tmp/explicit")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := resolveConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/explicit", dir)

	t.Setenv(envConfigDir, "")
	dir, err = resolveConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", appName), dir)
}

func TestResolveGuideFilesOrder(t *testing.T) {
	dir := t.TempDir()
	guidesDir := filepath.Join(dir, "guides")
	require.NoError(t, os.MkdirAll(guidesDir, 0o755))
	for _, name := range []string{"b.yml", "a.yaml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(guidesDir, name), []byte("guides: {}\n"), 0o644))
	}
	t.Setenv(envGuides, "/env/one.yml::/env/two.yml")

	files, err := resolveGuideFiles(dir, []string{"/flag.yml"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(guidesDir, "a.yaml"),
		filepath.Join(guidesDir, "b.yml"),
		"/env/one.yml",
		"/env/two.yml",
		"/flag.yml",
	}, files)
}

func TestGlobYAMLMissingDir(t *testing.T) {
	files, err := globYAML(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Nil(t, files)
}

func TestSplitColon(t *testing.T) {
	assert.Nil(t, splitColon(""))
	assert.Equal(t, []string{"a", "b"}, splitColon(":a::b:"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loadEnvFile(dir), "missing env file is not an error")

	content := "OPTRES_TEST_FRESH=from-file\nOPTRES_TEST_SET=from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, envFileName), []byte(content), 0o644))

	t.Setenv("OPTRES_TEST_FRESH", "")
	require.NoError(t, os.Unsetenv("OPTRES_TEST_FRESH"))
	t.Setenv("OPTRES_TEST_SET", "from-env")

	require.NoError(t, loadEnvFile(dir))
	assert.Equal(t, "from-file", os.Getenv("OPTRES_TEST_FRESH"))
	assert.Equal(t, "from-env", os.Getenv("OPTRES_TEST_SET"))
}

func TestLoadSourcesRejectsDuplicatePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yml")
	data := "presets:\n  basic-disk:\n    spec: \"H[1]\"\n    guide: floppy\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := loadSources([]string{path})
	assert.Error(t, err)
}

func TestLoadSourcesMissingFile(t *testing.T) {
	_, err := loadSources([]string{filepath.Join(t.TempDir(), "absent.yml")})
	assert.ErrorContains(t, err, "absent.yml")
}
