package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/hangserve/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), again)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[solver]
wildcard = "_"
enforce_multiplicity = true

[lists]
dir = "/srv/lists"
default = "english"

[ui]
page_size = 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "_", cfg.Solver.Wildcard)
	assert.True(t, cfg.Solver.EnforceMultiplicity)
	assert.Equal(t, solver.DefaultTopLetters, cfg.Solver.TopLetters, "missing keys keep defaults")
	assert.Equal(t, "/srv/lists", cfg.Lists.Dir)
	assert.Equal(t, "english", cfg.Lists.Default)
	assert.True(t, cfg.Lists.Watch)
	assert.Equal(t, 25, cfg.UI.PageSize)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	// page_size has the wrong type, so the strict decode fails
	content := `
[solver]
top_letters = 5

[ui]
page_size = "lots"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Solver.TopLetters)
	assert.Equal(t, solver.DefaultPageSize, cfg.UI.PageSize)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("this is [not toml"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HANGSERVE_LISTS_DIR", "/tmp/words")
	t.Setenv("HANGSERVE_PAGE_SIZE", "15")
	t.Setenv("HANGSERVE_ENFORCE_MULTIPLICITY", "true")
	t.Setenv("HANGSERVE_WATCH_LISTS", "false")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg))

	assert.Equal(t, "/tmp/words", cfg.Lists.Dir)
	assert.Equal(t, 15, cfg.UI.PageSize)
	assert.True(t, cfg.Solver.EnforceMultiplicity)
	assert.False(t, cfg.Lists.Watch)
	assert.Equal(t, ".", cfg.Solver.Wildcard, "unset variables keep values")
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv("HANGSERVE_PAGE_SIZE", "ten")

	assert.Error(t, ApplyEnv(DefaultConfig()))
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\npage_size = 7\n"), 0o644))
	t.Setenv("HANGSERVE_TOP_LETTERS", "3")

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 7, cfg.UI.PageSize)
	assert.Equal(t, 3, cfg.Solver.TopLetters)
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.Wildcard = "ab"
	cfg.Solver.TopLetters = 0
	cfg.UI.PageSize = -1
	cfg.Server.MaxPageSize = 0
	cfg.Lists.Dir = ""

	cfg.Normalize()
	assert.Equal(t, DefaultConfig(), cfg)

	cfg.Solver.Wildcard = "x"
	cfg.Normalize()
	assert.Equal(t, ".", cfg.Solver.Wildcard, "letters cannot be wildcards")

	cfg.Solver.Wildcard = "*"
	cfg.Normalize()
	assert.Equal(t, '*', cfg.WildcardRune())
}

func TestSessionOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.EnforceMultiplicity = true
	cfg.Solver.FoldCase = true
	cfg.UI.PageSize = 20

	opts := cfg.SessionOptions()
	assert.Equal(t, solver.MultiplicityExact, opts.Solver.Multiplicity)
	assert.True(t, opts.Solver.FoldCase)
	assert.Equal(t, 20, opts.PageSize)
	assert.Equal(t, solver.DefaultWildcard, opts.Wildcard)
}

func TestRebuildConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", FileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[ui]\npage_size = 3\n"), 0o644))

	got, err := RebuildConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
