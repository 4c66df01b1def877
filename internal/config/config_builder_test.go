package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{TMDB: TMDB{Language: "en-US"}},
		&StructuredConfig{TMDB: TMDB{APIKey: "merged-key"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, "merged-key", cfg.TMDB.APIKey)
}

// TestBuild_EarlierConfigWins verifies the merge priority: a field set by an
// earlier config is not overwritten by a later one.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{TMDB: TMDB{Language: "de-DE"}},
		&StructuredConfig{TMDB: TMDB{Language: "en-US"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "de-DE", cfg.TMDB.Language)
}

// TestBuild_SingleConfig verifies that a single config is returned as-is.
func TestBuild_SingleConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		TMDB: TMDB{Language: "fr-FR", APIKey: "single"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.TMDB.Language)
	assert.Equal(t, "single", cfg.TMDB.APIKey)
}

// ── withDotenv ────────────────────────────────────────────────────────────────

// TestWithDotenv_ReturnsBuilder verifies the fluent interface.
func TestWithDotenv_ReturnsBuilder(t *testing.T) {
	t.Chdir(t.TempDir())
	b := newConfigBuilder()
	assert.Same(t, b, b.withDotenv())
}

// TestWithDotenv_MissingFileIsNotAnError verifies that the absence of a .env
// file does not set b.err.
func TestWithDotenv_MissingFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder()
	b.withDotenv()
	assert.NoError(t, b.err)
}

// TestWithDotenv_LoadsFileIntoEnv verifies that variables from a .env file
// become visible to the subsequent withEnv step.
func TestWithDotenv_LoadsFileIntoEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TMDB_LANGUAGE=it-IT\n"), 0o600)
	require.NoError(t, err)

	t.Chdir(dir)
	t.Setenv("TMDB_LANGUAGE", "") // restore after test; godotenv will not override it

	// godotenv does not override variables that are already set, even to an
	// empty string, so unset it explicitly for the duration of the test
	require.NoError(t, os.Unsetenv("TMDB_LANGUAGE"))

	b := newConfigBuilder()
	b.withDotenv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "it-IT", b.configs[0].TMDB.Language)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Setenv("TMDB_LANGUAGE", "env-lang")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-key", b.configs[0].TMDB.APIKey)
	assert.Equal(t, "env-lang", b.configs[0].TMDB.Language)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.TMDB.APIKey = "json-key"
	payload.TMDB.Language = "json-lang"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-key", b.configs[1].TMDB.APIKey)
	assert.Equal(t, "json-lang", b.configs[1].TMDB.Language)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.TMDB.APIKey = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].TMDB.APIKey)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_ReturnsBuilder verifies the fluent interface.
func TestWithDefaults_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDefaults())
}

// TestWithDefaults_FillsUnsetFields verifies that defaults only apply where
// no earlier source has provided a value.
func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		TMDB: TMDB{Language: "ja-JP"},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "ja-JP", cfg.TMDB.Language)
	assert.Equal(t, DefaultBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.TMDB.RequestTimeout)
	assert.Equal(t, DefaultDatabaseDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultPrefetchCount, cfg.Workers.PrefetchWorkers)
}

// TestWithDefaults_AloneProducesCompleteConfig verifies that the defaults by
// themselves form a runnable configuration.
func TestWithDefaults_AloneProducesCompleteConfig(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultImageBaseURL, cfg.TMDB.ImageBaseURL)
	assert.Equal(t, DefaultLanguage, cfg.TMDB.Language)
	assert.Equal(t, DefaultImageTimeout, cfg.TMDB.ImageTimeout)
	assert.Equal(t, DefaultPosterSize, cfg.TMDB.PosterSize)
	assert.Equal(t, DefaultBackdropSize, cfg.TMDB.BackdropSize)
	assert.Equal(t, DefaultPosterCacheDir, cfg.Storage.Files.PosterCacheDir)
	assert.Empty(t, cfg.TMDB.APIKey, "no default API key is shipped")
}
