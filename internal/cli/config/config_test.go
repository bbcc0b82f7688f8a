package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, SourceWorkbook, cfg.Source.Type)
	assert.Equal(t, 5*time.Minute, cfg.Source.CacheTTL())
	assert.Equal(t, DefaultServePort, cfg.ServeOrDefault().Port)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meritboard.yaml")
	content := `source:
  type: csvdir
  path: ./sheets
  cache_seconds: 60
schema:
  date_column: Date
  id_column: StudentID
  group_columns: [Grade, Class]
serve:
  port: 9000
output: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, SourceCSVDir, cfg.Source.Type)
	assert.Equal(t, "./sheets", cfg.Source.Path)
	assert.Equal(t, time.Minute, cfg.Source.CacheTTL())
	assert.Equal(t, 9000, cfg.ServeOrDefault().Port)
	assert.Equal(t, "json", cfg.OutputFormat)

	schema := cfg.SchemaOrDefault()
	assert.Equal(t, "Date", schema.DateColumn)
	assert.Equal(t, "StudentID", schema.IDColumn)
	assert.Equal(t, []string{"Grade", "Class"}, schema.GroupColumns)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meritboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  path: from-file\n"), 0644))

	t.Setenv("MERITBOARD_SOURCE__PATH", "from-env")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Source.Path)
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	t.Setenv("MERITBOARD_SOURCE__PATH", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("source", "", "")
	flags.String("source-type", "", "")
	flags.Int("cache-seconds", 0, "")
	require.NoError(t, flags.Parse([]string{
		"--source", "from-flag", "--source-type", "csvdir", "--cache-seconds", "30",
	}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Source.Path)
	assert.Equal(t, SourceCSVDir, cfg.Source.Type)
	assert.Equal(t, 30*time.Second, cfg.Source.CacheTTL())
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.Source.Type = "gsheet"
	assert.Error(t, cfg.Validate())

	assert.Error(t, cfg.ValidateSourcePath())
	cfg.Source.Path = "board.xlsx"
	assert.NoError(t, cfg.ValidateSourcePath())
}
