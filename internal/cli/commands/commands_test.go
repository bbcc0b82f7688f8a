package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneul-labs/meritboard/internal/cli/config"
)

func TestNewDayCommand(t *testing.T) {
	cmd := NewDayCommand()

	assert.Equal(t, "day <period>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"month", "day"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewWeekCommand(t *testing.T) {
	cmd := NewWeekCommand()

	assert.Equal(t, "week <period>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"grade", "class", "on"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewRecordsCommand(t *testing.T) {
	cmd := NewRecordsCommand()

	assert.Equal(t, "records <period>", cmd.Use)
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"grade", "class", "from", "to"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewGroupsCommand(t *testing.T) {
	cmd := NewGroupsCommand()

	assert.Equal(t, "groups <period>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("position"), "flag position should exist")
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	flags := []string{"port", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

// setupCSVFixture writes a csvdir source plus a config file pointing at it,
// chdirs into the directory, and loads the config so commands can run.
func setupCSVFixture(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()

	sheets := filepath.Join(tmpDir, "sheets")
	require.NoError(t, os.Mkdir(sheets, 0o755))

	csv := "날짜,학번,이름,사유,비고\n" +
		"2024년 3월 4일,2401,김하늘,지각,\n" +
		",2403,이준호,지각,\n" +
		"3/5,3101,박서연,실내화 미착용,\n"
	require.NoError(t, os.WriteFile(filepath.Join(sheets, "3월.csv"), []byte(csv), 0o644))

	cfgYAML := "source:\n  type: csvdir\n  path: " + sheets + "\noutput: markdown\n"
	cfgPath := filepath.Join(tmpDir, "meritboard.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	_, err = config.LoadConfig(cfgPath, nil)
	require.NoError(t, err)
}

func TestDayCommandListsMatchingRecords(t *testing.T) {
	setupCSVFixture(t)

	cmd := NewDayCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"3월", "--day", "4"})

	require.NoError(t, cmd.Execute())

	// Both the dated row and the forward-filled row land on 3/4.
	assert.Contains(t, out.String(), "2401")
	assert.Contains(t, out.String(), "2403")
	assert.NotContains(t, out.String(), "3101")
}

func TestRecordsCommandFiltersByGroup(t *testing.T) {
	setupCSVFixture(t)

	cmd := NewRecordsCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"3월", "--grade", "3"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "3101")
	assert.NotContains(t, out.String(), "2401")
}

func TestRecordsCommandRejectsHalfOpenWindow(t *testing.T) {
	setupCSVFixture(t)

	cmd := NewRecordsCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"3월", "--from", "2024-03-01"})

	require.Error(t, cmd.Execute())
}

func TestPeriodsCommandListsSheets(t *testing.T) {
	setupCSVFixture(t)

	cmd := NewPeriodsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "3월")
}

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name     string
		setupDir func(t *testing.T, dir string)
		args     []string
		wantErr  bool
	}{
		{
			name: "init empty directory",
			args: []string{},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "meritboard.yaml"), []byte("existing"), 0o600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "meritboard.yaml"), []byte("existing"), 0o600)
			},
			args: []string{"--force"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			oldWd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(tmpDir))
			t.Cleanup(func() { _ = os.Chdir(oldWd) })

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err = cmd.Execute()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(filepath.Join(tmpDir, "meritboard.yaml"))
			require.NoError(t, err)
			assert.Contains(t, string(data), "source:")
			assert.Contains(t, string(data), "schema:")
		})
	}
}
