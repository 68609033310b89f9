package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgonzale60/telomeric-identifier/internal/presentation"
	registry "github.com/pgonzale60/telomeric-identifier/internal/registry/domain"
	"github.com/pgonzale60/telomeric-identifier/internal/testutil"
)

// execute runs tidk in an empty working directory and home so no stray
// config file is picked up.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

// executeIn runs tidk with dir as the working directory.
func executeIn(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)

	root, a := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := a.execute(context.Background(), root)
	return stdout.String(), stderr.String(), err
}

// ============================================================================
// clades
// ============================================================================

func TestClades_Text(t *testing.T) {
	stdout, _, err := execute(t, "clades")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 104)
	require.Equal(t, "Accipitriformes", lines[0])
	require.Equal(t, "Venerida", lines[len(lines)-1])
}

func TestClades_JSON(t *testing.T) {
	stdout, _, err := execute(t, "clades", "--json")
	require.NoError(t, err)

	var clades []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &clades))
	require.Len(t, clades, 104)
}

func TestClades_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "clades", "Primates")
	require.Error(t, err)
}

// ============================================================================
// lookup
// ============================================================================

func TestLookup_Text(t *testing.T) {
	stdout, _, err := execute(t, "lookup", "Primates")
	require.NoError(t, err)
	require.Equal(t, "Primates\tAATGG\t1\n", stdout)
}

func TestLookup_JSON(t *testing.T) {
	stdout, _, err := execute(t, "lookup", "Araneae", "--json")
	require.NoError(t, err)

	var rec presentation.RecordDTO
	require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
	require.Equal(t, "Araneae", rec.Clade)
	require.Equal(t, 6, rec.MotifCount)
	require.Contains(t, rec.Motifs, "AACTTGT")
}

func TestLookup_NotFoundReportsCladeVerbatim(t *testing.T) {
	stdout, stderr, err := execute(t, "lookup", "Unicornopoda")
	require.ErrorIs(t, err, registry.ErrNotFound)
	require.Empty(t, stdout)
	require.Contains(t, stderr, `clade "Unicornopoda" not found`)
}

func TestLookup_IsCaseSensitive(t *testing.T) {
	_, _, err := execute(t, "lookup", "primates")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestLookup_RequiresOneArg(t *testing.T) {
	_, _, err := execute(t, "lookup")
	require.Error(t, err)
}

// ============================================================================
// table
// ============================================================================

func TestTable_WritesReportToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "table")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Hemiptera")
	require.Contains(t, stderr, presentation.Footer)
}

func TestTable_FlagsOverrideConfig(t *testing.T) {
	_, stderr, err := execute(t, "table", "--width", "0", "--border", "ascii")
	require.NoError(t, err)
	require.Contains(t, stderr, "AAAGC, AATAT, AACAT, ACATG, AACTTGT, ACTAT")
	require.Contains(t, stderr, "+")
}

func TestTable_InvalidBorder(t *testing.T) {
	_, _, err := execute(t, "table", "--border", "zigzag")
	require.Error(t, err)
	require.Contains(t, err.Error(), "report.border")
}

func TestTable_JSON(t *testing.T) {
	stdout, stderr, err := execute(t, "table", "--json")
	require.NoError(t, err)
	require.Empty(t, stderr)

	var recs []presentation.RecordDTO
	require.NoError(t, json.Unmarshal([]byte(stdout), &recs))
	require.Len(t, recs, 104)
	for _, r := range recs {
		require.Equal(t, len(r.Motifs), r.MotifCount, r.Clade)
	}
}

// ============================================================================
// validate
// ============================================================================

func TestValidate(t *testing.T) {
	path := testutil.NewBuilder(t).WithClade("Anura", testutil.Motifs("AACCCT")).WriteFile()

	stdout, _, err := execute(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "ok (1 clades)")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	path := testutil.NewBuilder(t).WithBrokenClades().WriteFile()

	_, stderr, err := execute(t, "validate", path)
	require.ErrorIs(t, err, registry.ErrDatasetIntegrity)
	require.ErrorIs(t, err, registry.ErrDuplicateClade)
	require.ErrorIs(t, err, registry.ErrInvalidNucleotide)
	require.Contains(t, stderr, "row 1 (Anura)")
	require.Contains(t, stderr, "row 2 (Araneae)")
	require.Contains(t, stderr, "row 3 (Primates)")
}

// ============================================================================
// configuration
// ============================================================================

func TestConfig_FileSetsOutputFormat(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0600))

	stdout, _, err := execute(t, "--config", cfgPath, "lookup", "Primates")
	require.NoError(t, err)
	require.Contains(t, stdout, `"motif_count": 1`)
}

func TestConfig_JSONFlagBeatsConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0600))

	stdout, _, err := execute(t, "--config", cfgPath, "lookup", "Primates", "--json=false")
	require.NoError(t, err)
	require.Equal(t, "Primates\tAATGG\t1\n", stdout)
}

func TestConfig_InvalidFileValue(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("report:\n  wrap_width: -5\n"), 0600))

	_, _, err := execute(t, "--config", cfgPath, "clades")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "clades")
	require.Error(t, err)
}

func TestConfig_EnvOverride(t *testing.T) {
	t.Setenv("TIDK_OUTPUT_FORMAT", "json")

	stdout, _, err := execute(t, "clades")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "["), "expected JSON array, got %q", stdout)
}

func TestConfig_LocalFileFollowsRedirect(t *testing.T) {
	root := t.TempDir()
	shared := filepath.Join(root, "shared")
	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(shared, 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".tidk"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(shared, "config.yaml"), []byte("output:\n  format: json\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(project, ".tidk", "redirect"), []byte("../../shared\n"), 0600))

	stdout, _, err := executeIn(t, project, "lookup", "Primates")
	require.NoError(t, err)
	require.Contains(t, stdout, `"motif_count": 1`)
}

func TestConfig_IgnoresForeignConfigInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output:\n  format: xml\n"), 0600))

	stdout, _, err := executeIn(t, dir, "clades")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "Accipitriformes\n"), "expected text output, got %q", stdout)
}

func TestConfigInit_ForeignConfigInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("unrelated: true\n"), 0600))

	stdout, _, err := executeIn(t, dir, "config", "init")
	require.NoError(t, err)
	require.Contains(t, stdout, "wrote .tidk/config.yaml")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, "unrelated: true\n", string(data), "foreign file untouched")
}

func TestConfigInit(t *testing.T) {
	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, stdout, "wrote .tidk/config.yaml")

	data, err := os.ReadFile(".tidk/config.yaml")
	require.NoError(t, err)
	require.Contains(t, string(data), "wrap_width: 30")
}

func TestDebug_LogsToStderr(t *testing.T) {
	_, stderr, err := execute(t, "--debug", "clades")
	require.NoError(t, err)
	require.Contains(t, stderr, "[INFO] [registry] registry loaded clades=104")
}

func TestDebug_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tidk.log")

	_, stderr, err := execute(t, "--debug", "--log-file", logPath, "lookup", "Primates")
	require.NoError(t, err)
	require.NotContains(t, stderr, "registry loaded")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "registry loaded")
}

func TestDebug_LogFileClosedAfterFailedCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	logPath := filepath.Join(t.TempDir(), "tidk.log")

	root, a := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--debug", "--log-file", logPath, "lookup", "Unicornopoda"})

	err := a.execute(context.Background(), root)
	require.ErrorIs(t, err, registry.ErrNotFound)
	require.Nil(t, a.logCleanup, "log file released after a failing command")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "registry loaded")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	require.Contains(t, stdout, "tidk version")
}
