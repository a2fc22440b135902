package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// ---------------------------------------------------------------------------
// compose
// ---------------------------------------------------------------------------

func TestComposeCommand(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "name: svc\n")
	source := writeFile(t, dir, "source.yaml", "port: 8080\ndebug: true\n")

	stdout, _, err := executeCommand("compose", "-t", target, "-s", "port", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: svc")
	assert.Contains(t, stdout, "port: 8080")
	assert.NotContains(t, stdout, "debug")
}

func TestComposeCommand_AllProperties(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "name: svc\n")
	source := writeFile(t, dir, "source.yaml", "port: 8080\ndebug: true\n")

	stdout, _, err := executeCommand("compose", "-t", target, source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "port: 8080")
	assert.Contains(t, stdout, "debug: true")
}

func TestComposeCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "name: svc\n")
	source := writeFile(t, dir, "source.yaml", "port: 8080\n")

	stdout, _, err := executeCommand("compose", "-t", target, "-f", "json", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"port": 8080`)
}

func TestComposeCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "name: svc\n")
	source := writeFile(t, dir, "source.yaml", "port: 8080\n")
	out := filepath.Join(dir, "out.yaml")

	_, _, err := executeCommand("compose", "-t", target, "-o", out, source)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "port: 8080")
}

func TestComposeCommand_Rename(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "{}\n")
	source := writeFile(t, dir, "source.yaml", "name: svc\n")

	stdout, _, err := executeCommand("compose", "-t", target, "--rename", "name=serviceName", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "serviceName: svc")
}

func TestComposeCommand_BadRename(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "{}\n")
	source := writeFile(t, dir, "source.yaml", "name: svc\n")

	_, _, err := executeCommand("compose", "-t", target, "--rename", "nonsense", source)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestComposeCommand_StrictCollision(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "name: old\n")
	source := writeFile(t, dir, "source.yaml", "name: new\n")

	// --- collision errors by default
	_, _, err := executeCommand("compose", "-t", target, source)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)

	// --- #name exempts the collision
	stdout, _, err := executeCommand("compose", "-t", target, "-s", "#name", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: new")

	// --- or collisions can be allowed globally
	stdout, _, err = executeCommand("compose", "-t", target, "--strict-collision=false", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: new")
}

func TestComposeCommand_StrictMissing(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "{}\n")
	source := writeFile(t, dir, "source.yaml", "name: svc\n")

	// --- selecting an absent property errors by default
	_, _, err := executeCommand("compose", "-t", target, "-s", "nope", source)
	require.Error(t, err)

	// --- unless strict-missing is off
	_, _, err = executeCommand("compose", "-t", target, "-s", "nope", "--strict-missing=false", source)
	require.NoError(t, err)
}

func TestComposeCommand_Profile(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "{}\n")
	source := writeFile(t, dir, "source.yaml", "name: svc\n_secret: xyz\n")

	// The built-in public profile drops underscore-prefixed properties.
	stdout, _, err := executeCommand("compose", "-t", target, "--profile", "public", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: svc")
	assert.NotContains(t, stdout, "_secret")
}

func TestComposeCommand_ProfilesFile(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "{}\n")
	source := writeFile(t, dir, "source.yaml", "name: svc\nport: 8080\n")
	profiles := writeFile(t, dir, "profiles.yaml", `
profiles:
  svc:
    select: [name]
    rename:
      name: serviceName
`)

	stdout, _, err := executeCommand("compose",
		"-t", target, "--profile", "svc", "--profiles-file", profiles, source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "serviceName: svc")
	assert.NotContains(t, stdout, "port")
}

func TestComposeCommand_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "{}\n")
	source := writeFile(t, dir, "source.yaml", "name: svc\n")

	_, _, err := executeCommand("compose", "-t", target, "-f", "toml", source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "toml"`)
}

func TestComposeCommand_MissingTarget(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "source.yaml", "name: svc\n")

	_, _, err := executeCommand("compose", "-t", filepath.Join(dir, "nope.yaml"), source)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

// ---------------------------------------------------------------------------
// plan
// ---------------------------------------------------------------------------

func TestPlanCommand(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "name: svc\n")
	source := writeFile(t, dir, "source.yaml", "port: 8080\n")

	stdout, _, err := executeCommand("plan", "-t", target, "--no-color", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "+port: 8080")

	// The target file is untouched.
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "name: svc\n", string(data))
}

func TestPlanCommand_NoChanges(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "name: svc\n")
	source := writeFile(t, dir, "source.yaml", "{}\n")

	stdout, _, err := executeCommand("plan", "-t", target, source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No differences")
}

func TestPlanCommand_ExitCode(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.yaml", "name: svc\n")
	source := writeFile(t, dir, "source.yaml", "port: 8080\n")

	_, _, err := executeCommand("plan", "-t", target, "--exit-code", source)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

// ---------------------------------------------------------------------------
// completion
// ---------------------------------------------------------------------------

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		stdout, _, err := executeCommand("completion", shell)
		require.NoError(t, err, shell)
		assert.NotEmpty(t, stdout, shell)
	}
}

func TestCompletionCommand_InvalidShell(t *testing.T) {
	_, _, err := executeCommand("completion", "tcsh")
	require.Error(t, err)
}
