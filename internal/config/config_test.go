package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultTranscriptsDir, cfg.Paths.Transcripts)
	assert.Equal(t, DefaultReportsDir, cfg.Paths.Reports)
	assert.Equal(t, 16*time.Minute, cfg.MaxWait())
	assert.Equal(t, 10*time.Second, cfg.PollInterval())
	assert.Equal(t, 15*time.Second, cfg.Delay())
	assert.Equal(t, DefaultRuns, cfg.Run.Runs)
	assert.Equal(t, DefaultJudgeModel, cfg.Judge.Model)
	assert.Equal(t, DefaultWebhookPort, cfg.Server.Port)
}

func TestLoadMergesFileOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
paths:
  transcripts: artifacts/transcripts
run:
  max_wait_minutes: 5
  delay_sec: 0.5
  destination: "+15559876543"
server:
  port: 9000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".callbench.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "artifacts/transcripts", cfg.Paths.Transcripts)
	assert.Equal(t, DefaultReportsDir, cfg.Paths.Reports, "unset fields keep defaults")
	assert.Equal(t, 5*time.Minute, cfg.MaxWait())
	assert.Equal(t, 500*time.Millisecond, cfg.Delay())
	assert.Equal(t, 10*time.Second, cfg.PollInterval())
	assert.Equal(t, "+15559876543", cfg.Run.Destination)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, DefaultJudgeModel, cfg.Judge.Model)
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".callbench.yaml"), []byte("judge:\n  model: gpt-4o-mini\n"), 0o644))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.Judge.Model)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".callbench.yaml"), []byte("run: [not a map"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestRequireVapi(t *testing.T) {
	assert.Error(t, Env{}.RequireVapi())
	assert.Error(t, Env{VapiAPIKey: "k"}.RequireVapi())
	assert.NoError(t, Env{VapiAPIKey: "k", VapiPhoneNumberID: "p"}.RequireVapi())
}
