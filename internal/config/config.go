// Package config provides the ProjectConfig struct and loader for
// .callbench.yaml project-level configuration files, plus the
// environment credentials the pipeline needs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source
// of truth — New() references them and no other code should duplicate
// them.
const (
	DefaultTranscriptsDir = "transcripts/"
	DefaultReportsDir     = "reports/"

	DefaultMaxWaitMinutes  = 16.0
	DefaultPollIntervalSec = 10.0
	DefaultDelaySec        = 15.0
	DefaultRuns            = 2

	DefaultJudgeModel = "gpt-4o"

	DefaultWebhookPort = 8765
)

// PathsConfig holds the artifact directories.
type PathsConfig struct {
	Transcripts string `yaml:"transcripts,omitempty"`
	Reports     string `yaml:"reports,omitempty"`
}

// RunConfig holds pacing and call defaults for the sequencer.
type RunConfig struct {
	MaxWaitMinutes  float64 `yaml:"max_wait_minutes,omitempty"`
	PollIntervalSec float64 `yaml:"poll_interval_sec,omitempty"`
	DelaySec        float64 `yaml:"delay_sec,omitempty"`
	Runs            int     `yaml:"runs,omitempty"`
	Destination     string  `yaml:"destination,omitempty"`
}

// JudgeConfig holds evaluation settings.
type JudgeConfig struct {
	Model string `yaml:"model,omitempty"`
}

// ServerConfig holds webhook server settings.
type ServerConfig struct {
	Port int `yaml:"port,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from
// .callbench.yaml.
type ProjectConfig struct {
	Paths  PathsConfig  `yaml:"paths,omitempty"`
	Run    RunConfig    `yaml:"run,omitempty"`
	Judge  JudgeConfig  `yaml:"judge,omitempty"`
	Server ServerConfig `yaml:"server,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Transcripts: DefaultTranscriptsDir,
			Reports:     DefaultReportsDir,
		},
		Run: RunConfig{
			MaxWaitMinutes:  DefaultMaxWaitMinutes,
			PollIntervalSec: DefaultPollIntervalSec,
			DelaySec:        DefaultDelaySec,
			Runs:            DefaultRuns,
		},
		Judge: JudgeConfig{
			Model: DefaultJudgeModel,
		},
		Server: ServerConfig{
			Port: DefaultWebhookPort,
		},
	}
}

// MaxWait returns the transcript wait ceiling as a duration.
func (c *ProjectConfig) MaxWait() time.Duration {
	return time.Duration(c.Run.MaxWaitMinutes * float64(time.Minute))
}

// PollInterval returns the transcript poll interval as a duration.
func (c *ProjectConfig) PollInterval() time.Duration {
	return time.Duration(c.Run.PollIntervalSec * float64(time.Second))
}

// Delay returns the inter-call delay as a duration.
func (c *ProjectConfig) Delay() time.Duration {
	return time.Duration(c.Run.DelaySec * float64(time.Second))
}

// Load finds .callbench.yaml by walking up from startDir (max 10
// levels), unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error. Real
// I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading .callbench.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .callbench.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .callbench.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".callbench.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Transcripts != "" {
		dst.Paths.Transcripts = src.Paths.Transcripts
	}
	if src.Paths.Reports != "" {
		dst.Paths.Reports = src.Paths.Reports
	}

	if src.Run.MaxWaitMinutes != 0 {
		dst.Run.MaxWaitMinutes = src.Run.MaxWaitMinutes
	}
	if src.Run.PollIntervalSec != 0 {
		dst.Run.PollIntervalSec = src.Run.PollIntervalSec
	}
	if src.Run.DelaySec != 0 {
		dst.Run.DelaySec = src.Run.DelaySec
	}
	if src.Run.Runs != 0 {
		dst.Run.Runs = src.Run.Runs
	}
	if src.Run.Destination != "" {
		dst.Run.Destination = src.Run.Destination
	}

	if src.Judge.Model != "" {
		dst.Judge.Model = src.Judge.Model
	}

	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
}

// Env holds credentials and endpoints read from the environment.
type Env struct {
	VapiAPIKey        string
	VapiPhoneNumberID string
	OpenAIAPIKey      string
	WebhookBaseURL    string
	WebhookPort       int
	PatientTimezone   string
}

// LoadEnv reads credentials from the environment, loading a .env file
// first when one exists.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		VapiAPIKey:        os.Getenv("VAPI_API_KEY"),
		VapiPhoneNumberID: os.Getenv("VAPI_PHONE_NUMBER_ID"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		WebhookBaseURL:    os.Getenv("WEBHOOK_BASE_URL"),
		PatientTimezone:   os.Getenv("PATIENT_TIMEZONE"),
	}
	if p, err := strconv.Atoi(os.Getenv("WEBHOOK_PORT")); err == nil {
		env.WebhookPort = p
	}
	return env
}

// RequireVapi errors unless the call-platform credentials are set.
func (e Env) RequireVapi() error {
	if e.VapiAPIKey == "" {
		return errors.New("VAPI_API_KEY is not set (add it to .env)")
	}
	if e.VapiPhoneNumberID == "" {
		return errors.New("VAPI_PHONE_NUMBER_ID is not set (add it to .env)")
	}
	return nil
}
