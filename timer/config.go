package timer

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// ConfigPath is the location of the timer configuration inside the embedded assets.
const ConfigPath = "assets/timer_config.yaml"

// CueConfig names the asset file of each audio cue, relative to the assets directory.
type CueConfig struct {
	Warning  string `yaml:"warning"`
	Finished string `yaml:"finished"`
}

// Config holds the static configuration of the countdown screen.
type Config struct {
	InitialSeconds   int           `yaml:"initial_seconds"`
	WarningThreshold int           `yaml:"warning_threshold"`
	TickInterval     time.Duration `yaml:"tick_interval"`
	DraftMaxLength   int           `yaml:"draft_max_length"`
	Cues             CueConfig     `yaml:"cues"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		InitialSeconds:   300,
		WarningThreshold: 10,
		TickInterval:     time.Second,
		DraftMaxLength:   2,
		Cues: CueConfig{
			Warning:  "warning.wav",
			Finished: "finished.wav",
		},
	}
}

// CueFiles maps every cue to its configured asset file name.
func (c Config) CueFiles() map[Cue]string {
	return map[Cue]string{
		CueWarning:  c.Cues.Warning,
		CueFinished: c.Cues.Finished,
	}
}

// LoadConfig reads the yaml configuration at path and overlays it on the defaults.
// Missing or zero values keep their default.
func LoadConfig(reader AppContentReader, path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := reader.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read timer config: %w", err)
	}

	var fileData Config
	if err := yaml.Unmarshal(data, &fileData); err != nil {
		return cfg, fmt.Errorf("parse timer config yaml: %w", err)
	}

	if err := fileData.validate(); err != nil {
		return cfg, err
	}
	applyConfig(&cfg, fileData)
	return cfg, nil
}

func (c Config) validate() error {
	if c.InitialSeconds < 0 {
		return fmt.Errorf("initial_seconds must be positive, got %d", c.InitialSeconds)
	}
	if c.WarningThreshold < 0 {
		return fmt.Errorf("warning_threshold must not be negative, got %d", c.WarningThreshold)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("tick_interval must not be negative, got %s", c.TickInterval)
	}
	if c.DraftMaxLength < 0 {
		return fmt.Errorf("draft_max_length must not be negative, got %d", c.DraftMaxLength)
	}
	return nil
}

func applyConfig(cfg *Config, fileData Config) {
	if fileData.InitialSeconds > 0 {
		cfg.InitialSeconds = fileData.InitialSeconds
	}
	if fileData.WarningThreshold > 0 {
		cfg.WarningThreshold = fileData.WarningThreshold
	}
	if fileData.TickInterval > 0 {
		cfg.TickInterval = fileData.TickInterval
	}
	if fileData.DraftMaxLength > 0 {
		cfg.DraftMaxLength = fileData.DraftMaxLength
	}
	if fileData.Cues.Warning != "" {
		cfg.Cues.Warning = fileData.Cues.Warning
	}
	if fileData.Cues.Finished != "" {
		cfg.Cues.Finished = fileData.Cues.Finished
	}
}
