package metrics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Nach0t/siss/internal/configuration"
)

// SchemaVersion identifies the result file layout for downstream tooling.
const SchemaVersion = "1.0.0"

// RunResult is the complete output of a run: what was configured, what
// happened, and enough metadata to compare results across runs.
type RunResult struct {
	Metadata      Metadata       `json:"metadata"`
	Configuration ConfigSnapshot `json:"configuration"`
	Summary       RunSummary     `json:"summary"`
}

// Metadata records when and where the run happened.
type Metadata struct {
	Timestamp  string `json:"timestamp"`
	Version    string `json:"version"`
	RunId      string `json:"runId"`
	Hostname   string `json:"hostname,omitempty"`
	RunElapsed string `json:"runElapsed,omitempty"`
}

// ConfigSnapshot is the run configuration as it was at run time, with
// durations rendered as strings for readability.
type ConfigSnapshot struct {
	Duration      string       `json:"duration"`
	RatePerSecond int          `json:"ratePerSecond"`
	Workers       int          `json:"workers"`
	QueueCapacity int          `json:"queueCapacity"`
	FrameWidth    int          `json:"frameWidth"`
	FrameHeight   int          `json:"frameHeight"`
	Sink          SinkSnapshot `json:"sink"`
}

// SinkSnapshot describes the sink backend used. Credentials are never
// included.
type SinkSnapshot struct {
	Type        string `json:"type"`
	Directory   string `json:"directory,omitempty"`
	JpegQuality int    `json:"jpegQuality,omitempty"`
	Address     string `json:"address,omitempty"`
	KeyPrefix   string `json:"keyPrefix,omitempty"`
	Ttl         string `json:"ttl,omitempty"`
}

// ConvertConfigurationToSnapshot flattens the live configuration into its
// result file form.
func ConvertConfigurationToSnapshot(config configuration.RunConfig) ConfigSnapshot {
	snapshot := ConfigSnapshot{
		Duration:      config.Duration.String(),
		RatePerSecond: config.RatePerSecond,
		Workers:       config.Workers,
		QueueCapacity: config.Queue.Capacity,
		FrameWidth:    config.Frame.Width,
		FrameHeight:   config.Frame.Height,
		Sink: SinkSnapshot{
			Type: config.Sink.Type,
		},
	}
	switch config.Sink.Type {
	case configuration.SinkTypeFile:
		snapshot.Sink.Directory = config.Sink.File.Directory
		snapshot.Sink.JpegQuality = config.Sink.File.JpegQuality
	case configuration.SinkTypeRedis:
		snapshot.Sink.Address = config.Sink.Redis.Address
		snapshot.Sink.KeyPrefix = config.Sink.Redis.KeyPrefix
		if config.Sink.Redis.Ttl > 0 {
			snapshot.Sink.Ttl = config.Sink.Redis.Ttl.String()
		}
	}
	return snapshot
}

// BuildRunResult assembles the result file contents for a finished run.
func BuildRunResult(config configuration.RunConfig, summary RunSummary, finishedAt time.Time) RunResult {
	hostname, _ := os.Hostname()
	return RunResult{
		Metadata: Metadata{
			Timestamp:  finishedAt.UTC().Format(time.RFC3339),
			Version:    SchemaVersion,
			RunId:      uuid.NewString(),
			Hostname:   hostname,
			RunElapsed: (time.Duration(summary.ElapsedMillis) * time.Millisecond).String(),
		},
		Configuration: ConvertConfigurationToSnapshot(config),
		Summary:       summary,
	}
}

// WriteRunResultToFile writes the result as indented JSON to path, creating
// parent directories as needed.
func WriteRunResultToFile(result RunResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling run result")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating result directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing run result to %s", path)
	}
	return nil
}
