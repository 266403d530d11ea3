//go:build ignore

package main

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
)

// This mirrors the RunResult structure for schema generation
type RunResult struct {
	Metadata      Metadata       `json:"metadata" jsonschema:"required"`
	Configuration ConfigSnapshot `json:"configuration" jsonschema:"required"`
	Summary       RunSummary     `json:"summary" jsonschema:"required"`
}

type Metadata struct {
	Timestamp  string `json:"timestamp" jsonschema:"required,format=date-time" jsonschema_description:"ISO 8601 timestamp when the run finished"`
	Version    string `json:"version" jsonschema:"required" jsonschema_description:"Schema version for compatibility tracking"`
	RunId      string `json:"runId" jsonschema:"required" jsonschema_description:"Unique identifier of this run"`
	Hostname   string `json:"hostname,omitempty" jsonschema_description:"Host the run was executed on"`
	RunElapsed string `json:"runElapsed,omitempty" jsonschema_description:"Wall time of the run including shutdown (Go duration format)"`
}

type ConfigSnapshot struct {
	Duration      string       `json:"duration" jsonschema:"required" jsonschema_description:"Configured run duration (Go duration format)"`
	RatePerSecond int          `json:"ratePerSecond" jsonschema:"required" jsonschema_description:"Target frames generated per second"`
	Workers       int          `json:"workers" jsonschema:"required" jsonschema_description:"Number of save workers"`
	QueueCapacity int          `json:"queueCapacity" jsonschema:"required" jsonschema_description:"Frame queue capacity"`
	FrameWidth    int          `json:"frameWidth" jsonschema:"required"`
	FrameHeight   int          `json:"frameHeight" jsonschema:"required"`
	Sink          SinkSnapshot `json:"sink" jsonschema:"required"`
}

type SinkSnapshot struct {
	Type        string `json:"type" jsonschema:"enum=file,enum=redis,enum=discard" jsonschema_description:"Sink backend used for the run"`
	Directory   string `json:"directory,omitempty" jsonschema_description:"Output directory of the file sink"`
	JpegQuality int    `json:"jpegQuality,omitempty"`
	Address     string `json:"address,omitempty" jsonschema_description:"Redis address (credentials are redacted)"`
	KeyPrefix   string `json:"keyPrefix,omitempty"`
	Ttl         string `json:"ttl,omitempty" jsonschema_description:"Redis key expiry (Go duration format)"`
}

type RunSummary struct {
	Produced        uint64  `json:"produced" jsonschema:"required" jsonschema_description:"Frames generated and pushed onto the queue"`
	Saved           uint64  `json:"saved" jsonschema:"required" jsonschema_description:"Frames successfully persisted"`
	Evicted         uint64  `json:"evicted" jsonschema:"required" jsonschema_description:"Frames dropped from a full queue"`
	SinkFailures    uint64  `json:"sinkFailures" jsonschema:"required" jsonschema_description:"Persist attempts that failed"`
	BytesWritten    uint64  `json:"bytesWritten" jsonschema:"required" jsonschema_description:"Encoded bytes written to the sink"`
	FinalQueueDepth int     `json:"finalQueueDepth" jsonschema:"required" jsonschema_description:"Frames still queued after the workers were joined"`
	ElapsedMillis   int64   `json:"elapsedMillis" jsonschema:"required" jsonschema_description:"Wall time of the run in milliseconds, joins included"`
	AverageRate     float64 `json:"averageRate" jsonschema:"required" jsonschema_description:"Produced frames per second over the elapsed time"`
}

func main() {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	schema := reflector.Reflect(&RunResult{})
	schema.ID = jsonschema.ID("https://github.com/Nach0t/siss/run-result.schema.json")
	schema.Title = "Siss Run Result"
	schema.Description = "Complete output of a siss run including configuration and counters"
	schema.Version = "1.0.0"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile("schema.json", data, 0644); err != nil {
		panic(err)
	}
}
