/*
Package configuration defines the input configuration for a siss run.

Siss generates synthetic image frames at a fixed rate, pushes them through a
bounded in-memory queue and persists them through a pool of save workers. The
queue drops its oldest frame when full, so a slow sink costs old frames rather
than producer throughput.

# Configuration Structure

The main configuration type is RunConfig, which defines:

  - Run duration and target generation rate
  - Save worker pool size (at most MaxWorkers)
  - Queue capacity (frames held before the oldest is dropped)
  - Frame dimensions and the generator seed
  - Sink configuration (file, redis or discard backend)
  - Metrics endpoint port and the result file directory

# Example YAML Configuration

	duration: 30s
	ratePerSecond: 30
	workers: 4
	queue:
	  capacity: 200
	frame:
	  width: 1920
	  height: 1280
	sink:
	  type: file
	  file:
	    directory: ./output
	    jpegQuality: 85
	metrics:
	  port: 9015
	results:
	  directory: ./results

# Validation

Each configuration struct has a Validate() method:

  - RunConfig.Validate() validates the entire configuration tree
  - Checks the duration is positive and the rate is at least 1
  - Ensures the worker count is in range [1, MaxWorkers]
  - Validates the selected sink backend's own settings

Example usage:

	var config RunConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
	    return err
	}
	if err := config.Validate(); err != nil {
	    return fmt.Errorf("invalid configuration: %w", err)
	}
*/

package configuration
