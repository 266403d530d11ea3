package main

import (
	"os"

	"github.com/Nach0t/siss/cmd/siss/cmd"
	"github.com/Nach0t/siss/internal/common/logging"
)

func main() {
	logging.MustConfigureApplicationLogging()
	err := cmd.RootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
