package main

import (
	"document-catalog/cli"
	"document-catalog/config"
	"document-catalog/logging"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCommandError)
	}
	logging.Setup(cfg.Log)

	if err := cli.NewRootCommand(*cfg).Execute(); err != nil {
		logrus.WithField("error", err).Debug("Command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
