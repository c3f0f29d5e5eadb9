package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"ocpp16/internal/config"
	"ocpp16/logger"
	"ocpp16/metrics"
	"ocpp16/registry"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 when every record passed, 1 when any record was
// rejected, 2 when the checker could not start.
func run() int {
	configPath := flag.String("config", "config.yml", "configuration file")
	inputPath := flag.String("input", "", "newline-delimited JSON records, stdin when empty")
	flag.Parse()

	conf, err := config.GetConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Error("configuration failed")
		return 2
	}
	log := logger.NewLogger(os.Stderr, conf.Log.Format, conf.Debug())

	reg, err := registry.NewForProfiles(conf.Profiles)
	if err != nil {
		log.Error("registry initialization failed", err)
		return 2
	}
	reg.SetLogger(log)
	log.Debug(fmt.Sprintf("profiles: %v", reg.ProfileNames()))

	var input io.Reader = os.Stdin
	if *inputPath != "" {
		file, err := os.Open(*inputPath)
		if err != nil {
			log.Error("opening input", err)
			return 2
		}
		defer file.Close()
		input = file
	}

	result, err := newChecker(reg, log, os.Stdout, conf.Checker.EchoPayload).run(input, conf.Checker.MaxLineBytes)
	log.FeatureEvent("checker", "", fmt.Sprintf("%d accepted, %d rejected", result.Accepted, result.Rejected))
	if metricsErr := metrics.WriteTextfile(conf.Metrics.Textfile); metricsErr != nil {
		log.Error("writing metrics", metricsErr)
	}
	if err != nil || result.Rejected > 0 {
		return 1
	}
	return 0
}
