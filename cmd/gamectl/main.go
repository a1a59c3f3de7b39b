package main

import (
	"os"

	"gamelibrary-backend/internal/cli/gamectl"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	if err := gamectl.New(os.Stdout, log).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
