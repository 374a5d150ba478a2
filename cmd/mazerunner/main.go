// Command mazerunner finds the cheapest route through one or more ASCII
// mazes, where every 90° turn costs far more than a step, and counts the
// cells that lie on any cheapest route.
//
//	mazerunner [flags] [file...]
//
// With no files the maze is read from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func setupLogging(level logrus.Level) {
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	envErr := godotenv.Load()

	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	setupLogging(cfg.LogLevel)
	if envErr != nil {
		log.Debugf(".env file not found or could not be loaded: %v", envErr)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	inputs, err := readInputs(cfg.Files, os.Stdin)
	if err != nil {
		log.Fatal("unable to read input: ", err)
	}

	reports, err := solveAll(mainCtx, inputs, cfg, log)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeReports(os.Stdout, reports); err != nil {
		log.Fatal("unable to write output: ", err)
	}
}
