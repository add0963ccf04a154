// Command vocab extracts every lowercase ASCII lemma from Open English WordNet
// together with its grammatical categories and writes them, sorted, to a
// tab-separated text file.
//
// Usage:
//
//	vocab [output-path]
//
// The output path defaults to vocab.txt. Everything else is configured via
// the YAML file named by CONFIG_PATH (default ./vocab.yaml) and environment
// variables. When the dataset is missing it is downloaded once.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/wordnet-vocab/internal/app"
	"github.com/heartmarshall/wordnet-vocab/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [output-path]\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputPath := flag.Arg(0)
	if outputPath == "" {
		outputPath = app.DefaultOutputPath
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Vocab.RunTimeout)
	defer cancel()

	if err := app.Run(ctx, cfg, outputPath, logger, os.Stdout); err != nil {
		logger.Error("extraction failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}
