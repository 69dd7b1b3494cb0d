package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tmplforge/meta"
	"tmplforge/preprocessor"
)

func main() {
	keep := flag.Bool("keep", false, "keep the staging directory instead of removing it on exit")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		meta.ShowUsage()
		os.Exit(1)
	}

	root := flag.Arg(0)

	proc := preprocessor.NewTreeProcessor(logger)
	result, err := proc.ProcessTree(root)
	if err != nil {
		logger.Error("failed to process tree", "root", root, "error", err)
		os.Exit(1)
	}

	if result == nil {
		fmt.Println("nothing to do: empty root, staging directory failure, or no templates found")
		return
	}

	if !*keep {
		defer proc.Cleanup(result)
	}

	fmt.Printf("processed %d files into %s (had templates: %v)\n",
		len(result.OriginalToProcessed), result.ProcessedRoot, result.HadTemplates)
}
