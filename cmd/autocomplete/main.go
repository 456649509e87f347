package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sarthakjha889/go-autocomplete-tst/internal/diagnostics"
)

// Run using
//  go run ./cmd/autocomplete --dataset 479k_words.txt <command> <flags>

var (
	datasetFlag = cli.StringFlag{
		Name:    "dataset",
		Usage:   "newline separated word list to load",
		EnvVars: []string{"AUTOCOMPLETE_DATASET"},
		Value:   "479k_words.txt",
	}
	limitFlag = cli.IntFlag{
		Name:  "limit",
		Usage: "maximum number of suggestions per prefix",
		Value: 10,
	}
	sampleFlag = cli.IntFlag{
		Name:  "sample",
		Usage: "number of words to compare on, the whole dataset if 0",
		Value: 0,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "autocomplete",
		Usage: "compare a letter trie and a ternary search tree for prefix autocompletion",
		Flags: append([]cli.Flag{
			&datasetFlag,
			&limitFlag,
		}, diagnostics.Flags()...),
		Commands: []*cli.Command{
			&MenuCmd,
			&CompareCmd,
			&CompleteCmd,
			&SearchCmd,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
