package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	autocomplete "github.com/sarthakjha889/go-autocomplete-tst"
	"github.com/sarthakjha889/go-autocomplete-tst/internal/bench"
	"github.com/sarthakjha889/go-autocomplete-tst/internal/dataset"
	"github.com/sarthakjha889/go-autocomplete-tst/internal/diagnostics"
	"github.com/sarthakjha889/go-autocomplete-tst/internal/menu"
)

var MenuCmd = cli.Command{
	Action: diagnostics.Wrap(runMenu),
	Name:   "menu",
	Usage:  "interactive menu for loading, querying and comparing both indexes",
}

var CompareCmd = cli.Command{
	Action: diagnostics.Wrap(compare),
	Name:   "compare",
	Usage:  "measure insertion, search and memory of both indexes",
	Flags: []cli.Flag{
		&sampleFlag,
	},
}

var CompleteCmd = cli.Command{
	Action:    diagnostics.Wrap(complete),
	Name:      "complete",
	Usage:     "print the suggestions of both indexes for each prefix",
	ArgsUsage: "<prefix>...",
}

var SearchCmd = cli.Command{
	Action:    diagnostics.Wrap(search),
	Name:      "search",
	Usage:     "check whether words are stored in both indexes",
	ArgsUsage: "<word>...",
}

func loadDataset(ctx *cli.Context) (*dataset.Dataset, error) {
	path := ctx.String(datasetFlag.Name)
	ds, err := dataset.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(ctx.App.Writer, "Successfully loaded %d words from dataset.\n", ds.Len())
	return ds, nil
}

// loadIndexes loads the dataset into a fresh trie and tree.
func loadIndexes(ctx *cli.Context) (*dataset.Dataset, []autocomplete.PrefixIndex, error) {
	ds, err := loadDataset(ctx)
	if err != nil {
		return nil, nil, err
	}
	indexes := []autocomplete.PrefixIndex{autocomplete.NewLetterTrie(), autocomplete.NewTernaryTree()}
	for _, idx := range indexes {
		idx.Insert(ds.Words()...)
	}
	return ds, indexes, nil
}

func runMenu(ctx *cli.Context) error {
	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	m := menu.New(
		autocomplete.NewLetterTrie(),
		autocomplete.NewTernaryTree(),
		ds,
		dataset.NewLoader(),
		ctx.App.Reader,
		ctx.App.Writer,
	).WithLimit(ctx.Int(limitFlag.Name))
	return m.Run()
}

func compare(ctx *cli.Context) error {
	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	sample := ctx.Int(sampleFlag.Name)
	if sample < 0 {
		return fmt.Errorf("invalid sample size %d", sample)
	}
	words := ds.Words()
	if sample > 0 {
		words = ds.Sample(sample)
	}
	fmt.Fprintf(ctx.App.Writer, "\nTesting with %d words...\n\n", len(words))
	bench.Compare(words, autocomplete.NewLetterTrie(), autocomplete.NewTernaryTree()).Render(ctx.App.Writer)
	return nil
}

func complete(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("missing prefix argument")
	}
	_, indexes, err := loadIndexes(ctx)
	if err != nil {
		return err
	}
	loader := dataset.NewLoader()
	limit := ctx.Int(limitFlag.Name)
	for _, arg := range ctx.Args().Slice() {
		prefix := loader.Normalise(arg)
		trie := indexes[0].Autocomplete(prefix, limit)
		tst := indexes[1].Autocomplete(prefix, limit)

		fmt.Fprintf(ctx.App.Writer, "\nAuto-complete suggestions for '%s':\n", prefix)
		table := tablewriter.NewWriter(ctx.App.Writer)
		table.SetHeader([]string{"#", "Trie", "TST"})
		for i := 0; i < len(trie) || i < len(tst); i++ {
			table.Append([]string{strconv.Itoa(i + 1), at(trie, i), at(tst, i)})
		}
		table.SetFooter([]string{"", strconv.Itoa(len(trie)), strconv.Itoa(len(tst))})
		table.Render()
	}
	return nil
}

func at(words []string, i int) string {
	if i < len(words) {
		return words[i]
	}
	return ""
}

func search(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("missing word argument")
	}
	_, indexes, err := loadIndexes(ctx)
	if err != nil {
		return err
	}
	loader := dataset.NewLoader()
	for _, arg := range ctx.Args().Slice() {
		word := loader.Normalise(arg)
		for i, name := range []string{"Trie", "TST"} {
			status := "NOT FOUND"
			if indexes[i].Contains(word) {
				status = "FOUND"
			}
			fmt.Fprintf(ctx.App.Writer, "Word '%s' %s in %s\n", word, status, name)
		}
	}
	return nil
}
