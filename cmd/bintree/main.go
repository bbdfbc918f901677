package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	bst "github.com/e11jah/bintree"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		sideways bool
		drain    bool
		check    bool
		heights  []string
		finds    []string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:          "bintree [file]",
		Short:        "Builds a binary search tree from a word list and prints it.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
	}
	cmd.Flags().BoolVar(&sideways, "sideways", false, "Also print the tree rotated a quarter turn.")
	cmd.Flags().BoolVar(&drain, "drain", false, "Drain the tree into an array and print it, one word per line.")
	cmd.Flags().BoolVar(&check, "check", false, "Clone the tree and verify the clone compares equal.")
	cmd.Flags().StringArrayVar(&heights, "height", nil, "Print the height of the subtree holding this word. Repeatable.")
	cmd.Flags().StringArrayVar(&finds, "find", nil, "Print whether this word is in the tree. Repeatable.")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
			Level(level).With().Timestamp().Logger()

		in := cmd.InOrStdin()
		source := "stdin"
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("error opening word list: %w", err)
			}
			defer f.Close()
			in, source = f, args[0]
		}

		tree, err := buildTree(log, in)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", source, err)
		}

		out := cmd.OutOrStdout()
		if _, err := tree.WriteTo(out); err != nil {
			return err
		}
		if sideways {
			if err := tree.Sideways(out); err != nil {
				return err
			}
		}
		for _, w := range heights {
			fmt.Fprintf(out, "height %s: %d\n", w, tree.Height(bst.Key(w)))
		}
		for _, w := range finds {
			_, ok := tree.Retrieve(bst.Key(w))
			fmt.Fprintf(out, "find %s: %t\n", w, ok)
		}
		if check {
			if !tree.Clone().Equal(tree) {
				return fmt.Errorf("clone of %s does not match the original", source)
			}
			log.Info().Msg("clone matches")
		}
		if drain {
			records := tree.Drain()
			for _, r := range records {
				fmt.Fprintln(out, r)
			}
			log.Info().
				Str("records", humanize.Comma(int64(len(records)))).
				Bool("empty", tree.IsEmpty()).
				Msg("drained tree")
		}
		return nil
	}
	return cmd
}

// buildTree inserts every whitespace separated word read from r.
func buildTree(log zerolog.Logger, r io.Reader) (*bst.Tree[bst.Key], error) {
	tree := bst.New[bst.Key]()
	var duplicates int64

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if !tree.Insert(bst.Key(scanner.Bytes())) {
			duplicates++
			log.Debug().Str("word", scanner.Text()).Msg("duplicate rejected")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log.Info().
		Str("records", humanize.Comma(int64(tree.Size()))).
		Str("duplicates", humanize.Comma(duplicates)).
		Msg("tree built")
	return tree, nil
}
