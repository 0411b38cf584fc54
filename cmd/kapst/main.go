// Command kapst parses a math-notation source file and prints its node
// sequence as an indented tree, for manual inspection of the parser.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pluto0x0/Kapst"
)

var (
	verbose      bool
	displayStyle string
	strict       bool
)

func main() {
	root := &cobra.Command{
		Use:   "kapst [file]",
		Short: "Parse a math-notation source and print its node tree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log lexer/parser diagnostics")
	root.Flags().StringVar(&displayStyle, "display-style", "display", "display style hint forwarded to handlers")
	root.Flags().BoolVar(&strict, "strict", false, "strict hint forwarded to handlers")

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("kapst failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var input []byte
	var err error
	if len(args) == 1 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	settings := kapst.NewSettings(
		kapst.WithDisplayStyle(displayStyle),
		kapst.WithStrict(strict),
	)

	log.Debug().Int("bytes", len(input)).Msg("parsing input")
	nodes, err := kapst.Parse(string(input), settings)
	if err != nil {
		if ie, ok := err.(kapst.InputError); ok {
			log.Debug().Int("pos", ie.Pos()).Msg("parse failed")
		}
		return err
	}

	for _, n := range nodes {
		printNode(cmd.OutOrStdout(), n, 0)
	}
	return nil
}

func printNode(w io.Writer, n kapst.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Fprintf(w, "%s%s\n", indent, describe(n))
	children := childrenOf(n)
	for _, c := range children {
		printNode(w, c, depth+1)
	}
}

// describe renders a one-line summary of n's own fields, without
// descending into children (printNode handles recursion via childrenOf).
func describe(n kapst.Node) string {
	switch v := n.(type) {
	case *kapst.Textord:
		return "textord " + strconv.Quote(v.Text())
	case *kapst.Mathord:
		return "mathord " + strconv.Quote(v.Text())
	case *kapst.Atom:
		return "atom[" + v.Family + "] " + strconv.Quote(v.Text())
	default:
		return n.Type()
	}
}

func childrenOf(n kapst.Node) []kapst.Node {
	var out []kapst.Node
	kapst.Walk(n, func(child kapst.Node) bool {
		if child == n {
			return true
		}
		out = append(out, child)
		return false // don't recurse further here; printNode does its own recursion
	})
	return out
}
