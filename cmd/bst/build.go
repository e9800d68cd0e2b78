package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var buildConfig struct {
	strings bool
	order   string
	remove  []string
	mirror  bool
	stats   bool
}

var buildCmd = &cobra.Command{
	Use:   "build [values...]",
	Short: "build a tree and print one of its traversals",
	Long: `
Insert the values, in the given order, into an empty tree. Values are read from
standard input, separated by whitespace, when none are given as arguments.
Values given with --remove are then looked up and removed, the tree is mirrored
if --mirror is given, and the elements are printed in the traversal order.
`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(
		&buildConfig.strings, "strings", false, "order values as strings instead of integers")
	buildCmd.Flags().StringVarP(
		&buildConfig.order, "order", "o", "in", "traversal order: in, pre, post or level")
	buildCmd.Flags().StringArrayVarP(
		&buildConfig.remove, "remove", "r", nil, "value to remove after building (repeatable)")
	buildCmd.Flags().BoolVar(
		&buildConfig.mirror, "mirror", false, "mirror the tree before printing")
	buildCmd.Flags().BoolVar(
		&buildConfig.stats, "stats", false, "print a table of tree statistics")
}

func runBuild(cmd *cobra.Command, args []string) error {
	order, ok := Trees.ParseOrder(buildConfig.order)
	if !ok {
		return errors.Newf("unknown traversal order %q", buildConfig.order)
	}
	if len(args) == 0 {
		var err error
		if args, err = readWords(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	out := cmd.OutOrStdout()
	if buildConfig.strings {
		return build(out, Trees.FromGods[string](utils.StringComparator), args, buildConfig.remove, order)
	}
	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	removes, err := parseInts(buildConfig.remove)
	if err != nil {
		return err
	}
	return build(out, Trees.FromGods[int](utils.IntComparator), vals, removes, order)
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		words = append(words, s.Text())
	}
	return words, errors.Wrap(s.Err(), "reading values")
}

func parseInts(words []string) ([]int, error) {
	vals := make([]int, 0, len(words))
	for _, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", w)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func build[T any](out io.Writer, c Trees.Comparator[T], vals, removes []T, order Trees.Order) error {
	t, err := Trees.New[T, uint32](c, uint32(len(vals)))
	if err != nil {
		return err
	}
	defer t.Destroy()

	for _, v := range vals {
		if _, err := t.Insert(v); err != nil {
			return errors.Wrapf(err, "inserting %v", v)
		}
		if verbose {
			log.Printf("insert %v: size %d, height %d", v, t.Size(), t.TreeHeight())
		}
	}
	for _, v := range removes {
		n, err := t.Find(v)
		if err != nil {
			return errors.Wrapf(err, "removing %v", v)
		}
		if _, err := t.Remove(n); err != nil {
			return errors.Wrapf(err, "removing %v", v)
		}
		if verbose {
			log.Printf("remove %v: size %d, height %d", v, t.Size(), t.TreeHeight())
		}
	}
	if buildConfig.mirror {
		if err := t.Mirror(); err != nil {
			return err
		}
		if verbose {
			log.Printf("mirror")
		}
	}

	l, err := t.Collect(order)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, l.Values()...)

	if buildConfig.stats {
		writeStats(out, t)
	}
	return nil
}

func writeStats[T any](out io.Writer, t *Trees.BSTree[T, uint32]) {
	first, last := "-", "-"
	if n, err := t.Minimum(); err == nil {
		v, _ := t.Element(n)
		first = fmt.Sprint(v)
	}
	if n, err := t.Maximum(); err == nil {
		v, _ := t.Element(n)
		last = fmt.Sprint(v)
	}
	tbl := tablewriter.NewWriter(out)
	tbl.SetHeader([]string{"size", "height", "first", "last", "mirrored"})
	tbl.Append([]string{
		strconv.FormatUint(uint64(t.Size()), 10),
		strconv.Itoa(t.TreeHeight()),
		first,
		last,
		strconv.FormatBool(t.Mirrored()),
	})
	tbl.Render()
}
