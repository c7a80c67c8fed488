package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/riskibarqy/cup-results/internal/domain/roster"
	"github.com/riskibarqy/cup-results/internal/domain/standing"
	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
	"golang.org/x/text/language"
)

var logger = logging.New(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")), "console")

func main() {
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cmd := strings.ToLower(strings.TrimSpace(os.Args[1]))
	var err error
	switch cmd {
	case "table":
		err = runTable(os.Args[2:], os.Stdout)
	case "check":
		err = runCheck(os.Args[2:], os.Stdout)
	case "normalize":
		err = runNormalize(os.Args[2:], os.Stdout)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

// runTable prints the ranked table of each group found in a match CSV.
func runTable(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	groups := fs.String("groups", "A,B,C,D", "comma separated groups to print")
	lang := fs.String("lang", "und", "BCP 47 tag used to order teams that tie on every criterion")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("table requires a match CSV path")
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("invalid -lang %q: %w", *lang, err)
	}
	doc, err := readDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	ranker := standing.NewRanker(tag)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, group := range splitList(*groups) {
		rows := ranker.Compute(doc.Records, group)
		fmt.Fprintf(tw, "Group %s\n", group)
		fmt.Fprintln(tw, "#\tTeam\tP\tW\tD\tL\tGF\tGA\tGD\tPts")
		for i, s := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
				i+1, s.Team, s.Played, s.Wins, s.Draws, s.Losses,
				s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.Points)
		}
		fmt.Fprintln(tw)
	}
	logger.Debug("tables computed", "file", fs.Arg(0), "rows", len(doc.Records))
	return tw.Flush()
}

// runCheck reports integrity warnings of a match CSV against a roster.
func runCheck(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	rosterPath := fs.String("roster", "", "roster.json path; team checks are skipped when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("check requires a match CSV path")
	}

	doc, err := readDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	r := roster.Roster{}
	if *rosterPath != "" {
		data, err := os.ReadFile(*rosterPath)
		if err != nil {
			return fmt.Errorf("read roster: %w", err)
		}
		if r, err = roster.Decode(data); err != nil {
			return fmt.Errorf("decode roster: %w", err)
		}
	}

	warnings := roster.Check(r, doc.Records)
	for _, w := range warnings {
		fmt.Fprintf(out, "row %d\t%s\t%s\n", w.Row, w.Code, w.Message)
	}
	logger.Info("check finished", "rows", len(doc.Records), "warnings", len(warnings))
	return nil
}

// runNormalize rewrites a match CSV with the required columns added.
func runNormalize(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("normalize requires a match CSV path")
	}

	doc, err := readDocument(fs.Arg(0))
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, doc.Encode())
	return err
}

func readDocument(path string) (csvdoc.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return csvdoc.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return csvdoc.Parse(string(data)), nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  standings table [-groups A,B,C,D] [-lang und] <matches.csv>")
	fmt.Println("  standings check [-roster roster.json] <matches.csv>")
	fmt.Println("  standings normalize <matches.csv>")
}
