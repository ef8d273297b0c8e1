package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"curlhunter/internal/banner"
	"curlhunter/internal/extract"
	"curlhunter/internal/httpclient"
	"curlhunter/internal/output"
	"curlhunter/internal/pattern"
	"curlhunter/internal/tld"
	"curlhunter/internal/token"
)

type options struct {
	cmd         string
	tldFile     string
	fetchTLDs   bool
	saveTLDs    string
	tldURL      string
	timeout     time.Duration
	wildcards   bool
	regexes     bool
	showAll     bool
	silent      bool
	outputJSONL string
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "curlhunter",
	Short: "Extract TLD-filtered domains from a curl command",
	Long: `curlhunter parses a curl-style command line (from --cmd or stdin),
extracts the hostnames it references (URLs, Host headers, --resolve and
--connect-to values) and keeps only those whose last label is a registered
TLD, to cut false positives when building indicators from attacker tooling
logs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !opts.silent {
			banner.PrintBanner()
		}
		return run(opts, os.Stdin, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&opts.cmd, "cmd", "c", "", "curl command as a single argument (if omitted, read stdin)")
	rootCmd.Flags().StringVar(&opts.tldFile, "tld-file", "", "path to newline-separated TLD list")
	rootCmd.Flags().BoolVar(&opts.fetchTLDs, "fetch-tlds", false, "fetch the latest IANA TLD list (requires network)")
	rootCmd.Flags().StringVar(&opts.saveTLDs, "save-tlds", "", "save fetched TLDs to this path (with --fetch-tlds)")
	rootCmd.Flags().StringVar(&opts.tldURL, "tld-url", tld.DefaultRemoteURL, "remote TLD list URL")
	rootCmd.Flags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "TLD fetch timeout")
	rootCmd.Flags().BoolVar(&opts.wildcards, "wildcards", false, "print suggested wildcard patterns (label.*)")
	rootCmd.Flags().BoolVar(&opts.regexes, "regexes", false, "print per-label regex patterns")
	rootCmd.Flags().BoolVar(&opts.showAll, "show-all", false, "print matched domains even when pattern flags are set")
	rootCmd.Flags().BoolVar(&opts.silent, "silent", false, "suppress the banner")
	rootCmd.Flags().StringVarP(&opts.outputJSONL, "output", "o", "", "JSONL output file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[-] Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the whole pipeline: read command, assemble the TLD set, tokenize,
// extract, filter, and emit the requested blocks. Resource-acquisition
// failures (empty command, missing TLD file, no TLDs at all) return errors;
// parse-level problems inside the core never do.
func run(opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	command := opts.cmd
	if command == "" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		command = string(raw)
	}
	command = strings.TrimSpace(command)
	if command == "" {
		return errors.New("provide a curl command via --cmd or stdin")
	}

	tlds, err := collectTLDs(opts, stderr)
	if err != nil {
		return err
	}

	found := extract.Domains(token.Fields(command))
	filtered := tld.Filter(found, tlds)

	matched := make([]string, 0, len(filtered))
	for d := range filtered {
		matched = append(matched, d)
	}
	sort.Strings(matched)

	if opts.showAll || (!opts.wildcards && !opts.regexes) {
		output.WriteMatched(stdout, matched)
	}

	var wildcards, regexes []string
	if opts.wildcards {
		wildcards = pattern.SuggestWildcards(filtered)
		output.WriteWildcards(stdout, wildcards)
	}
	if opts.regexes {
		regexes = pattern.Regexes(filtered)
		output.WriteRegexes(stdout, regexes)
	}

	if opts.outputJSONL != "" {
		rec := output.Record{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Command:   command,
			Domains:   matched,
			Wildcards: wildcards,
			Regexes:   regexes,
		}
		if err := writeJSONLFile(opts.outputJSONL, []output.Record{rec}); err != nil {
			return err
		}
	}
	return nil
}

// collectTLDs assembles the run's TLD set from the remote registry and/or a
// local file. A fetch failure is only fatal when no local file can back it
// up.
func collectTLDs(opts options, stderr io.Writer) (tld.Set, error) {
	tlds := make(tld.Set)

	if opts.fetchTLDs {
		fmt.Fprintln(stderr, "# fetching IANA TLD list...")
		fetched, err := fetchRemote(opts)
		if err != nil {
			fmt.Fprintf(stderr, "# warning: %v\n", err)
			if opts.tldFile == "" {
				return nil, err
			}
		} else {
			fmt.Fprintf(stderr, "# fetched %d tlds\n", len(fetched))
			tlds.Merge(fetched)
			if opts.saveTLDs != "" {
				if err := tld.SaveFile(opts.saveTLDs, fetched); err != nil {
					return nil, err
				}
				fmt.Fprintf(stderr, "# saved tlds to %s\n", opts.saveTLDs)
			}
		}
	}

	if opts.tldFile != "" {
		fromFile, err := tld.LoadFile(opts.tldFile)
		if err != nil {
			return nil, err
		}
		tlds.Merge(fromFile)
	}

	if len(tlds) == 0 {
		return nil, errors.New("no TLDs available: provide --tld-file or --fetch-tlds")
	}
	return tlds, nil
}

func fetchRemote(opts options) (tld.Set, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	client := httpclient.New(httpclient.Config{
		Timeout:   opts.timeout,
		UserAgent: "curlhunter",
		Retries:   1,
	})
	return tld.Fetch(ctx, client, opts.tldURL)
}

func writeJSONLFile(path string, records []output.Record) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create JSONL directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSONL file: %w", err)
	}
	defer f.Close()
	if err := output.WriteJSONL(f, records); err != nil {
		return fmt.Errorf("write JSONL: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
