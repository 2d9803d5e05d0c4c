// Package cli implements the bio-browser CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/bio-browser/internal/browser"
	"github.com/rcliao/bio-browser/internal/config"
	"github.com/rcliao/bio-browser/internal/store"
)

var (
	dbPath     string
	sourceRef  string
	formatFlag string
	verbose    bool

	cfg *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "bio-browser",
	Short: "Browse profession predictions",
	Long:  "Search, filter and page through biography records and their predicted professions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if dbPath != "" {
			c.DBPath = dbPath
		}
		if sourceRef != "" {
			c.Source = sourceRef
		}
		if verbose {
			c.Verbose = true
		}
		cfg = c
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $BIO_BROWSER_DB or ~/.bio-browser/records.db)")
	RootCmd.PersistentFlags().StringVarP(&sourceRef, "source", "s", "", "Load records from a JSON file or URL instead of the database ($BIO_BROWSER_SOURCE)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DBPath)
}

// loader picks the configured source, falling back to the latest imported
// snapshot. The returned close func releases the database if one was opened.
func loader() (store.Loader, func(), error) {
	if cfg.Source != "" {
		debugf("loading records from %s", cfg.Source)
		return store.OpenSource(cfg.Source, cfg.HTTPTimeout), func() {}, nil
	}
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	debugf("loading latest snapshot from %s", cfg.DBPath)
	return s, func() { s.Close() }, nil
}

// loadSession creates a session and loads its snapshot.
func loadSession(ctx context.Context, pageSize int) (*browser.Session, error) {
	src, closeFn, err := loader()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	sess := browser.New(pageSize)
	if err := sess.Load(ctx, src); err != nil {
		return sess, err
	}
	debugf("loaded %d records", len(sess.Records()))
	return sess, nil
}

func debugf(format string, args ...any) {
	if cfg != nil && cfg.Verbose {
		log.Printf("[VERBOSE] "+format, args...)
	}
}

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
