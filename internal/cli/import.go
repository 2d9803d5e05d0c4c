package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/bio-browser/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file|url]",
		Short: "Import records as a new snapshot",
		Long:  "Load a profession predictions JSON document (file or URL), validate it, and store it as the latest snapshot.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	ref := cfg.Source
	if len(args) > 0 {
		ref = args[0]
	}
	if ref == "" {
		exitErr("import", fmt.Errorf("a file or URL is required (argument or --source)"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	debugf("importing %s into %s", ref, cfg.DBPath)
	snap, err := s.Import(cmd.Context(), ref, store.OpenSource(ref, cfg.HTTPTimeout))
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"snapshot":%q,"imported":%d}`+"\n", snap.ID, snap.RecordCount)
}
