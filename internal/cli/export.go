package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the latest snapshot as JSON",
		Long:  "Print the latest snapshot as a JSON array in base order. The output can be re-imported.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snap, records, err := s.ExportLatest(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	debugf("exporting snapshot %s (%d records)", snap.ID, len(records))

	printJSON(cmd.OutOrStdout(), records)
}
