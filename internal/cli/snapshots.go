package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/bio-browser/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List imported snapshots",
		Run:   runSnapshots,
	}

	RootCmd.AddCommand(cmd)
}

func runSnapshots(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snaps, err := s.Snapshots(cmd.Context())
	if err != nil {
		exitErr("list snapshots", err)
	}
	if snaps == nil {
		snaps = []store.Snapshot{}
	}

	printJSON(cmd.OutOrStdout(), snaps)
}
