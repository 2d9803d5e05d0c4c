package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcliao/bio-browser/internal/model"
)

// detail is the payload of the show command.
type detail struct {
	Record  model.Record   `json:"record"`
	Name    string         `json:"name"`
	Similar []model.Record `json:"similar"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one record with its prediction",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	cmd.Flags().Int("similar", 3, "Number of similar profiles to list")

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("show", fmt.Errorf("invalid id %q", args[0]))
	}
	n, _ := cmd.Flags().GetInt("similar")

	sess, err := loadSession(cmd.Context(), cfg.PageSize)
	if err != nil {
		exitErr("load", err)
	}

	r, ok := sess.Record(id)
	if !ok {
		exitErr("show", fmt.Errorf("record not found: %d", id))
	}
	d := detail{Record: r, Name: r.DisplayName(), Similar: sess.Similar(id, n)}
	if d.Similar == nil {
		d.Similar = []model.Record{}
	}

	if formatFlag == "text" {
		writeDetailText(cmd.OutOrStdout(), d)
		return
	}
	printJSON(cmd.OutOrStdout(), d)
}
