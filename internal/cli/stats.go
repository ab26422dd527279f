package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show headcount, departments and today's attendance rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.open(cmd, nil)
			if err != nil {
				return err
			}
			if err := s.store.RefreshEmployees(s.ctx); err != nil {
				return s.loadFailed(err)
			}

			st := s.employeeView.Stats()
			return s.out.Success(st, s.notes.All(), func(w io.Writer) error {
				return writeStats(w, st)
			})
		},
	}
}
