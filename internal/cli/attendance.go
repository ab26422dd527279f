package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go-workforce/internal/attendance"
	"go-workforce/internal/notify"
	"go-workforce/internal/report"
	"go-workforce/internal/view"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AttendanceOptions holds flags for the attendance commands.
type AttendanceOptions struct {
	*RootOptions
	Date     string
	Employee string
	Status   string
	Out      string
}

type exportResult struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

func NewAttendanceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AttendanceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Record and browse daily attendance",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List attendance records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listAttendance(opts, cmd)
		},
	}
	list.Flags().StringVar(&opts.Date, "date", "", "only records on this date (YYYY-MM-DD)")
	list.Flags().StringVar(&opts.Employee, "employee", "", "only records of this employee ID")

	mark := &cobra.Command{
		Use:   "mark [employee-id]",
		Short: "Mark an employee Present or Absent",
		Long: `Mark an employee Present or Absent for a date.

The date defaults to today (UTC).

Example:
  directory attendance mark EMP-001 --status Present --date 2024-01-01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID := ""
			if len(args) == 1 {
				employeeID = args[0]
			}
			return markAttendance(opts, cmd, employeeID)
		},
	}
	mark.Flags().StringVar(&opts.Status, "status", string(attendance.StatusPresent), "Present or Absent")
	mark.Flags().StringVar(&opts.Date, "date", "", "date to mark (YYYY-MM-DD, default today)")

	export := &cobra.Command{
		Use:   "export",
		Short: "Export the attendance list as an XLSX workbook",
		Long: `Export the attendance list as an XLSX workbook.

With --out - the raw workbook is written to stdout. That form has no
JSON envelope and is refused with --format json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportAttendance(opts, cmd)
		},
	}
	export.Flags().StringVarP(&opts.Out, "out", "o", "", "output file, - for stdout (text format only)")
	export.Flags().StringVar(&opts.Date, "date", "", "only records on this date (YYYY-MM-DD)")
	export.Flags().StringVar(&opts.Employee, "employee", "", "only records of this employee ID")
	_ = export.MarkFlagRequired("out")

	cmd.AddCommand(list, mark, export)
	return cmd
}

// loadAttendance refreshes both collections. Attendance is required; a
// missing employee list only degrades names to Unknown.
func loadAttendance(opts *AttendanceOptions, s *session) ([]view.AttendanceRow, error) {
	if err := s.store.RefreshAll(s.ctx); err != nil {
		if s.store.AttendanceRevision() == 0 {
			return nil, s.loadFailed(err)
		}
		s.logger.Warn("employee names unavailable", zap.Error(err))
		s.notifier.Notify(notify.LoadFailed())
	}

	s.attendanceView.SetDate(opts.Date)
	s.attendanceView.SetEmployee(opts.Employee)
	return s.attendanceView.Rows(), nil
}

func listAttendance(opts *AttendanceOptions, cmd *cobra.Command) error {
	s, err := opts.open(cmd, nil)
	if err != nil {
		return err
	}
	rows, err := loadAttendance(opts, s)
	if err != nil {
		return err
	}

	return s.out.Success(rows, s.notes.All(), func(w io.Writer) error {
		return writeAttendance(w, rows)
	})
}

func markAttendance(opts *AttendanceOptions, cmd *cobra.Command, employeeID string) error {
	s, err := opts.open(cmd, nil)
	if err != nil {
		return err
	}

	date := opts.Date
	if date == "" {
		date = attendance.Today(opts.now())
	}
	status, err := attendance.ParseStatus(opts.Status)
	if err != nil {
		// left as typed; the service rejects it
		status = attendance.Status(opts.Status)
	}

	req := attendance.MarkAttendanceRequest{Employee: employeeID, Date: date, Status: status}
	outcome := s.attendance.Mark(s.ctx, req)
	return s.finish(outcome, req, nil)
}

func exportAttendance(opts *AttendanceOptions, cmd *cobra.Command) error {
	if opts.Out == "-" && opts.Format == "json" {
		return NewExitError(ExitCommandError, "--out - writes a raw workbook and cannot be combined with --format json")
	}
	s, err := opts.open(cmd, nil)
	if err != nil {
		return err
	}
	rows, err := loadAttendance(opts, s)
	if err != nil {
		return err
	}

	if opts.Out == "-" {
		return report.WriteAttendance(cmd.OutOrStdout(), rows)
	}
	if err := report.SaveAttendance(opts.Out, rows); err != nil {
		return WrapExitError(ExitFailure, "export failed", err)
	}

	result := exportResult{Path: opts.Out, Records: len(rows)}
	return s.out.Success(result, s.notes.All(), func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Exported %d records to %s\n", result.Records, result.Path)
		return err
	})
}

func writeAttendance(w io.Writer, rows []view.AttendanceRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No attendance records")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tEMPLOYEE ID\tEMPLOYEE\tSTATUS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Date, r.Employee, r.EmployeeName, r.Status)
	}
	return tw.Flush()
}
