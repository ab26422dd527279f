package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go-workforce/internal/confirm"
	"go-workforce/internal/employee"
	"go-workforce/internal/view"

	"github.com/spf13/cobra"
)

// EmployeesOptions holds flags for the employees commands.
type EmployeesOptions struct {
	*RootOptions
	Search string
	Create employee.CreateEmployeeRequest
	Yes    bool
}

type employeeList struct {
	Stats     employee.Stats     `json:"stats"`
	Employees []view.EmployeeRow `json:"employees"`
}

func NewEmployeesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EmployeesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Manage employee records",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List employees with directory statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEmployees(opts, cmd)
		},
	}
	list.Flags().StringVarP(&opts.Search, "search", "s", "", "filter by name or employee ID")

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Long: `Create an employee.

Every field is required. Employee ID and email must be unique; the service
rejects duplicates.

Example:
  directory employees create --id EMP-001 --name "Ada Lovelace" --email ada@example.com --department Engineering`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return createEmployee(opts, cmd)
		},
	}
	create.Flags().StringVar(&opts.Create.EmployeeID, "id", "", "employee ID")
	create.Flags().StringVar(&opts.Create.FullName, "name", "", "full name")
	create.Flags().StringVar(&opts.Create.Email, "email", "", "email address")
	create.Flags().StringVar(&opts.Create.Department, "department", "", "department")

	del := &cobra.Command{
		Use:   "delete <employee-id>",
		Short: "Delete an employee and its attendance records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteEmployee(opts, cmd, args[0])
		},
	}
	del.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")

	cmd.AddCommand(list, create, del)
	return cmd
}

func listEmployees(opts *EmployeesOptions, cmd *cobra.Command) error {
	s, err := opts.open(cmd, nil)
	if err != nil {
		return err
	}
	if err := s.store.RefreshEmployees(s.ctx); err != nil {
		return s.loadFailed(err)
	}

	s.employeeView.SetSearch(opts.Search)
	result := employeeList{Stats: s.employeeView.Stats(), Employees: s.employeeView.Rows()}

	return s.out.Success(result, s.notes.All(), func(w io.Writer) error {
		if err := writeStats(w, result.Stats); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return writeEmployees(w, result.Employees)
	})
}

func createEmployee(opts *EmployeesOptions, cmd *cobra.Command) error {
	s, err := opts.open(cmd, nil)
	if err != nil {
		return err
	}

	outcome := s.employees.Create(s.ctx, opts.Create)
	return s.finish(outcome, opts.Create.Normalize(), nil)
}

func deleteEmployee(opts *EmployeesOptions, cmd *cobra.Command, employeeID string) error {
	var gate confirm.Gate = confirm.NewPrompt(cmd.InOrStdin(), cmd.ErrOrStderr())
	if opts.Yes {
		gate = confirm.Static(true)
	}

	s, err := opts.open(cmd, gate)
	if err != nil {
		return err
	}

	outcome := s.employees.Delete(s.ctx, employeeID)
	return s.finish(outcome, map[string]string{"employee_id": employeeID}, nil)
}

func writeEmployees(w io.Writer, rows []view.EmployeeRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No employees found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE ID\tNAME\tEMAIL\tDEPARTMENT\tPRESENT")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d Days\n", r.EmployeeID, r.FullName, r.Email, r.Department, r.PresentDays)
	}
	return tw.Flush()
}

func writeStats(w io.Writer, st employee.Stats) error {
	_, err := fmt.Fprintf(w, "Employees: %d  Departments: %d  Present today: %d  Attendance rate: %d%%\n",
		st.TotalEmployees, st.DepartmentCount, st.PresentToday, st.AttendanceRate)
	return err
}
