package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hrmc/internal/api"
	"hrmc/internal/console"
)

func (a *app) employeesPage(cmd *cobra.Command) (*console.EmployeesPage, error) {
	role, err := a.requireLogin()
	if err != nil {
		return nil, err
	}
	page := console.NewEmployeesPage(a.client, a.consoleConfig())
	if err := page.Mount(cmd.Context(), role); err != nil {
		return nil, err
	}
	return page, nil
}

func employeeFlags(cmd *cobra.Command, emp *employeeInput) {
	cmd.Flags().StringVar(&emp.fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&emp.email, "email", "", "Email address")
	cmd.Flags().StringVar(&emp.phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&emp.dateOfBirth, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&emp.gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&emp.hireDate, "hire-date", "", "Hire date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&emp.departmentID, "department", 0, "Department id")
	cmd.Flags().IntVar(&emp.positionID, "position", 0, "Position id")
	cmd.Flags().StringVar(&emp.status, "status", api.StatusActive, "Status")
}

type employeeInput struct {
	fullName     string
	email        string
	phone        string
	dateOfBirth  string
	gender       string
	hireDate     string
	departmentID int
	positionID   int
	status       string
}

func (in employeeInput) toEmployee(id int) api.Employee {
	return api.Employee{
		EmployeeID:   api.FlexInt(id),
		FullName:     in.fullName,
		Email:        in.email,
		PhoneNumber:  in.phone,
		DateOfBirth:  in.dateOfBirth,
		Gender:       in.gender,
		HireDate:     in.hireDate,
		DepartmentID: api.FlexInt(in.departmentID),
		PositionID:   api.FlexInt(in.positionID),
		Status:       in.status,
	}
}

func employeeRow(emp api.Employee) []string {
	department := ""
	if emp.Department != nil {
		department = emp.Department.DepartmentName
	}
	position := ""
	if emp.Position != nil {
		position = emp.Position.PositionName
	}
	return []string{
		itoa(emp.EmployeeID.Int()),
		emp.FullName,
		emp.Email,
		department,
		position,
		console.StatusBadge(emp.Status),
	}
}

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage employees",
	}

	var pageNum int
	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.employeesPage(cmd)
			if err != nil {
				return err
			}
			if search != "" {
				page.Ctrl.SetSearchTerm(cmd.Context(), search)
				page.Ctrl.FlushSearch(cmd.Context())
			}
			if err := advanceTo(cmd.Context(), page.Ctrl, pageNum); err != nil {
				return err
			}
			rows := make([][]string, 0)
			for _, emp := range page.Ctrl.Items() {
				rows = append(rows, employeeRow(emp))
			}
			renderTable([]string{"ID", "NAME", "EMAIL", "DEPARTMENT", "POSITION", "STATUS"}, rows)
			renderPaging(page.Ctrl.Paging())
			return nil
		},
	}
	list.Flags().IntVar(&pageNum, "page", 1, "Page to show")
	list.Flags().StringVar(&search, "search", "", "Search by name or email")

	var detailsID int
	details := &cobra.Command{
		Use:   "details",
		Short: "Show one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.employeesPage(cmd)
			if err != nil {
				return err
			}
			emp, err := page.Details(cmd.Context(), detailsID)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", emp.FullName, emp.Email)
			if emp.PhoneNumber != "" {
				fmt.Printf("phone: %s\n", emp.PhoneNumber)
			}
			if emp.Department != nil {
				fmt.Printf("department: %s\n", emp.Department.DepartmentName)
			}
			if emp.Position != nil {
				fmt.Printf("position: %s\n", emp.Position.PositionName)
			}
			fmt.Printf("hired: %s, status: %s\n", emp.HireDate, console.StatusBadge(emp.Status))
			return nil
		},
	}
	details.Flags().IntVar(&detailsID, "id", 0, "Employee id")
	_ = details.MarkFlagRequired("id")

	var addInput employeeInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Create an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.employeesPage(cmd)
			if err != nil {
				return err
			}
			page.Dialog.Open(addInput.toEmployee(0))
			return page.SubmitAdd(cmd.Context())
		},
	}
	employeeFlags(add, &addInput)
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("email")
	_ = add.MarkFlagRequired("hire-date")
	_ = add.MarkFlagRequired("department")
	_ = add.MarkFlagRequired("position")

	var updateID int
	var updateInput employeeInput
	update := &cobra.Command{
		Use:   "update",
		Short: "Update an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.employeesPage(cmd)
			if err != nil {
				return err
			}
			page.Dialog.Open(updateInput.toEmployee(updateID))
			return page.SubmitEdit(cmd.Context())
		},
	}
	update.Flags().IntVar(&updateID, "id", 0, "Employee id")
	employeeFlags(update, &updateInput)
	_ = update.MarkFlagRequired("id")

	var deleteID int
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.employeesPage(cmd)
			if err != nil {
				return err
			}
			return page.Delete(cmd.Context(), deleteID)
		},
	}
	del.Flags().IntVar(&deleteID, "id", 0, "Employee id")
	_ = del.MarkFlagRequired("id")

	cmd.AddCommand(list, details, add, update, del)
	return cmd
}
