package main

import (
	"github.com/spf13/cobra"

	"hrmc/internal/api"
	"hrmc/internal/console"
)

func (a *app) departmentsPage(cmd *cobra.Command) (*console.DepartmentsPage, error) {
	role, err := a.requireLogin()
	if err != nil {
		return nil, err
	}
	page := console.NewDepartmentsPage(a.client, a.consoleConfig())
	if err := page.Mount(cmd.Context(), role); err != nil {
		return nil, err
	}
	return page, nil
}

func newDepartmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Manage departments",
	}

	var pageNum int
	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.departmentsPage(cmd)
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
			for _, dep := range page.Ctrl.Items() {
				rows = append(rows, []string{
					itoa(dep.DepartmentID.Int()),
					dep.DepartmentName,
					itoa(dep.NumberOfEmployees),
				})
			}
			renderTable([]string{"ID", "NAME", "EMPLOYEES"}, rows)
			renderPaging(page.Ctrl.Paging())
			return nil
		},
	}
	list.Flags().IntVar(&pageNum, "page", 1, "Page to show")
	list.Flags().StringVar(&search, "search", "", "Filter by name")

	var name string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.departmentsPage(cmd)
			if err != nil {
				return err
			}
			page.Dialog.Open(api.Department{DepartmentName: name})
			return page.SubmitAdd(cmd.Context())
		},
	}
	add.Flags().StringVar(&name, "name", "", "Department name")
	_ = add.MarkFlagRequired("name")

	var updateID int
	var updateName string
	update := &cobra.Command{
		Use:   "update",
		Short: "Rename a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.departmentsPage(cmd)
			if err != nil {
				return err
			}
			page.Dialog.Open(api.Department{
				DepartmentID:   api.FlexInt(updateID),
				DepartmentName: updateName,
			})
			return page.SubmitEdit(cmd.Context())
		},
	}
	update.Flags().IntVar(&updateID, "id", 0, "Department id")
	update.Flags().StringVar(&updateName, "name", "", "New name")
	_ = update.MarkFlagRequired("id")
	_ = update.MarkFlagRequired("name")

	var deleteID int
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.departmentsPage(cmd)
			if err != nil {
				return err
			}
			return page.Delete(cmd.Context(), deleteID)
		},
	}
	del.Flags().IntVar(&deleteID, "id", 0, "Department id")
	_ = del.MarkFlagRequired("id")

	cmd.AddCommand(list, add, update, del)
	return cmd
}
