package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hrmc/internal/api"
	"hrmc/internal/console"
)

func (a *app) positionsPage(cmd *cobra.Command) (*console.PositionsPage, error) {
	role, err := a.requireLogin()
	if err != nil {
		return nil, err
	}
	page := console.NewPositionsPage(a.client, a.consoleConfig())
	if err := page.Mount(cmd.Context(), role); err != nil {
		return nil, err
	}
	return page, nil
}

func newPositionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Manage positions",
	}

	var pageNum int
	var search string
	var withDistribution bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.positionsPage(cmd)
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
			header := []string{"ID", "NAME", "EMPLOYEES"}
			if withDistribution {
				header = append(header, "DISTRIBUTION")
			}
			rows := make([][]string, 0)
			for _, pos := range page.Ctrl.Items() {
				row := []string{
					itoa(pos.PositionID.Int()),
					pos.PositionName,
					itoa(pos.TotalEmployees),
				}
				if withDistribution {
					dist, err := page.Distribution(cmd.Context(), pos.PositionID.Int())
					if err != nil {
						return err
					}
					row = append(row, dist)
				}
				rows = append(rows, row)
			}
			renderTable(header, rows)
			renderPaging(page.Ctrl.Paging())
			return nil
		},
	}
	list.Flags().IntVar(&pageNum, "page", 1, "Page to show")
	list.Flags().StringVar(&search, "search", "", "Filter by name")
	list.Flags().BoolVar(&withDistribution, "distribution", false, "Include the per-department headcount column")

	var distID int
	dist := &cobra.Command{
		Use:   "distribution",
		Short: "Show one position's department distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.positionsPage(cmd)
			if err != nil {
				return err
			}
			text, err := page.Distribution(cmd.Context(), distID)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
	dist.Flags().IntVar(&distID, "id", 0, "Position id")
	_ = dist.MarkFlagRequired("id")

	var name string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.positionsPage(cmd)
			if err != nil {
				return err
			}
			page.Dialog.Open(api.Position{PositionName: name})
			return page.SubmitAdd(cmd.Context())
		},
	}
	add.Flags().StringVar(&name, "name", "", "Position name")
	_ = add.MarkFlagRequired("name")

	var updateID int
	var updateName string
	update := &cobra.Command{
		Use:   "update",
		Short: "Rename a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.positionsPage(cmd)
			if err != nil {
				return err
			}
			page.Dialog.Open(api.Position{
				PositionID:   api.FlexInt(updateID),
				PositionName: updateName,
			})
			return page.SubmitEdit(cmd.Context())
		},
	}
	update.Flags().IntVar(&updateID, "id", 0, "Position id")
	update.Flags().StringVar(&updateName, "name", "", "New name")
	_ = update.MarkFlagRequired("id")
	_ = update.MarkFlagRequired("name")

	var deleteID int
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.positionsPage(cmd)
			if err != nil {
				return err
			}
			return page.Delete(cmd.Context(), deleteID)
		},
	}
	del.Flags().IntVar(&deleteID, "id", 0, "Position id")
	_ = del.MarkFlagRequired("id")

	cmd.AddCommand(list, dist, add, update, del)
	return cmd
}
