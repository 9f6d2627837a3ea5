package console

import (
	"context"
	"fmt"
	"strings"

	"hrmc/internal/api"
	"hrmc/internal/validate"
)

// DepartmentsPage lists departments. The backend has no department search
// endpoint, so filtering and paging happen client-side over one fetch.
type DepartmentsPage struct {
	client *api.Client
	Ctrl   *PageController[api.Department]
	Dialog *Dialog[api.Department]
}

func NewDepartmentsPage(client *api.Client, cfg ControllerConfig) *DepartmentsPage {
	p := &DepartmentsPage{client: client}
	p.Ctrl = NewPageController(cfg, p.loadPage)
	p.Dialog = NewDialog[api.Department](cfg.Notifier, cfg.Navigator, cfg.Sessions)
	return p
}

func (p *DepartmentsPage) Mount(ctx context.Context, role string) error {
	if err := p.Ctrl.Mount(role, "admin", "hr"); err != nil {
		return err
	}
	return p.Ctrl.Reload(ctx)
}

func (p *DepartmentsPage) loadPage(ctx context.Context, page, perPage int, searchTerm string) (api.ListResult[api.Department], error) {
	all, err := p.client.FetchDepartments(ctx)
	if err != nil {
		return api.ListResult[api.Department]{}, err
	}

	filtered := all.Items
	if term := strings.ToLower(strings.TrimSpace(searchTerm)); term != "" {
		filtered = filtered[:0:0]
		for _, dep := range all.Items {
			if strings.Contains(strings.ToLower(dep.DepartmentName), term) {
				filtered = append(filtered, dep)
			}
		}
	}

	start := (page - 1) * perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return api.ListResult[api.Department]{
		Items:    filtered[start:end],
		Total:    len(filtered),
		HasTotal: true,
	}, nil
}

func validateDepartment(dep api.Department) error {
	v := validate.New()
	v.Required("DepartmentName", dep.DepartmentName)
	if v.HasIssues() {
		return fmt.Errorf("%s", v.Message())
	}
	return nil
}

// SubmitAdd drives the add dialog through the state machine: validate, call
// the mutation, then close, toast, and reload.
func (p *DepartmentsPage) SubmitAdd(ctx context.Context) error {
	return p.Dialog.Submit(ctx, validateDepartment,
		func(ctx context.Context, dep api.Department) error {
			_, err := p.client.AddDepartment(ctx, dep)
			return err
		},
		func(dep api.Department) {
			p.Ctrl.toastSuccess(fmt.Sprintf("Department %q created", dep.DepartmentName))
			_ = p.Ctrl.Reload(ctx)
		})
}

func (p *DepartmentsPage) SubmitEdit(ctx context.Context) error {
	return p.Dialog.Submit(ctx,
		func(dep api.Department) error {
			v := validate.New()
			v.Required("DepartmentName", dep.DepartmentName)
			v.PositiveID("DepartmentID", dep.DepartmentID.Int())
			if v.HasIssues() {
				return fmt.Errorf("%s", v.Message())
			}
			return nil
		},
		func(ctx context.Context, dep api.Department) error {
			return p.client.UpdateDepartment(ctx, dep.DepartmentID.Int(), dep)
		},
		func(dep api.Department) {
			p.Ctrl.toastSuccess(fmt.Sprintf("Department %q updated", dep.DepartmentName))
			_ = p.Ctrl.Reload(ctx)
		})
}

func (p *DepartmentsPage) Delete(ctx context.Context, id int) error {
	if err := p.client.DeleteDepartment(ctx, id); err != nil {
		p.Ctrl.fail(err)
		return err
	}
	p.Ctrl.toastSuccess("Department deleted")
	return p.Ctrl.Reload(ctx)
}
