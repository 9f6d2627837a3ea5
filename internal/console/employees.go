package console

import (
	"context"
	"fmt"
	"sync"

	"hrmc/internal/api"
	"hrmc/internal/validate"
)

// EmployeesPage drives the largest screen: a server-paginated employee table
// with search, plus the department and position lists the add/edit form
// selectors need, loaded in parallel with the first page.
type EmployeesPage struct {
	client *api.Client
	Ctrl   *PageController[api.Employee]
	Dialog *Dialog[api.Employee]

	mu          sync.Mutex
	departments []api.Department
	positions   []api.Position
}

func NewEmployeesPage(client *api.Client, cfg ControllerConfig) *EmployeesPage {
	p := &EmployeesPage{client: client}
	p.Ctrl = NewPageController(cfg, p.loadPage)
	p.Dialog = NewDialog[api.Employee](cfg.Notifier, cfg.Navigator, cfg.Sessions)
	return p
}

func (p *EmployeesPage) loadPage(ctx context.Context, page, perPage int, searchTerm string) (api.ListResult[api.Employee], error) {
	if searchTerm != "" {
		return p.client.SearchEmployees(ctx, searchTerm, page, perPage)
	}
	return p.client.FetchEmployees(ctx, page, perPage)
}

// Mount gates the role, then loads the first employee page and both selector
// lists concurrently. Selector failures degrade to empty lists with a toast;
// only the primary load decides whether the mount failed.
func (p *EmployeesPage) Mount(ctx context.Context, role string) error {
	if err := p.Ctrl.Mount(role, "admin", "hr"); err != nil {
		return err
	}

	var wg sync.WaitGroup
	var primaryErr error

	wg.Add(3)
	go func() {
		defer wg.Done()
		primaryErr = p.Ctrl.Reload(ctx)
	}()
	go func() {
		defer wg.Done()
		deps, err := p.client.FetchDepartments(ctx)
		if err != nil {
			p.Ctrl.toastError("Could not load departments for the form")
			return
		}
		p.mu.Lock()
		p.departments = deps.Items
		p.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		positions, err := p.client.FetchPositions(ctx)
		if err != nil {
			p.Ctrl.toastError("Could not load positions for the form")
			return
		}
		p.mu.Lock()
		p.positions = positions.Items
		p.mu.Unlock()
	}()
	wg.Wait()

	return primaryErr
}

func (p *EmployeesPage) Departments() []api.Department {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.Department, len(p.departments))
	copy(out, p.departments)
	return out
}

func (p *EmployeesPage) Positions() []api.Position {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.Position, len(p.positions))
	copy(out, p.positions)
	return out
}

func validateEmployee(emp api.Employee) error {
	v := validate.New()
	v.Required("FullName", emp.FullName)
	v.Required("Email", emp.Email)
	v.Email("Email", emp.Email)
	v.PhoneVN("PhoneNumber", emp.PhoneNumber)
	v.Required("HireDate", emp.HireDate)
	v.PositiveID("DepartmentID", emp.DepartmentID.Int())
	v.PositiveID("PositionID", emp.PositionID.Int())
	if v.HasIssues() {
		return fmt.Errorf("%s", v.Message())
	}
	return nil
}

func (p *EmployeesPage) SubmitAdd(ctx context.Context) error {
	return p.Dialog.Submit(ctx, validateEmployee,
		func(ctx context.Context, emp api.Employee) error {
			_, err := p.client.AddEmployee(ctx, emp)
			return err
		},
		func(emp api.Employee) {
			p.Ctrl.toastSuccess(fmt.Sprintf("Employee %q created", emp.FullName))
			_ = p.Ctrl.Reload(ctx)
		})
}

func (p *EmployeesPage) SubmitEdit(ctx context.Context) error {
	return p.Dialog.Submit(ctx,
		func(emp api.Employee) error {
			if err := validateEmployee(emp); err != nil {
				return err
			}
			v := validate.New()
			v.PositiveID("EmployeeID", emp.EmployeeID.Int())
			if v.HasIssues() {
				return fmt.Errorf("%s", v.Message())
			}
			return nil
		},
		func(ctx context.Context, emp api.Employee) error {
			return p.client.UpdateEmployee(ctx, emp.EmployeeID.Int(), emp)
		},
		func(emp api.Employee) {
			p.Ctrl.toastSuccess(fmt.Sprintf("Employee %q updated", emp.FullName))
			_ = p.Ctrl.Reload(ctx)
		})
}

// Delete removes an employee. On failure the row stays; the table is only
// reloaded after a confirmed success.
func (p *EmployeesPage) Delete(ctx context.Context, id int) error {
	if err := p.client.DeleteEmployee(ctx, id); err != nil {
		p.Ctrl.fail(err)
		return err
	}
	p.Ctrl.toastSuccess("Employee deleted")
	return p.Ctrl.Reload(ctx)
}

// Details loads the expanded employee card.
func (p *EmployeesPage) Details(ctx context.Context, id int) (*api.Employee, error) {
	emp, err := p.client.GetEmployeeDetails(ctx, id)
	if err != nil {
		p.Ctrl.fail(err)
		return nil, err
	}
	return emp, nil
}
