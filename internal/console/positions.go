package console

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"hrmc/internal/api"
	"hrmc/internal/validate"
)

// PositionsPage lists positions; the per-department distribution of each
// position is fetched lazily the first time a row asks for it.
type PositionsPage struct {
	client *api.Client
	Ctrl   *PageController[api.Position]
	Dialog *Dialog[api.Position]

	mu            sync.Mutex
	distributions map[int][]api.PositionDistribution
}

func NewPositionsPage(client *api.Client, cfg ControllerConfig) *PositionsPage {
	p := &PositionsPage{
		client:        client,
		distributions: make(map[int][]api.PositionDistribution),
	}
	p.Ctrl = NewPageController(cfg, p.loadPage)
	p.Dialog = NewDialog[api.Position](cfg.Notifier, cfg.Navigator, cfg.Sessions)
	return p
}

func (p *PositionsPage) Mount(ctx context.Context, role string) error {
	if err := p.Ctrl.Mount(role, "admin", "hr"); err != nil {
		return err
	}
	return p.Ctrl.Reload(ctx)
}

func (p *PositionsPage) loadPage(ctx context.Context, page, perPage int, searchTerm string) (api.ListResult[api.Position], error) {
	all, err := p.client.FetchPositions(ctx)
	if err != nil {
		return api.ListResult[api.Position]{}, err
	}
	filtered := all.Items
	if term := strings.ToLower(strings.TrimSpace(searchTerm)); term != "" {
		filtered = filtered[:0:0]
		for _, pos := range all.Items {
			if strings.Contains(strings.ToLower(pos.PositionName), term) {
				filtered = append(filtered, pos)
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
	return api.ListResult[api.Position]{Items: filtered[start:end], Total: len(filtered), HasTotal: true}, nil
}

// Distribution returns the formatted "{department} ({count})" line for a
// position, fetching and caching it on first use.
func (p *PositionsPage) Distribution(ctx context.Context, positionID int) (string, error) {
	p.mu.Lock()
	cached, ok := p.distributions[positionID]
	p.mu.Unlock()
	if ok {
		return FormatDistribution(cached), nil
	}

	dist, err := p.client.FetchPositionDistribution(ctx, positionID)
	if err != nil {
		p.Ctrl.fail(err)
		return "", err
	}
	p.mu.Lock()
	p.distributions[positionID] = dist
	p.mu.Unlock()
	return FormatDistribution(dist), nil
}

func validatePosition(pos api.Position) error {
	v := validate.New()
	v.Required("PositionName", pos.PositionName)
	if v.HasIssues() {
		return fmt.Errorf("%s", v.Message())
	}
	return nil
}

func (p *PositionsPage) SubmitAdd(ctx context.Context) error {
	return p.Dialog.Submit(ctx, validatePosition,
		func(ctx context.Context, pos api.Position) error {
			_, err := p.client.AddPosition(ctx, pos)
			return err
		},
		func(pos api.Position) {
			p.Ctrl.toastSuccess(fmt.Sprintf("Position %q created", pos.PositionName))
			_ = p.Ctrl.Reload(ctx)
		})
}

func (p *PositionsPage) SubmitEdit(ctx context.Context) error {
	return p.Dialog.Submit(ctx,
		func(pos api.Position) error {
			v := validate.New()
			v.Required("PositionName", pos.PositionName)
			v.PositiveID("PositionID", pos.PositionID.Int())
			if v.HasIssues() {
				return fmt.Errorf("%s", v.Message())
			}
			return nil
		},
		func(ctx context.Context, pos api.Position) error {
			return p.client.UpdatePosition(ctx, pos.PositionID.Int(), pos)
		},
		func(pos api.Position) {
			p.Ctrl.toastSuccess(fmt.Sprintf("Position %q updated", pos.PositionName))
			_ = p.Ctrl.Reload(ctx)
		})
}

func (p *PositionsPage) Delete(ctx context.Context, id int) error {
	if err := p.client.DeletePosition(ctx, id); err != nil {
		p.Ctrl.fail(err)
		return err
	}
	p.mu.Lock()
	delete(p.distributions, id)
	p.mu.Unlock()
	p.Ctrl.toastSuccess("Position deleted")
	return p.Ctrl.Reload(ctx)
}
