package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/export"
	"github.com/Skale-Club/xtimator/internal/domain/lifecycle"
	"github.com/Skale-Club/xtimator/internal/domain/search"
	"github.com/Skale-Club/xtimator/internal/infrastructure/clock"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

type ShareChannel string

const (
	ShareChannelShare     ShareChannel = "share"
	ShareChannelClipboard ShareChannel = "clipboard"
)

// ShareResult reports where the share text went. Cancelled is set when the
// user dismissed the share sheet, which is not an error.
type ShareResult struct {
	Text      string
	Channel   ShareChannel
	Cancelled bool
}

// EstimateFilter narrows List. Query matches title and customer name;
// Status matches the effective status.
type EstimateFilter struct {
	Query  string
	Status entities.EstimateStatus
}

// IEstimateUseCase exposes the saved estimates: queries, edits, lifecycle
// transitions and export.
type IEstimateUseCase interface {
	List(ctx context.Context, filter EstimateFilter) ([]entities.Estimate, error)
	Get(ctx context.Context, id string) (entities.Estimate, error)
	Update(ctx context.Context, id string, patch entities.EstimatePatch) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error

	Send(ctx context.Context, id string) (entities.Estimate, error)
	MarkViewed(ctx context.Context, id string) (entities.Estimate, error)
	Accept(ctx context.Context, id string) (entities.Estimate, error)
	Reject(ctx context.Context, id string) (entities.Estimate, error)

	Share(ctx context.Context, id string) (ShareResult, error)
	Copy(ctx context.Context, id string) (string, error)
	Dashboard(ctx context.Context) (DashboardStats, error)
}

type estimateStore interface {
	interfaces.IEstimateStore
	Customers() []entities.Customer
	Settings() entities.AppSettings
}

type EstimateUseCase struct {
	store     estimateStore
	clock     clock.Clock
	share     interfaces.IShareTarget
	clipboard interfaces.IClipboard
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase builds the use case. share may be nil, in which case
// Share always goes to the clipboard.
func NewEstimateUseCase(store estimateStore, clk clock.Clock, share interfaces.IShareTarget, clipboard interfaces.IClipboard) *EstimateUseCase {
	if clk == nil {
		clk = clock.Real()
	}
	return &EstimateUseCase{store: store, clock: clk, share: share, clipboard: clipboard}
}

func (u *EstimateUseCase) effective(e entities.Estimate) entities.Estimate {
	e.Status = lifecycle.EffectiveStatus(e, u.clock.Now())
	return e
}

// List returns estimates newest first.
func (u *EstimateUseCase) List(ctx context.Context, filter EstimateFilter) ([]entities.Estimate, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalid("Status", ruleMessages["oneof"])
	}
	all := u.store.Estimates()
	out := make([]entities.Estimate, 0, len(all))
	for _, e := range all {
		e = u.effective(e)
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if !search.Contains(filter.Query, e.Title, e.CustomerName) {
			continue
		}
		out = append(out, e)
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(estimates []entities.Estimate) {
	sort.SliceStable(estimates, func(i, j int) bool { return estimates[i].CreatedAt.After(estimates[j].CreatedAt) })
}

func (u *EstimateUseCase) Get(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidID
	}
	e, ok := u.store.Estimate(id)
	if !ok {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return u.effective(e), nil
}

// Update merges patch into the estimate. Totals are recomputed by the store.
func (u *EstimateUseCase) Update(ctx context.Context, id string, patch entities.EstimatePatch) (entities.Estimate, error) {
	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := validateEstimatePatch(patch); err != nil {
		return entities.Estimate{}, err
	}
	updated := u.store.UpdateEstimate(current.ID, patch)
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return u.effective(updated), nil
}

func validateEstimatePatch(patch entities.EstimatePatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return invalid("Title", ruleMessages["required"])
	}
	if patch.TaxRate != nil {
		if err := checkTaxRate("TaxRate", *patch.TaxRate); err != nil {
			return err
		}
	}
	if patch.DiscountAmount != nil {
		if err := checkAmount("DiscountAmount", *patch.DiscountAmount); err != nil {
			return err
		}
	}
	if patch.DiscountType != nil && *patch.DiscountType != "" &&
		*patch.DiscountType != entities.DiscountTypePercentage && *patch.DiscountType != entities.DiscountTypeFixed {
		return invalid("DiscountType", ruleMessages["oneof"])
	}
	if patch.LineItems != nil {
		for _, li := range *patch.LineItems {
			if strings.TrimSpace(li.ServiceName) == "" {
				return invalid("ServiceName", ruleMessages["required"])
			}
			if err := checkAmount("UnitPrice", li.UnitPrice); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if !u.store.DeleteEstimate(id) {
		return ErrEstimateNotFound
	}
	return nil
}

func (u *EstimateUseCase) Send(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(id, entities.EstimateStatusSent)
}

func (u *EstimateUseCase) MarkViewed(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(id, entities.EstimateStatusViewed)
}

func (u *EstimateUseCase) Accept(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(id, entities.EstimateStatusAccepted)
}

func (u *EstimateUseCase) Reject(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(id, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) transition(id string, to entities.EstimateStatus) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidID
	}
	updated, err := u.store.TransitionEstimate(id, to)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return u.effective(updated), nil
}

// Share hands the share text to the platform share target, falling back to
// the clipboard when sharing is not available.
func (u *EstimateUseCase) Share(ctx context.Context, id string) (ShareResult, error) {
	e, err := u.Get(ctx, id)
	if err != nil {
		return ShareResult{}, err
	}
	text := export.ShareText(e, u.store.Settings().CurrencySymbol)

	if u.share != nil {
		err := u.share.Share(ctx, export.Title(e), text)
		switch {
		case err == nil:
			return ShareResult{Text: text, Channel: ShareChannelShare}, nil
		case errors.Is(err, interfaces.ErrShareCancelled):
			return ShareResult{Text: text, Channel: ShareChannelShare, Cancelled: true}, nil
		case !errors.Is(err, interfaces.ErrShareUnavailable):
			return ShareResult{}, err
		}
	}

	if err := u.writeClipboard(ctx, text); err != nil {
		return ShareResult{}, err
	}
	return ShareResult{Text: text, Channel: ShareChannelClipboard}, nil
}

// Copy puts the short summary of the estimate on the clipboard.
func (u *EstimateUseCase) Copy(ctx context.Context, id string) (string, error) {
	e, err := u.Get(ctx, id)
	if err != nil {
		return "", err
	}
	text := export.SummaryText(e, u.store.Settings().CurrencySymbol)
	if err := u.writeClipboard(ctx, text); err != nil {
		return "", err
	}
	return text, nil
}

func (u *EstimateUseCase) writeClipboard(ctx context.Context, text string) error {
	if u.clipboard == nil {
		return interfaces.ErrShareUnavailable
	}
	return u.clipboard.WriteText(ctx, text)
}
