package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/search"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
)

type CustomerInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"omitempty,email"`
	Phone   string `validate:"omitempty,phone"`
	Address string
	Notes   string
	Tags    []string
}

func (in CustomerInput) trimmed() CustomerInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

func trimPatch(p entities.CustomerPatch) entities.CustomerPatch {
	for _, f := range []**string{&p.Name, &p.Email, &p.Phone, &p.Address, &p.Notes} {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
	return p
}

// CustomerSummary is a customer with the number of estimates issued to it.
type CustomerSummary struct {
	entities.Customer
	EstimateCount int
}

type ICustomerUseCase interface {
	List(ctx context.Context, query string) ([]CustomerSummary, error)
	Get(ctx context.Context, id string) (CustomerSummary, error)
	Create(ctx context.Context, in CustomerInput) (entities.Customer, error)
	Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type customerStore interface {
	interfaces.ICustomerStore
	Estimates() []entities.Estimate
}

type CustomerUseCase struct {
	store     customerStore
	validator *Validator
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(store customerStore, v *Validator) *CustomerUseCase {
	return &CustomerUseCase{store: store, validator: v}
}

// List returns customers matching query on name, phone or email, newest
// first.
func (u *CustomerUseCase) List(ctx context.Context, query string) ([]CustomerSummary, error) {
	counts := u.estimateCounts()
	all := u.store.Customers()
	out := make([]CustomerSummary, 0, len(all))
	for _, c := range all {
		if !search.Contains(query, c.Name, c.Phone, c.Email) {
			continue
		}
		out = append(out, CustomerSummary{Customer: c, EstimateCount: counts[c.ID]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *CustomerUseCase) estimateCounts() map[string]int {
	counts := map[string]int{}
	for _, e := range u.store.Estimates() {
		if e.CustomerID != "" {
			counts[e.CustomerID]++
		}
	}
	return counts
}

func (u *CustomerUseCase) Get(ctx context.Context, id string) (CustomerSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CustomerSummary{}, ErrInvalidID
	}
	c, ok := u.store.Customer(id)
	if !ok {
		return CustomerSummary{}, ErrCustomerNotFound
	}
	return CustomerSummary{Customer: c, EstimateCount: u.estimateCounts()[c.ID]}, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	in = in.trimmed()
	if err := u.validator.Struct(in); err != nil {
		return entities.Customer{}, err
	}
	return u.store.AddCustomer(entities.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Notes:   in.Notes,
		Tags:    in.Tags,
	}), nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error) {
	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	patch = trimPatch(patch)
	next := patch.Apply(current.Customer)
	if err := u.validator.Struct(CustomerInput{Name: next.Name, Email: next.Email, Phone: next.Phone}); err != nil {
		return entities.Customer{}, err
	}
	updated := u.store.UpdateCustomer(current.ID, patch)
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

// Delete removes the customer. Estimates keep their copy of the customer
// details.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if !u.store.DeleteCustomer(id) {
		return ErrCustomerNotFound
	}
	return nil
}
