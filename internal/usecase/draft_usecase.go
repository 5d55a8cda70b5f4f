package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Skale-Club/xtimator/internal/domain/assistant"
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/identifier"
	"github.com/Skale-Club/xtimator/internal/domain/pricing"
	"github.com/Skale-Club/xtimator/internal/infrastructure/clock"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"

	"github.com/sirupsen/logrus"
)

type DraftStep string

const (
	DraftStepCustomer DraftStep = "customer"
	DraftStepItems    DraftStep = "items"
	DraftStepReview   DraftStep = "review"
)

func (s DraftStep) Valid() bool {
	return s == DraftStepCustomer || s == DraftStepItems || s == DraftStepReview
}

const (
	DefaultCustomerName = "Cliente"
	// DefaultAssistantDelay is how long the assistant "types" before replying.
	DefaultAssistantDelay = 500 * time.Millisecond
)

var ErrInvalidDraftStep = fmt.Errorf("%w: invalid draft step", ErrValidation)

// Draft is an estimate being assembled. It lives in memory only and becomes
// a stored Estimate on Finalize.
type Draft struct {
	ID              string
	Step            DraftStep
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	LineItems       []entities.EstimateLineItem
	Photos          []entities.EstimatePhoto
	Notes           string
	Messages        []entities.ChatMessage
	Totals          pricing.Totals
	CreatedAt       time.Time
}

func (d Draft) clone() Draft {
	out := d
	out.LineItems = append([]entities.EstimateLineItem{}, d.LineItems...)
	out.Photos = append([]entities.EstimatePhoto{}, d.Photos...)
	out.Messages = append([]entities.ChatMessage{}, d.Messages...)
	return out
}

type CustomerDetails struct {
	Name    string
	Phone   string
	Address string
}

type IDraftUseCase interface {
	Start(ctx context.Context) (Draft, error)
	Get(ctx context.Context, id string) (Draft, error)
	SelectCustomer(ctx context.Context, id, customerID string) (Draft, error)
	SetCustomer(ctx context.Context, id string, details CustomerDetails) (Draft, error)
	GoTo(ctx context.Context, id string, step DraftStep) (Draft, error)
	AddService(ctx context.Context, id, serviceID string, quantity int) (Draft, error)
	AdjustQuantity(ctx context.Context, id, lineID string, delta int) (Draft, error)
	RemoveItem(ctx context.Context, id, lineID string) (Draft, error)
	AddPhoto(ctx context.Context, id, url, caption string) (Draft, error)
	RemovePhoto(ctx context.Context, id, photoID string) (Draft, error)
	SetNotes(ctx context.Context, id, notes string) (Draft, error)
	Chat(ctx context.Context, id, input string) (Draft, error)
	Finalize(ctx context.Context, id string) (entities.Estimate, error)
	Discard(ctx context.Context, id string) error
}

type draftStore interface {
	Service(id string) (entities.ServiceItem, bool)
	Services() []entities.ServiceItem
	Customer(id string) (entities.Customer, bool)
	Settings() entities.AppSettings
	AddEstimate(e entities.Estimate) entities.Estimate
	SetCurrentEstimate(e *entities.Estimate)
}

type draftEntry struct {
	draft  Draft
	timers []*clock.Timer
}

type DraftUseCase struct {
	store  draftStore
	clock  clock.Clock
	newID  identifier.Generator
	delay  time.Duration
	logger *logrus.Logger

	mu     sync.Mutex
	drafts map[string]*draftEntry
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

type DraftOption func(*DraftUseCase)

func WithDraftClock(c clock.Clock) DraftOption { return func(u *DraftUseCase) { u.clock = c } }

func WithDraftIDGenerator(g identifier.Generator) DraftOption {
	return func(u *DraftUseCase) { u.newID = g }
}

// WithAssistantDelay sets the pause before assistant replies to chat input.
func WithAssistantDelay(d time.Duration) DraftOption {
	return func(u *DraftUseCase) { u.delay = d }
}

func WithDraftLogger(l *logrus.Logger) DraftOption { return func(u *DraftUseCase) { u.logger = l } }

func NewDraftUseCase(store draftStore, opts ...DraftOption) *DraftUseCase {
	u := &DraftUseCase{
		store:  store,
		clock:  clock.Real(),
		newID:  identifier.New,
		delay:  DefaultAssistantDelay,
		logger: logging.GetLogger(),
		drafts: map[string]*draftEntry{},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Start opens a draft on the customer step with the assistant greeting.
func (u *DraftUseCase) Start(ctx context.Context) (Draft, error) {
	now := u.clock.Now()
	d := Draft{
		ID:        u.newID(),
		Step:      DraftStepCustomer,
		LineItems: []entities.EstimateLineItem{},
		Photos:    []entities.EstimatePhoto{},
		CreatedAt: now,
	}
	d.Messages = []entities.ChatMessage{u.message(entities.ChatRoleAssistant, assistant.WelcomeMessage)}

	u.mu.Lock()
	u.drafts[d.ID] = &draftEntry{draft: d}
	u.mu.Unlock()

	u.publish(d)
	return d.clone(), nil
}

func (u *DraftUseCase) Get(ctx context.Context, id string) (Draft, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	entry, ok := u.drafts[strings.TrimSpace(id)]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	return u.withTotals(entry.draft).clone(), nil
}

// SelectCustomer copies the saved customer's contact details into the draft.
func (u *DraftUseCase) SelectCustomer(ctx context.Context, id, customerID string) (Draft, error) {
	c, ok := u.store.Customer(strings.TrimSpace(customerID))
	if !ok {
		return Draft{}, ErrCustomerNotFound
	}
	return u.update(id, func(d *Draft) error {
		d.CustomerID = c.ID
		d.CustomerName = c.Name
		d.CustomerEmail = c.Email
		d.CustomerPhone = c.Phone
		d.CustomerAddress = c.Address
		return nil
	})
}

func (u *DraftUseCase) SetCustomer(ctx context.Context, id string, details CustomerDetails) (Draft, error) {
	return u.update(id, func(d *Draft) error {
		d.CustomerName = details.Name
		d.CustomerPhone = details.Phone
		d.CustomerAddress = details.Address
		return nil
	})
}

// GoTo moves the draft between steps. Items needs a customer name and review
// needs at least one line item; going back is always allowed.
func (u *DraftUseCase) GoTo(ctx context.Context, id string, step DraftStep) (Draft, error) {
	if !step.Valid() {
		return Draft{}, ErrInvalidDraftStep
	}
	return u.update(id, func(d *Draft) error {
		switch step {
		case DraftStepItems:
			if strings.TrimSpace(d.CustomerName) == "" {
				return invalid("CustomerName", "informe o nome do cliente")
			}
		case DraftStepReview:
			if len(d.LineItems) == 0 {
				return errNoLineItems
			}
		}
		d.Step = step
		return nil
	})
}

var errNoLineItems = invalid("LineItems", "Adicione pelo menos um serviço ao orçamento")

// AddService adds a catalog service as a line item priced at its base price.
// Adding a service already in the draft raises that line's quantity.
func (u *DraftUseCase) AddService(ctx context.Context, id, serviceID string, quantity int) (Draft, error) {
	svc, ok := u.store.Service(strings.TrimSpace(serviceID))
	if !ok {
		return Draft{}, ErrServiceNotFound
	}
	if !svc.IsActive {
		return Draft{}, invalid("ServiceID", "serviço inativo")
	}
	quantity = pricing.ClampQuantity(quantity)

	return u.update(id, func(d *Draft) error {
		idx := -1
		for i, li := range d.LineItems {
			if li.ServiceItemID == svc.ID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			d.LineItems[idx].Quantity += quantity
			d.LineItems[idx].Total = pricing.LineItemTotal(d.LineItems[idx].Quantity, d.LineItems[idx].UnitPrice)
		} else {
			d.LineItems = append(d.LineItems, entities.EstimateLineItem{
				ID:            u.newID(),
				ServiceItemID: svc.ID,
				ServiceName:   svc.Name,
				Description:   svc.Description,
				Quantity:      quantity,
				Unit:          svc.UnitLabel,
				UnitPrice:     svc.BasePrice,
				Total:         pricing.LineItemTotal(quantity, svc.BasePrice),
			})
		}
		d.Messages = append(d.Messages, u.message(entities.ChatRoleAssistant, assistant.ServiceAdded(svc.Name, len(d.LineItems))))
		return nil
	})
}

// AdjustQuantity adds delta to the line quantity, never going below one.
func (u *DraftUseCase) AdjustQuantity(ctx context.Context, id, lineID string, delta int) (Draft, error) {
	return u.update(id, func(d *Draft) error {
		for i := range d.LineItems {
			if d.LineItems[i].ID == lineID {
				d.LineItems[i].Quantity = pricing.ClampQuantity(d.LineItems[i].Quantity + delta)
				d.LineItems[i].Total = pricing.LineItemTotal(d.LineItems[i].Quantity, d.LineItems[i].UnitPrice)
				return nil
			}
		}
		return ErrLineItemNotFound
	})
}

func (u *DraftUseCase) RemoveItem(ctx context.Context, id, lineID string) (Draft, error) {
	return u.update(id, func(d *Draft) error {
		for i := range d.LineItems {
			if d.LineItems[i].ID == lineID {
				d.LineItems = append(d.LineItems[:i:i], d.LineItems[i+1:]...)
				return nil
			}
		}
		return ErrLineItemNotFound
	})
}

func (u *DraftUseCase) AddPhoto(ctx context.Context, id, url, caption string) (Draft, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Draft{}, invalid("URL", ruleMessages["required"])
	}
	return u.update(id, func(d *Draft) error {
		d.Photos = append(d.Photos, entities.EstimatePhoto{
			ID:        u.newID(),
			URL:       url,
			Caption:   strings.TrimSpace(caption),
			CreatedAt: u.clock.Now(),
		})
		d.Messages = append(d.Messages, u.message(entities.ChatRoleAssistant, assistant.PhotoMessage))
		return nil
	})
}

func (u *DraftUseCase) RemovePhoto(ctx context.Context, id, photoID string) (Draft, error) {
	return u.update(id, func(d *Draft) error {
		for i := range d.Photos {
			if d.Photos[i].ID == photoID {
				d.Photos = append(d.Photos[:i:i], d.Photos[i+1:]...)
				return nil
			}
		}
		return ErrPhotoNotFound
	})
}

func (u *DraftUseCase) SetNotes(ctx context.Context, id, notes string) (Draft, error) {
	return u.update(id, func(d *Draft) error {
		d.Notes = notes
		return nil
	})
}

// Chat records the user message right away; the assistant answer is
// appended after the configured delay. A review answer also moves a draft
// with line items to the review step.
func (u *DraftUseCase) Chat(ctx context.Context, id, input string) (Draft, error) {
	if strings.TrimSpace(input) == "" {
		return Draft{}, invalid("Input", ruleMessages["required"])
	}
	draftID := strings.TrimSpace(id)
	d, err := u.update(draftID, func(d *Draft) error {
		d.Messages = append(d.Messages, u.message(entities.ChatRoleUser, input))
		return nil
	})
	if err != nil {
		return Draft{}, err
	}

	timer := u.clock.AfterFunc(u.delay, func() { u.reply(draftID, input) })
	u.mu.Lock()
	if entry, ok := u.drafts[draftID]; ok {
		entry.timers = append(entry.timers, timer)
	} else {
		timer.Stop()
	}
	u.mu.Unlock()
	return d, nil
}

func (u *DraftUseCase) reply(draftID, input string) {
	settings := u.store.Settings()
	r := assistant.Respond(input, u.store.Services(), settings.CurrencySymbol)
	_, err := u.update(draftID, func(d *Draft) error {
		d.Messages = append(d.Messages, u.message(entities.ChatRoleAssistant, r.Content))
		if r.Intent == assistant.IntentReview && len(d.LineItems) > 0 {
			d.Step = DraftStepReview
		}
		return nil
	})
	if err != nil {
		u.logger.WithFields(logrus.Fields{"draft_id": draftID}).Debug("[usecase][draft] reply dropped for closed draft")
	}
}

// Finalize stores the draft as a new estimate and closes the draft.
func (u *DraftUseCase) Finalize(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	u.mu.Lock()
	entry, ok := u.drafts[id]
	if !ok {
		u.mu.Unlock()
		return entities.Estimate{}, ErrDraftNotFound
	}
	if len(entry.draft.LineItems) == 0 {
		u.mu.Unlock()
		return entities.Estimate{}, errNoLineItems
	}
	d := entry.draft.clone()
	u.stopTimers(entry)
	delete(u.drafts, id)
	u.mu.Unlock()

	created := u.store.AddEstimate(u.buildEstimate(d, u.clock.Now()))
	u.store.SetCurrentEstimate(nil)
	u.logger.WithFields(logrus.Fields{"estimate_id": created.ID, "total": created.Total}).Info("[usecase][draft] estimate created")
	return created, nil
}

func (u *DraftUseCase) Discard(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	u.mu.Lock()
	entry, ok := u.drafts[id]
	if ok {
		u.stopTimers(entry)
		delete(u.drafts, id)
	}
	u.mu.Unlock()
	if !ok {
		return ErrDraftNotFound
	}
	u.store.SetCurrentEstimate(nil)
	return nil
}

func (u *DraftUseCase) stopTimers(entry *draftEntry) {
	for _, t := range entry.timers {
		t.Stop()
	}
	entry.timers = nil
}

func (u *DraftUseCase) buildEstimate(d Draft, now time.Time) entities.Estimate {
	settings := u.store.Settings()
	name := d.CustomerName
	if strings.TrimSpace(name) == "" {
		name = DefaultCustomerName
	}
	taxRate := settings.TaxRate
	validUntil := now.Add(time.Duration(settings.DefaultValidityDays) * 24 * time.Hour)
	return entities.Estimate{
		CustomerID:         d.CustomerID,
		CustomerName:       name,
		CustomerEmail:      d.CustomerEmail,
		CustomerPhone:      d.CustomerPhone,
		CustomerAddress:    d.CustomerAddress,
		Title:              "Orçamento - " + name,
		Status:             entities.EstimateStatusDraft,
		LineItems:          append([]entities.EstimateLineItem{}, d.LineItems...),
		Photos:             append([]entities.EstimatePhoto{}, d.Photos...),
		TaxRate:            &taxRate,
		Notes:              d.Notes,
		TermsAndConditions: settings.TermsAndConditions,
		ValidUntil:         &validUntil,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (u *DraftUseCase) update(id string, fn func(d *Draft) error) (Draft, error) {
	u.mu.Lock()
	entry, ok := u.drafts[strings.TrimSpace(id)]
	if !ok {
		u.mu.Unlock()
		return Draft{}, ErrDraftNotFound
	}
	next := entry.draft.clone()
	if err := fn(&next); err != nil {
		u.mu.Unlock()
		return Draft{}, err
	}
	entry.draft = next
	u.mu.Unlock()

	u.publish(next)
	return u.withTotals(next).clone(), nil
}

func (u *DraftUseCase) withTotals(d Draft) Draft {
	d.Totals = pricing.EstimateTotals(d.LineItems, u.store.Settings().TaxRate)
	return d
}

// publish exposes the draft as the store's current estimate.
func (u *DraftUseCase) publish(d Draft) {
	preview := pricing.ApplyTotals(u.buildEstimate(d, d.CreatedAt))
	preview.ID = d.ID
	u.store.SetCurrentEstimate(&preview)
}

func (u *DraftUseCase) message(role entities.ChatRole, content string) entities.ChatMessage {
	return entities.ChatMessage{
		ID:        u.newID(),
		Role:      role,
		Content:   content,
		Timestamp: u.clock.Now(),
	}
}
