// Package workspace holds the client side state of one owner: the record
// lists, the selected month and the forms to edit records.
package workspace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/aggregate"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/owner"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RecordAPI is the part of the record API the workspace uses.
// *client.Client implements it.
type RecordAPI interface {
	Transactions(ctx context.Context, ownerID string) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, ownerID string, fields models.TransactionEditable) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, ownerID string, id uuid.UUID, fields models.TransactionEditable) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID string, id uuid.UUID) error

	Budgets(ctx context.Context, ownerID string) ([]models.Budget, error)
	CreateBudget(ctx context.Context, ownerID string, fields models.BudgetEditable) (models.Budget, error)
	UpdateBudget(ctx context.Context, ownerID string, id uuid.UUID, fields models.BudgetEditable) (models.Budget, error)
	DeleteBudget(ctx context.Context, ownerID string, id uuid.UUID) error
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithNotifier sets the receiver of notifications.
func WithNotifier(n Notifier) Option {
	return func(w *Workspace) {
		w.notifier = n
	}
}

// WithMonth sets the initially selected month. It defaults to the
// current month in UTC.
func WithMonth(month types.MonthKey) Option {
	return func(w *Workspace) {
		w.month = month
	}
}

// WithBudgetPolicy sets how budgets for the same category and month
// are combined.
func WithBudgetPolicy(policy aggregate.BudgetPolicy) Option {
	return func(w *Workspace) {
		w.policy = policy
	}
}

// WithLanguage sets the language used to format amounts in alerts.
func WithLanguage(tag language.Tag) Option {
	return func(w *Workspace) {
		w.printer = message.NewPrinter(tag)
	}
}

// Workspace is the state of one owner.
type Workspace struct {
	api      RecordAPI
	notifier Notifier
	policy   aggregate.BudgetPolicy
	printer  *message.Printer

	// TransactionForm and BudgetForm track the edit dialogs
	TransactionForm *Form[models.Transaction]
	BudgetForm      *Form[models.Budget]

	mu           sync.RWMutex
	ownerID      string
	month        types.MonthKey
	transactions []models.Transaction
	budgets      []models.Budget
}

// New creates a workspace for anonymous visitors. Call SetIdentity to
// switch to a signed in user.
func New(api RecordAPI, opts ...Option) *Workspace {
	w := &Workspace{
		api:             api,
		notifier:        discard{},
		policy:          aggregate.SumDuplicates,
		printer:         message.NewPrinter(language.English),
		TransactionForm: &Form[models.Transaction]{},
		BudgetForm:      &Form[models.Budget]{},
		ownerID:         owner.Resolve(owner.Anonymous),
		month:           types.CurrentMonthKey(time.Now()),
		transactions:    make([]models.Transaction, 0),
		budgets:         make([]models.Budget, 0),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// OwnerID returns the owner key all requests are scoped to.
func (w *Workspace) OwnerID() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ownerID
}

// Month returns the selected month.
func (w *Workspace) Month() types.MonthKey {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.month
}

// Transactions returns a copy of the last fetched transactions.
func (w *Workspace) Transactions() []models.Transaction {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append(make([]models.Transaction, 0, len(w.transactions)), w.transactions...)
}

// Budgets returns a copy of the last fetched budgets.
func (w *Workspace) Budgets() []models.Budget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append(make([]models.Budget, 0, len(w.budgets)), w.budgets...)
}

// SetIdentity switches the owner and refetches all records.
func (w *Workspace) SetIdentity(ctx context.Context, identity owner.Identity) error {
	w.mu.Lock()
	w.ownerID = owner.Resolve(identity)
	w.transactions = make([]models.Transaction, 0)
	w.budgets = make([]models.Budget, 0)
	w.mu.Unlock()

	return w.Refresh(ctx)
}

// SelectMonth changes the selected month.
func (w *Workspace) SelectMonth(month types.MonthKey) error {
	if _, err := types.ParseMonthKey(string(month)); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.month = month
	return nil
}

// Refresh refetches both record lists. The cached lists are only replaced
// if both requests succeed.
func (w *Workspace) Refresh(ctx context.Context) error {
	ownerID := w.OwnerID()

	var transactions []models.Transaction
	var budgets []models.Budget

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		transactions, err = w.api.Transactions(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		budgets, err = w.api.Budgets(ctx, ownerID)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// The identity changed while the request was running
	if w.ownerID != ownerID {
		return nil
	}

	if transactions == nil {
		transactions = make([]models.Transaction, 0)
	}
	if budgets == nil {
		budgets = make([]models.Budget, 0)
	}
	w.transactions, w.budgets = transactions, budgets
	return nil
}

// AddTransaction creates a transaction.
func (w *Workspace) AddTransaction(ctx context.Context, fields models.TransactionEditable) error {
	return act(ctx, w, w.TransactionForm, "Transaction added!", "Failed to add transaction", func(ownerID string) error {
		_, err := w.api.CreateTransaction(ctx, ownerID, fields)
		return err
	})
}

// UpdateTransaction overwrites the editable fields of a transaction.
func (w *Workspace) UpdateTransaction(ctx context.Context, id uuid.UUID, fields models.TransactionEditable) error {
	return act(ctx, w, w.TransactionForm, "Transaction updated!", "Failed to update transaction", func(ownerID string) error {
		_, err := w.api.UpdateTransaction(ctx, ownerID, id, fields)
		return err
	})
}

// DeleteTransaction deletes a transaction.
func (w *Workspace) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return act[models.Transaction](ctx, w, nil, "Transaction deleted!", "Failed to delete transaction", func(ownerID string) error {
		return w.api.DeleteTransaction(ctx, ownerID, id)
	})
}

// AddBudget creates a budget.
func (w *Workspace) AddBudget(ctx context.Context, fields models.BudgetEditable) error {
	return act(ctx, w, w.BudgetForm, "Budget added!", "Failed to add budget", func(ownerID string) error {
		_, err := w.api.CreateBudget(ctx, ownerID, fields)
		return err
	})
}

// UpdateBudget overwrites the editable fields of a budget.
func (w *Workspace) UpdateBudget(ctx context.Context, id uuid.UUID, fields models.BudgetEditable) error {
	return act(ctx, w, w.BudgetForm, "Budget updated!", "Failed to update budget", func(ownerID string) error {
		_, err := w.api.UpdateBudget(ctx, ownerID, id, fields)
		return err
	})
}

// DeleteBudget deletes a budget.
func (w *Workspace) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	return act[models.Budget](ctx, w, nil, "Budget deleted!", "Failed to delete budget", func(ownerID string) error {
		return w.api.DeleteBudget(ctx, ownerID, id)
	})
}

// act performs one API call followed by a full refresh and notifies about
// the outcome. Notifications never contain error details.
//
// If the form is open, it is moved to Submitting and then to Idle or
// Error depending on the outcome. A nil or idle form is left alone.
func act[T any](ctx context.Context, w *Workspace, form *Form[T], success, failure string, call func(ownerID string) error) error {
	tracked := false
	if form != nil {
		if s := form.State(); s == Editing || s == Error {
			tracked = form.Submit() == nil
		}
	}

	if err := call(w.OwnerID()); err != nil {
		log.Debug().Err(err).Msg(failure)
		if tracked {
			_ = form.Fail(failure)
		}
		w.notifier.Notify(Notification{Level: Failure, Message: failure})
		return err
	}

	if tracked {
		_ = form.Succeed()
	}
	w.notifier.Notify(Notification{Level: Success, Message: success})

	return w.Refresh(ctx)
}

// Summary runs the aggregation for the selected month on the cached lists.
func (w *Workspace) Summary() aggregate.Summary {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return aggregate.Summarize(w.transactions, w.budgets, w.month, w.policy)
}

// Alerts returns one message for every overspent category of the selected
// month, in category order.
func (w *Workspace) Alerts() []string {
	overspent := w.Summary().Overspent

	alerts := make([]string, 0, len(overspent))
	for _, c := range overspent {
		alerts = append(alerts, w.printer.Sprintf("%s: spent %s of %s budget, %s over",
			c.Category,
			formatAmount(w.printer, c.Value),
			formatAmount(w.printer, c.Budget),
			formatAmount(w.printer, c.Value.Sub(c.Budget)),
		))
	}

	return alerts
}
