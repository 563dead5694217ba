package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TemplateStore supplies the recurring templates to materialize.
type TemplateStore interface {
	// ActiveTemplates returns all active recurring templates of one user.
	ActiveTemplates(ctx context.Context, userID uuid.UUID) ([]models.RecurringTemplate, error)
}

// DedupKey identifies an already materialized transaction.
//
// It matches on the transaction fields rather than the template reference,
// so a transaction the user entered by hand also counts as "this occurrence
// already exists" and is not duplicated by the materializer.
type DedupKey struct {
	UserID      uuid.UUID
	Date        types.Date
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Type        models.TransactionType
}

// TransactionStore looks up and creates concrete transactions.
type TransactionStore interface {
	// FindMaterialized returns the transaction matching the dedup key,
	// if one exists.
	FindMaterialized(ctx context.Context, key DedupKey) (models.Transaction, bool, error)

	// Insert creates a new transaction. It returns
	// models.ErrTransactionAlreadyMaterialized when a transaction for the
	// same template and date already exists.
	Insert(ctx context.Context, transaction *models.Transaction) error
}

// Clock supplies the current date. It is injected so that due-ness is
// deterministic under test.
type Clock interface {
	Today() types.Date
}

// Materializer creates the concrete transactions for all due recurring
// templates of a user.
type Materializer struct {
	templates    TemplateStore
	transactions TransactionStore
	clock        Clock
}

func NewMaterializer(templates TemplateStore, transactions TransactionStore, clock Clock) *Materializer {
	return &Materializer{
		templates:    templates,
		transactions: transactions,
		clock:        clock,
	}
}

// Result reports one materializer run.
type Result struct {
	Created int     // Number of transactions created
	Errors  []error // Per-template errors, the run continues past them
}

// MaterializeAll runs the due-check, dedup and create cycle for every active
// template of the user.
//
// Failures never abort the whole run: a failing template is recorded in the
// result and processing continues with the next one. The only fatal case is
// not being able to list the templates at all. Nothing is retried within a
// run, the next scheduled invocation picks up whatever failed.
func (m *Materializer) MaterializeAll(ctx context.Context, userID uuid.UUID) Result {
	templates, err := m.templates.ActiveTemplates(ctx, userID)
	if err != nil {
		return Result{Errors: []error{fmt.Errorf("listing recurring templates: %w", err)}}
	}

	if len(templates) == 0 {
		return Result{}
	}

	today := m.clock.Today()

	var result Result
	for _, template := range templates {
		// Stop before starting the next template when the caller gave up.
		// Work already done stays done.
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, err)
			break
		}

		created, err := m.materialize(ctx, template, today)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		if created {
			result.Created++
		}
	}

	log.Debug().
		Str("user", userID.String()).
		Str("date", today.String()).
		Int("created", result.Created).
		Int("errors", len(result.Errors)).
		Msg("recurring templates processed")

	return result
}

// materialize processes a single template and reports whether a transaction
// was created.
func (m *Materializer) materialize(ctx context.Context, template models.RecurringTemplate, today types.Date) (bool, error) {
	if err := template.Validate(); err != nil {
		return false, fmt.Errorf("template %s: %w", template.ID, err)
	}

	if !IsDue(template, today) {
		return false, nil
	}

	_, found, err := m.transactions.FindMaterialized(ctx, DedupKey{
		UserID:      template.UserID,
		Date:        today,
		CategoryID:  template.CategoryID,
		Amount:      template.Amount,
		Description: template.Description,
		Type:        template.Type,
	})
	if err != nil {
		return false, fmt.Errorf("template %s: checking for existing transaction: %w", template.ID, err)
	}

	if found {
		// Already materialized, e.g. by an earlier run on the same day
		return false, nil
	}

	transaction := template.Materialize(today)

	err = m.transactions.Insert(ctx, &transaction)
	if errors.Is(err, models.ErrTransactionAlreadyMaterialized) {
		// A concurrent run won the check-then-create race. The occurrence
		// exists, which is all we wanted.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("template %s: creating transaction: %w", template.ID, err)
	}

	return true, nil
}
