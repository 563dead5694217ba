package recurring

import (
	"context"
	"time"

	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store implements TemplateStore and TransactionStore on the gorm database.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return Store{db: db}
}

func (s Store) ActiveTemplates(ctx context.Context, userID uuid.UUID) ([]models.RecurringTemplate, error) {
	var templates []models.RecurringTemplate

	err := s.db.WithContext(ctx).
		Where(&models.RecurringTemplate{UserID: userID}).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func (s Store) FindMaterialized(ctx context.Context, key DedupKey) (models.Transaction, bool, error) {
	var transactions []models.Transaction

	err := s.db.WithContext(ctx).
		Where("user_id = ?", key.UserID).
		// The column stores a full timestamp, so the calendar date is
		// matched as a range instead of comparing against date()'s
		// plain yyyy-mm-dd output.
		Where("date >= date(?)", key.Date).
		Where("date < date(?)", key.Date.AddDays(1)).
		Where("category_id = ?", key.CategoryID).
		Where("amount = ?", key.Amount).
		Where("description = ?", key.Description).
		Where("type = ?", key.Type).
		Limit(1).
		Find(&transactions).Error
	if err != nil {
		return models.Transaction{}, false, err
	}

	if len(transactions) == 0 {
		return models.Transaction{}, false, nil
	}

	return transactions[0], true, nil
}

func (s Store) Insert(ctx context.Context, transaction *models.Transaction) error {
	return s.db.WithContext(ctx).Create(transaction).Error
}

// SystemClock is the Clock used outside of tests.
type SystemClock struct{}

func (SystemClock) Today() types.Date {
	return types.DateOf(time.Now())
}
