package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kwizera-io/go-momo-etl/internal/common"
	"github.com/kwizera-io/go-momo-etl/internal/models"
	"github.com/kwizera-io/go-momo-etl/internal/repositories"
)

// CategoryRule maps a predicate over the message body to one category of the
// closed set. Rules are evaluated strictly in slice order and the first match
// wins; overlap between rules is expected, the order IS the priority.
type CategoryRule struct {
	Name            string
	Match           func(body string) bool
	TransactionType string
	PaymentType     string
}

// KeywordRule builds a rule that matches when every keyword appears in the
// body, case insensitively.
func KeywordRule(name, transactionType, paymentType string, keywords ...string) CategoryRule {
	return CategoryRule{
		Name:            name,
		TransactionType: transactionType,
		PaymentType:     paymentType,
		Match: func(body string) bool {
			lowered := strings.ToLower(body)
			for _, kw := range keywords {
				if !strings.Contains(lowered, strings.ToLower(kw)) {
					return false
				}
			}
			return true
		},
	}
}

// Categorizer assigns categories by ordered rule matching. The category set
// is loaded once at construction (pipeline start) and never re-read.
type Categorizer struct {
	rules      []CategoryRule
	categories map[string]models.Category
}

func categoryKey(transactionType, paymentType string) string {
	return transactionType + "/" + paymentType
}

// NewCategorizer resolves every rule's (transactionType, paymentType) pair
// against the store. A rule pointing at a missing category is a construction
// error: the set is closed and silently defaulting would corrupt category
// statistics.
func NewCategorizer(ctx context.Context, rules []CategoryRule, repo repositories.CategoryRepository) (*Categorizer, error) {
	stored, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	categories := make(map[string]models.Category, len(stored))
	for _, c := range stored {
		categories[categoryKey(c.TransactionType, c.PaymentType)] = c
	}

	for _, rule := range rules {
		if _, ok := categories[categoryKey(rule.TransactionType, rule.PaymentType)]; !ok {
			return nil, fmt.Errorf("%w: rule %q wants (%s, %s)",
				common.ErrCategoryNotFound, rule.Name, rule.TransactionType, rule.PaymentType)
		}
	}

	return &Categorizer{rules: rules, categories: categories}, nil
}

// Categorize returns the category for the draft's message body, or a
// categorize-stage rejection when no rule matches.
func (c *Categorizer) Categorize(draft *models.TransactionDraft) (*models.Category, *models.StageRejection) {
	for _, rule := range c.rules {
		if rule.Match(draft.Body) {
			cat := c.categories[categoryKey(rule.TransactionType, rule.PaymentType)]
			return &cat, nil
		}
	}

	return nil, models.NewRejection(models.StageCategorize, draft.Body, "uncategorized", common.ErrUncategorized)
}
