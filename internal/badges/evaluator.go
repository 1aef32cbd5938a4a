package badges

import (
	"context"

	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/pkg/logger"
)

// Granter persists a badge grant for a user. A failed grant must leave
// the rest of the evaluation untouched.
type Granter interface {
	GrantBadge(ctx context.Context, userID, badgeID string) error
}

// Evaluator determines which badges a user newly qualifies for and
// records the grants
type Evaluator struct {
	granter Granter
}

// NewEvaluator creates a badge evaluator
func NewEvaluator(granter Granter) *Evaluator {
	return &Evaluator{granter: granter}
}

// Evaluate checks every not-yet-earned badge in the catalog against the
// user's aggregate and attempts to persist each qualifying grant.
// Returns only the badges whose grant durably succeeded; per-badge
// persistence failures are logged and skipped. With an accurate
// alreadyEarned set the operation is idempotent.
func (e *Evaluator) Evaluate(ctx context.Context, userID string, aggregate models.UserActivityAggregate, catalog []models.BadgeDefinition, alreadyEarned map[string]bool) []models.BadgeDefinition {
	log := logger.GetLogger("badges")

	granted := []models.BadgeDefinition{}
	for _, badge := range catalog {
		if alreadyEarned[badge.ID] {
			continue
		}

		rule, ok := RuleFor(badge.Name)
		if !ok {
			// Unknown name: never granted, never an error
			continue
		}
		if !rule(aggregate) {
			continue
		}

		if err := e.granter.GrantBadge(ctx, userID, badge.ID); err != nil {
			// The user must not be told about a grant that did not
			// durably occur; it will requalify on the next evaluation
			log.Errorf("failed to persist badge %q for user %s: %v", badge.Name, userID, err)
			continue
		}

		granted = append(granted, badge)
	}

	return granted
}
