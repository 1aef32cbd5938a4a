package badges

import "github.com/ecolake/ecolake-backend-go/internal/models"

// Rule is a predicate over a user's aggregated activity
type Rule func(models.UserActivityAggregate) bool

// earlyBirdHour and nightOwlHour bound the time-of-day rules (local time)
const (
	earlyBirdHour = 8
	nightOwlHour  = 22
)

// rules maps badge display names to their predicates. The catalog is
// content-managed, so the name is the contract: a badge whose name has
// no entry here is never granted.
var rules = map[string]Rule{
	"First Report":         reportCountAtLeast(1),
	"5 Reports":            reportCountAtLeast(5),
	"10 Reports":           reportCountAtLeast(10),
	"Eco Warrior":          reportCountAtLeast(25),
	"Lake Champion":        reportCountAtLeast(50),
	"Environmental Legend": reportCountAtLeast(100),

	"100 Points Club": pointsAtLeast(100),
	"Point Master":    pointsAtLeast(500),
	"Point Legend":    pointsAtLeast(1000),

	"Cleanup Hero":   cleanupCountAtLeast(5),
	"Lake Guardian":  cleanupCountAtLeast(10),
	"Super Cleaner":  cleanupCountAtLeast(10),
	"Master Cleaner": cleanupCountAtLeast(25),

	"Early Bird": anyReport(func(r models.ReportMeta) bool {
		return r.CreatedAt.Hour() < earlyBirdHour
	}),
	"Night Owl": anyReport(func(r models.ReportMeta) bool {
		return r.CreatedAt.Hour() >= nightOwlHour
	}),

	"Photo Pro": reportsMatchingAtLeast(10, func(r models.ReportMeta) bool {
		return r.PhotoCount >= 1
	}),
	"Detail Detective": reportsMatchingAtLeast(10, func(r models.ReportMeta) bool {
		return r.DescriptionLength >= 50
	}),

	"Severity Expert": distinctSeveritiesAtLeast(5),
	"Category Master": distinctCategoriesAtLeast(6),
}

// RuleFor looks up the predicate registered for a badge name
func RuleFor(name string) (Rule, bool) {
	rule, ok := rules[name]
	return rule, ok
}

func reportCountAtLeast(n int) Rule {
	return func(a models.UserActivityAggregate) bool {
		return a.ReportCount >= n
	}
}

func pointsAtLeast(n int) Rule {
	return func(a models.UserActivityAggregate) bool {
		return a.Points >= n
	}
}

func cleanupCountAtLeast(n int) Rule {
	return func(a models.UserActivityAggregate) bool {
		return a.CleanupCount >= n
	}
}

func anyReport(match func(models.ReportMeta) bool) Rule {
	return func(a models.UserActivityAggregate) bool {
		for _, r := range a.Reports {
			if match(r) {
				return true
			}
		}
		return false
	}
}

func reportsMatchingAtLeast(n int, match func(models.ReportMeta) bool) Rule {
	return func(a models.UserActivityAggregate) bool {
		count := 0
		for _, r := range a.Reports {
			if match(r) {
				count++
				if count >= n {
					return true
				}
			}
		}
		return false
	}
}

func distinctSeveritiesAtLeast(n int) Rule {
	return func(a models.UserActivityAggregate) bool {
		seen := make(map[string]bool)
		for _, r := range a.Reports {
			seen[r.Severity] = true
		}
		return len(seen) >= n
	}
}

func distinctCategoriesAtLeast(n int) Rule {
	return func(a models.UserActivityAggregate) bool {
		seen := make(map[string]bool)
		for _, r := range a.Reports {
			seen[r.Category] = true
		}
		return len(seen) >= n
	}
}
