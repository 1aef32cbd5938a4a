package badges

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolake/ecolake-backend-go/internal/models"
)

func reportAtHour(hour int) models.ReportMeta {
	return models.ReportMeta{
		Category:  models.CategoryTrash,
		Severity:  models.SeverityLow,
		CreatedAt: time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC),
	}
}

func TestCountThresholdRules(t *testing.T) {
	cases := []struct {
		badge     string
		aggregate models.UserActivityAggregate
		want      bool
	}{
		{"First Report", models.UserActivityAggregate{ReportCount: 1}, true},
		{"First Report", models.UserActivityAggregate{ReportCount: 0}, false},
		{"5 Reports", models.UserActivityAggregate{ReportCount: 5}, true},
		{"5 Reports", models.UserActivityAggregate{ReportCount: 4}, false},
		{"10 Reports", models.UserActivityAggregate{ReportCount: 5}, false},
		{"Eco Warrior", models.UserActivityAggregate{ReportCount: 25}, true},
		{"Lake Champion", models.UserActivityAggregate{ReportCount: 50}, true},
		{"Environmental Legend", models.UserActivityAggregate{ReportCount: 99}, false},
		{"100 Points Club", models.UserActivityAggregate{Points: 100}, true},
		{"100 Points Club", models.UserActivityAggregate{Points: 99}, false},
		{"Point Master", models.UserActivityAggregate{Points: 500}, true},
		{"Point Legend", models.UserActivityAggregate{Points: 1000}, true},
		{"Cleanup Hero", models.UserActivityAggregate{CleanupCount: 5}, true},
		{"Lake Guardian", models.UserActivityAggregate{CleanupCount: 10}, true},
		{"Super Cleaner", models.UserActivityAggregate{CleanupCount: 10}, true},
		{"Super Cleaner", models.UserActivityAggregate{CleanupCount: 9}, false},
		{"Master Cleaner", models.UserActivityAggregate{CleanupCount: 25}, true},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_%v", tc.badge, tc.want), func(t *testing.T) {
			rule, ok := RuleFor(tc.badge)
			require.True(t, ok)
			assert.Equal(t, tc.want, rule(tc.aggregate))
		})
	}
}

func TestTimeOfDayRules(t *testing.T) {
	earlyBird, ok := RuleFor("Early Bird")
	require.True(t, ok)
	nightOwl, ok := RuleFor("Night Owl")
	require.True(t, ok)

	morning := models.UserActivityAggregate{Reports: []models.ReportMeta{reportAtHour(6)}}
	assert.True(t, earlyBird(morning))
	assert.False(t, nightOwl(morning))

	midday := models.UserActivityAggregate{Reports: []models.ReportMeta{reportAtHour(10)}}
	assert.False(t, earlyBird(midday))
	assert.False(t, nightOwl(midday))

	late := models.UserActivityAggregate{Reports: []models.ReportMeta{reportAtHour(22)}}
	assert.False(t, earlyBird(late))
	assert.True(t, nightOwl(late))

	// Boundary: hour 8 is not early, hour 7 is
	assert.False(t, earlyBird(models.UserActivityAggregate{Reports: []models.ReportMeta{reportAtHour(8)}}))
	assert.True(t, earlyBird(models.UserActivityAggregate{Reports: []models.ReportMeta{reportAtHour(7)}}))
}

func TestPhotoProRule(t *testing.T) {
	rule, ok := RuleFor("Photo Pro")
	require.True(t, ok)

	var reports []models.ReportMeta
	for i := 0; i < 10; i++ {
		reports = append(reports, models.ReportMeta{PhotoCount: 1})
	}
	assert.True(t, rule(models.UserActivityAggregate{Reports: reports}))

	reports[9].PhotoCount = 0
	assert.False(t, rule(models.UserActivityAggregate{Reports: reports}))
}

func TestDetailDetectiveRule(t *testing.T) {
	rule, ok := RuleFor("Detail Detective")
	require.True(t, ok)

	var reports []models.ReportMeta
	for i := 0; i < 10; i++ {
		reports = append(reports, models.ReportMeta{DescriptionLength: 50})
	}
	assert.True(t, rule(models.UserActivityAggregate{Reports: reports}))

	reports[0].DescriptionLength = 49
	assert.False(t, rule(models.UserActivityAggregate{Reports: reports}))
}

func TestSeverityExpertRule(t *testing.T) {
	rule, ok := RuleFor("Severity Expert")
	require.True(t, ok)

	var reports []models.ReportMeta
	for _, sev := range models.ValidSeverities {
		reports = append(reports, models.ReportMeta{Severity: sev})
	}
	assert.True(t, rule(models.UserActivityAggregate{Reports: reports}))

	// Repeats of the same severity do not count as distinct
	assert.False(t, rule(models.UserActivityAggregate{Reports: reports[:4]}))
}

func TestCategoryMasterRule(t *testing.T) {
	rule, ok := RuleFor("Category Master")
	require.True(t, ok)

	var reports []models.ReportMeta
	for _, cat := range models.ValidCategories[:6] {
		reports = append(reports, models.ReportMeta{Category: cat})
	}
	assert.True(t, rule(models.UserActivityAggregate{Reports: reports}))
	assert.False(t, rule(models.UserActivityAggregate{Reports: reports[:5]}))
}

func TestRuleForUnknownName(t *testing.T) {
	_, ok := RuleFor("Completely Made Up Badge")
	assert.False(t, ok)
}
