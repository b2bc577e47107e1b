package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, tpl := range Library {
		t.Run(tpl.ID, func(t *testing.T) {
			assert.False(t, seen[tpl.ID], "duplicate id")
			seen[tpl.ID] = true

			assert.NotEmpty(t, tpl.Name)
			assert.NotEmpty(t, tpl.ProductType)
			assert.NotEmpty(t, tpl.Tags)
			assert.GreaterOrEqual(t, tpl.TrustScore, 1)
			assert.LessOrEqual(t, tpl.TrustScore, 10)

			switch tpl.LayoutType {
			case LayoutTopNavigation, LayoutSidebarMain, LayoutDashboardGrid:
			default:
				t.Errorf("unknown layout type %q", tpl.LayoutType)
			}

			assert.NotEmpty(t, tpl.DesignSystem.ColorPalette.Primary)
			assert.NotEmpty(t, tpl.DesignSystem.Typography.Scale.H1)
			assert.NotEmpty(t, tpl.DesignSystem.Spacing.XXL)
		})
	}
}

func TestLibraryLookups(t *testing.T) {
	t.Run("by layout type", func(t *testing.T) {
		for _, tpl := range ByLayoutType(LayoutTopNavigation) {
			assert.Equal(t, LayoutTopNavigation, tpl.LayoutType)
		}
		assert.NotEmpty(t, ByLayoutType(LayoutDashboardGrid))
	})

	t.Run("by product type", func(t *testing.T) {
		hits := ByProductType("ecommerce")
		require.Len(t, hits, 1)
		assert.Equal(t, "ecommerce-grid", hits[0].ID)
		assert.Empty(t, ByProductType("no-such-type"))
	})

	t.Run("by tags", func(t *testing.T) {
		hits := ByTags([]string{"blue-theme"})
		assert.NotEmpty(t, hits)
		for _, tpl := range hits {
			assert.Contains(t, tpl.Tags, "blue-theme")
		}
	})

	t.Run("high quality is sorted best first", func(t *testing.T) {
		hits := HighQuality(8)
		require.NotEmpty(t, hits)
		for i := 1; i < len(hits); i++ {
			assert.GreaterOrEqual(t, hits[i-1].TrustScore, hits[i].TrustScore)
		}
	})

	t.Run("by id", func(t *testing.T) {
		tpl, ok := ByID("analytics-dashboard")
		require.True(t, ok)
		assert.Equal(t, LayoutDashboardGrid, tpl.LayoutType)

		_, ok = ByID("missing")
		assert.False(t, ok)
	})
}

func TestLibraryStats(t *testing.T) {
	stats := LibraryStats()

	assert.Equal(t, len(Library), stats.Total)
	assert.Greater(t, stats.AverageScore, 0.0)

	layoutTotal := 0
	for _, n := range stats.LayoutTypes {
		layoutTotal += n
	}
	assert.Equal(t, stats.Total, layoutTotal)
}
