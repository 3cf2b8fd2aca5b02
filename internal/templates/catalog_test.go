package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCoversEveryDemoCategory(t *testing.T) {
	require.Len(t, Catalog, 3)

	categories := make(map[string]bool)

	for _, template := range Catalog {
		categories[template.Category] = true
		assert.NotEmpty(t, template.ID)
		assert.NotEmpty(t, template.Name)
		assert.NotEmpty(t, template.Config.Widgets)

		for _, widget := range template.Config.Widgets {
			assert.NotEmpty(t, widget.Type)
			assert.NotEmpty(t, widget.Title)
			assert.Equal(t, template.Category, widget.DataConfig["source"])
		}
	}

	assert.Equal(t, map[string]bool{"sales": true, "marketing": true, "operations": true}, categories)
}

func TestSalesTemplateHasSixWidgets(t *testing.T) {
	template, ok := Lookup("sales-dashboard")
	require.True(t, ok)
	assert.Len(t, template.Config.Widgets, 6)
}

func TestLookupUnknownID(t *testing.T) {
	_, ok := Lookup("finance-dashboard")
	assert.False(t, ok)
}
