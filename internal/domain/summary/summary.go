// Package summary groups a registration draft into the labeled sections
// shown on the review page.
package summary

import (
	"github.com/jsamuelsen11/gtti-registration/internal/domain/draft"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
)

// Item is one labeled value of a summary group.
type Item struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
	// Missing is true when Value is the placeholder.
	Missing bool `json:"missing"`
}

// Group is a titled section of the review page.
type Group struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Build lists every summary group of the definition with the draft's
// values. Empty or absent values are shown as the definition's
// placeholder.
func Build(def *wizard.Definition, d draft.Draft) []Group {
	groups := make([]Group, 0, len(def.SummaryGroups()))
	for _, sg := range def.SummaryGroups() {
		g := Group{Title: sg.Title, Items: make([]Item, 0, len(sg.Fields))}
		for _, name := range sg.Fields {
			g.Items = append(g.Items, Item{
				Field:   name,
				Label:   def.Label(name),
				Value:   d.Value(name, def.Placeholder()),
				Missing: d[name] == "",
			})
		}
		groups = append(groups, g)
	}
	return groups
}
