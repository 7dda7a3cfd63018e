// Package page turns the selected tip into display output.
package page

import (
	"github.com/fakeyudi/tipsfortoday/internal/catalog"
	"github.com/fakeyudi/tipsfortoday/internal/selector"
	"github.com/fakeyudi/tipsfortoday/internal/session"
)

const (
	Title       = "Tips for Today"
	Icon        = "🐍"
	ButtonLabel = "Give me a tip"
)

var (
	captions = []string{
		"Funny advice that accidentally teaches you Python.",
		"Pick a tip at random. Laugh a little. Learn a lot.",
	}
	footer = []string{
		"⚠️ Disclaimer: Tips are funny. The Python is real.",
		"🧩 Put together by amitrm (https://github.com/amitrm).",
	}
)

// Page is everything one render pass shows.
type Page struct {
	Title       string            `json:"title"`
	Icon        string            `json:"icon"`
	Captions    []string          `json:"captions"`
	ButtonLabel string            `json:"button_label"`
	Index       int               `json:"index"`
	Total       int               `json:"total"`
	Tip         catalog.TipRecord `json:"tip"`
	Footer      []string          `json:"footer"`
}

// Build performs one render pass. It resolves the session's selection,
// rerolling first when triggered is set, and returns the page to display.
// The session is updated in place and is the pass's new state.
func Build(c *catalog.Catalog, sel *selector.Selector, st *session.Session, triggered bool) Page {
	i := sel.Pass(st, triggered)
	return Page{
		Title:       Title,
		Icon:        Icon,
		Captions:    append([]string(nil), captions...),
		ButtonLabel: ButtonLabel,
		Index:       i,
		Total:       c.Size(),
		Tip:         c.Get(i),
		Footer:      append([]string(nil), footer...),
	}
}
