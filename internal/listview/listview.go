package listview

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"gazetteer/internal/countries"
)

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 10

// minFilterLen is the shortest trimmed filter text that activates filtering.
// Anything shorter clears the filter entirely.
const minFilterLen = 2

var allowedPageSizes = []int{5, 10, 20, 50}

// PageSizes returns the allowed page sizes in ascending order.
func PageSizes() []int {
	sizes := make([]int, len(allowedPageSizes))
	copy(sizes, allowedPageSizes)
	return sizes
}

// AllowedPageSize reports whether size is one of the allowed page sizes.
func AllowedPageSize(size int) bool {
	for _, s := range allowedPageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// State is the canonical UI state the controller keeps synchronized with the
// collection endpoint. At most one filter is active at a time; Page is
// 1-based.
type State struct {
	Page           int
	PageSize       int
	FilterField    string
	FilterText     string
	SortField      string
	SortDescending bool
}

// Renderer receives the results of a refresh. RenderPage replaces all
// displayed rows with the page's items in the order given and must tolerate
// repeated calls and empty pages. RenderError is diagnostic only: previously
// rendered rows stay intact.
type Renderer interface {
	RenderPage(page countries.Page)
	RenderSummary(text string)
	RenderError(err error)
}

// Controller translates user interactions into canonical queries and keeps
// the displayed page consistent with its State.
//
// Operations are safe for concurrent use. Network calls run outside the
// state lock, and completions follow a last-request-wins rule: every state
// change bumps a generation counter, and a response whose generation has
// been superseded by the time it arrives is discarded instead of clobbering
// a newer render.
type Controller struct {
	mu         sync.Mutex
	state      State
	generation uint64

	fetcher  countries.Fetcher
	renderer Renderer
	log      zerolog.Logger
}

// New builds a Controller starting at page 1 with the given page size.
// A size outside the allowed set falls back to DefaultPageSize.
func New(fetcher countries.Fetcher, renderer Renderer, log zerolog.Logger, pageSize int) *Controller {
	if !AllowedPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	return &Controller{
		state:    State{Page: 1, PageSize: pageSize},
		fetcher:  fetcher,
		renderer: renderer,
		log:      log,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetPageSize switches to one of the allowed page sizes, resets to page 1,
// and refreshes. Sizes outside the allowed set are rejected without issuing
// a query.
func (c *Controller) SetPageSize(ctx context.Context, size int) error {
	if !AllowedPageSize(size) {
		return fmt.Errorf("page size %d not allowed (valid: %v)", size, allowedPageSizes)
	}
	c.mu.Lock()
	c.state.PageSize = size
	c.state.Page = 1
	gen, snap := c.bumpLocked()
	c.mu.Unlock()

	c.refresh(ctx, gen, snap)
	return nil
}

// SetFilter applies a single-field substring filter. Trimmed text of at
// least two characters sets exactly this field/text pair, replacing any
// prior filter; shorter text clears all filtering. Either way the page
// resets to 1 and the view refreshes.
func (c *Controller) SetFilter(ctx context.Context, field, text string) error {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	if len(trimmed) >= minFilterLen {
		if !countries.ValidField(field) {
			c.mu.Unlock()
			return fmt.Errorf("unknown filter field %q", field)
		}
		c.state.FilterField = field
		c.state.FilterText = trimmed
	} else {
		c.state.FilterField = ""
		c.state.FilterText = ""
	}
	c.state.Page = 1
	gen, snap := c.bumpLocked()
	c.mu.Unlock()

	c.refresh(ctx, gen, snap)
	return nil
}

// PrevPage moves one page back and refreshes. At page 1 it is a no-op and
// issues no query.
func (c *Controller) PrevPage(ctx context.Context) {
	c.mu.Lock()
	if c.state.Page <= 1 {
		c.mu.Unlock()
		return
	}
	c.state.Page--
	gen, snap := c.bumpLocked()
	c.mu.Unlock()

	c.refresh(ctx, gen, snap)
}

// NextPage fetches the current total count, and advances one page only when
// the result proves another page exists. The controller never requests a
// page past the last known total.
func (c *Controller) NextPage(ctx context.Context) {
	snap := c.State()
	total, err := c.fetcher.FetchTotal(ctx, countQuery(snap))
	if err != nil {
		c.log.Error().Err(err).Msg("count fetch failed")
		c.renderer.RenderError(err)
		return
	}
	totalPages := (total + snap.PageSize - 1) / snap.PageSize

	c.mu.Lock()
	if c.state.Page >= totalPages {
		c.mu.Unlock()
		return
	}
	c.state.Page++
	gen, cur := c.bumpLocked()
	c.mu.Unlock()

	c.refresh(ctx, gen, cur)
}

// ToggleSort sorts by field, ascending on first use and flipping direction
// when the field is already active. The page is not reset.
func (c *Controller) ToggleSort(ctx context.Context, field string) error {
	if !countries.ValidField(field) {
		return fmt.Errorf("unknown sort field %q", field)
	}
	c.mu.Lock()
	if c.state.SortField == field {
		c.state.SortDescending = !c.state.SortDescending
	} else {
		c.state.SortField = field
		c.state.SortDescending = false
	}
	gen, snap := c.bumpLocked()
	c.mu.Unlock()

	c.refresh(ctx, gen, snap)
	return nil
}

// Refresh re-fetches the current page without changing state.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	gen, snap := c.bumpLocked()
	c.mu.Unlock()

	c.refresh(ctx, gen, snap)
}

// bumpLocked advances the generation counter and snapshots the state for
// the refresh that follows. Callers must hold mu.
func (c *Controller) bumpLocked() (uint64, State) {
	c.generation++
	return c.generation, c.state
}

func (c *Controller) refresh(ctx context.Context, gen uint64, snap State) {
	page, err := c.fetcher.FetchPage(ctx, pageQuery(snap))

	c.mu.Lock()
	stale := c.generation != gen
	c.mu.Unlock()
	if stale {
		c.log.Debug().Uint64("generation", gen).Msg("discarding superseded response")
		return
	}

	if err != nil {
		c.log.Error().Err(err).Int("page", snap.Page).Msg("page fetch failed")
		c.renderer.RenderError(err)
		return
	}

	c.renderer.RenderPage(page)
	c.renderer.RenderSummary(Summary(snap, len(page.Items), page.TotalCount))
}

// pageQuery derives the canonical query for the state's current page.
func pageQuery(s State) countries.Query {
	q := countQuery(s)
	q.Offset = (s.Page - 1) * s.PageSize
	q.Limit = s.PageSize
	return q
}

// countQuery carries only the filter and sort axes, for total-count calls.
func countQuery(s State) countries.Query {
	return countries.Query{
		FilterField:    s.FilterField,
		FilterText:     s.FilterText,
		SortField:      s.SortField,
		SortDescending: s.SortDescending,
	}
}

// Summary renders the entries line, e.g. "Showing 6 to 10 of 12 entries".
// An empty page reads "Showing 0 to 0 of N entries".
func Summary(s State, itemCount, totalCount int) string {
	if itemCount == 0 {
		return fmt.Sprintf("Showing 0 to 0 of %d entries", totalCount)
	}
	offset := (s.Page - 1) * s.PageSize
	return fmt.Sprintf("Showing %d to %d of %d entries", offset+1, offset+itemCount, totalCount)
}
