// Package pagination turns paging request flags and an authoritative row count into
// length-aware page metadata.
package pagination

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/noah-isme/simak-api/pkg/query"
)

const (
	PreviousLabel = "&laquo; Previous"
	NextLabel     = "Next &raquo;"

	onEachSide = 3
)

// Params captures the paging inputs of a list request.
type Params struct {
	ServerPaging bool
	PerPage      int
	Page         int
}

// Offset returns the row offset of the requested page, saturating at math.MaxUint64.
func (p Params) Offset() uint64 {
	if p.Page <= 1 || p.PerPage <= 0 {
		return 0
	}
	pages, size := uint64(p.Page-1), uint64(p.PerPage)
	if pages > math.MaxUint64/size {
		return math.MaxUint64
	}
	return pages * size
}

// MaxPage is the largest page whose last row number still fits in an int.
func MaxPage(perPage int) int {
	if perPage <= 0 {
		return math.MaxInt
	}
	return math.MaxInt / perPage
}

// Parse reads server_paging, per_page and page from values. Non-numeric or non-positive
// sizes fall back to defaultPerPage; per_page is capped at maxPerPage.
func Parse(values url.Values, defaultPerPage, maxPerPage int) Params {
	p := Params{
		ServerPaging: Truthy(values.Get("server_paging")),
		PerPage:      defaultPerPage,
		Page:         1,
	}
	if n, err := strconv.Atoi(strings.TrimSpace(values.Get("per_page"))); err == nil && n > 0 {
		p.PerPage = n
	}
	if maxPerPage > 0 && p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	if n, err := strconv.Atoi(strings.TrimSpace(values.Get("page"))); err == nil && n > 0 {
		p.Page = min(n, MaxPage(p.PerPage))
	}
	return p
}

// Truthy reports whether raw is one of 1, true, on, yes.
func Truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// Window is the result of executing a list query: the page requested plus the
// authoritative total of matching rows.
type Window struct {
	Params
	Total int
}

// Link is one entry of the page navigation list.
type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Meta is the length-aware pagination block.
type Meta struct {
	CurrentPage  int     `json:"current_page"`
	FirstPageURL string  `json:"first_page_url"`
	From         *int    `json:"from"`
	LastPage     int     `json:"last_page"`
	LastPageURL  string  `json:"last_page_url"`
	Links        []Link  `json:"links"`
	NextPageURL  *string `json:"next_page_url"`
	Path         string  `json:"path"`
	PerPage      int     `json:"per_page"`
	PrevPageURL  *string `json:"prev_page_url"`
	To           *int    `json:"to"`
	Total        int     `json:"total"`
	ServerPaging bool    `json:"server_paging"`
}

// LastPage returns max(1, ceil(total/perPage)).
func LastPage(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	last := (total + perPage - 1) / perPage
	if last < 1 {
		return 1
	}
	return last
}

// NewMeta builds metadata for count items returned from w. path is the request URL without
// its query; query holds the parameters carried into every page link.
func NewMeta(w Window, count int, path string, query url.Values) Meta {
	perPage, page, total := w.PerPage, w.Page, w.Total
	if !w.ServerPaging {
		perPage, page, total = count, 1, count
	}
	page = max(1, min(page, MaxPage(perPage)))

	last := LastPage(total, perPage)
	links := linker{path: path, query: without(query, "page")}

	meta := Meta{
		CurrentPage:  page,
		FirstPageURL: links.url(1),
		LastPage:     last,
		LastPageURL:  links.url(last),
		Path:         path,
		PerPage:      perPage,
		Total:        total,
		ServerPaging: w.ServerPaging,
	}
	if count > 0 {
		from := (page-1)*perPage + 1
		to := from + count - 1
		meta.From, meta.To = &from, &to
	}
	if page > 1 {
		prev := links.url(page - 1)
		meta.PrevPageURL = &prev
	}
	if page < last {
		next := links.url(page + 1)
		meta.NextPageURL = &next
	}
	meta.Links = links.build(page, last, meta.PrevPageURL, meta.NextPageURL)
	return meta
}

// RequestPath returns scheme, host and path of r, honouring X-Forwarded-Proto.
func RequestPath(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host + r.URL.Path
}

type linker struct {
	path  string
	query url.Values
}

func (l linker) url(page int) string {
	params := l.query.Encode()
	if params != "" {
		params += "&"
	}
	return l.path + "?" + params + "page=" + strconv.Itoa(page)
}

func (l linker) build(current, last int, prev, next *string) []Link {
	links := []Link{{URL: prev, Label: PreviousLabel}}
	for _, el := range elements(current, last) {
		if el == 0 {
			links = append(links, Link{Label: "..."})
			continue
		}
		u := l.url(el)
		links = append(links, Link{URL: &u, Label: strconv.Itoa(el), Active: el == current})
	}
	return append(links, Link{URL: next, Label: NextLabel})
}

// elements lists the page numbers to render, with 0 standing for a "..." gap.
func elements(current, last int) []int {
	if last < onEachSide*2+8 {
		return pageRange(1, last)
	}

	window := onEachSide + 4
	var out []int
	switch {
	case current <= window:
		out = append(pageRange(1, window+onEachSide), 0)
		out = append(out, pageRange(last-1, last)...)
	case current > last-window:
		out = append(pageRange(1, 2), 0)
		out = append(out, pageRange(last-(window+onEachSide-1), last)...)
	default:
		out = append(pageRange(1, 2), 0)
		out = append(out, pageRange(current-onEachSide, current+onEachSide)...)
		out = append(out, 0)
		out = append(out, pageRange(last-1, last)...)
	}
	return out
}

func pageRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// without drops every alias of key ("Page", "page[]") from values.
func without(values url.Values, key string) url.Values {
	out := make(url.Values, len(values))
	for k, v := range values {
		if query.FoldKey(k) == key {
			continue
		}
		out[k] = v
	}
	return out
}
