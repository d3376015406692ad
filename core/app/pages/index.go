package pages

import (
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"

	"sitesearch/core/logger"
)

var pageExtensions = map[string]bool{".htm": true, ".html": true, ".md": true}

// Index holds the CMS pages of the site. It resolves page links for every
// provider and serves the include-marked pages to the pages provider.
// Reload may run while readers are active.
type Index struct {
	fsys    fs.FS
	baseURL string
	logger  logger.Logger

	mu    sync.RWMutex
	pages map[string]*Page
	order []string
}

// NewIndex creates an index over the page files in fsys. Links are
// resolved against baseURL (e.g. https://example.org).
func NewIndex(fsys fs.FS, baseURL string, log logger.Logger) *Index {
	return &Index{
		fsys:    fsys,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log,
		pages:   map[string]*Page{},
	}
}

// Reload rescans all page files. Pages that fail to parse are logged and
// skipped; the previous index is replaced only once the scan completes.
func (x *Index) Reload() error {
	pages := map[string]*Page{}

	err := fs.WalkDir(x.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !pageExtensions[strings.ToLower(path.Ext(p))] {
			return nil
		}

		content, err := fs.ReadFile(x.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(p, path.Ext(p))
		page, err := ParsePage(name, content)
		if err != nil {
			x.logger.Warn("Skipping CMS page", logger.String("page", p), logger.Err(err))
			return nil
		}
		if info, err := d.Info(); err == nil {
			page.ModifiedAt = info.ModTime()
		}
		pages[name] = page
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan pages: %w", err)
	}

	order := make([]string, 0, len(pages))
	for name := range pages {
		order = append(order, name)
	}
	sort.Strings(order)

	x.mu.Lock()
	x.pages = pages
	x.order = order
	x.mu.Unlock()

	x.logger.Debug("CMS pages indexed", logger.Int("count", len(pages)))
	return nil
}

// Page returns a page by name ("photoalbums/album")
func (x *Index) Page(name string) (*Page, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	p, ok := x.pages[name]
	return p, ok
}

// Included returns the pages carrying the siteSearchInclude marker, by name
func (x *Index) Included() []*Page {
	x.mu.RLock()
	defer x.mu.RUnlock()
	var out []*Page
	for _, name := range x.order {
		if p := x.pages[name]; p.IncludedInSearch() {
			out = append(out, p)
		}
	}
	return out
}

// PageURL builds the absolute URL of a page, filling its URL pattern with
// params. An unknown page resolves to the site root.
func (x *Index) PageURL(name string, params map[string]string) string {
	page, ok := x.Page(name)
	if !ok {
		x.logger.Warn("Link to unknown CMS page", logger.String("page", name))
		return x.baseURL + "/"
	}
	return x.baseURL + ExpandPattern(page.URL, params)
}

// ExpandPattern fills a URL pattern such as /album/:slug or
// /photo/:id/:slug? with params. Optional parameters may carry a default
// (:page?1) and any parameter a regex constraint (:id|^[0-9]+$), which is
// ignored here. Optional segments without a value are dropped.
func ExpandPattern(pattern string, params map[string]string) string {
	segments := strings.Split(strings.Trim(pattern, "/"), "/")
	out := make([]string, 0, len(segments))

	for _, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			out = append(out, seg)
			continue
		}

		name := seg[1:]
		if i := strings.IndexByte(name, '|'); i >= 0 {
			name = name[:i]
		}
		def := ""
		optional := false
		if i := strings.IndexByte(name, '?'); i >= 0 {
			optional = true
			def = name[i+1:]
			name = name[:i]
		}

		value, ok := params[name]
		if !ok || value == "" {
			value = def
		}
		if value == "" && optional {
			continue
		}
		out = append(out, url.PathEscape(value))
	}

	return "/" + strings.Join(out, "/")
}
