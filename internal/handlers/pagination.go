package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

// Pagination holds the page size settings of listing endpoints.
type Pagination struct {
	PageSize    int
	MaxPageSize int
}

// parse reads page and page_size from the query. A missing page means the first one;
// a malformed page is reported as invalid. A malformed page_size falls back to the
// default and a too large one is capped.
func (p Pagination) parse(r *http.Request) (models.PageRequest, bool) {
	q := r.URL.Query()

	req := models.PageRequest{Page: 1, PageSize: p.PageSize}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return req, false
		}
		req.Page = page
	}

	if raw := q.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			req.PageSize = size
		}
	}
	if p.MaxPageSize > 0 && req.PageSize > p.MaxPageSize {
		req.PageSize = p.MaxPageSize
	}

	return req, true
}

// pageURL returns the absolute URL of the request with its page parameter replaced.
// The first page is addressed without a page parameter.
func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	return u.String()
}
