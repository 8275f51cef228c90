package controller

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type pageRequest struct {
	Page     int
	PageSize int
}

// parsePageRequest reads page and page_size. A request without either returns the whole list.
func parsePageRequest(q url.Values) (pageRequest, bool, error) {
	if !q.Has("page") && !q.Has("page_size") {
		return pageRequest{}, false, nil
	}

	req := pageRequest{Page: 1, PageSize: defaultPageSize}

	if q.Has("page") {
		p, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			return pageRequest{}, false, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return pageRequest{}, false, fmt.Errorf("invalid page value [%d]", p)
		}
		req.Page = p
	}

	if q.Has("page_size") {
		ps, err := strconv.Atoi(q.Get("page_size"))
		if err != nil {
			return pageRequest{}, false, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps < 1 || ps > maxPageSize {
			return pageRequest{}, false, fmt.Errorf("page size [%d] outside 1..%d", ps, maxPageSize)
		}
		req.PageSize = ps
	}

	return req, true, nil
}

func paginate[T any](items []T, req pageRequest) []T {
	start := (req.Page - 1) * req.PageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+req.PageSize, len(items))
	return items[start:end]
}
