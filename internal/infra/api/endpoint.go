package api

import (
	"net/url"
	"strings"
)

// Endpoint is a concrete request target together with the route template used as its metrics label.
type Endpoint struct {
	Route string
	Path  string
	Query url.Values
}

// Path fills the :params of route in order, path-escaping each value.
func Path(route string, params ...string) Endpoint {
	segments := strings.Split(route, "/")
	next := 0
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") && next < len(params) {
			segments[i] = url.PathEscape(params[next])
			next++
		}
	}

	return Endpoint{Route: route, Path: strings.Join(segments, "/")}
}

// WithQuery returns a copy of e with key=value added to its query.
func (e Endpoint) WithQuery(key, value string) Endpoint {
	q := url.Values{}
	for k, v := range e.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Add(key, value)
	e.Query = q

	return e
}

// URL is the path plus the encoded query.
func (e Endpoint) URL() string {
	if len(e.Query) == 0 {
		return e.Path
	}

	return e.Path + "?" + e.Query.Encode()
}
