package entity

// PageMeta is the pagination block of list responses.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether another page follows this one.
func (m *PageMeta) HasNext() bool {
	return m != nil && m.Page < m.TotalPages
}

// Page is a query window.
type Page struct {
	Page  int
	Limit int
}
