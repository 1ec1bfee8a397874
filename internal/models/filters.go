package models

// Result filter values accepted by the results endpoint.
const (
	FilterAll    = "all"
	FilterJumps  = "jumps"
	FilterNormal = "normal"
)

// ResultQuery represents query parameters for the paginated results view.
type ResultQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Filter    string `form:"filter"`     // all, jumps, normal
	SortBy    string `form:"sort_by"`    // time_start, duration_minutes, max_speed_kmh, ...
	SortOrder string `form:"sort_order"` // asc, desc
}

// Normalize fills defaults and clamps pagination bounds.
func (q *ResultQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}
	if q.PerPage > 200 {
		q.PerPage = 200
	}
	if q.Filter == "" {
		q.Filter = FilterAll
	}
	if q.SortBy == "" {
		q.SortBy = "time_start"
	}
	if q.SortOrder != "desc" {
		q.SortOrder = "asc"
	}
}

// Pagination describes one page of a result listing.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
}

// ResultPage is the payload of the results endpoint.
type ResultPage struct {
	Results    []WindowResult `json:"results"`
	Pagination Pagination     `json:"pagination"`
}
