package paginator

const (
	defaultLimit = 50
	maxLimit     = 200
)

// PaginateQuery carries limit/skip paging parameters from the HTTP layer.
type PaginateQuery struct {
	Limit int
	Skip  int
}

// Adjust clamps the query to sane bounds.
func (q *PaginateQuery) Adjust() {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
}

// Paginator describes one page of results.
type Paginator struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Skip    int   `json:"skip"`
	HasMore bool  `json:"hasMore"`
}

// New builds a Paginator for the given query and total row count.
func New(q PaginateQuery, total int64) Paginator {
	return Paginator{
		Total:   total,
		Limit:   q.Limit,
		Skip:    q.Skip,
		HasMore: total > int64(q.Skip+q.Limit),
	}
}
