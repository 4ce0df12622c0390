package params

import "time"

// Discriminant and direction literals for the history candlestick query.
const (
	QueryByDateRange = "date_range"
	QueryByOffset    = "offset"

	DirectionForward  = "forward"
	DirectionBackward = "backward"
)

// CandlestickQuery is a tagged union: exactly one of DateRangeQuery or
// OffsetQuery, selected by the query_type discriminant. Modeling it as a
// sealed interface removes the "neither" and "both" states entirely.
type CandlestickQuery interface {
	candlestickQuery()
}

// DateRangeQuery addresses candlesticks by an absolute date range.
type DateRangeQuery struct {
	Start Date
	End   Date
}

func (DateRangeQuery) candlestickQuery() {}

// OffsetQuery addresses candlesticks relative to an anchor point. A nil
// Anchor means "latest".
type OffsetQuery struct {
	Forward bool
	Anchor  *time.Time
	Count   int
}

func (OffsetQuery) candlestickQuery() {}

// Key under which the refined union is stashed in the validated values.
const candlestickQueryKey = "_candlestick_query"

// RefineCandlestickQuery is the cross-field rule for history_candlesticks:
// the sub-object selected by query_type must be present, and only that
// one is checked. On success the built union is stored in the values.
func RefineCandlestickQuery(v Values) []FieldIssue {
	switch v.String("query_type") {
	case QueryByDateRange:
		var issues []FieldIssue
		start, okStart := v.Date("start_date")
		end, okEnd := v.Date("end_date")
		if !okStart {
			issues = append(issues, FieldIssue{Path: "start_date", Message: "required when query_type is date_range"})
		}
		if !okEnd {
			issues = append(issues, FieldIssue{Path: "end_date", Message: "required when query_type is date_range"})
		}
		if len(issues) > 0 {
			return issues
		}
		v[candlestickQueryKey] = DateRangeQuery{Start: start, End: end}

	case QueryByOffset:
		if v.String("direction") == "" {
			return []FieldIssue{{Path: "direction", Message: "required when query_type is offset"}}
		}
		date, okDate := v.Date("anchor_date")
		tod, okTime := v.TimeOfDay("anchor_time")
		if okTime && !okDate {
			return []FieldIssue{{Path: "anchor_date", Message: "required when anchor_time is given"}}
		}
		var anchor *time.Time
		if okDate {
			// Absent anchor_time means midnight.
			at := date.At(tod)
			anchor = &at
		}
		v[candlestickQueryKey] = OffsetQuery{
			Forward: v.String("direction") == DirectionForward,
			Anchor:  anchor,
			Count:   v.Int("count"),
		}
	}
	return nil
}

// CandlestickQuery returns the union built by RefineCandlestickQuery.
func (v Values) CandlestickQuery() CandlestickQuery {
	q, _ := v[candlestickQueryKey].(CandlestickQuery)
	return q
}
