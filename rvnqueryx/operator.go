package rvnqueryx

// QueryOperator is the operator used to combine query clauses that are not
// explicitly joined.
type QueryOperator uint

const (
	queryOperatorUnset QueryOperator = iota

	QueryOperatorOr
	QueryOperatorAnd
)

func (o QueryOperator) String() string {
	switch o {
	case QueryOperatorOr:
		return "OR"
	case QueryOperatorAnd:
		return "AND"
	}
	return ""
}
