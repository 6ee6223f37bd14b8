package hbase

// CompareOp is the closed comparison enumeration of the legacy API. The
// translator in the adapters package maps every member explicitly; adding a
// member here requires a new case there.
type CompareOp int

const (
	CompareOpLess CompareOp = iota
	CompareOpLessOrEqual
	CompareOpEqual
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpGreater
	CompareOpNoOp
)

func (op CompareOp) String() string {
	switch op {
	case CompareOpLess:
		return "LESS"
	case CompareOpLessOrEqual:
		return "LESS_OR_EQUAL"
	case CompareOpEqual:
		return "EQUAL"
	case CompareOpNotEqual:
		return "NOT_EQUAL"
	case CompareOpGreaterOrEqual:
		return "GREATER_OR_EQUAL"
	case CompareOpGreater:
		return "GREATER"
	case CompareOpNoOp:
		return "NO_OP"
	}
	return "UNKNOWN"
}
