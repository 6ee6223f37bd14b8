package adapters

import (
	"errors"
	"fmt"

	bigtableclient "github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/bigtable"
	"github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/hbase"
)

// ErrUnmappedOperator is returned for a comparison operator outside the closed
// enumeration. Only reachable if the enumeration gains a member without this
// translator being updated.
var ErrUnmappedOperator = errors.New("could not translate comparison operator")

// TranslateCompareOp maps a legacy comparison operator to its remote protocol
// counterpart. The switch is intentionally exhaustive with no permissive
// default so a silently wrong comparison is caught here rather than inside
// the RPC layer.
func TranslateCompareOp(op hbase.CompareOp) (bigtableclient.CompareOperator, error) {
	switch op {
	case hbase.CompareOpLess:
		return bigtableclient.CompareLess, nil
	case hbase.CompareOpLessOrEqual:
		return bigtableclient.CompareLessOrEqual, nil
	case hbase.CompareOpEqual:
		return bigtableclient.CompareEqual, nil
	case hbase.CompareOpNotEqual:
		return bigtableclient.CompareNotEqual, nil
	case hbase.CompareOpGreaterOrEqual:
		return bigtableclient.CompareGreaterOrEqual, nil
	case hbase.CompareOpGreater:
		return bigtableclient.CompareGreater, nil
	case hbase.CompareOpNoOp:
		return bigtableclient.CompareNoOp, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnmappedOperator, op)
}

// TranslateCompareOperator is the inverse mapping, from the remote protocol
// enumeration back to the legacy one.
func TranslateCompareOperator(op bigtableclient.CompareOperator) (hbase.CompareOp, error) {
	switch op {
	case bigtableclient.CompareLess:
		return hbase.CompareOpLess, nil
	case bigtableclient.CompareLessOrEqual:
		return hbase.CompareOpLessOrEqual, nil
	case bigtableclient.CompareEqual:
		return hbase.CompareOpEqual, nil
	case bigtableclient.CompareNotEqual:
		return hbase.CompareOpNotEqual, nil
	case bigtableclient.CompareGreaterOrEqual:
		return hbase.CompareOpGreaterOrEqual, nil
	case bigtableclient.CompareGreater:
		return hbase.CompareOpGreater, nil
	case bigtableclient.CompareNoOp:
		return hbase.CompareOpNoOp, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnmappedOperator, op)
}
