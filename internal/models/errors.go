package models

import "fmt"

// UnknownDatasetError indicates a registry lookup with an unrecognized
// dataset name. This is a programmer error, not a data condition.
type UnknownDatasetError struct {
	Name string
}

func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset: %q", e.Name)
}

// UnknownNodeError indicates a food-web query referencing an absent node.
type UnknownNodeError struct {
	NodeID string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown food web node: %q", e.NodeID)
}

// InvalidControlStateError indicates a ControlState that fails validation,
// such as an inverted year window.
type InvalidControlStateError struct {
	Field   string
	Message string
}

func (e *InvalidControlStateError) Error() string {
	return fmt.Sprintf("invalid control state: %s: %s", e.Field, e.Message)
}

// UndefinedAggregateError indicates an aggregate requested over
// insufficient data, such as a trend fit with fewer than two distinct
// years. Callers must treat this as absence, never as zero.
type UndefinedAggregateError struct {
	Operation string
	Reason    string
}

func (e *UndefinedAggregateError) Error() string {
	return fmt.Sprintf("%s undefined: %s", e.Operation, e.Reason)
}
