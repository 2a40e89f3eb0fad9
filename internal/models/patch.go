package models

import (
	"bytes"
	"encoding/json"
)

// Nullable distinguishes a field that was left out of a patch (Set false)
// from one explicitly set to null (Set true, Value nil).
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// ComplaintPatch is a partial update. An empty Status or Priority keeps the
// current value; AssignedTo and AssignedDepartment clear on explicit null.
type ComplaintPatch struct {
	Status             ComplaintStatus      `json:"status" binding:"omitempty,complaint_status"`
	Priority           ComplaintPriority    `json:"priority" binding:"omitempty,complaint_priority"`
	AssignedTo         Nullable[int]        `json:"assignedTo"`
	AssignedDepartment Nullable[Department] `json:"assignedDepartment"`
}
