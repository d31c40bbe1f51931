// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Wire messages exchanged over the RPC transport. Field tags are shared by
// the CBOR codec and by JSON status documents.

// Empty is the response of calls that return nothing.
type Empty struct{}

// StartRequest is the explicit start-server command. Reason is free text that
// ends up in the server log.
type StartRequest struct {
	Caller string `json:"caller,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// StartResponse reports the core's counter at the time of the start call.
type StartResponse struct {
	StartID int   `json:"start_id"`
	Counter int32 `json:"counter"`
}

// StopRequest is the stop-server command.
type StopRequest struct {
	Caller string `json:"caller,omitempty"`
}

// BindRequest opens a binding session on the named interface.
type BindRequest struct {
	Interface string     `json:"interface"`
	Flags     PolicyFlag `json:"flags"`
	Caller    string     `json:"caller,omitempty"`
}

// BindEventType discriminates events on a binding stream.
type BindEventType int

const (
	// EventConnected is always the first event of a binding stream.
	EventConnected BindEventType = iota + 1
	// EventValueChanged carries one callback delivery.
	EventValueChanged
)

// BindEvent is one message on a binding stream.
type BindEvent struct {
	Type       BindEventType `json:"type"`
	BindingID  string        `json:"binding_id,omitempty"`
	Interface  InterfaceKind `json:"interface,omitempty"`
	PID        int32         `json:"pid,omitempty"`
	CallbackID string        `json:"callback_id,omitempty"`
	Value      int32         `json:"value,omitempty"`
}

// CallbackRequest addresses one callback on one binding.
type CallbackRequest struct {
	BindingID  string `json:"binding_id"`
	CallbackID string `json:"callback_id"`
}

// SecondaryRequest carries the binding a secondary call is issued on.
type SecondaryRequest struct {
	BindingID string `json:"binding_id"`
}

// ProcessID is the response of GetServerProcessID.
type ProcessID struct {
	PID int32 `json:"pid"`
}

// ExerciseTypesRequest carries one value of every primitive kind.
type ExerciseTypesRequest struct {
	BindingID string  `json:"binding_id"`
	Int32     int32   `json:"i32"`
	Int64     int64   `json:"i64"`
	Bool      bool    `json:"b"`
	Float32   float32 `json:"f32"`
	Float64   float64 `json:"f64"`
	String    string  `json:"s"`
}
