// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicyFlags(t *testing.T) {
	tests := []struct {
		in      string
		want    PolicyFlag
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "none", want: 0},
		{in: "auto-create", want: AutoCreate},
		{in: "Auto-Create, important ,waive-priority", want: AutoCreate | Important | WaivePriority},
		{in: "adjust-with-activity,above-client", want: AdjustWithHostActivity | AboveClient},
		{in: "auto-create,bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicyFlags(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicyFlag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyFlag_StringRoundTrip(t *testing.T) {
	all := PolicyFlag(0)
	for _, f := range AllPolicyFlags() {
		all |= f
	}
	assert.Len(t, AllPolicyFlags(), 7)

	for _, p := range []PolicyFlag{0, AutoCreate, NotForeground | AllowOOMManagement, all} {
		got, err := ParsePolicyFlags(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got, p.String())
	}
	assert.Equal(t, "none", PolicyFlag(0).String())
}

func TestPolicyFlag_Has(t *testing.T) {
	p := AutoCreate | Important

	assert.True(t, p.Has(AutoCreate))
	assert.True(t, p.Has(AutoCreate|Important))
	assert.False(t, p.Has(AutoCreate|WaivePriority))
	assert.False(t, p.Has(0))
}

func TestParseInterfaceKind(t *testing.T) {
	kind, err := ParseInterfaceKind("primary")
	require.NoError(t, err)
	assert.Equal(t, Primary, kind)

	kind, err = ParseInterfaceKind("secondary")
	require.NoError(t, err)
	assert.Equal(t, Secondary, kind)

	for _, name := range []string{"", "Primary", "tertiary"} {
		_, err = ParseInterfaceKind(name)
		assert.ErrorIs(t, err, ErrUnknownInterface, name)
	}
}

func TestServerStatus_JSON(t *testing.T) {
	in := ServerStatus{PID: 1, Version: "v", Alive: true, State: Running, Counter: 3, Priority: "important"}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state":"running"`)

	var out ServerStatus
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`{"state":"sleeping"}`), &out))
}

func TestConnectionState_String(t *testing.T) {
	assert.Equal(t, "unbound", Unbound.String())
	assert.Equal(t, "binding", Binding.String())
	assert.Equal(t, "connected", Connected.String())
	assert.Equal(t, "disconnected", Disconnected.String())
	assert.Equal(t, "unknown", ConnectionState(42).String())
}
