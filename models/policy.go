// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// PolicyFlag is a set of binding policy bits. Each bit is an independent hint
// to the host about how to prioritize the server process; none of them change
// how requests or callbacks are routed.
type PolicyFlag uint32

const (
	// AutoCreate creates the service on bind if it is not running yet.
	AutoCreate PolicyFlag = 1 << iota
	// NotForeground keeps the server out of the foreground scheduling class
	// even when the client is in it.
	NotForeground
	// AboveClient ranks the server above the binding client.
	AboveClient
	// AllowOOMManagement lets the host reclaim the server under memory pressure.
	AllowOOMManagement
	// WaivePriority does not raise the server priority for this binding and
	// releases the binding as soon as the server goes away.
	WaivePriority
	// Important marks the server as important to the client.
	Important
	// AdjustWithHostActivity ties the server priority to the client's
	// visible activity.
	AdjustWithHostActivity
)

// ErrUnknownPolicyFlag is returned by [ParsePolicyFlags] for unknown flag names.
var ErrUnknownPolicyFlag = errors.New("unknown policy flag")

var policyFlagNames = []struct {
	flag PolicyFlag
	name string
}{
	{AutoCreate, "auto-create"},
	{NotForeground, "not-foreground"},
	{AboveClient, "above-client"},
	{AllowOOMManagement, "allow-oom-management"},
	{WaivePriority, "waive-priority"},
	{Important, "important"},
	{AdjustWithHostActivity, "adjust-with-activity"},
}

// AllPolicyFlags lists every defined flag in declaration order.
func AllPolicyFlags() []PolicyFlag {
	out := make([]PolicyFlag, 0, len(policyFlagNames))
	for _, f := range policyFlagNames {
		out = append(out, f.flag)
	}
	return out
}

// Has reports whether every bit of flag is set in p.
func (p PolicyFlag) Has(flag PolicyFlag) bool {
	return flag != 0 && p&flag == flag
}

// String renders the set as a comma-separated list of flag names.
func (p PolicyFlag) String() string {
	if p == 0 {
		return "none"
	}

	names := make([]string, 0, len(policyFlagNames))
	for _, f := range policyFlagNames {
		if p.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, ",")
}

// ParsePolicyFlags parses a comma-separated list of flag names such as
// "auto-create,important". Empty input yields an empty set.
func ParsePolicyFlags(s string) (PolicyFlag, error) {
	var out PolicyFlag
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" || part == "none" {
			continue
		}

		found := false
		for _, f := range policyFlagNames {
			if f.name == part {
				out |= f.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownPolicyFlag, part)
		}
	}
	return out, nil
}
