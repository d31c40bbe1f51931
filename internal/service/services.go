// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Services groups the interfaces served to remote clients. All of them are
// backed by one [Host].
type Services struct {
	Lifecycle LifecycleService
	Primary   PrimaryService
	Secondary SecondaryService
}

// NewServices exposes host through the three service interfaces.
func NewServices(host *Host) *Services {
	return &Services{
		Lifecycle: host,
		Primary:   host,
		Secondary: host,
	}
}
