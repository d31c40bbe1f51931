// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/google/uuid"

// Sink is a callback that forwards every delivered value to a Poster.
type Sink struct {
	id      string
	poster  Poster
	onValue func(value int32)
}

// NewSink builds a sink that runs onValue on poster. An empty id is replaced
// by a random one.
func NewSink(id string, poster Poster, onValue func(value int32)) *Sink {
	if id == "" {
		id = uuid.NewString()
	}
	return &Sink{id: id, poster: poster, onValue: onValue}
}

// CallbackID implements connection.Callback.
func (s *Sink) CallbackID() string {
	return s.id
}

// ValueChanged implements connection.Callback. It only posts.
func (s *Sink) ValueChanged(value int32) {
	s.poster.Post(func() {
		s.onValue(value)
	})
}
