// Package session keeps the editable field values of one interactive user and
// recomputes the estimate after every change.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
)

// Calculator computes a result from raw field values.
type Calculator interface {
	Calculate(ctx context.Context, raw params.Raw) *retrieval.Result
}

// Session is a single in-memory form. Updates are serialized: each change is
// followed by one full recomputation before the next change is applied.
type Session struct {
	id   uuid.UUID
	calc Calculator

	mu     sync.Mutex
	fields params.Raw
	result *retrieval.Result
}

// New starts a session with every field at its default and computes once.
func New(ctx context.Context, calc Calculator) *Session {
	s := &Session{
		id:     uuid.New(),
		calc:   calc,
		fields: params.Raw{},
	}
	s.result = calc.Calculate(ctx, s.fields.Clone())
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Set changes one field and returns the recomputed result. An empty value
// clears the field so its default applies again.
func (s *Session) Set(ctx context.Context, field string, value interface{}) *retrieval.Result {
	return s.Apply(ctx, params.Raw{field: value})
}

// Apply changes several fields with a single recomputation.
func (s *Session) Apply(ctx context.Context, changes params.Raw) *retrieval.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range changes {
		if v == nil || v == "" {
			delete(s.fields, k)
			continue
		}
		s.fields[k] = v
	}
	s.result = s.calc.Calculate(ctx, s.fields.Clone())
	return s.result
}

// Reset drops every user value and recomputes from defaults.
func (s *Session) Reset(ctx context.Context) *retrieval.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fields = params.Raw{}
	s.result = s.calc.Calculate(ctx, s.fields.Clone())
	return s.result
}

// Fields returns a copy of the current field values.
func (s *Session) Fields() params.Raw {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields.Clone()
}

// Result returns the latest computed result.
func (s *Session) Result() *retrieval.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
