package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventgate/internal/domain"
)

type fakeEventRepo struct {
	byID map[string]*domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: map[string]*domain.Event{}}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeCodeGen returns codes from a fixed sequence, repeating the last one.
type fakeCodeGen struct {
	codes []string
	calls int
	err   error
}

func (f *fakeCodeGen) Generate() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	i := f.calls
	if i >= len(f.codes) {
		i = len(f.codes) - 1
	}
	f.calls++
	return f.codes[i], nil
}

func testEvent(id string) *domain.Event {
	now := time.Now()
	return &domain.Event{ID: id, OrganizerID: "org-1", Title: "Launch Party", Status: domain.EventStatusDraft, EndDate: now.Add(24 * time.Hour), CreatedAt: now, UpdatedAt: now}
}

func TestGateService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit access code", func(t *testing.T) {
		events := newFakeEventRepo()
		events.byID["ev-1"] = testEvent("ev-1")
		gates := newFakeGateRepo()
		svc := NewGateService(gates, events, &fakeCodeGen{codes: []string{"UNUSED"}})

		gate, err := svc.Create(ctx, "ev-1", "Main Entrance", "SECRET1")
		require.NoError(t, err)
		assert.Equal(t, "SECRET1", gate.AccessCode)
		assert.True(t, gate.IsActive)
		assert.Equal(t, "ev-1", gate.EventID)
	})

	t.Run("generated code on empty input", func(t *testing.T) {
		events := newFakeEventRepo()
		events.byID["ev-1"] = testEvent("ev-1")
		gates := newFakeGateRepo()
		svc := NewGateService(gates, events, &fakeCodeGen{codes: []string{"GEN001"}})

		gate, err := svc.Create(ctx, "ev-1", "Main Entrance", "")
		require.NoError(t, err)
		assert.Equal(t, "GEN001", gate.AccessCode)
	})

	t.Run("retries on code collision", func(t *testing.T) {
		events := newFakeEventRepo()
		events.byID["ev-1"] = testEvent("ev-1")
		gates := newFakeGateRepo()
		existing, err := domain.NewGate("gate-0", "ev-1", "Old", "GEN001", time.Now())
		require.NoError(t, err)
		gates.add(existing)
		gen := &fakeCodeGen{codes: []string{"GEN001", "GEN002"}}
		svc := NewGateService(gates, events, gen)

		gate, err := svc.Create(ctx, "ev-1", "Main Entrance", "")
		require.NoError(t, err)
		assert.Equal(t, "GEN002", gate.AccessCode)
		assert.Equal(t, 2, gen.calls)
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		events := newFakeEventRepo()
		events.byID["ev-1"] = testEvent("ev-1")
		gates := newFakeGateRepo()
		existing, err := domain.NewGate("gate-0", "ev-1", "Old", "GEN001", time.Now())
		require.NoError(t, err)
		gates.add(existing)
		gen := &fakeCodeGen{codes: []string{"GEN001"}}
		svc := NewGateService(gates, events, gen)

		_, err = svc.Create(ctx, "ev-1", "Main Entrance", "")
		require.ErrorIs(t, err, domain.ErrCodeGeneration)
		assert.Equal(t, maxCodeAttempts, gen.calls)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewGateService(newFakeGateRepo(), newFakeEventRepo(), &fakeCodeGen{codes: []string{"GEN001"}})
		_, err := svc.Create(ctx, "ev-missing", "Main Entrance", "SECRET1")
		require.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("invalid name", func(t *testing.T) {
		events := newFakeEventRepo()
		events.byID["ev-1"] = testEvent("ev-1")
		svc := NewGateService(newFakeGateRepo(), events, &fakeCodeGen{codes: []string{"GEN001"}})
		_, err := svc.Create(ctx, "ev-1", "", "SECRET1")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestGateService_ActivateDeactivate(t *testing.T) {
	ctx := context.Background()

	events := newFakeEventRepo()
	events.byID["ev-1"] = testEvent("ev-1")
	gates := newFakeGateRepo()
	gate, err := domain.NewGate("gate-1", "ev-1", "Main", "ABC123", time.Now())
	require.NoError(t, err)
	gates.add(gate)
	svc := NewGateService(gates, events, &fakeCodeGen{codes: []string{"GEN001"}})

	_, err = svc.Activate(ctx, "gate-1")
	require.Error(t, err, "activating an active gate fails")
	assert.True(t, domain.IsValidation(err))

	got, err := svc.Deactivate(ctx, "gate-1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.False(t, gates.byID["gate-1"].IsActive)

	got, err = svc.Activate(ctx, "gate-1")
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestGateService_RegenerateAccessCode(t *testing.T) {
	ctx := context.Background()

	events := newFakeEventRepo()
	events.byID["ev-1"] = testEvent("ev-1")
	gates := newFakeGateRepo()
	gate, err := domain.NewGate("gate-1", "ev-1", "Main", "OLD111", time.Now())
	require.NoError(t, err)
	gates.add(gate)
	other, err := domain.NewGate("gate-2", "ev-1", "Side", "TAKEN1", time.Now())
	require.NoError(t, err)
	gates.add(other)

	gen := &fakeCodeGen{codes: []string{"TAKEN1", "FRESH1"}}
	svc := NewGateService(gates, events, gen)

	got, err := svc.RegenerateAccessCode(ctx, "gate-1")
	require.NoError(t, err)
	assert.Equal(t, "FRESH1", got.AccessCode)
	assert.Equal(t, "FRESH1", gates.byID["gate-1"].AccessCode)

	gen.err = fmt.Errorf("entropy exhausted")
	_, err = svc.RegenerateAccessCode(ctx, "gate-2")
	require.Error(t, err)
}
