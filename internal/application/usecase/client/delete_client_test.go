// Package client contains client-related use cases.
package client

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// fakeClientRepo holds clients keyed by ID with a fixed reference count.
type fakeClientRepo struct {
	clients    map[uuid.UUID]*entity.Client
	references int64
	deleted    []uuid.UUID
}

func newFakeClientRepo(references int64, clients ...*entity.Client) *fakeClientRepo {
	repo := &fakeClientRepo{
		clients:    make(map[uuid.UUID]*entity.Client),
		references: references,
	}
	for _, c := range clients {
		repo.clients[c.ID] = c
	}
	return repo
}

func (f *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) FindAll(ctx context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	if _, ok := f.clients[client.ID]; !ok {
		return domainerror.ErrClientNotFound
	}
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.clients[id]; !ok {
		return domainerror.ErrClientNotFound
	}
	delete(f.clients, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClientRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.references, nil
}

func TestDeleteClientBlockedWhileReferenced(t *testing.T) {
	c := entity.NewClient("Hery")
	repo := newFakeClientRepo(3, c)
	uc := NewDeleteClientUseCase(repo)

	err := uc.Execute(context.Background(), DeleteClientInput{ID: c.ID})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, domainerror.ErrClientHasRecords) {
		t.Errorf("expected ErrClientHasRecords, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("expected no deletion while records reference the client")
	}
}

func TestDeleteClientWithoutRecords(t *testing.T) {
	c := entity.NewClient("Vola")
	repo := newFakeClientRepo(0, c)
	uc := NewDeleteClientUseCase(repo)

	if err := uc.Execute(context.Background(), DeleteClientInput{ID: c.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != c.ID {
		t.Error("expected the client to be deleted")
	}
}

func TestDeleteClientNotFound(t *testing.T) {
	repo := newFakeClientRepo(0)
	uc := NewDeleteClientUseCase(repo)

	err := uc.Execute(context.Background(), DeleteClientInput{ID: uuid.New()})
	if !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

func TestCreateClientRejectsBlankName(t *testing.T) {
	repo := newFakeClientRepo(0)
	uc := NewCreateClientUseCase(repo)

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := uc.Execute(context.Background(), CreateClientInput{Name: name}); !errors.Is(err, domainerror.ErrEmptyClientName) {
			t.Errorf("name %q: expected ErrEmptyClientName, got %v", name, err)
		}
	}
	if len(repo.clients) != 0 {
		t.Error("expected no client to be created")
	}
}

func TestCreateClientTrimsName(t *testing.T) {
	repo := newFakeClientRepo(0)
	uc := NewCreateClientUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateClientInput{Name: "  Hery  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Client.Name != "Hery" {
		t.Errorf("expected trimmed name %q, got %q", "Hery", output.Client.Name)
	}
}
