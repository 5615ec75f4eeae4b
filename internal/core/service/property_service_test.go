package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

type stubCompoundRepo struct {
	byID    map[string]*domain.Compound
	byRef   map[int]*domain.Compound
	created []*domain.Compound
}

func newStubCompoundRepo() *stubCompoundRepo {
	return &stubCompoundRepo{byID: make(map[string]*domain.Compound), byRef: make(map[int]*domain.Compound)}
}

func (r *stubCompoundRepo) Create(_ context.Context, c *domain.Compound) (*domain.Compound, error) {
	clone := *c
	if clone.ID == "" {
		clone.ID = "compound-" + clone.Name
	}
	r.byID[clone.ID] = &clone
	r.byRef[clone.ReferenceNumber] = &clone
	r.created = append(r.created, &clone)
	return &clone, nil
}

func (r *stubCompoundRepo) FindByID(_ context.Context, id string) (*domain.Compound, error) {
	if c, ok := r.byID[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCompoundNotFound
}

func (r *stubCompoundRepo) FindByReference(_ context.Context, ref int) (*domain.Compound, error) {
	if c, ok := r.byRef[ref]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCompoundNotFound
}

func (r *stubCompoundRepo) List(_ context.Context) ([]*domain.Compound, error) {
	return r.created, nil
}

type stubDeveloperRepo struct {
	byName map[string]*domain.Developer
	byRef  map[int]*domain.Developer
}

func newStubDeveloperRepo() *stubDeveloperRepo {
	return &stubDeveloperRepo{byName: make(map[string]*domain.Developer), byRef: make(map[int]*domain.Developer)}
}

func (r *stubDeveloperRepo) Create(_ context.Context, d *domain.Developer) (*domain.Developer, error) {
	clone := *d
	if clone.ID == "" {
		clone.ID = "developer-" + clone.Name
	}
	r.byName[clone.Name] = &clone
	r.byRef[clone.ReferenceNumber] = &clone
	return &clone, nil
}

func (r *stubDeveloperRepo) FindByID(_ context.Context, id string) (*domain.Developer, error) {
	for _, d := range r.byName {
		if d.ID == id {
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrDeveloperNotFound
}

func (r *stubDeveloperRepo) FindByName(_ context.Context, name string) (*domain.Developer, error) {
	if d, ok := r.byName[name]; ok {
		clone := *d
		return &clone, nil
	}
	return nil, domain.ErrDeveloperNotFound
}

func (r *stubDeveloperRepo) FindByReference(_ context.Context, ref int) (*domain.Developer, error) {
	if d, ok := r.byRef[ref]; ok {
		clone := *d
		return &clone, nil
	}
	return nil, domain.ErrDeveloperNotFound
}

func (r *stubDeveloperRepo) List(_ context.Context) ([]*domain.Developer, error) {
	out := make([]*domain.Developer, 0, len(r.byName))
	for _, d := range r.byName {
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

type stubPropertyRepo struct {
	byID       map[string]*domain.Property
	byRef      map[int]*domain.Property
	listResult []*domain.Property
	listTotal  int64
	lastFilter *ports.ListPropertiesFilter
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{byID: make(map[string]*domain.Property), byRef: make(map[int]*domain.Property)}
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	clone := *p
	if clone.ID == "" {
		clone.ID = "property-" + clone.Name
	}
	r.byID[clone.ID] = &clone
	r.byRef[clone.ReferenceNumber] = &clone
	return &clone, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	if p, ok := r.byID[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPropertyNotFound
}

func (r *stubPropertyRepo) FindByReference(_ context.Context, ref int) (*domain.Property, error) {
	if p, ok := r.byRef[ref]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPropertyNotFound
}

func (r *stubPropertyRepo) List(_ context.Context, filter ports.ListPropertiesFilter) ([]*domain.Property, int64, error) {
	f := filter
	r.lastFilter = &f
	return r.listResult, r.listTotal, nil
}

func newPropertyService(props *stubPropertyRepo, compounds *stubCompoundRepo, developers *stubDeveloperRepo) *PropertyService {
	return NewPropertyService(props, compounds, developers, zerolog.Nop())
}

func seedCompound(t *testing.T, repo *stubCompoundRepo, name, developerID string) *domain.Compound {
	t.Helper()
	c, err := repo.Create(context.Background(), &domain.Compound{Name: name, DeveloperID: developerID})
	if err != nil {
		t.Fatalf("seed compound: %v", err)
	}
	return c
}

func TestPropertyService_Create_InheritsDeveloperFromCompound(t *testing.T) {
	props := newStubPropertyRepo()
	compounds := newStubCompoundRepo()
	developers := newStubDeveloperRepo()
	compound := seedCompound(t, compounds, "Agora", "developer-42")
	svc := newPropertyService(props, compounds, developers)

	property, err := svc.Create(context.Background(), ports.CreatePropertyInput{
		Name:            "Agora Villa 3",
		ReferenceNumber: 135,
		CompoundID:      compound.ID,
		Type:            "Villa",
		Beds:            3,
		Baths:           2,
		Area:            220,
		Price:           1500000,
		UserID:          "user-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if property.DeveloperID != "developer-42" {
		t.Fatalf("expected inherited developer id, got %q", property.DeveloperID)
	}
	if property.CompoundID != compound.ID {
		t.Fatalf("unexpected compound id %q", property.CompoundID)
	}
}

func TestPropertyService_Create_CompoundMustExist(t *testing.T) {
	svc := newPropertyService(newStubPropertyRepo(), newStubCompoundRepo(), newStubDeveloperRepo())

	_, err := svc.Create(context.Background(), ports.CreatePropertyInput{
		Name:            "Orphan",
		ReferenceNumber: 1,
		CompoundID:      "missing",
	})
	if !errors.Is(err, domain.ErrCompoundNotFound) {
		t.Fatalf("expected ErrCompoundNotFound, got %v", err)
	}
}

func TestPropertyService_Create_DuplicateReference(t *testing.T) {
	props := newStubPropertyRepo()
	compounds := newStubCompoundRepo()
	compound := seedCompound(t, compounds, "Agora", "developer-42")
	svc := newPropertyService(props, compounds, newStubDeveloperRepo())

	input := ports.CreatePropertyInput{
		Name:            "Unit A",
		ReferenceNumber: 77,
		CompoundID:      compound.ID,
	}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input.Name = "Unit B"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrPropertyExists) {
		t.Fatalf("expected ErrPropertyExists, got %v", err)
	}
}

func TestPropertyService_List_DefaultsPagination(t *testing.T) {
	props := newStubPropertyRepo()
	props.listTotal = 25
	svc := newPropertyService(props, newStubCompoundRepo(), newStubDeveloperRepo())

	result, err := svc.List(context.Background(), ports.ListPropertiesInput{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Page != 1 || result.Limit != defaultPropertyPageSize {
		t.Fatalf("expected page=1 limit=%d, got page=%d limit=%d", defaultPropertyPageSize, result.Page, result.Limit)
	}
	if result.TotalPages != 3 {
		t.Fatalf("25 matches at 10 per page must give 3 pages, got %d", result.TotalPages)
	}
	if props.lastFilter.Page != 1 || props.lastFilter.Limit != defaultPropertyPageSize {
		t.Fatalf("unnormalized paging reached the repository: %+v", props.lastFilter)
	}
}

func TestPropertyService_List_ResolvesDeveloperName(t *testing.T) {
	props := newStubPropertyRepo()
	developers := newStubDeveloperRepo()
	if _, err := developers.Create(context.Background(), &domain.Developer{Name: "Palm Hills"}); err != nil {
		t.Fatalf("seed developer: %v", err)
	}
	svc := newPropertyService(props, newStubCompoundRepo(), developers)

	_, err := svc.List(context.Background(), ports.ListPropertiesInput{Developer: "Palm Hills"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if props.lastFilter.DeveloperID != "developer-Palm Hills" {
		t.Fatalf("developer name was not resolved, filter: %+v", props.lastFilter)
	}
}

func TestPropertyService_List_UnknownDeveloperAborts(t *testing.T) {
	props := newStubPropertyRepo()
	svc := newPropertyService(props, newStubCompoundRepo(), newStubDeveloperRepo())

	_, err := svc.List(context.Background(), ports.ListPropertiesInput{Developer: "Nobody"})
	if !errors.Is(err, domain.ErrDeveloperNotFound) {
		t.Fatalf("expected ErrDeveloperNotFound, got %v", err)
	}
	if props.lastFilter != nil {
		t.Fatalf("property query must not run when the developer is unknown")
	}
}

func TestPropertyService_List_PassesFilterThrough(t *testing.T) {
	props := newStubPropertyRepo()
	svc := newPropertyService(props, newStubCompoundRepo(), newStubDeveloperRepo())

	priceMin := 100000.0
	_, err := svc.List(context.Background(), ports.ListPropertiesInput{
		Name:     "agora",
		Type:     "Villa",
		Beds:     5,
		PriceMin: &priceMin,
		Page:     2,
		Limit:    20,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	f := props.lastFilter
	if f.Name != "agora" || f.Type != "Villa" || f.Beds != 5 {
		t.Fatalf("filter fields not passed through: %+v", f)
	}
	if f.PriceMin == nil || *f.PriceMin != priceMin || f.PriceMax != nil {
		t.Fatalf("price bounds not passed through: %+v", f)
	}
	if f.Page != 2 || f.Limit != 20 {
		t.Fatalf("explicit paging not preserved: %+v", f)
	}
}
