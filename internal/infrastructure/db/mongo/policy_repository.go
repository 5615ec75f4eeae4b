package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/pkg/paging"
)

const collectionPolicies = "user_policies"

type PolicyRepository struct {
	col *mongo.Collection
}

func NewPolicyRepository(db *mongo.Database) *PolicyRepository {
	return &PolicyRepository{col: db.Collection(collectionPolicies)}
}

type mongoPolicy struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Role      string             `bson:"role"`
	CompanyID primitive.ObjectID `bson:"company_id"`
	MenuItems []domain.MenuItem  `bson:"menu_items"`
	IsDeleted bool               `bson:"is_deleted"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mp *mongoPolicy) toDomain() *domain.UserPolicy {
	return &domain.UserPolicy{
		ID:        mp.ID.Hex(),
		Role:      mp.Role,
		CompanyID: mp.CompanyID.Hex(),
		MenuItems: mp.MenuItems,
		IsDeleted: mp.IsDeleted,
		CreatedAt: mp.CreatedAt,
		UpdatedAt: mp.UpdatedAt,
	}
}

func (r *PolicyRepository) Create(ctx context.Context, p *domain.UserPolicy) (*domain.UserPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	companyID, err := primitive.ObjectIDFromHex(p.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("invalid company id: %w", err)
	}

	doc := mongoPolicy{
		Role:      p.Role,
		CompanyID: companyID,
		MenuItems: p.MenuItems,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPolicyExists
		}
		return nil, fmt.Errorf("insert policy: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PolicyRepository) FindByRoleAndCompany(ctx context.Context, role, companyID string) (*domain.UserPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, domain.ErrPolicyNotFound
	}

	var mp mongoPolicy
	err = r.col.FindOne(ctx, bson.M{"role": role, "company_id": oid, "is_deleted": false}).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("find policy: %w", err)
	}
	return mp.toDomain(), nil
}

// Update replaces role and menu items on the policy identified by
// (id, companyID).
func (r *PolicyRepository) Update(ctx context.Context, id, companyID, role string, items []domain.MenuItem) (*domain.UserPolicy, error) {
	update := bson.M{"$set": bson.M{
		"role":       role,
		"menu_items": items,
		"updated_at": time.Now().UTC(),
	}}
	// Return the pre-update document: a rename must invalidate the cache
	// entry keyed by the old role, which the new document no longer carries.
	return r.findOneAndUpdate(ctx, id, companyID, update, options.Before)
}

// SoftDelete marks the policy deleted; the record stays in the collection.
func (r *PolicyRepository) SoftDelete(ctx context.Context, id, companyID string) (*domain.UserPolicy, error) {
	update := bson.M{"$set": bson.M{
		"is_deleted": true,
		"updated_at": time.Now().UTC(),
	}}
	// Return the pre-delete document so callers still see role/company for
	// cache invalidation.
	return r.findOneAndUpdate(ctx, id, companyID, update, options.Before)
}

func (r *PolicyRepository) findOneAndUpdate(ctx context.Context, id, companyID string, update bson.M, ret options.ReturnDocument) (*domain.UserPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPolicyNotFound
	}
	companyOID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, domain.ErrPolicyNotFound
	}

	filter := bson.M{"_id": oid, "company_id": companyOID, "is_deleted": false}
	opts := options.FindOneAndUpdate().SetReturnDocument(ret)

	var mp mongoPolicy
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("update policy: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PolicyRepository) ListByCompany(ctx context.Context, companyID string, page, limit int) ([]*domain.UserPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, domain.ErrPolicyNotFound
	}

	opts := options.Find().
		SetSkip(int64(paging.Offset(page, limit))).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"company_id": oid, "is_deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.UserPolicy
	for cur.Next(ctx) {
		var mp mongoPolicy
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode policy: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	return out, cur.Err()
}

// EnsureIndexes creates the (role, company_id) lookup index.
func (r *PolicyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "role", Value: 1}, {Key: "company_id", Value: 1}},
	})
	return err
}
