package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bancobr/bank-api/internal/core/domain"
)

const customerCollection = "customers"

type CustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection(customerCollection)}
}

// EnsureIndexes creates the unique document index for customer records.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "document", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create document index: %w", err)
	}
	return nil
}

type customerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FullName  string             `bson:"full_name"`
	Document  string             `bson:"document"`
	Status    string             `bson:"status"`
	UserID    string             `bson:"user_id"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	doc := customerDoc{
		FullName:  customer.FullName,
		Document:  customer.Document,
		Status:    string(customer.Status),
		UserID:    customer.UserID,
		CreatedAt: customer.CreatedAt.Unix(),
		UpdatedAt: customer.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	created := *customer
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	var doc customerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return docToCustomer(doc), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cur.Close(ctx)

	var customers []domain.Customer
	for cur.Next(ctx) {
		var doc customerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		customers = append(customers, *docToCustomer(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func docToCustomer(doc customerDoc) *domain.Customer {
	return &domain.Customer{
		ID:        doc.ID.Hex(),
		FullName:  doc.FullName,
		Document:  doc.Document,
		Status:    domain.CustomerStatus(doc.Status),
		UserID:    doc.UserID,
		CreatedAt: unixToTime(doc.CreatedAt),
		UpdatedAt: unixToTime(doc.UpdatedAt),
	}
}
