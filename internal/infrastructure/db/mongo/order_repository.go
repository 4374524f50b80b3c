package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

const collectionOrders = "orders"

type orderLineDoc struct {
	ProductID int    `bson:"product_id"`
	Name      string `bson:"name"`
}

type orderDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	CustomerEmail string             `bson:"customer_email"`
	Products      []orderLineDoc     `bson:"products"`
	TotalAmount   float64            `bson:"total_amount"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toOrderDoc(o *domain.Order) (orderDoc, error) {
	id := primitive.NewObjectID()
	if o.ID != "" {
		parsed, err := primitive.ObjectIDFromHex(o.ID)
		if err != nil {
			return orderDoc{}, domain.ErrOrderNotFound
		}
		id = parsed
	}

	lines := make([]orderLineDoc, 0, len(o.Products))
	for _, l := range o.Products {
		lines = append(lines, orderLineDoc{ProductID: l.ProductID, Name: l.Name})
	}

	return orderDoc{
		ID:            id,
		CustomerEmail: o.CustomerEmail,
		Products:      lines,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}, nil
}

func (d orderDoc) toDomain() *domain.Order {
	lines := make([]domain.OrderLine, 0, len(d.Products))
	for _, l := range d.Products {
		lines = append(lines, domain.OrderLine{ProductID: l.ProductID, Name: l.Name})
	}
	return &domain.Order{
		ID:            d.ID.Hex(),
		CustomerEmail: d.CustomerEmail,
		Products:      lines,
		TotalAmount:   d.TotalAmount,
		Status:        domain.OrderStatus(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

// Create inserts a new order and returns it with its generated id.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toOrderDoc(order)
	if err != nil {
		return nil, err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindByID looks an order up by its hex id. An unparseable id behaves like a
// missing order.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var doc orderDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"customer_email": email})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, *d.toDomain())
	}
	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toOrderDoc(order)
	if err != nil {
		return nil, err
	}
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// DeleteByCustomerEmail removes every order owned by email and reports how
// many were removed. Zero is not an error: a user may have no orders.
func (r *OrderRepository) DeleteByCustomerEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"customer_email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the customer email index used by history lookups and
// the cascade delete.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customer_email", Value: 1}},
	})
	return err
}
