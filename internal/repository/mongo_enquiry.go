package repository

import (
	"context"
	"time"

	"github.com/kahvecikaan/catalog-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type enquiryDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"productId,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	ContactNo string             `bson:"contactNo"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *enquiryDocument) toDomain() *domain.Enquiry {
	return &domain.Enquiry{
		ID:        d.ID.Hex(),
		ProductID: d.ProductID,
		Name:      d.Name,
		Email:     d.Email,
		ContactNo: d.ContactNo,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

type mongoEnquiryRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoEnquiryRepository(db *mongo.Database, timeout time.Duration) EnquiryRepository {
	return &mongoEnquiryRepository{
		coll:    db.Collection(EnquiriesCollection),
		timeout: timeout,
	}
}

func (r *mongoEnquiryRepository) Add(ctx context.Context, enquiry *domain.Enquiry) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := enquiryDocument{
		ID:        primitive.NewObjectID(),
		ProductID: enquiry.ProductID,
		Name:      enquiry.Name,
		Email:     enquiry.Email,
		ContactNo: enquiry.ContactNo,
		Message:   enquiry.Message,
		CreatedAt: enquiry.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}

	enquiry.ID = doc.ID.Hex()
	return nil
}

func (r *mongoEnquiryRepository) List(ctx context.Context, skip, limit int) ([]*domain.Enquiry, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	enquiries := []*domain.Enquiry{}
	opts, ok := findWindow(skip, limit)
	if !ok {
		return enquiries, total, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []enquiryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	for i := range docs {
		enquiries = append(enquiries, docs[i].toDomain())
	}

	return enquiries, total, nil
}

func (r *mongoEnquiryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEnquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrEnquiryNotFound
	}

	return nil
}
