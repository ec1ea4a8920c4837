package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kahvecikaan/catalog-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Images      []string           `bson:"images"`
	PageURL     string             `bson:"pageUrl"`
	CreatedAt   time.Time          `bson:"createdAt"`
	IsDeleted   bool               `bson:"isDeleted"`
}

func (d *productDocument) toDomain() *domain.Product {
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return &domain.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Images:      images,
		PageURL:     d.PageURL,
		CreatedAt:   d.CreatedAt,
		IsDeleted:   d.IsDeleted,
	}
}

type linkDocument struct {
	ID      primitive.ObjectID `bson:"_id"`
	Title   string             `bson:"title"`
	PageURL string             `bson:"pageUrl"`
}

func (d linkDocument) toDomain() domain.ProductLink {
	return domain.ProductLink{ID: d.ID.Hex(), Title: d.Title, PageURL: d.PageURL}
}

var (
	activeProducts    = bson.M{"isDeleted": false}
	productProjection = bson.M{"title": 1, "pageUrl": 1}
)

type mongoProductRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoProductRepository(db *mongo.Database, timeout time.Duration) ProductRepository {
	return &mongoProductRepository{
		coll:    db.Collection(ProductsCollection),
		timeout: timeout,
	}
}

func (r *mongoProductRepository) Add(ctx context.Context, product *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := productDocument{
		ID:          primitive.NewObjectID(),
		Title:       product.Title,
		Description: product.Description,
		Images:      product.Images,
		PageURL:     product.PageURL,
		CreatedAt:   product.CreatedAt,
		IsDeleted:   product.IsDeleted,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPageURLTaken
		}
		return err
	}

	product.ID = doc.ID.Hex()
	return nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *mongoProductRepository) GetByPageURL(ctx context.Context, pageURL string) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"pageUrl": pageURL, "isDeleted": false})
}

func (r *mongoProductRepository) findOne(ctx context.Context, filter bson.M) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc productDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *mongoProductRepository) PageURLExists(ctx context.Context, pageURL string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"pageUrl": pageURL}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoProductRepository) List(ctx context.Context, skip, limit int) ([]*domain.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, activeProducts)
	if err != nil {
		return nil, 0, err
	}

	products := []*domain.Product{}
	opts, ok := findWindow(skip, limit)
	if !ok {
		return products, total, nil
	}

	cursor, err := r.coll.Find(ctx, activeProducts, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	for i := range docs {
		products = append(products, docs[i].toDomain())
	}

	return products, total, nil
}

func (r *mongoProductRepository) ListNavigation(ctx context.Context, skip, limit int) ([]domain.ProductLink, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, activeProducts)
	if err != nil {
		return nil, 0, err
	}

	links := []domain.ProductLink{}
	opts, ok := findWindow(skip, limit)
	if !ok {
		return links, total, nil
	}

	cursor, err := r.coll.Find(ctx, activeProducts, opts.SetProjection(productProjection))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []linkDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	for _, d := range docs {
		links = append(links, d.toDomain())
	}

	return links, total, nil
}

func (r *mongoProductRepository) Links(ctx context.Context, ids []string) (map[string]domain.ProductLink, error) {
	links := make(map[string]domain.ProductLink)

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return links, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetProjection(productProjection)
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []linkDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		link := d.toDomain()
		links[link.ID] = link
	}

	return links, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, product *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"title":       product.Title,
			"description": product.Description,
			"images":      product.Images,
		},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}
