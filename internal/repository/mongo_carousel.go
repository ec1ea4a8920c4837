package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kahvecikaan/catalog-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type carouselDocument struct {
	ID        string    `bson:"_id"`
	Images    []string  `bson:"images"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d *carouselDocument) toDomain() *domain.Carousel {
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return &domain.Carousel{ID: d.ID, Images: images, CreatedAt: d.CreatedAt}
}

type mongoCarouselRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoCarouselRepository(db *mongo.Database, timeout time.Duration) CarouselRepository {
	return &mongoCarouselRepository{
		coll:    db.Collection(CarouselsCollection),
		timeout: timeout,
	}
}

func (r *mongoCarouselRepository) Get(ctx context.Context, id string) (*domain.Carousel, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc carouselDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrCarouselNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

// AppendImages is a single upsert, so concurrent first uploads still end up
// in one document.
func (r *mongoCarouselRepository) AppendImages(ctx context.Context, id string, paths []string, createdAt time.Time) (*domain.Carousel, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{
		"$push":        bson.M{"images": bson.M{"$each": paths}},
		"$setOnInsert": bson.M{"createdAt": createdAt},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc carouselDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *mongoCarouselRepository) SetImages(ctx context.Context, id string, images []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"images": images}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrCarouselNotFound
	}

	return nil
}

func (r *mongoCarouselRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrCarouselNotFound
	}

	return nil
}
