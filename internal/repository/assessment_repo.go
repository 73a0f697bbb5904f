package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicomply/internal/model"
)

type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	ListBySystem(ctx context.Context, systemID string) ([]*model.Assessment, error)
	Finalize(ctx context.Context, assessment *model.Assessment) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, assessment)
	return err
}

// GetByID returns nil without error when the assessment does not exist.
func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// ListBySystem returns a system's assessment history, newest first.
func (r *assessmentRepo) ListBySystem(ctx context.Context, systemID string) ([]*model.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"systemId": systemID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// Finalize persists the answer set and classification result and marks the
// assessment classified.
func (r *assessmentRepo) Finalize(ctx context.Context, assessment *model.Assessment) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": assessment.ID},
		bson.M{"$set": bson.M{
			"status":       assessment.Status,
			"answers":      assessment.Answers,
			"result":       assessment.Result,
			"classifiedAt": assessment.ClassifiedAt,
		}})
	return err
}
