package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"aicomply/internal/model"
)

type SystemRepo interface {
	Create(ctx context.Context, system *model.AISystem) error
	GetByID(ctx context.Context, id string) (*model.AISystem, error)
	ListByOrg(ctx context.Context, orgID string) ([]*model.AISystem, error)
	Update(ctx context.Context, system *model.AISystem) error
	SetClassified(ctx context.Context, id string, level model.RiskLevel) error
	CountByRiskLevel(ctx context.Context, orgID string) (map[model.RiskLevel]int, error)
}

type systemRepo struct {
	collection *mongo.Collection
}

func NewSystemRepo(db *mongo.Database) SystemRepo {
	return &systemRepo{
		collection: db.Collection("systems"),
	}
}

func (r *systemRepo) Create(ctx context.Context, system *model.AISystem) error {
	now := time.Now()
	system.CreatedAt = now
	system.UpdatedAt = now
	if system.Status == "" {
		system.Status = model.SystemDraft
	}
	_, err := r.collection.InsertOne(ctx, system)
	return err
}

// GetByID returns nil without error when the system does not exist.
func (r *systemRepo) GetByID(ctx context.Context, id string) (*model.AISystem, error) {
	var system model.AISystem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&system)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &system, nil
}

func (r *systemRepo) ListByOrg(ctx context.Context, orgID string) ([]*model.AISystem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"orgId": orgID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var systems []*model.AISystem
	if err = cursor.All(ctx, &systems); err != nil {
		return nil, err
	}
	return systems, nil
}

func (r *systemRepo) Update(ctx context.Context, system *model.AISystem) error {
	system.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": system.ID},
		bson.M{"$set": system})
	return err
}

// SetClassified records the latest classification outcome on the inventory
// entry itself so list views do not have to join assessments.
func (r *systemRepo) SetClassified(ctx context.Context, id string, level model.RiskLevel) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":    model.SystemAssessed,
			"riskLevel": level,
			"updatedAt": time.Now(),
		}})
	return err
}

func (r *systemRepo) CountByRiskLevel(ctx context.Context, orgID string) (map[model.RiskLevel]int, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"orgId": orgID, "status": model.SystemAssessed}}},
		{{Key: "$group", Value: bson.M{"_id": "$riskLevel", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[model.RiskLevel]int)
	for cursor.Next(ctx) {
		var row struct {
			Level model.RiskLevel `bson:"_id"`
			Count int             `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Level] = row.Count
	}
	return counts, cursor.Err()
}
