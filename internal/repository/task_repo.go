package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicomply/internal/model"
)

type TaskRepo interface {
	CreateMany(ctx context.Context, tasks []*model.ObligationTask) error
	GetByID(ctx context.Context, id string) (*model.ObligationTask, error)
	ListBySystem(ctx context.Context, systemID string) ([]*model.ObligationTask, error)
	ListByOrg(ctx context.Context, orgID string, status model.TaskStatus) ([]*model.ObligationTask, error)
	MarkDone(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, orgID string) (open int, done int, err error)
	DeleteOpenBySystem(ctx context.Context, systemID string) error
}

type taskRepo struct {
	collection *mongo.Collection
}

func NewTaskRepo(db *mongo.Database) TaskRepo {
	return &taskRepo{
		collection: db.Collection("obligation_tasks"),
	}
}

func (r *taskRepo) CreateMany(ctx context.Context, tasks []*model.ObligationTask) error {
	if len(tasks) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(tasks))
	for _, task := range tasks {
		if task.CreatedAt.IsZero() {
			task.CreatedAt = now
		}
		if task.Status == "" {
			task.Status = model.TaskOpen
		}
		docs = append(docs, task)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByID returns nil without error when the task does not exist.
func (r *taskRepo) GetByID(ctx context.Context, id string) (*model.ObligationTask, error) {
	var task model.ObligationTask
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) ListBySystem(ctx context.Context, systemID string) ([]*model.ObligationTask, error) {
	return r.list(ctx, bson.M{"systemId": systemID})
}

// ListByOrg filters by status when one is given; an empty status lists all.
func (r *taskRepo) ListByOrg(ctx context.Context, orgID string, status model.TaskStatus) ([]*model.ObligationTask, error) {
	filter := bson.M{"orgId": orgID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *taskRepo) list(ctx context.Context, filter bson.M) ([]*model.ObligationTask, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.ObligationTask
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) MarkDone(ctx context.Context, id string) error {
	now := time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": model.TaskDone, "doneAt": now}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *taskRepo) CountByStatus(ctx context.Context, orgID string) (int, int, error) {
	open, err := r.collection.CountDocuments(ctx, bson.M{"orgId": orgID, "status": model.TaskOpen})
	if err != nil {
		return 0, 0, err
	}
	done, err := r.collection.CountDocuments(ctx, bson.M{"orgId": orgID, "status": model.TaskDone})
	if err != nil {
		return 0, 0, err
	}
	return int(open), int(done), nil
}

// DeleteOpenBySystem clears a system's open checklist items when it is
// re-assessed and the superseded run's obligations no longer apply.
// Completed tasks stay as a record of work already done.
func (r *taskRepo) DeleteOpenBySystem(ctx context.Context, systemID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"systemId": systemID, "status": model.TaskOpen})
	return err
}
