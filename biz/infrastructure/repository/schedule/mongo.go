package schedule

import (
	"context"
	"errors"
	"time"

	"class-show/biz/infrastructure/config"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixScheduleCacheKey = "cache:schedule"
	ScheduleCollectionName = "schedule"
)

type IMongoMapper interface {
	Insert(ctx context.Context, schedule *Schedule) error
	Update(ctx context.Context, schedule *Schedule) error
	FindOne(ctx context.Context, id string) (*Schedule, error)
	FindBySlot(ctx context.Context, classID string, day, period int64) (*Schedule, error)
	FindByClassAndDay(ctx context.Context, classID string, day int64) ([]*Schedule, error)
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewScheduleMongoMapper collection: %s", ScheduleCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ScheduleCollectionName, config.Cache)
	// (class, day, period) 唯一索引
	_, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "class_id", Value: 1}, {Key: "day", Value: 1}, {Key: "period", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create schedule index fail: %v", err)
	}
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, schedule *Schedule) error {
	if schedule.ID.IsZero() {
		schedule.ID = primitive.NewObjectID()
		schedule.CreateTime = time.Now()
		schedule.UpdateTime = schedule.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, schedule)
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrScheduleConflict
	}
	return err
}

func (m *MongoMapper) Update(ctx context.Context, schedule *Schedule) error {
	schedule.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, schedule.ID, bson.M{"$set": schedule})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Schedule, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Schedule
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *MongoMapper) FindBySlot(ctx context.Context, classID string, day, period int64) (*Schedule, error) {
	var s Schedule
	filter := bson.M{
		"class_id": classID,
		"day":      day,
		"period":   period,
	}

	err := m.conn.FindOneNoCache(ctx, &s, filter)
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByClassAndDay(ctx context.Context, classID string, day int64) ([]*Schedule, error) {
	var schedules []*Schedule
	filter := bson.M{"class_id": classID}
	if day > 0 {
		filter["day"] = day
	}

	err := m.conn.Find(ctx, &schedules, filter, &options.FindOptions{
		Sort: bson.D{{Key: "day", Value: 1}, {Key: "period", Value: 1}},
	})
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
