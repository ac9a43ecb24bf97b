package input

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tsinghua-fib-lab/nasch-settings/utils/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource 从MongoDB集合读取参数表，每个文档一行
type MongoSource struct {
	uri  string
	path config.InputPath
}

func NewMongoSource(uri string, path config.InputPath) *MongoSource {
	return &MongoSource{uri: uri, path: path}
}

func (s *MongoSource) Name() string {
	return s.path.GetDb() + "." + s.path.GetColl()
}

// Load 按_id顺序读取集合中的全部文档
func (s *MongoSource) Load(ctx context.Context) ([]Row, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", s.uri, err)
	}
	defer client.Disconnect(context.Background())

	coll := client.Database(s.path.GetDb()).Collection(s.path.GetColl())
	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", s.Name(), err)
	}
	defer cursor.Close(ctx)

	rows := make([]Row, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document %d of %s: %w", len(rows)+1, s.Name(), err)
		}
		rows = append(rows, DocumentRow(s.Name(), len(rows)+1, doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.Name(), err)
	}
	log.Infof("loaded %d parameter sets from %s", len(rows), s.Name())
	return rows, nil
}

// DocumentRow 将MongoDB文档转为Row
// 说明：字段值转为字符串后与CSV单元格走同一套解析，_id不参与
func DocumentRow(source string, index int, doc bson.M) Row {
	fields := make(map[string]string, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		switch value := v.(type) {
		case string:
			fields[k] = value
		case bool:
			fields[k] = strconv.FormatBool(value)
		case float64:
			fields[k] = strconv.FormatFloat(value, 'g', -1, 64)
		case primitive.Decimal128:
			fields[k] = value.String()
		default:
			fields[k] = fmt.Sprint(value)
		}
	}
	return Row{Source: source, Line: index, Fields: fields}
}
