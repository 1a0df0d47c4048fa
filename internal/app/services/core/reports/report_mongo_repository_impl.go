package reports

import (
	"context"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Client, dbName string) contracts.ReportRepository {
	return &ReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReports),
	}
}

func (repo *ReportMongoRepository) CreateReport(ctx context.Context, report models.Report) (string, error) {
	document := bson.M(report.Clone())
	delete(document, "id")

	result, err := repo.Collection.InsertOne(ctx, document)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ReportMongoRepository) FindByID(ctx context.Context, reportID string) (models.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var document bson.M
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return toReport(document), nil
}

func (repo *ReportMongoRepository) FindByOwner(ctx context.Context, userID string, page, pageSize int) ([]models.Report, int, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"userId": userID},
			{"createdBy": userID},
		},
	}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"_id": -1})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	for cursor.Next(ctx) {
		var document bson.M
		if err := cursor.Decode(&document); err != nil {
			return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
		}
		reports = append(reports, toReport(document))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return reports, int(total), nil
}

// FindAllByOwner loads every report for a user without paging; the
// analytics aggregations need the full history.
func (repo *ReportMongoRepository) FindAllByOwner(ctx context.Context, userID string) ([]models.Report, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"userId": userID},
			{"createdBy": userID},
		},
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	for cursor.Next(ctx) {
		var document bson.M
		if err := cursor.Decode(&document); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		reports = append(reports, toReport(document))
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return reports, nil
}

func (repo *ReportMongoRepository) UpdateReport(ctx context.Context, reportID string, report models.Report) error {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M(report.Clone())
	delete(update, "id")
	delete(update, "_id")

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": update})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ReportMongoRepository) UpdateStatus(ctx context.Context, reportID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ReportMongoRepository) DeleteReport(ctx context.Context, reportID string) error {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// toReport converts a decoded document into a plain report record: driver
// array and id types are replaced so the accessor helpers and the goccy
// re-marshalling path see ordinary JSON shapes.
func toReport(document bson.M) models.Report {
	if document == nil {
		return nil
	}
	report := models.Report(toPlainMap(document))
	if objectID, ok := document["_id"].(primitive.ObjectID); ok {
		report["id"] = objectID.Hex()
	}
	delete(report, "_id")
	return report
}

func toPlainMap(document bson.M) map[string]interface{} {
	plain := make(map[string]interface{}, len(document))
	for key, value := range document {
		plain[key] = toPlainValue(value)
	}
	return plain
}

func toPlainValue(value interface{}) interface{} {
	switch v := value.(type) {
	case bson.M:
		return toPlainMap(v)
	case map[string]interface{}:
		return toPlainMap(v)
	case bson.A:
		plain := make([]interface{}, len(v))
		for i, entry := range v {
			plain[i] = toPlainValue(entry)
		}
		return plain
	case []interface{}:
		plain := make([]interface{}, len(v))
		for i, entry := range v {
			plain[i] = toPlainValue(entry)
		}
		return plain
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time().UTC().Format("2006-01-02T15:04:05Z07:00")
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}
