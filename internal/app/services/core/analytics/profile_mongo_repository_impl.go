package analytics

import (
	"context"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfiles),
	}
}

func (repo *ProfileMongoRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	profile := new(models.Profile)
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return profile, nil
}
