package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile is a member profile holding the growth/BMI history used by the
// analytics endpoints.
type Profile struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	Name       string             `json:"name,omitempty" bson:"name,omitempty"`
	Gender     string             `json:"gender,omitempty" bson:"gender,omitempty"`
	BirthDate  string             `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	BMIRecords []BMIRecord        `json:"bmiRecords,omitempty" bson:"bmiRecords,omitempty"`
}

// BMIRecord is one height/weight measurement. Height is in centimeters and
// weight in kilograms; both stay interface{} for the same legacy reasons as
// lab values.
type BMIRecord struct {
	Height     interface{} `json:"height" bson:"height"`
	Weight     interface{} `json:"weight" bson:"weight"`
	RecordedAt string      `json:"recordedAt,omitempty" bson:"recordedAt,omitempty"`
}
