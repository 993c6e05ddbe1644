package activity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record is one logged shift. The duration is kept as the free-form string
// the staff member typed; the report pipeline parses it at aggregation time.
type Record struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Date      time.Time          `json:"date" bson:"date"`
	Duration  string             `json:"duration" bson:"duration"`
	Note      string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
