package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStaff      = "staff"
	RoleManagement = "management"
	RoleExecutive  = "executive"
)

// User is a staff member of the community.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	Status    string             `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`

	// Derived weekly activity fields, overwritten by each report run
	WeeklyHours      int        `json:"weekly_hours" bson:"weekly_hours"`
	WeeklyMinutes    int        `json:"weekly_minutes" bson:"weekly_minutes"`
	WeeklyShifts     int        `json:"weekly_shifts" bson:"weekly_shifts"`
	WeeklyComputedAt *time.Time `json:"weekly_computed_at,omitempty" bson:"weekly_computed_at,omitempty"`
}

// WeeklyStats is the per-user rollup the report run writes back.
type WeeklyStats struct {
	Hours      int
	Minutes    int
	Shifts     int
	ComputedAt time.Time
}
