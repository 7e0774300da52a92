package models

import "time"

type Contact struct {
	ID          int64     `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Subject     string    `bson:"subject" json:"subject"`
	BudgetRange string    `bson:"budgetRange,omitempty" json:"budgetRange,omitempty"`
	Message     string    `bson:"message" json:"message"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
