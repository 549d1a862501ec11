package models

import "time"

// BookingReceipt records a successfully transmitted booking so the
// confirmation page can look it up after the wizard session is gone.
type BookingReceipt struct {
	ID              string    `bson:"id" json:"id"`
	SessionID       string    `bson:"sessionId" json:"sessionId"`
	Message         string    `bson:"message" json:"message"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Zipcode         string    `bson:"zipcode,omitempty" json:"zipcode,omitempty"`
	ServiceID       string    `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Branch          string    `bson:"branch" json:"branch"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"`
	AppointmentTime string    `bson:"appointmentTime" json:"appointmentTime"`
	ImageCount      int       `bson:"imageCount" json:"imageCount"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
