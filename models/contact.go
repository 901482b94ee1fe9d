package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is an inbound contact-form message. The API only reads
// these for the admin dashboard; they are written by the public site.
// Collection: contact_messages
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	IsRead    bool               `bson:"is_read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// DashboardMessage is the trimmed shape the dashboard returns.
type DashboardMessage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Read  bool   `json:"read"`
}

type DashboardResponse struct {
	TotalServices     int64              `json:"totalServices"`
	TotalProjects     int64              `json:"totalProjects"`
	TotalTestimonials int64              `json:"totalTestimonials"`
	UnreadMessages    int64              `json:"unreadMessages"`
	RecentMessages    []DashboardMessage `json:"recentMessages"`
}

func (m ContactMessage) ToDashboard() DashboardMessage {
	return DashboardMessage{
		ID:    m.ID.Hex(),
		Name:  m.Name,
		Email: m.Email,
		Date:  m.CreatedAt.Format(time.DateOnly),
		Read:  m.IsRead,
	}
}
