package services

import (
	"context"

	"siteapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminService covers admin registration, authentication lookups and the
// dashboard aggregate. It reads several collections because the dashboard
// counts entities the API does not otherwise manage.
type AdminService struct {
	admins          *mongo.Collection
	projects        *mongo.Collection
	servicesCol     *mongo.Collection
	testimonials    *mongo.Collection
	contactMessages *mongo.Collection
}

func NewAdminService(admins, projects, servicesCol, testimonials, contactMessages *mongo.Collection) *AdminService {
	return &AdminService{
		admins:          admins,
		projects:        projects,
		servicesCol:     servicesCol,
		testimonials:    testimonials,
		contactMessages: contactMessages,
	}
}

func (s *AdminService) Register(ctx context.Context, req *models.RegisterAdminRequest) (*models.Admin, error) {
	count, err := s.admins.CountDocuments(ctx, bson.M{"username": req.Username})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	admin := &models.Admin{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}
	if err := admin.SetPassword(req.Password); err != nil {
		return nil, err
	}

	result, err := s.admins.InsertOne(ctx, admin)
	if err != nil {
		return nil, err
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)
	return admin, nil
}

// Authenticate returns the admin when the username exists and the password
// matches its hash. Both failure modes come back as ErrNotFound so the
// caller reports them identically.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.admins.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !admin.CheckPassword(password) {
		return nil, ErrNotFound
	}
	return &admin, nil
}

func (s *AdminService) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	servicesCount, err := s.servicesCol.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	projectsCount, err := s.projects.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	testimonialsCount, err := s.testimonials.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	unreadCount, err := s.contactMessages.CountDocuments(ctx, bson.M{"is_read": false})
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(4)
	cursor, err := s.contactMessages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	recent := make([]models.DashboardMessage, 0, len(messages))
	for _, msg := range messages {
		recent = append(recent, msg.ToDashboard())
	}

	return &models.DashboardResponse{
		TotalServices:     servicesCount,
		TotalProjects:     projectsCount,
		TotalTestimonials: testimonialsCount,
		UnreadMessages:    unreadCount,
		RecentMessages:    recent,
	}, nil
}
