package service

import "github.com/mvalderrama/travel-service/internal/models"

// Storage abstracts the persistence layer so the service can be tested with
// an in-memory implementation. *repository.Repository satisfies it.
type Storage interface {
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)

	CreateClient(client *models.Client) error
	GetClient(agencyID, id int64) (*models.Client, error)
	ListClients(agencyID int64) ([]*models.Client, error)
	UpdateClient(client *models.Client) error
	DeleteClient(agencyID, id int64) error

	CreateTrip(trip *models.Trip) error
	GetTrip(agencyID, id int64) (*models.Trip, error)
	ListTrips(agencyID int64) ([]*models.Trip, error)
	UpdateTrip(trip *models.Trip) error
	DeleteTrip(agencyID, id int64) error

	CreateQuotation(q *models.Quotation) error
	GetQuotation(agencyID, id int64) (*models.Quotation, error)
	ListQuotations(agencyID int64) ([]*models.Quotation, error)
	UpdateQuotation(q *models.Quotation) error
	DeleteQuotation(agencyID, id int64) error
	ListQuotationsStartingOn(date string) ([]*models.QuotationReminder, error)

	GetSettings(agencyID int64) (*models.Settings, error)
	UpsertSettings(s *models.Settings) error
}

// Mailer abstracts outgoing mail so the service can be tested without SMTP.
type Mailer interface {
	SendPaymentPlan(to, clientName, tripName, document string) error
	SendTripReminder(to, clientName, tripName, startDate string) error
}
