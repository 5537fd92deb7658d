package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvalderrama/travel-service/internal/config"
	"github.com/mvalderrama/travel-service/internal/middleware"
	"github.com/mvalderrama/travel-service/internal/models"
	"github.com/mvalderrama/travel-service/internal/plan"
	"github.com/mvalderrama/travel-service/internal/repository"
)

// Service handles business logic
type Service struct {
	repo   Storage
	mailer Mailer
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo Storage, mailer Mailer, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, mailer: mailer, log: log, config: cfg}
}

// Register creates a new user with hashed password
func (s *Service) Register(agencyID int64, username, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		AgencyID:     agencyID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s (agency %d)", user.Email, user.AgencyID)
	return user, nil
}

// Login authenticates a user and returns a JWT token carrying the agency claim
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	claims := middleware.Claims{
		AgencyID: user.AgencyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

func agencyFromContext(ctx context.Context) (int64, error) {
	agencyID, ok := ctx.Value("agencyID").(int64)
	if !ok || agencyID == 0 {
		return 0, fmt.Errorf("agency ID not found in context")
	}
	return agencyID, nil
}

// CreateClient creates a client for the authenticated agency
func (s *Service) CreateClient(ctx context.Context, client *models.Client) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	client.AgencyID = agencyID
	if err := s.repo.CreateClient(client); err != nil {
		return err
	}
	s.log.Infof("Client created for agency %d: %s", agencyID, client.Name)
	return nil
}

// GetClient retrieves one of the agency's clients
func (s *Service) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetClient(agencyID, id)
}

// ListClients retrieves the agency's clients
func (s *Service) ListClients(ctx context.Context) ([]*models.Client, error) {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListClients(agencyID)
}

// UpdateClient updates one of the agency's clients
func (s *Service) UpdateClient(ctx context.Context, client *models.Client) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	client.AgencyID = agencyID
	return s.repo.UpdateClient(client)
}

// DeleteClient deletes one of the agency's clients
func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteClient(agencyID, id)
}

// CreateTrip creates a trip for the authenticated agency
func (s *Service) CreateTrip(ctx context.Context, trip *models.Trip) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	trip.AgencyID = agencyID
	if err := s.repo.CreateTrip(trip); err != nil {
		return err
	}
	s.log.Infof("Trip created for agency %d: %s", agencyID, trip.Name)
	return nil
}

// GetTrip retrieves one of the agency's trips
func (s *Service) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetTrip(agencyID, id)
}

// ListTrips retrieves the agency's trips
func (s *Service) ListTrips(ctx context.Context) ([]*models.Trip, error) {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTrips(agencyID)
}

// UpdateTrip updates one of the agency's trips
func (s *Service) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	trip.AgencyID = agencyID
	return s.repo.UpdateTrip(trip)
}

// DeleteTrip deletes one of the agency's trips
func (s *Service) DeleteTrip(ctx context.Context, id int64) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteTrip(agencyID, id)
}

// CreateQuotation creates a quotation with a fresh reference token
func (s *Service) CreateQuotation(ctx context.Context, q *models.Quotation) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	q.AgencyID = agencyID
	q.Reference = uuid.New().String()[:8]
	if err := s.repo.CreateQuotation(q); err != nil {
		return err
	}
	s.log.Infof("Quotation %s created for agency %d", q.Reference, agencyID)
	return nil
}

// GetQuotation retrieves one of the agency's quotations
func (s *Service) GetQuotation(ctx context.Context, id int64) (*models.Quotation, error) {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetQuotation(agencyID, id)
}

// ListQuotations retrieves the agency's quotations
func (s *Service) ListQuotations(ctx context.Context) ([]*models.Quotation, error) {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListQuotations(agencyID)
}

// UpdateQuotation updates one of the agency's quotations
func (s *Service) UpdateQuotation(ctx context.Context, q *models.Quotation) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	q.AgencyID = agencyID
	return s.repo.UpdateQuotation(q)
}

// DeleteQuotation deletes one of the agency's quotations
func (s *Service) DeleteQuotation(ctx context.Context, id int64) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteQuotation(agencyID, id)
}

// GetSettings retrieves the agency settings, falling back to defaults when no
// row exists yet so document generation always has a company profile.
func (s *Service) GetSettings(ctx context.Context) (*models.Settings, error) {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.repo.GetSettings(agencyID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.defaultSettings(agencyID), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings creates or replaces the agency settings
func (s *Service) UpdateSettings(ctx context.Context, settings *models.Settings) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}
	settings.AgencyID = agencyID
	if err := s.repo.UpsertSettings(settings); err != nil {
		return err
	}
	s.log.Infof("Settings updated for agency %d", agencyID)
	return nil
}

func (s *Service) defaultSettings(agencyID int64) *models.Settings {
	return &models.Settings{
		AgencyID:       agencyID,
		Locale:         "es-MX",
		CardFeePercent: plan.ParseAmount(s.config.CardFeePercent),
	}
}

// GeneratePaymentPlan composes the payment-plan document for a quotation.
func (s *Service) GeneratePaymentPlan(ctx context.Context, quotationID int64) (string, error) {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return "", err
	}

	q, err := s.repo.GetQuotation(agencyID, quotationID)
	if err != nil {
		return "", err
	}
	client, err := s.repo.GetClient(agencyID, q.ClientID)
	if err != nil {
		return "", err
	}
	trip, err := s.repo.GetTrip(agencyID, q.TripID)
	if err != nil {
		return "", err
	}
	settings, err := s.repo.GetSettings(agencyID)
	if errors.Is(err, repository.ErrNotFound) {
		settings = s.defaultSettings(agencyID)
	} else if err != nil {
		return "", err
	}

	inputs := models.PaymentPlanInputs{
		Total:         q.Total,
		Discount:      q.Discount,
		Deposit:       q.Deposit,
		Currency:      q.Currency,
		Frequency:     q.Frequency,
		PaymentMethod: q.PaymentMethod,
		StartDate:     plan.ParseDate(q.StartDate),
		EndDate:       plan.ParseDate(q.EndDate),
		PaymentLink:   q.PaymentLink,
		ClientName:    client.Name,
		TripName:      trip.Name,
		ExtraNote:     q.ExtraNote,
		Settings:      *settings,
	}

	document := plan.Compose(inputs)
	s.log.Infof("Payment plan generated for quotation %s", q.Reference)
	return document, nil
}

// SendPaymentPlan composes the payment-plan document and emails it to the client.
func (s *Service) SendPaymentPlan(ctx context.Context, quotationID int64) error {
	agencyID, err := agencyFromContext(ctx)
	if err != nil {
		return err
	}

	q, err := s.repo.GetQuotation(agencyID, quotationID)
	if err != nil {
		return err
	}
	client, err := s.repo.GetClient(agencyID, q.ClientID)
	if err != nil {
		return err
	}
	if client.Email == "" {
		return fmt.Errorf("client %d has no email address", client.ID)
	}
	trip, err := s.repo.GetTrip(agencyID, q.TripID)
	if err != nil {
		return err
	}

	document, err := s.GeneratePaymentPlan(ctx, quotationID)
	if err != nil {
		return err
	}

	if err := s.mailer.SendPaymentPlan(client.Email, client.Name, trip.Name, document); err != nil {
		return err
	}
	s.log.Infof("Payment plan for quotation %s sent to %s", q.Reference, client.Email)
	return nil
}

// SendTripReminders emails clients whose trip starts daysAhead days from now.
// Intended to run from the daily cron job; individual failures are logged and
// skipped so one bad address does not stop the sweep.
func (s *Service) SendTripReminders(daysAhead int) {
	date := time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")
	reminders, err := s.repo.ListQuotationsStartingOn(date)
	if err != nil {
		s.log.Errorf("Failed to list reminders for %s: %v", date, err)
		return
	}

	for _, rem := range reminders {
		if err := s.mailer.SendTripReminder(rem.ClientEmail, rem.ClientName, rem.TripName, rem.StartDate); err != nil {
			s.log.Errorf("Failed to send reminder for quotation %d: %v", rem.QuotationID, err)
			continue
		}
		s.log.Infof("Trip reminder sent to %s for quotation %d", rem.ClientEmail, rem.QuotationID)
	}
}
