package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mvalderrama/travel-service/internal/models"
)

// ErrNotFound is returned when a row does not exist or belongs to another agency.
var ErrNotFound = errors.New("not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO travel.users (agency_id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.AgencyID, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, agency_id, username, email, password_hash, created_at
		FROM travel.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.AgencyID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateClient creates a new client in the database
func (r *Repository) CreateClient(client *models.Client) error {
	query := `
		INSERT INTO travel.clients (agency_id, name, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, client.AgencyID, client.Name, client.Email, client.Phone, client.Notes).
		Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetClient retrieves a client scoped to the agency
func (r *Repository) GetClient(agencyID, id int64) (*models.Client, error) {
	client := &models.Client{}
	query := `
		SELECT id, agency_id, name, email, phone, notes, created_at, updated_at
		FROM travel.clients
		WHERE id = $1 AND agency_id = $2`
	err := r.db.QueryRow(query, id, agencyID).
		Scan(&client.ID, &client.AgencyID, &client.Name, &client.Email, &client.Phone, &client.Notes, &client.CreatedAt, &client.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// ListClients retrieves all clients for the agency
func (r *Repository) ListClients(agencyID int64) ([]*models.Client, error) {
	query := `
		SELECT id, agency_id, name, email, phone, notes, created_at, updated_at
		FROM travel.clients
		WHERE agency_id = $1
		ORDER BY name`
	rows, err := r.db.Query(query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []*models.Client{}
	for rows.Next() {
		client := &models.Client{}
		if err := rows.Scan(&client.ID, &client.AgencyID, &client.Name, &client.Email, &client.Phone, &client.Notes, &client.CreatedAt, &client.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

// UpdateClient updates a client scoped to the agency
func (r *Repository) UpdateClient(client *models.Client) error {
	query := `
		UPDATE travel.clients
		SET name = $1, email = $2, phone = $3, notes = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND agency_id = $6
		RETURNING updated_at`
	err := r.db.QueryRow(query, client.Name, client.Email, client.Phone, client.Notes, client.ID, client.AgencyID).
		Scan(&client.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// DeleteClient deletes a client scoped to the agency
func (r *Repository) DeleteClient(agencyID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM travel.clients WHERE id = $1 AND agency_id = $2`, id, agencyID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateTrip creates a new trip in the database
func (r *Repository) CreateTrip(trip *models.Trip) error {
	query := `
		INSERT INTO travel.trips (agency_id, name, destination, description, base_price, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, trip.AgencyID, trip.Name, trip.Destination, trip.Description, trip.BasePrice, trip.Currency).
		Scan(&trip.ID, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip scoped to the agency
func (r *Repository) GetTrip(agencyID, id int64) (*models.Trip, error) {
	trip := &models.Trip{}
	query := `
		SELECT id, agency_id, name, destination, description, base_price, currency, created_at, updated_at
		FROM travel.trips
		WHERE id = $1 AND agency_id = $2`
	err := r.db.QueryRow(query, id, agencyID).
		Scan(&trip.ID, &trip.AgencyID, &trip.Name, &trip.Destination, &trip.Description, &trip.BasePrice, &trip.Currency, &trip.CreatedAt, &trip.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// ListTrips retrieves all trips for the agency
func (r *Repository) ListTrips(agencyID int64) ([]*models.Trip, error) {
	query := `
		SELECT id, agency_id, name, destination, description, base_price, currency, created_at, updated_at
		FROM travel.trips
		WHERE agency_id = $1
		ORDER BY name`
	rows, err := r.db.Query(query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := []*models.Trip{}
	for rows.Next() {
		trip := &models.Trip{}
		if err := rows.Scan(&trip.ID, &trip.AgencyID, &trip.Name, &trip.Destination, &trip.Description, &trip.BasePrice, &trip.Currency, &trip.CreatedAt, &trip.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

// UpdateTrip updates a trip scoped to the agency
func (r *Repository) UpdateTrip(trip *models.Trip) error {
	query := `
		UPDATE travel.trips
		SET name = $1, destination = $2, description = $3, base_price = $4, currency = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6 AND agency_id = $7
		RETURNING updated_at`
	err := r.db.QueryRow(query, trip.Name, trip.Destination, trip.Description, trip.BasePrice, trip.Currency, trip.ID, trip.AgencyID).
		Scan(&trip.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return nil
}

// DeleteTrip deletes a trip scoped to the agency
func (r *Repository) DeleteTrip(agencyID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM travel.trips WHERE id = $1 AND agency_id = $2`, id, agencyID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateQuotation creates a new quotation in the database
func (r *Repository) CreateQuotation(q *models.Quotation) error {
	query := `
		INSERT INTO travel.quotations
			(agency_id, client_id, trip_id, reference, total, discount, deposit, currency,
			 frequency, payment_method, start_date, end_date, payment_link, extra_note,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		q.AgencyID, q.ClientID, q.TripID, q.Reference, q.Total, q.Discount, q.Deposit, q.Currency,
		q.Frequency, q.PaymentMethod, q.StartDate, q.EndDate, q.PaymentLink, q.ExtraNote).
		Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quotation: %w", err)
	}
	return nil
}

// GetQuotation retrieves a quotation scoped to the agency
func (r *Repository) GetQuotation(agencyID, id int64) (*models.Quotation, error) {
	q := &models.Quotation{}
	query := `
		SELECT id, agency_id, client_id, trip_id, reference, total, discount, deposit, currency,
		       frequency, payment_method, start_date, end_date, payment_link, extra_note,
		       created_at, updated_at
		FROM travel.quotations
		WHERE id = $1 AND agency_id = $2`
	err := r.db.QueryRow(query, id, agencyID).
		Scan(&q.ID, &q.AgencyID, &q.ClientID, &q.TripID, &q.Reference, &q.Total, &q.Discount, &q.Deposit, &q.Currency,
			&q.Frequency, &q.PaymentMethod, &q.StartDate, &q.EndDate, &q.PaymentLink, &q.ExtraNote,
			&q.CreatedAt, &q.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	return q, nil
}

// ListQuotations retrieves all quotations for the agency
func (r *Repository) ListQuotations(agencyID int64) ([]*models.Quotation, error) {
	query := `
		SELECT id, agency_id, client_id, trip_id, reference, total, discount, deposit, currency,
		       frequency, payment_method, start_date, end_date, payment_link, extra_note,
		       created_at, updated_at
		FROM travel.quotations
		WHERE agency_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer rows.Close()

	quotations := []*models.Quotation{}
	for rows.Next() {
		q := &models.Quotation{}
		if err := rows.Scan(&q.ID, &q.AgencyID, &q.ClientID, &q.TripID, &q.Reference, &q.Total, &q.Discount, &q.Deposit, &q.Currency,
			&q.Frequency, &q.PaymentMethod, &q.StartDate, &q.EndDate, &q.PaymentLink, &q.ExtraNote,
			&q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		quotations = append(quotations, q)
	}
	return quotations, rows.Err()
}

// UpdateQuotation updates a quotation scoped to the agency
func (r *Repository) UpdateQuotation(q *models.Quotation) error {
	query := `
		UPDATE travel.quotations
		SET client_id = $1, trip_id = $2, total = $3, discount = $4, deposit = $5, currency = $6,
		    frequency = $7, payment_method = $8, start_date = $9, end_date = $10,
		    payment_link = $11, extra_note = $12, updated_at = CURRENT_TIMESTAMP
		WHERE id = $13 AND agency_id = $14
		RETURNING updated_at`
	err := r.db.QueryRow(query,
		q.ClientID, q.TripID, q.Total, q.Discount, q.Deposit, q.Currency,
		q.Frequency, q.PaymentMethod, q.StartDate, q.EndDate,
		q.PaymentLink, q.ExtraNote, q.ID, q.AgencyID).
		Scan(&q.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update quotation: %w", err)
	}
	return nil
}

// DeleteQuotation deletes a quotation scoped to the agency
func (r *Repository) DeleteQuotation(agencyID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM travel.quotations WHERE id = $1 AND agency_id = $2`, id, agencyID)
	if err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListQuotationsStartingOn retrieves reminder rows for quotations whose trip
// starts on the given YYYY-MM-DD date, across all agencies.
func (r *Repository) ListQuotationsStartingOn(date string) ([]*models.QuotationReminder, error) {
	query := `
		SELECT q.id, c.name, c.email, t.name, q.start_date
		FROM travel.quotations q
		JOIN travel.clients c ON c.id = q.client_id
		JOIN travel.trips t ON t.id = q.trip_id
		WHERE q.start_date = $1 AND c.email <> ''`
	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	reminders := []*models.QuotationReminder{}
	for rows.Next() {
		rem := &models.QuotationReminder{}
		if err := rows.Scan(&rem.QuotationID, &rem.ClientName, &rem.ClientEmail, &rem.TripName, &rem.StartDate); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

// GetSettings retrieves the agency settings
func (r *Repository) GetSettings(agencyID int64) (*models.Settings, error) {
	s := &models.Settings{}
	query := `
		SELECT agency_id, company_name, phone, email, instagram, facebook, website, locale, card_fee_percent, updated_at
		FROM travel.settings
		WHERE agency_id = $1`
	err := r.db.QueryRow(query, agencyID).
		Scan(&s.AgencyID, &s.CompanyName, &s.Phone, &s.Email, &s.Instagram, &s.Facebook, &s.Website, &s.Locale, &s.CardFeePercent, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// UpsertSettings creates or replaces the agency settings
func (r *Repository) UpsertSettings(s *models.Settings) error {
	query := `
		INSERT INTO travel.settings (agency_id, company_name, phone, email, instagram, facebook, website, locale, card_fee_percent, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP)
		ON CONFLICT (agency_id) DO UPDATE
		SET company_name = EXCLUDED.company_name, phone = EXCLUDED.phone, email = EXCLUDED.email,
		    instagram = EXCLUDED.instagram, facebook = EXCLUDED.facebook, website = EXCLUDED.website,
		    locale = EXCLUDED.locale, card_fee_percent = EXCLUDED.card_fee_percent, updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at`
	err := r.db.QueryRow(query, s.AgencyID, s.CompanyName, s.Phone, s.Email, s.Instagram, s.Facebook, s.Website, s.Locale, s.CardFeePercent).
		Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}
