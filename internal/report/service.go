package report

import (
	"context"
	"fmt"
	"strings"
)

// listLimit caps the number of reports returned by List.
const listLimit = 100

// Service validates and persists incident reports and lists recent ones.
type Service struct {
	store Store
}

// NewService constructs the intake service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateParams carries the fields of an intake submission. Pincode, Location,
// ContactName, ContactEmail and Anonymous are optional.
type CreateParams struct {
	Type         string
	Severity     string
	Title        string
	Description  string
	Address      string
	City         string
	State        string
	Pincode      string
	Location     *Coordinates
	ContactName  string
	ContactPhone string
	ContactEmail string
	Anonymous    bool
}

// Create validates the submission and persists it with status Active.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Report, error) {
	params.Type = strings.TrimSpace(params.Type)
	params.Severity = strings.TrimSpace(params.Severity)
	params.Title = strings.TrimSpace(params.Title)
	params.Description = strings.TrimSpace(params.Description)
	params.Address = strings.TrimSpace(params.Address)
	params.City = strings.TrimSpace(params.City)
	params.State = strings.TrimSpace(params.State)
	params.ContactPhone = strings.TrimSpace(params.ContactPhone)

	if params.Type == "" || params.Severity == "" || params.Title == "" ||
		params.Description == "" || params.Address == "" || params.City == "" ||
		params.State == "" || params.ContactPhone == "" {
		return nil, ErrMissingField
	}
	if !ValidSeverity(params.Severity) {
		return nil, fmt.Errorf("%w: severity %q", ErrInvalidValue, params.Severity)
	}

	rep := &Report{
		Type:         params.Type,
		Severity:     params.Severity,
		Title:        params.Title,
		Description:  params.Description,
		Address:      params.Address,
		City:         params.City,
		State:        params.State,
		Pincode:      strings.TrimSpace(params.Pincode),
		Location:     params.Location,
		ContactName:  strings.TrimSpace(params.ContactName),
		ContactPhone: params.ContactPhone,
		ContactEmail: strings.TrimSpace(params.ContactEmail),
		Anonymous:    params.Anonymous,
		Status:       StatusActive,
	}
	if err := s.store.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// List returns up to 100 most recent reports, newest first.
func (s *Service) List(ctx context.Context) ([]Report, error) {
	return s.store.ListRecent(ctx, listLimit)
}
