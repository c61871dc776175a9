package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Eursukkul/transit-booking/internal/dto"
	"github.com/Eursukkul/transit-booking/internal/models"
	"github.com/Eursukkul/transit-booking/internal/repository"
	"github.com/Eursukkul/transit-booking/pkg/rabbitmq"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id int) (*models.Service, error)
	AddService(ctx context.Context, req dto.AddServiceRequest) (*models.Service, error)
}

type catalogService struct {
	store     *repository.RecordStore
	publisher EventPublisher
}

func NewCatalogService(store *repository.RecordStore, publisher EventPublisher) CatalogService {
	return &catalogService{store: store, publisher: publisher}
}

func (s *catalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.store.Services(), nil
}

func (s *catalogService) GetService(ctx context.Context, id int) (*models.Service, error) {
	svc, ok := s.store.FindServiceByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrServiceNotFound, id)
	}
	out := *svc
	return &out, nil
}

// AddService registers a new run with every seat available. Ids are
// max(existing)+1, so they are never reused while the highest survives.
func (s *catalogService) AddService(ctx context.Context, req dto.AddServiceRequest) (*models.Service, error) {
	req.Type = strings.TrimSpace(req.Type)
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidService, describeValidation(err))
	}

	svc := models.Service{
		ID:             s.store.NextServiceID(),
		Type:           models.ServiceType(req.Type),
		Name:           req.Name,
		Source:         req.Source,
		Destination:    req.Destination,
		DepartTime:     req.DepartTime,
		SeatsTotal:     req.SeatsTotal,
		SeatsAvailable: req.SeatsTotal,
	}

	cp := s.store.Checkpoint()
	s.store.AppendService(svc)
	if err := persistOrRollback(ctx, s.store, cp, s.store.SaveServices); err != nil {
		return nil, err
	}

	publish(s.publisher, rabbitmq.RoutingServiceAdded, dto.ToServiceEvent(svc))
	return &svc, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			parts = append(parts, fe.Field()+" is required")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "lte":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
