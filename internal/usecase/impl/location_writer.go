package impl

import (
	"context"
	"log/slog"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/pkg/errors"
)

// locationWriter implements the LocationWriter interface.
type locationWriter struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewLocationWriter is the constructor for locationWriter.
func NewLocationWriter(
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.LocationWriter {
	return &locationWriter{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Create persists a new location, geocoding the concatenated address.
// A provider miss or timeout stores the location without coordinates;
// any other geocoder failure aborts the operation.
func (w *locationWriter) Create(ctx context.Context, locRepo repository.LocationRepository, input *usecase.LocationInput) (*entity.Location, error) {
	location := &entity.Location{
		Street:  input.Street,
		City:    input.City,
		State:   input.State,
		Country: input.Country,
	}

	point, found, err := w.geocoder.Resolve(ctx, location.FullAddress())
	if err != nil {
		w.logger.Error("Geocoding failed", "address", location.FullAddress(), "error", err)

		// Provider failures are not a client problem. They propagate as-is
		// and surface as an internal error.
		return nil, errors.Wrap(err, "failed to geocode location")
	}
	if found {
		lat, lon := point.Lat(), point.Lon()
		location.Latitude = &lat
		location.Longitude = &lon
	} else {
		w.logger.Debug("Geocoder returned no match", "address", location.FullAddress())
	}

	if err := locRepo.Create(ctx, location); err != nil {
		return nil, errors.WithStack(err)
	}

	return location, nil
}

// Update merges the provided fields into an existing location.
// Coordinates are left untouched even when address segments change.
func (w *locationWriter) Update(ctx context.Context, locRepo repository.LocationRepository, existing *entity.Location, input *usecase.UpdateLocationInput) error {
	if input.Street != nil {
		existing.Street = *input.Street
	}
	if input.City != nil {
		existing.City = *input.City
	}
	if input.State != nil {
		existing.State = *input.State
	}
	if input.Country != nil {
		existing.Country = *input.Country
	}

	if err := locRepo.Update(ctx, existing); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
