package impl

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationWriterFixtures holds all test dependencies for location writer tests.
type locationWriterFixtures struct {
	writer   usecase.LocationWriter
	locRepo  *mockRepo.MockLocationRepository
	geocoder *mockSvc.MockGeocoder
}

func createTestLocationWriter(t *testing.T) locationWriterFixtures {
	locRepo := mockRepo.NewMockLocationRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	writer := NewLocationWriter(geocoder, newDiscardLogger())

	return locationWriterFixtures{
		writer:   writer,
		locRepo:  locRepo,
		geocoder: geocoder,
	}
}

func TestLocationWriter_Create_GeocodeHit(t *testing.T) {
	fx := createTestLocationWriter(t)

	ctx := context.Background()
	input := &usecase.LocationInput{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		Country: "USA",
	}

	fx.geocoder.EXPECT().
		Resolve(ctx, "1 Main St, Springfield, IL, USA").
		Return(orb.Point{-89.65, 39.78}, true, nil)
	fx.locRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	location, err := fx.writer.Create(ctx, fx.locRepo, input)

	require.NoError(t, err)
	require.NotNil(t, location.Latitude)
	require.NotNil(t, location.Longitude)
	assert.InDelta(t, 39.78, *location.Latitude, 1e-9)
	assert.InDelta(t, -89.65, *location.Longitude, 1e-9)
}

func TestLocationWriter_Create_GeocodeMiss(t *testing.T) {
	fx := createTestLocationWriter(t)

	ctx := context.Background()
	input := &usecase.LocationInput{City: "Nowhere"}

	fx.geocoder.EXPECT().
		Resolve(ctx, ", Nowhere, , ").
		Return(orb.Point{}, false, nil)
	fx.locRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(ctx context.Context, location *entity.Location) {
			assert.Nil(t, location.Latitude)
			assert.Nil(t, location.Longitude)
		}).
		Return(nil)

	location, err := fx.writer.Create(ctx, fx.locRepo, input)

	require.NoError(t, err)
	assert.False(t, location.HasCoordinates())
}

func TestLocationWriter_Create_GeocodeFailure(t *testing.T) {
	fx := createTestLocationWriter(t)

	ctx := context.Background()
	input := &usecase.LocationInput{City: "Springfield"}

	providerErr := errors.New("provider returned status 500")
	fx.geocoder.EXPECT().
		Resolve(ctx, mock.AnythingOfType("string")).
		Return(orb.Point{}, false, providerErr)

	location, err := fx.writer.Create(ctx, fx.locRepo, input)

	assert.Nil(t, location)
	// A provider outage is not bad client input. The raw failure propagates
	// instead of the location validation error.
	assert.True(t, errors.Is(err, providerErr))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidLocation))
}

func TestLocationWriter_Update_DoesNotRegeocode(t *testing.T) {
	fx := createTestLocationWriter(t)

	ctx := context.Background()
	lat, lon := 39.78, -89.65
	existing := &entity.Location{
		Street:    "1 Main St",
		City:      "Springfield",
		Latitude:  &lat,
		Longitude: &lon,
	}
	newStreet := "2 Oak Ave"

	fx.locRepo.EXPECT().Update(ctx, existing).Return(nil)

	err := fx.writer.Update(ctx, fx.locRepo, existing, &usecase.UpdateLocationInput{Street: &newStreet})

	require.NoError(t, err)
	assert.Equal(t, "2 Oak Ave", existing.Street)
	assert.Equal(t, "Springfield", existing.City)
	// Coordinates survive address edits untouched.
	assert.Equal(t, lat, *existing.Latitude)
	assert.Equal(t, lon, *existing.Longitude)
}
