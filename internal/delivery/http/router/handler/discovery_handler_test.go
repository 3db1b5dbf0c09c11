package handler

import (
	"fmt"
	"net/http"
	"testing"

	"nearnow/internal/domain/entity"
	mockUC "nearnow/internal/mocks/usecase"
	"nearnow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiscoveryHandler_FindNearby(t *testing.T) {
	mockDiscoveryUC := mockUC.NewMockDiscoveryUsecase(t)
	handler := &DiscoveryHandler{discoveryUC: mockDiscoveryUC, logger: testLogger()}

	userID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet,
		"/discovery/nearby?latitude=43.65&longitude=-79.38&radius_km=5&limit=20", "", userID)

	nearbyID := uuid.New()
	mockDiscoveryUC.EXPECT().
		FindNearby(mock.Anything, userID, &usecase.FindNearbyInput{
			Latitude:  43.65,
			Longitude: -79.38,
			RadiusKm:  5,
			Limit:     20,
		}).
		Return([]*entity.NearbyUser{
			{UserID: nearbyID, DistanceKm: 1.2, Latitude: 43.66, Longitude: -79.39, IsOnline: true},
		}, nil)

	require.NoError(t, handler.FindNearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), nearbyID.String())
	assert.Contains(t, rec.Body.String(), `"distance_km":1.2`)
}

func TestDiscoveryHandler_FindNearby_RejectsOutOfRangeLatitude(t *testing.T) {
	mockDiscoveryUC := mockUC.NewMockDiscoveryUsecase(t)
	handler := &DiscoveryHandler{discoveryUC: mockDiscoveryUC, logger: testLogger()}

	c, rec := newTestContext(t, http.MethodGet,
		fmt.Sprintf("/discovery/nearby?latitude=%f&longitude=0", 95.0), "", uuid.New())

	require.NoError(t, handler.FindNearby(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
