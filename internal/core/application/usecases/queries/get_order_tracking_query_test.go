package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderTrackingQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderTrackingQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderTrackingQuery_ZeroOrderID(t *testing.T) {
	_, err := queries.NewGetOrderTrackingQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetOrderTrackingQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderTrackingQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderTrackingQueryIsNotConstructed)
}
