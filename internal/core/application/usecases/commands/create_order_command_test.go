package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, name string, quantity int, unitPrice int64) commands.ItemLine {
	t.Helper()
	line, err := commands.NewItemLine(kernel.NewUUID(), nil, name, quantity, unitPrice)
	require.NoError(t, err)
	return line
}

func TestNewItemLine(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		productID := kernel.NewUUID()
		variantID := kernel.NewUUID()

		line, err := commands.NewItemLine(productID, &variantID, "Canvas Tote", 2, 1500)

		require.NoError(t, err)
		assert.Equal(t, productID, line.ProductID())
		require.NotNil(t, line.VariantID())
		assert.Equal(t, "Canvas Tote", line.ProductName())
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, int64(1500), line.UnitPrice())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := commands.NewItemLine(kernel.NewUUID(), nil, "Canvas Tote", 0, 1500)
		require.Error(t, err)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := commands.NewItemLine(kernel.NewUUID(), nil, "Canvas Tote", 1, -1)
		require.Error(t, err)
	})

	t.Run("rejects blank product name", func(t *testing.T) {
		_, err := commands.NewItemLine(kernel.NewUUID(), nil, "  ", 1, 1500)
		require.Error(t, err)
	})
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	brandID := kernel.NewUUID()
	methodID := kernel.NewUUID()
	lines := []commands.ItemLine{mustLine(t, "Canvas Tote", 2, 1500)}

	cmd, err := commands.NewCreateOrderCommand(orderID, userID, addressID, "eur", lines,
		map[kernel.UUID]kernel.UUID{brandID: methodID})

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, addressID, cmd.ShippingAddressID())
	assert.Equal(t, "eur", cmd.Currency())
	assert.Len(t, cmd.Lines(), 1)
	assert.Len(t, cmd.DeliveryChoices(), 1)
}

func TestNewCreateOrderCommand_NoChoicesIsAllowed(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "",
		[]commands.ItemLine{mustLine(t, "Canvas Tote", 1, 100)}, nil)

	require.NoError(t, err)
	assert.Empty(t, cmd.DeliveryChoices())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	t.Run("empty lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", nil, nil)

		require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
	})

	t.Run("unconstructed line", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "",
			[]commands.ItemLine{{}}, nil)

		require.Error(t, err)
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "",
			[]commands.ItemLine{mustLine(t, "Canvas Tote", 1, 100)}, nil)

		require.Error(t, err)
	})

	t.Run("zero method id in choices", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "",
			[]commands.ItemLine{mustLine(t, "Canvas Tote", 1, 100)},
			map[kernel.UUID]kernel.UUID{kernel.NewUUID(): {}})

		require.Error(t, err)
	})
}

func TestCreateOrderCommand_ValidateZeroValue(t *testing.T) {
	cmd := commands.CreateOrderCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
