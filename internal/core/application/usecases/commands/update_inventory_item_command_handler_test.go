package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestUpdateInventoryItemCommandHandler_Handle_QuantityOnly(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing, err := inventory.NewItem(kernel.NewUUID(), "HD-2002", "Work Gloves", 2, "Aisle 3")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateInventoryItemCommand(existing.ID(), nil, intPtr(9), nil)
	require.NoError(t, err)

	mockRepo := new(MockInventoryRepository)
	mockUoW := new(MockInventoryUoW)
	mockFactory := new(MockInventoryUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InventoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		mockUoW.On("InventoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Update", ctx, mock.AnythingOfType("*inventory.Item")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateInventoryItemCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Quantity())
	// Untouched fields keep their stored values.
	assert.Equal(t, "Work Gloves", updated.Name())
	assert.Equal(t, "Aisle 3", updated.Location())
	assert.Equal(t, "HD-2002", updated.Sku())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestUpdateInventoryItemCommandHandler_Handle_AllFields(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing, err := inventory.NewItem(kernel.NewUUID(), "HD-2002", "Work Gloves", 2, "Aisle 3")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateInventoryItemCommand(
		existing.ID(), strPtr("Leather Gloves"), intPtr(14), strPtr("Aisle 7"))
	require.NoError(t, err)

	mockRepo := new(MockInventoryRepository)
	mockUoW := new(MockInventoryUoW)
	mockFactory := new(MockInventoryUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InventoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		mockUoW.On("InventoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Update", ctx, mock.AnythingOfType("*inventory.Item")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateInventoryItemCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Leather Gloves", updated.Name())
	assert.Equal(t, 14, updated.Quantity())
	assert.Equal(t, "Aisle 7", updated.Location())
}

func TestUpdateInventoryItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	itemID := kernel.NewUUID()

	cmd, err := commands.NewUpdateInventoryItemCommand(itemID, nil, intPtr(5), nil)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError(itemID.String(), itemID)
	mockRepo := new(MockInventoryRepository)
	mockUoW := new(MockInventoryUoW)
	mockFactory := new(MockInventoryUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InventoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, itemID).Return(nil, notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateInventoryItemCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
}

func TestUpdateInventoryItemCommand_NegativeQuantityRejected(t *testing.T) {
	// Act
	_, err := commands.NewUpdateInventoryItemCommand(kernel.NewUUID(), nil, intPtr(-1), nil)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateInventoryItemCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	itemID := kernel.NewUUID()

	cmd, err := commands.NewCreateInventoryItemCommand(itemID, "HD-1001", "Cordless Drill", 6, "Aisle 12")
	require.NoError(t, err)

	mockRepo := new(MockInventoryRepository)
	mockUoW := new(MockInventoryUoW)
	mockFactory := new(MockInventoryUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InventoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*inventory.Item")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateInventoryItemCommandHandler(mockFactory)

	// Act
	item, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, item.ID().IsEqual(itemID))
	assert.Equal(t, "HD-1001", item.Sku())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateInventoryItemCommandHandler_Handle_DefaultLocation(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateInventoryItemCommand(kernel.NewUUID(), "HD-3003", "Tape Measure", 0, "")
	require.NoError(t, err)

	mockRepo := new(MockInventoryRepository)
	mockUoW := new(MockInventoryUoW)
	mockFactory := new(MockInventoryUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("InventoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*inventory.Item")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateInventoryItemCommandHandler(mockFactory)

	// Act
	item, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, inventory.DefaultLocation, item.Location())
	assert.Equal(t, 0, item.Quantity())
}

func TestCreateInventoryItemCommand_MissingSkuRejected(t *testing.T) {
	// Act
	_, err := commands.NewCreateInventoryItemCommand(kernel.NewUUID(), "", "Cordless Drill", 6, "")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrItemSkuIsRequired)
}
