package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionID = "sess-1"

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartStore   *mockService.MockCartStore
	productRepo *mockRepo.MockProductRepository
	couponRepo  *mockRepo.MockCouponRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartStore := mockService.NewMockCartStore(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)

	service := NewCartService(CartServiceParams{
		Config:      &config.Config{},
		CartStore:   cartStore,
		ProductRepo: productRepo,
		CouponRepo:  couponRepo,
		Logger:      slog.Default(),
	})

	return cartServiceFixtures{
		service:     service,
		cartStore:   cartStore,
		productRepo: productRepo,
		couponRepo:  couponRepo,
	}
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:            7,
		Name:          "Denim Jacket",
		SellingPrice:  decimal.NewFromInt(45),
		StockQuantity: decimal.NewFromInt(3),
		Image:         "denim.jpg",
		Category:      "jackets",
	}
}

func TestCartService_Add_NewLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, int64(7)).Return(testProduct(), nil)
	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(nil, nil)
	fx.cartStore.EXPECT().Save(ctx, testSessionID, mock.AnythingOfType("*entity.CheckoutSession")).Return(nil)

	view, err := fx.service.Add(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  2,
		Size:      "M",
		Color:     "blue",
	})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Denim Jacket", view.Lines[0].Name)
	assert.Equal(t, "45", view.Lines[0].Price.String())
	assert.Equal(t, "2", view.Lines[0].Quantity.String())
	assert.Equal(t, "90", view.Totals.Subtotal.String())
	assert.Equal(t, "100", view.Totals.Total.String())
}

func TestCartService_Add_MergesSameVariant(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{
		ProductID: 7,
		Name:      "Denim Jacket",
		Price:     decimal.NewFromInt(45),
		Quantity:  decimal.NewFromInt(1),
		Size:      "M",
		Color:     "blue",
	})

	fx.productRepo.EXPECT().FindByID(ctx, int64(7)).Return(testProduct(), nil)
	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.cartStore.EXPECT().Save(ctx, testSessionID, sess).Return(nil)

	view, err := fx.service.Add(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  2,
		Size:      "M",
		Color:     "blue",
	})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "3", view.Lines[0].Quantity.String())
}

func TestCartService_Add_DifferentVariantIsSeparateLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{
		ProductID: 7,
		Price:     decimal.NewFromInt(45),
		Quantity:  decimal.NewFromInt(1),
		Size:      "M",
		Color:     "blue",
	})

	fx.productRepo.EXPECT().FindByID(ctx, int64(7)).Return(testProduct(), nil)
	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.cartStore.EXPECT().Save(ctx, testSessionID, sess).Return(nil)

	view, err := fx.service.Add(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  1,
		Size:      "L",
		Color:     "blue",
	})
	require.NoError(t, err)
	assert.Len(t, view.Lines, 2)
}

func TestCartService_Add_InsufficientStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, int64(7)).Return(testProduct(), nil)

	_, err := fx.service.Add(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  4,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInsufficientStock.Error())
}

func TestCartService_Add_ExactRemainingStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, int64(7)).Return(testProduct(), nil)
	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(nil, nil)
	fx.cartStore.EXPECT().Save(ctx, testSessionID, mock.AnythingOfType("*entity.CheckoutSession")).Return(nil)

	view, err := fx.service.Add(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "3", view.Lines[0].Quantity.String())
}

func TestCartService_Add_NonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.Add(context.Background(), &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  0,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInvalidQuantity.Error())
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Add(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 99,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrProductNotFound.Error())
}

func TestCartService_Update_ZeroQuantityRemovesLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{
		ProductID: 7,
		Quantity:  decimal.NewFromInt(2),
		Size:      "M",
	})

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.cartStore.EXPECT().Save(ctx, testSessionID, sess).Return(nil)

	view, err := fx.service.Update(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  0,
		Size:      "M",
	})
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartService_Update_MissingLineIsNoop(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(entity.NewCheckoutSession("token"), nil)

	view, err := fx.service.Update(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartService_Update_RevalidatesStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{
		ProductID: 7,
		Quantity:  decimal.NewFromInt(1),
	})

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.productRepo.EXPECT().FindByID(ctx, int64(7)).Return(testProduct(), nil)

	_, err := fx.service.Update(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 7,
		Quantity:  10,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInsufficientStock.Error())
}

func TestCartService_Remove_AbsentLineIsNoop(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	sess := entity.NewCheckoutSession("token")

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.cartStore.EXPECT().Save(ctx, testSessionID, sess).Return(nil)

	view, err := fx.service.Remove(ctx, &usecase.CartActionInput{
		SessionID: testSessionID,
		ProductID: 404,
	})
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartService_ApplyCoupon_NormalizesCode(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	coupon := &entity.Coupon{ID: 1, Code: "SAVE10", Discount: decimal.NewFromInt(10)}
	sess := entity.NewCheckoutSession("token")

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(coupon, nil)
	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.cartStore.EXPECT().Save(ctx, testSessionID, sess).Return(nil)

	output, err := fx.service.ApplyCoupon(ctx, testSessionID, "  save10 ")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", output.Code)
	assert.Equal(t, "10", output.Discount.String())
	assert.Equal(t, "10", sess.Discount.String())
}

func TestCartService_ApplyCoupon_ReplacesPriorDiscount(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	coupon := &entity.Coupon{ID: 2, Code: "SAVE20", Discount: decimal.NewFromInt(20)}
	sess := entity.NewCheckoutSession("token")
	sess.Discount = decimal.NewFromInt(10)

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE20").Return(coupon, nil)
	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.cartStore.EXPECT().Save(ctx, testSessionID, sess).Return(nil)

	_, err := fx.service.ApplyCoupon(ctx, testSessionID, "SAVE20")
	require.NoError(t, err)
	assert.Equal(t, "20", sess.Discount.String())
}

func TestCartService_ApplyCoupon_UnknownCodeLeavesSessionUntouched(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.couponRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, repository.ErrCouponNotFound)

	_, err := fx.service.ApplyCoupon(ctx, testSessionID, "nope")
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInvalidCoupon.Error())
}

func TestCartService_GetCart_EmptySession(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(nil, nil)

	view, err := fx.service.GetCart(ctx, testSessionID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "0", view.Totals.Total.String())
}
