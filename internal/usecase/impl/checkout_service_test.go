package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service      usecase.CheckoutUsecase
	txManager    *mockRepo.MockTransactionManager
	cartStore    *mockService.MockCartStore
	publisher    *mockService.MockEventPublisher
	factory      *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	customerRepo *mockRepo.MockCustomerRepository
	saleRepo     *mockRepo.MockSaleRepository
	paymentRepo  *mockRepo.MockPaymentRepository
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartStore := mockService.NewMockCartStore(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewCheckoutService(CheckoutServiceParams{
		Config:    &config.Config{},
		TxManager: txManager,
		CartStore: cartStore,
		Publisher: publisher,
		Logger:    slog.Default(),
	})

	return checkoutServiceFixtures{
		service:      service,
		txManager:    txManager,
		cartStore:    cartStore,
		publisher:    publisher,
		factory:      mockRepo.NewMockRepositoryFactory(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		saleRepo:     mockRepo.NewMockSaleRepository(t),
		paymentRepo:  mockRepo.NewMockPaymentRepository(t),
	}
}

// expectTransaction routes txManager.Execute through the mock factory so
// the transactional body runs with the test's repositories.
func (fx *checkoutServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func validCheckoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		SessionID: testSessionID,
		Billing: usecase.ContactInfo{
			FirstName: "Mei",
			LastName:  "Lin",
			Email:     "mei@example.com",
			Mobile:    "0912345678",
			Address1:  "1 Main St",
			Country:   "TW",
			City:      "Taipei",
			State:     "TP",
			Zip:       "100",
		},
		PaymentMethod: "credit_card",
	}
}

func cartSession() *entity.CheckoutSession {
	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines,
		&entity.CartLine{
			ProductID: 7,
			Name:      "Denim Jacket",
			Price:     decimal.NewFromInt(45),
			Quantity:  decimal.NewFromInt(2),
		},
		&entity.CartLine{
			ProductID: 8,
			Name:      "Wool Scarf",
			Price:     decimal.NewFromInt(15),
			Quantity:  decimal.NewFromInt(1),
		},
	)

	return sess
}

func stocked(id int64, name string, stock int64) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          name,
		SellingPrice:  decimal.NewFromInt(45),
		StockQuantity: decimal.NewFromInt(stock),
	}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sess := cartSession()

	existing := &entity.Customer{ID: 3, FullName: "Mei Lin", Email: "mei@example.com"}

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.expectTransaction(ctx)

	fx.factory.EXPECT().CustomerRepo().Return(fx.customerRepo)
	fx.factory.EXPECT().SaleRepo().Return(fx.saleRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().PaymentRepo().Return(fx.paymentRepo)

	fx.customerRepo.EXPECT().FindByEmail(ctx, "mei@example.com").Return(existing, nil)

	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		RunAndReturn(func(_ context.Context, sale *entity.Sale) error {
			assert.Equal(t, int64(3), sale.CustomerID)
			// 90 + 15 subtotal, 10 shipping
			assert.Equal(t, "115", sale.TotalAmount.String())
			sale.ID = 21
			return nil
		})

	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(stocked(7, "Denim Jacket", 5), nil)
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, int64(8)).Return(stocked(8, "Wool Scarf", 5), nil)
	fx.saleRepo.EXPECT().CreateSaleLine(ctx, mock.AnythingOfType("*entity.SaleLine")).Return(nil).Times(2)
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(7), decimal.NewFromInt(2)).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(8), decimal.NewFromInt(1)).Return(nil)

	fx.paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		RunAndReturn(func(_ context.Context, payment *entity.Payment) error {
			assert.Equal(t, int64(21), payment.SaleID)
			assert.Equal(t, "credit_card", payment.Method)
			assert.Equal(t, "115", payment.Amount.String())
			return nil
		})

	fx.cartStore.EXPECT().
		Save(ctx, testSessionID, mock.AnythingOfType("*entity.CheckoutSession")).
		RunAndReturn(func(_ context.Context, _ string, saved *entity.CheckoutSession) error {
			assert.Empty(t, saved.Lines)
			assert.Equal(t, "0", saved.Discount.String())
			assert.Equal(t, "token", saved.CSRFToken)
			return nil
		})

	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		RunAndReturn(func(_ context.Context, event *service.OrderPlacedEvent) error {
			assert.Equal(t, int64(21), event.SaleID)
			assert.Len(t, event.Lines, 2)
			return nil
		})

	output, err := fx.service.Checkout(ctx, validCheckoutInput())
	require.NoError(t, err)
	assert.Equal(t, int64(21), output.SaleID)
	assert.Equal(t, "115", output.Total.String())
}

func TestCheckoutService_Checkout_CreatesCustomerOnFirstOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{
		ProductID: 7,
		Name:      "Denim Jacket",
		Price:     decimal.NewFromInt(45),
		Quantity:  decimal.NewFromInt(1),
	})

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.expectTransaction(ctx)

	fx.factory.EXPECT().CustomerRepo().Return(fx.customerRepo)
	fx.factory.EXPECT().SaleRepo().Return(fx.saleRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().PaymentRepo().Return(fx.paymentRepo)

	fx.customerRepo.EXPECT().FindByEmail(ctx, "mei@example.com").Return(nil, repository.ErrCustomerNotFound)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		RunAndReturn(func(_ context.Context, customer *entity.Customer) error {
			assert.Equal(t, "Mei Lin", customer.FullName)
			assert.Equal(t, "0912345678", customer.Phone)
			customer.ID = 11
			return nil
		})

	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		RunAndReturn(func(_ context.Context, sale *entity.Sale) error {
			assert.Equal(t, int64(11), sale.CustomerID)
			sale.ID = 22
			return nil
		})
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(stocked(7, "Denim Jacket", 5), nil)
	fx.saleRepo.EXPECT().CreateSaleLine(ctx, mock.AnythingOfType("*entity.SaleLine")).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(7), decimal.NewFromInt(1)).Return(nil)
	fx.paymentRepo.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	fx.cartStore.EXPECT().Save(ctx, testSessionID, mock.AnythingOfType("*entity.CheckoutSession")).Return(nil)
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil)

	output, err := fx.service.Checkout(ctx, validCheckoutInput())
	require.NoError(t, err)
	assert.Equal(t, int64(22), output.SaleID)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(entity.NewCheckoutSession("token"), nil)

	_, err := fx.service.Checkout(ctx, validCheckoutInput())
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrEmptyCart.Error())
}

func TestCheckoutService_Checkout_MissingBillingField(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(cartSession(), nil)

	input := validCheckoutInput()
	input.Billing.Email = "  "

	_, err := fx.service.Checkout(ctx, input)
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrMissingBillingFields.Error())
}

func TestCheckoutService_Checkout_MissingShippingField(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(cartSession(), nil)

	input := validCheckoutInput()
	input.Shipping = &usecase.ContactInfo{FirstName: "Mei"}

	_, err := fx.service.Checkout(ctx, input)
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrMissingShippingFields.Error())
}

func TestCheckoutService_Checkout_MissingPaymentMethod(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(cartSession(), nil)

	input := validCheckoutInput()
	input.PaymentMethod = ""

	_, err := fx.service.Checkout(ctx, input)
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrMissingPaymentMethod.Error())
}

func TestCheckoutService_Checkout_StockFailureAbortsTransaction(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sess := cartSession()

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.expectTransaction(ctx)

	fx.factory.EXPECT().CustomerRepo().Return(fx.customerRepo)
	fx.factory.EXPECT().SaleRepo().Return(fx.saleRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	existing := &entity.Customer{ID: 3, Email: "mei@example.com"}
	fx.customerRepo.EXPECT().FindByEmail(ctx, "mei@example.com").Return(existing, nil)
	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		RunAndReturn(func(_ context.Context, sale *entity.Sale) error {
			sale.ID = 23
			return nil
		})

	// First line passes, second line fails the locked re-check. The
	// transaction error propagates; no payment, no session clear.
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(stocked(7, "Denim Jacket", 5), nil)
	fx.saleRepo.EXPECT().CreateSaleLine(ctx, mock.AnythingOfType("*entity.SaleLine")).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(7), decimal.NewFromInt(2)).Return(nil)
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, int64(8)).Return(stocked(8, "Wool Scarf", 0), nil)

	_, err := fx.service.Checkout(ctx, validCheckoutInput())
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInsufficientStock.Error())
	assert.Len(t, sess.Lines, 2)
}

func TestCheckoutService_Checkout_ExactRemainingStockPassesLockedCheck(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{
		ProductID: 7,
		Name:      "Denim Jacket",
		Price:     decimal.NewFromInt(45),
		Quantity:  decimal.NewFromInt(5),
	})

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.expectTransaction(ctx)

	fx.factory.EXPECT().CustomerRepo().Return(fx.customerRepo)
	fx.factory.EXPECT().SaleRepo().Return(fx.saleRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().PaymentRepo().Return(fx.paymentRepo)

	existing := &entity.Customer{ID: 3, Email: "mei@example.com"}
	fx.customerRepo.EXPECT().FindByEmail(ctx, "mei@example.com").Return(existing, nil)
	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		RunAndReturn(func(_ context.Context, sale *entity.Sale) error {
			sale.ID = 25
			return nil
		})

	// Stock 5, quantity 5: the locked re-check drains the product to zero.
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(stocked(7, "Denim Jacket", 5), nil)
	fx.saleRepo.EXPECT().CreateSaleLine(ctx, mock.AnythingOfType("*entity.SaleLine")).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(7), decimal.NewFromInt(5)).Return(nil)
	fx.paymentRepo.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	fx.cartStore.EXPECT().Save(ctx, testSessionID, mock.AnythingOfType("*entity.CheckoutSession")).Return(nil)
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil)

	output, err := fx.service.Checkout(ctx, validCheckoutInput())
	require.NoError(t, err)
	assert.Equal(t, int64(25), output.SaleID)
}

func TestCheckoutService_Checkout_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	sess := entity.NewCheckoutSession("token")
	sess.Lines = append(sess.Lines, &entity.CartLine{
		ProductID: 7,
		Name:      "Denim Jacket",
		Price:     decimal.NewFromInt(45),
		Quantity:  decimal.NewFromInt(1),
	})

	fx.cartStore.EXPECT().Load(ctx, testSessionID).Return(sess, nil)
	fx.expectTransaction(ctx)

	fx.factory.EXPECT().CustomerRepo().Return(fx.customerRepo)
	fx.factory.EXPECT().SaleRepo().Return(fx.saleRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().PaymentRepo().Return(fx.paymentRepo)

	existing := &entity.Customer{ID: 3, Email: "mei@example.com"}
	fx.customerRepo.EXPECT().FindByEmail(ctx, "mei@example.com").Return(existing, nil)
	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		RunAndReturn(func(_ context.Context, sale *entity.Sale) error {
			sale.ID = 24
			return nil
		})
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(stocked(7, "Denim Jacket", 5), nil)
	fx.saleRepo.EXPECT().CreateSaleLine(ctx, mock.AnythingOfType("*entity.SaleLine")).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(7), decimal.NewFromInt(1)).Return(nil)
	fx.paymentRepo.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	fx.cartStore.EXPECT().Save(ctx, testSessionID, mock.AnythingOfType("*entity.CheckoutSession")).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.Checkout(ctx, validCheckoutInput())
	require.NoError(t, err)
	assert.Equal(t, int64(24), output.SaleID)
}
