package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutServiceParams holds the dependencies of the checkout service.
type CheckoutServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	CartStore service.CartStore
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type checkoutService struct {
	txManager repository.TransactionManager
	cartStore service.CartStore
	publisher service.EventPublisher
	pricing   *pricingCalculator
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		cartStore: params.CartStore,
		publisher: params.Publisher,
		pricing:   newPricingCalculator(params.Config),
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout runs the full order commit: validate the submission, recompute
// totals from the session cart, then persist customer, sale, sale lines,
// stock decrements and payment inside one database transaction. On success
// the session cart and discount are cleared and an order event is published.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	sess, err := srv.cartStore.Load(ctx, input.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if sess == nil || len(sess.Lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	// Totals come from the session-held cart and discount only. Anything
	// the client asserts about subtotal or total is ignored.
	totals := srv.pricing.Compute(sess.Lines, sess.Discount)

	sale := &entity.Sale{
		TotalAmount: totals.Total,
		CreatedAt:   time.Now().UTC(),
	}
	var customer *entity.Customer

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err = srv.resolveCustomer(ctx, repoFactory.CustomerRepo(), &input.Billing)
		if err != nil {
			return err
		}

		sale.CustomerID = customer.ID
		if err := repoFactory.SaleRepo().CreateSale(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to create sale")
		}

		if err := srv.persistLines(ctx, repoFactory, sale, sess.Lines); err != nil {
			return err
		}

		payment := &entity.Payment{
			SaleID:     sale.ID,
			CustomerID: customer.ID,
			Method:     input.PaymentMethod,
			Amount:     totals.Total,
		}
		if err := repoFactory.PaymentRepo().CreatePayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout transaction failed",
			slog.String("email", input.Billing.Email),
			slog.Any("error", err),
		)

		return nil, err
	}

	// The order is durable; session cleanup and event publishing are
	// best-effort from here on.
	sess.Clear()
	if err := srv.cartStore.Save(ctx, input.SessionID, sess); err != nil {
		srv.log(ctx).Error("Failed to clear session after checkout",
			slog.Int64("saleID", sale.ID),
			slog.Any("error", err),
		)
	}

	srv.publishOrderPlaced(ctx, sale, customer)

	srv.log(ctx).Info("Order placed",
		slog.Int64("saleID", sale.ID),
		slog.Int64("customerID", customer.ID),
		slog.String("total", totals.Total.String()),
	)

	return &usecase.CheckoutOutput{
		SaleID: sale.ID,
		Total:  totals.Total,
	}, nil
}

// resolveCustomer looks up the customer by billing email and lazily creates
// one on first checkout. A concurrent duplicate insert surfaces as a
// conflict from the unique constraint on email.
func (srv *checkoutService) resolveCustomer(ctx context.Context, customerRepo repository.CustomerRepository, billing *usecase.ContactInfo) (*entity.Customer, error) {
	customer, err := customerRepo.FindByEmail(ctx, billing.Email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	customer = &entity.Customer{
		FullName: strings.TrimSpace(billing.FirstName + " " + billing.LastName),
		Phone:    billing.Mobile,
		Email:    billing.Email,
	}
	if err := customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// persistLines re-validates every cart line against the live catalog and
// writes the sale lines and stock decrements. Products are fetched with a
// row lock so two concurrent checkouts cannot both pass validation against
// the same stale stock value.
func (srv *checkoutService) persistLines(ctx context.Context, repoFactory repository.RepositoryFactory, sale *entity.Sale, lines []*entity.CartLine) error {
	productRepo := repoFactory.ProductRepo()
	saleRepo := repoFactory.SaleRepo()

	for _, line := range lines {
		product, err := productRepo.FindByIDForUpdate(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WithDetails(line.Name)
			}

			return errors.Wrap(err, "failed to fetch product for checkout")
		}

		if !product.HasStockFor(line.Quantity) {
			return domainerrors.ErrInsufficientStock.WithDetails(product.Name)
		}

		saleLine := &entity.SaleLine{
			SaleID:         sale.ID,
			ProductID:      product.ID,
			Quantity:       line.Quantity,
			PurchaseAmount: line.Price.Mul(line.Quantity),
		}
		if err := saleRepo.CreateSaleLine(ctx, saleLine); err != nil {
			return errors.Wrap(err, "failed to create sale line")
		}
		sale.Lines = append(sale.Lines, saleLine)

		if err := productRepo.DecrementStock(ctx, product.ID, line.Quantity); err != nil {
			return errors.Wrap(err, "failed to decrement stock")
		}
	}

	return nil
}

func (srv *checkoutService) publishOrderPlaced(ctx context.Context, sale *entity.Sale, customer *entity.Customer) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderPlacedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		SaleID:      sale.ID,
		CustomerID:  customer.ID,
		Email:       customer.Email,
		TotalAmount: sale.TotalAmount.String(),
		PlacedAt:    sale.CreatedAt,
	}
	for _, line := range sale.Lines {
		event.Lines = append(event.Lines, service.OrderPlacedLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity.String(),
			Amount:    line.PurchaseAmount.String(),
		})
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		// Publishing is best-effort; the order already committed.
		srv.log(ctx).Error("Failed to publish order event",
			slog.Int64("saleID", sale.ID),
			slog.Any("error", err),
		)
	}
}

// validateSubmission enforces the presence checks of the checkout flow.
// Anti-forgery is handled by the delivery layer before this runs.
func validateSubmission(input *usecase.CheckoutInput) error {
	billing := &input.Billing
	if anyBlank(billing.FirstName, billing.LastName, billing.Email, billing.Mobile,
		billing.Address1, billing.Country, billing.City, billing.State, billing.Zip) {
		return domainerrors.ErrMissingBillingFields
	}

	if shipping := input.Shipping; shipping != nil {
		if anyBlank(shipping.FirstName, shipping.LastName, shipping.Address1,
			shipping.Country, shipping.City, shipping.State, shipping.Zip) {
			return domainerrors.ErrMissingShippingFields
		}
	}

	if strings.TrimSpace(input.PaymentMethod) == "" {
		return domainerrors.ErrMissingPaymentMethod
	}

	return nil
}

func anyBlank(fields ...string) bool {
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return true
		}
	}

	return false
}
