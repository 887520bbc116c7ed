package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartServiceParams holds the dependencies of the cart service.
type CartServiceParams struct {
	fx.In

	Config      *config.Config
	CartStore   service.CartStore
	ProductRepo repository.ProductRepository
	CouponRepo  repository.CouponRepository
	Logger      *slog.Logger
}

type cartService struct {
	cartStore   service.CartStore
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	pricing     *pricingCalculator
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartStore:   params.CartStore,
		productRepo: params.ProductRepo,
		couponRepo:  params.CouponRepo,
		pricing:     newPricingCalculator(params.Config),
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the current cart with computed totals.
func (srv *cartService) GetCart(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	sess, err := srv.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return srv.view(sess), nil
}

// Add validates the product and stock, then merges the line into the cart.
func (srv *cartService) Add(ctx context.Context, input *usecase.CartActionInput) (*usecase.CartView, error) {
	quantity := decimal.NewFromFloat(input.Quantity)
	if !quantity.IsPositive() {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must be positive")
	}

	product, err := srv.findProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.HasStockFor(quantity) {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(product.Name)
	}

	sess, err := srv.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if line := sess.FindLine(input.ProductID, input.Size, input.Color); line != nil {
		line.Quantity = line.Quantity.Add(quantity)
	} else {
		sess.Lines = append(sess.Lines, &entity.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.SellingPrice,
			Image:     product.Image,
			Quantity:  quantity,
			Size:      input.Size,
			Color:     input.Color,
		})
	}

	if err := srv.saveSession(ctx, input.SessionID, sess); err != nil {
		return nil, err
	}

	return srv.view(sess), nil
}

// Update overwrites a line's quantity after re-validating stock. Quantity
// <= 0 removes the line; a missing line is a no-op, not an error.
func (srv *cartService) Update(ctx context.Context, input *usecase.CartActionInput) (*usecase.CartView, error) {
	quantity := decimal.NewFromFloat(input.Quantity)
	if !quantity.IsPositive() {
		return srv.Remove(ctx, input)
	}

	sess, err := srv.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	line := sess.FindLine(input.ProductID, input.Size, input.Color)
	if line == nil {
		return srv.view(sess), nil
	}

	product, err := srv.findProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.HasStockFor(quantity) {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(product.Name)
	}

	line.Quantity = quantity

	if err := srv.saveSession(ctx, input.SessionID, sess); err != nil {
		return nil, err
	}

	return srv.view(sess), nil
}

// Remove deletes all lines matching (product, size, color); no-op if absent.
func (srv *cartService) Remove(ctx context.Context, input *usecase.CartActionInput) (*usecase.CartView, error) {
	sess, err := srv.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.RemoveLine(input.ProductID, input.Size, input.Color)

	if err := srv.saveSession(ctx, input.SessionID, sess); err != nil {
		return nil, err
	}

	return srv.view(sess), nil
}

// ApplyCoupon resolves the code case-insensitively and stores its flat
// discount in the session. Only one coupon is active at a time; a failed
// lookup leaves a previously applied discount unchanged.
func (srv *cartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*usecase.ApplyCouponOutput, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, domainerrors.ErrInvalidCoupon.WithDetails("empty coupon code")
	}

	coupon, err := srv.couponRepo.FindByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrInvalidCoupon.WithDetails(normalized)
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	sess, err := srv.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Discount = coupon.Discount

	if err := srv.saveSession(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Coupon applied",
		slog.String("code", coupon.Code),
		slog.String("discount", coupon.Discount.String()),
	)

	return &usecase.ApplyCouponOutput{
		Code:     coupon.Code,
		Discount: coupon.Discount,
	}, nil
}

func (srv *cartService) findProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *cartService) loadSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	sess, err := srv.cartStore.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if sess == nil {
		sess = entity.NewCheckoutSession("")
	}

	return sess, nil
}

func (srv *cartService) saveSession(ctx context.Context, sessionID string, sess *entity.CheckoutSession) error {
	if err := srv.cartStore.Save(ctx, sessionID, sess); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

func (srv *cartService) view(sess *entity.CheckoutSession) *usecase.CartView {
	return &usecase.CartView{
		Lines:  sess.Lines,
		Totals: srv.pricing.Compute(sess.Lines, sess.Discount),
	}
}
