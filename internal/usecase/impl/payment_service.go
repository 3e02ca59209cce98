package impl

import (
	"context"
	"log/slog"
	"strings"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var errPaymentMismatch = errors.New("payment does not settle the transaction")

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	paymentRepo repository.PaymentTransactionRepository
	gateway     service.PaymentGateway
	references  service.ReferenceGenerator
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	currency    string
	redirectURL string
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager          repository.TransactionManager
	UserRepo           repository.UserRepository
	ProductRepo        repository.ProductRepository
	PaymentRepo        repository.PaymentTransactionRepository
	Gateway            service.PaymentGateway
	ReferenceGenerator service.ReferenceGenerator
	EventPublisher     service.EventPublisher
	QRCodeService      service.QRCodeService
	Config             *config.Config
	Logger             *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	srv := &paymentService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		references:  params.ReferenceGenerator,
		publisher:   params.EventPublisher,
		qrcode:      params.QRCodeService,
		currency:    "NGN",
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Payment != nil {
		if params.Config.Payment.Currency != "" {
			srv.currency = params.Config.Payment.Currency
		}
		srv.redirectURL = params.Config.Payment.RedirectURL
	}

	return srv
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initiate prices the lines from the catalog, checks live stock, asks the gateway
// for a hosted link and records the transaction as pending. Stock is not reserved.
func (srv *paymentService) Initiate(ctx context.Context, input *usecase.InitiatePaymentInput) (*usecase.InitiatePaymentOutput, error) {
	lines, err := mergeCheckoutLines(input.Lines)
	if err != nil {
		return nil, err
	}

	user, err := loadUser(ctx, srv.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	snapshot, items, err := priceLines(ctx, srv.productRepo, lines, true)
	if err != nil {
		return nil, err
	}
	total := entity.SumLines(snapshot)

	reference, err := srv.reference(ctx, input)
	if err != nil {
		return nil, err
	}

	link, err := srv.gateway.CreatePaymentLink(ctx, &service.PaymentRequest{
		Reference:   reference,
		Amount:      total,
		Currency:    srv.currency,
		RedirectURL: srv.redirectURL,
		Customer: service.PaymentCustomer{
			Email: user.Email,
			Phone: user.Phone,
			Name:  user.FullName,
		},
		Items: items,
	})
	if err != nil {
		srv.log(ctx).Warn("Payment link request failed", slog.String("reference", reference), slog.Any("error", err))

		if errors.Is(err, service.ErrPaymentLinkExpired) {
			return nil, domainerrors.ErrPaymentLinkExpired
		}

		return nil, errors.Wrap(domainerrors.ErrPaymentGateway, err.Error())
	}

	txn := &entity.Transaction{
		Reference:   reference,
		UserID:      user.ID,
		Amount:      total,
		Currency:    srv.currency,
		Status:      entity.TransactionPending,
		Lines:       snapshot,
		PaymentLink: link.Link,
	}

	stored, lookup, err := srv.paymentRepo.FindOrCreate(ctx, txn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record transaction")
	}
	if lookup == entity.LookupFound {
		stored.Amount = txn.Amount
		stored.Currency = txn.Currency
		stored.Lines = txn.Lines
		stored.PaymentLink = txn.PaymentLink

		updated, err := srv.paymentRepo.UpdatePending(ctx, stored)
		if err != nil {
			return nil, errors.Wrap(err, "failed to update transaction")
		}
		if !updated {
			return nil, domainerrors.ErrTransactionNotPending
		}
	}

	srv.log(ctx).Info("Payment initiated",
		slog.String("reference", reference),
		slog.String("lookup", lookup.String()),
		slog.String("amount", total.String()),
	)

	return &usecase.InitiatePaymentOutput{
		Transaction: stored,
		PaymentLink: link.Link,
		Gateway:     link.Raw,
	}, nil
}

// reference returns the reference to charge: a retried pending transaction of
// the same user, or a fresh one.
func (srv *paymentService) reference(ctx context.Context, input *usecase.InitiatePaymentInput) (string, error) {
	if input.Reference == "" {
		return srv.references.NewReference(), nil
	}

	existing, err := srv.paymentRepo.FindByReference(ctx, input.Reference)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return "", domainerrors.ErrTransactionNotFound
		}

		return "", errors.Wrap(err, "failed to find transaction")
	}
	if existing.UserID != input.UserID {
		return "", domainerrors.ErrForbidden
	}
	if existing.Status != entity.TransactionPending {
		return "", domainerrors.ErrTransactionNotPending
	}

	return existing.Reference, nil
}

// priceLines snapshots each line at the catalog price. With checkStock set,
// every line short on stock is reported in one error.
func priceLines(ctx context.Context, productRepo repository.ProductRepository, lines []usecase.CheckoutLine, checkStock bool) ([]entity.TransactionLine, []service.PaymentItem, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load products")
	}

	snapshot := make([]entity.TransactionLine, 0, len(lines))
	items := make([]service.PaymentItem, 0, len(lines))

	var missing, short []string
	for _, l := range lines {
		product, ok := products[l.ProductID]
		if !ok {
			missing = append(missing, l.ProductID.String())

			continue
		}
		if checkStock && !product.InStock(l.Quantity) {
			short = append(short, product.Name)

			continue
		}

		snapshot = append(snapshot, entity.TransactionLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  l.Quantity,
			Price:     product.NewPrice,
		})
		items = append(items, service.PaymentItem{
			ProductID:   product.ID.String(),
			Title:       product.Name,
			Description: product.Description,
			Logo:        product.PrimaryImage(),
		})
	}

	if len(missing) > 0 {
		return nil, nil, domainerrors.ErrProductNotFound.WithDetails(strings.Join(missing, ", "))
	}
	if len(short) > 0 {
		return nil, nil, domainerrors.ErrInsufficientStock.WithDetails(strings.Join(short, ", "))
	}

	return snapshot, items, nil
}

// mergeCheckoutLines rejects an empty checkout and folds repeated products into one line.
func mergeCheckoutLines(lines []usecase.CheckoutLine) ([]usecase.CheckoutLine, error) {
	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCheckout
	}

	merged := make([]usecase.CheckoutLine, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))

	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidQuantity
		}
		if i, ok := index[l.ProductID]; ok {
			merged[i].Quantity += l.Quantity

			continue
		}
		index[l.ProductID] = len(merged)
		merged = append(merged, l)
	}

	return merged, nil
}

// purchase is the outcome of the commit-purchase transaction.
type purchase struct {
	alreadyVerified bool
	txn             *entity.Transaction
	order           *entity.Order
	user            *entity.User
}

// Verify confirms the payment with the gateway. The first request to move the
// transaction from pending to completed commits the purchase; every later one
// reports it as already verified.
func (srv *paymentService) Verify(ctx context.Context, input *usecase.VerifyPaymentInput) (*usecase.VerifyPaymentOutput, error) {
	if strings.TrimSpace(input.TransactionID) == "" {
		return nil, domainerrors.ErrTransactionIDRequired
	}

	verification, err := srv.gateway.VerifyTransaction(ctx, input.TransactionID)
	if err != nil {
		srv.log(ctx).Warn("Gateway verification call failed", slog.String("transactionID", input.TransactionID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentGateway, err.Error())
	}

	// The gateway's tx_ref names the transaction this charge paid for.
	reference := verification.Reference
	if reference == "" {
		return nil, domainerrors.ErrVerificationFailed.WithDetails("the gateway reported no tx_ref")
	}
	if input.Reference != "" && input.Reference != reference {
		srv.log(ctx).Warn("Verification reference does not match the charge",
			slog.String("reference", input.Reference),
			slog.String("chargeReference", reference),
			slog.String("transactionID", input.TransactionID),
		)

		return nil, domainerrors.ErrVerificationFailed.WithDetails("the payment belongs to another transaction")
	}

	if !verification.Successful {
		srv.markFailed(ctx, reference, verification.Status)

		return nil, domainerrors.ErrVerificationFailed
	}

	var result purchase
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.commitPurchase(ctx, repoFactory, input, reference, verification, &result)
	})
	if err != nil {
		if errors.Is(err, errPaymentMismatch) {
			srv.markFailed(ctx, reference, verification.Status)

			return nil, domainerrors.ErrVerificationFailed.WithDetails(err.Error())
		}

		srv.log(ctx).Error("Purchase commit failed", slog.String("reference", reference), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute verify payment transaction")
	}

	if result.alreadyVerified {
		srv.log(ctx).Info("Transaction already verified", slog.String("reference", reference))

		return &usecase.VerifyPaymentOutput{AlreadyVerified: true, Gateway: verification.Data}, nil
	}

	srv.publishPurchase(ctx, &result)

	srv.log(ctx).Info("Transaction verified",
		slog.String("reference", reference),
		slog.Any("orderID", result.order.ID),
	)

	return &usecase.VerifyPaymentOutput{Order: result.order, Gateway: verification.Data}, nil
}

func (srv *paymentService) commitPurchase(
	ctx context.Context,
	repos repository.RepositoryFactory,
	input *usecase.VerifyPaymentInput,
	reference string,
	verification *service.PaymentVerification,
	result *purchase,
) error {
	paymentRepo := repos.PaymentRepo()

	txn, claimed, err := srv.claimTransaction(ctx, repos, input, reference)
	if err != nil {
		return err
	}
	if !claimed {
		result.alreadyVerified = true

		return nil
	}

	if err := checkSettlement(verification, txn); err != nil {
		return err
	}

	if verification.TransactionID != "" {
		if err := paymentRepo.SetGatewayTransactionID(ctx, reference, verification.TransactionID); err != nil {
			return errors.Wrap(err, "failed to store gateway transaction id")
		}
	}

	// Stock was checked at Initiate. A paid order is never rolled back for
	// stock sold out since; the shortfall is recorded as a backorder.
	var backordered []string
	productIDs := make([]uuid.UUID, 0, len(txn.Lines))
	productRepo := repos.ProductRepo()
	for _, line := range txn.Lines {
		productIDs = append(productIDs, line.ProductID)

		shortfall, err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity)
		if errors.Is(err, repository.ErrProductNotFound) {
			shortfall, err = line.Quantity, nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to update stock")
		}
		if shortfall > 0 {
			backordered = append(backordered, line.Name)
		}
	}

	userRepo := repos.UserRepo()
	if err := userRepo.AppendPurchasedProducts(ctx, txn.UserID, productIDs); err != nil {
		return errors.Wrap(err, "failed to record purchased products")
	}

	order := entity.NewOrderFromTransaction(txn)
	if len(backordered) > 0 {
		order.Backordered = true
		srv.log(ctx).Warn("Order placed on backorder",
			slog.String("reference", reference),
			slog.String("products", strings.Join(backordered, ", ")),
		)
	}
	if err := repos.OrderRepo().Create(ctx, order); err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	if err := repos.CartRepo().DeleteByUserID(ctx, txn.UserID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return errors.Wrap(err, "failed to delete cart")
	}

	user, err := userRepo.FindByID(ctx, txn.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load purchaser")
	}

	result.txn = txn
	result.order = order
	result.user = user

	return nil
}

// checkSettlement rejects a charge in another currency or for less than the
// transaction amount. A zero amount is a shortfall.
func checkSettlement(verification *service.PaymentVerification, txn *entity.Transaction) error {
	if !strings.EqualFold(verification.Currency, txn.Currency) {
		return errors.Wrapf(errPaymentMismatch, "paid in %q, expected %q", verification.Currency, txn.Currency)
	}
	if verification.Amount.LessThan(txn.Amount) {
		return errors.Wrapf(errPaymentMismatch, "paid %s, expected %s", verification.Amount, txn.Amount)
	}

	return nil
}

// claimTransaction performs the pending to completed swap. It reports claimed
// only for the caller that won the swap. A reference with no stored transaction
// is recorded from the callback lines, already completed.
func (srv *paymentService) claimTransaction(
	ctx context.Context,
	repos repository.RepositoryFactory,
	input *usecase.VerifyPaymentInput,
	reference string,
) (*entity.Transaction, bool, error) {
	paymentRepo := repos.PaymentRepo()

	txn, err := paymentRepo.FindByReference(ctx, reference)
	switch {
	case err == nil:
		if txn.UserID != input.UserID {
			return nil, false, domainerrors.ErrForbidden
		}

		switch txn.Status {
		case entity.TransactionPending:
		case entity.TransactionFailed:
			return nil, false, domainerrors.ErrTransactionNotPending
		default:
			return txn, false, nil
		}

		swapped, err := paymentRepo.CompareAndSwapStatus(ctx, reference, entity.TransactionPending, entity.TransactionCompleted)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to claim transaction")
		}
		if swapped {
			txn.Status = entity.TransactionCompleted
		}

		return txn, swapped, nil

	case errors.Is(err, repository.ErrTransactionNotFound):
		return srv.recordCompleted(ctx, repos, input, reference)

	default:
		return nil, false, errors.Wrap(err, "failed to find transaction")
	}
}

func (srv *paymentService) recordCompleted(
	ctx context.Context,
	repos repository.RepositoryFactory,
	input *usecase.VerifyPaymentInput,
	reference string,
) (*entity.Transaction, bool, error) {
	if len(input.Lines) == 0 {
		return nil, false, domainerrors.ErrTransactionNotFound
	}

	lines, err := mergeCheckoutLines(input.Lines)
	if err != nil {
		return nil, false, err
	}

	snapshot, _, err := priceLines(ctx, repos.ProductRepo(), lines, false)
	if err != nil {
		return nil, false, err
	}

	txn := &entity.Transaction{
		Reference: reference,
		UserID:    input.UserID,
		Amount:    entity.SumLines(snapshot),
		Currency:  srv.currency,
		Status:    entity.TransactionCompleted,
		Lines:     snapshot,
	}

	stored, lookup, err := repos.PaymentRepo().FindOrCreate(ctx, txn)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to record transaction")
	}

	srv.log(ctx).Warn("Verified a reference with no stored transaction",
		slog.String("reference", reference),
		slog.String("lookup", lookup.String()),
	)

	// Another request inserted it first and owns the purchase.
	return stored, lookup == entity.LookupCreated, nil
}

// markFailed moves a pending transaction to failed. A missing transaction is tolerated.
func (srv *paymentService) markFailed(ctx context.Context, reference, gatewayStatus string) {
	swapped, err := srv.paymentRepo.CompareAndSwapStatus(ctx, reference, entity.TransactionPending, entity.TransactionFailed)
	if err != nil {
		srv.log(ctx).Error("Failed to mark transaction failed", slog.String("reference", reference), slog.Any("error", err))

		return
	}

	srv.log(ctx).Warn("Payment verification failed",
		slog.String("reference", reference),
		slog.String("gatewayStatus", gatewayStatus),
		slog.Bool("marked", swapped),
	)
}

// publishPurchase emits the purchase event. The purchase is already committed,
// so a publishing failure is only logged.
func (srv *paymentService) publishPurchase(ctx context.Context, p *purchase) {
	lines := make([]service.PurchasedLine, 0, len(p.txn.Lines))
	for _, l := range p.txn.Lines {
		lines = append(lines, service.PurchasedLine{
			ProductID: l.ProductID.String(),
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.Price.StringFixed(2),
		})
	}

	currency := p.txn.Currency
	if currency == "" {
		currency = srv.currency
	}

	event := &service.PurchaseCompletedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:        p.order.ID.String(),
		TransactionRef: p.txn.Reference,
		UserID:         p.user.ID.String(),
		Email:          p.user.Email,
		CustomerName:   p.user.FullName,
		Total:          p.order.Total.StringFixed(2),
		Currency:       currency,
		Lines:          lines,
	}

	if err := srv.publisher.PublishPurchaseCompleted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish purchase event",
			slog.String("reference", p.txn.Reference),
			slog.Any("error", err),
		)
	}
}

// CheckoutQRCode renders the payment link of a pending transaction owned by userID.
func (srv *paymentService) CheckoutQRCode(ctx context.Context, userID uuid.UUID, reference string) ([]byte, error) {
	txn, err := srv.paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, domainerrors.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}
	if txn.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}
	if txn.Status != entity.TransactionPending {
		return nil, domainerrors.ErrTransactionNotPending
	}
	if txn.PaymentLink == "" {
		return nil, domainerrors.ErrTransactionNotFound.WithDetails("transaction has no payment link")
	}

	png, err := srv.qrcode.GeneratePaymentQR(txn.PaymentLink)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render checkout qr code")
	}

	return png, nil
}
