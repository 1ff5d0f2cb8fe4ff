package integration

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/bookstore/internal/service/checkout"
	grpcsvc "github.com/vladislavdragonenkov/bookstore/internal/service/grpc"
	"github.com/vladislavdragonenkov/bookstore/internal/service/offers"
	"github.com/vladislavdragonenkov/bookstore/internal/storage/memory"
	bookstorev1 "github.com/vladislavdragonenkov/bookstore/proto/bookstore/v1"
)

// PurchaseLifecycleTestSuite тестирует полный путь покупателя: от регистрации
// до доставленного заказа, вместе с событиями outbox и историей заказа.
type PurchaseLifecycleTestSuite struct {
	suite.Suite
	service *grpcsvc.BookstoreService
	books   *memory.BookRepository
	outbox  *memory.OutboxRepository
}

func (suite *PurchaseLifecycleTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	suite.books = memory.NewBookRepository()
	suite.outbox = memory.NewOutboxRepository()

	customers := memory.NewCustomerRepository()
	addresses := memory.NewAddressRepository()
	orders := memory.NewOrderRepository()
	carts := memory.NewCartRepository()
	offersRepo := memory.NewOfferRepository()
	reference := memory.NewReferenceDataRepository()
	timeline := memory.NewTimelineRepository()

	checkoutSvc := checkout.NewServiceWithoutMetrics(checkout.Deps{
		Customers: customers,
		Addresses: addresses,
		Books:     suite.books,
		Orders:    orders,
		Carts:     carts,
		Placer:    memory.NewOrderPlacer(suite.books, orders),
		Outbox:    suite.outbox,
		Timeline:  timeline,
		Logger:    logger.WithField("layer", "checkout"),
	})
	offersSvc := offers.NewServiceWithoutMetrics(offersRepo, suite.books, customers, suite.outbox, logger.WithField("layer", "offers"))

	suite.service = grpcsvc.NewBookstoreService(grpcsvc.Deps{
		Checkout:  checkoutSvc,
		Offers:    offersSvc,
		Orders:    orders,
		Books:     suite.books,
		Customers: customers,
		Addresses: addresses,
		Reference: reference,
		Carts:     carts,
		Timeline:  timeline,
		IdemRepo:  memory.NewIdempotencyRepository(),
		Logger:    logger,
	})
}

// withKey добавляет ключ идемпотентности во входящие метаданные, как это
// делает gRPC-клиент через заголовок.
func withKey(ctx context.Context, key string) context.Context {
	return metadata.NewIncomingContext(ctx, metadata.Pairs("idempotency-key", key))
}

func (suite *PurchaseLifecycleTestSuite) registerReader(sub string) (int64, int64) {
	ctx := context.Background()

	customerResp, err := suite.service.CreateCustomer(ctx, &bookstorev1.CreateCustomerRequest{
		Sub:       sub,
		Username:  "reader",
		FirstName: "Анна",
		LastName:  "Смирнова",
		Email:     "anna@example.com",
	})
	require.NoError(suite.T(), err)

	addressResp, err := suite.service.CreateAddress(ctx, &bookstorev1.CreateAddressRequest{
		CustomerId:   customerResp.Customer.Id,
		AddressLine1: "Литейный проспект 15",
		City:         "Санкт-Петербург",
		Country:      "RU",
		ZipCode:      "191028",
	})
	require.NoError(suite.T(), err)

	return customerResp.Customer.Id, addressResp.Address.Id
}

func (suite *PurchaseLifecycleTestSuite) outboxEventTypes() []string {
	types := make([]string, 0)
	for _, msg := range suite.outbox.AllPending() {
		types = append(types, msg.EventType)
	}
	return types
}

func (suite *PurchaseLifecycleTestSuite) TestFullPurchaseLifecycle() {
	ctx := context.Background()
	customerID, addressID := suite.registerReader("auth0|anna")

	// 1. Справочник и книга в каталоге.
	genre, err := suite.service.CreateReferenceData(ctx, &bookstorev1.CreateReferenceDataRequest{
		DataType: bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_GENRE,
		Text:     "Русская классика",
	})
	require.NoError(suite.T(), err)

	bookResp, err := suite.service.CreateBook(ctx, &bookstorev1.CreateBookRequest{
		Name:       "Анна Каренина",
		Author:     "Лев Толстой",
		Isbn:       "978-5-699-14342-9",
		GenreId:    genre.Item.Id,
		PriceMinor: 1500,
		Quantity:   5,
	})
	require.NoError(suite.T(), err)
	bookID := bookResp.Book.Id

	// 2. Корзина: две позиции, одна отложена в избранное.
	cartResp, err := suite.service.AddToCart(ctx, &bookstorev1.AddToCartRequest{
		BookId:    bookID,
		Quantity:  2,
		WantToBuy: true,
	})
	require.NoError(suite.T(), err)
	correlationID := cartResp.Cart.CorrelationId

	_, err = suite.service.AddToCart(ctx, &bookstorev1.AddToCartRequest{
		CorrelationId: correlationID,
		BookId:        bookID,
		Quantity:      1,
		WantToBuy:     false,
	})
	require.NoError(suite.T(), err)

	// 3. Заказ из корзины.
	orderResp, err := suite.service.CreateOrderFromCart(withKey(ctx, "lifecycle-cart"), &bookstorev1.CreateOrderFromCartRequest{
		CorrelationId: correlationID,
		CustomerId:    customerID,
		AddressId:     addressID,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), bookstorev1.OrderStatus_ORDER_STATUS_PENDING, orderResp.Order.Status)
	// Политика per_item: строка вносит цену книги один раз, без умножения
	// на количество.
	require.Equal(suite.T(), int64(1500), orderResp.Order.SubTotalMinor)
	orderID := orderResp.Order.Id

	stored, err := suite.books.Get(bookID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int32(3), stored.Quantity)

	// 4. Жизненный цикл доставки.
	shipped, err := suite.service.UpdateOrderStatus(ctx, &bookstorev1.UpdateOrderStatusRequest{
		OrderId: orderID,
		Status:  bookstorev1.OrderStatus_ORDER_STATUS_SHIPPED,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), bookstorev1.OrderStatus_ORDER_STATUS_SHIPPED, shipped.Order.Status)

	delivered, err := suite.service.UpdateOrderStatus(ctx, &bookstorev1.UpdateOrderStatusRequest{
		OrderId: orderID,
		Status:  bookstorev1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), bookstorev1.OrderStatus_ORDER_STATUS_DELIVERED, delivered.Order.Status)

	// 5. История заказа ведётся от размещения до доставки.
	getResp, err := suite.service.GetOrder(ctx, &bookstorev1.GetOrderRequest{OrderId: orderID})
	require.NoError(suite.T(), err)
	require.GreaterOrEqual(suite.T(), len(getResp.Timeline), 3)
	require.Equal(suite.T(), "order.placed", getResp.Timeline[0].Type)

	// 6. Доменные события лежат в outbox и ждут паблишера.
	types := suite.outboxEventTypes()
	require.Contains(suite.T(), types, "order.placed")
	require.Contains(suite.T(), types, "order.shipped")
	require.Contains(suite.T(), types, "order.delivered")

	// 7. Отложенная позиция осталась в корзине.
	cart, err := suite.service.GetCart(ctx, &bookstorev1.GetCartRequest{CorrelationId: correlationID})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), cart.Cart.Items, 1)
	require.False(suite.T(), cart.Cart.Items[0].WantToBuy)
}

func (suite *PurchaseLifecycleTestSuite) TestOfferToCatalogToOrder() {
	ctx := context.Background()
	customerID, addressID := suite.registerReader("auth0|seller")

	// 1. Покупатель предлагает книгу магазину.
	submitted, err := suite.service.SubmitOffer(withKey(ctx, "lifecycle-offer"), &bookstorev1.SubmitOfferRequest{
		CustomerId: customerID,
		BookName:   "Мастер и Маргарита",
		Author:     "Михаил Булгаков",
		Isbn:       "978-5-17-087885-0",
		PriceMinor: 900,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), bookstorev1.OfferStatus_OFFER_STATUS_PENDING_APPROVAL, submitted.Offer.Status)

	// 2. Модератор одобряет, книга попадает в каталог.
	approved, err := suite.service.ApproveOffer(ctx, &bookstorev1.ApproveOfferRequest{
		OfferId: submitted.Offer.Id,
		Comment: "редкое издание, берём",
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), bookstorev1.OfferStatus_OFFER_STATUS_APPROVED, approved.Offer.Status)

	books, err := suite.books.List(true, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), books, 1)

	// 3. Одобренную книгу можно сразу заказать.
	orderResp, err := suite.service.CreateOrder(withKey(ctx, "lifecycle-order"), &bookstorev1.CreateOrderRequest{
		CustomerId: customerID,
		AddressId:  addressID,
		Lines: []*bookstorev1.OrderLine{
			{BookId: books[0].ID, Quantity: 1},
		},
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(900), orderResp.Order.SubTotalMinor)

	// 4. Отмена из pending допустима, из терминального статуса нет.
	canceled, err := suite.service.UpdateOrderStatus(ctx, &bookstorev1.UpdateOrderStatusRequest{
		OrderId: orderResp.Order.Id,
		Status:  bookstorev1.OrderStatus_ORDER_STATUS_CANCELED,
		Reason:  "передумал",
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), bookstorev1.OrderStatus_ORDER_STATUS_CANCELED, canceled.Order.Status)

	_, err = suite.service.UpdateOrderStatus(ctx, &bookstorev1.UpdateOrderStatusRequest{
		OrderId: orderResp.Order.Id,
		Status:  bookstorev1.OrderStatus_ORDER_STATUS_SHIPPED,
	})
	require.Error(suite.T(), err)
	require.Equal(suite.T(), codes.FailedPrecondition, status.Code(err))

	types := suite.outboxEventTypes()
	require.Contains(suite.T(), types, "offer.submitted")
	require.Contains(suite.T(), types, "offer.approved")
	require.Contains(suite.T(), types, "order.canceled")
}

func (suite *PurchaseLifecycleTestSuite) TestIdempotentOrderReplay() {
	ctx := context.Background()
	customerID, addressID := suite.registerReader("auth0|replay")

	bookResp, err := suite.service.CreateBook(ctx, &bookstorev1.CreateBookRequest{
		Name:       "Белая гвардия",
		Author:     "Михаил Булгаков",
		Isbn:       "978-5-389-04905-2",
		PriceMinor: 700,
		Quantity:   4,
	})
	require.NoError(suite.T(), err)

	req := &bookstorev1.CreateOrderRequest{
		CustomerId: customerID,
		AddressId:  addressID,
		Lines:      []*bookstorev1.OrderLine{{BookId: bookResp.Book.Id, Quantity: 2}},
	}

	first, err := suite.service.CreateOrder(withKey(ctx, "replay-key"), req)
	require.NoError(suite.T(), err)

	second, err := suite.service.CreateOrder(withKey(ctx, "replay-key"), req)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), first.Order.Id, second.Order.Id)

	// Склад списан ровно один раз.
	stored, err := suite.books.Get(bookResp.Book.Id)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int32(2), stored.Quantity)
}

func TestPurchaseLifecycle(t *testing.T) {
	suite.Run(t, new(PurchaseLifecycleTestSuite))
}
