package grpcsvc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	"github.com/vladislavdragonenkov/bookstore/internal/service/checkout"
	grpcsvc "github.com/vladislavdragonenkov/bookstore/internal/service/grpc"
	"github.com/vladislavdragonenkov/bookstore/internal/service/offers"
	"github.com/vladislavdragonenkov/bookstore/internal/storage/memory"
	bookstorev1 "github.com/vladislavdragonenkov/bookstore/proto/bookstore/v1"
)

const bufSize = 1024 * 1024

type testEnv struct {
	books     *memory.BookRepository
	customers *memory.CustomerRepository
	addresses *memory.AddressRepository
	orders    *memory.OrderRepository
	carts     *memory.CartRepository
	offers    *memory.OfferRepository
	reference *memory.ReferenceDataRepository
}

func idemCtx(ctx context.Context, key string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "idempotency-key", key)
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func newTestServer(t *testing.T) (bookstorev1.BookstoreServiceClient, *testEnv) {
	t.Helper()

	env := &testEnv{
		books:     memory.NewBookRepository(),
		customers: memory.NewCustomerRepository(),
		addresses: memory.NewAddressRepository(),
		orders:    memory.NewOrderRepository(),
		carts:     memory.NewCartRepository(),
		offers:    memory.NewOfferRepository(),
		reference: memory.NewReferenceDataRepository(),
	}
	outbox := memory.NewOutboxRepository()
	timeline := memory.NewTimelineRepository()
	logger := loggerForTests()

	checkoutSvc := checkout.NewServiceWithoutMetrics(checkout.Deps{
		Customers: env.customers,
		Addresses: env.addresses,
		Books:     env.books,
		Orders:    env.orders,
		Carts:     env.carts,
		Placer:    memory.NewOrderPlacer(env.books, env.orders),
		Outbox:    outbox,
		Timeline:  timeline,
		Logger:    logger.WithField("layer", "checkout"),
	})
	offersSvc := offers.NewServiceWithoutMetrics(env.offers, env.books, env.customers, outbox, logger.WithField("layer", "offers"))

	service := grpcsvc.NewBookstoreService(grpcsvc.Deps{
		Checkout:  checkoutSvc,
		Offers:    offersSvc,
		Orders:    env.orders,
		Books:     env.books,
		Customers: env.customers,
		Addresses: env.addresses,
		Reference: env.reference,
		Carts:     env.carts,
		Timeline:  timeline,
		IdemRepo:  memory.NewIdempotencyRepository(),
		Logger:    logger,
	})

	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	bookstorev1.RegisterBookstoreServiceServer(server, service)

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return bookstorev1.NewBookstoreServiceClient(conn), env
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func seedCustomerWithAddress(t *testing.T, env *testEnv) (domain.Customer, domain.Address) {
	t.Helper()

	customer, err := domain.NewCustomer("auth0|reader", "reader")
	require.NoError(t, err)
	customer, err = env.customers.Create(customer)
	require.NoError(t, err)

	address, err := domain.NewAddress(customer.ID, "Невский проспект 28", "", "Санкт-Петербург", "", "RU", "191186")
	require.NoError(t, err)
	address, err = env.addresses.Create(address)
	require.NoError(t, err)

	return customer, address
}

func seedBook(t *testing.T, env *testEnv, quantity int32) domain.Book {
	t.Helper()

	book, err := domain.NewBook(domain.BookParams{
		Name:       "Обломов",
		Author:     "Иван Гончаров",
		ISBN:       "978-5-17-090563-1",
		PriceMinor: 1100,
		Quantity:   quantity,
	})
	require.NoError(t, err)
	book, err = env.books.Create(book)
	require.NoError(t, err)
	return book
}

func TestBookstoreService_CreateAndGetOrder(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	customer, address := seedCustomerWithAddress(t, env)
	book := seedBook(t, env, 10)

	resp, err := client.CreateOrder(idemCtx(ctx, "create-order-1"), &bookstorev1.CreateOrderRequest{
		CustomerId: customer.ID,
		AddressId:  address.ID,
		Lines: []*bookstorev1.OrderLine{
			{BookId: book.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Order)
	require.NotZero(t, resp.Order.Id)
	require.Equal(t, bookstorev1.OrderStatus_ORDER_STATUS_PENDING, resp.Order.Status)
	// Историческая политика per_item: количество не влияет на SubTotal.
	require.Equal(t, int64(1100), resp.Order.SubTotalMinor)
	require.Equal(t, resp.Order.SubTotalMinor+resp.Order.TaxMinor, resp.Order.TotalMinor)

	getResp, err := client.GetOrder(ctx, &bookstorev1.GetOrderRequest{OrderId: resp.Order.Id})
	require.NoError(t, err)
	require.Equal(t, resp.Order.Id, getResp.Order.Id)
	require.Equal(t, resp.Order.TotalMinor, getResp.Order.TotalMinor)
	require.NotEmpty(t, getResp.Timeline)
	require.Equal(t, "order.placed", getResp.Timeline[0].Type)

	stored, err := env.books.Get(book.ID)
	require.NoError(t, err)
	require.Equal(t, int32(8), stored.Quantity)
}

func TestBookstoreService_CreateOrder_RequiresIdempotencyKey(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	customer, address := seedCustomerWithAddress(t, env)
	book := seedBook(t, env, 10)

	_, err := client.CreateOrder(ctx, &bookstorev1.CreateOrderRequest{
		CustomerId: customer.ID,
		AddressId:  address.ID,
		Lines:      []*bookstorev1.OrderLine{{BookId: book.ID, Quantity: 1}},
	})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBookstoreService_CreateOrder_IdempotentReplay(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	customer, address := seedCustomerWithAddress(t, env)
	book := seedBook(t, env, 10)

	req := &bookstorev1.CreateOrderRequest{
		CustomerId: customer.ID,
		AddressId:  address.ID,
		Lines:      []*bookstorev1.OrderLine{{BookId: book.ID, Quantity: 1}},
	}

	first, err := client.CreateOrder(idemCtx(ctx, "create-replay-1"), req)
	require.NoError(t, err)
	second, err := client.CreateOrder(idemCtx(ctx, "create-replay-1"), req)
	require.NoError(t, err)
	require.Equal(t, first.Order.Id, second.Order.Id)

	orders, err := env.orders.ListByCustomer(customer.ID, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	// Повтор списал остаток только один раз.
	stored, err := env.books.Get(book.ID)
	require.NoError(t, err)
	require.Equal(t, int32(9), stored.Quantity)
}

func TestBookstoreService_CreateOrder_IdempotencyHashMismatch(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	customer, address := seedCustomerWithAddress(t, env)
	book := seedBook(t, env, 10)

	_, err := client.CreateOrder(idemCtx(ctx, "create-replay-2"), &bookstorev1.CreateOrderRequest{
		CustomerId: customer.ID,
		AddressId:  address.ID,
		Lines:      []*bookstorev1.OrderLine{{BookId: book.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = client.CreateOrder(idemCtx(ctx, "create-replay-2"), &bookstorev1.CreateOrderRequest{
		CustomerId: customer.ID,
		AddressId:  address.ID,
		Lines:      []*bookstorev1.OrderLine{{BookId: book.ID, Quantity: 2}},
	})
	require.Error(t, err)
	require.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestBookstoreService_CreateOrder_InsufficientStock(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	customer, address := seedCustomerWithAddress(t, env)
	book := seedBook(t, env, 1)

	_, err := client.CreateOrder(idemCtx(ctx, "create-oos-1"), &bookstorev1.CreateOrderRequest{
		CustomerId: customer.ID,
		AddressId:  address.ID,
		Lines:      []*bookstorev1.OrderLine{{BookId: book.ID, Quantity: 5}},
	})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestBookstoreService_UpdateOrderStatus_Lifecycle(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	customer, address := seedCustomerWithAddress(t, env)
	book := seedBook(t, env, 10)

	created, err := client.CreateOrder(idemCtx(ctx, "lifecycle-1"), &bookstorev1.CreateOrderRequest{
		CustomerId: customer.ID,
		AddressId:  address.ID,
		Lines:      []*bookstorev1.OrderLine{{BookId: book.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	shipped, err := client.UpdateOrderStatus(ctx, &bookstorev1.UpdateOrderStatusRequest{
		OrderId: created.Order.Id,
		Status:  bookstorev1.OrderStatus_ORDER_STATUS_SHIPPED,
	})
	require.NoError(t, err)
	require.Equal(t, bookstorev1.OrderStatus_ORDER_STATUS_SHIPPED, shipped.Order.Status)

	delivered, err := client.UpdateOrderStatus(ctx, &bookstorev1.UpdateOrderStatusRequest{
		OrderId: created.Order.Id,
		Status:  bookstorev1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	require.NoError(t, err)
	require.Equal(t, bookstorev1.OrderStatus_ORDER_STATUS_DELIVERED, delivered.Order.Status)

	// Из терминального статуса выхода нет.
	_, err = client.UpdateOrderStatus(ctx, &bookstorev1.UpdateOrderStatusRequest{
		OrderId: created.Order.Id,
		Status:  bookstorev1.OrderStatus_ORDER_STATUS_CANCELED,
	})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestBookstoreService_CartFlow(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	customer, address := seedCustomerWithAddress(t, env)
	book := seedBook(t, env, 10)

	added, err := client.AddToCart(ctx, &bookstorev1.AddToCartRequest{
		BookId:    book.ID,
		Quantity:  2,
		WantToBuy: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.Cart.CorrelationId)
	require.Len(t, added.Cart.Items, 1)

	// Повторное добавление в ту же корзину по correlation id.
	added, err = client.AddToCart(ctx, &bookstorev1.AddToCartRequest{
		CorrelationId: added.Cart.CorrelationId,
		BookId:        book.ID,
		Quantity:      1,
		WantToBuy:     false,
	})
	require.NoError(t, err)
	require.Len(t, added.Cart.Items, 2)

	cartResp, err := client.GetCart(ctx, &bookstorev1.GetCartRequest{CorrelationId: added.Cart.CorrelationId})
	require.NoError(t, err)
	require.Len(t, cartResp.Cart.Items, 2)

	orderResp, err := client.CreateOrderFromCart(idemCtx(ctx, "cart-order-1"), &bookstorev1.CreateOrderFromCartRequest{
		CorrelationId: added.Cart.CorrelationId,
		CustomerId:    customer.ID,
		AddressId:     address.ID,
	})
	require.NoError(t, err)
	require.Len(t, orderResp.Order.Items, 1)
	require.Equal(t, int32(2), orderResp.Order.Items[0].Quantity)

	// Wishlist-позиция остаётся после оформления.
	cartResp, err = client.GetCart(ctx, &bookstorev1.GetCartRequest{CorrelationId: added.Cart.CorrelationId})
	require.NoError(t, err)
	require.Len(t, cartResp.Cart.Items, 1)
	require.False(t, cartResp.Cart.Items[0].WantToBuy)
}

func TestBookstoreService_AddToCart_UnknownBook(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := testCtx(t)

	_, err := client.AddToCart(ctx, &bookstorev1.AddToCartRequest{BookId: 404, Quantity: 1})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestBookstoreService_OfferFlow(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	customer, _ := seedCustomerWithAddress(t, env)

	submitted, err := client.SubmitOffer(idemCtx(ctx, "offer-1"), &bookstorev1.SubmitOfferRequest{
		CustomerId: customer.ID,
		BookName:   "Двенадцать стульев",
		Author:     "Ильф и Петров",
		Isbn:       "978-5-389-07435-1",
		PriceMinor: 1200,
	})
	require.NoError(t, err)
	require.Equal(t, bookstorev1.OfferStatus_OFFER_STATUS_PENDING_APPROVAL, submitted.Offer.Status)

	approved, err := client.ApproveOffer(ctx, &bookstorev1.ApproveOfferRequest{
		OfferId: submitted.Offer.Id,
		Comment: "берём в каталог",
	})
	require.NoError(t, err)
	require.Equal(t, bookstorev1.OfferStatus_OFFER_STATUS_APPROVED, approved.Offer.Status)
	require.Equal(t, "берём в каталог", approved.Offer.Comment)

	books, err := env.books.List(false, 10)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Двенадцать стульев", books[0].Name)

	// Повторное решение по тому же офферу запрещено.
	_, err = client.RejectOffer(ctx, &bookstorev1.RejectOfferRequest{OfferId: submitted.Offer.Id, Comment: "передумали"})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	list, err := client.ListOffers(ctx, &bookstorev1.ListOffersRequest{
		CustomerId: customer.ID,
		Status:     bookstorev1.OfferStatus_OFFER_STATUS_APPROVED,
	})
	require.NoError(t, err)
	require.Len(t, list.Offers, 1)
}

func TestBookstoreService_CustomerAndAddress(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := testCtx(t)

	customerResp, err := client.CreateCustomer(ctx, &bookstorev1.CreateCustomerRequest{
		Sub:       "auth0|new-reader",
		Username:  "new-reader",
		FirstName: "Максим",
		LastName:  "Орлов",
		Email:     "maksim@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, customerResp.Customer.Id)

	// Повторная регистрация того же sub.
	_, err = client.CreateCustomer(ctx, &bookstorev1.CreateCustomerRequest{
		Sub:      "auth0|new-reader",
		Username: "other",
	})
	require.Error(t, err)
	require.Equal(t, codes.AlreadyExists, status.Code(err))

	addressResp, err := client.CreateAddress(ctx, &bookstorev1.CreateAddressRequest{
		CustomerId:   customerResp.Customer.Id,
		AddressLine1: "Арбат 12",
		City:         "Москва",
		Country:      "RU",
		ZipCode:      "119002",
	})
	require.NoError(t, err)
	require.True(t, addressResp.Address.IsActive)

	_, err = client.CreateAddress(ctx, &bookstorev1.CreateAddressRequest{
		CustomerId:   9000,
		AddressLine1: "Арбат 12",
		City:         "Москва",
		Country:      "RU",
		ZipCode:      "119002",
	})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestBookstoreService_ReferenceData(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := testCtx(t)

	created, err := client.CreateReferenceData(ctx, &bookstorev1.CreateReferenceDataRequest{
		DataType: bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_GENRE,
		Text:     "Классическая проза",
	})
	require.NoError(t, err)
	require.NotZero(t, created.Item.Id)

	_, err = client.CreateReferenceData(ctx, &bookstorev1.CreateReferenceDataRequest{
		DataType: bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_CONDITION,
		Text:     "Хорошее",
	})
	require.NoError(t, err)

	list, err := client.ListReferenceData(ctx, &bookstorev1.ListReferenceDataRequest{
		DataType: bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_GENRE,
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Equal(t, "Классическая проза", list.Items[0].Text)
}

func TestBookstoreService_CreateBook_ReferenceValidation(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	genre, err := domain.NewReferenceDataItem(domain.ReferenceDataTypeGenre, "Роман")
	require.NoError(t, err)
	genre, err = env.reference.Create(genre)
	require.NoError(t, err)

	resp, err := client.CreateBook(ctx, &bookstorev1.CreateBookRequest{
		Name:       "Идиот",
		Author:     "Фёдор Достоевский",
		Isbn:       "978-5-04-116769-8",
		GenreId:    genre.ID,
		PriceMinor: 950,
		Quantity:   3,
	})
	require.NoError(t, err)
	require.Equal(t, genre.ID, resp.Book.GenreId)

	// Жанровый идентификатор в поле condition_id отклоняется.
	_, err = client.CreateBook(ctx, &bookstorev1.CreateBookRequest{
		Name:        "Идиот",
		Author:      "Фёдор Достоевский",
		Isbn:        "978-5-04-116769-8",
		ConditionId: genre.ID,
		PriceMinor:  950,
		Quantity:    3,
	})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBookstoreService_ListBooks_OnlyInStock(t *testing.T) {
	client, env := newTestServer(t)
	ctx := testCtx(t)

	seedBook(t, env, 3)

	empty, err := domain.NewBook(domain.BookParams{
		Name:       "Мы",
		Author:     "Евгений Замятин",
		ISBN:       "978-5-17-087885-0",
		PriceMinor: 700,
		Quantity:   0,
	})
	require.NoError(t, err)
	_, err = env.books.Create(empty)
	require.NoError(t, err)

	all, err := client.ListBooks(ctx, &bookstorev1.ListBooksRequest{})
	require.NoError(t, err)
	require.Len(t, all.Books, 2)

	inStock, err := client.ListBooks(ctx, &bookstorev1.ListBooksRequest{OnlyInStock: true})
	require.NoError(t, err)
	require.Len(t, inStock.Books, 1)
	require.Equal(t, "Обломов", inStock.Books[0].Name)
}
