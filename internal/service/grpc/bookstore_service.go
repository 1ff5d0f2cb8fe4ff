package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	"github.com/vladislavdragonenkov/bookstore/internal/service/checkout"
	"github.com/vladislavdragonenkov/bookstore/internal/service/offers"
	bookstorev1 "github.com/vladislavdragonenkov/bookstore/proto/bookstore/v1"
)

// BookstoreService реализует gRPC API магазина поверх доменных сервисов
// и репозиториев.
type BookstoreService struct {
	bookstorev1.UnimplementedBookstoreServiceServer

	checkout  checkout.Service
	offers    offers.Service
	orders    domain.OrderRepository
	books     domain.BookRepository
	customers domain.CustomerRepository
	addresses domain.AddressRepository
	reference domain.ReferenceDataRepository
	carts     domain.CartRepository
	timeline  domain.TimelineRepository
	idemRepo  domain.IdempotencyRepository
	logger    *log.Entry
}

// Deps — зависимости gRPC-сервиса.
type Deps struct {
	Checkout  checkout.Service
	Offers    offers.Service
	Orders    domain.OrderRepository
	Books     domain.BookRepository
	Customers domain.CustomerRepository
	Addresses domain.AddressRepository
	Reference domain.ReferenceDataRepository
	Carts     domain.CartRepository
	Timeline  domain.TimelineRepository
	IdemRepo  domain.IdempotencyRepository
	Logger    *log.Entry
}

const (
	grpcMethodCreateOrder         = "/bookstore.v1.BookstoreService/CreateOrder"
	grpcMethodCreateOrderFromCart = "/bookstore.v1.BookstoreService/CreateOrderFromCart"
	grpcMethodSubmitOffer         = "/bookstore.v1.BookstoreService/SubmitOffer"

	defaultListLimit = 100
)

// NewBookstoreService конструирует сервис с зависимостями.
func NewBookstoreService(deps Deps) *BookstoreService {
	logger := deps.Logger
	if logger == nil {
		logger = log.New().WithField("component", "bookstore-service")
	}
	return &BookstoreService{
		checkout:  deps.Checkout,
		offers:    deps.Offers,
		orders:    deps.Orders,
		books:     deps.Books,
		customers: deps.Customers,
		addresses: deps.Addresses,
		reference: deps.Reference,
		carts:     deps.Carts,
		timeline:  deps.Timeline,
		idemRepo:  deps.IdemRepo,
		logger:    logger,
	}
}

// CreateOrder оформляет заказ по явному списку позиций.
func (s *BookstoreService) CreateOrder(ctx context.Context, req *bookstorev1.CreateOrderRequest) (*bookstorev1.CreateOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodCreateOrder,
		req,
		func() *bookstorev1.CreateOrderResponse { return &bookstorev1.CreateOrderResponse{} },
		func(ctx context.Context) (*bookstorev1.CreateOrderResponse, error) {
			return s.createOrderInternal(ctx, req)
		},
	)
}

func (s *BookstoreService) createOrderInternal(_ context.Context, req *bookstorev1.CreateOrderRequest) (*bookstorev1.CreateOrderResponse, error) {
	if req.CustomerId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}
	if req.AddressId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "address_id is required")
	}
	if len(req.Lines) == 0 {
		return nil, status.Error(codes.InvalidArgument, "order must contain at least one line")
	}

	lines := make([]checkout.Line, 0, len(req.Lines))
	for idx, line := range req.Lines {
		if line == nil {
			return nil, status.Errorf(codes.InvalidArgument, "lines[%d] is nil", idx)
		}
		if line.Quantity <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "lines[%d].quantity must be > 0", idx)
		}
		lines = append(lines, checkout.Line{BookID: line.BookId, Quantity: line.Quantity})
	}

	order, err := s.checkout.PlaceOrder(req.CustomerId, req.AddressId, lines)
	if err != nil {
		return nil, s.mapError(err, "CreateOrder", "failed to place order")
	}

	return &bookstorev1.CreateOrderResponse{Order: toProtoOrder(order)}, nil
}

// CreateOrderFromCart оформляет заказ из корзины.
func (s *BookstoreService) CreateOrderFromCart(ctx context.Context, req *bookstorev1.CreateOrderFromCartRequest) (*bookstorev1.CreateOrderFromCartResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodCreateOrderFromCart,
		req,
		func() *bookstorev1.CreateOrderFromCartResponse { return &bookstorev1.CreateOrderFromCartResponse{} },
		func(ctx context.Context) (*bookstorev1.CreateOrderFromCartResponse, error) {
			return s.createOrderFromCartInternal(ctx, req)
		},
	)
}

func (s *BookstoreService) createOrderFromCartInternal(_ context.Context, req *bookstorev1.CreateOrderFromCartRequest) (*bookstorev1.CreateOrderFromCartResponse, error) {
	if strings.TrimSpace(req.CorrelationId) == "" {
		return nil, status.Error(codes.InvalidArgument, "correlation_id is required")
	}
	if req.CustomerId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}
	if req.AddressId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "address_id is required")
	}

	order, err := s.checkout.PlaceOrderFromCart(req.CorrelationId, req.CustomerId, req.AddressId)
	if err != nil {
		return nil, s.mapError(err, "CreateOrderFromCart", "failed to place order from cart")
	}

	return &bookstorev1.CreateOrderFromCartResponse{Order: toProtoOrder(order)}, nil
}

// GetOrder возвращает заказ с вычисленными итогами и таймлайн событий.
func (s *BookstoreService) GetOrder(_ context.Context, req *bookstorev1.GetOrderRequest) (*bookstorev1.GetOrderResponse, error) {
	if req == nil || req.OrderId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.orders.Get(req.OrderId)
	if err != nil {
		return nil, s.mapError(err, "GetOrder", "failed to load order")
	}

	return &bookstorev1.GetOrderResponse{
		Order:    toProtoOrder(order),
		Timeline: s.buildTimeline(order.ID),
	}, nil
}

// ListOrders возвращает заказы покупателя, новые первыми.
func (s *BookstoreService) ListOrders(_ context.Context, req *bookstorev1.ListOrdersRequest) (*bookstorev1.ListOrdersResponse, error) {
	if req == nil || req.CustomerId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	limit := int(req.PageSize)
	if limit <= 0 {
		limit = defaultListLimit
	}

	orders, err := s.orders.ListByCustomer(req.CustomerId, limit)
	if err != nil {
		return nil, s.mapError(err, "ListOrders", "failed to list orders")
	}

	result := make([]*bookstorev1.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, toProtoOrder(order))
	}

	return &bookstorev1.ListOrdersResponse{Orders: result}, nil
}

// UpdateOrderStatus переводит заказ по жизненному циклу.
func (s *BookstoreService) UpdateOrderStatus(_ context.Context, req *bookstorev1.UpdateOrderStatusRequest) (*bookstorev1.UpdateOrderStatusResponse, error) {
	if req == nil || req.OrderId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	target, ok := orderStatusFromProto(req.Status)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	order, err := s.checkout.Transition(req.OrderId, target, req.Reason)
	if err != nil {
		return nil, s.mapError(err, "UpdateOrderStatus", "failed to update order status")
	}

	return &bookstorev1.UpdateOrderStatusResponse{Order: toProtoOrder(order)}, nil
}

// CreateBook добавляет книгу в каталог.
func (s *BookstoreService) CreateBook(_ context.Context, req *bookstorev1.CreateBookRequest) (*bookstorev1.CreateBookResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	book, err := domain.NewBook(domain.BookParams{
		Name:          req.Name,
		Author:        req.Author,
		ISBN:          req.Isbn,
		Year:          req.Year,
		PublisherID:   domain.PublisherID(req.PublisherId),
		BookTypeID:    domain.BookTypeID(req.BookTypeId),
		GenreID:       domain.GenreID(req.GenreId),
		ConditionID:   domain.ConditionID(req.ConditionId),
		PriceMinor:    req.PriceMinor,
		Quantity:      req.Quantity,
		Summary:       req.Summary,
		CoverImageURL: req.CoverImageUrl,
	})
	if err != nil {
		return nil, s.mapError(err, "CreateBook", "failed to create book")
	}

	if err := s.validateBookRefs(book); err != nil {
		return nil, err
	}

	created, err := s.books.Create(book)
	if err != nil {
		return nil, s.mapError(err, "CreateBook", "failed to persist book")
	}

	return &bookstorev1.CreateBookResponse{Book: toProtoBook(created)}, nil
}

// validateBookRefs резолвит ненулевые справочные ссылки книги и проверяет
// принадлежность каждой к своей категории.
func (s *BookstoreService) validateBookRefs(book domain.Book) error {
	if s.reference == nil {
		return nil
	}

	refs := []struct {
		id       int64
		expected domain.ReferenceDataType
	}{
		{int64(book.GenreID), domain.ReferenceDataTypeGenre},
		{int64(book.ConditionID), domain.ReferenceDataTypeCondition},
		{int64(book.PublisherID), domain.ReferenceDataTypePublisher},
		{int64(book.BookTypeID), domain.ReferenceDataTypeBookType},
	}

	for _, ref := range refs {
		if ref.id == 0 {
			continue
		}
		item, err := s.reference.Get(ref.id)
		if err != nil {
			return s.mapError(err, "CreateBook", "failed to resolve reference data")
		}
		if !item.Matches(ref.expected) {
			return status.Errorf(codes.InvalidArgument, "reference %d is %s, expected %s", ref.id, item.DataType, ref.expected)
		}
	}
	return nil
}

// GetBook возвращает книгу каталога.
func (s *BookstoreService) GetBook(_ context.Context, req *bookstorev1.GetBookRequest) (*bookstorev1.GetBookResponse, error) {
	if req == nil || req.BookId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "book_id is required")
	}

	book, err := s.books.Get(req.BookId)
	if err != nil {
		return nil, s.mapError(err, "GetBook", "failed to load book")
	}

	return &bookstorev1.GetBookResponse{Book: toProtoBook(book)}, nil
}

// ListBooks возвращает каталог с опциональным фильтром по наличию.
func (s *BookstoreService) ListBooks(_ context.Context, req *bookstorev1.ListBooksRequest) (*bookstorev1.ListBooksResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	limit := int(req.PageSize)
	if limit <= 0 {
		limit = defaultListLimit
	}

	books, err := s.books.List(req.OnlyInStock, limit)
	if err != nil {
		return nil, s.mapError(err, "ListBooks", "failed to list books")
	}

	result := make([]*bookstorev1.Book, 0, len(books))
	for _, book := range books {
		result = append(result, toProtoBook(book))
	}

	return &bookstorev1.ListBooksResponse{Books: result}, nil
}

// SubmitOffer регистрирует предложение продавца.
func (s *BookstoreService) SubmitOffer(ctx context.Context, req *bookstorev1.SubmitOfferRequest) (*bookstorev1.SubmitOfferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodSubmitOffer,
		req,
		func() *bookstorev1.SubmitOfferResponse { return &bookstorev1.SubmitOfferResponse{} },
		func(ctx context.Context) (*bookstorev1.SubmitOfferResponse, error) {
			return s.submitOfferInternal(ctx, req)
		},
	)
}

func (s *BookstoreService) submitOfferInternal(_ context.Context, req *bookstorev1.SubmitOfferRequest) (*bookstorev1.SubmitOfferResponse, error) {
	if req.CustomerId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	offer, err := s.offers.Submit(domain.OfferParams{
		CustomerID:    req.CustomerId,
		BookName:      req.BookName,
		Author:        req.Author,
		ISBN:          req.Isbn,
		GenreID:       domain.GenreID(req.GenreId),
		ConditionID:   domain.ConditionID(req.ConditionId),
		PublisherID:   domain.PublisherID(req.PublisherId),
		BookTypeID:    domain.BookTypeID(req.BookTypeId),
		PriceMinor:    req.PriceMinor,
		Summary:       req.Summary,
		FrontImageURL: req.FrontImageUrl,
	})
	if err != nil {
		return nil, s.mapError(err, "SubmitOffer", "failed to submit offer")
	}

	return &bookstorev1.SubmitOfferResponse{Offer: toProtoOffer(offer)}, nil
}

// ListOffers возвращает офферы с фильтрами по продавцу и статусу.
func (s *BookstoreService) ListOffers(_ context.Context, req *bookstorev1.ListOffersRequest) (*bookstorev1.ListOffersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusFilter domain.OfferStatus
	if req.Status != bookstorev1.OfferStatus_OFFER_STATUS_UNSPECIFIED {
		converted, ok := offerStatusFromProto(req.Status)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "unknown offer status")
		}
		statusFilter = converted
	}

	limit := int(req.PageSize)
	if limit <= 0 {
		limit = defaultListLimit
	}

	list, err := s.offers.List(req.CustomerId, statusFilter, limit)
	if err != nil {
		return nil, s.mapError(err, "ListOffers", "failed to list offers")
	}

	result := make([]*bookstorev1.Offer, 0, len(list))
	for _, offer := range list {
		result = append(result, toProtoOffer(offer))
	}

	return &bookstorev1.ListOffersResponse{Offers: result}, nil
}

// ApproveOffer принимает оффер и заводит книгу в каталоге.
func (s *BookstoreService) ApproveOffer(_ context.Context, req *bookstorev1.ApproveOfferRequest) (*bookstorev1.ApproveOfferResponse, error) {
	if req == nil || req.OfferId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "offer_id is required")
	}

	offer, err := s.offers.Approve(req.OfferId, req.Comment)
	if err != nil {
		return nil, s.mapError(err, "ApproveOffer", "failed to approve offer")
	}

	return &bookstorev1.ApproveOfferResponse{Offer: toProtoOffer(offer)}, nil
}

// RejectOffer отклоняет оффер.
func (s *BookstoreService) RejectOffer(_ context.Context, req *bookstorev1.RejectOfferRequest) (*bookstorev1.RejectOfferResponse, error) {
	if req == nil || req.OfferId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "offer_id is required")
	}

	offer, err := s.offers.Reject(req.OfferId, req.Comment)
	if err != nil {
		return nil, s.mapError(err, "RejectOffer", "failed to reject offer")
	}

	return &bookstorev1.RejectOfferResponse{Offer: toProtoOffer(offer)}, nil
}

// AddToCart добавляет книгу в корзину. Пустой correlation_id создаёт
// новую корзину.
func (s *BookstoreService) AddToCart(_ context.Context, req *bookstorev1.AddToCartRequest) (*bookstorev1.AddToCartResponse, error) {
	if req == nil || req.BookId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "book_id is required")
	}
	if req.Quantity <= 0 {
		return nil, status.Error(codes.InvalidArgument, "quantity must be > 0")
	}

	if _, err := s.books.Get(req.BookId); err != nil {
		return nil, s.mapError(err, "AddToCart", "failed to resolve book")
	}

	correlationID := strings.TrimSpace(req.CorrelationId)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	cart, err := s.carts.GetByCorrelationID(correlationID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrCartNotFound):
		cart, err = domain.NewShoppingCart(correlationID)
		if err != nil {
			return nil, s.mapError(err, "AddToCart", "failed to create cart")
		}
		cart, err = s.carts.Create(cart)
		if err != nil {
			return nil, s.mapError(err, "AddToCart", "failed to persist cart")
		}
	default:
		return nil, s.mapError(err, "AddToCart", "failed to load cart")
	}

	if err := cart.AddItem(req.BookId, req.Quantity, req.WantToBuy); err != nil {
		return nil, s.mapError(err, "AddToCart", "failed to add cart item")
	}
	if err := s.carts.Save(cart); err != nil {
		return nil, s.mapError(err, "AddToCart", "failed to save cart")
	}

	updated, err := s.carts.GetByCorrelationID(correlationID)
	if err != nil {
		return nil, s.mapError(err, "AddToCart", "failed to reload cart")
	}

	return &bookstorev1.AddToCartResponse{Cart: toProtoCart(updated)}, nil
}

// GetCart возвращает корзину по correlation id.
func (s *BookstoreService) GetCart(_ context.Context, req *bookstorev1.GetCartRequest) (*bookstorev1.GetCartResponse, error) {
	if req == nil || strings.TrimSpace(req.CorrelationId) == "" {
		return nil, status.Error(codes.InvalidArgument, "correlation_id is required")
	}

	cart, err := s.carts.GetByCorrelationID(req.CorrelationId)
	if err != nil {
		return nil, s.mapError(err, "GetCart", "failed to load cart")
	}

	return &bookstorev1.GetCartResponse{Cart: toProtoCart(cart)}, nil
}

// CreateCustomer регистрирует покупателя.
func (s *BookstoreService) CreateCustomer(_ context.Context, req *bookstorev1.CreateCustomerRequest) (*bookstorev1.CreateCustomerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	customer, err := domain.NewCustomer(req.Sub, req.Username)
	if err != nil {
		return nil, s.mapError(err, "CreateCustomer", "failed to create customer")
	}
	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.Phone = req.Phone

	created, err := s.customers.Create(customer)
	if err != nil {
		return nil, s.mapError(err, "CreateCustomer", "failed to persist customer")
	}

	return &bookstorev1.CreateCustomerResponse{Customer: toProtoCustomer(created)}, nil
}

// CreateAddress добавляет адрес доставки покупателю.
func (s *BookstoreService) CreateAddress(_ context.Context, req *bookstorev1.CreateAddressRequest) (*bookstorev1.CreateAddressResponse, error) {
	if req == nil || req.CustomerId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	if _, err := s.customers.Get(req.CustomerId); err != nil {
		return nil, s.mapError(err, "CreateAddress", "failed to resolve customer")
	}

	address, err := domain.NewAddress(req.CustomerId, req.AddressLine1, req.AddressLine2, req.City, req.State, req.Country, req.ZipCode)
	if err != nil {
		return nil, s.mapError(err, "CreateAddress", "failed to create address")
	}

	created, err := s.addresses.Create(address)
	if err != nil {
		return nil, s.mapError(err, "CreateAddress", "failed to persist address")
	}

	return &bookstorev1.CreateAddressResponse{Address: toProtoAddress(created)}, nil
}

// CreateReferenceData добавляет справочное значение.
func (s *BookstoreService) CreateReferenceData(_ context.Context, req *bookstorev1.CreateReferenceDataRequest) (*bookstorev1.CreateReferenceDataResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	dataType, ok := referenceTypeFromProto(req.DataType)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "data_type is required")
	}

	item, err := domain.NewReferenceDataItem(dataType, req.Text)
	if err != nil {
		return nil, s.mapError(err, "CreateReferenceData", "failed to create reference data")
	}

	created, err := s.reference.Create(item)
	if err != nil {
		return nil, s.mapError(err, "CreateReferenceData", "failed to persist reference data")
	}

	return &bookstorev1.CreateReferenceDataResponse{Item: toProtoReferenceItem(created)}, nil
}

// ListReferenceData возвращает значения одной категории.
func (s *BookstoreService) ListReferenceData(_ context.Context, req *bookstorev1.ListReferenceDataRequest) (*bookstorev1.ListReferenceDataResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	dataType, ok := referenceTypeFromProto(req.DataType)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "data_type is required")
	}

	items, err := s.reference.ListByType(dataType)
	if err != nil {
		return nil, s.mapError(err, "ListReferenceData", "failed to list reference data")
	}

	result := make([]*bookstorev1.ReferenceDataItem, 0, len(items))
	for _, item := range items {
		result = append(result, toProtoReferenceItem(item))
	}

	return &bookstorev1.ListReferenceDataResponse{Items: result}, nil
}

// mapError переводит доменные ошибки в коды gRPC.
func (s *BookstoreService) mapError(err error, operation, internalMsg string) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}

	entry := s.logger.WithError(err).WithField("operation", operation)

	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrOrderItemQtyInvalid),
		errors.Is(err, domain.ErrCartItemQtyInvalid),
		errors.Is(err, domain.ErrOrderStatusInvalid),
		errors.Is(err, domain.ErrReferenceTypeMismatch):
		entry.Warn("request rejected by validation")
		return status.Error(codes.InvalidArgument, err.Error())
	case domain.IsNotFound(err):
		entry.Warn("entity not found")
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrCustomerSubTaken):
		entry.Warn("customer sub conflict")
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrOfferAlreadyDecided),
		errors.Is(err, domain.ErrOrderTransitionInvalid),
		errors.Is(err, domain.ErrCartNoPurchasableItems):
		entry.Warn("operation rejected by business rule")
		return status.Error(codes.FailedPrecondition, err.Error())
	case domain.IsVersionConflict(err):
		entry.Warn("version conflict")
		return status.Error(codes.Aborted, err.Error())
	default:
		entry.Error(internalMsg)
		return status.Error(codes.Internal, internalMsg)
	}
}

func (s *BookstoreService) buildTimeline(orderID int64) []*bookstorev1.TimelineEvent {
	if s.timeline == nil {
		return nil
	}
	events, err := s.timeline.List(orderID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to list timeline events")
		return nil
	}
	result := make([]*bookstorev1.TimelineEvent, 0, len(events))
	for _, event := range events {
		result = append(result, &bookstorev1.TimelineEvent{
			Type:     event.Type,
			Reason:   event.Reason,
			UnixTime: event.Occurred.Unix(),
		})
	}
	return result
}

func toProtoOrder(order domain.Order) *bookstorev1.Order {
	items := make([]*bookstorev1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &bookstorev1.OrderItem{
			Id:             item.ID,
			BookId:         item.BookID,
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPriceMinor,
		})
	}

	return &bookstorev1.Order{
		Id:               order.ID,
		CustomerId:       order.CustomerID,
		AddressId:        order.AddressID,
		DeliveryDateUnix: order.DeliveryDate.Unix(),
		Status:           toProtoOrderStatus(order.Status),
		Items:            items,
		SubTotalMinor:    order.SubTotal(),
		TaxMinor:         order.Tax(),
		TotalMinor:       order.Total(),
		Version:          order.Version,
	}
}

func toProtoBook(book domain.Book) *bookstorev1.Book {
	return &bookstorev1.Book{
		Id:            book.ID,
		Name:          book.Name,
		Author:        book.Author,
		Isbn:          book.ISBN,
		Year:          book.Year,
		PublisherId:   int64(book.PublisherID),
		BookTypeId:    int64(book.BookTypeID),
		GenreId:       int64(book.GenreID),
		ConditionId:   int64(book.ConditionID),
		PriceMinor:    book.PriceMinor,
		Quantity:      book.Quantity,
		Summary:       book.Summary,
		CoverImageUrl: book.CoverImageURL,
	}
}

func toProtoOffer(offer domain.Offer) *bookstorev1.Offer {
	return &bookstorev1.Offer{
		Id:            offer.ID,
		CustomerId:    offer.CustomerID,
		BookName:      offer.BookName,
		Author:        offer.Author,
		Isbn:          offer.ISBN,
		GenreId:       int64(offer.GenreID),
		ConditionId:   int64(offer.ConditionID),
		PublisherId:   int64(offer.PublisherID),
		BookTypeId:    int64(offer.BookTypeID),
		PriceMinor:    offer.PriceMinor,
		Summary:       offer.Summary,
		FrontImageUrl: offer.FrontImageURL,
		Status:        toProtoOfferStatus(offer.Status),
		Comment:       offer.Comment,
	}
}

func toProtoCart(cart domain.ShoppingCart) *bookstorev1.Cart {
	items := make([]*bookstorev1.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, &bookstorev1.CartItem{
			Id:        item.ID,
			BookId:    item.BookID,
			Quantity:  item.Quantity,
			WantToBuy: item.WantToBuy,
		})
	}
	return &bookstorev1.Cart{
		Id:            cart.ID,
		CorrelationId: cart.CorrelationID,
		Items:         items,
	}
}

func toProtoCustomer(customer domain.Customer) *bookstorev1.Customer {
	return &bookstorev1.Customer{
		Id:        customer.ID,
		Sub:       customer.Sub,
		Username:  customer.Username,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
	}
}

func toProtoAddress(address domain.Address) *bookstorev1.Address {
	return &bookstorev1.Address{
		Id:           address.ID,
		CustomerId:   address.CustomerID,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		Country:      address.Country,
		ZipCode:      address.ZipCode,
		IsActive:     address.IsActive,
	}
}

func toProtoReferenceItem(item domain.ReferenceDataItem) *bookstorev1.ReferenceDataItem {
	return &bookstorev1.ReferenceDataItem{
		Id:       item.ID,
		DataType: toProtoReferenceType(item.DataType),
		Text:     item.Text,
	}
}

func toProtoOrderStatus(status domain.OrderStatus) bookstorev1.OrderStatus {
	switch status {
	case domain.OrderStatusPending:
		return bookstorev1.OrderStatus_ORDER_STATUS_PENDING
	case domain.OrderStatusShipped:
		return bookstorev1.OrderStatus_ORDER_STATUS_SHIPPED
	case domain.OrderStatusDelivered:
		return bookstorev1.OrderStatus_ORDER_STATUS_DELIVERED
	case domain.OrderStatusCanceled:
		return bookstorev1.OrderStatus_ORDER_STATUS_CANCELED
	default:
		return bookstorev1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func orderStatusFromProto(status bookstorev1.OrderStatus) (domain.OrderStatus, bool) {
	switch status {
	case bookstorev1.OrderStatus_ORDER_STATUS_PENDING:
		return domain.OrderStatusPending, true
	case bookstorev1.OrderStatus_ORDER_STATUS_SHIPPED:
		return domain.OrderStatusShipped, true
	case bookstorev1.OrderStatus_ORDER_STATUS_DELIVERED:
		return domain.OrderStatusDelivered, true
	case bookstorev1.OrderStatus_ORDER_STATUS_CANCELED:
		return domain.OrderStatusCanceled, true
	default:
		return "", false
	}
}

func toProtoOfferStatus(status domain.OfferStatus) bookstorev1.OfferStatus {
	switch status {
	case domain.OfferStatusPendingApproval:
		return bookstorev1.OfferStatus_OFFER_STATUS_PENDING_APPROVAL
	case domain.OfferStatusApproved:
		return bookstorev1.OfferStatus_OFFER_STATUS_APPROVED
	case domain.OfferStatusRejected:
		return bookstorev1.OfferStatus_OFFER_STATUS_REJECTED
	default:
		return bookstorev1.OfferStatus_OFFER_STATUS_UNSPECIFIED
	}
}

func offerStatusFromProto(status bookstorev1.OfferStatus) (domain.OfferStatus, bool) {
	switch status {
	case bookstorev1.OfferStatus_OFFER_STATUS_PENDING_APPROVAL:
		return domain.OfferStatusPendingApproval, true
	case bookstorev1.OfferStatus_OFFER_STATUS_APPROVED:
		return domain.OfferStatusApproved, true
	case bookstorev1.OfferStatus_OFFER_STATUS_REJECTED:
		return domain.OfferStatusRejected, true
	default:
		return "", false
	}
}

func toProtoReferenceType(dataType domain.ReferenceDataType) bookstorev1.ReferenceDataType {
	switch dataType {
	case domain.ReferenceDataTypeGenre:
		return bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_GENRE
	case domain.ReferenceDataTypeCondition:
		return bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_CONDITION
	case domain.ReferenceDataTypePublisher:
		return bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_PUBLISHER
	case domain.ReferenceDataTypeBookType:
		return bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_BOOK_TYPE
	default:
		return bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_UNSPECIFIED
	}
}

func referenceTypeFromProto(dataType bookstorev1.ReferenceDataType) (domain.ReferenceDataType, bool) {
	switch dataType {
	case bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_GENRE:
		return domain.ReferenceDataTypeGenre, true
	case bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_CONDITION:
		return domain.ReferenceDataTypeCondition, true
	case bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_PUBLISHER:
		return domain.ReferenceDataTypePublisher, true
	case bookstorev1.ReferenceDataType_REFERENCE_DATA_TYPE_BOOK_TYPE:
		return domain.ReferenceDataTypeBookType, true
	default:
		return "", false
	}
}

const (
	idempotencyKeyHeader = "idempotency-key"
	idempotencyTTL       = 24 * time.Hour
)

type idempotencyErrorPayload struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func withIdempotency[T proto.Message](
	s *BookstoreService,
	ctx context.Context,
	method string,
	req proto.Message,
	newResp func() T,
	handler func(context.Context) (T, error),
) (T, error) {
	var zero T

	if s.idemRepo == nil {
		return handler(ctx)
	}

	idemKey, err := readIdempotencyKey(ctx)
	if err != nil {
		return zero, err
	}

	reqHash, err := buildIdempotencyRequestHash(method, req)
	if err != nil {
		s.logger.WithError(err).WithField("method", method).Warn("failed to build idempotency request hash")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	record, err := s.idemRepo.CreateProcessing(idemKey, reqHash, time.Now().UTC().Add(idempotencyTTL))
	if err != nil {
		return replayIdempotency(s, err, record, newResp)
	}

	resp, runErr := handler(ctx)
	if runErr != nil {
		s.cacheIdempotencyFailure(idemKey, runErr)
		return resp, runErr
	}

	if cacheErr := s.cacheIdempotencySuccess(idemKey, resp); cacheErr != nil {
		s.logger.WithError(cacheErr).WithField("idempotency_key", idemKey).Warn("failed to store idempotent success response")
	}

	return resp, nil
}

func replayIdempotency[T proto.Message](
	s *BookstoreService,
	createErr error,
	record domain.IdempotencyRecord,
	newResp func() T,
) (T, error) {
	var zero T

	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return zero, status.Error(codes.AlreadyExists, "idempotency key is already used with different request payload")
	case errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		switch record.Status {
		case domain.IdempotencyStatusDone:
			if len(record.ResponseBody) == 0 {
				return zero, status.Error(codes.Internal, "idempotency cache is empty")
			}
			resp := newResp()
			if err := protojson.Unmarshal(record.ResponseBody, resp); err != nil {
				s.logger.WithError(err).WithField("idempotency_key", record.Key).Warn("failed to decode cached idempotency response")
				return zero, status.Error(codes.Internal, "failed to decode cached idempotency response")
			}
			return resp, nil
		case domain.IdempotencyStatusProcessing:
			return zero, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
		case domain.IdempotencyStatusFailed:
			return zero, decodeIdempotencyFailure(record)
		default:
			return zero, status.Error(codes.Internal, "unknown idempotency record status")
		}
	default:
		s.logger.WithError(createErr).Warn("failed to create idempotency record")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}
}

func (s *BookstoreService) cacheIdempotencySuccess(key string, resp proto.Message) error {
	if resp == nil {
		return s.idemRepo.MarkDone(key, nil, int(codes.OK))
	}

	data, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}
	return s.idemRepo.MarkDone(key, data, int(codes.OK))
}

func (s *BookstoreService) cacheIdempotencyFailure(key string, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}

	payload, err := json.Marshal(idempotencyErrorPayload{
		Code:    int32(code), //nolint:gosec // codes.Code is a bounded enum value.
		Message: st.Message(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to encode idempotency failure payload")
		payload = nil
	}

	if err := s.idemRepo.MarkFailed(key, payload, int(code)); err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotency failure response")
	}
}

func decodeIdempotencyFailure(record domain.IdempotencyRecord) error {
	if len(record.ResponseBody) > 0 {
		var payload idempotencyErrorPayload
		if err := json.Unmarshal(record.ResponseBody, &payload); err == nil {
			if code, ok := grpcCodeFromInt32(payload.Code); ok {
				if code == codes.OK {
					code = codes.Internal
				}
				if payload.Message == "" {
					payload.Message = "previous request with the same idempotency key failed"
				}
				return status.Error(code, payload.Message)
			}
		}
	}

	if record.ResponseCode > 0 {
		if code, ok := grpcCodeFromInt(record.ResponseCode); ok && code != codes.OK {
			return status.Error(code, "previous request with the same idempotency key failed")
		}
	}

	return status.Error(codes.Internal, "previous request with the same idempotency key failed")
}

func grpcCodeFromInt32(value int32) (codes.Code, bool) {
	if value < int32(codes.OK) || value > int32(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func grpcCodeFromInt(value int) (codes.Code, bool) {
	if value < int(codes.OK) || value > int(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func readIdempotencyKey(ctx context.Context) (string, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}

	return "", status.Error(codes.InvalidArgument, "idempotency-key metadata is required")
}

func buildIdempotencyRequestHash(method string, req proto.Message) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(method)+1+len(data))
	payload = append(payload, method...)
	payload = append(payload, ':')
	payload = append(payload, data...)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
