// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/bookstore/v1/bookstore_service.proto

package bookstorev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Статусы заказа; соответствуют доменному жизненному циклу.
type OrderStatus int32

const (
	OrderStatus_ORDER_STATUS_UNSPECIFIED OrderStatus = 0
	OrderStatus_ORDER_STATUS_PENDING     OrderStatus = 1
	OrderStatus_ORDER_STATUS_SHIPPED     OrderStatus = 2
	OrderStatus_ORDER_STATUS_DELIVERED   OrderStatus = 3
	OrderStatus_ORDER_STATUS_CANCELED    OrderStatus = 4
)

// Enum value maps for OrderStatus.
var (
	OrderStatus_name = map[int32]string{
		0: "ORDER_STATUS_UNSPECIFIED",
		1: "ORDER_STATUS_PENDING",
		2: "ORDER_STATUS_SHIPPED",
		3: "ORDER_STATUS_DELIVERED",
		4: "ORDER_STATUS_CANCELED",
	}
	OrderStatus_value = map[string]int32{
		"ORDER_STATUS_UNSPECIFIED": 0,
		"ORDER_STATUS_PENDING":     1,
		"ORDER_STATUS_SHIPPED":     2,
		"ORDER_STATUS_DELIVERED":   3,
		"ORDER_STATUS_CANCELED":    4,
	}
)

func (x OrderStatus) Enum() *OrderStatus {
	p := new(OrderStatus)
	*p = x
	return p
}

func (x OrderStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (OrderStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_bookstore_v1_bookstore_service_proto_enumTypes[0].Descriptor()
}

func (OrderStatus) Type() protoreflect.EnumType {
	return &file_proto_bookstore_v1_bookstore_service_proto_enumTypes[0]
}

func (x OrderStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use OrderStatus.Descriptor instead.
func (OrderStatus) EnumDescriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{0}
}

// Статусы оффера.
type OfferStatus int32

const (
	OfferStatus_OFFER_STATUS_UNSPECIFIED      OfferStatus = 0
	OfferStatus_OFFER_STATUS_PENDING_APPROVAL OfferStatus = 1
	OfferStatus_OFFER_STATUS_APPROVED         OfferStatus = 2
	OfferStatus_OFFER_STATUS_REJECTED         OfferStatus = 3
)

// Enum value maps for OfferStatus.
var (
	OfferStatus_name = map[int32]string{
		0: "OFFER_STATUS_UNSPECIFIED",
		1: "OFFER_STATUS_PENDING_APPROVAL",
		2: "OFFER_STATUS_APPROVED",
		3: "OFFER_STATUS_REJECTED",
	}
	OfferStatus_value = map[string]int32{
		"OFFER_STATUS_UNSPECIFIED":      0,
		"OFFER_STATUS_PENDING_APPROVAL": 1,
		"OFFER_STATUS_APPROVED":         2,
		"OFFER_STATUS_REJECTED":         3,
	}
)

func (x OfferStatus) Enum() *OfferStatus {
	p := new(OfferStatus)
	*p = x
	return p
}

func (x OfferStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (OfferStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_bookstore_v1_bookstore_service_proto_enumTypes[1].Descriptor()
}

func (OfferStatus) Type() protoreflect.EnumType {
	return &file_proto_bookstore_v1_bookstore_service_proto_enumTypes[1]
}

func (x OfferStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use OfferStatus.Descriptor instead.
func (OfferStatus) EnumDescriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{1}
}

// Категории справочных значений.
type ReferenceDataType int32

const (
	ReferenceDataType_REFERENCE_DATA_TYPE_UNSPECIFIED ReferenceDataType = 0
	ReferenceDataType_REFERENCE_DATA_TYPE_GENRE       ReferenceDataType = 1
	ReferenceDataType_REFERENCE_DATA_TYPE_CONDITION   ReferenceDataType = 2
	ReferenceDataType_REFERENCE_DATA_TYPE_PUBLISHER   ReferenceDataType = 3
	ReferenceDataType_REFERENCE_DATA_TYPE_BOOK_TYPE   ReferenceDataType = 4
)

// Enum value maps for ReferenceDataType.
var (
	ReferenceDataType_name = map[int32]string{
		0: "REFERENCE_DATA_TYPE_UNSPECIFIED",
		1: "REFERENCE_DATA_TYPE_GENRE",
		2: "REFERENCE_DATA_TYPE_CONDITION",
		3: "REFERENCE_DATA_TYPE_PUBLISHER",
		4: "REFERENCE_DATA_TYPE_BOOK_TYPE",
	}
	ReferenceDataType_value = map[string]int32{
		"REFERENCE_DATA_TYPE_UNSPECIFIED": 0,
		"REFERENCE_DATA_TYPE_GENRE":       1,
		"REFERENCE_DATA_TYPE_CONDITION":   2,
		"REFERENCE_DATA_TYPE_PUBLISHER":   3,
		"REFERENCE_DATA_TYPE_BOOK_TYPE":   4,
	}
)

func (x ReferenceDataType) Enum() *ReferenceDataType {
	p := new(ReferenceDataType)
	*p = x
	return p
}

func (x ReferenceDataType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ReferenceDataType) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_bookstore_v1_bookstore_service_proto_enumTypes[2].Descriptor()
}

func (ReferenceDataType) Type() protoreflect.EnumType {
	return &file_proto_bookstore_v1_bookstore_service_proto_enumTypes[2]
}

func (x ReferenceDataType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ReferenceDataType.Descriptor instead.
func (ReferenceDataType) EnumDescriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{2}
}

// Деньги передаются в минимальных единицах (центах).
type Book struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Author        string                 `protobuf:"bytes,3,opt,name=author,proto3" json:"author,omitempty"`
	Isbn          string                 `protobuf:"bytes,4,opt,name=isbn,proto3" json:"isbn,omitempty"`
	Year          int32                  `protobuf:"varint,5,opt,name=year,proto3" json:"year,omitempty"`
	PublisherId   int64                  `protobuf:"varint,6,opt,name=publisher_id,json=publisherId,proto3" json:"publisher_id,omitempty"`
	BookTypeId    int64                  `protobuf:"varint,7,opt,name=book_type_id,json=bookTypeId,proto3" json:"book_type_id,omitempty"`
	GenreId       int64                  `protobuf:"varint,8,opt,name=genre_id,json=genreId,proto3" json:"genre_id,omitempty"`
	ConditionId   int64                  `protobuf:"varint,9,opt,name=condition_id,json=conditionId,proto3" json:"condition_id,omitempty"`
	PriceMinor    int64                  `protobuf:"varint,10,opt,name=price_minor,json=priceMinor,proto3" json:"price_minor,omitempty"`
	Quantity      int32                  `protobuf:"varint,11,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Summary       string                 `protobuf:"bytes,12,opt,name=summary,proto3" json:"summary,omitempty"`
	CoverImageUrl string                 `protobuf:"bytes,13,opt,name=cover_image_url,json=coverImageUrl,proto3" json:"cover_image_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Book) Reset() {
	*x = Book{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Book) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Book) ProtoMessage() {}

func (x *Book) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Book.ProtoReflect.Descriptor instead.
func (*Book) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{0}
}

func (x *Book) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Book) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Book) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *Book) GetIsbn() string {
	if x != nil {
		return x.Isbn
	}
	return ""
}

func (x *Book) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Book) GetPublisherId() int64 {
	if x != nil {
		return x.PublisherId
	}
	return 0
}

func (x *Book) GetBookTypeId() int64 {
	if x != nil {
		return x.BookTypeId
	}
	return 0
}

func (x *Book) GetGenreId() int64 {
	if x != nil {
		return x.GenreId
	}
	return 0
}

func (x *Book) GetConditionId() int64 {
	if x != nil {
		return x.ConditionId
	}
	return 0
}

func (x *Book) GetPriceMinor() int64 {
	if x != nil {
		return x.PriceMinor
	}
	return 0
}

func (x *Book) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *Book) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Book) GetCoverImageUrl() string {
	if x != nil {
		return x.CoverImageUrl
	}
	return ""
}

type OrderItem struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	BookId         int64                  `protobuf:"varint,2,opt,name=book_id,json=bookId,proto3" json:"book_id,omitempty"`
	Quantity       int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPriceMinor int64                  `protobuf:"varint,4,opt,name=unit_price_minor,json=unitPriceMinor,proto3" json:"unit_price_minor,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *OrderItem) Reset() {
	*x = OrderItem{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderItem) ProtoMessage() {}

func (x *OrderItem) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderItem.ProtoReflect.Descriptor instead.
func (*OrderItem) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{1}
}

func (x *OrderItem) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *OrderItem) GetBookId() int64 {
	if x != nil {
		return x.BookId
	}
	return 0
}

func (x *OrderItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *OrderItem) GetUnitPriceMinor() int64 {
	if x != nil {
		return x.UnitPriceMinor
	}
	return 0
}

type Order struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomerId       int64                  `protobuf:"varint,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	AddressId        int64                  `protobuf:"varint,3,opt,name=address_id,json=addressId,proto3" json:"address_id,omitempty"`
	DeliveryDateUnix int64                  `protobuf:"varint,4,opt,name=delivery_date_unix,json=deliveryDateUnix,proto3" json:"delivery_date_unix,omitempty"`
	Status           OrderStatus            `protobuf:"varint,5,opt,name=status,proto3,enum=bookstore.v1.OrderStatus" json:"status,omitempty"`
	Items            []*OrderItem           `protobuf:"bytes,6,rep,name=items,proto3" json:"items,omitempty"`
	SubTotalMinor    int64                  `protobuf:"varint,7,opt,name=sub_total_minor,json=subTotalMinor,proto3" json:"sub_total_minor,omitempty"`
	TaxMinor         int64                  `protobuf:"varint,8,opt,name=tax_minor,json=taxMinor,proto3" json:"tax_minor,omitempty"`
	TotalMinor       int64                  `protobuf:"varint,9,opt,name=total_minor,json=totalMinor,proto3" json:"total_minor,omitempty"`
	Version          int64                  `protobuf:"varint,10,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{2}
}

func (x *Order) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Order) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *Order) GetAddressId() int64 {
	if x != nil {
		return x.AddressId
	}
	return 0
}

func (x *Order) GetDeliveryDateUnix() int64 {
	if x != nil {
		return x.DeliveryDateUnix
	}
	return 0
}

func (x *Order) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *Order) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Order) GetSubTotalMinor() int64 {
	if x != nil {
		return x.SubTotalMinor
	}
	return 0
}

func (x *Order) GetTaxMinor() int64 {
	if x != nil {
		return x.TaxMinor
	}
	return 0
}

func (x *Order) GetTotalMinor() int64 {
	if x != nil {
		return x.TotalMinor
	}
	return 0
}

func (x *Order) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

type TimelineEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	UnixTime      int64                  `protobuf:"varint,3,opt,name=unix_time,json=unixTime,proto3" json:"unix_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimelineEvent) Reset() {
	*x = TimelineEvent{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimelineEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimelineEvent) ProtoMessage() {}

func (x *TimelineEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimelineEvent.ProtoReflect.Descriptor instead.
func (*TimelineEvent) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{3}
}

func (x *TimelineEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *TimelineEvent) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *TimelineEvent) GetUnixTime() int64 {
	if x != nil {
		return x.UnixTime
	}
	return 0
}

type Offer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomerId    int64                  `protobuf:"varint,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	BookName      string                 `protobuf:"bytes,3,opt,name=book_name,json=bookName,proto3" json:"book_name,omitempty"`
	Author        string                 `protobuf:"bytes,4,opt,name=author,proto3" json:"author,omitempty"`
	Isbn          string                 `protobuf:"bytes,5,opt,name=isbn,proto3" json:"isbn,omitempty"`
	GenreId       int64                  `protobuf:"varint,6,opt,name=genre_id,json=genreId,proto3" json:"genre_id,omitempty"`
	ConditionId   int64                  `protobuf:"varint,7,opt,name=condition_id,json=conditionId,proto3" json:"condition_id,omitempty"`
	PublisherId   int64                  `protobuf:"varint,8,opt,name=publisher_id,json=publisherId,proto3" json:"publisher_id,omitempty"`
	BookTypeId    int64                  `protobuf:"varint,9,opt,name=book_type_id,json=bookTypeId,proto3" json:"book_type_id,omitempty"`
	PriceMinor    int64                  `protobuf:"varint,10,opt,name=price_minor,json=priceMinor,proto3" json:"price_minor,omitempty"`
	Summary       string                 `protobuf:"bytes,11,opt,name=summary,proto3" json:"summary,omitempty"`
	FrontImageUrl string                 `protobuf:"bytes,12,opt,name=front_image_url,json=frontImageUrl,proto3" json:"front_image_url,omitempty"`
	Status        OfferStatus            `protobuf:"varint,13,opt,name=status,proto3,enum=bookstore.v1.OfferStatus" json:"status,omitempty"`
	Comment       string                 `protobuf:"bytes,14,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Offer) Reset() {
	*x = Offer{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Offer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Offer) ProtoMessage() {}

func (x *Offer) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Offer.ProtoReflect.Descriptor instead.
func (*Offer) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{4}
}

func (x *Offer) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Offer) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *Offer) GetBookName() string {
	if x != nil {
		return x.BookName
	}
	return ""
}

func (x *Offer) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *Offer) GetIsbn() string {
	if x != nil {
		return x.Isbn
	}
	return ""
}

func (x *Offer) GetGenreId() int64 {
	if x != nil {
		return x.GenreId
	}
	return 0
}

func (x *Offer) GetConditionId() int64 {
	if x != nil {
		return x.ConditionId
	}
	return 0
}

func (x *Offer) GetPublisherId() int64 {
	if x != nil {
		return x.PublisherId
	}
	return 0
}

func (x *Offer) GetBookTypeId() int64 {
	if x != nil {
		return x.BookTypeId
	}
	return 0
}

func (x *Offer) GetPriceMinor() int64 {
	if x != nil {
		return x.PriceMinor
	}
	return 0
}

func (x *Offer) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Offer) GetFrontImageUrl() string {
	if x != nil {
		return x.FrontImageUrl
	}
	return ""
}

func (x *Offer) GetStatus() OfferStatus {
	if x != nil {
		return x.Status
	}
	return OfferStatus_OFFER_STATUS_UNSPECIFIED
}

func (x *Offer) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type CartItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	BookId        int64                  `protobuf:"varint,2,opt,name=book_id,json=bookId,proto3" json:"book_id,omitempty"`
	Quantity      int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	WantToBuy     bool                   `protobuf:"varint,4,opt,name=want_to_buy,json=wantToBuy,proto3" json:"want_to_buy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CartItem) Reset() {
	*x = CartItem{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CartItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CartItem) ProtoMessage() {}

func (x *CartItem) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CartItem.ProtoReflect.Descriptor instead.
func (*CartItem) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{5}
}

func (x *CartItem) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *CartItem) GetBookId() int64 {
	if x != nil {
		return x.BookId
	}
	return 0
}

func (x *CartItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *CartItem) GetWantToBuy() bool {
	if x != nil {
		return x.WantToBuy
	}
	return false
}

type Cart struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	CorrelationId string                 `protobuf:"bytes,2,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	Items         []*CartItem            `protobuf:"bytes,3,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Cart) Reset() {
	*x = Cart{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Cart) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Cart) ProtoMessage() {}

func (x *Cart) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Cart.ProtoReflect.Descriptor instead.
func (*Cart) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{6}
}

func (x *Cart) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Cart) GetCorrelationId() string {
	if x != nil {
		return x.CorrelationId
	}
	return ""
}

func (x *Cart) GetItems() []*CartItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type Customer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Sub           string                 `protobuf:"bytes,2,opt,name=sub,proto3" json:"sub,omitempty"`
	Username      string                 `protobuf:"bytes,3,opt,name=username,proto3" json:"username,omitempty"`
	FirstName     string                 `protobuf:"bytes,4,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                 `protobuf:"bytes,5,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email         string                 `protobuf:"bytes,6,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,7,opt,name=phone,proto3" json:"phone,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Customer) Reset() {
	*x = Customer{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Customer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Customer) ProtoMessage() {}

func (x *Customer) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Customer.ProtoReflect.Descriptor instead.
func (*Customer) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{7}
}

func (x *Customer) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Customer) GetSub() string {
	if x != nil {
		return x.Sub
	}
	return ""
}

func (x *Customer) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *Customer) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *Customer) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *Customer) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Customer) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

type Address struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomerId    int64                  `protobuf:"varint,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	AddressLine1  string                 `protobuf:"bytes,3,opt,name=address_line1,json=addressLine1,proto3" json:"address_line1,omitempty"`
	AddressLine2  string                 `protobuf:"bytes,4,opt,name=address_line2,json=addressLine2,proto3" json:"address_line2,omitempty"`
	City          string                 `protobuf:"bytes,5,opt,name=city,proto3" json:"city,omitempty"`
	State         string                 `protobuf:"bytes,6,opt,name=state,proto3" json:"state,omitempty"`
	Country       string                 `protobuf:"bytes,7,opt,name=country,proto3" json:"country,omitempty"`
	ZipCode       string                 `protobuf:"bytes,8,opt,name=zip_code,json=zipCode,proto3" json:"zip_code,omitempty"`
	IsActive      bool                   `protobuf:"varint,9,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Address) Reset() {
	*x = Address{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Address) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Address) ProtoMessage() {}

func (x *Address) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Address.ProtoReflect.Descriptor instead.
func (*Address) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{8}
}

func (x *Address) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Address) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *Address) GetAddressLine1() string {
	if x != nil {
		return x.AddressLine1
	}
	return ""
}

func (x *Address) GetAddressLine2() string {
	if x != nil {
		return x.AddressLine2
	}
	return ""
}

func (x *Address) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *Address) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Address) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *Address) GetZipCode() string {
	if x != nil {
		return x.ZipCode
	}
	return ""
}

func (x *Address) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type ReferenceDataItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	DataType      ReferenceDataType      `protobuf:"varint,2,opt,name=data_type,json=dataType,proto3,enum=bookstore.v1.ReferenceDataType" json:"data_type,omitempty"`
	Text          string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReferenceDataItem) Reset() {
	*x = ReferenceDataItem{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReferenceDataItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReferenceDataItem) ProtoMessage() {}

func (x *ReferenceDataItem) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReferenceDataItem.ProtoReflect.Descriptor instead.
func (*ReferenceDataItem) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{9}
}

func (x *ReferenceDataItem) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *ReferenceDataItem) GetDataType() ReferenceDataType {
	if x != nil {
		return x.DataType
	}
	return ReferenceDataType_REFERENCE_DATA_TYPE_UNSPECIFIED
}

func (x *ReferenceDataItem) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type OrderLine struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BookId        int64                  `protobuf:"varint,1,opt,name=book_id,json=bookId,proto3" json:"book_id,omitempty"`
	Quantity      int32                  `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderLine) Reset() {
	*x = OrderLine{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderLine) ProtoMessage() {}

func (x *OrderLine) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderLine.ProtoReflect.Descriptor instead.
func (*OrderLine) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{10}
}

func (x *OrderLine) GetBookId() int64 {
	if x != nil {
		return x.BookId
	}
	return 0
}

func (x *OrderLine) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type CreateOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    int64                  `protobuf:"varint,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	AddressId     int64                  `protobuf:"varint,2,opt,name=address_id,json=addressId,proto3" json:"address_id,omitempty"`
	Lines         []*OrderLine           `protobuf:"bytes,3,rep,name=lines,proto3" json:"lines,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrderRequest) Reset() {
	*x = CreateOrderRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrderRequest) ProtoMessage() {}

func (x *CreateOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrderRequest.ProtoReflect.Descriptor instead.
func (*CreateOrderRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{11}
}

func (x *CreateOrderRequest) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *CreateOrderRequest) GetAddressId() int64 {
	if x != nil {
		return x.AddressId
	}
	return 0
}

func (x *CreateOrderRequest) GetLines() []*OrderLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

type CreateOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrderResponse) Reset() {
	*x = CreateOrderResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrderResponse) ProtoMessage() {}

func (x *CreateOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrderResponse.ProtoReflect.Descriptor instead.
func (*CreateOrderResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{12}
}

func (x *CreateOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type CreateOrderFromCartRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CorrelationId string                 `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	CustomerId    int64                  `protobuf:"varint,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	AddressId     int64                  `protobuf:"varint,3,opt,name=address_id,json=addressId,proto3" json:"address_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrderFromCartRequest) Reset() {
	*x = CreateOrderFromCartRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrderFromCartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrderFromCartRequest) ProtoMessage() {}

func (x *CreateOrderFromCartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrderFromCartRequest.ProtoReflect.Descriptor instead.
func (*CreateOrderFromCartRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{13}
}

func (x *CreateOrderFromCartRequest) GetCorrelationId() string {
	if x != nil {
		return x.CorrelationId
	}
	return ""
}

func (x *CreateOrderFromCartRequest) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *CreateOrderFromCartRequest) GetAddressId() int64 {
	if x != nil {
		return x.AddressId
	}
	return 0
}

type CreateOrderFromCartResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrderFromCartResponse) Reset() {
	*x = CreateOrderFromCartResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrderFromCartResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrderFromCartResponse) ProtoMessage() {}

func (x *CreateOrderFromCartResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrderFromCartResponse.ProtoReflect.Descriptor instead.
func (*CreateOrderFromCartResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{14}
}

func (x *CreateOrderFromCartResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type GetOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       int64                  `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderRequest) Reset() {
	*x = GetOrderRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderRequest) ProtoMessage() {}

func (x *GetOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderRequest.ProtoReflect.Descriptor instead.
func (*GetOrderRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{15}
}

func (x *GetOrderRequest) GetOrderId() int64 {
	if x != nil {
		return x.OrderId
	}
	return 0
}

type GetOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	Timeline      []*TimelineEvent       `protobuf:"bytes,2,rep,name=timeline,proto3" json:"timeline,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderResponse) Reset() {
	*x = GetOrderResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderResponse) ProtoMessage() {}

func (x *GetOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderResponse.ProtoReflect.Descriptor instead.
func (*GetOrderResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{16}
}

func (x *GetOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

func (x *GetOrderResponse) GetTimeline() []*TimelineEvent {
	if x != nil {
		return x.Timeline
	}
	return nil
}

type ListOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    int64                  `protobuf:"varint,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersRequest) Reset() {
	*x = ListOrdersRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersRequest) ProtoMessage() {}

func (x *ListOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListOrdersRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{17}
}

func (x *ListOrdersRequest) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *ListOrdersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersResponse) Reset() {
	*x = ListOrdersResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersResponse) ProtoMessage() {}

func (x *ListOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersResponse.ProtoReflect.Descriptor instead.
func (*ListOrdersResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{18}
}

func (x *ListOrdersResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

type UpdateOrderStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       int64                  `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status        OrderStatus            `protobuf:"varint,2,opt,name=status,proto3,enum=bookstore.v1.OrderStatus" json:"status,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateOrderStatusRequest) Reset() {
	*x = UpdateOrderStatusRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateOrderStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateOrderStatusRequest) ProtoMessage() {}

func (x *UpdateOrderStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateOrderStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateOrderStatusRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{19}
}

func (x *UpdateOrderStatusRequest) GetOrderId() int64 {
	if x != nil {
		return x.OrderId
	}
	return 0
}

func (x *UpdateOrderStatusRequest) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *UpdateOrderStatusRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type UpdateOrderStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateOrderStatusResponse) Reset() {
	*x = UpdateOrderStatusResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateOrderStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateOrderStatusResponse) ProtoMessage() {}

func (x *UpdateOrderStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateOrderStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateOrderStatusResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{20}
}

func (x *UpdateOrderStatusResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type CreateBookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Author        string                 `protobuf:"bytes,2,opt,name=author,proto3" json:"author,omitempty"`
	Isbn          string                 `protobuf:"bytes,3,opt,name=isbn,proto3" json:"isbn,omitempty"`
	Year          int32                  `protobuf:"varint,4,opt,name=year,proto3" json:"year,omitempty"`
	PublisherId   int64                  `protobuf:"varint,5,opt,name=publisher_id,json=publisherId,proto3" json:"publisher_id,omitempty"`
	BookTypeId    int64                  `protobuf:"varint,6,opt,name=book_type_id,json=bookTypeId,proto3" json:"book_type_id,omitempty"`
	GenreId       int64                  `protobuf:"varint,7,opt,name=genre_id,json=genreId,proto3" json:"genre_id,omitempty"`
	ConditionId   int64                  `protobuf:"varint,8,opt,name=condition_id,json=conditionId,proto3" json:"condition_id,omitempty"`
	PriceMinor    int64                  `protobuf:"varint,9,opt,name=price_minor,json=priceMinor,proto3" json:"price_minor,omitempty"`
	Quantity      int32                  `protobuf:"varint,10,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Summary       string                 `protobuf:"bytes,11,opt,name=summary,proto3" json:"summary,omitempty"`
	CoverImageUrl string                 `protobuf:"bytes,12,opt,name=cover_image_url,json=coverImageUrl,proto3" json:"cover_image_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBookRequest) Reset() {
	*x = CreateBookRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBookRequest) ProtoMessage() {}

func (x *CreateBookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBookRequest.ProtoReflect.Descriptor instead.
func (*CreateBookRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{21}
}

func (x *CreateBookRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateBookRequest) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *CreateBookRequest) GetIsbn() string {
	if x != nil {
		return x.Isbn
	}
	return ""
}

func (x *CreateBookRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *CreateBookRequest) GetPublisherId() int64 {
	if x != nil {
		return x.PublisherId
	}
	return 0
}

func (x *CreateBookRequest) GetBookTypeId() int64 {
	if x != nil {
		return x.BookTypeId
	}
	return 0
}

func (x *CreateBookRequest) GetGenreId() int64 {
	if x != nil {
		return x.GenreId
	}
	return 0
}

func (x *CreateBookRequest) GetConditionId() int64 {
	if x != nil {
		return x.ConditionId
	}
	return 0
}

func (x *CreateBookRequest) GetPriceMinor() int64 {
	if x != nil {
		return x.PriceMinor
	}
	return 0
}

func (x *CreateBookRequest) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *CreateBookRequest) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *CreateBookRequest) GetCoverImageUrl() string {
	if x != nil {
		return x.CoverImageUrl
	}
	return ""
}

type CreateBookResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Book          *Book                  `protobuf:"bytes,1,opt,name=book,proto3" json:"book,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBookResponse) Reset() {
	*x = CreateBookResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBookResponse) ProtoMessage() {}

func (x *CreateBookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBookResponse.ProtoReflect.Descriptor instead.
func (*CreateBookResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{22}
}

func (x *CreateBookResponse) GetBook() *Book {
	if x != nil {
		return x.Book
	}
	return nil
}

type GetBookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BookId        int64                  `protobuf:"varint,1,opt,name=book_id,json=bookId,proto3" json:"book_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBookRequest) Reset() {
	*x = GetBookRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBookRequest) ProtoMessage() {}

func (x *GetBookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBookRequest.ProtoReflect.Descriptor instead.
func (*GetBookRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{23}
}

func (x *GetBookRequest) GetBookId() int64 {
	if x != nil {
		return x.BookId
	}
	return 0
}

type GetBookResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Book          *Book                  `protobuf:"bytes,1,opt,name=book,proto3" json:"book,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBookResponse) Reset() {
	*x = GetBookResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBookResponse) ProtoMessage() {}

func (x *GetBookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBookResponse.ProtoReflect.Descriptor instead.
func (*GetBookResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{24}
}

func (x *GetBookResponse) GetBook() *Book {
	if x != nil {
		return x.Book
	}
	return nil
}

type ListBooksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OnlyInStock   bool                   `protobuf:"varint,1,opt,name=only_in_stock,json=onlyInStock,proto3" json:"only_in_stock,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBooksRequest) Reset() {
	*x = ListBooksRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBooksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBooksRequest) ProtoMessage() {}

func (x *ListBooksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBooksRequest.ProtoReflect.Descriptor instead.
func (*ListBooksRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{25}
}

func (x *ListBooksRequest) GetOnlyInStock() bool {
	if x != nil {
		return x.OnlyInStock
	}
	return false
}

func (x *ListBooksRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListBooksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Books         []*Book                `protobuf:"bytes,1,rep,name=books,proto3" json:"books,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBooksResponse) Reset() {
	*x = ListBooksResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBooksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBooksResponse) ProtoMessage() {}

func (x *ListBooksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBooksResponse.ProtoReflect.Descriptor instead.
func (*ListBooksResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{26}
}

func (x *ListBooksResponse) GetBooks() []*Book {
	if x != nil {
		return x.Books
	}
	return nil
}

type SubmitOfferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    int64                  `protobuf:"varint,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	BookName      string                 `protobuf:"bytes,2,opt,name=book_name,json=bookName,proto3" json:"book_name,omitempty"`
	Author        string                 `protobuf:"bytes,3,opt,name=author,proto3" json:"author,omitempty"`
	Isbn          string                 `protobuf:"bytes,4,opt,name=isbn,proto3" json:"isbn,omitempty"`
	GenreId       int64                  `protobuf:"varint,5,opt,name=genre_id,json=genreId,proto3" json:"genre_id,omitempty"`
	ConditionId   int64                  `protobuf:"varint,6,opt,name=condition_id,json=conditionId,proto3" json:"condition_id,omitempty"`
	PublisherId   int64                  `protobuf:"varint,7,opt,name=publisher_id,json=publisherId,proto3" json:"publisher_id,omitempty"`
	BookTypeId    int64                  `protobuf:"varint,8,opt,name=book_type_id,json=bookTypeId,proto3" json:"book_type_id,omitempty"`
	PriceMinor    int64                  `protobuf:"varint,9,opt,name=price_minor,json=priceMinor,proto3" json:"price_minor,omitempty"`
	Summary       string                 `protobuf:"bytes,10,opt,name=summary,proto3" json:"summary,omitempty"`
	FrontImageUrl string                 `protobuf:"bytes,11,opt,name=front_image_url,json=frontImageUrl,proto3" json:"front_image_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitOfferRequest) Reset() {
	*x = SubmitOfferRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitOfferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitOfferRequest) ProtoMessage() {}

func (x *SubmitOfferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitOfferRequest.ProtoReflect.Descriptor instead.
func (*SubmitOfferRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{27}
}

func (x *SubmitOfferRequest) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *SubmitOfferRequest) GetBookName() string {
	if x != nil {
		return x.BookName
	}
	return ""
}

func (x *SubmitOfferRequest) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *SubmitOfferRequest) GetIsbn() string {
	if x != nil {
		return x.Isbn
	}
	return ""
}

func (x *SubmitOfferRequest) GetGenreId() int64 {
	if x != nil {
		return x.GenreId
	}
	return 0
}

func (x *SubmitOfferRequest) GetConditionId() int64 {
	if x != nil {
		return x.ConditionId
	}
	return 0
}

func (x *SubmitOfferRequest) GetPublisherId() int64 {
	if x != nil {
		return x.PublisherId
	}
	return 0
}

func (x *SubmitOfferRequest) GetBookTypeId() int64 {
	if x != nil {
		return x.BookTypeId
	}
	return 0
}

func (x *SubmitOfferRequest) GetPriceMinor() int64 {
	if x != nil {
		return x.PriceMinor
	}
	return 0
}

func (x *SubmitOfferRequest) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *SubmitOfferRequest) GetFrontImageUrl() string {
	if x != nil {
		return x.FrontImageUrl
	}
	return ""
}

type SubmitOfferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offer         *Offer                 `protobuf:"bytes,1,opt,name=offer,proto3" json:"offer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitOfferResponse) Reset() {
	*x = SubmitOfferResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitOfferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitOfferResponse) ProtoMessage() {}

func (x *SubmitOfferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitOfferResponse.ProtoReflect.Descriptor instead.
func (*SubmitOfferResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{28}
}

func (x *SubmitOfferResponse) GetOffer() *Offer {
	if x != nil {
		return x.Offer
	}
	return nil
}

type ListOffersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    int64                  `protobuf:"varint,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Status        OfferStatus            `protobuf:"varint,2,opt,name=status,proto3,enum=bookstore.v1.OfferStatus" json:"status,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOffersRequest) Reset() {
	*x = ListOffersRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOffersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOffersRequest) ProtoMessage() {}

func (x *ListOffersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOffersRequest.ProtoReflect.Descriptor instead.
func (*ListOffersRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{29}
}

func (x *ListOffersRequest) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *ListOffersRequest) GetStatus() OfferStatus {
	if x != nil {
		return x.Status
	}
	return OfferStatus_OFFER_STATUS_UNSPECIFIED
}

func (x *ListOffersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListOffersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offers        []*Offer               `protobuf:"bytes,1,rep,name=offers,proto3" json:"offers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOffersResponse) Reset() {
	*x = ListOffersResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOffersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOffersResponse) ProtoMessage() {}

func (x *ListOffersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOffersResponse.ProtoReflect.Descriptor instead.
func (*ListOffersResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{30}
}

func (x *ListOffersResponse) GetOffers() []*Offer {
	if x != nil {
		return x.Offers
	}
	return nil
}

type ApproveOfferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OfferId       int64                  `protobuf:"varint,1,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	Comment       string                 `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveOfferRequest) Reset() {
	*x = ApproveOfferRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveOfferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveOfferRequest) ProtoMessage() {}

func (x *ApproveOfferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveOfferRequest.ProtoReflect.Descriptor instead.
func (*ApproveOfferRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{31}
}

func (x *ApproveOfferRequest) GetOfferId() int64 {
	if x != nil {
		return x.OfferId
	}
	return 0
}

func (x *ApproveOfferRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type ApproveOfferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offer         *Offer                 `protobuf:"bytes,1,opt,name=offer,proto3" json:"offer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveOfferResponse) Reset() {
	*x = ApproveOfferResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveOfferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveOfferResponse) ProtoMessage() {}

func (x *ApproveOfferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveOfferResponse.ProtoReflect.Descriptor instead.
func (*ApproveOfferResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{32}
}

func (x *ApproveOfferResponse) GetOffer() *Offer {
	if x != nil {
		return x.Offer
	}
	return nil
}

type RejectOfferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OfferId       int64                  `protobuf:"varint,1,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	Comment       string                 `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectOfferRequest) Reset() {
	*x = RejectOfferRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectOfferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectOfferRequest) ProtoMessage() {}

func (x *RejectOfferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectOfferRequest.ProtoReflect.Descriptor instead.
func (*RejectOfferRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{33}
}

func (x *RejectOfferRequest) GetOfferId() int64 {
	if x != nil {
		return x.OfferId
	}
	return 0
}

func (x *RejectOfferRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type RejectOfferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offer         *Offer                 `protobuf:"bytes,1,opt,name=offer,proto3" json:"offer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectOfferResponse) Reset() {
	*x = RejectOfferResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectOfferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectOfferResponse) ProtoMessage() {}

func (x *RejectOfferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectOfferResponse.ProtoReflect.Descriptor instead.
func (*RejectOfferResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{34}
}

func (x *RejectOfferResponse) GetOffer() *Offer {
	if x != nil {
		return x.Offer
	}
	return nil
}

type AddToCartRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Пустой correlation_id означает новую корзину; сервер сгенерирует uuid.
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	BookId        int64  `protobuf:"varint,2,opt,name=book_id,json=bookId,proto3" json:"book_id,omitempty"`
	Quantity      int32  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	WantToBuy     bool   `protobuf:"varint,4,opt,name=want_to_buy,json=wantToBuy,proto3" json:"want_to_buy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddToCartRequest) Reset() {
	*x = AddToCartRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddToCartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddToCartRequest) ProtoMessage() {}

func (x *AddToCartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddToCartRequest.ProtoReflect.Descriptor instead.
func (*AddToCartRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{35}
}

func (x *AddToCartRequest) GetCorrelationId() string {
	if x != nil {
		return x.CorrelationId
	}
	return ""
}

func (x *AddToCartRequest) GetBookId() int64 {
	if x != nil {
		return x.BookId
	}
	return 0
}

func (x *AddToCartRequest) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *AddToCartRequest) GetWantToBuy() bool {
	if x != nil {
		return x.WantToBuy
	}
	return false
}

type AddToCartResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cart          *Cart                  `protobuf:"bytes,1,opt,name=cart,proto3" json:"cart,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddToCartResponse) Reset() {
	*x = AddToCartResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddToCartResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddToCartResponse) ProtoMessage() {}

func (x *AddToCartResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddToCartResponse.ProtoReflect.Descriptor instead.
func (*AddToCartResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{36}
}

func (x *AddToCartResponse) GetCart() *Cart {
	if x != nil {
		return x.Cart
	}
	return nil
}

type GetCartRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CorrelationId string                 `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCartRequest) Reset() {
	*x = GetCartRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCartRequest) ProtoMessage() {}

func (x *GetCartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCartRequest.ProtoReflect.Descriptor instead.
func (*GetCartRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{37}
}

func (x *GetCartRequest) GetCorrelationId() string {
	if x != nil {
		return x.CorrelationId
	}
	return ""
}

type GetCartResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cart          *Cart                  `protobuf:"bytes,1,opt,name=cart,proto3" json:"cart,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCartResponse) Reset() {
	*x = GetCartResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCartResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCartResponse) ProtoMessage() {}

func (x *GetCartResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCartResponse.ProtoReflect.Descriptor instead.
func (*GetCartResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{38}
}

func (x *GetCartResponse) GetCart() *Cart {
	if x != nil {
		return x.Cart
	}
	return nil
}

type CreateCustomerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sub           string                 `protobuf:"bytes,1,opt,name=sub,proto3" json:"sub,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	FirstName     string                 `protobuf:"bytes,3,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                 `protobuf:"bytes,4,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCustomerRequest) Reset() {
	*x = CreateCustomerRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCustomerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCustomerRequest) ProtoMessage() {}

func (x *CreateCustomerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCustomerRequest.ProtoReflect.Descriptor instead.
func (*CreateCustomerRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{39}
}

func (x *CreateCustomerRequest) GetSub() string {
	if x != nil {
		return x.Sub
	}
	return ""
}

func (x *CreateCustomerRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *CreateCustomerRequest) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *CreateCustomerRequest) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *CreateCustomerRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateCustomerRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

type CreateCustomerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Customer      *Customer              `protobuf:"bytes,1,opt,name=customer,proto3" json:"customer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCustomerResponse) Reset() {
	*x = CreateCustomerResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCustomerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCustomerResponse) ProtoMessage() {}

func (x *CreateCustomerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCustomerResponse.ProtoReflect.Descriptor instead.
func (*CreateCustomerResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{40}
}

func (x *CreateCustomerResponse) GetCustomer() *Customer {
	if x != nil {
		return x.Customer
	}
	return nil
}

type CreateAddressRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    int64                  `protobuf:"varint,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	AddressLine1  string                 `protobuf:"bytes,2,opt,name=address_line1,json=addressLine1,proto3" json:"address_line1,omitempty"`
	AddressLine2  string                 `protobuf:"bytes,3,opt,name=address_line2,json=addressLine2,proto3" json:"address_line2,omitempty"`
	City          string                 `protobuf:"bytes,4,opt,name=city,proto3" json:"city,omitempty"`
	State         string                 `protobuf:"bytes,5,opt,name=state,proto3" json:"state,omitempty"`
	Country       string                 `protobuf:"bytes,6,opt,name=country,proto3" json:"country,omitempty"`
	ZipCode       string                 `protobuf:"bytes,7,opt,name=zip_code,json=zipCode,proto3" json:"zip_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAddressRequest) Reset() {
	*x = CreateAddressRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAddressRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAddressRequest) ProtoMessage() {}

func (x *CreateAddressRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAddressRequest.ProtoReflect.Descriptor instead.
func (*CreateAddressRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{41}
}

func (x *CreateAddressRequest) GetCustomerId() int64 {
	if x != nil {
		return x.CustomerId
	}
	return 0
}

func (x *CreateAddressRequest) GetAddressLine1() string {
	if x != nil {
		return x.AddressLine1
	}
	return ""
}

func (x *CreateAddressRequest) GetAddressLine2() string {
	if x != nil {
		return x.AddressLine2
	}
	return ""
}

func (x *CreateAddressRequest) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *CreateAddressRequest) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *CreateAddressRequest) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *CreateAddressRequest) GetZipCode() string {
	if x != nil {
		return x.ZipCode
	}
	return ""
}

type CreateAddressResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       *Address               `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAddressResponse) Reset() {
	*x = CreateAddressResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAddressResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAddressResponse) ProtoMessage() {}

func (x *CreateAddressResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAddressResponse.ProtoReflect.Descriptor instead.
func (*CreateAddressResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{42}
}

func (x *CreateAddressResponse) GetAddress() *Address {
	if x != nil {
		return x.Address
	}
	return nil
}

type CreateReferenceDataRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DataType      ReferenceDataType      `protobuf:"varint,1,opt,name=data_type,json=dataType,proto3,enum=bookstore.v1.ReferenceDataType" json:"data_type,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateReferenceDataRequest) Reset() {
	*x = CreateReferenceDataRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReferenceDataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReferenceDataRequest) ProtoMessage() {}

func (x *CreateReferenceDataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReferenceDataRequest.ProtoReflect.Descriptor instead.
func (*CreateReferenceDataRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{43}
}

func (x *CreateReferenceDataRequest) GetDataType() ReferenceDataType {
	if x != nil {
		return x.DataType
	}
	return ReferenceDataType_REFERENCE_DATA_TYPE_UNSPECIFIED
}

func (x *CreateReferenceDataRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type CreateReferenceDataResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *ReferenceDataItem     `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateReferenceDataResponse) Reset() {
	*x = CreateReferenceDataResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReferenceDataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReferenceDataResponse) ProtoMessage() {}

func (x *CreateReferenceDataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReferenceDataResponse.ProtoReflect.Descriptor instead.
func (*CreateReferenceDataResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{44}
}

func (x *CreateReferenceDataResponse) GetItem() *ReferenceDataItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type ListReferenceDataRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DataType      ReferenceDataType      `protobuf:"varint,1,opt,name=data_type,json=dataType,proto3,enum=bookstore.v1.ReferenceDataType" json:"data_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReferenceDataRequest) Reset() {
	*x = ListReferenceDataRequest{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReferenceDataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReferenceDataRequest) ProtoMessage() {}

func (x *ListReferenceDataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReferenceDataRequest.ProtoReflect.Descriptor instead.
func (*ListReferenceDataRequest) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{45}
}

func (x *ListReferenceDataRequest) GetDataType() ReferenceDataType {
	if x != nil {
		return x.DataType
	}
	return ReferenceDataType_REFERENCE_DATA_TYPE_UNSPECIFIED
}

type ListReferenceDataResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ReferenceDataItem   `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReferenceDataResponse) Reset() {
	*x = ListReferenceDataResponse{}
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReferenceDataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReferenceDataResponse) ProtoMessage() {}

func (x *ListReferenceDataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_bookstore_v1_bookstore_service_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReferenceDataResponse.ProtoReflect.Descriptor instead.
func (*ListReferenceDataResponse) Descriptor() ([]byte, []int) {
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP(), []int{46}
}

func (x *ListReferenceDataResponse) GetItems() []*ReferenceDataItem {
	if x != nil {
		return x.Items
	}
	return nil
}

var File_proto_bookstore_v1_bookstore_service_proto protoreflect.FileDescriptor

const file_proto_bookstore_v1_bookstore_service_proto_rawDesc = "" +
	"\n" +
	"*proto/bookstore/v1/bookstore_service.proto\x12\fbookstore.v1\"\xec\x02\n" +
	"\x04Book\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06author\x18\x03 \x01(\tR\x06author\x12\x12\n" +
	"\x04isbn\x18\x04 \x01(\tR\x04isbn\x12\x12\n" +
	"\x04year\x18\x05 \x01(\x05R\x04year\x12!\n" +
	"\fpublisher_id\x18\x06 \x01(\x03R\vpublisherId\x12 \n" +
	"\fbook_type_id\x18\a \x01(\x03R\n" +
	"bookTypeId\x12\x19\n" +
	"\bgenre_id\x18\b \x01(\x03R\agenreId\x12!\n" +
	"\fcondition_id\x18\t \x01(\x03R\vconditionId\x12\x1f\n" +
	"\vprice_minor\x18\n" +
	" \x01(\x03R\n" +
	"priceMinor\x12\x1a\n" +
	"\bquantity\x18\v \x01(\x05R\bquantity\x12\x18\n" +
	"\asummary\x18\f \x01(\tR\asummary\x12&\n" +
	"\x0fcover_image_url\x18\r \x01(\tR\rcoverImageUrl\"z\n" +
	"\tOrderItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x17\n" +
	"\abook_id\x18\x02 \x01(\x03R\x06bookId\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12(\n" +
	"\x10unit_price_minor\x18\x04 \x01(\x03R\x0eunitPriceMinor\"\xe7\x02\n" +
	"\x05Order\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\x03R\n" +
	"customerId\x12\x1d\n" +
	"\n" +
	"address_id\x18\x03 \x01(\x03R\taddressId\x12,\n" +
	"\x12delivery_date_unix\x18\x04 \x01(\x03R\x10deliveryDateUnix\x121\n" +
	"\x06status\x18\x05 \x01(\x0e2\x19.bookstore.v1.OrderStatusR\x06status\x12-\n" +
	"\x05items\x18\x06 \x03(\v2\x17.bookstore.v1.OrderItemR\x05items\x12&\n" +
	"\x0fsub_total_minor\x18\a \x01(\x03R\rsubTotalMinor\x12\x1b\n" +
	"\ttax_minor\x18\b \x01(\x03R\btaxMinor\x12\x1f\n" +
	"\vtotal_minor\x18\t \x01(\x03R\n" +
	"totalMinor\x12\x18\n" +
	"\aversion\x18\n" +
	" \x01(\x03R\aversion\"X\n" +
	"\rTimelineEvent\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\x12\x1b\n" +
	"\tunix_time\x18\x03 \x01(\x03R\bunixTime\"\xb4\x03\n" +
	"\x05Offer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\x03R\n" +
	"customerId\x12\x1b\n" +
	"\tbook_name\x18\x03 \x01(\tR\bbookName\x12\x16\n" +
	"\x06author\x18\x04 \x01(\tR\x06author\x12\x12\n" +
	"\x04isbn\x18\x05 \x01(\tR\x04isbn\x12\x19\n" +
	"\bgenre_id\x18\x06 \x01(\x03R\agenreId\x12!\n" +
	"\fcondition_id\x18\a \x01(\x03R\vconditionId\x12!\n" +
	"\fpublisher_id\x18\b \x01(\x03R\vpublisherId\x12 \n" +
	"\fbook_type_id\x18\t \x01(\x03R\n" +
	"bookTypeId\x12\x1f\n" +
	"\vprice_minor\x18\n" +
	" \x01(\x03R\n" +
	"priceMinor\x12\x18\n" +
	"\asummary\x18\v \x01(\tR\asummary\x12&\n" +
	"\x0ffront_image_url\x18\f \x01(\tR\rfrontImageUrl\x121\n" +
	"\x06status\x18\r \x01(\x0e2\x19.bookstore.v1.OfferStatusR\x06status\x12\x18\n" +
	"\acomment\x18\x0e \x01(\tR\acomment\"o\n" +
	"\bCartItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x17\n" +
	"\abook_id\x18\x02 \x01(\x03R\x06bookId\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12\x1e\n" +
	"\vwant_to_buy\x18\x04 \x01(\bR\twantToBuy\"k\n" +
	"\x04Cart\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12%\n" +
	"\x0ecorrelation_id\x18\x02 \x01(\tR\rcorrelationId\x12,\n" +
	"\x05items\x18\x03 \x03(\v2\x16.bookstore.v1.CartItemR\x05items\"\xb0\x01\n" +
	"\bCustomer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x10\n" +
	"\x03sub\x18\x02 \x01(\tR\x03sub\x12\x1a\n" +
	"\busername\x18\x03 \x01(\tR\busername\x12\x1d\n" +
	"\n" +
	"first_name\x18\x04 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x05 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x06 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\a \x01(\tR\x05phone\"\x80\x02\n" +
	"\aAddress\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\x03R\n" +
	"customerId\x12#\n" +
	"\raddress_line1\x18\x03 \x01(\tR\faddressLine1\x12#\n" +
	"\raddress_line2\x18\x04 \x01(\tR\faddressLine2\x12\x12\n" +
	"\x04city\x18\x05 \x01(\tR\x04city\x12\x14\n" +
	"\x05state\x18\x06 \x01(\tR\x05state\x12\x18\n" +
	"\acountry\x18\a \x01(\tR\acountry\x12\x19\n" +
	"\bzip_code\x18\b \x01(\tR\azipCode\x12\x1b\n" +
	"\tis_active\x18\t \x01(\bR\bisActive\"u\n" +
	"\x11ReferenceDataItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12<\n" +
	"\tdata_type\x18\x02 \x01(\x0e2\x1f.bookstore.v1.ReferenceDataTypeR\bdataType\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\"@\n" +
	"\tOrderLine\x12\x17\n" +
	"\abook_id\x18\x01 \x01(\x03R\x06bookId\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x05R\bquantity\"\x83\x01\n" +
	"\x12CreateOrderRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\x03R\n" +
	"customerId\x12\x1d\n" +
	"\n" +
	"address_id\x18\x02 \x01(\x03R\taddressId\x12-\n" +
	"\x05lines\x18\x03 \x03(\v2\x17.bookstore.v1.OrderLineR\x05lines\"@\n" +
	"\x13CreateOrderResponse\x12)\n" +
	"\x05order\x18\x01 \x01(\v2\x13.bookstore.v1.OrderR\x05order\"\x83\x01\n" +
	"\x1aCreateOrderFromCartRequest\x12%\n" +
	"\x0ecorrelation_id\x18\x01 \x01(\tR\rcorrelationId\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\x03R\n" +
	"customerId\x12\x1d\n" +
	"\n" +
	"address_id\x18\x03 \x01(\x03R\taddressId\"H\n" +
	"\x1bCreateOrderFromCartResponse\x12)\n" +
	"\x05order\x18\x01 \x01(\v2\x13.bookstore.v1.OrderR\x05order\",\n" +
	"\x0fGetOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\x03R\aorderId\"v\n" +
	"\x10GetOrderResponse\x12)\n" +
	"\x05order\x18\x01 \x01(\v2\x13.bookstore.v1.OrderR\x05order\x127\n" +
	"\btimeline\x18\x02 \x03(\v2\x1b.bookstore.v1.TimelineEventR\btimeline\"Q\n" +
	"\x11ListOrdersRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\x03R\n" +
	"customerId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\"A\n" +
	"\x12ListOrdersResponse\x12+\n" +
	"\x06orders\x18\x01 \x03(\v2\x13.bookstore.v1.OrderR\x06orders\"\x80\x01\n" +
	"\x18UpdateOrderStatusRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\x03R\aorderId\x121\n" +
	"\x06status\x18\x02 \x01(\x0e2\x19.bookstore.v1.OrderStatusR\x06status\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"F\n" +
	"\x19UpdateOrderStatusResponse\x12)\n" +
	"\x05order\x18\x01 \x01(\v2\x13.bookstore.v1.OrderR\x05order\"\xe9\x02\n" +
	"\x11CreateBookRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06author\x18\x02 \x01(\tR\x06author\x12\x12\n" +
	"\x04isbn\x18\x03 \x01(\tR\x04isbn\x12\x12\n" +
	"\x04year\x18\x04 \x01(\x05R\x04year\x12!\n" +
	"\fpublisher_id\x18\x05 \x01(\x03R\vpublisherId\x12 \n" +
	"\fbook_type_id\x18\x06 \x01(\x03R\n" +
	"bookTypeId\x12\x19\n" +
	"\bgenre_id\x18\a \x01(\x03R\agenreId\x12!\n" +
	"\fcondition_id\x18\b \x01(\x03R\vconditionId\x12\x1f\n" +
	"\vprice_minor\x18\t \x01(\x03R\n" +
	"priceMinor\x12\x1a\n" +
	"\bquantity\x18\n" +
	" \x01(\x05R\bquantity\x12\x18\n" +
	"\asummary\x18\v \x01(\tR\asummary\x12&\n" +
	"\x0fcover_image_url\x18\f \x01(\tR\rcoverImageUrl\"<\n" +
	"\x12CreateBookResponse\x12&\n" +
	"\x04book\x18\x01 \x01(\v2\x12.bookstore.v1.BookR\x04book\")\n" +
	"\x0eGetBookRequest\x12\x17\n" +
	"\abook_id\x18\x01 \x01(\x03R\x06bookId\"9\n" +
	"\x0fGetBookResponse\x12&\n" +
	"\x04book\x18\x01 \x01(\v2\x12.bookstore.v1.BookR\x04book\"S\n" +
	"\x10ListBooksRequest\x12\"\n" +
	"\ronly_in_stock\x18\x01 \x01(\bR\vonlyInStock\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\"=\n" +
	"\x11ListBooksResponse\x12(\n" +
	"\x05books\x18\x01 \x03(\v2\x12.bookstore.v1.BookR\x05books\"\xe4\x02\n" +
	"\x12SubmitOfferRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\x03R\n" +
	"customerId\x12\x1b\n" +
	"\tbook_name\x18\x02 \x01(\tR\bbookName\x12\x16\n" +
	"\x06author\x18\x03 \x01(\tR\x06author\x12\x12\n" +
	"\x04isbn\x18\x04 \x01(\tR\x04isbn\x12\x19\n" +
	"\bgenre_id\x18\x05 \x01(\x03R\agenreId\x12!\n" +
	"\fcondition_id\x18\x06 \x01(\x03R\vconditionId\x12!\n" +
	"\fpublisher_id\x18\a \x01(\x03R\vpublisherId\x12 \n" +
	"\fbook_type_id\x18\b \x01(\x03R\n" +
	"bookTypeId\x12\x1f\n" +
	"\vprice_minor\x18\t \x01(\x03R\n" +
	"priceMinor\x12\x18\n" +
	"\asummary\x18\n" +
	" \x01(\tR\asummary\x12&\n" +
	"\x0ffront_image_url\x18\v \x01(\tR\rfrontImageUrl\"@\n" +
	"\x13SubmitOfferResponse\x12)\n" +
	"\x05offer\x18\x01 \x01(\v2\x13.bookstore.v1.OfferR\x05offer\"\x84\x01\n" +
	"\x11ListOffersRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\x03R\n" +
	"customerId\x121\n" +
	"\x06status\x18\x02 \x01(\x0e2\x19.bookstore.v1.OfferStatusR\x06status\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"A\n" +
	"\x12ListOffersResponse\x12+\n" +
	"\x06offers\x18\x01 \x03(\v2\x13.bookstore.v1.OfferR\x06offers\"J\n" +
	"\x13ApproveOfferRequest\x12\x19\n" +
	"\boffer_id\x18\x01 \x01(\x03R\aofferId\x12\x18\n" +
	"\acomment\x18\x02 \x01(\tR\acomment\"A\n" +
	"\x14ApproveOfferResponse\x12)\n" +
	"\x05offer\x18\x01 \x01(\v2\x13.bookstore.v1.OfferR\x05offer\"I\n" +
	"\x12RejectOfferRequest\x12\x19\n" +
	"\boffer_id\x18\x01 \x01(\x03R\aofferId\x12\x18\n" +
	"\acomment\x18\x02 \x01(\tR\acomment\"@\n" +
	"\x13RejectOfferResponse\x12)\n" +
	"\x05offer\x18\x01 \x01(\v2\x13.bookstore.v1.OfferR\x05offer\"\x8e\x01\n" +
	"\x10AddToCartRequest\x12%\n" +
	"\x0ecorrelation_id\x18\x01 \x01(\tR\rcorrelationId\x12\x17\n" +
	"\abook_id\x18\x02 \x01(\x03R\x06bookId\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12\x1e\n" +
	"\vwant_to_buy\x18\x04 \x01(\bR\twantToBuy\";\n" +
	"\x11AddToCartResponse\x12&\n" +
	"\x04cart\x18\x01 \x01(\v2\x12.bookstore.v1.CartR\x04cart\"7\n" +
	"\x0eGetCartRequest\x12%\n" +
	"\x0ecorrelation_id\x18\x01 \x01(\tR\rcorrelationId\"9\n" +
	"\x0fGetCartResponse\x12&\n" +
	"\x04cart\x18\x01 \x01(\v2\x12.bookstore.v1.CartR\x04cart\"\xad\x01\n" +
	"\x15CreateCustomerRequest\x12\x10\n" +
	"\x03sub\x18\x01 \x01(\tR\x03sub\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12\x1d\n" +
	"\n" +
	"first_name\x18\x03 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x04 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\"L\n" +
	"\x16CreateCustomerResponse\x122\n" +
	"\bcustomer\x18\x01 \x01(\v2\x16.bookstore.v1.CustomerR\bcustomer\"\xe0\x01\n" +
	"\x14CreateAddressRequest\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\x03R\n" +
	"customerId\x12#\n" +
	"\raddress_line1\x18\x02 \x01(\tR\faddressLine1\x12#\n" +
	"\raddress_line2\x18\x03 \x01(\tR\faddressLine2\x12\x12\n" +
	"\x04city\x18\x04 \x01(\tR\x04city\x12\x14\n" +
	"\x05state\x18\x05 \x01(\tR\x05state\x12\x18\n" +
	"\acountry\x18\x06 \x01(\tR\acountry\x12\x19\n" +
	"\bzip_code\x18\a \x01(\tR\azipCode\"H\n" +
	"\x15CreateAddressResponse\x12/\n" +
	"\aaddress\x18\x01 \x01(\v2\x15.bookstore.v1.AddressR\aaddress\"n\n" +
	"\x1aCreateReferenceDataRequest\x12<\n" +
	"\tdata_type\x18\x01 \x01(\x0e2\x1f.bookstore.v1.ReferenceDataTypeR\bdataType\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"R\n" +
	"\x1bCreateReferenceDataResponse\x123\n" +
	"\x04item\x18\x01 \x01(\v2\x1f.bookstore.v1.ReferenceDataItemR\x04item\"X\n" +
	"\x18ListReferenceDataRequest\x12<\n" +
	"\tdata_type\x18\x01 \x01(\x0e2\x1f.bookstore.v1.ReferenceDataTypeR\bdataType\"R\n" +
	"\x19ListReferenceDataResponse\x125\n" +
	"\x05items\x18\x01 \x03(\v2\x1f.bookstore.v1.ReferenceDataItemR\x05items*\x96\x01\n" +
	"\vOrderStatus\x12\x1c\n" +
	"\x18ORDER_STATUS_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14ORDER_STATUS_PENDING\x10\x01\x12\x18\n" +
	"\x14ORDER_STATUS_SHIPPED\x10\x02\x12\x1a\n" +
	"\x16ORDER_STATUS_DELIVERED\x10\x03\x12\x19\n" +
	"\x15ORDER_STATUS_CANCELED\x10\x04*\x84\x01\n" +
	"\vOfferStatus\x12\x1c\n" +
	"\x18OFFER_STATUS_UNSPECIFIED\x10\x00\x12!\n" +
	"\x1dOFFER_STATUS_PENDING_APPROVAL\x10\x01\x12\x19\n" +
	"\x15OFFER_STATUS_APPROVED\x10\x02\x12\x19\n" +
	"\x15OFFER_STATUS_REJECTED\x10\x03*\xc0\x01\n" +
	"\x11ReferenceDataType\x12#\n" +
	"\x1fREFERENCE_DATA_TYPE_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19REFERENCE_DATA_TYPE_GENRE\x10\x01\x12!\n" +
	"\x1dREFERENCE_DATA_TYPE_CONDITION\x10\x02\x12!\n" +
	"\x1dREFERENCE_DATA_TYPE_PUBLISHER\x10\x03\x12!\n" +
	"\x1dREFERENCE_DATA_TYPE_BOOK_TYPE\x10\x042\xaa\f\n" +
	"\x10BookstoreService\x12R\n" +
	"\vCreateOrder\x12 .bookstore.v1.CreateOrderRequest\x1a!.bookstore.v1.CreateOrderResponse\x12j\n" +
	"\x13CreateOrderFromCart\x12(.bookstore.v1.CreateOrderFromCartRequest\x1a).bookstore.v1.CreateOrderFromCartResponse\x12I\n" +
	"\bGetOrder\x12\x1d.bookstore.v1.GetOrderRequest\x1a\x1e.bookstore.v1.GetOrderResponse\x12O\n" +
	"\n" +
	"ListOrders\x12\x1f.bookstore.v1.ListOrdersRequest\x1a .bookstore.v1.ListOrdersResponse\x12d\n" +
	"\x11UpdateOrderStatus\x12&.bookstore.v1.UpdateOrderStatusRequest\x1a'.bookstore.v1.UpdateOrderStatusResponse\x12O\n" +
	"\n" +
	"CreateBook\x12\x1f.bookstore.v1.CreateBookRequest\x1a .bookstore.v1.CreateBookResponse\x12F\n" +
	"\aGetBook\x12\x1c.bookstore.v1.GetBookRequest\x1a\x1d.bookstore.v1.GetBookResponse\x12L\n" +
	"\tListBooks\x12\x1e.bookstore.v1.ListBooksRequest\x1a\x1f.bookstore.v1.ListBooksResponse\x12R\n" +
	"\vSubmitOffer\x12 .bookstore.v1.SubmitOfferRequest\x1a!.bookstore.v1.SubmitOfferResponse\x12O\n" +
	"\n" +
	"ListOffers\x12\x1f.bookstore.v1.ListOffersRequest\x1a .bookstore.v1.ListOffersResponse\x12U\n" +
	"\fApproveOffer\x12!.bookstore.v1.ApproveOfferRequest\x1a\".bookstore.v1.ApproveOfferResponse\x12R\n" +
	"\vRejectOffer\x12 .bookstore.v1.RejectOfferRequest\x1a!.bookstore.v1.RejectOfferResponse\x12L\n" +
	"\tAddToCart\x12\x1e.bookstore.v1.AddToCartRequest\x1a\x1f.bookstore.v1.AddToCartResponse\x12F\n" +
	"\aGetCart\x12\x1c.bookstore.v1.GetCartRequest\x1a\x1d.bookstore.v1.GetCartResponse\x12[\n" +
	"\x0eCreateCustomer\x12#.bookstore.v1.CreateCustomerRequest\x1a$.bookstore.v1.CreateCustomerResponse\x12X\n" +
	"\rCreateAddress\x12\".bookstore.v1.CreateAddressRequest\x1a#.bookstore.v1.CreateAddressResponse\x12j\n" +
	"\x13CreateReferenceData\x12(.bookstore.v1.CreateReferenceDataRequest\x1a).bookstore.v1.CreateReferenceDataResponse\x12d\n" +
	"\x11ListReferenceData\x12&.bookstore.v1.ListReferenceDataRequest\x1a'.bookstore.v1.ListReferenceDataResponseBJZHgithub.com/vladislavdragonenkov/bookstore/proto/bookstore/v1;bookstorev1b\x06proto3"

var (
	file_proto_bookstore_v1_bookstore_service_proto_rawDescOnce sync.Once
	file_proto_bookstore_v1_bookstore_service_proto_rawDescData []byte
)

func file_proto_bookstore_v1_bookstore_service_proto_rawDescGZIP() []byte {
	file_proto_bookstore_v1_bookstore_service_proto_rawDescOnce.Do(func() {
		file_proto_bookstore_v1_bookstore_service_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_bookstore_v1_bookstore_service_proto_rawDesc), len(file_proto_bookstore_v1_bookstore_service_proto_rawDesc)))
	})
	return file_proto_bookstore_v1_bookstore_service_proto_rawDescData
}

var file_proto_bookstore_v1_bookstore_service_proto_enumTypes = make([]protoimpl.EnumInfo, 3)
var file_proto_bookstore_v1_bookstore_service_proto_msgTypes = make([]protoimpl.MessageInfo, 47)
var file_proto_bookstore_v1_bookstore_service_proto_goTypes = []any{
	(OrderStatus)(0),                    // 0: bookstore.v1.OrderStatus
	(OfferStatus)(0),                    // 1: bookstore.v1.OfferStatus
	(ReferenceDataType)(0),              // 2: bookstore.v1.ReferenceDataType
	(*Book)(nil),                        // 3: bookstore.v1.Book
	(*OrderItem)(nil),                   // 4: bookstore.v1.OrderItem
	(*Order)(nil),                       // 5: bookstore.v1.Order
	(*TimelineEvent)(nil),               // 6: bookstore.v1.TimelineEvent
	(*Offer)(nil),                       // 7: bookstore.v1.Offer
	(*CartItem)(nil),                    // 8: bookstore.v1.CartItem
	(*Cart)(nil),                        // 9: bookstore.v1.Cart
	(*Customer)(nil),                    // 10: bookstore.v1.Customer
	(*Address)(nil),                     // 11: bookstore.v1.Address
	(*ReferenceDataItem)(nil),           // 12: bookstore.v1.ReferenceDataItem
	(*OrderLine)(nil),                   // 13: bookstore.v1.OrderLine
	(*CreateOrderRequest)(nil),          // 14: bookstore.v1.CreateOrderRequest
	(*CreateOrderResponse)(nil),         // 15: bookstore.v1.CreateOrderResponse
	(*CreateOrderFromCartRequest)(nil),  // 16: bookstore.v1.CreateOrderFromCartRequest
	(*CreateOrderFromCartResponse)(nil), // 17: bookstore.v1.CreateOrderFromCartResponse
	(*GetOrderRequest)(nil),             // 18: bookstore.v1.GetOrderRequest
	(*GetOrderResponse)(nil),            // 19: bookstore.v1.GetOrderResponse
	(*ListOrdersRequest)(nil),           // 20: bookstore.v1.ListOrdersRequest
	(*ListOrdersResponse)(nil),          // 21: bookstore.v1.ListOrdersResponse
	(*UpdateOrderStatusRequest)(nil),    // 22: bookstore.v1.UpdateOrderStatusRequest
	(*UpdateOrderStatusResponse)(nil),   // 23: bookstore.v1.UpdateOrderStatusResponse
	(*CreateBookRequest)(nil),           // 24: bookstore.v1.CreateBookRequest
	(*CreateBookResponse)(nil),          // 25: bookstore.v1.CreateBookResponse
	(*GetBookRequest)(nil),              // 26: bookstore.v1.GetBookRequest
	(*GetBookResponse)(nil),             // 27: bookstore.v1.GetBookResponse
	(*ListBooksRequest)(nil),            // 28: bookstore.v1.ListBooksRequest
	(*ListBooksResponse)(nil),           // 29: bookstore.v1.ListBooksResponse
	(*SubmitOfferRequest)(nil),          // 30: bookstore.v1.SubmitOfferRequest
	(*SubmitOfferResponse)(nil),         // 31: bookstore.v1.SubmitOfferResponse
	(*ListOffersRequest)(nil),           // 32: bookstore.v1.ListOffersRequest
	(*ListOffersResponse)(nil),          // 33: bookstore.v1.ListOffersResponse
	(*ApproveOfferRequest)(nil),         // 34: bookstore.v1.ApproveOfferRequest
	(*ApproveOfferResponse)(nil),        // 35: bookstore.v1.ApproveOfferResponse
	(*RejectOfferRequest)(nil),          // 36: bookstore.v1.RejectOfferRequest
	(*RejectOfferResponse)(nil),         // 37: bookstore.v1.RejectOfferResponse
	(*AddToCartRequest)(nil),            // 38: bookstore.v1.AddToCartRequest
	(*AddToCartResponse)(nil),           // 39: bookstore.v1.AddToCartResponse
	(*GetCartRequest)(nil),              // 40: bookstore.v1.GetCartRequest
	(*GetCartResponse)(nil),             // 41: bookstore.v1.GetCartResponse
	(*CreateCustomerRequest)(nil),       // 42: bookstore.v1.CreateCustomerRequest
	(*CreateCustomerResponse)(nil),      // 43: bookstore.v1.CreateCustomerResponse
	(*CreateAddressRequest)(nil),        // 44: bookstore.v1.CreateAddressRequest
	(*CreateAddressResponse)(nil),       // 45: bookstore.v1.CreateAddressResponse
	(*CreateReferenceDataRequest)(nil),  // 46: bookstore.v1.CreateReferenceDataRequest
	(*CreateReferenceDataResponse)(nil), // 47: bookstore.v1.CreateReferenceDataResponse
	(*ListReferenceDataRequest)(nil),    // 48: bookstore.v1.ListReferenceDataRequest
	(*ListReferenceDataResponse)(nil),   // 49: bookstore.v1.ListReferenceDataResponse
}
var file_proto_bookstore_v1_bookstore_service_proto_depIdxs = []int32{
	0,  // 0: bookstore.v1.Order.status:type_name -> bookstore.v1.OrderStatus
	4,  // 1: bookstore.v1.Order.items:type_name -> bookstore.v1.OrderItem
	1,  // 2: bookstore.v1.Offer.status:type_name -> bookstore.v1.OfferStatus
	8,  // 3: bookstore.v1.Cart.items:type_name -> bookstore.v1.CartItem
	2,  // 4: bookstore.v1.ReferenceDataItem.data_type:type_name -> bookstore.v1.ReferenceDataType
	13, // 5: bookstore.v1.CreateOrderRequest.lines:type_name -> bookstore.v1.OrderLine
	5,  // 6: bookstore.v1.CreateOrderResponse.order:type_name -> bookstore.v1.Order
	5,  // 7: bookstore.v1.CreateOrderFromCartResponse.order:type_name -> bookstore.v1.Order
	5,  // 8: bookstore.v1.GetOrderResponse.order:type_name -> bookstore.v1.Order
	6,  // 9: bookstore.v1.GetOrderResponse.timeline:type_name -> bookstore.v1.TimelineEvent
	5,  // 10: bookstore.v1.ListOrdersResponse.orders:type_name -> bookstore.v1.Order
	0,  // 11: bookstore.v1.UpdateOrderStatusRequest.status:type_name -> bookstore.v1.OrderStatus
	5,  // 12: bookstore.v1.UpdateOrderStatusResponse.order:type_name -> bookstore.v1.Order
	3,  // 13: bookstore.v1.CreateBookResponse.book:type_name -> bookstore.v1.Book
	3,  // 14: bookstore.v1.GetBookResponse.book:type_name -> bookstore.v1.Book
	3,  // 15: bookstore.v1.ListBooksResponse.books:type_name -> bookstore.v1.Book
	7,  // 16: bookstore.v1.SubmitOfferResponse.offer:type_name -> bookstore.v1.Offer
	1,  // 17: bookstore.v1.ListOffersRequest.status:type_name -> bookstore.v1.OfferStatus
	7,  // 18: bookstore.v1.ListOffersResponse.offers:type_name -> bookstore.v1.Offer
	7,  // 19: bookstore.v1.ApproveOfferResponse.offer:type_name -> bookstore.v1.Offer
	7,  // 20: bookstore.v1.RejectOfferResponse.offer:type_name -> bookstore.v1.Offer
	9,  // 21: bookstore.v1.AddToCartResponse.cart:type_name -> bookstore.v1.Cart
	9,  // 22: bookstore.v1.GetCartResponse.cart:type_name -> bookstore.v1.Cart
	10, // 23: bookstore.v1.CreateCustomerResponse.customer:type_name -> bookstore.v1.Customer
	11, // 24: bookstore.v1.CreateAddressResponse.address:type_name -> bookstore.v1.Address
	2,  // 25: bookstore.v1.CreateReferenceDataRequest.data_type:type_name -> bookstore.v1.ReferenceDataType
	12, // 26: bookstore.v1.CreateReferenceDataResponse.item:type_name -> bookstore.v1.ReferenceDataItem
	2,  // 27: bookstore.v1.ListReferenceDataRequest.data_type:type_name -> bookstore.v1.ReferenceDataType
	12, // 28: bookstore.v1.ListReferenceDataResponse.items:type_name -> bookstore.v1.ReferenceDataItem
	14, // 29: bookstore.v1.BookstoreService.CreateOrder:input_type -> bookstore.v1.CreateOrderRequest
	16, // 30: bookstore.v1.BookstoreService.CreateOrderFromCart:input_type -> bookstore.v1.CreateOrderFromCartRequest
	18, // 31: bookstore.v1.BookstoreService.GetOrder:input_type -> bookstore.v1.GetOrderRequest
	20, // 32: bookstore.v1.BookstoreService.ListOrders:input_type -> bookstore.v1.ListOrdersRequest
	22, // 33: bookstore.v1.BookstoreService.UpdateOrderStatus:input_type -> bookstore.v1.UpdateOrderStatusRequest
	24, // 34: bookstore.v1.BookstoreService.CreateBook:input_type -> bookstore.v1.CreateBookRequest
	26, // 35: bookstore.v1.BookstoreService.GetBook:input_type -> bookstore.v1.GetBookRequest
	28, // 36: bookstore.v1.BookstoreService.ListBooks:input_type -> bookstore.v1.ListBooksRequest
	30, // 37: bookstore.v1.BookstoreService.SubmitOffer:input_type -> bookstore.v1.SubmitOfferRequest
	32, // 38: bookstore.v1.BookstoreService.ListOffers:input_type -> bookstore.v1.ListOffersRequest
	34, // 39: bookstore.v1.BookstoreService.ApproveOffer:input_type -> bookstore.v1.ApproveOfferRequest
	36, // 40: bookstore.v1.BookstoreService.RejectOffer:input_type -> bookstore.v1.RejectOfferRequest
	38, // 41: bookstore.v1.BookstoreService.AddToCart:input_type -> bookstore.v1.AddToCartRequest
	40, // 42: bookstore.v1.BookstoreService.GetCart:input_type -> bookstore.v1.GetCartRequest
	42, // 43: bookstore.v1.BookstoreService.CreateCustomer:input_type -> bookstore.v1.CreateCustomerRequest
	44, // 44: bookstore.v1.BookstoreService.CreateAddress:input_type -> bookstore.v1.CreateAddressRequest
	46, // 45: bookstore.v1.BookstoreService.CreateReferenceData:input_type -> bookstore.v1.CreateReferenceDataRequest
	48, // 46: bookstore.v1.BookstoreService.ListReferenceData:input_type -> bookstore.v1.ListReferenceDataRequest
	15, // 47: bookstore.v1.BookstoreService.CreateOrder:output_type -> bookstore.v1.CreateOrderResponse
	17, // 48: bookstore.v1.BookstoreService.CreateOrderFromCart:output_type -> bookstore.v1.CreateOrderFromCartResponse
	19, // 49: bookstore.v1.BookstoreService.GetOrder:output_type -> bookstore.v1.GetOrderResponse
	21, // 50: bookstore.v1.BookstoreService.ListOrders:output_type -> bookstore.v1.ListOrdersResponse
	23, // 51: bookstore.v1.BookstoreService.UpdateOrderStatus:output_type -> bookstore.v1.UpdateOrderStatusResponse
	25, // 52: bookstore.v1.BookstoreService.CreateBook:output_type -> bookstore.v1.CreateBookResponse
	27, // 53: bookstore.v1.BookstoreService.GetBook:output_type -> bookstore.v1.GetBookResponse
	29, // 54: bookstore.v1.BookstoreService.ListBooks:output_type -> bookstore.v1.ListBooksResponse
	31, // 55: bookstore.v1.BookstoreService.SubmitOffer:output_type -> bookstore.v1.SubmitOfferResponse
	33, // 56: bookstore.v1.BookstoreService.ListOffers:output_type -> bookstore.v1.ListOffersResponse
	35, // 57: bookstore.v1.BookstoreService.ApproveOffer:output_type -> bookstore.v1.ApproveOfferResponse
	37, // 58: bookstore.v1.BookstoreService.RejectOffer:output_type -> bookstore.v1.RejectOfferResponse
	39, // 59: bookstore.v1.BookstoreService.AddToCart:output_type -> bookstore.v1.AddToCartResponse
	41, // 60: bookstore.v1.BookstoreService.GetCart:output_type -> bookstore.v1.GetCartResponse
	43, // 61: bookstore.v1.BookstoreService.CreateCustomer:output_type -> bookstore.v1.CreateCustomerResponse
	45, // 62: bookstore.v1.BookstoreService.CreateAddress:output_type -> bookstore.v1.CreateAddressResponse
	47, // 63: bookstore.v1.BookstoreService.CreateReferenceData:output_type -> bookstore.v1.CreateReferenceDataResponse
	49, // 64: bookstore.v1.BookstoreService.ListReferenceData:output_type -> bookstore.v1.ListReferenceDataResponse
	47, // [47:65] is the sub-list for method output_type
	29, // [29:47] is the sub-list for method input_type
	29, // [29:29] is the sub-list for extension type_name
	29, // [29:29] is the sub-list for extension extendee
	0,  // [0:29] is the sub-list for field type_name
}

func init() { file_proto_bookstore_v1_bookstore_service_proto_init() }
func file_proto_bookstore_v1_bookstore_service_proto_init() {
	if File_proto_bookstore_v1_bookstore_service_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_bookstore_v1_bookstore_service_proto_rawDesc), len(file_proto_bookstore_v1_bookstore_service_proto_rawDesc)),
			NumEnums:      3,
			NumMessages:   47,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_bookstore_v1_bookstore_service_proto_goTypes,
		DependencyIndexes: file_proto_bookstore_v1_bookstore_service_proto_depIdxs,
		EnumInfos:         file_proto_bookstore_v1_bookstore_service_proto_enumTypes,
		MessageInfos:      file_proto_bookstore_v1_bookstore_service_proto_msgTypes,
	}.Build()
	File_proto_bookstore_v1_bookstore_service_proto = out.File
	file_proto_bookstore_v1_bookstore_service_proto_goTypes = nil
	file_proto_bookstore_v1_bookstore_service_proto_depIdxs = nil
}
