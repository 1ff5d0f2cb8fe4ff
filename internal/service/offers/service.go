package offers

import (
	"encoding/json"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	"github.com/vladislavdragonenkov/bookstore/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/bookstore/internal/metrics"
)

// Service описывает workflow предложений продавцов.
type Service interface {
	// Submit регистрирует новый оффер в статусе PendingApproval.
	Submit(params domain.OfferParams) (domain.Offer, error)
	// Approve принимает оффер и добавляет выкупаемую книгу в каталог.
	Approve(offerID int64, comment string) (domain.Offer, error)
	// Reject отклоняет оффер с комментарием модератора.
	Reject(offerID int64, comment string) (domain.Offer, error)
	// List возвращает офферы с фильтрами по продавцу и статусу.
	List(customerID int64, status domain.OfferStatus, limit int) ([]domain.Offer, error)
	// Get возвращает оффер по идентификатору.
	Get(offerID int64) (domain.Offer, error)
}

type service struct {
	offers    domain.OfferRepository
	books     domain.BookRepository
	customers domain.CustomerRepository
	outbox    domain.OutboxRepository
	logger    *log.Entry
	metrics   *metrics.StoreMetrics
}

// NewService создаёт рабочий экземпляр сервиса офферов.
func NewService(offers domain.OfferRepository, books domain.BookRepository, customers domain.CustomerRepository, outbox domain.OutboxRepository, logger *log.Entry) Service {
	svc := newService(offers, books, customers, outbox, logger)
	svc.metrics = metrics.NewStoreMetrics()
	return svc
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(offers domain.OfferRepository, books domain.BookRepository, customers domain.CustomerRepository, outbox domain.OutboxRepository, logger *log.Entry) Service {
	return newService(offers, books, customers, outbox, logger)
}

func newService(offers domain.OfferRepository, books domain.BookRepository, customers domain.CustomerRepository, outbox domain.OutboxRepository, logger *log.Entry) *service {
	if logger == nil {
		logger = log.New().WithField("component", "offers")
	}
	return &service{
		offers:    offers,
		books:     books,
		customers: customers,
		outbox:    outbox,
		logger:    logger,
	}
}

func (s *service) Submit(params domain.OfferParams) (domain.Offer, error) {
	if _, err := s.customers.Get(params.CustomerID); err != nil {
		return domain.Offer{}, err
	}

	offer, err := domain.NewOffer(params)
	if err != nil {
		return domain.Offer{}, err
	}

	created, err := s.offers.Create(offer)
	if err != nil {
		return domain.Offer{}, err
	}

	s.emitOfferEvent(&created, kafka.EventTypeOfferSubmitted)
	if s.metrics != nil {
		s.metrics.RecordOfferSubmitted()
	}
	s.logger.WithFields(log.Fields{
		"offer_id":    created.ID,
		"customer_id": created.CustomerID,
		"book_name":   created.BookName,
	}).Info("offer submitted")

	return created, nil
}

// Approve переводит оффер в Approved и заводит книгу в каталоге.
// Решение по офферу принимается один раз; повторный вызов даёт
// ErrOfferAlreadyDecided.
func (s *service) Approve(offerID int64, comment string) (domain.Offer, error) {
	offer, err := s.offers.Get(offerID)
	if err != nil {
		return domain.Offer{}, err
	}
	if err := offer.Approve(comment); err != nil {
		return domain.Offer{}, err
	}

	book, err := domain.NewBook(offer.ToBookParams())
	if err != nil {
		return domain.Offer{}, err
	}

	if err := s.offers.Save(offer); err != nil {
		return domain.Offer{}, err
	}
	created, err := s.books.Create(book)
	if err != nil {
		// Книга не завелась, оффер уже одобрен. Оставляем расследование
		// оператору: откатывать решение по офферу хуже, чем дозавести книгу.
		s.logger.WithError(err).WithField("offer_id", offer.ID).Error("failed to add approved book to catalog")
		return domain.Offer{}, err
	}

	s.emitOfferEvent(&offer, kafka.EventTypeOfferApproved)
	if s.metrics != nil {
		s.metrics.RecordOfferApproved()
	}
	s.logger.WithFields(log.Fields{
		"offer_id": offer.ID,
		"book_id":  created.ID,
	}).Info("offer approved")

	return offer, nil
}

func (s *service) Reject(offerID int64, comment string) (domain.Offer, error) {
	offer, err := s.offers.Get(offerID)
	if err != nil {
		return domain.Offer{}, err
	}
	if err := offer.Reject(comment); err != nil {
		return domain.Offer{}, err
	}
	if err := s.offers.Save(offer); err != nil {
		return domain.Offer{}, err
	}

	s.emitOfferEvent(&offer, kafka.EventTypeOfferRejected)
	if s.metrics != nil {
		s.metrics.RecordOfferRejected()
	}
	s.logger.WithFields(log.Fields{
		"offer_id": offer.ID,
		"comment":  comment,
	}).Info("offer rejected")

	return offer, nil
}

func (s *service) List(customerID int64, status domain.OfferStatus, limit int) ([]domain.Offer, error) {
	return s.offers.List(customerID, status, limit)
}

func (s *service) Get(offerID int64) (domain.Offer, error) {
	return s.offers.Get(offerID)
}

func (s *service) emitOfferEvent(offer *domain.Offer, eventType kafka.EventType) {
	metadata := map[string]interface{}{
		"book_name": offer.BookName,
		"ts":        time.Now().UTC().Format(time.RFC3339Nano),
	}
	if offer.Comment != "" {
		metadata["comment"] = offer.Comment
	}

	event := kafka.NewOfferEvent(eventType, offer.ID, offer.CustomerID, string(offer.Status), metadata)
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"offer_id": offer.ID,
			"event":    eventType,
		}).Error("marshal event failed")
		return
	}

	msg := domain.OutboxMessage{
		AggregateType: "offer",
		AggregateID:   strconv.FormatInt(offer.ID, 10),
		EventType:     string(eventType),
		Payload:       payload,
	}
	if _, err := s.outbox.Enqueue(msg); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"offer_id": offer.ID,
			"event":    eventType,
		}).Error("enqueue event failed")
	} else if s.metrics != nil {
		s.metrics.RecordOutboxEvent()
	}
}

var _ Service = (*service)(nil)
