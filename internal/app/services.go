package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bookstore/internal/service/checkout"
	grpcsvc "github.com/vladislavdragonenkov/bookstore/internal/service/grpc"
	"github.com/vladislavdragonenkov/bookstore/internal/service/offers"
)

// buildBookstoreService собирает доменные сервисы и gRPC-фасад поверх
// репозиториев.
func buildBookstoreService(deps runtimeDependencies, logger *log.Entry) *grpcsvc.BookstoreService {
	checkoutSvc := checkout.NewService(checkout.Deps{
		Customers: deps.customers,
		Addresses: deps.addresses,
		Books:     deps.books,
		Orders:    deps.orders,
		Carts:     deps.carts,
		Placer:    deps.placer,
		Outbox:    deps.outboxRepo,
		Timeline:  deps.timelineRepo,
		Logger:    logger.WithField("layer", "checkout"),
	})

	offersSvc := offers.NewService(
		deps.offers,
		deps.books,
		deps.customers,
		deps.outboxRepo,
		logger.WithField("layer", "offers"),
	)

	return grpcsvc.NewBookstoreService(grpcsvc.Deps{
		Checkout:  checkoutSvc,
		Offers:    offersSvc,
		Orders:    deps.orders,
		Books:     deps.books,
		Customers: deps.customers,
		Addresses: deps.addresses,
		Reference: deps.reference,
		Carts:     deps.carts,
		Timeline:  deps.timelineRepo,
		IdemRepo:  deps.idempotencyRepo,
		Logger:    logger.WithField("layer", "grpc"),
	})
}
