package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/adapters/out/notification"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/adapters/out/postgres"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/commands"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/queries"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/services"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/ports"
)

// CompositionRoot wires the application graph: database, unit of work,
// scorer, notification sink, and the use case handlers built from them.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	scorer       *services.RankingScorer
	sink         ports.NotificationSink
	ledgerConfig commands.LedgerConfig
}

// NewCompositionRoot builds the graph from resolved configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	rankingConfig := services.DefaultRankingConfig()
	if config.RankingBaseScore > 0 {
		rankingConfig.BaseScore = config.RankingBaseScore
	}
	if config.RankingPremiumBoost > 0 {
		rankingConfig.PremiumBoost = config.RankingPremiumBoost
	}
	if config.RankingDecayPerDay > 0 {
		rankingConfig.DecayPerDay = config.RankingDecayPerDay
	}
	if config.RankingJitterMax > 0 {
		rankingConfig.JitterMax = config.RankingJitterMax
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		scorer:       services.NewRankingScorer(rankingConfig, nil),
		sink:         notification.NewSlogSink(logger),
		ledgerConfig: commands.LedgerConfig{UnmeteredPostings: config.UnmeteredPostings},
	}
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateListingCommandHandler(f, c.scorer, c.sink, c.ledgerConfig)
}

func (c *CompositionRoot) CreateSubmitRequestCommandHandler() commands.SubmitRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRequestCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateApproveRequestCommandHandler() commands.ApproveRequestCommandHandler {
	var f commands.ArbitrationUoWFactory = FuncArbitrationUoWFactory(func() commands.ArbitrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveRequestCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateRejectRequestCommandHandler() commands.RejectRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectRequestCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateAdvanceListingCommandHandler() commands.AdvanceListingCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceListingCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateReopenListingCommandHandler() commands.ReopenListingCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReopenListingCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateActivateGrantCommandHandler() commands.ActivateGrantCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewActivateGrantCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireGrantsCommandHandler() commands.ExpireGrantsCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireGrantsCommandHandler(f, c.sink)
}

func (c *CompositionRoot) CreateRecomputeRankingsCommandHandler() commands.RecomputeRankingsCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeRankingsCommandHandler(f, c.scorer)
}

func (c *CompositionRoot) CreateGetOpenListingsQueryHandler() queries.GetOpenListingsQueryHandler {
	return queries.NewGetOpenListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetListingRequestsQueryHandler() queries.GetListingRequestsQueryHandler {
	return queries.NewGetListingRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveGrantQueryHandler() queries.GetActiveGrantQueryHandler {
	return queries.NewGetActiveGrantQueryHandler(c.gormDB)
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncMarketUoWFactory func() commands.MarketUoW

func (f FuncMarketUoWFactory) Create() commands.MarketUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncArbitrationUoWFactory func() commands.ArbitrationUoW

func (f FuncArbitrationUoWFactory) Create() commands.ArbitrationUoW {
	return f()
}
