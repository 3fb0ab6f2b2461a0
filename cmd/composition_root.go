package cmd

import (
	"comptoirs/internal/adapters/out/postgres"
	"comptoirs/internal/core/application/usecases/commands"
	"comptoirs/internal/core/application/usecases/queries"
	"comptoirs/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	discountPolicy services.VolumeDiscountPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	discountPolicy, err := services.NewVolumeDiscountPolicyWithParams(
		config.DiscountThreshold,
		config.DiscountRate,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		discountPolicy: discountPolicy,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.discountPolicy)
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderLineCommandHandler(f)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetNotShippedOrdersQueryHandler() queries.GetNotShippedOrdersQueryHandler {
	return queries.NewGetNotShippedOrdersQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderInventoryUoWFactory func() commands.OrderInventoryUoW

func (f FuncOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	return f()
}
