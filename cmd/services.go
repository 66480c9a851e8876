package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	brokerapp "ecommerce/application/broker"
	bvapp "ecommerce/application/brokervarejista"
	"ecommerce/application/common"
	"ecommerce/application/handlers"
	historicoapp "ecommerce/application/historico"
	importacaoapp "ecommerce/application/importacao"
	lojaapp "ecommerce/application/loja"
	usuarioapp "ecommerce/application/usuario"
	varejistaapp "ecommerce/application/varejista"
	"ecommerce/config"
	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence/mysql"
	"ecommerce/infrastructure/persistence/retry"
)

// Services is every application service wired over one database and one
// in-process event bus.
type Services struct {
	Bus *shared.EventBus

	Broker          *brokerapp.Service
	Varejista       *varejistaapp.Service
	Loja            *lojaapp.Service
	Usuario         *usuarioapp.Service
	Historico       *historicoapp.Service
	BrokerVarejista *bvapp.Service
	Importacao      *importacaoapp.Service
}

// OpenDatabase dials MySQL with the start-up retry policy and migrates the
// schema when configured to.
func OpenDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := NewMySQLConfig(cfg).ConnectWithRetry(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := mysql.AutoMigrate(db); err != nil {
			CloseDatabase(db)
			return nil, err
		}
		logger.Info("Database schema migrated")
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func NewServices(db *gorm.DB, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	bus := shared.NewEventBus()
	if err := handlers.Register(bus, logger); err != nil {
		return nil, err
	}

	uows := mysql.NewUnitOfWorkFactory(db, bus, retry.FromAppConfig(cfg))
	opts := []common.Option{
		common.WithStrictDocuments(cfg.Validation.StrictDocuments),
		common.WithBatchSize(cfg.Import.BatchSize),
	}

	brokers := mysql.NewBrokerRepository(db)
	varejistas := mysql.NewVarejistaRepository(db)
	lojas := mysql.NewLojaRepository(db)
	usuarios := mysql.NewUsuarioRepository(db)
	historicos := mysql.NewHistoricoRepository(db)
	vinculos := mysql.NewBrokerVarejistaRepository(db)
	detalhes := mysql.NewDetalheRepository(db)

	s := &Services{Bus: bus}
	var err error
	if s.Broker, err = brokerapp.NewService(brokers, uows, bus, logger); err != nil {
		return nil, fmt.Errorf("broker service: %w", err)
	}
	if s.Varejista, err = varejistaapp.NewService(varejistas, uows, logger, opts...); err != nil {
		return nil, fmt.Errorf("varejista service: %w", err)
	}
	if s.Loja, err = lojaapp.NewService(lojas, varejistas, uows, bus, logger, opts...); err != nil {
		return nil, fmt.Errorf("loja service: %w", err)
	}
	if s.Usuario, err = usuarioapp.NewService(usuarios, uows, logger, opts...); err != nil {
		return nil, fmt.Errorf("usuario service: %w", err)
	}
	if s.Historico, err = historicoapp.NewService(historicos, uows, bus, logger); err != nil {
		return nil, fmt.Errorf("historico service: %w", err)
	}
	if s.BrokerVarejista, err = bvapp.NewService(vinculos, brokers, varejistas, uows, logger); err != nil {
		return nil, fmt.Errorf("broker-varejista service: %w", err)
	}
	if s.Importacao, err = importacaoapp.NewService(detalhes, lojas, varejistas, uows, logger, opts...); err != nil {
		return nil, fmt.Errorf("importacao service: %w", err)
	}
	return s, nil
}
