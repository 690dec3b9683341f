package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/api"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/scheduler"
	"github.com/vfg2006/sales-target-api/internal/usecases/achieving"
	"github.com/vfg2006/sales-target-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	targetRepo := repository.NewSalesTargetRepository(pgConn)
	orderRepo := repository.NewSalesOrderRepository(pgConn)
	achievementRepo := repository.NewMonthlyAchievementRepository(pgConn)

	targetService := targeting.NewService(targetRepo)

	// Serviço de apuração de vendas com cache de meses fechados
	achievingService := achieving.NewService(orderRepo).WithCache(achievementRepo)

	dashboardService := dashboarding.NewService(targetService, achievingService)

	achievementSyncService := scheduler.NewAchievementSyncService(
		orderRepo,
		achievingService, // Implementa MonthConsolidator
		cfg,
	)

	if err := achievementSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de vendas")
	} else {
		logrus.Info("Agendador de consolidação de vendas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		targetService,
		dashboardService,
		achievementSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
