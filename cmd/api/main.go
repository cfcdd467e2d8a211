package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adityashm/data-analysis-dashboard/infrastructure/database/sqlite"
	"github.com/adityashm/data-analysis-dashboard/infrastructure/generator"
	"github.com/adityashm/data-analysis-dashboard/infrastructure/migration"
	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository"
	"github.com/adityashm/data-analysis-dashboard/internal/api"
	"github.com/adityashm/data-analysis-dashboard/internal/config"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/charting"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/seeding"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/summarizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := sqliteconn(ctx, cfg.Database)
	defer conn.Close()

	// As migrações rodam em uma conexão própria antes de qualquer consulta
	if err := migration.Run(cfg.Database.Path); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar as migrações do banco de dados")
	}

	recordRepo := repository.NewRecordRepository(conn)

	if cfg.Seed.OnStart {
		seeder := seeding.NewService(cfg.Seed, generator.NewSampleGenerator(), recordRepo)

		populated, err := seeder.EnsurePopulated(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao popular o banco com os dados de demonstração")
		}

		if populated {
			logrus.Info("Banco populado com os dados de demonstração")
		}
	}

	aggregator := aggregating.NewService(recordRepo)
	summarizer := summarizing.NewService(recordRepo)
	chartBuilder := charting.NewService()

	server, err := api.New(cfg, aggregator, summarizer, chartBuilder)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// sqliteconn abre o arquivo do banco de dados local
func sqliteconn(ctx context.Context, dbConfig config.Database) *sqlite.Connection {
	conn, err := sqlite.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o banco de dados SQLite")
	}

	logrus.WithFields(logrus.Fields{
		"path": dbConfig.Path,
	}).Info("Conexão com o SQLite estabelecida com sucesso")

	return conn
}
