package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/codearena/backend/conf"
	"github.com/codearena/backend/http"
	"github.com/codearena/backend/judge0"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/subm"
	"github.com/codearena/backend/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg := conf.FromEnv()

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.AwsRegion))
	if err != nil {
		log.Fatalf("unable to load AWS SDK config: %v", err)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	judgeClient := judge0.NewClient(judge0.Config{
		BaseURL: cfg.Judge0BaseUrl,
		ApiKey:  cfg.Judge0ApiKey,
		ApiHost: cfg.Judge0ApiHost,
	})

	submSrvc := subm.NewSubmissionSrvc(
		subm.NewDdbSubmRepo(ddbClient, cfg.SubmissionsTable),
		user.NewDdbUserRepo(ddbClient, cfg.UsersTable),
		problem.NewDdbProblemRepo(ddbClient, cfg.ProblemsTable),
		judgeClient,
	)

	httpServer := http.NewHttpServer(submSrvc, []byte(cfg.JwtKey))

	log.Printf("Starting server on %s", cfg.Address)
	err = httpServer.Start(cfg.Address)
	log.Printf("Server stopped with error: %v", err)
}
