package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"math-solver-api/internal/config"
	"math-solver-api/internal/handlers"
	"math-solver-api/pkg/lambda"
)

var solve lambda.HandlerFunc

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	config.ConfigureLogging(cfg)

	manager := lambda.GetContainerManager()
	if err := manager.Initialize(cfg); err != nil {
		logrus.Fatalf("Failed to initialize container: %v", err)
	}
	container, err := manager.GetContainer(context.Background())
	if err != nil {
		logrus.Fatalf("Failed to get container: %v", err)
	}
	solve = handlers.NewSolveHandler(container.SolverService).HandleSolve

	logrus.WithFields(logrus.Fields{
		"function":    config.GetServerlessConfig().FunctionName,
		"mode":        config.GetDeploymentMode(),
		"environment": cfg.Environment,
		"provider":    cfg.Completion.Provider,
	}).Info("Solve function initialized")
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.NewRequestFromAPIGateway(ctx, event)
	if req.BodyErr != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": req.RequestID,
			"method":     req.Method,
			"error":      req.BodyErr.Error(),
		}).Warn("Undecodable request body")
	}

	return solve(ctx, req).ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
