// Command warmtransfer is the Lambda entry point for the Amazon Connect warm
// transfer function.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/config"
	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/handler"
	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/lambdautils"
	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/warmtransfer"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	conf, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Unable to load configuration")
	}
	log.SetLevel(conf.LogLevel)

	if err := conf.ResolveAPIKey(lambdautils.NewParameterStore(conf.Region)); err != nil {
		log.WithError(err).Error("Unable to resolve API key, requests will fail")
	}

	client := warmtransfer.NewClient(conf.APIKey, warmtransfer.WithLogger(log))
	lambda.Start(handler.New(client, log).Handle)
}
