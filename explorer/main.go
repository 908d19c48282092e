package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/dataset"
	"bikeshare/explorer/config"
	"bikeshare/session"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

// initPublisher returns nil when publishing is disabled. The returned function closes the broker connection.
func initPublisher(publishingConfig communication.PublishingConfig) (session.Publisher, func(), error) {
	if !publishingConfig.Enabled {
		return nil, func() {}, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(publishingConfig.URL)
	if err != nil {
		return nil, nil, err
	}

	err = rabbitMQ.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{publishingConfig.Queue})
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, nil, err
	}

	closePublisher := func() {
		if err := rabbitMQ.KillBadBunny(); err != nil {
			log.Errorf("[explorer] error closing RabbitMQ: %s", err.Error())
		}
	}
	return communication.NewSummaryPublisher(rabbitMQ, publishingConfig), closePublisher, nil
}

func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	if err := InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
	}

	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[explorer] error loading config: %s", err.Error())
	}

	publisher, closePublisher, err := initPublisher(explorerConfig.Publishing)
	if err != nil {
		log.Fatalf("[explorer] error connecting to RabbitMQ: %s", err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	signalChannel := utils.GetSignalChannel()
	go func() {
		sig := <-signalChannel
		log.Infof("[explorer] signal %s received, bye!", sig)
		cancel()
		closePublisher()
		os.Exit(130)
	}()

	loader := dataset.NewLoader(explorerConfig.DataDir, explorerConfig.Cities, explorerConfig.Columns, explorerConfig.TimeLayout)
	explorerSession := session.NewSession(loader, publisher, os.Stdin, os.Stdout, session.Config{
		PageSize:       explorerConfig.PageSize,
		SeparatorWidth: explorerConfig.SeparatorWidth,
	})

	err = explorerSession.Run(ctx)
	cancel()
	closePublisher()
	if err != nil {
		log.Errorf("[explorer] session ended with error: %s", err.Error())
		os.Exit(1)
	}

	log.Debug("[explorer] Finish main.go")
}
