// Package logging builds the logrus logger shared by the stores, the CLI and
// the HTTP API, with optional shipping to Logstash and Elasticsearch.
package logging

import (
	"fmt"
	"io"
	"net"
	"os"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

// AppName tags every shipped log record.
const AppName = "dietlog"

// Config selects the log level, output and shipping hooks.
type Config struct {
	Level        string    // logrus level name; empty means "info".
	Out          io.Writer // nil means os.Stderr.
	LogstashURL  string    // host:port of a Logstash UDP input; empty disables.
	ElasticURL   string    // Elasticsearch address; empty disables.
	ElasticIndex string    // index for the Elasticsearch hook.
}

// New returns a logger configured by cfg. A hook whose endpoint cannot be
// reached is skipped with a warning rather than failing startup.
func New(cfg Config) (*logrus.Logger, error) {
	logger := logrus.New()

	logger.Out = cfg.Out
	if logger.Out == nil {
		logger.Out = os.Stderr
	}

	level := logrus.InfoLevel
	if cfg.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if cfg.ElasticURL != "" {
		if err := addElasticHook(logger, cfg.ElasticURL, cfg.ElasticIndex, level); err != nil {
			logger.WithError(err).Warn("elasticsearch log hook disabled")
		}
	}

	if cfg.LogstashURL != "" {
		conn, err := net.Dial("udp", cfg.LogstashURL)
		if err != nil {
			logger.WithError(err).Warn("logstash log hook disabled")
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": AppName}))
			logger.Hooks.Add(hook)
		}
	}

	return logger, nil
}

func addElasticHook(logger *logrus.Logger, url, index string, level logrus.Level) error {
	if index == "" {
		index = AppName
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
	})
	if err != nil {
		return err
	}
	hook, err := elogrus.NewAsyncElasticHook(client, AppName, level, index)
	if err != nil {
		return err
	}
	logger.Hooks.Add(hook)
	return nil
}

// Discard returns a logger that writes nothing, for tests and quiet callers.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// Component returns an entry tagged with the component name.
func Component(logger logrus.FieldLogger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}
