package common

import (
	"flag"
	"time"
)

const (
	defaultLoadingDelay      = 500 * time.Millisecond
	defaultEventBusQueueSize = 1000
	defaultHttpPort          = 8080
)

type Params struct {
	catalogPath           string
	loadingDelay          time.Duration
	httpPort              int
	secret                string
	alwaysStartHttpServer bool
	downloadDir           string
	eventBusQueueSize     int
	logLevel              string
}

func NewEmptyParams() *Params {
	return &Params{
		catalogPath:           "",
		loadingDelay:          defaultLoadingDelay,
		httpPort:              defaultHttpPort,
		secret:                "",
		alwaysStartHttpServer: false,
		downloadDir:           "",
		eventBusQueueSize:     defaultEventBusQueueSize,
		logLevel:              "",
	}
}

func ParseParams() *Params {
	catalogPath := flag.String("catalog", "", "Catalog YAML file. Uses the built-in catalog when empty")
	loadingDelay := flag.Duration("loadingDelay", defaultLoadingDelay, "How long the loading screen stays after all images have been preloaded")
	httpPort := flag.Int("httpPort", defaultHttpPort, "HTTP Server port for Chrome Cast")
	secret := flag.String("secret", "", "Override default random secret for casting")
	alwaysStartHttpServer := flag.Bool("alwaysStartHttpServer", false, "Always start HTTP server. Not only when casting.")
	downloadDir := flag.String("downloadDir", "", "Directory for downloaded images. Asks for a directory when empty")
	eventBusQueueSize := flag.Int("eventBusQueueSize", defaultEventBusQueueSize, "Queue size of each event bus subscriber")
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, Trace")

	flag.Parse()

	return &Params{
		catalogPath:           *catalogPath,
		loadingDelay:          *loadingDelay,
		httpPort:              *httpPort,
		secret:                *secret,
		alwaysStartHttpServer: *alwaysStartHttpServer,
		downloadDir:           *downloadDir,
		eventBusQueueSize:     *eventBusQueueSize,
		logLevel:              *logLevel,
	}
}

func (s *Params) CatalogPath() string {
	return s.catalogPath
}

func (s *Params) LoadingDelay() time.Duration {
	return s.loadingDelay
}

func (s *Params) HttpPort() int {
	return s.httpPort
}

func (s *Params) Secret() string {
	return s.secret
}

func (s *Params) AlwaysStartHttpServer() bool {
	return s.alwaysStartHttpServer
}

func (s *Params) DownloadDir() string {
	return s.downloadDir
}

func (s *Params) EventBusQueueSize() int {
	return s.eventBusQueueSize
}

func (s *Params) LogLevel() string {
	return s.logLevel
}
