package backend

import (
	"net/http"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/backend/caster"
	"vincit.fi/photo-gallery/backend/catalog"
	"vincit.fi/photo-gallery/backend/export"
	"vincit.fi/photo-gallery/backend/imageloader"
	"vincit.fi/photo-gallery/backend/preloader"
	"vincit.fi/photo-gallery/common"
	"vincit.fi/photo-gallery/common/event"
	"vincit.fi/photo-gallery/common/logger"
)

type Services struct {
	Fetcher        api.ImageFetcher
	ImageLoader    api.ImageLoader
	ImageCache     api.ImageStore
	Preloader      *preloader.Preloader
	CasterInstance api.Caster
	Exporter       *export.Exporter
}

func (s *Services) Close() {
	defer s.CasterInstance.Close()
	defer s.ImageCache.Purge()
}

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// LoadCatalog reads the catalog document from path or falls back to the
// built-in catalog when no path is given.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		logger.Debug.Printf("Using built-in catalog")
		return catalog.BuiltIn()
	}
	return catalog.LoadFile(path)
}

func InitializeServices(params *common.Params, gallery *catalog.Catalog, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	fetcher := imageloader.NewFetcher(http.DefaultClient)
	imageLoader := imageloader.NewImageLoader(fetcher)
	imageCache := imageloader.NewImageCache(imageLoader)
	imageCache.Initialize(gallery.Images())

	services := &Services{
		Fetcher:        fetcher,
		ImageLoader:    imageLoader,
		ImageCache:     imageCache,
		Preloader:      preloader.NewPreloader(imageCache),
		CasterInstance: caster.NewCaster(params, brokers.Broker, imageCache),
		Exporter:       export.NewExporter(fetcher, brokers.Broker),
	}
	services.subscribe(brokers.Broker)
	logger.Debug.Printf("Services initialized")
	return services
}

func (s *Services) subscribe(broker *event.Broker) {
	broker.Subscribe(api.LightboxChanged, s.CasterInstance.CastImage)
	broker.Subscribe(api.CastDeviceSearch, s.CasterInstance.FindDevices)
	broker.Subscribe(api.CastDeviceSelect, s.CasterInstance.SelectDevice)
	broker.Subscribe(api.CastStop, s.CasterInstance.StopCasting)
	broker.Subscribe(api.ImageExportRequest, s.Exporter.ExportImage)
}
