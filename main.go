package main

import (
	"github.com/AllenDang/giu"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/backend"
	"vincit.fi/photo-gallery/backend/gallery"
	"vincit.fi/photo-gallery/backend/lightbox"
	"vincit.fi/photo-gallery/backend/preloader"
	"vincit.fi/photo-gallery/common"
	"vincit.fi/photo-gallery/common/logger"
	"vincit.fi/photo-gallery/ui/giu"
)

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	photos, err := backend.LoadCatalog(params.CatalogPath())
	if err != nil {
		logger.Error.Fatal("Could not load catalog: ", err)
	}
	logger.Info.Printf("Catalog has %d images", photos.Len())

	brokers := backend.InitializeEventBrokers(params.EventBusQueueSize())
	services := backend.InitializeServices(params, photos, brokers)
	defer services.Close()

	session := gallery.NewSession(photos, lightbox.NewScrollFlag(), brokers.Broker)
	gui := ui.NewUi(params, session, brokers.Broker, services.ImageCache)

	broker := brokers.Broker
	broker.ConnectToGui(api.ShowError, gui.ShowError, gui.Schedule)
	broker.ConnectToGui(api.ImageExported, gui.ImageExported, gui.Schedule)
	broker.ConnectToGui(api.CastDeviceFound, gui.DeviceFound, gui.Schedule)
	broker.ConnectToGui(api.CastReady, gui.CastReady, gui.Schedule)
	broker.ConnectToGui(api.CastDevicesSearchDone, gui.CastFindDone, gui.Schedule)
	broker.ConnectToGui(api.GalleryCategoryChanged, gui.CategoryChanged, gui.Schedule)
	broker.ConnectToGui(api.GalleryViewModeChanged, gui.ViewModeChanged, gui.Schedule)
	broker.ConnectToGui(api.LightboxChanged, gui.LightboxChanged, gui.Schedule)
	broker.ConnectToGui(api.GalleryLoaded, giu.Update, gui.Schedule)

	ready := services.Preloader.Preload(photos.Images())
	preloader.HideWhenReady(ready, params.LoadingDelay(), session.FinishLoading)

	gui.Run()
}
