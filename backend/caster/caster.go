package caster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	cast "github.com/AndreasAbdi/gochromecast"
	"github.com/AndreasAbdi/gochromecast/configs"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/hashicorp/mdns"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common"
	"vincit.fi/photo-gallery/common/event"
	"vincit.fi/photo-gallery/common/logger"
)

const (
	deviceSearchTimeout = time.Second * 30
	imageSendTimeout    = time.Second * 1
	launchTimeout       = time.Second * 5
	castDebounce        = time.Second * 1
	castService         = "_googlecast._tcp"
	canvasWidth         = 1920
	canvasHeight        = 1080
	blurSigma           = 10

	castImageEvent api.Topic = "caster-internal-cast-image"
)

var (
	canvasSize = apitype.SizeOf(canvasWidth, canvasHeight)

	errNoDevice = errors.New("no such device")
)

type Caster struct {
	secret                string
	port                  int
	devices               map[string]*DeviceEntry
	devicesMux            sync.Mutex
	sender                api.Sender
	selectedDevice        string
	server                *http.Server
	serverMux             sync.Mutex
	showBackground        bool
	imageCache            api.ImageStore
	alwaysStartHttpServer bool
	current               *api.LightboxCommand
	imageUpdateMux        sync.Mutex
	imageQueue            *api.LightboxCommand
	imageQueueMux         sync.Mutex
	imageQueueBroker      *event.Broker

	api.Caster
}

type DeviceEntry struct {
	name         string
	serviceEntry *mdns.ServiceEntry
	device       *cast.Device
	localAddr    net.IP
}

func NewCaster(params *common.Params, sender api.Sender, imageCache api.ImageStore) *Caster {
	c := &Caster{
		port:                  params.HttpPort(),
		alwaysStartHttpServer: params.AlwaysStartHttpServer(),
		secret:                resolveSecret(params.Secret()),
		devices:               map[string]*DeviceEntry{},
		sender:                sender,
		imageCache:            imageCache,
		showBackground:        true,
		imageQueueBroker:      event.InitBus(100),
	}

	c.imageQueueBroker.Subscribe(castImageEvent, c.castImageFromQueue)

	if params.AlwaysStartHttpServer() {
		c.StartServer(params.HttpPort())
	}

	return c
}

func resolveSecret(secret string) string {
	if secret == "" {
		if randomSecret, err := uuid.NewRandom(); err != nil {
			logger.Error.Panic("Could not initialize secret for casting", err)
			return ""
		} else {
			return randomSecret.String()
		}
	} else {
		return secret
	}
}

func (s *Caster) IsServerRunning() bool {
	s.serverMux.Lock()
	defer s.serverMux.Unlock()
	return s.server != nil
}

func (s *Caster) StartServer(port int) {
	s.serverMux.Lock()
	defer s.serverMux.Unlock()
	if s.server != nil {
		logger.Warn.Println("Server already running")
		return
	}

	logger.Info.Printf("Starting HTTP server at port %d", port)
	logger.Debug.Printf("Starting HTTP server:\n"+
		" * Port: %d\n"+
		" * Secret: %s", port, s.secret)
	s.port = port
	server := &http.Server{
		Addr:    ":" + strconv.Itoa(port),
		Handler: s.handler(),
	}
	s.server = server
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.sender.SendError("Error while initializing HTTP server", err)
			s.serverMux.Lock()
			if s.server == server {
				s.server = nil
			}
			s.serverMux.Unlock()
		}
	}()
}

func (s *Caster) StopServer() {
	s.serverMux.Lock()
	server := s.server
	s.server = nil
	s.serverMux.Unlock()

	if server != nil {
		logger.Info.Println("Shutting down HTTP server")
		if err := server.Shutdown(context.Background()); err != nil {
			s.sender.SendError("Error while shutting down HTTP server", err)
		}
	} else {
		logger.Debug.Println("No server running")
	}
}

// The secret is the only path prefix served so that the outside world
// can't choose what is served.
func (s *Caster) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/"+s.secret+"/status", s.statusHandler)
	mux.HandleFunc("/"+s.secret+"/", s.imageHandler)
	return mux
}

func (s *Caster) currentCommand() *api.LightboxCommand {
	s.imageUpdateMux.Lock()
	defer s.imageUpdateMux.Unlock()
	return s.current
}

func (s *Caster) setCurrent(command *api.LightboxCommand) {
	s.imageUpdateMux.Lock()
	defer s.imageUpdateMux.Unlock()
	s.current = command
}

func (s *Caster) imageHandler(responseWriter http.ResponseWriter, r *http.Request) {
	command := s.currentCommand()
	if command == nil || !command.Image.IsValid() {
		http.NotFound(responseWriter, r)
		return
	}

	logger.Debug.Printf("Sending image %s to Chromecast", command.Image)
	img, err := s.imageCache.GetScaled(command.Image, canvasSize)
	if err != nil || img == nil {
		logger.Warn.Printf("Could not load %s for casting: %s", command.Image, err)
		http.Error(responseWriter, "image not available", http.StatusNotFound)
		return
	}
	writeImageToResponse(responseWriter, img, s.isBackgroundShown())
}

func (s *Caster) isBackgroundShown() bool {
	s.imageQueueMux.Lock()
	defer s.imageQueueMux.Unlock()
	return s.showBackground
}

func (s *Caster) statusHandler(responseWriter http.ResponseWriter, r *http.Request) {
	command := s.currentCommand()
	if command == nil || !command.Image.IsValid() {
		http.NotFound(responseWriter, r)
		return
	}
	status := &CurrentImage{
		Id:                command.Image.Id(),
		CurrentImageIndex: command.Index,
		TotalImages:       command.Total,
		Title:             command.Image.Title(),
		Category:          command.Image.Category(),
		Description:       command.Image.Description(),
	}
	responseWriter.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(responseWriter).Encode(status); err != nil {
		logger.Error.Println("Failed to write status: ", err)
	}
}

func writeImageToResponse(responseWriter http.ResponseWriter, img image.Image, showBackground bool) {
	logger.Debug.Printf("Start writing image to response")
	img = resizedAndBlurImage(img, showBackground)

	buffer := new(bytes.Buffer)
	if err := jpeg.Encode(buffer, img, nil); err != nil {
		logger.Error.Println("Failed to encode image: ", err)
		http.Error(responseWriter, "encoding failed", http.StatusInternalServerError)
		return
	}

	responseWriter.Header().Set("Content-Type", "image/jpeg")
	responseWriter.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	if _, err := responseWriter.Write(buffer.Bytes()); err != nil {
		logger.Error.Println("Failed to write image: ", err)
	}
	logger.Debug.Printf("Image sent to Chromecast")
}

// resizedAndBlurImage centers the image on a full HD canvas. The rest of
// the canvas is either black or a blurred grayscale copy of the image.
func resizedAndBlurImage(srcImage image.Image, blurBackground bool) image.Image {
	logger.Debug.Print("Resizing to fit canvas...")
	fullHdCanvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	draw.Draw(fullHdCanvas, fullHdCanvas.Bounds(), &image.Uniform{C: black}, image.Point{}, draw.Src)

	if blurBackground {
		logger.Debug.Print("Blurring background...")
		background := imaging.Fill(srcImage, canvasWidth, canvasHeight, imaging.Center, imaging.Linear)
		background = imaging.Blur(background, blurSigma)
		background = imaging.Grayscale(background)
		draw.Draw(fullHdCanvas, fullHdCanvas.Bounds(), background, image.Point{}, draw.Src)
	}

	size := apitype.PointOfScaledToFit(srcImage.Bounds().Size(), canvasSize)
	resized := imaging.Resize(srcImage, size.Width(), size.Height(), imaging.Linear)
	offset := image.Pt((canvasWidth-size.Width())/2, (canvasHeight-size.Height())/2)
	target := image.Rectangle{Min: offset, Max: offset.Add(image.Pt(size.Width(), size.Height()))}
	draw.Draw(fullHdCanvas, target, resized, image.Point{}, draw.Src)

	return fullHdCanvas
}

// FindDevices starts an mDNS search in the background. Each found device is
// published on CastDeviceFound and the end of the search on
// CastDevicesSearchDone.
func (s *Caster) FindDevices() {
	s.devicesMux.Lock()
	s.devices = map[string]*DeviceEntry{}
	s.devicesMux.Unlock()

	entriesCh := make(chan *mdns.ServiceEntry, 4)
	go func() {
		for entry := range entriesCh {
			s.addDevice(entry)
		}
	}()

	go func() {
		defer close(entriesCh)
		if err := mdns.Query(&mdns.QueryParam{
			Service: castService,
			Timeout: deviceSearchTimeout,
			Entries: entriesCh,
		}); err != nil {
			s.sender.SendError("Error while searching for cast devices", err)
		}
		s.sender.SendToTopic(api.CastDevicesSearchDone)
	}()
}

func (s *Caster) addDevice(entry *mdns.ServiceEntry) {
	if !strings.Contains(entry.Name, castService) {
		return
	}
	deviceName := resolveDeviceName(entry)
	logger.Debug.Printf("Found device: %v", entry)

	// The local address must be resolved before connecting, the connection
	// objects keep it private afterwards.
	localAddr, err := resolveLocalAddress(entry)
	if err != nil {
		s.sender.SendError("Could not resolve local address", err)
		return
	}

	s.devicesMux.Lock()
	s.devices[deviceName] = &DeviceEntry{
		name:         deviceName,
		serviceEntry: entry,
		localAddr:    localAddr,
	}
	s.devicesMux.Unlock()

	s.sender.SendCommandToTopic(api.CastDeviceFound, &api.DeviceFoundCommand{
		DeviceName: deviceName,
	})
}

func resolveDeviceName(entry *mdns.ServiceEntry) string {
	name := entry.Name
	for _, field := range entry.InfoFields {
		if strings.HasPrefix(field, "fn=") {
			name = strings.TrimPrefix(field, "fn=")
		}
	}
	return name
}

func resolveLocalAddress(entry *mdns.ServiceEntry) (net.IP, error) {
	logger.Debug.Printf("Resolving local address when connecting to")
	logger.Debug.Printf("  - Host:port: %s:%d", entry.Host, entry.Port)
	logger.Debug.Printf("  - Address v4: %s", entry.AddrV4)
	logger.Debug.Printf("  - Address v6: %s", entry.AddrV6)
	const chromecastTestPort = 32768 // Just some valid UDP port on Chromecast to connect
	var address string
	if entry.AddrV4 != nil {
		address = net.JoinHostPort(entry.AddrV4.String(), strconv.Itoa(chromecastTestPort))
	} else {
		address = net.JoinHostPort(entry.AddrV6.String(), strconv.Itoa(chromecastTestPort))
	}
	conn, err := net.Dial("udp", address)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	addr := conn.LocalAddr().(*net.UDPAddr).IP
	logger.Debug.Printf("Resolved local address to '%s'", addr.String())
	return addr, nil
}

func (s *Caster) device(name string) (*DeviceEntry, bool) {
	s.devicesMux.Lock()
	defer s.devicesMux.Unlock()
	device, ok := s.devices[name]
	return device, ok
}

func (s *Caster) SelectDevice(command *api.SelectDeviceCommand) {
	logger.Debug.Printf("Selected device '%s'", command.Name)
	device, ok := s.device(command.Name)
	if !ok {
		s.sender.SendError("Error while selecting device", fmt.Errorf("%w: '%s'", errNoDevice, command.Name))
		return
	}

	d, err := cast.NewDevice(device.serviceEntry.Addr, device.serviceEntry.Port)
	if err != nil {
		s.sender.SendError("Error while selecting device", err)
		return
	}
	device.device = &d
	appId := configs.MediaReceiverAppID
	device.device.ReceiverController.LaunchApplication(&appId, launchTimeout, false)

	s.imageQueueMux.Lock()
	s.selectedDevice = command.Name
	s.showBackground = command.ShowBackground
	s.imageQueueMux.Unlock()

	s.StartServer(s.port)
	s.sender.SendToTopic(api.CastReady)

	if current := s.currentCommand(); current != nil {
		s.CastImage(current)
	}
}

// CastImage queues the lightbox image for casting. Only the latest queued
// image is cast when several arrive within castDebounce.
func (s *Caster) CastImage(command *api.LightboxCommand) {
	if command == nil || !command.Open || !command.Image.IsValid() {
		return
	}
	s.setCurrent(command)

	s.imageQueueMux.Lock()
	defer s.imageQueueMux.Unlock()
	if s.selectedDevice != "" {
		logger.Debug.Printf("Adding to cast queue: %s", command.Image)
		s.imageQueue = command
		s.imageQueueBroker.SendToTopic(castImageEvent)
	}
}

func (s *Caster) nextImageFromQueue() (*api.LightboxCommand, string) {
	s.imageQueueMux.Lock()
	defer s.imageQueueMux.Unlock()
	command := s.imageQueue
	s.imageQueue = nil
	return command, s.selectedDevice
}

func (s *Caster) castImageFromQueue() {
	time.Sleep(castDebounce)
	command, deviceName := s.nextImageFromQueue()
	if command == nil {
		return
	}

	if !s.IsServerRunning() {
		logger.Error.Print("Can't cast image, server not running")
		s.sender.SendError("Can't cast image because server is not running", nil)
		return
	}

	if device, ok := s.device(deviceName); ok && device.device != nil {
		logger.Debug.Println("Cast image")

		// A random path part makes Chromecast load the image again. The
		// server decides which image is shown.
		imageUrl := fmt.Sprintf("http://%s/%s/%s",
			net.JoinHostPort(device.localAddr.String(), strconv.Itoa(s.port)), s.secret, cacheBuster())
		logger.Debug.Printf("Casting image '%s'", imageUrl)
		if _, err := device.device.MediaController.Load(imageUrl, "image/jpeg", imageSendTimeout); err != nil {
			logger.Warn.Print("Timed out while trying to cast image: ", err.Error())
		} else {
			logger.Debug.Printf("Casted image")
		}
	}
}

func cacheBuster() string {
	if value, err := uuid.NewRandom(); err != nil {
		return strconv.Itoa(rand.Int())
	} else {
		return value.String()
	}
}

func (s *Caster) StopCasting() {
	s.imageQueueMux.Lock()
	deviceName := s.selectedDevice
	s.selectedDevice = ""
	s.imageQueue = nil
	s.imageQueueMux.Unlock()

	if deviceName != "" {
		logger.Info.Printf("Stop casting to '%s'", deviceName)
		if device, ok := s.device(deviceName); ok && device.device != nil {
			device.device.QuitApplication(launchTimeout)
		}
		if !s.alwaysStartHttpServer {
			s.StopServer()
		}
	}
}

func (s *Caster) Close() {
	logger.Info.Println("Shutdown caster")
	s.StopCasting()
	s.StopServer()
}
