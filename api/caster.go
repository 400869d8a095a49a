package api

type Caster interface {
	StartServer(port int)
	StopServer()
	FindDevices()
	SelectDevice(*SelectDeviceCommand)
	CastImage(*LightboxCommand)
	StopCasting()
	Close()
}
