package pkg

const (
	AppName    = "Hypernet.Journal"
	AppVersion = "1.0.0"
)
