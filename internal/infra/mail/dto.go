package mail

type WelcomeEmailData struct {
	FirstName string
	WaitTime  string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
