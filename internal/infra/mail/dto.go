package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type reminderEmailData struct {
	Name          string
	PlanName      string
	DaysRemaining int
	RenewLink     string
}
