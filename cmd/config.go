package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DelayJobSchedule is a five-field cron expression for the delivery
	// delay sweep. Empty disables the job.
	DelayJobSchedule string
}
