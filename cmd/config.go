package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	APIKey            string
	LowStockThreshold int
	LowStockSchedule  string
	SeedDemoData      bool
}
