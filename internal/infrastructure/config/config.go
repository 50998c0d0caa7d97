package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is the process configuration. Values come from defaults, an optional
// config.yaml and environment variables, in increasing priority.
type Config struct {
	Port          int    `mapstructure:"port"`
	GinMode       string `mapstructure:"gin_mode"`
	LogLevel      string `mapstructure:"log_level"`
	StorageDriver string `mapstructure:"storage_driver"`

	// Comma separated role ids that count as employees, e.g. "2,5".
	EmployeeRoleIDs string `mapstructure:"employee_role_ids"`

	AWS         AWSConfig         `mapstructure:"aws"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Database    DatabaseConfig    `mapstructure:"database"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Payment     PaymentConfig     `mapstructure:"payment_gateway"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// DynamoDBConfig holds the endpoint override (DynamoDB Local) and table names.
type DynamoDBConfig struct {
	Endpoint           string `mapstructure:"endpoint"`
	ServiceDetailTable string `mapstructure:"service_details_table"`
	SalesTable         string `mapstructure:"sales_table"`
	SalePaymentsTable  string `mapstructure:"sale_payments_table"`
	CountersTable      string `mapstructure:"counters_table"`
	EmployeesTable     string `mapstructure:"employees_table"`
	ServicesTable      string `mapstructure:"services_table"`
	AppointmentsTable  string `mapstructure:"appointments_table"`
}

type DatabaseConfig struct {
	URL         string `mapstructure:"url"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

type PaymentConfig struct {
	Mock bool `mapstructure:"mock"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
}

// Load reads configuration from file and environment variables.
// Nested keys map to upper snake case, e.g. database.url -> DATABASE_URL.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindTableEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Validate checks for configuration errors that would only surface at request time.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	case StoragePostgres:
		if strings.TrimSpace(c.Database.URL) == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if _, err := c.EmployeeRoles(); err != nil {
		return err
	}
	return nil
}

// EmployeeRoles parses EmployeeRoleIDs.
func (c *Config) EmployeeRoles() ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(c.EmployeeRoleIDs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid EMPLOYEE_ROLE_IDS entry %q", part)
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("EMPLOYEE_ROLE_IDS must name at least one role")
	}
	return out, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("storage_driver", StorageDynamoDB)
	v.SetDefault("employee_role_ids", "2")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.service_details_table", "service_details")
	v.SetDefault("dynamodb.sales_table", "sales")
	v.SetDefault("dynamodb.sale_payments_table", "sale_payments")
	v.SetDefault("dynamodb.counters_table", "counters")
	v.SetDefault("dynamodb.employees_table", "employees")
	v.SetDefault("dynamodb.services_table", "services")
	v.SetDefault("dynamodb.appointments_table", "appointments")

	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.test_payer_email", "")
	v.SetDefault("mercadopago.test_payer_user_id", "")
	v.SetDefault("payment_gateway.mock", false)

	v.SetDefault("metrics.namespace", "salon")
}

// Table names keep the <NAME>_TABLE variables used by the deployment manifests.
func bindTableEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"dynamodb.service_details_table": "SERVICE_DETAILS_TABLE",
		"dynamodb.sales_table":           "SALES_TABLE",
		"dynamodb.sale_payments_table":   "SALE_PAYMENTS_TABLE",
		"dynamodb.counters_table":        "COUNTERS_TABLE",
		"dynamodb.employees_table":       "EMPLOYEES_TABLE",
		"dynamodb.services_table":        "SERVICES_TABLE",
		"dynamodb.appointments_table":    "APPOINTMENTS_TABLE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}
	return nil
}
