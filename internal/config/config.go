package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Config корневая конфигурация сервиса (config.toml)
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	UserService UserServiceConfig `toml:"user_service"`
	Shop        ShopConfig        `toml:"shop"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// UserServiceConfig настройки клиента профилей клиентов
type UserServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ShopConfig бизнес-настройки барбершопа
// Дефолтные вместимости и базовая сетка слотов задаются здесь,
// а не в коде - владелец меняет их без пересборки сервиса
type ShopConfig struct {
	// Вместимость по дням недели (количество кресел)
	CapacitySunday    int `toml:"capacity_sunday"`
	CapacityMonday    int `toml:"capacity_monday"`
	CapacityTuesday   int `toml:"capacity_tuesday"`
	CapacityWednesday int `toml:"capacity_wednesday"`
	CapacityThursday  int `toml:"capacity_thursday"`
	CapacityFriday    int `toml:"capacity_friday"`
	CapacitySaturday  int `toml:"capacity_saturday"`

	// Базовая сетка слотов ("10:00", "10:40", ...)
	SlotTimes []string `toml:"slot_times"`

	// Окно бронирования в днях (включительно)
	BookingWindowDays int `toml:"booking_window_days"`

	// Минимальный срок до начала записи для отмены клиентом (в часах)
	CancellationCutoffHours int `toml:"cancellation_cutoff_hours"`

	// Пользователи с правами администратора
	AdminIDs []int64 `toml:"admin_ids"`
}

// WeekdayCapacities конвертирует настройки в доменное правило вместимости
func (s ShopConfig) WeekdayCapacities() domain.WeekdayCapacities {
	return domain.WeekdayCapacities{
		time.Sunday:    s.CapacitySunday,
		time.Monday:    s.CapacityMonday,
		time.Tuesday:   s.CapacityTuesday,
		time.Wednesday: s.CapacityWednesday,
		time.Thursday:  s.CapacityThursday,
		time.Friday:    s.CapacityFriday,
		time.Saturday:  s.CapacitySaturday,
	}
}

// BaseSlots парсит и валидирует базовую сетку слотов
func (s ShopConfig) BaseSlots() ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0, len(s.SlotTimes))
	for _, raw := range s.SlotTimes {
		ts, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid slot time %q: %w", raw, err)
		}
		slots = append(slots, ts)
	}
	return slots, nil
}

// IsAdmin проверяет, входит ли пользователь в список администраторов
func (s ShopConfig) IsAdmin(userID int64) bool {
	for _, id := range s.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if c.Logs.File == "" {
		return fmt.Errorf("config: logs.file is required")
	}
	if len(c.Shop.SlotTimes) == 0 {
		return fmt.Errorf("config: shop.slot_times must not be empty")
	}
	if _, err := c.Shop.BaseSlots(); err != nil {
		return err
	}
	if c.Shop.BookingWindowDays < domain.MinBookingWindowDays || c.Shop.BookingWindowDays > domain.MaxBookingWindowDays {
		return fmt.Errorf("config: shop.booking_window_days must be between %d and %d",
			domain.MinBookingWindowDays, domain.MaxBookingWindowDays)
	}
	if c.Shop.CancellationCutoffHours < 0 {
		return fmt.Errorf("config: shop.cancellation_cutoff_hours must not be negative")
	}
	return nil
}
