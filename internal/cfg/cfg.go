package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

type Config struct {
	App   *AppCfg
	Http  *HTTPConfig
	Db    *PGDBCfg
	Redis *RedisCfg
}

type AppCfg struct {
	Env             string
	ShutdownTimeout time.Duration
	SwaggerHost     string
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PGDBCfg struct {
	ConnString string // Полная строка подключения (DB_CONN), имеет приоритет над полями ниже
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string

	MaxConns        int32
	MinConns        int32
	MaxConnIdleTime time.Duration
}

// DSN возвращает строку подключения к PostgreSQL.
func (c *PGDBCfg) DSN() string {
	if c.ConnString != "" {
		return c.ConnString
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}

	return u.String()
}

// RedisCfg описывает необязательное подключение к Redis (только для проверки здоровья).
type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	DialTimeout time.Duration
	Timeout     time.Duration
}

// Enabled сообщает, задан ли адрес Redis.
func (c *RedisCfg) Enabled() bool {
	return c != nil && c.Addr != ""
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
// Если рядом есть файл .env, переменные из него подхватываются без перезаписи уже заданных.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to read .env file: %v", err)
	}

	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	app, err := loadAppCfg(log, http.Port)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		App:   app,
		Http:  http,
		Db:    db,
		Redis: redis,
	}, nil
}

func loadAppCfg(log logger.Logger, port string) (*AppCfg, error) {
	const (
		defaultEnv             = "development"
		defaultShutdownTimeout = 10 * time.Second
	)

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		log.Errorf(err, "invalid SHUTDOWN_TIMEOUT")
		return nil, err
	}

	return &AppCfg{
		Env:             getEnvOrDefault("APP_ENV", defaultEnv),
		ShutdownTimeout: shutdownTimeout,
		SwaggerHost:     getEnvOrDefault("SWAGGER_HOST", "localhost:"+port),
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8000"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", getEnvOrDefault("PORT", defaultPort))
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		log.Errorf(err, "invalid HTTP_PORT/PORT")
		return nil, e.Wrap("PORT", e.ErrIncorrectEnvVariable)
	}

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost            = "localhost"
		defaultPort            = "5432"
		defaultSSLMode         = "disable"
		defaultMaxConns        = 10
		defaultMinConns        = 1
		defaultMaxConnIdleTime = 5 * time.Minute
	)

	maxConns, err := parseIntEnv("DB_MAX_CONNS", defaultMaxConns)
	if err != nil {
		log.Errorf(err, "invalid DB_MAX_CONNS")
		return nil, e.Wrap("DB_MAX_CONNS", err)
	}

	minConns, err := parseIntEnv("DB_MIN_CONNS", defaultMinConns)
	if err != nil {
		log.Errorf(err, "invalid DB_MIN_CONNS")
		return nil, e.Wrap("DB_MIN_CONNS", err)
	}

	if minConns > maxConns {
		err := fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)", minConns, maxConns)
		log.Errorf(err, "invalid pool size")
		return nil, err
	}

	idleTime, err := parseDurationEnv("DB_MAX_CONN_IDLE_TIME", defaultMaxConnIdleTime)
	if err != nil {
		log.Errorf(err, "invalid DB_MAX_CONN_IDLE_TIME")
		return nil, err
	}

	pool := &PGDBCfg{
		MaxConns:        int32(maxConns),
		MinConns:        int32(minConns),
		MaxConnIdleTime: idleTime,
	}

	if conn := getEnv("DB_CONN"); conn != "" {
		pool.ConnString = conn
		return pool, nil
	}

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("DB_CONN or POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	pool.Host = getEnvOrDefault("POSTGRES_HOST", defaultHost)
	pool.Port = getEnvOrDefault("POSTGRES_PORT", defaultPort)
	pool.User = user
	pool.Password = password
	pool.DBName = dbName
	pool.SSLMode = getEnvOrDefault("SSL_MODE", defaultSSLMode)

	return pool, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultDB           = 0
		defaultDialTimeout  = 2 * time.Second
		defaultReadTimeout  = 1 * time.Second
		defaultWriteTimeout = 1 * time.Second
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, e.Wrap("REDIS_DB_ID", err)
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        getEnv("REDIS_ADDR"),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
