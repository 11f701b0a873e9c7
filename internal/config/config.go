// Package config carga toda la configuración del binario desde variables
// de entorno, con defaults razonables para desarrollo.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env        string
	ServerAddr string

	LogLevel  string
	LogFormat string
	AppName   string

	JWTSecret        string
	AccessTTLMinutes int

	// Tarifa base que se suma a toda consulta antes de los medicamentos.
	BaseConsultationFee float64

	// Latencia artificial por tipo de operación de repositorio.
	// En tests se inyecta cero directamente, sin pasar por acá.
	LatencyAdd          time.Duration
	LatencyEdit         time.Duration
	LatencyDelete       time.Duration
	LatencyConsultation time.Duration
}

func Load() Config {
	return Config{
		Env:        getEnv("APP_ENV", "dev"),
		ServerAddr: ":" + getEnv("PORT", "8080"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		AppName:   getEnv("APP_NAME", "vet-clinic-manager"),

		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-me"),
		AccessTTLMinutes: getInt("ACCESS_TTL_MINUTES", 60),

		BaseConsultationFee: getFloat("BASE_CONSULTATION_FEE", 30000),

		LatencyAdd:          getMillis("LATENCY_ADD_MS", 1000),
		LatencyEdit:         getMillis("LATENCY_EDIT_MS", 800),
		LatencyDelete:       getMillis("LATENCY_DELETE_MS", 500),
		LatencyConsultation: getMillis("LATENCY_CONSULTATION_MS", 1500),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getMillis(key string, fallback int) time.Duration {
	return time.Duration(getInt(key, fallback)) * time.Millisecond
}
