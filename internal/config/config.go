package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type CampaignConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	CampaignDB   `yaml:"campaign_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type CampaignDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic"`
}

func MustLoad() *CampaignConfig {

	// Processing env config variable and file
	configPath := os.Getenv("CAMPAIGN_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("CAMPAIGN_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CampaignConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
