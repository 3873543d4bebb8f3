// Package config loads httpguard configuration from YAML files and the
// environment using viper.
//
// A typical application config:
//
//	policy:
//	  mode: all
//	  codes: [404, 410]
//	logger:
//	  level: info
//	  format: json
//	client:
//	  base_url: https://api.example.com
//	  timeout: 30s
//
// Environment variables override file values (POLICY_MODE=explicit). An
// optional .env file is loaded first via godotenv.
package config
