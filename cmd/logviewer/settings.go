package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"arthub_checkout/internal/usecase"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultEndpoint = "http://localhost:8080"
	defaultLimit    = 200
	defaultTimeout  = 10 * time.Second
	defaultTimezone = "America/Sao_Paulo"
)

// settings merges flags, LOGVIEWER_* env vars and the optional yaml file, in that order.
type settings struct {
	Endpoint string
	Email    string
	Status   string
	Limit    int
	Interval time.Duration
	Timeout  time.Duration
	Location *time.Location
}

func loadSettings(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix("LOGVIEWER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	path := v.GetString("config")
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".arthub", "logviewer.yaml")
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return nil
}

func resolveSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Endpoint: strings.TrimRight(v.GetString("endpoint"), "/"),
		Email:    v.GetString("email"),
		Status:   v.GetString("status"),
		Limit:    v.GetInt("limit"),
		Interval: v.GetDuration("interval"),
		Timeout:  v.GetDuration("timeout"),
	}
	if s.Endpoint == "" {
		return settings{}, errors.New("endpoint is required")
	}
	if s.Limit <= 0 || s.Limit > usecase.MaxLogListLimit {
		return settings{}, fmt.Errorf("limit must be between 1 and %d", usecase.MaxLogListLimit)
	}
	if s.Interval <= 0 {
		s.Interval = usecase.DefaultPollInterval
	}
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
	loc, err := time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		return settings{}, fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc
	return s, nil
}

func (s settings) filter() usecase.LogFilter {
	return usecase.LogFilter{Email: s.Email, Status: s.Status}
}
