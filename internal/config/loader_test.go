package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/fairfound/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DataSource, convey.ShouldEqual, "live")
				convey.So(cfg.MockDelayMS, convey.ShouldEqual, 600)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FAIRFOUND_ADDR", ":8080")
			_ = os.Setenv("FAIRFOUND_API_BASE_URL", "https://api.fairfound.example/api/")
			_ = os.Setenv("FAIRFOUND_DATA_SOURCE", "MOCK")
			_ = os.Setenv("FAIRFOUND_MOCK_DELAY_MS", "50")
			_ = os.Setenv("FAIRFOUND_BACKEND_TIMEOUT_MS", "2500")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.APIBaseURL, convey.ShouldEqual, "https://api.fairfound.example/api")
				convey.So(cfg.DataSource, convey.ShouldEqual, "mock")
				convey.So(cfg.UseMock(), convey.ShouldBeTrue)
				convey.So(cfg.MockDelayMS, convey.ShouldEqual, 50)
				convey.So(cfg.BackendTimeoutMS, convey.ShouldEqual, 2500)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
log_level: debug
api_base_url: "http://backend:8000/api"
mock_delay_ms: 100
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FAIRFOUND_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.APIBaseURL, convey.ShouldEqual, "http://backend:8000/api")
				convey.So(cfg.MockDelayMS, convey.ShouldEqual, 100)
				convey.So(cfg.DataSource, convey.ShouldEqual, "live")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
mock_delay_ms: 100
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FAIRFOUND_CONFIG", tmpFile)
			_ = os.Setenv("FAIRFOUND_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")   // env
				convey.So(cfg.MockDelayMS, convey.ShouldEqual, 100) // file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FAIRFOUND_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("FAIRFOUND_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("FAIRFOUND_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown data source", func() {
			_ = os.Setenv("FAIRFOUND_DATA_SOURCE", "redis")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "data_source")
			})
		})

		convey.Convey("When the live source has a relative base URL", func() {
			_ = os.Setenv("FAIRFOUND_API_BASE_URL", "/api")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the mock source has no base URL", func() {
			_ = os.Setenv("FAIRFOUND_API_BASE_URL", "")
			_ = os.Setenv("FAIRFOUND_DATA_SOURCE", "mock")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the base URL is not required", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.UseMock(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with negative or invalid numbers", func() {
			_ = os.Setenv("FAIRFOUND_MOCK_DELAY_MS", "-1")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)
			convey.So(err, convey.ShouldNotBeNil)

			_ = os.Setenv("FAIRFOUND_MOCK_DELAY_MS", "soon")
			_, err = config.Load(ctx)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"FAIRFOUND_CONFIG",
		"FAIRFOUND_ADDR",
		"FAIRFOUND_LOG_LEVEL",
		"FAIRFOUND_API_BASE_URL",
		"FAIRFOUND_DATA_SOURCE",
		"FAIRFOUND_MOCK_DELAY_MS",
		"FAIRFOUND_BACKEND_TIMEOUT_MS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "fairfound-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
