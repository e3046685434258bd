package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		noDotEnv := config.WithDotEnv("")

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars(t)

			cfg, err := config.Load(ctx, noDotEnv)

			convey.Convey("Then it should load the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.GRPCPort, convey.ShouldEqual, 50051)
				convey.So(cfg.FetchTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(cfg.RedisAddr, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars(t)
			t.Setenv("RPG_SHEET_GRPC_PORT", "6000")
			t.Setenv("RPG_SHEET_LOG_LEVEL", "debug")
			t.Setenv("RPG_SHEET_FETCH_TIMEOUT", "2s")
			t.Setenv("RPG_SHEET_REDIS_ADDR", "localhost:6379")

			cfg, err := config.Load(ctx, noDotEnv)

			convey.Convey("Then env vars override the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.GRPCPort, convey.ShouldEqual, 6000)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.FetchTimeout, convey.ShouldEqual, 2*time.Second)
				convey.So(cfg.RedisAddr, convey.ShouldEqual, "localhost:6379")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars(t)
			path := writeFile(t, dir, "config.yaml", `
grpc_port: 7000
metrics_addr: ":9191"
armor_cache_ttl: 1h
dnd5e_base_url: "http://localhost:3000/api/"
`)
			t.Setenv("RPG_SHEET_CONFIG", path)

			cfg, err := config.Load(ctx, noDotEnv)

			convey.Convey("Then file values apply", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.GRPCPort, convey.ShouldEqual, 7000)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9191")
				convey.So(cfg.ArmorCacheTTL, convey.ShouldEqual, time.Hour)
				convey.So(cfg.DND5eBaseURL, convey.ShouldEqual, "http://localhost:3000/api/")
			})

			convey.Convey("And env vars beat the file", func() {
				t.Setenv("RPG_SHEET_GRPC_PORT", "8000")

				cfg, err := config.Load(ctx, noDotEnv)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.GRPCPort, convey.ShouldEqual, 8000)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9191")
			})
		})

		convey.Convey("When a dotenv file is present", func() {
			clearConfigEnvVars(t)
			path := writeFile(t, dir, ".env", "RPG_SHEET_LOG_LEVEL=warn\n")
			t.Cleanup(func() { _ = os.Unsetenv("RPG_SHEET_LOG_LEVEL") })

			cfg, err := config.Load(ctx, config.WithDotEnv(path))

			convey.Convey("Then its variables are used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
			})
		})

		convey.Convey("When the dotenv file is missing", func() {
			clearConfigEnvVars(t)

			_, err := config.Load(ctx, config.WithDotEnv(filepath.Join(dir, "missing.env")))

			convey.Convey("Then it is skipped", func() {
				convey.So(err, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars(t)
			t.Setenv("RPG_SHEET_CONFIG", filepath.Join(dir, "nope.yaml"))

			_, err := config.Load(ctx, noDotEnv)

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.IsInvalidArgument(err), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value is invalid", func() {
			clearConfigEnvVars(t)
			t.Setenv("RPG_SHEET_LOG_LEVEL", "loud")
			t.Setenv("RPG_SHEET_GRPC_PORT", "0")

			_, err := config.Load(ctx, noDotEnv)

			convey.Convey("Then validation reports each field", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "log_level")
				convey.So(err.Error(), convey.ShouldContainSubstring, "grpc_port")
			})
		})
	})
}

func TestConfigValidate(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := config.New()

		convey.Convey("Then it is valid", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When timeouts are not positive", func() {
			cfg.HTTPTimeout = 0
			cfg.FetchTimeout = -time.Second

			convey.Convey("Then validation fails", func() {
				err := cfg.Validate()
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "http_timeout")
				convey.So(err.Error(), convey.ShouldContainSubstring, "fetch_timeout")
			})
		})
	})
}

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RPG_SHEET_CONFIG",
		"RPG_SHEET_LOG_LEVEL",
		"RPG_SHEET_GRPC_PORT",
		"RPG_SHEET_METRICS_ADDR",
		"RPG_SHEET_FETCH_TIMEOUT",
		"RPG_SHEET_REDIS_ADDR",
	} {
		_ = os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
