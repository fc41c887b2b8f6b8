package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func findStringFlag(t *testing.T, name string) *cli.StringFlag {
	t.Helper()
	for _, flag := range sharedFlags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("string flag %q not found", name)
	return nil
}

func findIntFlag(t *testing.T, name string) *cli.IntFlag {
	t.Helper()
	for _, flag := range sharedFlags {
		if f, ok := flag.(*cli.IntFlag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("int flag %q not found", name)
	return nil
}

func TestSharedFlags(t *testing.T) {
	t.Run("db has a local default", func(t *testing.T) {
		f := findStringFlag(t, "db")
		assert.Equal(t, "stylist.db", f.Value)
		assert.Equal(t, []string{"STYLIST_DB"}, f.EnvVars)
	})

	t.Run("qdrant defaults to the local gRPC port", func(t *testing.T) {
		host := findStringFlag(t, "qdrant-host")
		assert.Equal(t, "localhost", host.Value)

		port := findIntFlag(t, "qdrant-port")
		assert.Equal(t, 6334, port.Value)
	})

	t.Run("qdrant collection defaults to products", func(t *testing.T) {
		f := findStringFlag(t, "qdrant-collection")
		assert.Equal(t, "products", f.Value)
	})

	t.Run("neo4j-uri has no default", func(t *testing.T) {
		f := findStringFlag(t, "neo4j-uri")
		assert.Empty(t, f.Value)
		assert.False(t, f.Required)
	})

	t.Run("embedding-host has default value", func(t *testing.T) {
		f := findStringFlag(t, "embedding-host")
		assert.Equal(t, "http://localhost:11434/v1", f.Value)
	})

	t.Run("provider tokens come from environment", func(t *testing.T) {
		primary := findStringFlag(t, "primary-token")
		assert.Equal(t, []string{"GROQ_API_KEY"}, primary.EnvVars)

		fallback := findStringFlag(t, "fallback-token")
		assert.Equal(t, []string{"OPENAI_API_KEY"}, fallback.EnvVars)
	})
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	app := &cli.App{
		Name: "stylist",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags:  sharedFlags,
			},
		},
	}

	err := app.Run([]string{"stylist", "search"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: tc.input,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		testCases := []string{
			"DEBUG",
			"Info",
			"WaRn",
			"ERROR",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
