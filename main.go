package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/freekieb7/pebble/http"
	"github.com/freekieb7/pebble/site"
	"github.com/freekieb7/pebble/static"
	"github.com/freekieb7/pebble/telemetry"
)

const (
	defaultPort = 3000
	staticRoot  = "public"
)

var portFlag int

var rootCmd = &cobra.Command{
	Use:          "pebble",
	Short:        "Small static site server with a JSON time endpoint",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), resolvePort(portFlag))
	},
}

func init() {
	rootCmd.Flags().IntVarP(&portFlag, "port", "p", 0, "port to listen on (defaults to $PORT, then 3000)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalln(err)
	}
}

// resolvePort picks the flag value over the PORT environment variable
// over the built-in default. The port is the only configuration this
// server recognizes.
func resolvePort(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

func run(ctx context.Context, port int) error {
	shutdownTelemetry, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}

	assets, err := static.NewResolver(staticRoot)
	if err != nil {
		return err
	}

	router := http.NewRouter()
	router.Get("/", site.Page(assets, "index.html"))
	router.Get("/about", site.Page(assets, "about.html"))
	router.Get("/contact", site.Page(assets, "contact.html"))
	router.Group("/api", func(group *http.Router) {
		group.Get("/time", site.Time)
	})

	dispatcher := http.NewDispatcher(assets, router)

	addr := fmt.Sprintf("0.0.0.0:%d", port)
	server := http.NewServer(addr, dispatcher, http.ServerOptions{})

	serverErrCh := make(chan error, 1)
	go func() {
		printStartupNotice(port)
		serverErrCh <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return errors.Join(err, shutdownTelemetry(context.Background()))
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	return errors.Join(server.Shutdown(shutdownCtx), shutdownTelemetry(shutdownCtx))
}

func printStartupNotice(port int) {
	color.New(color.FgGreen, color.Bold).Printf("pebble listening on http://localhost:%d\n", port)
	fmt.Println("  GET  /            home page")
	fmt.Println("  GET  /about       about page")
	fmt.Println("  GET  /contact     contact page")
	fmt.Println("  GET  /api/time    current time as JSON")
	fmt.Printf("  GET  /*           files under ./%s\n", staticRoot)
}
