// Command client is a small command-line companion for the camera-collector
// server. It logs in, runs one query, and prints the result as JSON.
//
// Usage:
//
//	client -addr http://localhost:8080 -username ansel -password secret list -brand Nikon
//	client -addr http://localhost:8080 -username ansel -password secret brands
//	client -addr http://localhost:8080 -username ansel -password secret value
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/camera-collector/internal/adapter"
	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/models"
)

func main() {
	log := logger.NewLogger("camera-collector-client")

	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	username := flag.String("username", "", "username or email")
	password := flag.String("password", "", "account password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal().Msg("username and password are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: *addr})
	if _, err := client.Login(ctx, models.LoginRequest{Username: *username, Password: *password}); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	command := flag.Arg(0)
	if command == "" {
		command = "list"
	}

	var commandArgs []string
	if flag.NArg() > 1 {
		commandArgs = flag.Args()[1:]
	}

	result, err := runCommand(ctx, client, command, commandArgs)
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("encode result")
	}
}

func runCommand(ctx context.Context, client adapter.ServerAdapter, command string, args []string) (any, error) {
	switch command {
	case "list":
		return client.ListCameras(ctx, listFilter(args))
	case "get":
		if len(args) != 1 {
			return nil, fmt.Errorf("get expects exactly one camera id")
		}
		return client.GetCamera(ctx, args[0])
	case "brands":
		return client.CountByBrand(ctx)
	case "types":
		return client.CountByType(ctx)
	case "decades":
		return client.CountByDecade(ctx)
	case "value":
		return client.ValueSummary(ctx)
	}
	return nil, fmt.Errorf("unknown command %q", command)
}

func listFilter(args []string) models.CameraFilter {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	brand := fs.String("brand", "", "filter by brand")
	cameraType := fs.String("type", "", "filter by camera type")
	filmFormat := fs.String("film-format", "", "filter by film format")
	condition := fs.String("condition", "", "filter by condition")
	yearMin := fs.Int("year-min", 0, "minimum year manufactured")
	yearMax := fs.Int("year-max", 0, "maximum year manufactured")
	sortBy := fs.String("sort-by", "", "sort column")
	sortDir := fs.String("sort-dir", "", "sort direction: asc or desc")
	offset := fs.Int("offset", 0, "records to skip")
	limit := fs.Int("limit", 0, "page size")
	_ = fs.Parse(args)

	return models.CameraFilter{
		Brand:      *brand,
		Type:       *cameraType,
		FilmFormat: *filmFormat,
		Condition:  models.Condition(*condition),
		YearMin:    *yearMin,
		YearMax:    *yearMax,
		SortBy:     *sortBy,
		SortDir:    *sortDir,
		Offset:     *offset,
		Limit:      *limit,
	}
}
