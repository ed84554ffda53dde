// Command zipcode-cli prints the stored states, cities and ZIP codes as tables.
//
//	zipcode-cli states | cities | zips | state-zips <state name>
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	_ "zipcode-web/configs"
	"zipcode-web/internal/domain/entity"
	"zipcode-web/internal/domain/gateway/db"
	"zipcode-web/internal/domain/gateway/lock"
	"zipcode-web/internal/domain/gateway/queue"
	"zipcode-web/internal/domain/usecase/zipcode"
	"zipcode-web/internal/infra/database/gorm"
	"zipcode-web/pkg/log"
)

func main() {
	defer log.Sync()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	database, err := gorm.Open(gorm.ConfigFromProperties())
	if err != nil {
		color.Red("Error connecting to database: %v", err)
		os.Exit(1)
	}

	// read-only commands never call the geocoding service
	useCase := zipcode.NewZipCodeUseCase(nil, db.NewGormLocationGateway(database), lock.NoopLocker{}, queue.NoopPublisher{})
	ctx := context.Background()

	switch os.Args[1] {
	case "states":
		err = printStates(ctx, useCase)
	case "cities":
		err = printCities(ctx, useCase)
	case "zips":
		err = printZips(ctx, useCase)
	case "state-zips":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		err = printStateZips(ctx, useCase, strings.Join(os.Args[2:], " "))
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func usage() {
	color.Cyan("Usage: zipcode-cli <command>")
	fmt.Println("  states                 list the stored states")
	fmt.Println("  cities                 list the stored cities")
	fmt.Println("  zips                   list the stored ZIP codes")
	fmt.Println("  state-zips <name>      list the ZIP codes of a state by full name")
}

func printStates(ctx context.Context, useCase zipcode.UseCase) error {
	states, err := useCase.ListStates(ctx)
	if err != nil {
		return err
	}

	color.Yellow("\nStates (%d)", len(states))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Abbrev"})
	for _, state := range states {
		table.Append([]string{strconv.FormatUint(uint64(state.ID), 10), state.Name, state.Abbrev})
	}
	table.Render()
	return nil
}

func printCities(ctx context.Context, useCase zipcode.UseCase) error {
	cities, err := useCase.ListCities(ctx)
	if err != nil {
		return err
	}

	color.Yellow("\nCities (%d)", len(cities))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "City", "State"})
	for _, city := range cities {
		table.Append([]string{strconv.FormatUint(uint64(city.ID), 10), city.Name, stateAbbrev(city.State)})
	}
	table.Render()
	return nil
}

func printZips(ctx context.Context, useCase zipcode.UseCase) error {
	zips, err := useCase.ListZips(ctx)
	if err != nil {
		return err
	}

	color.Yellow("\nZIP codes (%d)", len(zips))
	printZipTable(zips)
	return nil
}

func printStateZips(ctx context.Context, useCase zipcode.UseCase, stateName string) error {
	result, err := useCase.StateToZips(ctx, stateName)
	if err != nil {
		return err
	}
	if !result.Found {
		color.Red("State %s not found", result.StateName)
		return nil
	}

	color.Yellow("\nZIP codes of %s (%d)", result.StateName, len(result.Zips))
	printZipTable(result.Zips)
	return nil
}

func printZipTable(zips []entity.Zip) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ZIP", "City", "State"})
	for _, zip := range zips {
		city, state := "", ""
		if zip.City != nil {
			city = zip.City.Name
			state = stateAbbrev(zip.City.State)
		}
		table.Append([]string{zip.ZipCode, city, state})
	}
	table.Render()
}

func stateAbbrev(state *entity.State) string {
	if state == nil {
		return ""
	}
	return state.Abbrev
}
