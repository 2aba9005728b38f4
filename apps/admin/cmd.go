package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/skulafrica/sitebuilder/core"
	"github.com/skulafrica/sitebuilder/core/site"
	"github.com/skulafrica/sitebuilder/storage/database"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf    *core.Config
	db      *sql.DB
	siteSvc *site.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  createdb - create the database and app user if they do not exist")
	fmt.Println("  migrate COMMAND [ARGS] - run a goose migration command (up, down, status, ...)")
	fmt.Println("  seedsite -subdomain SUBDOMAIN [-name NAME] - store a default website for a school")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedSiteCmd := flag.NewFlagSet("seedsite", flag.ExitOnError)
	seedSiteSubdomain := seedSiteCmd.String("subdomain", "", "The school's subdomain.")
	seedSiteName := seedSiteCmd.String("name", "", "The school's display name (optional).")

	switch args[1] {
	case "createdb":
		return database.CreateIfNotExist(cli.conf)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "seedsite":
		if err := seedSiteCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedSiteSubdomain == "" {
			seedSiteCmd.Usage()
			return errHelp
		}
		return cli.seedSite(*seedSiteSubdomain, *seedSiteName)
	default:
		cli.printUsage()
		return errHelp
	}
}
