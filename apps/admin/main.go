package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/skulafrica/sitebuilder/core"
	"github.com/skulafrica/sitebuilder/core/site"
	"github.com/skulafrica/sitebuilder/storage/database"
	sqlxrepos "github.com/skulafrica/sitebuilder/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()

	// start CLI
	cli := commandLine{
		conf:    conf,
		db:      db,
		siteSvc: site.NewService(sqlxrepos.NewSiteRepository(sqlx.NewDb(db, conf.Database.Engine))),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
