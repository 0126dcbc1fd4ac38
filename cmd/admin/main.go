// Admin runs the ERP store maintenance commands: schema setup, invoice
// numbering, exports and catalog import.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"erp/backend/internal/commands"
	"erp/backend/internal/pkg/config"
	"erp/backend/internal/pkg/repository/sqlitedb"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
)

const namespace = "ADMIN"

const commandsUsage = `COMMANDS:
  migrate                          create missing tables and seed the catalog
  next-invoice                     print the suggested next invoice number
  export-invoice <no> <xlsx|pdf>   export one invoice
  export-workers                   export the worker register
  export-overtime <from> <to>      export overtime entries of a date range
  overtime-summary <from> <to>     print overtime totals per worker
  import-descriptions <file.xlsx>  add catalog rows from a spreadsheet
  attach <worker_id> <photo|id_proof> <file>
                                   store a worker photo or ID proof`

func main() {
	log := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	if err := run(log); err != nil {
		if errors.Is(err, commands.ErrHelp) {
			return
		}
		log.Println("main: error:", err)
		os.Exit(1)
	}
}

func run(log *log.Logger) error {
	var cfg struct {
		Config string `conf:"default:config.yaml,help:path of the YAML configuration file"`
		DBPath string `conf:"help:database file overriding db_path"`
		Debug  bool   `conf:"help:log every SQL statement"`
		Args   conf.Args
	}

	if err := conf.Parse(os.Args[1:], namespace, &cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, err := conf.Usage(namespace, &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			fmt.Println(commandsUsage)
			return commands.ErrHelp
		}
		return errors.Wrap(err, "parsing config")
	}

	settings, err := config.NewConfig(cfg.Config)
	if err != nil {
		return errors.Wrap(err, "loading "+cfg.Config)
	}
	if cfg.DBPath != "" {
		settings.DBPath = cfg.DBPath
	}
	settings.Debug = settings.Debug || cfg.Debug

	db, err := sqlitedb.New(sqlitedb.Config{Path: settings.DBPath, Debug: settings.Debug}, log)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	if err = commands.Migrate(ctx, db); err != nil {
		log.Fatalln("migrate error", err)
	}

	return execute(ctx, db, settings, cfg.Args, log)
}

func execute(ctx context.Context, db *sqlitedb.Database, settings *config.Config, args conf.Args, log *log.Logger) error {
	var (
		path string
		err  error
	)

	switch args.Num(0) {
	case "migrate":
		log.Println("schema ready:", settings.DBPath)
		return nil

	case "next-invoice":
		fmt.Println(nextInvoice(ctx, db))
		return nil

	case "export-invoice":
		format := args.Num(2)
		if format == "" {
			format = "pdf"
		}
		path, err = exportInvoice(ctx, db, settings, args.Num(1), format)

	case "export-workers":
		path, err = exportWorkers(ctx, db, settings)

	case "export-overtime":
		path, err = exportOvertime(ctx, db, settings, args.Num(1), args.Num(2))

	case "overtime-summary":
		return printOvertimeSummary(ctx, db, os.Stdout, args.Num(1), args.Num(2))

	case "import-descriptions":
		stored, skipped, err := importDescriptions(ctx, db, args.Num(1))
		if err != nil {
			return err
		}
		log.Printf("imported %d descriptions, skipped rows %v", stored, skipped)
		return nil

	case "attach":
		path, err = attachFile(ctx, db, settings, args.Num(1), args.Num(2), args.Num(3))

	case "":
		fmt.Println(commandsUsage)
		return commands.ErrHelp

	default:
		return fmt.Errorf("unknown command %q", args.Num(0))
	}

	if err != nil {
		return err
	}
	log.Println("written:", path)

	return nil
}
