package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/apothek/sagacore/pkg/config"
	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/otel"
	"github.com/apothek/sagacore/pkg/projection"
	"github.com/apothek/sagacore/pkg/saga/dunning"
	"github.com/apothek/sagacore/pkg/saga/fulfillment"
	"github.com/apothek/sagacore/pkg/saga/renewal"
	"github.com/apothek/sagacore/pkg/store/entstore"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("sagacore %s (commit=%s, date=%s)\n", version, commit, date)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	shutdown, err := otel.Init(ctx, otel.Config{
		ServiceName:    "sagacore",
		ServiceVersion: cfg.ServiceVersion,
		UseStdout:      cfg.TraceStdout,
	})
	if err != nil {
		fatal(err)
	}
	defer func() { _ = shutdown(ctx) }()

	switch args[0] {
	case "projections:replay":
		err = runReplay(ctx, cfg, args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func runReplay(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("projections:replay", flag.ExitOnError)
	projName := fs.String("projection", "", "replay only this projection (default: all)")
	aggType := fs.String("aggregate-type", "", "restrict to one aggregate type")
	fromID := fs.Int64("from-id", 0, "first event id, inclusive (0 = start of log)")
	toID := fs.Int64("to-id", 0, "last event id, inclusive (0 = end of log)")
	dryRun := fs.Bool("dry-run", false, "count matching events without dispatching")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := entstore.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	rm := projection.NewMemoryReadModel()
	projs := projection.NewRegistry()
	if err := projs.Register(projection.NewStatusProjector("saga_status", rm, nil)); err != nil {
		return err
	}

	r := projection.NewReplayer(st, projs, eventTypes(), event.NewMigrator())
	report, err := r.Replay(ctx, projection.Options{
		Projection:    *projName,
		AggregateType: *aggType,
		FromID:        *fromID,
		ToID:          *toID,
		DryRun:        *dryRun,
	})
	fmt.Printf("batches=%d processed=%d dispatched=%d\n",
		report.Batches, report.EventsProcessed, report.EventsDispatched)
	return err
}

// eventTypes registers every event type the built-in sagas record, all at
// schema version 1.
func eventTypes() *event.Registry {
	reg := event.NewRegistry()
	for _, typ := range []string{
		renewal.EventStarted,
		renewal.EventPaymentMethodVerified,
		renewal.EventPaymentAttempted,
		renewal.EventPaymentFailed,
		renewal.EventCompleted,
		renewal.EventFailed,
		dunning.EventStarted,
		dunning.EventAttemptStarted,
		dunning.EventPaymentFailed,
		dunning.EventPaymentRecovered,
		dunning.EventEscalated,
		dunning.EventRetryPending,
		dunning.EventCompleted,
		dunning.EventFailed,
		fulfillment.EventStarted,
		fulfillment.EventPrescriptionCreated,
		fulfillment.EventInventoryReserved,
		fulfillment.EventShipmentInitiated,
		fulfillment.EventCompleted,
		fulfillment.EventFailed,
	} {
		if err := reg.Register(typ, 1, nil); err != nil {
			panic(err)
		}
	}
	return reg
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sagacore [flags] <command>")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  projections:replay   re-drive stored events through projections")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "sagacore: %v\n", err)
	os.Exit(1)
}
