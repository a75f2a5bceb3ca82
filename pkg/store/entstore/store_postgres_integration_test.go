//go:build integration

package entstore

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/apothek/sagacore/pkg/store"
)

func TestPostgresEventFlow(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithDatabase("sagacore"),
		tcpostgres.WithUsername("sagacore"),
		tcpostgres.WithPassword("sagacore"),
		tcpostgres.WithSQLDriver("pgx"),
		tc.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(time.Minute)),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	// ConnectionString returns DSN for pgx.
	st, err := Open(ctx, fmt.Sprintf("postgres://%s", dsn))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	payload, _ := json.Marshal(map[string]any{"order_id": 7})
	first, err := st.Append(ctx, record("pg-u1", "order_fulfillment_saga", "order_fulfillment.started", payload))
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.Append(ctx, record("pg-u1", "order_fulfillment_saga", "order_fulfillment.inventory_reserved", nil))
	if err != nil {
		t.Fatal(err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids not monotonic: %d then %d", first.ID, second.ID)
	}

	// Ensure ordered stream read.
	got, err := st.ReadStream(ctx, "pg-u1", "order_fulfillment_saga")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("order wrong: %d, %d", got[0].ID, got[1].ID)
	}

	ranged, err := st.ListRange(ctx, store.RangeFilter{AfterID: first.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranged) != 1 || ranged[0].ID != second.ID {
		t.Fatalf("range wrong: %#v", ranged)
	}
}
