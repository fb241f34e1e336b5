package e2e

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-checklist-workers/internal/common/config"
	"mortgage-checklist-workers/internal/common/database"
	"mortgage-checklist-workers/internal/common/logger"

	generatechecklist "mortgage-checklist-workers/internal/workers/checklist/generate-checklist"
	storechecklist "mortgage-checklist-workers/internal/workers/checklist/store-checklist"
)

// These tests run the generate and store workers against real PostgreSQL,
// Redis, Elasticsearch and Zeebe instances. Set RUN_E2E=1 to enable them:
//
//	RUN_E2E=1 go test ./test/e2e/...
func requireE2E(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_E2E") == "" {
		t.Skip("set RUN_E2E=1 to run end-to-end tests")
	}
}

const snapshotJSON = `{
	"application": {"id": "e2e-app-1", "goal": "purchase", "purchaseStage": "found_property"},
	"borrowers": [
		{"id": "b-1", "firstName": "Dana", "lastName": "Roy", "isMainBorrower": true}
	],
	"incomes": [
		{"id": "inc-1", "borrowerId": "b-1", "kind": "employed", "basis": "salary", "employerName": "Acme Ltd"}
	],
	"assets": [],
	"liabilities": [],
	"properties": []
}`

func loadTestConfig(t *testing.T) *config.Config {
	cfg, err := config.Load()
	require.NoError(t, err)

	// Services run locally when exercising the pipeline end to end.
	cfg.Database.Postgres.Host = "localhost"
	cfg.Database.Redis.Address = "localhost:6379"
	cfg.Database.Elasticsearch.URL = "http://localhost:9200"
	return cfg
}

func TestServiceConnectivity(t *testing.T) {
	requireE2E(t)
	cfg := loadTestConfig(t)
	ctx := context.Background()

	db, err := database.NewPostgres(cfg.Database.Postgres)
	require.NoError(t, err, "PostgreSQL connection failed")
	assert.NoError(t, db.Ping(ctx), "PostgreSQL ping failed")
	db.Close()

	rdb, err := database.NewRedis(cfg.Database.Redis)
	require.NoError(t, err, "Redis client creation failed")
	assert.NoError(t, rdb.Ping(ctx), "Redis ping failed")
	rdb.Close()

	es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	require.NoError(t, err, "Elasticsearch client creation failed")
	assert.NoError(t, es.Ping(), "Elasticsearch ping failed")

	zeebeClient, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: true,
	})
	require.NoError(t, err, "Zeebe client creation failed")
	defer zeebeClient.Close()
	_, err = zeebeClient.NewTopologyCommand().Send(ctx)
	assert.NoError(t, err, "Zeebe topology request failed")
}

func createChecklistTables(t *testing.T, pg *database.PostgresClient) {
	t.Helper()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS checklists (
			id VARCHAR(64) PRIMARY KEY,
			application_id VARCHAR(255) NOT NULL,
			version INTEGER NOT NULL,
			generated_at TIMESTAMP NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (application_id, version)
		)`,
		`CREATE TABLE IF NOT EXISTS checklist_items (
			id SERIAL PRIMARY KEY,
			checklist_id VARCHAR(64) REFERENCES checklists(id),
			rule_id VARCHAR(255) NOT NULL,
			label TEXT NOT NULL,
			name VARCHAR(255),
			stage VARCHAR(50) NOT NULL,
			section VARCHAR(100) NOT NULL,
			note TEXT,
			for_email BOOLEAN NOT NULL,
			scope VARCHAR(20) NOT NULL,
			borrower_id VARCHAR(255),
			property_id VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS checklist_flags (
			id SERIAL PRIMARY KEY,
			checklist_id VARCHAR(64) REFERENCES checklists(id),
			rule_id VARCHAR(255) NOT NULL,
			label TEXT NOT NULL,
			reason TEXT,
			borrower_id VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id SERIAL PRIMARY KEY,
			event VARCHAR(100) NOT NULL,
			entity_id VARCHAR(255),
			details JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, q := range queries {
		_, err := pg.Exec(context.Background(), q)
		require.NoError(t, err)
	}
}

func TestChecklistPipeline(t *testing.T) {
	requireE2E(t)
	cfg := loadTestConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log := logger.NewTestLogger(t)

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	require.NoError(t, err)
	defer pg.Close()

	rdb, err := database.NewRedis(cfg.Database.Redis)
	require.NoError(t, err)
	defer rdb.Close()

	es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	require.NoError(t, err)

	createChecklistTables(t, pg)

	// Stage 1: generate a checklist from the snapshot.
	genHandler := generatechecklist.NewHandler(
		&generatechecklist.Config{Timeout: 30 * time.Second, CacheTTL: time.Hour},
		rdb.Client, log,
	)

	genOut, err := genHandler.Execute(ctx, &generatechecklist.Input{
		ApplicationSnapshot: []byte(snapshotJSON),
		ReferenceDate:       "2026-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "e2e-app-1", genOut.ApplicationID)
	assert.Greater(t, genOut.TotalItems, 0)
	require.NotNil(t, genOut.Checklist)

	// The generated checklist is cached for subsequent refreshes.
	cached, err := rdb.Get(ctx, "checklist:e2e-app-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, cached)

	// Stage 2: persist and index the checklist.
	storeHandler := storechecklist.NewHandler(
		&storechecklist.Config{Timeout: 30 * time.Second, SearchIndex: cfg.Checklist.SearchIndex},
		pg.DB, storechecklist.NewElasticsearchIndexer(es.Client), log,
	)

	storeOut, err := storeHandler.Execute(ctx, &storechecklist.Input{
		ApplicationID: genOut.ApplicationID,
		Checklist:     *genOut.Checklist,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, storeOut.ChecklistID)
	assert.GreaterOrEqual(t, storeOut.Version, 1)
	assert.Equal(t, genOut.TotalItems, storeOut.ItemCount)
	assert.True(t, storeOut.Indexed)

	var storedVersion int
	row := pg.QueryRow(ctx,
		"SELECT version FROM checklists WHERE id = $1", storeOut.ChecklistID)
	require.NoError(t, row.Scan(&storedVersion))
	assert.Equal(t, storeOut.Version, storedVersion)

	// Storing again bumps the version for the same application.
	storeOut2, err := storeHandler.Execute(ctx, &storechecklist.Input{
		ApplicationID: genOut.ApplicationID,
		Checklist:     *genOut.Checklist,
	})
	require.NoError(t, err)
	assert.Equal(t, storeOut.Version+1, storeOut2.Version)

	t.Cleanup(func() {
		cleanupChecklists(t, pg, genOut.ApplicationID)
		_ = rdb.Del(context.Background(), "checklist:e2e-app-1")
	})
}

func cleanupChecklists(t *testing.T, pg *database.PostgresClient, applicationID string) {
	t.Helper()
	ctx := context.Background()

	rows, err := pg.Query(ctx, "SELECT id FROM checklists WHERE application_id = $1", applicationID)
	if err != nil {
		t.Logf("cleanup query failed: %v", err)
		return
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err == nil {
			ids = append(ids, id)
		}
	}
	rows.Close()

	for _, id := range ids {
		for _, q := range []string{
			"DELETE FROM checklist_items WHERE checklist_id = $1",
			"DELETE FROM checklist_flags WHERE checklist_id = $1",
			"DELETE FROM checklists WHERE id = $1",
		} {
			if _, err := pg.Exec(ctx, q, id); err != nil {
				t.Logf("cleanup failed: %v", err)
			}
		}
	}
	if _, err := pg.Exec(ctx, "DELETE FROM audit_log WHERE entity_id = $1", applicationID); err != nil {
		t.Logf("cleanup failed: %v", err)
	}
}

func TestChecklistPipeline_DeterministicAcrossRuns(t *testing.T) {
	requireE2E(t)
	cfg := loadTestConfig(t)
	ctx := context.Background()

	log := logger.NewTestLogger(t)

	rdb, err := database.NewRedis(cfg.Database.Redis)
	require.NoError(t, err)
	defer rdb.Close()

	handler := generatechecklist.NewHandler(
		&generatechecklist.Config{Timeout: 30 * time.Second, CacheTTL: time.Hour},
		rdb.Client, log,
	)

	first, err := handler.Execute(ctx, &generatechecklist.Input{
		ApplicationSnapshot: []byte(snapshotJSON),
		ReferenceDate:       "2026-06-15",
	})
	require.NoError(t, err)

	second, err := handler.Execute(ctx, &generatechecklist.Input{
		ApplicationSnapshot: []byte(snapshotJSON),
		ReferenceDate:       "2026-06-15",
	})
	require.NoError(t, err)

	require.Equal(t, len(first.Checklist.Borrowers), len(second.Checklist.Borrowers))
	for i := range first.Checklist.Borrowers {
		assert.Equal(t,
			itemRuleIDs(first, i), itemRuleIDs(second, i),
			"borrower %d items differ between runs", i)
	}

	t.Cleanup(func() {
		_ = rdb.Del(context.Background(), "checklist:e2e-app-1")
	})
}

func itemRuleIDs(out *generatechecklist.Output, borrowerIdx int) []string {
	items := out.Checklist.Borrowers[borrowerIdx].Items
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = fmt.Sprintf("%s/%s", item.RuleID, item.Stage)
	}
	return ids
}
