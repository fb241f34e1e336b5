package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mortgage-checklist-workers/internal/common/camunda"
	"mortgage-checklist-workers/internal/common/config"
	"mortgage-checklist-workers/internal/common/database"
	"mortgage-checklist-workers/internal/common/logger"
	"mortgage-checklist-workers/internal/common/observability"
	"mortgage-checklist-workers/internal/common/zoho"

	gc "mortgage-checklist-workers/internal/workers/checklist/generate-checklist"
	sc "mortgage-checklist-workers/internal/workers/checklist/store-checklist"
	sce "mortgage-checklist-workers/internal/workers/communication/send-checklist-email"
	ccs "mortgage-checklist-workers/internal/workers/crm/crm-checklist-sync"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init External Service Clients ---
	crmClient := zoho.NewCRMClient(cfg.Integrations.Zoho.APIKey, cfg.Integrations.Zoho.AuthToken)

	zapLog.Info("All external service clients initialized")

	// --- Register Checklist Workers ---
	var workers []*camunda.Worker

	if cfg.Workers[gc.TaskType].Enabled {
		handler := gc.NewHandler(
			&gc.Config{
				Timeout:  time.Duration(cfg.Workers[gc.TaskType].Timeout) * time.Millisecond,
				CacheTTL: time.Duration(cfg.Checklist.CacheTTLSeconds) * time.Second,
			},
			redis.Client, log,
		)
		workers = append(workers, startWorker(zeebeClient, gc.TaskType, cfg.Workers[gc.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[sc.TaskType].Enabled {
		handler := sc.NewHandler(
			&sc.Config{
				Timeout:     time.Duration(cfg.Workers[sc.TaskType].Timeout) * time.Millisecond,
				SearchIndex: cfg.Checklist.SearchIndex,
			},
			pg.DB, sc.NewElasticsearchIndexer(esClient.Client), log,
		)
		workers = append(workers, startWorker(zeebeClient, sc.TaskType, cfg.Workers[sc.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[sce.TaskType].Enabled {
		handler, err := sce.NewHandler(
			&sce.Config{
				Timeout:    time.Duration(cfg.Workers[sce.TaskType].Timeout) * time.Millisecond,
				AWSRegion:  cfg.Integrations.AWS.Region,
				FromEmail:  cfg.Integrations.AWS.SES.FromEmail,
				SMSEnabled: cfg.Integrations.AWS.SNS.Enabled && cfg.Notifications.SMS.Enabled,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create send-checklist-email handler", zap.Error(err))
		}
		workers = append(workers, startWorker(zeebeClient, sce.TaskType, cfg.Workers[sce.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[ccs.TaskType].Enabled {
		handler := ccs.NewHandler(
			&ccs.Config{
				Timeout:   time.Duration(cfg.Workers[ccs.TaskType].Timeout) * time.Millisecond,
				Module:    cfg.Integrations.Zoho.Module,
				SyncField: "Application_ID",
			},
			crmClient, log,
		)
		workers = append(workers, startWorker(zeebeClient, ccs.TaskType, cfg.Workers[ccs.TaskType], handler.Handle, zapLog))
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := camClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	for _, w := range workers {
		if w != nil {
			w.Close()
		}
	}

	if err := camClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc camunda.HandlerFunc, log *zap.Logger) *camunda.Worker {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return nil
	}

	return camunda.NewWorker(
		client,
		taskType,
		wcfg.MaxJobsActive,
		time.Duration(wcfg.Timeout)*time.Millisecond,
		handlerFunc,
		log,
	)
}
