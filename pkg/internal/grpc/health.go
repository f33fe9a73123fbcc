package grpc

import (
	"context"
	"errors"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"github.com/rs/zerolog/log"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CheckDatabase pings the database with a short deadline.
func CheckDatabase(ctx context.Context) error {
	if database.C == nil {
		return errors.New("database is not connected")
	}
	sqlDB, err := database.C.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// RefreshHealth reports SERVING only while the database answers.
func (v *App) RefreshHealth() {
	status := healthpb.HealthCheckResponse_SERVING
	if err := CheckDatabase(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Database is unreachable, reporting not serving...")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	v.health.SetServingStatus("", status)
	v.health.SetServingStatus(ServiceName, status)
}
