package cron

import (
	"context"
	"time"

	"github.com/pizzayolo/backoffice-go/internal/config"
	"github.com/pizzayolo/backoffice-go/internal/service/sync"
)

// MasterDataJobs keeps the local roster and store directory in step with
// the ERP.
type MasterDataJobs struct {
	syncService sync.Service
	interval    time.Duration
}

func NewMasterDataJobs(syncService sync.Service, cfg config.SyncConfig) *MasterDataJobs {
	return &MasterDataJobs{
		syncService: syncService,
		interval:    cfg.Interval,
	}
}

func (j *MasterDataJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sync_master_data", j.interval, j.SyncMasterData)
}

func (j *MasterDataJobs) SyncMasterData(ctx context.Context) error {
	return j.syncService.SyncAll(ctx)
}
