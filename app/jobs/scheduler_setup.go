package jobs

import (
	"context"

	"sitesearch/core/app/pages"
	"sitesearch/core/logger"
	"sitesearch/core/scheduler"
)

// SetupScheduler registers all scheduled jobs with the cron scheduler
func SetupScheduler(index *pages.Index, cronExpr string, log logger.Logger) *scheduler.CronScheduler {
	cronScheduler := scheduler.NewCronScheduler(log)

	reindex := &scheduler.CronTask{
		Name:        "cms_pages_reindex",
		Description: "Reload CMS pages so edits show up in site search",
		CronExpr:    cronExpr,
		Handler: func(ctx context.Context) error {
			return index.Reload()
		},
		Enabled: cronExpr != "",
	}

	if err := cronScheduler.RegisterTask(reindex); err != nil {
		log.Error("failed to register pages reindex job", logger.Err(err))
	} else if reindex.Enabled {
		log.Info("registered pages reindex job", logger.String("cron", cronExpr))
	}

	return cronScheduler
}
