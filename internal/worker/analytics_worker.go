package worker

import (
	"github.com/agora-voto/campaign-service/internal/service"
)

// StartAnalyticsWorker registers analytics handlers.
func StartAnalyticsWorker(analyticsService *service.AnalyticsService) {
	if analyticsService == nil {
		return
	}
	analyticsService.RegisterHandlers()
}
