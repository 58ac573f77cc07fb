package planner_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fairway/internal/services"
	"fairway/pkg/utils"
)

// remotePlanner wraps the optional remote generator so fx can inject "not
// configured" as a nil field instead of a nil interface provider.
type remotePlanner struct {
	generator services.PlanGeneratorInterface
}

var Module = fx.Provide(
	provideRemotePlanner,
	providePlannerService,
	providePDFService)

func provideRemotePlanner() remotePlanner {
	if !utils.AppConfig.RemotePlannerEnabled || utils.AppConfig.GeminiAPIKey == "" {
		return remotePlanner{}
	}

	client, err := utils.NewGeminiPlanClient(utils.AppConfig.GeminiAPIKey, utils.AppConfig.GeminiModel)
	if err != nil {
		utils.GetLogger().Warn("gemini plan client init failed, deterministic engine only", zap.Error(err))
		return remotePlanner{}
	}
	return remotePlanner{generator: services.NewGeminiPlanGenerator(client)}
}

func providePlannerService(catalog services.CatalogServiceInterface, remote remotePlanner) services.PlannerServiceInterface {
	return services.NewPlannerService(catalog, remote.generator, services.NewTripEngine())
}

func providePDFService() services.PDFServiceInterface {
	return services.NewPDFService()
}
