package routes

import (
	"gestao_terceiros/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests  = "/requests"
	PathContracts = "/contracts"
)

func addContractingRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.ContractingRequestHandler,
	screeningHandler *handlers.ScreeningHandler,
	bulletinHandler *handlers.BulletinHandler,
	contractHandler *handlers.ContractHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.Submit)
		requests.GET("/:request_id", requestHandler.GetByID)
		requests.PATCH("/:request_id/supply-review", requestHandler.ReviewBySupply)
		requests.PATCH("/:request_id/supplier-decision", requestHandler.DecideSupplier)
		requests.POST("/:request_id/draft", requestHandler.AttachContractDraft)
		requests.PATCH("/:request_id/draft-review", requestHandler.ReviewContractDraft)
		requests.PATCH("/:request_id/schedule", requestHandler.RenegotiateSchedule)

		requests.POST("/:request_id/screening", screeningHandler.Screen)
		requests.POST("/:request_id/no-candidate", screeningHandler.DeclareNoCandidate)
		requests.POST("/:request_id/selection", screeningHandler.SelectSupplier)
		requests.GET("/:request_id/proposals", screeningHandler.ListProposals)
		requests.PATCH("/:request_id/proposal-value", screeningHandler.RenegotiateValue)

		requests.PUT("/:request_id/bulletin", bulletinHandler.Submit)
		requests.GET("/:request_id/bulletin", bulletinHandler.GetByRequestID)
		requests.PATCH("/:request_id/bulletin/decision", bulletinHandler.Decide)
		requests.PATCH("/:request_id/bulletin/release", bulletinHandler.ReleasePayment)

		requests.GET("/:request_id/contract", contractHandler.GetByRequestID)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.GET("", contractHandler.List)
		contracts.GET("/:contract_id", contractHandler.GetByID)
		contracts.PATCH("/:contract_id/status", contractHandler.SetStatus)
	}
}
