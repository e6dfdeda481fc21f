package contexts

import (
	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/models/constants"
	"github.com/lithium3141/HaplotypeInference/services/requests"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the configuration, service singletons and
	//  per-request phasing options
	HisolverContext struct {
		echo.Context
		Config         *models.Config
		RequestService *requests.RequestService

		MaxIterations int
		Consensus     constants.ConsensusStrategy
	}
)
