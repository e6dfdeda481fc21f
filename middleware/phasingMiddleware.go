package middleware

import (
	"net/http"
	"strconv"

	"github.com/lithium3141/HaplotypeInference/contexts"
	"github.com/lithium3141/HaplotypeInference/models/constants"
	"github.com/lithium3141/HaplotypeInference/models/constants/consensus"

	"github.com/labstack/echo"
)

/*
Echo middleware to prepare the context for an optionally provided `maxIterations` HTTP query parameter
*/
func ValidateOptionalMaxIterationsAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.HisolverContext)

		// default to the configured bound
		gc.MaxIterations = gc.Config.Phasing.MaxIterations

		maxIterationsQP := c.QueryParam("maxIterations")
		if len(maxIterationsQP) > 0 {
			i, conversionErr := strconv.Atoi(maxIterationsQP)
			if conversionErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'maxIterations' query parameter! Check your input")
			}
			if i <= 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "Please provide a 'maxIterations' greater than 0!")
			}
			gc.MaxIterations = i
		}

		return next(gc)
	}
}

/*
Echo middleware to prepare the context for an optionally provided `consensus` HTTP query parameter
*/
func ValidateOptionalConsensusAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.HisolverContext)

		gc.Consensus = constants.ConsensusStrategy(gc.Config.Phasing.Consensus)

		consensusQP := c.QueryParam("consensus")
		if len(consensusQP) > 0 {
			if !consensus.IsKnown(consensusQP) {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'consensus' query parameter! Use 'sum' or 'majority'")
			}
			gc.Consensus = constants.ConsensusStrategy(consensusQP)
		}

		return next(gc)
	}
}
