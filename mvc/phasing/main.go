package phasing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/lithium3141/HaplotypeInference/contexts"
	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/models/constants/dosage"
	"github.com/lithium3141/HaplotypeInference/models/dtos"
	errorsDtos "github.com/lithium3141/HaplotypeInference/models/dtos/errors"
	"github.com/lithium3141/HaplotypeInference/services/coverage"
	phasingService "github.com/lithium3141/HaplotypeInference/services/phasing"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
	"github.com/mitchellh/mapstructure"
)

func RunPhasing(c echo.Context) error {
	gc := c.(*contexts.HisolverContext)

	body, readErr := io.ReadAll(c.Request().Body)
	if readErr != nil {
		return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest(fmt.Sprintf("Unable to read request body : %s", readErr)))
	}

	jsonParsed, parseErr := gabs.ParseJSON(body)
	if parseErr != nil {
		return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest(fmt.Sprintf("Invalid JSON body : %s", parseErr)))
	}

	// -- genotypes (mandatory), sample ids (optional)
	if !jsonParsed.Exists("genotypes") {
		return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest("Missing 'genotypes' in request body!"))
	}
	var runRequest dtos.PhasingRunRequestDto
	if decodeErr := mapstructure.Decode(jsonParsed.Data(), &runRequest); decodeErr != nil {
		return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest(
			"'genotypes' must be an array of integer arrays and 'sampleIds' an array of strings!"))
	}
	if len(runRequest.Genotypes) > gc.Config.Api.MaxGenotypes {
		return c.JSON(http.StatusRequestEntityTooLarge, errorsDtos.CreateSimpleRequestEntityTooLarge(
			fmt.Sprintf("At most %d genotypes can be phased per request, got %d", gc.Config.Api.MaxGenotypes, len(runRequest.Genotypes))))
	}

	genotypes, convErr := toGenotypes(runRequest.Genotypes)
	if convErr != nil {
		return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest(convErr.Error()))
	}
	if _, validationErr := models.ValidateCorpus(genotypes); validationErr != nil {
		return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest(validationErr.Error()))
	}

	sampleIds := make([]string, len(genotypes))
	if jsonParsed.Exists("sampleIds") {
		if len(runRequest.SampleIds) != len(genotypes) {
			return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest("'sampleIds' must be an array of strings, one per genotype!"))
		}
		copy(sampleIds, runRequest.SampleIds)
	} else {
		for i := range sampleIds {
			sampleIds[i] = fmt.Sprintf("genotype-%d", i+1)
		}
	}

	// -- run
	runCfg := *gc.Config
	runCfg.Phasing.MaxIterations = gc.MaxIterations
	runCfg.Phasing.Consensus = string(gc.Consensus)

	req := gc.RequestService.Start(len(genotypes))
	result, runErr := phasingService.NewPhasingService(&runCfg, nil).Run(c.Request().Context(), genotypes)
	if runErr != nil {
		gc.RequestService.Finish(req.Id, 0, runErr)

		var nonConvergence *phasingService.NonConvergenceError
		switch {
		case errors.As(runErr, &nonConvergence):
			return c.JSON(http.StatusUnprocessableEntity, errorsDtos.CreateSimpleUnprocessableEntity(runErr.Error()))
		case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
			return c.JSON(http.StatusServiceUnavailable, errorsDtos.CreateSimpleServiceUnavailable(runErr.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, errorsDtos.CreateSimpleInternalServerError(runErr.Error()))
		}
	}
	gc.RequestService.Finish(req.Id, len(result.Haplotypes), nil)

	return c.JSON(http.StatusOK, toResultDto(req.Id.String(), sampleIds, genotypes, result))
}

func GetPhasingRequests(c echo.Context) error {
	gc := c.(*contexts.HisolverContext)
	return c.JSON(http.StatusOK, gc.RequestService.GetAll())
}

func toGenotypes(rawGenotypes [][]float64) ([]models.Genotype, error) {
	genotypes := make([]models.Genotype, 0, len(rawGenotypes))
	for i, raw := range rawGenotypes {
		snps := make([]int, len(raw))
		for j, v := range raw {
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("genotype %d: locus %d is not an integer (%v)", i, j, v)
			}
			if !dosage.IsKnown(int(v)) {
				return nil, fmt.Errorf("genotype %d: locus %d is not a dosage of 0, 1 or 2 (%v)", i, j, v)
			}
			snps[j] = int(v)
		}
		genotypes = append(genotypes, models.NewGenotype(snps))
	}
	return genotypes, nil
}

func toResultDto(requestId string, sampleIds []string, genotypes []models.Genotype, result *phasingService.Result) dtos.PhasingResultDto {
	dto := dtos.PhasingResultDto{
		RequestId:             requestId,
		RunId:                 result.RunId.String(),
		State:                 string(result.State),
		Iterations:            result.Iterations,
		NumHaplotypes:         len(result.Haplotypes),
		NumDistinctHaplotypes: result.DistinctHaplotypes(),
		Generated:             result.Generated,
		Missing:               result.Missing,
		Haplotypes:            [][]int{},
		Escalations:           []dtos.EscalationDto{},
		Phases:                []dtos.SamplePhase{},
	}

	for _, h := range result.Haplotypes {
		dto.Haplotypes = append(dto.Haplotypes, h.Snps())
	}
	for _, e := range result.Escalations {
		dto.Escalations = append(dto.Escalations, dtos.EscalationDto{
			Generated: e.Generated,
			Haplotype: e.Haplotype.Snps(),
		})
	}
	for i, g := range genotypes {
		left, right, ok := coverage.FindPair(result.Haplotypes, g)
		if !ok {
			continue
		}
		dto.Phases = append(dto.Phases, dtos.SamplePhase{
			SampleId: sampleIds[i],
			Genotype: g.Snps(),
			Left:     left,
			Right:    right,
		})
	}

	return dto
}
