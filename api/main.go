package main

import (
	"fmt"
	"os"

	"github.com/lithium3141/HaplotypeInference/contexts"
	gam "github.com/lithium3141/HaplotypeInference/middleware"
	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/mvc/phasing"
	serviceInfo "github.com/lithium3141/HaplotypeInference/mvc/service-info"
	"github.com/lithium3141/HaplotypeInference/services/requests"
	"github.com/lithium3141/HaplotypeInference/services/sanitation"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	fmt.Printf("Using : \n"+
		"\tDebug : %t \n\n"+

		"\tMax Iterations : %d \n"+
		"\tMax Stalled Escalations : %d \n"+
		"\tFallback Locus : %d \n"+
		"\tConsensus Strategy : %s \n"+
		"\tTimeout : %s \n\n"+

		"\tRequest Retention : %s \n"+
		"\tMax Genotypes per Request : %d \n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Phasing.MaxIterations,
		cfg.Phasing.MaxStalledEscalations,
		cfg.Phasing.FallbackLocus,
		cfg.Phasing.Consensus,
		cfg.Phasing.Timeout,
		cfg.Api.RequestRetention,
		cfg.Api.MaxGenotypes,
		cfg.Api.Port)
	// --

	// Service Singletons
	rs := requests.NewRequestService()
	ss := sanitation.NewSanitationService(rs, &cfg)
	if err := ss.Init(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	// Instantiate Server
	e := NewServer(&cfg, rs)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}

// NewServer configures the echo instance and its routes
func NewServer(cfg *models.Config, rs *requests.RequestService) *echo.Echo {
	e := echo.New()

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.HisolverContext{
				Context:        c,
				Config:         cfg,
				RequestService: rs,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", serviceInfo.GetWelcome)

	// -- Service Info
	e.GET("/service-info", serviceInfo.GetServiceInfo)

	// -- Phasing
	e.POST("/phasing/run", phasing.RunPhasing,
		// middleware
		gam.ValidateOptionalMaxIterationsAttribute,
		gam.ValidateOptionalConsensusAttribute)
	e.GET("/phasing/requests", phasing.GetPhasingRequests)

	return e
}
