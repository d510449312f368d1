package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/micromouse-arena/api"
	api_i "github.com/beka-birhanu/micromouse-arena/api/i"
	simapi "github.com/beka-birhanu/micromouse-arena/api/sim"
	"github.com/beka-birhanu/micromouse-arena/config"
	"github.com/beka-birhanu/micromouse-arena/service"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	appLogger     *log.Logger
	simManager    *service.SimulationManager
	simController api_i.Controller
	router        *api.Router
)

func initManager() {
	var err error
	simManager, err = service.NewSimulationManager(service.ManagerConfig{
		TickPeriod:  time.Duration(config.Envs.TickMillis) * time.Millisecond,
		MaxSessions: config.Envs.MaxSessions,
		Logger:      appLogger,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating simulation manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s simulation manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initSimController() {
	var err error
	simController, err = simapi.NewSimulationController(simManager)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating simulation controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s simulation controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{simController},
	})
	appLogger.Printf("%s[INFO]%s router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	gin.SetMode(config.Envs.GinMode)
	appLogger = log.New(os.Stdout, "[APP] ", log.LstdFlags)

	initManager()
	defer simManager.Shutdown()

	initSimController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
