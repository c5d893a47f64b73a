package service

import (
	"context"
	"strings"

	"github.com/ONSdigital/dp-onsapi/config"
	"github.com/ONSdigital/dp-onsapi/handlers"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Service contains all the configs, server and clients to run the ONS API lookup service
type Service struct {
	Config      *config.Config
	HealthCheck HealthChecker
	Server      HTTPServer
	ONSClient   ONSClient
	ServiceList *ExternalServiceList
}

// Run the service
func Run(ctx context.Context, cfg *config.Config, serviceList *ExternalServiceList, buildTime, gitCommit, version string, svcErrors chan error) (svc *Service, err error) {
	log.Info(ctx, "running service")

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	// Initialise Service struct
	svc = &Service{
		Config:      cfg,
		ServiceList: serviceList,
	}

	// Initialise clients
	svc.ONSClient = serviceList.GetONSClient(cfg)

	// Get healthcheck with checkers
	svc.HealthCheck, err = serviceList.GetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Fatal(ctx, "failed to create health check", err)
		return nil, err
	}
	if err := svc.registerCheckers(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to register checkers")
	}

	// Initialise router
	router := mux.NewRouter()
	router.StrictSlash(true).Path("/health").HandlerFunc(svc.HealthCheck.Handler)

	router.StrictSlash(true).Path("/contexts").Methods("GET").HandlerFunc(handlers.ContextList(svc.ONSClient))
	router.StrictSlash(true).Path("/datasets").Methods("GET").HandlerFunc(handlers.DatasetNames(svc.ONSClient))
	router.StrictSlash(true).Path("/datasets/{name}").Methods("GET").HandlerFunc(handlers.DatasetDetails(svc.ONSClient))
	router.StrictSlash(true).Path("/datasets/{name}/downloads").Methods("GET").HandlerFunc(handlers.DownloadLinks(svc.ONSClient))

	svc.Server = serviceList.GetHTTPServer(cfg.BindAddr, router)

	// Start Healthcheck and HTTP Server
	svc.HealthCheck.Start(ctx)
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return svc, nil
}

// Close gracefully shuts the service down in the required order, with
// timeout. The returned error names the step that failed.
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Config.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// healthcheck first, as it depends on everything else
	steps := []shutdownStep{
		{"healthcheck", func(context.Context) error {
			if svc.ServiceList.HealthCheck {
				svc.HealthCheck.Stop()
			}
			return nil
		}},
		{"http server", svc.Server.Shutdown},
	}

	done := make(chan []string, 1)
	go func() {
		var failed []string
		for _, step := range steps {
			if err := step.stop(ctx); err != nil {
				log.Error(ctx, "failed to stop "+step.name, err)
				failed = append(failed, step.name)
			}
		}
		done <- failed
	}()

	var failed []string
	select {
	case <-ctx.Done():
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return errors.Wrap(ctx.Err(), "shutdown timed out")
	case failed = <-done:
	}

	// a step that gave up because the deadline passed is a timeout too
	if ctx.Err() == context.DeadlineExceeded {
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return errors.Wrap(ctx.Err(), "shutdown timed out")
	}

	if len(failed) > 0 {
		err := errors.Errorf("failed to shutdown gracefully: %s", strings.Join(failed, ", "))
		log.Error(ctx, "failed to shutdown gracefully", err, log.Data{"failed": failed})
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

type shutdownStep struct {
	name string
	stop func(ctx context.Context) error
}

func (svc *Service) registerCheckers(ctx context.Context) (err error) {
	if err = svc.HealthCheck.AddCheck("ONS API", svc.ONSClient.Checker); err != nil {
		log.Error(ctx, "failed to add ons api checker", err)
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}
