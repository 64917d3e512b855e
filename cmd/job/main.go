package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"devotional/config"
	"devotional/internal/delivery"
	"devotional/internal/delivery/job"
	"devotional/internal/domain/entity"
	"devotional/internal/infra/content"
	"devotional/internal/infra/firebaseapp"
	logs "devotional/internal/infra/log"
	"devotional/internal/infra/notification"
	"devotional/internal/infra/persistence"
	"devotional/internal/infra/pubsub"
	"devotional/internal/usecase/impl"

	"github.com/DavidGamba/go-getoptions"
	"go.uber.org/fx"
)

// commandLineOptionValues holds the options this binary was invoked with.
type commandLineOptionValues struct {
	Job       string
	ConfigDir string
}

type startRunnerParams struct {
	fx.In
	fx.Lifecycle

	Ctx        context.Context
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func parseCommandLine() *commandLineOptionValues {
	optionValues := &commandLineOptionValues{}
	opt := getoptions.New()

	opt.Bool("help", false, opt.Alias("h", "?"))
	opt.StringVar(&optionValues.Job, "job", "",
		opt.Alias("j"),
		opt.Required(),
		opt.ValidValues(string(entity.JobDispatch), string(entity.JobRetention)),
		opt.Description("the job to run once"))
	opt.StringVar(&optionValues.ConfigDir, "config", "",
		opt.Alias("c"),
		opt.Description("directory containing config.yaml"))

	_, err := opt.Parse(os.Args[1:])
	if opt.Called("help") {
		fmt.Fprint(os.Stderr, opt.Help())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		fmt.Fprint(os.Stderr, opt.Help(getoptions.HelpSynopsis))
		os.Exit(2)
	}

	return optionValues
}

func main() {
	optionValues := parseCommandLine()

	fx.New(
		fx.Supply(entity.JobName(optionValues.Job)),
		injectInfra(optionValues.ConfigDir),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startRunner,
		),
	).Run()
}

func injectInfra(configDir string) fx.Option {
	return fx.Provide(
		func() (*config.Config, error) {
			return config.NewFromDir(configDir)
		},
		logs.New,
		context.Background,
		firebaseapp.NewApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebaseapp.NewMessagingClient,
			notification.NewFirebaseService,
			content.NewCatalog,
			pubsub.NewReportPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			impl.NewRetentionService,
			impl.NewJobService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				job.NewRunner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startRunner starts the run once fx has started every component; the
// runner shuts the app down with the run's exit code when it finishes.
func startRunner(params startRunnerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(params.Ctx); err != nil {
						slog.Error("Failed to run job", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
