package app

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriFactor/internal/clipboard"
	"github.com/Rorical/RoriFactor/internal/config"
	"github.com/Rorical/RoriFactor/internal/core"
	"github.com/Rorical/RoriFactor/internal/dispatcher"
	"github.com/Rorical/RoriFactor/internal/eventbus"
	"github.com/Rorical/RoriFactor/internal/models"
	"github.com/Rorical/RoriFactor/internal/refactor"
)

// Options override the active profile for one run
type Options struct {
	Profile string
	// ClearOnReset overrides the profile's reset behavior when non-nil
	ClearOnReset *bool
}

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.RefactorService
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	editor     textarea.Model
	spinner    spinner.Model
}

func NewApplication(opts Options) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.Profile != "" {
		if err := cfg.UseProfile(opts.Profile); err != nil {
			return nil, err
		}
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		log.Printf("event bus: %v", e)
	})

	disp := dispatcher.NewEventDispatcher(eb)

	// A service without a client stays usable for editing; submits fail
	var client core.Refactorer
	endpoint, profileErr := cfg.GetEndpoint()
	if profileErr == nil {
		profileErr = cfg.Validate()
	}
	if profileErr == nil {
		client = refactor.NewClient(endpoint)
	} else {
		log.Printf("Active profile is not usable: %v", profileErr)
		endpoint = ""
	}

	service := core.NewRefactorService(client, clipboard.System{}, eb, core.Options{
		Model:        cfg.GetModel(),
		ClearOnReset: resolveClearOnReset(cfg.ClearResultsOnReset(), opts.ClearOnReset),
		Unavailable:  profileErr,
	})

	appModel := createInitialAppModel(service, endpoint)
	if profileErr != nil {
		appModel.ProfileError = profileErr.Error()
	}
	model := newAppModel(appModel, disp)

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	// The TUI owns the terminal, so diagnostics go to the debug log
	if path, err := config.LogPath(); err == nil {
		if f, err := tea.LogToFile(path, "rorifactor"); err == nil {
			defer f.Close()
		}
	}
	log.Printf("Starting with profile %q, endpoint %q", app.config.ActiveProfile, app.model.appModel.Endpoint)

	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (app *Application) Stop() {
	app.dispatcher.Stop()
	app.service.Stop()
	app.eventBus.Close()
}

func createInitialAppModel(service *core.RefactorService, endpoint string) models.AppModel {
	return models.AppModel{
		View:          service.Snapshot(),
		EditorFocused: true,
		CoreReady:     service.IsReady(),
		Endpoint:      endpoint,
	}
}

// resolveClearOnReset lets an explicit flag override the profile both ways
func resolveClearOnReset(profile bool, override *bool) bool {
	if override != nil {
		return *override
	}
	return profile
}

func newAppModel(appModel models.AppModel, disp *dispatcher.EventDispatcher) *AppModel {
	m := &AppModel{
		appModel:   appModel,
		dispatcher: disp,
		editor:     newEditor(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	// Also derives the initial status line
	m.loadEditor()
	return m
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()
	return ta
}
