package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/km-arc/go-locator/framework/config"
	gohttp "github.com/km-arc/go-locator/framework/http"
	"github.com/km-arc/go-locator/framework/locator"
	"github.com/km-arc/go-locator/routing"
)

// Application is the top-level host. It owns the Locator, the typed
// configuration, and the router whose request pipeline opens a locator
// scope around every request.
type Application struct {
	Locator *locator.Locator
	Config  *config.Config
	Router  *routing.Router

	bootstrap *locator.Bootstrap
}

// New creates and bootstraps the application: configuration is loaded,
// the locator gets its configured convention mask, and the router gets
// the scope-per-request middleware.
func New(envFiles ...string) *Application {
	cfg := config.Load(envFiles...)

	l := locator.New()
	l.SetMask(cfg.Locator.Mask)

	r := routing.New()
	r.Middleware(gohttp.ScopePerRequest())

	return &Application{
		Locator:   l,
		Config:    cfg,
		Router:    r,
		bootstrap: locator.NewBootstrap(l),
	}
}

// Register adds a Registrar to the application.
func (a *Application) Register(r locator.Registrar) error {
	return a.bootstrap.Register(context.Background(), r)
}

// Boot runs the Boot phase on all registrars.
func (a *Application) Boot() error {
	return a.bootstrap.Boot(context.Background())
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() {
	if !a.bootstrap.Booted() {
		if err := a.Boot(); err != nil {
			log.Fatalf("boot error: %v", err)
		}
	}
	addr := ":" + a.Config.App.Port
	fmt.Printf("%s running on http://localhost%s  [%s]\n",
		a.Config.App.Name, addr, a.Config.App.Env)
	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }
