package main

import (
	"net/http"
	"strconv"

	"github.com/km-arc/go-locator/app"
	"github.com/km-arc/go-locator/framework/locator"
	gohttp "github.com/km-arc/go-locator/http"
	"github.com/km-arc/go-locator/routing"
)

// Demo host: a small employee directory whose handlers resolve their
// collaborators through the locator instead of wiring constructors by
// hand. Each request runs in its own scope, so the repository resolved
// by a handler is shared within that request and discarded afterwards.

// ── Capabilities and implementations ─────────────────────────────────────────

type Employee struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// IEmployeeRepository resolves by naming convention: the default "I*"
// mask derives EmployeeRepository, no registration needed beyond the
// constructor.
type IEmployeeRepository interface {
	All() []Employee
	Find(id int) (Employee, bool)
}

type EmployeeRepository struct {
	employees []Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: []Employee{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
		},
	}
}

func (r *EmployeeRepository) All() []Employee { return r.employees }

func (r *EmployeeRepository) Find(id int) (Employee, bool) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// IGreeter resolves through a registered factory, shadowing the
// PlainGreeter type association that is also on the books.
type IGreeter interface {
	Greet(name string) string
}

type PlainGreeter struct{}

func (PlainGreeter) Greet(name string) string { return "Hello, " + name }

type FancyGreeter struct{}

func (FancyGreeter) Greet(name string) string { return "A very warm welcome, " + name + "!" }

// GreeterFactory produces FancyGreeters.
type GreeterFactory struct{}

func (GreeterFactory) Create() (any, error) { return FancyGreeter{}, nil }

// ── Registrar ────────────────────────────────────────────────────────────────

type directoryRegistrar struct {
	locator.BaseRegistrar
}

func (directoryRegistrar) Register(l *locator.Locator) error {
	constructors := map[string]locator.Constructor{
		locator.KeyOf[EmployeeRepository](): func(...any) (any, error) { return NewEmployeeRepository(), nil },
		locator.KeyOf[PlainGreeter]():       func(...any) (any, error) { return PlainGreeter{}, nil },
		locator.KeyOf[GreeterFactory]():     func(...any) (any, error) { return GreeterFactory{}, nil },
	}
	for id, fn := range constructors {
		if err := l.RegisterConstructor(id, fn); err != nil {
			return err
		}
	}

	// Both a type association and a factory for IGreeter; the factory
	// wins, so greetings come out fancy.
	if err := locator.RegisterTypeFor[IGreeter](l, locator.KeyOf[PlainGreeter]()); err != nil {
		return err
	}
	return locator.RegisterFactoryFor[IGreeter](l, locator.KeyOf[GreeterFactory]())
}

// ── Host ─────────────────────────────────────────────────────────────────────

func main() {
	application := app.New() // loads .env automatically

	if err := application.Register(directoryRegistrar{}); err != nil {
		panic(err)
	}

	registerRoutes(application)
	application.Run()
}

func registerRoutes(application *app.Application) {
	l := application.Locator
	r := application.Router

	r.Prefix("/api/v1", func(api *routing.Router) {

		// GET /api/v1/employees
		api.Get("/employees", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)

			repo, err := locator.Make[IEmployeeRepository](req.Context(), l)
			if err != nil {
				res.ServerError(err.Error())
				return
			}
			res.Success(repo.All())
		})

		// GET /api/v1/employees/{id}
		api.Get("/employees/{id}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)

			id, err := strconv.Atoi(routing.Param(req, "id"))
			if err != nil {
				res.Error(http.StatusBadRequest, "id must be numeric")
				return
			}

			repo, err := locator.Make[IEmployeeRepository](req.Context(), l)
			if err != nil {
				res.ServerError(err.Error())
				return
			}
			employee, ok := repo.Find(id)
			if !ok {
				res.NotFound()
				return
			}
			res.Success(employee)
		})

		// GET /api/v1/greet/{name}
		api.Get("/greet/{name}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)

			greeter, err := locator.Make[IGreeter](req.Context(), l)
			if err != nil {
				res.ServerError(err.Error())
				return
			}
			res.Success(map[string]string{
				"greeting": greeter.Greet(routing.Param(req, "name")),
			})
		})
	})
}
